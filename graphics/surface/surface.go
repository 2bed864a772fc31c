// This file is part of Falcongfx.
//
// Falcongfx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Falcongfx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Falcongfx.  If not, see <https://www.gnu.org/licenses/>.

package surface

import (
	"encoding/binary"
	"image"
)

// Surface is a rectangular pixel buffer.
type Surface struct {
	W      int
	H      int
	Pitch  int
	Format PixelFormat
	Pix    []byte
}

// New is the preferred method of initialisation for a Surface that owns its
// own memory.
func New(w, h int, format PixelFormat) *Surface {
	pitch := w * format.BytesPerPixel
	return &Surface{
		W:      w,
		H:      h,
		Pitch:  pitch,
		Format: format,
		Pix:    make([]byte, pitch*h),
	}
}

// Wrap creates a Surface using memory owned by the caller. The memory must be
// at least pitch*h bytes long.
func Wrap(pix []byte, w, h, pitch int, format PixelFormat) *Surface {
	return &Surface{
		W:      w,
		H:      h,
		Pitch:  pitch,
		Format: format,
		Pix:    pix[:pitch*h],
	}
}

// Bounds returns the rectangle covering the entire surface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.W, s.H)
}

// Offset returns the index into Pix of the pixel at x, y.
func (s *Surface) Offset(x, y int) int {
	return y*s.Pitch + x*s.Format.BytesPerPixel
}

// Pixel returns the value of the pixel at x, y.
func (s *Surface) Pixel(x, y int) uint32 {
	o := s.Offset(x, y)
	if s.Format.BytesPerPixel == 2 {
		return uint32(binary.LittleEndian.Uint16(s.Pix[o:]))
	}
	return uint32(s.Pix[o])
}

// SetPixel sets the value of the pixel at x, y.
func (s *Surface) SetPixel(x, y int, c uint32) {
	o := s.Offset(x, y)
	if s.Format.BytesPerPixel == 2 {
		binary.LittleEndian.PutUint16(s.Pix[o:], uint16(c))
		return
	}
	s.Pix[o] = uint8(c)
}

// Row returns the pixel memory for the w pixels starting at x, y.
func (s *Surface) Row(x, y, w int) []byte {
	o := s.Offset(x, y)
	return s.Pix[o : o+w*s.Format.BytesPerPixel]
}

// CopyRectToSurface copies a w by h block of pixels from buf, which has the
// given pitch and the same format as the surface, to x, y.
func (s *Surface) CopyRectToSurface(buf []byte, pitch, x, y, w, h int) {
	n := w * s.Format.BytesPerPixel
	for row := 0; row < h; row++ {
		copy(s.Row(x, y+row, w), buf[row*pitch:row*pitch+n])
	}
}

// CopyFrom copies the subRect area of src to destX, destY. Both surfaces must
// be of the same format.
func (s *Surface) CopyFrom(src *Surface, destX, destY int, subRect image.Rectangle) {
	w := subRect.Dx()
	for y := 0; y < subRect.Dy(); y++ {
		copy(s.Row(destX, destY+y, w), src.Row(subRect.Min.X, subRect.Min.Y+y, w))
	}
}

// CopyFromWithKey is the same as CopyFrom() except that source pixels equal
// to key are not copied.
func (s *Surface) CopyFromWithKey(src *Surface, destX, destY int, subRect image.Rectangle, key uint32) {
	for y := 0; y < subRect.Dy(); y++ {
		for x := 0; x < subRect.Dx(); x++ {
			c := src.Pixel(subRect.Min.X+x, subRect.Min.Y+y)
			if c != key {
				s.SetPixel(destX+x, destY+y, c)
			}
		}
	}
}

// FillRect fills the area r with colour c. The rectangle is clipped to the
// surface.
func (s *Surface) FillRect(r image.Rectangle, c uint32) {
	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return
	}

	if s.Format.BytesPerPixel == 1 {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			row := s.Row(r.Min.X, y, r.Dx())
			for i := range row {
				row[i] = uint8(c)
			}
		}
		return
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.SetPixel(x, y, c)
		}
	}
}

// Fill the entire surface with colour c.
func (s *Surface) Fill(c uint32) {
	s.FillRect(s.Bounds(), c)
}

// Clip dst against the bounds of the surface. The src rectangle is adjusted
// by the same amount on each edge. Returns true if any part of dst remains.
func (s *Surface) Clip(src *image.Rectangle, dst *image.Rectangle) bool {
	if dst.Min.X < 0 {
		src.Min.X -= dst.Min.X
		dst.Min.X = 0
	}
	if dst.Min.Y < 0 {
		src.Min.Y -= dst.Min.Y
		dst.Min.Y = 0
	}
	if dst.Max.X > s.W {
		src.Max.X -= dst.Max.X - s.W
		dst.Max.X = s.W
	}
	if dst.Max.Y > s.H {
		src.Max.Y -= dst.Max.Y - s.H
		dst.Max.Y = s.H
	}
	return !dst.Empty() && !src.Empty()
}
