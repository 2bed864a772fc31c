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

// Package convert turns rectangles of 8-bit indexed pixels into 16-bit
// true-colour pixels. The bit packing of the result is taken from the format
// of the destination surface.
//
// The functions retain no state between calls.
package convert

import (
	"image"

	"github.com/falcongfx/falcongfx/graphics/palette"
	"github.com/falcongfx/falcongfx/graphics/surface"
)

// ScaleMode specifies how source pixels map to destination pixels.
type ScaleMode int

// List of valid ScaleMode values.
const (
	ScaleNone ScaleMode = iota

	// each source pixel is written to a 2x2 block of destination pixels
	Upscale

	// every other source pixel of every other source row is written
	Downscale
)

func (m ScaleMode) String() string {
	switch m {
	case Upscale:
		return "upscale"
	case Downscale:
		return "downscale"
	}
	return "none"
}

// Color returns the pixel value of palette entry idx in the given format.
func Color(pal *palette.Palette, idx uint8, format surface.PixelFormat) uint32 {
	r, g, b := pal.RGB(idx)
	return format.RGBToColor(r, g, b)
}

// Surface8ToSurface16 converts the subRect area of the 8-bit src surface to
// dst at destX, destY. The destination area must be large enough for the
// scaled rectangle.
func Surface8ToSurface16(src *surface.Surface, pal *palette.Palette, dst *surface.Surface, destX, destY int, subRect image.Rectangle, scale ScaleMode) {
	// build a lookup table of destination colours. only the entries that are
	// used are converted
	var lut [palette.NumEntries]uint32
	var done [palette.NumEntries]bool
	color := func(idx uint8) uint32 {
		if !done[idx] {
			lut[idx] = Color(pal, idx, dst.Format)
			done[idx] = true
		}
		return lut[idx]
	}

	switch scale {
	case Upscale:
		for y := subRect.Min.Y; y < subRect.Max.Y; y++ {
			row := src.Row(subRect.Min.X, y, subRect.Dx())
			dy := destY + (y-subRect.Min.Y)*2
			for i, idx := range row {
				c := color(idx)
				dx := destX + i*2
				dst.SetPixel(dx, dy, c)
				dst.SetPixel(dx+1, dy, c)
				dst.SetPixel(dx, dy+1, c)
				dst.SetPixel(dx+1, dy+1, c)
			}
		}

	case Downscale:
		for y := subRect.Min.Y; y < subRect.Max.Y; y += 2 {
			row := src.Row(subRect.Min.X, y, subRect.Dx())
			dy := destY + (y-subRect.Min.Y)/2
			for i := 0; i < len(row); i += 2 {
				dst.SetPixel(destX+i/2, dy, color(row[i]))
			}
		}

	default:
		for y := subRect.Min.Y; y < subRect.Max.Y; y++ {
			row := src.Row(subRect.Min.X, y, subRect.Dx())
			dy := destY + y - subRect.Min.Y
			for i, idx := range row {
				dst.SetPixel(destX+i, dy, color(idx))
			}
		}
	}
}

// Surface8ToSurface16WithKey is the same as Surface8ToSurface16() without
// scaling, except that source pixels equal to key leave the destination
// pixel unmodified.
func Surface8ToSurface16WithKey(src *surface.Surface, pal *palette.Palette, dst *surface.Surface, destX, destY int, subRect image.Rectangle, key uint8) {
	for y := subRect.Min.Y; y < subRect.Max.Y; y++ {
		row := src.Row(subRect.Min.X, y, subRect.Dx())
		dy := destY + y - subRect.Min.Y
		for i, idx := range row {
			if idx == key {
				continue
			}
			dst.SetPixel(destX+i, dy, Color(pal, idx, dst.Format))
		}
	}
}
