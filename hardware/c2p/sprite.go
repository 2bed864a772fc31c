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

package c2p

import "image"

// Sprite is a chunky bitmap with a transparency mask. The mask has one bit
// per pixel, in 16 pixel words with the leftmost pixel in the most
// significant bit. A set bit means the pixel is transparent.
type Sprite struct {
	W    int
	H    int
	Pix  []byte
	Mask []uint16

	// number of mask words per row
	MaskPitch int
}

// NewSprite creates a sprite from chunky pixels. Pixels equal to key are
// transparent.
func NewSprite(pix []byte, w, h, pitch int, key uint8) *Sprite {
	spr := &Sprite{
		W:         w,
		H:         h,
		Pix:       make([]byte, w*h),
		MaskPitch: (w + StripWidth - 1) / StripWidth,
	}
	spr.Mask = make([]uint16, spr.MaskPitch*h)

	for y := 0; y < h; y++ {
		copy(spr.Pix[y*w:(y+1)*w], pix[y*pitch:y*pitch+w])
		for x := 0; x < w; x++ {
			if pix[y*pitch+x] == key {
				spr.Mask[y*spr.MaskPitch+x/StripWidth] |= 0x8000 >> (x % StripWidth)
			}
		}
	}

	return spr
}

// Transparent returns true if the sprite pixel at x, y is masked out.
func (spr *Sprite) Transparent(x, y int) bool {
	return spr.Mask[y*spr.MaskPitch+x/StripWidth]&(0x8000>>(x%StripWidth)) != 0
}

// DrawMaskedSprite draws the src area of the sprite to the planar buffer with
// the top left corner at dstX, dstY. The src area must be within the sprite
// and the destination area must be within the buffer.
func DrawMaskedSprite(planar []byte, pitch int, spr *Sprite, dstX, dstY int, src image.Rectangle) {
	for y := src.Min.Y; y < src.Max.Y; y++ {
		dy := dstY + y - src.Min.Y
		for x := src.Min.X; x < src.Max.X; x++ {
			if spr.Transparent(x, y) {
				continue
			}
			SetPlanarPixel(planar, pitch, dstX+x-src.Min.X, dy, spr.Pix[y*spr.W+x])
		}
	}
}

// DrawMaskedSpriteChunky is the same as DrawMaskedSprite() except that the
// target buffer is in the chunky format.
func DrawMaskedSpriteChunky(chunky []byte, pitch int, spr *Sprite, dstX, dstY int, src image.Rectangle) {
	for y := src.Min.Y; y < src.Max.Y; y++ {
		row := chunky[(dstY+y-src.Min.Y)*pitch+dstX:]
		for x := src.Min.X; x < src.Max.X; x++ {
			if !spr.Transparent(x, y) {
				row[x-src.Min.X] = spr.Pix[y*spr.W+x]
			}
		}
	}
}
