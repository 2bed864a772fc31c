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

package videl

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/falcongfx/falcongfx/hardware/c2p"
)

// Decode video memory, arranged according to the resolution, into img. The
// palette is in the hardware layout and is ignored for the TrueColor16
// layout. The img must be at least as large as the resolution.
//
// TrueColor16 pixels are RGB565 and are stored little-endian.
func Decode(res Resolution, mem []byte, palette []uint32, img *image.RGBA) {
	pitch := res.Pitch()

	clut := func(idx uint8) color.RGBA {
		e := palette[idx]
		return color.RGBA{R: uint8(e >> 24), G: uint8(e >> 16), B: uint8(e), A: 0xff}
	}

	switch res.Layout {
	case Planar8:
		line := make([]byte, res.Width)
		for y := 0; y < res.Height; y++ {
			c2p.PlanarToChunky(line, res.Width, mem[y*pitch:(y+1)*pitch], pitch, image.Rect(0, 0, res.Width, 1))
			for x, idx := range line {
				img.SetRGBA(x, y, clut(idx))
			}
		}

	case Chunky8:
		for y := 0; y < res.Height; y++ {
			for x, idx := range mem[y*pitch : (y+1)*pitch] {
				img.SetRGBA(x, y, clut(idx))
			}
		}

	case TrueColor16:
		for y := 0; y < res.Height; y++ {
			row := mem[y*pitch : (y+1)*pitch]
			for x := 0; x < res.Width; x++ {
				c := binary.LittleEndian.Uint16(row[x*2:])
				r := uint8(c>>11) & 0x1f
				g := uint8(c>>5) & 0x3f
				b := uint8(c) & 0x1f
				img.SetRGBA(x, y, color.RGBA{
					R: r<<3 | r>>2,
					G: g<<2 | g>>4,
					B: b<<3 | b>>2,
					A: 0xff,
				})
			}
		}
	}
}
