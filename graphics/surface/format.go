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

import "fmt"

// PixelFormat describes how a colour is packed into a pixel. A format with
// BytesPerPixel of one is an indexed (CLUT) format and the bit descriptors are
// unused.
type PixelFormat struct {
	BytesPerPixel int

	RBits, GBits, BBits, ABits     uint8
	RShift, GShift, BShift, AShift uint8
}

// CLUT8 returns the 8-bit indexed pixel format.
func CLUT8() PixelFormat {
	return PixelFormat{BytesPerPixel: 1}
}

// RGB565 returns the 16-bit true-colour format used by the overlay.
func RGB565() PixelFormat {
	return PixelFormat{
		BytesPerPixel: 2,
		RBits:         5, GBits: 6, BBits: 5, ABits: 0,
		RShift: 11, GShift: 5, BShift: 0, AShift: 0,
	}
}

// IsCLUT8 returns true if the format is the 8-bit indexed format.
func (f PixelFormat) IsCLUT8() bool {
	return f.BytesPerPixel == 1
}

func (f PixelFormat) String() string {
	if f.IsCLUT8() {
		return "CLUT8"
	}
	return fmt.Sprintf("RGB%d%d%d%d", f.RBits, f.GBits, f.BBits, f.ABits)
}

// RGBToColor packs the 8-bit channel values into a pixel value. Channels are
// truncated to the width given by the format.
func (f PixelFormat) RGBToColor(r, g, b uint8) uint32 {
	return (uint32(r>>(8-f.RBits)) << f.RShift) |
		(uint32(g>>(8-f.GBits)) << f.GShift) |
		(uint32(b>>(8-f.BBits)) << f.BShift)
}

// ColorToRGB unpacks a pixel value into 8-bit channel values. The low bits of
// each channel are filled by repeating the high bits.
func (f PixelFormat) ColorToRGB(c uint32) (r, g, b uint8) {
	return expand(c>>f.RShift, f.RBits), expand(c>>f.GShift, f.GBits), expand(c>>f.BShift, f.BBits)
}

func expand(v uint32, bits uint8) uint8 {
	if bits == 0 {
		return 0
	}
	v &= (1 << bits) - 1
	v <<= 8 - bits
	return uint8(v | v>>bits)
}
