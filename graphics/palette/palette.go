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

// Package palette stores the 256 entry colour table. Entries are held in the
// layout expected by the video hardware's palette registers so that a palette
// upload needs no per-entry conversion:
//
//	red << 24 | green << 16 | blue
//
// Ranges passed to Set() and Grab() are not validated. A range outside of
// [0,256) will cause a panic by way of the normal slice bounds checking.
package palette

// NumEntries is the number of entries in the palette.
const NumEntries = 256

// Palette is a 256 entry colour table. The zero value is an all black palette.
type Palette struct {
	entries [NumEntries]uint32
}

// Set count entries starting at start. The colours slice holds a three byte
// RGB triple for each entry.
func (p *Palette) Set(colors []byte, start int, count int) {
	for i := 0; i < count; i++ {
		c := colors[i*3 : i*3+3]
		p.entries[start+i] = uint32(c[0])<<24 | uint32(c[1])<<16 | uint32(c[2])
	}
}

// Grab is the inverse of Set. The colors slice must have room for a three
// byte RGB triple for each entry.
func (p *Palette) Grab(colors []byte, start int, count int) {
	for i, e := range p.entries[start : start+count] {
		colors[i*3] = uint8(e >> 24)
		colors[i*3+1] = uint8(e >> 16)
		colors[i*3+2] = uint8(e)
	}
}

// RGB returns the colour components of entry idx.
func (p *Palette) RGB(idx uint8) (r, g, b uint8) {
	e := p.entries[idx]
	return uint8(e >> 24), uint8(e >> 16), uint8(e)
}

// Packed returns a copy of the entries in the hardware layout.
func (p *Palette) Packed() []uint32 {
	c := make([]uint32, NumEntries)
	copy(c, p.entries[:])
	return c
}
