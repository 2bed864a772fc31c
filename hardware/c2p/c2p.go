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

// Package c2p converts between chunky pixels (one byte per pixel) and the
// interleaved bitplane format of the video hardware.
//
// In the planar format each group of 16 horizontal pixels (a strip) occupies
// eight consecutive big-endian words. Word p holds bit p of the colour index
// of every pixel in the strip, with the leftmost pixel in the most
// significant bit. An eight plane screen therefore uses one byte per pixel,
// the same as a chunky screen, and the pitch of a planar screen is its width
// in pixels.
//
// The package also implements masked sprite drawing, for both planar and
// chunky targets.
package c2p

import "image"

// StripWidth is the number of pixels in one planar strip.
const StripWidth = 16

// NumPlanes is the number of bitplanes in the planar format.
const NumPlanes = 8

// StripBytes is the number of bytes used by one planar strip.
const StripBytes = NumPlanes * 2

// convert 16 chunky pixels to one planar strip.
func toStrip(strip []byte, chunky []byte) {
	for p := 0; p < NumPlanes; p++ {
		var w uint16
		for _, c := range chunky[:StripWidth] {
			w = w<<1 | uint16(c>>p)&0x01
		}
		strip[p*2] = uint8(w >> 8)
		strip[p*2+1] = uint8(w)
	}
}

// convert one planar strip to 16 chunky pixels.
func fromStrip(chunky []byte, strip []byte) {
	for i := range chunky[:StripWidth] {
		chunky[i] = 0
	}
	for p := 0; p < NumPlanes; p++ {
		w := uint16(strip[p*2])<<8 | uint16(strip[p*2+1])
		for i := 0; i < StripWidth; i++ {
			chunky[i] |= uint8((w>>(15-i))&0x01) << p
		}
	}
}

// alignRect snaps the horizontal edges of r to strip boundaries.
func alignRect(r image.Rectangle) image.Rectangle {
	r.Min.X &^= StripWidth - 1
	r.Max.X = (r.Max.X + StripWidth - 1) &^ (StripWidth - 1)
	return r
}

// ChunkyToPlanar converts the area r of the chunky buffer to the same area
// of the planar buffer. The horizontal edges of r are snapped outwards to
// strip boundaries so both buffers must have a width that is a multiple of
// StripWidth.
func ChunkyToPlanar(planar []byte, planarPitch int, chunky []byte, chunkyPitch int, r image.Rectangle) {
	r = alignRect(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x += StripWidth {
			c := y*chunkyPitch + x
			p := y*planarPitch + x
			toStrip(planar[p:p+StripBytes], chunky[c:c+StripWidth])
		}
	}
}

// PlanarToChunky is the inverse of ChunkyToPlanar().
func PlanarToChunky(chunky []byte, chunkyPitch int, planar []byte, planarPitch int, r image.Rectangle) {
	r = alignRect(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x += StripWidth {
			c := y*chunkyPitch + x
			p := y*planarPitch + x
			fromStrip(chunky[c:c+StripWidth], planar[p:p+StripBytes])
		}
	}
}

// PlanarPixel returns the colour index of the pixel at x, y.
func PlanarPixel(planar []byte, pitch int, x, y int) uint8 {
	o := y*pitch + (x&^(StripWidth-1))
	bit := uint(15 - x&(StripWidth-1))
	var c uint8
	for p := 0; p < NumPlanes; p++ {
		w := uint16(planar[o+p*2])<<8 | uint16(planar[o+p*2+1])
		c |= uint8((w>>bit)&0x01) << p
	}
	return c
}

// SetPlanarPixel sets the colour index of the pixel at x, y.
func SetPlanarPixel(planar []byte, pitch int, x, y int, c uint8) {
	o := y*pitch + (x&^(StripWidth-1))
	bit := uint(15 - x&(StripWidth-1))
	for p := 0; p < NumPlanes; p++ {
		w := uint16(planar[o+p*2])<<8 | uint16(planar[o+p*2+1])
		w &^= 1 << bit
		w |= uint16((c>>p)&0x01) << bit
		planar[o+p*2] = uint8(w >> 8)
		planar[o+p*2+1] = uint8(w)
	}
}
