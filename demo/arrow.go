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


package demo

const (
	arrowWidth  = 11
	arrowHeight = 16
)

// arrow returns the pixels of the mouse cursor. zero is transparent.
func arrow() []byte {
	buf := make([]byte, arrowWidth*arrowHeight)
	for y := 0; y < arrowHeight; y++ {
		w := min(y+1, arrowWidth)

		// the tail of the arrow
		if y >= arrowHeight-4 {
			w = min(w, 4+(y-(arrowHeight-4)))
		}

		for x := 0; x < w; x++ {
			c := uint8(cursorFill)
			if x == 0 || x == w-1 || y == arrowHeight-1 {
				c = cursorOutline
			}
			buf[y*arrowWidth+x] = c
		}
	}
	return buf
}
