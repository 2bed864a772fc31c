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

// Package surface implements a rectangular pixel buffer described by width,
// height, pitch and pixel format. Surfaces either own their pixel memory or
// wrap memory owned by something else, for example a physical video buffer.
//
// Pixels of two byte formats are stored little-endian.
//
// All rectangles are of the image.Rectangle type. Functions that take a
// rectangle expect it to be within the bounds of the surface unless otherwise
// stated. The Clip() function should be used to make sure of this.
package surface
