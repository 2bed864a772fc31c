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

// Package hardware describes the display hardware the graphics pipeline
// drives. The sub-packages contain the primitives: banked memory allocation
// (memory), the vertical blank clock (vblank), the canned video timings of
// the video controller (videl) and the chunky to planar routines (c2p).
//
// The Video interface is implemented by the host packages. A host decides
// what happens to the screen memory once the video controller has been
// pointed at it.
package hardware
