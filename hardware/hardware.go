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

package hardware

import (
	"fmt"

	"github.com/falcongfx/falcongfx/hardware/memory"
	"github.com/falcongfx/falcongfx/hardware/videl"
)

// Capabilities of the display hardware. Decided once at construction time.
type Capabilities struct {
	// a graphics accelerator is present. screens are chunky rather than
	// planar and the direct buffering mode is supported
	AcceleratedBlit bool

	// the type of monitor attached to the video controller
	Monitor videl.Monitor
}

func (c Capabilities) String() string {
	if c.AcceleratedBlit {
		return fmt.Sprintf("accelerated (%v)", c.Monitor)
	}
	return fmt.Sprintf("planar (%v)", c.Monitor)
}

// Video is the interface to the video controller.
//
// Changes made through the interface are latched by the hardware at the
// next vertical blank.
type Video interface {
	Capabilities() Capabilities

	// the memory block to scan out
	SetScreenAddress(*memory.Block)

	// set one of the canned resolution descriptors
	SetResolution(videl.Resolution)

	// upload the palette. entries are in the packed layout of the palette
	// package. ignored by the hardware for true colour resolutions
	SetPalette([]uint32)
}
