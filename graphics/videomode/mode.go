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

// Package videomode implements the transactional negotiation of the graphics
// state: the buffering mode, the logical screen size and the pixel format.
//
// Requests made between BeginTransaction() and EndTransaction() change only
// the pending state. EndTransaction() validates the pending state and reports
// every problem found, not just the first. A failed transaction restores the
// pending state to the current state. The current state is only ever changed
// by Commit(), after a successful EndTransaction().
package videomode

import (
	"fmt"
	"strings"
)

// Mode is the buffering mode.
type Mode int

// List of valid Mode values. The numeric values are those presented to
// callers as graphics mode IDs.
const (
	// drawing goes directly to the physical screen. requires the graphics
	// accelerator
	Direct Mode = iota

	// drawing goes to the chunky surface and dirty areas are copied to the
	// one physical screen
	Single

	// the chunky surface is copied to a back buffer which is swapped with
	// the front buffer
	Double

	// as Double but with two back buffers
	Triple

	numModes
)

// DefaultMode is the buffering mode used if no other mode has been requested.
const DefaultMode = Triple

var modeNames = [numModes]string{"direct", "single", "double", "triple"}

var modeDescriptions = [numModes]string{
	"Direct rendering",
	"Single buffering",
	"Double buffering",
	"Triple buffering",
}

func (m Mode) String() string {
	if m < 0 || m >= numModes {
		return fmt.Sprintf("mode %d", int(m))
	}
	return modeNames[m]
}

// Description returns a human readable description of the mode.
func (m Mode) Description() string {
	if m < 0 || m >= numModes {
		return m.String()
	}
	return modeDescriptions[m]
}

// Valid returns true if the mode is one of the defined Mode values.
func (m Mode) Valid() bool {
	return m >= 0 && m < numModes
}

// ParseMode returns the Mode with the given name. Case insensitive.
func ParseMode(name string) (Mode, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range modeNames {
		if n == name {
			return Mode(i), true
		}
	}
	return Mode(-1), false
}

// GraphicsMode describes a supported mode.
type GraphicsMode struct {
	Name        string
	Description string
	ID          Mode
}

// SupportedModes returns the list of modes that can be used. Direct
// rendering is only available when the graphics accelerator is present.
func SupportedModes(accelerated bool) []GraphicsMode {
	l := make([]GraphicsMode, 0, numModes)
	for m := Mode(0); m < numModes; m++ {
		if m == Direct && !accelerated {
			continue
		}
		l = append(l, GraphicsMode{Name: m.String(), Description: m.Description(), ID: m})
	}
	return l
}
