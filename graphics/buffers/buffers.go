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

// Package buffers manages the physical video buffers. There are three screen
// buffers and one overlay buffer.
//
// Exactly one screen buffer is the front buffer, the buffer being displayed.
// In the double and triple buffered modes the other buffers are drawn to and
// then rotated into the front position.
//
// Physical buffer memory is only accessed through a View. See the View type
// for details.
package buffers

import (
	"github.com/falcongfx/falcongfx/graphics/videomode"
	"github.com/falcongfx/falcongfx/hardware/memory"
	"github.com/falcongfx/falcongfx/logger"
)

// NumScreens is the number of screen buffers.
const NumScreens = 3

// Indices into the list of screens.
const (
	FrontBuffer = iota
	BackBuffer1
	BackBuffer2
)

// Set is the collection of physical buffers.
type Set struct {
	screens [NumScreens]*View
	overlay *View
}

// NewSet allocates screenSize bytes for each screen and overlaySize bytes for
// the overlay from the given bank. Memory is aligned as required by the video
// hardware.
func NewSet(alloc *memory.Allocator, bank memory.Bank, screenSize int, overlaySize int) (*Set, error) {
	set := &Set{}

	for i := range set.screens {
		b, err := alloc.Alloc(bank, screenSize, memory.VideoAlignment)
		if err != nil {
			set.Free(alloc)
			return nil, err
		}
		set.screens[i] = NewView(b)
	}

	b, err := alloc.Alloc(bank, overlaySize, memory.VideoAlignment)
	if err != nil {
		set.Free(alloc)
		return nil, err
	}
	set.overlay = NewView(b)

	return set, nil
}

// Free the memory of all buffers.
func (set *Set) Free(alloc *memory.Allocator) {
	for i, v := range set.screens {
		if v != nil {
			v.invalidate()
			alloc.Free(v.Block)
			set.screens[i] = nil
		}
	}
	if set.overlay != nil {
		set.overlay.invalidate()
		alloc.Free(set.overlay.Block)
		set.overlay = nil
	}
}

// Screen returns the screen buffer at position idx.
func (set *Set) Screen(idx int) *View {
	return set.screens[idx]
}

// Front returns the screen buffer being displayed.
func (set *Set) Front() *View {
	return set.screens[FrontBuffer]
}

// Overlay returns the overlay buffer.
func (set *Set) Overlay() *View {
	return set.overlay
}

// Writable returns the screen buffer that should be drawn to in the given
// mode. In the direct and single buffered modes this is the front buffer.
func (set *Set) Writable(mode videomode.Mode) *View {
	switch mode {
	case videomode.Double, videomode.Triple:
		return set.screens[BackBuffer1]
	}
	return set.screens[FrontBuffer]
}

// Rotate the screen buffers according to the buffering mode. Returns true if
// the caller must wait for the vertical blank before drawing again.
//
// In double buffered mode the front buffer and back buffer are swapped and a
// wait is always required.
//
// In triple buffered mode the buffers are rotated so that the most recently
// completed back buffer becomes the front buffer:
//
//	[F, B1, B2] -> [B1, B2, F]
//
// The rotation is the same whether or not waitForVbl is set. When it is not
// set the rotation is not synchronised to the vertical blank, whatever the
// global vsync setting.
//
// The direct and single buffered modes do not rotate.
func (set *Set) Rotate(mode videomode.Mode, waitForVbl bool) bool {
	switch mode {
	case videomode.Double:
		set.screens[FrontBuffer], set.screens[BackBuffer1] = set.screens[BackBuffer1], set.screens[FrontBuffer]
		return true

	case videomode.Triple:
		f := set.screens[FrontBuffer]
		set.screens[FrontBuffer] = set.screens[BackBuffer1]
		set.screens[BackBuffer1] = set.screens[BackBuffer2]
		set.screens[BackBuffer2] = f
		return waitForVbl
	}

	logger.Logf(logger.Allow, "buffers", "no rotation in %v mode", mode)
	return false
}

// Clear all screen buffers and the overlay buffer.
func (set *Set) Clear() {
	for _, v := range set.screens {
		v.Clear()
	}
	set.overlay.Clear()
}
