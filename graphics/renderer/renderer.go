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

// Package renderer contains the two ways of getting pixels into video memory.
//
// On the base machine screens are planar and every copy from the chunky
// surface goes through the chunky to planar conversion. Conversion works on
// strips of 16 pixels so rectangles are aligned accordingly.
//
// With a graphics accelerator present screens are chunky. Copies are plain
// memory copies and no alignment is required.
//
// The Renderer is chosen once, with New(), from the capabilities of the
// hardware.
package renderer

import (
	"image"

	"github.com/falcongfx/falcongfx/graphics/surface"
	"github.com/falcongfx/falcongfx/hardware"
	"github.com/falcongfx/falcongfx/hardware/c2p"
	"github.com/falcongfx/falcongfx/hardware/memory"
	"github.com/falcongfx/falcongfx/hardware/videl"
)

// Renderer is the strategy for writing to video memory. Screen surfaces
// passed to the copy functions are 8-bit surfaces over physical screen
// memory. Other surfaces are ordinary chunky or true colour surfaces.
type Renderer interface {
	Name() string
	Accelerated() bool

	// the memory layout of the screen buffers and the bank they must be
	// allocated in
	ScreenLayout() videl.Layout
	ScreenBank() memory.Bank

	// the size of the overlay in pixels
	OverlaySize() (int, int)

	// AlignRect returns the area that must be rewritten for r to be updated
	// on a screen of the given width
	AlignRect(r image.Rectangle, width int) image.Rectangle

	// CopyRectToSurface copies subRect of src to destX, destY of dst
	CopyRectToSurface(dst *surface.Surface, src *surface.Surface, destX, destY int, subRect image.Rectangle)

	// CopySurfaceToSurface copies the whole of src to dst. Both surfaces
	// must be the same size
	CopySurfaceToSurface(dst *surface.Surface, src *surface.Surface)

	// DrawMaskedSprite draws the src area of the sprite to dst with the top
	// left corner at dstX, dstY
	DrawMaskedSprite(dst *surface.Surface, spr *c2p.Sprite, dstX, dstY int, src image.Rectangle)

	// AllocFast allocates memory for off-screen buffers in the fastest bank
	// available
	AllocFast(alloc *memory.Allocator, size int) (*memory.Block, error)
}

// New returns the Renderer suitable for the hardware capabilities.
func New(caps hardware.Capabilities) Renderer {
	if caps.AcceleratedBlit {
		return &accelerated{}
	}
	return &planar{}
}

// OverlayWidth and OverlayHeight of the base machine. The overlay is twice
// the size in both dimensions when an accelerator is present.
const (
	OverlayWidth  = 320
	OverlayHeight = 240
)
