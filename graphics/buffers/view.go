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

package buffers

import (
	"fmt"

	"github.com/falcongfx/falcongfx/graphics/surface"
	"github.com/falcongfx/falcongfx/hardware/memory"
)

// Interpretation is how the memory of a physical buffer is currently viewed.
type Interpretation int

// List of valid Interpretation values.
const (
	Unviewed Interpretation = iota
	Indexed8
	TrueColor16
)

func (i Interpretation) String() string {
	switch i {
	case Indexed8:
		return "indexed8"
	case TrueColor16:
		return "truecolor16"
	}
	return "unviewed"
}

// View is a physical buffer together with the one typed surface currently
// looking at its memory. Asking for a view with a different interpretation
// or size invalidates the previous surface. Its pixel slice is set to nil
// so that any later use fails immediately rather than corrupting the new
// view.
type View struct {
	Block *memory.Block

	interp Interpretation
	surf   *surface.Surface
}

// NewView is the preferred method of initialisation for the View type.
func NewView(block *memory.Block) *View {
	return &View{Block: block}
}

// Interpretation returns the current interpretation of the buffer memory.
func (v *View) Interpretation() Interpretation {
	return v.interp
}

// Surface returns the current typed surface. Returns nil if the buffer has
// not been viewed yet.
func (v *View) Surface() *surface.Surface {
	return v.surf
}

// Indexed8 returns an 8-bit surface of the given size over the buffer memory.
func (v *View) Indexed8(width, height int) (*surface.Surface, error) {
	return v.view(Indexed8, width, height, surface.CLUT8())
}

// TrueColor16 returns a 16-bit surface of the given size over the buffer
// memory.
func (v *View) TrueColor16(width, height int, format surface.PixelFormat) (*surface.Surface, error) {
	return v.view(TrueColor16, width, height, format)
}

func (v *View) view(interp Interpretation, width, height int, format surface.PixelFormat) (*surface.Surface, error) {
	if v.surf != nil && v.interp == interp && v.surf.W == width && v.surf.H == height && v.surf.Format == format {
		return v.surf, nil
	}

	if err := v.Fits(width, height, format.BytesPerPixel); err != nil {
		return nil, err
	}

	v.invalidate()
	v.interp = interp
	v.surf = surface.Wrap(v.Block.Mem, width, height, width*format.BytesPerPixel, format)

	return v.surf, nil
}

// Fits returns an error if a view of the given size and depth would not fit in
// the buffer memory. The current view is not changed.
func (v *View) Fits(width, height, bytesPerPixel int) error {
	sz, err := memory.BufferSize(width, height, bytesPerPixel)
	if err != nil {
		return err
	}
	if sz > len(v.Block.Mem) {
		return fmt.Errorf("buffers: view of %dx%dx%d does not fit in %v", width, height, bytesPerPixel, v.Block)
	}
	return nil
}

func (v *View) invalidate() {
	if v.surf != nil {
		v.surf.Pix = nil
		v.surf = nil
	}
	v.interp = Unviewed
}

// Clear sets all bytes of the buffer memory to zero.
func (v *View) Clear() {
	clear(v.Block.Mem)
}
