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

package renderer

import (
	"image"

	"github.com/falcongfx/falcongfx/graphics/surface"
	"github.com/falcongfx/falcongfx/hardware/c2p"
	"github.com/falcongfx/falcongfx/hardware/memory"
	"github.com/falcongfx/falcongfx/hardware/videl"
)

type accelerated struct{}

func (r *accelerated) Name() string {
	return "accelerated"
}

func (r *accelerated) Accelerated() bool {
	return true
}

func (r *accelerated) ScreenLayout() videl.Layout {
	return videl.Chunky8
}

func (r *accelerated) ScreenBank() memory.Bank {
	return memory.AcceleratorRAM
}

func (r *accelerated) OverlaySize() (int, int) {
	return OverlayWidth * 2, OverlayHeight * 2
}

func (r *accelerated) AlignRect(rect image.Rectangle, _ int) image.Rectangle {
	return rect
}

func (r *accelerated) CopyRectToSurface(dst *surface.Surface, src *surface.Surface, destX, destY int, subRect image.Rectangle) {
	dst.CopyFrom(src, destX, destY, subRect)
}

func (r *accelerated) CopySurfaceToSurface(dst *surface.Surface, src *surface.Surface) {
	if dst.Pitch == src.Pitch {
		copy(dst.Pix, src.Pix[:src.Pitch*src.H])
		return
	}
	dst.CopyFrom(src, 0, 0, src.Bounds())
}

func (r *accelerated) DrawMaskedSprite(dst *surface.Surface, spr *c2p.Sprite, dstX, dstY int, src image.Rectangle) {
	c2p.DrawMaskedSpriteChunky(dst.Pix, dst.Pitch, spr, dstX, dstY, src)
}

func (r *accelerated) AllocFast(alloc *memory.Allocator, size int) (*memory.Block, error) {
	return alloc.Alloc(memory.AcceleratorRAM, size, memory.VideoAlignment)
}
