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

	"github.com/falcongfx/falcongfx/graphics/dirty"
	"github.com/falcongfx/falcongfx/graphics/surface"
	"github.com/falcongfx/falcongfx/hardware/c2p"
	"github.com/falcongfx/falcongfx/hardware/memory"
	"github.com/falcongfx/falcongfx/hardware/videl"
)

type planar struct{}

func (r *planar) Name() string {
	return "planar"
}

func (r *planar) Accelerated() bool {
	return false
}

func (r *planar) ScreenLayout() videl.Layout {
	return videl.Planar8
}

func (r *planar) ScreenBank() memory.Bank {
	return memory.STRAM
}

func (r *planar) OverlaySize() (int, int) {
	return OverlayWidth, OverlayHeight
}

func (r *planar) AlignRect(rect image.Rectangle, width int) image.Rectangle {
	return dirty.Align16(rect, width)
}

// 16-bit destinations are never planar and are copied as they are. For 8-bit
// destinations destX must be on a strip boundary if it differs from the
// left edge of subRect.
func (r *planar) CopyRectToSurface(dst *surface.Surface, src *surface.Surface, destX, destY int, subRect image.Rectangle) {
	if !dst.Format.IsCLUT8() {
		dst.CopyFrom(src, destX, destY, subRect)
		return
	}

	if destX == subRect.Min.X && destY == subRect.Min.Y {
		c2p.ChunkyToPlanar(dst.Pix, dst.Pitch, src.Pix, src.Pitch, subRect)
		return
	}

	pl := dst.Pix[dst.Offset(destX, destY):]
	ch := src.Pix[src.Offset(subRect.Min.X, subRect.Min.Y):]
	c2p.ChunkyToPlanar(pl, dst.Pitch, ch, src.Pitch, image.Rect(0, 0, subRect.Dx(), subRect.Dy()))
}

func (r *planar) CopySurfaceToSurface(dst *surface.Surface, src *surface.Surface) {
	if !dst.Format.IsCLUT8() {
		dst.CopyFrom(src, 0, 0, src.Bounds())
		return
	}
	c2p.ChunkyToPlanar(dst.Pix, dst.Pitch, src.Pix, src.Pitch, src.Bounds())
}

func (r *planar) DrawMaskedSprite(dst *surface.Surface, spr *c2p.Sprite, dstX, dstY int, src image.Rectangle) {
	c2p.DrawMaskedSprite(dst.Pix, dst.Pitch, spr, dstX, dstY, src)
}

func (r *planar) AllocFast(alloc *memory.Allocator, size int) (*memory.Block, error) {
	return alloc.Alloc(memory.FastRAM, size, memory.VideoAlignment)
}
