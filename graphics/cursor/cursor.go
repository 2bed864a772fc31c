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

// Package cursor holds the state of the mouse cursor: its bitmap, hotspot,
// transparency key, position and visibility.
//
// The cursor has three implicit states, derived from its flags. It is
// either hidden, visible and on screen, or visible and out of screen. Update()
// must be called once per frame, before compositing, to recalculate the
// source and destination rectangles against the surface being displayed.
// Settle() must be called once compositing has finished.
//
// The compositing itself is done by the graphics manager because it depends
// on the buffering mode.
package cursor

import (
	"image"

	"github.com/falcongfx/falcongfx/graphics/surface"
	"github.com/falcongfx/falcongfx/hardware/c2p"
)

// Cursor is the mouse cursor.
type Cursor struct {
	visible bool

	// nil if there is no cursor bitmap
	surface *surface.Surface
	key     uint32

	hotspotX int
	hotspotY int

	x, y int

	positionChanged bool
	surfaceChanged  bool

	// the rectangles are only valid if outOfScreen is false
	outOfScreen bool
	srcRect     image.Rectangle
	dstRect     image.Rectangle

	// masked sprite version of an 8-bit cursor. built on demand
	sprite *c2p.Sprite
}

// NewCursor is the preferred method of initialisation for the Cursor type.
// The new cursor is hidden and has no bitmap.
func NewCursor() *Cursor {
	return &Cursor{
		x:           -1,
		y:           -1,
		outOfScreen: true,
	}
}

// SetSurface sets the cursor bitmap. The buf slice contains w*h pixels in the
// given format with no padding between rows. Pixels equal to key are
// transparent.
//
// The cursor is disabled if the size is zero or buf is nil. A disabled
// cursor is always out of screen.
func (c *Cursor) SetSurface(buf []byte, w, h int, hotspotX, hotspotY int, key uint32, format surface.PixelFormat) {
	c.surfaceChanged = true
	c.sprite = nil

	if w <= 0 || h <= 0 || buf == nil {
		c.surface = nil
		c.outOfScreen = true
		return
	}

	if c.surface == nil || c.surface.W != w || c.surface.H != h || c.surface.Format != format {
		c.surface = surface.New(w, h, format)
	}
	c.surface.CopyRectToSurface(buf, w*format.BytesPerPixel, 0, 0, w, h)

	c.hotspotX = hotspotX
	c.hotspotY = hotspotY
	c.key = key
}

// Surface returns the cursor bitmap. Returns nil if the cursor is disabled.
func (c *Cursor) Surface() *surface.Surface {
	return c.surface
}

// Key returns the transparency key.
func (c *Cursor) Key() uint32 {
	return c.key
}

// Sprite returns the cursor as a masked sprite. Only valid for cursors with
// an 8-bit bitmap. Returns nil otherwise.
func (c *Cursor) Sprite() *c2p.Sprite {
	if c.surface == nil || !c.surface.Format.IsCLUT8() {
		return nil
	}
	if c.sprite == nil {
		c.sprite = c2p.NewSprite(c.surface.Pix, c.surface.W, c.surface.H, c.surface.Pitch, uint8(c.key))
	}
	return c.sprite
}

// SetPosition moves the cursor. Movement of a hidden cursor is ignored unless
// override is true.
func (c *Cursor) SetPosition(x, y int, override bool) {
	if c.x == x && c.y == y {
		return
	}
	if !c.visible && !override {
		return
	}
	c.x = x
	c.y = y
	c.positionChanged = true
}

// UpdatePosition moves the cursor by a relative amount. The new position is
// clamped to the screen surface. Ignored if the cursor is hidden.
func (c *Cursor) UpdatePosition(deltaX, deltaY int, screen *surface.Surface) {
	if !c.visible || (deltaX == 0 && deltaY == 0) {
		return
	}

	x := min(max(c.x+deltaX, 0), screen.W-1)
	y := min(max(c.y+deltaY, 0), screen.H-1)
	c.SetPosition(x, y, false)
}

// Position returns the position of the cursor.
func (c *Cursor) Position() (int, int) {
	return c.x, c.y
}

// SetVisible changes the visibility of the cursor and returns the previous
// visibility.
func (c *Cursor) SetVisible(visible bool) bool {
	prev := c.visible
	c.visible = visible
	return prev
}

// Visible returns true if the cursor is visible.
func (c *Cursor) Visible() bool {
	return c.visible
}

// MarkChanged forces the cursor to be redrawn on the next frame.
func (c *Cursor) MarkChanged() {
	c.surfaceChanged = true
}

// IsModified returns true if the position or the bitmap has changed since
// the last call to Settle().
func (c *Cursor) IsModified() bool {
	return c.surfaceChanged || c.positionChanged
}

// OutOfScreen returns true if no part of the cursor is on the screen.
func (c *Cursor) OutOfScreen() bool {
	return c.outOfScreen
}

// SrcRect returns the visible area of the cursor bitmap.
func (c *Cursor) SrcRect() image.Rectangle {
	return c.srcRect
}

// DstRect returns the area of the screen covered by the cursor.
func (c *Cursor) DstRect() image.Rectangle {
	return c.dstRect
}

// Update recalculates the source and destination rectangles against the
// screen surface.
func (c *Cursor) Update(screen *surface.Surface) {
	if !c.visible && !c.IsModified() {
		return
	}

	if c.surface == nil {
		c.outOfScreen = true
		return
	}

	src := c.surface.Bounds()
	dst := src.Add(image.Pt(c.x-c.hotspotX, c.y-c.hotspotY))
	c.outOfScreen = !screen.Clip(&src, &dst)
	c.srcRect = src
	c.dstRect = dst
}

// Settle should be called once the cursor has been composited. The change
// flags are cleared.
func (c *Cursor) Settle() {
	c.positionChanged = false
	c.surfaceChanged = false
}
