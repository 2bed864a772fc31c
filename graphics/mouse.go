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

package graphics

import (
	"github.com/falcongfx/falcongfx/graphics/surface"
	"github.com/falcongfx/falcongfx/logger"
)

// ShowMouse changes the visibility of the cursor. Returns the previous
// visibility.
func (mgr *Manager) ShowMouse(visible bool) bool {
	return mgr.cursor.SetVisible(visible)
}

// WarpMouse moves the cursor to x, y. The cursor is moved even if it is not
// visible.
func (mgr *Manager) WarpMouse(x, y int) {
	mgr.cursor.SetPosition(x, y, true)
}

// MousePosition returns the position of the cursor in the coordinates of the
// surface being displayed.
func (mgr *Manager) MousePosition() (int, int) {
	return mgr.cursor.Position()
}

// UpdateMousePosition moves the cursor by a relative amount, as reported by
// the mouse. The cursor stays within the surface being displayed.
func (mgr *Manager) UpdateMousePosition(deltaX, deltaY int) {
	if mgr.overlayVisible {
		mgr.cursor.UpdatePosition(deltaX, deltaY, mgr.overlay)
		return
	}
	if mgr.Width() == 0 {
		return
	}
	mgr.cursor.UpdatePosition(deltaX, deltaY, mgr.chunky)
}

// SetMouseCursor sets the cursor bitmap. The buf slice contains w*h pixels
// with no padding. Pixels equal to keycolor are transparent. A nil format
// indicates 8-bit pixels.
//
// 8-bit cursors are shown on both the game screen and the overlay. Cursors in
// the overlay format are only shown on the overlay. A cursor with no pixels
// is not shown at all.
func (mgr *Manager) SetMouseCursor(buf []byte, w, h int, hotspotX, hotspotY int, keycolor uint32, format *surface.PixelFormat) {
	f := surface.CLUT8()
	if format != nil {
		f = *format
	}

	if !f.IsCLUT8() && f != mgr.overlay.Format {
		logger.Logf(logger.Allow, "graphics", "unsupported cursor format: %v", f)
		return
	}

	mgr.cursor.SetSurface(buf, w, h, hotspotX, hotspotY, keycolor, f)
}

// SetCursorPalette sets count entries of the palette used for 8-bit cursors
// on the overlay. Until it is called the game palette is used.
func (mgr *Manager) SetCursorPalette(colors []byte, start int, count int) {
	mgr.cursorPalette.Set(colors, start, count)
	mgr.cursorPaletteSet = true
	mgr.cursor.MarkChanged()
}
