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
	"image"

	"github.com/falcongfx/falcongfx/graphics/convert"
	"github.com/falcongfx/falcongfx/graphics/surface"
	"github.com/falcongfx/falcongfx/graphics/videomode"
)

// ShowOverlay makes the overlay visible. The overlay replaces the game screen
// on the next UpdateScreen().
func (mgr *Manager) ShowOverlay() {
	if mgr.overlayVisible {
		return
	}

	if mgr.modes.Current().Mode == videomode.Direct {
		mgr.eraseDirectCursor()
	}

	mgr.overlayVisible = true
	mgr.pendingResolution = resolutionOverlay
	mgr.overlayDirty.Record(mgr.overlay.Bounds(), mgr.overlay.Bounds(), false)
	mgr.cursorDrawn = false

	mgr.rescaleCursor(mgr.Width(), mgr.Height(), mgr.overlay.W, mgr.overlay.H)
}

// HideOverlay hides the overlay. The game screen is shown again on the next
// UpdateScreen().
func (mgr *Manager) HideOverlay() {
	if !mgr.overlayVisible {
		return
	}

	mgr.overlayVisible = false
	mgr.pendingResolution = resolutionScreen
	mgr.pendingPalette = true
	mgr.cursorDrawn = false
	mgr.backgroundValid = false

	if mgr.modes.Current().Mode != videomode.Direct {
		mgr.markChunky(mgr.chunky.Bounds())
	}

	mgr.rescaleCursor(mgr.overlay.W, mgr.overlay.H, mgr.Width(), mgr.Height())
}

// the cursor keeps its relative position when moving between the game screen
// and the overlay.
func (mgr *Manager) rescaleCursor(fromW, fromH, toW, toH int) {
	mgr.cursor.MarkChanged()
	if fromW == 0 || fromH == 0 {
		return
	}
	x, y := mgr.cursor.Position()
	if x < 0 || y < 0 {
		return
	}
	mgr.cursor.SetPosition(x*toW/fromW, y*toH/fromH, true)
}

// IsOverlayVisible returns true if the overlay is visible.
func (mgr *Manager) IsOverlayVisible() bool {
	return mgr.overlayVisible
}

// OverlayWidth returns the width of the overlay. The size of the overlay
// never changes.
func (mgr *Manager) OverlayWidth() int {
	return mgr.overlay.W
}

// OverlayHeight returns the height of the overlay.
func (mgr *Manager) OverlayHeight() int {
	return mgr.overlay.H
}

// OverlayFormat returns the pixel format of the overlay.
func (mgr *Manager) OverlayFormat() surface.PixelFormat {
	return mgr.overlay.Format
}

// ClearOverlay sets the overlay to a copy of the game screen. The game screen
// is scaled up or down if it is much smaller or larger than the overlay and
// is centred. The area not covered by the game screen is black.
func (mgr *Manager) ClearOverlay() {
	mgr.overlay.Fill(0)
	mgr.overlayDirty.Record(mgr.overlay.Bounds(), mgr.overlay.Bounds(), false)

	w, h := mgr.Width(), mgr.Height()
	if w == 0 || h == 0 {
		return
	}

	ow, oh := mgr.overlay.W, mgr.overlay.H

	scale := convert.ScaleNone
	sw, sh := w, h
	switch {
	case w*2 <= ow && h*2 <= oh:
		scale = convert.Upscale
		sw, sh = w*2, h*2
	case w > ow || h > oh:
		scale = convert.Downscale
		sw, sh = w/2, h/2
	}

	src := mgr.gameSurface()
	convert.Surface8ToSurface16(src, &mgr.palette, mgr.overlay, (ow-sw)/2, (oh-sh)/2, src.Bounds(), scale)
}

// GrabOverlay copies the overlay to dst, which must be the same size and
// format as the overlay.
func (mgr *Manager) GrabOverlay(dst *surface.Surface) {
	dst.CopyFrom(mgr.overlay, 0, 0, mgr.overlay.Bounds())
}

// CopyRectToOverlay copies a w by h block of pixels to the overlay at x, y.
// The pixels must be in the overlay format.
func (mgr *Manager) CopyRectToOverlay(buf []byte, pitch int, x, y, w, h int) {
	mgr.overlay.CopyRectToSurface(buf, pitch, x, y, w, h)
	mgr.overlayDirty.Record(image.Rect(x, y, x+w, y+h), mgr.overlay.Bounds(), false)
}
