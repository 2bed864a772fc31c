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
	"github.com/falcongfx/falcongfx/hardware/videl"
	"github.com/falcongfx/falcongfx/logger"
)

// frameIntent is built at the start of UpdateScreen() and is not changed
// during the update.
type frameIntent struct {
	overlay bool
	mode    videomode.Mode

	// waiting for the vertical blank is allowed
	vsync bool

	resolution    pendingResolution
	palette       bool
	aspectChanged bool
}

func (mgr *Manager) intent() frameIntent {
	return frameIntent{
		overlay:       mgr.overlayVisible,
		mode:          mgr.modes.Current().Mode,
		vsync:         mgr.vsync && mgr.ignoreVsync == 0,
		resolution:    mgr.pendingResolution,
		palette:       mgr.pendingPalette,
		aspectChanged: mgr.aspect != mgr.appliedAspect,
	}
}

// suppressVsync stops UpdateScreen() from waiting for the vertical blank
// until the returned function is called. Calls can be nested.
//
//	defer mgr.suppressVsync()()
func (mgr *Manager) suppressVsync() func() {
	mgr.ignoreVsync++
	released := false
	return func() {
		if !released {
			released = true
			mgr.ignoreVsync--
		}
	}
}

// UpdateScreen brings the display up to date. It should be called once per
// frame.
//
// Depending on the buffering mode and vsync setting the function may block
// until the next vertical blank.
func (mgr *Manager) UpdateScreen() {
	if mgr.modes.Current().Width == 0 {
		return
	}

	intent := mgr.intent()
	mgr.stats.Frames++

	// the cursor is clipped against the surface being displayed
	if intent.overlay {
		mgr.cursor.Update(mgr.overlay)
	} else {
		mgr.cursor.Update(mgr.chunky)
	}

	var modified bool
	switch {
	case intent.overlay:
		modified = mgr.updateOverlay()
	case intent.mode == videomode.Direct:
		modified = mgr.updateDirectBuffer()
	case intent.mode == videomode.Single:
		modified = mgr.updateSingleBuffer()
	default:
		modified = mgr.updateDoubleAndTripleBuffer(intent)
	}

	wait := modified && intent.vsync

	if modified && !intent.overlay && (intent.mode == videomode.Double || intent.mode == videomode.Triple) {
		// rotation decides for itself whether a wait is required
		wait = mgr.buffers.Rotate(intent.mode, intent.vsync)
		mgr.hw.SetScreenAddress(mgr.buffers.Front().Block)
		mgr.stats.Rotations++
	}

	// a change to the screen resolution also uploads the palette
	screenChanged := false

	if intent.resolution != resolutionNone {
		mgr.applyResolution(intent.resolution)
		mgr.pendingResolution = resolutionNone
		screenChanged = intent.resolution == resolutionScreen
		wait = true
	} else if intent.aspectChanged && !intent.overlay {
		mgr.applyResolution(resolutionScreen)
		screenChanged = true
		wait = true
	}

	if intent.palette && !intent.overlay && !screenChanged {
		mgr.hw.SetPalette(mgr.palette.Packed())
		mgr.stats.PaletteUploads++
		mgr.pendingPalette = false
	}

	if wait && mgr.ignoreVsync == 0 {
		mgr.clock.WaitForNextTick()
		mgr.stats.VblankWaits++
	}
}

func (mgr *Manager) applyResolution(change pendingResolution) {
	var res videl.Resolution
	var err error

	switch change {
	case resolutionScreen:
		cur := mgr.modes.Current()
		res, err = videl.Lookup(cur.Width, cur.Height, mgr.rend.ScreenLayout(), mgr.monitor, mgr.aspect)
		if err != nil {
			logger.Log(logger.Allow, "graphics", err)
			return
		}
		mgr.hw.SetResolution(res)
		mgr.hw.SetScreenAddress(mgr.buffers.Front().Block)
		mgr.hw.SetPalette(mgr.palette.Packed())
		mgr.stats.PaletteUploads++
		mgr.pendingPalette = false
		mgr.appliedAspect = mgr.aspect

	case resolutionOverlay:
		ow, oh := mgr.rend.OverlaySize()
		res, err = videl.Lookup(ow, oh, videl.TrueColor16, mgr.monitor, false)
		if err != nil {
			logger.Log(logger.Allow, "graphics", err)
			return
		}
		mgr.hw.SetResolution(res)
		mgr.hw.SetScreenAddress(mgr.buffers.Overlay().Block)
	}

	mgr.stats.ResolutionChanges++
	logger.Logf(logger.Allow, "graphics", "resolution: %v", res)
}

// cursorShown returns true if the cursor should be visible on the target
// surface. 16-bit cursors can only be shown on the overlay.
func (mgr *Manager) cursorShown(overlay bool) bool {
	if !mgr.cursor.Visible() || mgr.cursor.OutOfScreen() {
		return false
	}
	return overlay || mgr.cursor.Sprite() != nil
}

// compositeCursor restores the area under the previous cursor position and
// draws the cursor at the new position, as required. The forced argument
// indicates that the area under the cursor has been overwritten. Returns true
// if physical screen memory was changed.
func (mgr *Manager) compositeCursor(overlay bool, forced bool, restore func(image.Rectangle), draw func()) bool {
	changed := false
	shown := mgr.cursorShown(overlay)

	if mgr.cursorDrawn && (forced || mgr.cursor.IsModified() || !shown) {
		restore(mgr.oldCursorRect)
		mgr.cursorDrawn = false
		mgr.stats.CursorRestores++
		changed = true
	}

	if shown && !mgr.cursorDrawn {
		draw()
		mgr.oldCursorRect = mgr.cursor.DstRect()
		mgr.cursorDrawn = true
		mgr.stats.CursorDraws++
		changed = true
	}

	mgr.cursor.Settle()
	return changed
}

// drawCursor8 draws an 8-bit cursor to an 8-bit screen.
func (mgr *Manager) drawCursor8(screen *surface.Surface) {
	dst := mgr.cursor.DstRect()
	mgr.rend.DrawMaskedSprite(screen, mgr.cursor.Sprite(), dst.Min.X, dst.Min.Y, mgr.cursor.SrcRect())
}

func (mgr *Manager) updateOverlay() bool {
	screen := mgr.buffers.Overlay().Surface()

	drained := false
	forced := mgr.cursorDrawn && mgr.overlayDirty.Intersects(mgr.oldCursorRect)
	for {
		r, ok := mgr.overlayDirty.Pop()
		if !ok {
			break
		}
		screen.CopyFrom(mgr.overlay, r.Min.X, r.Min.Y, r)
		drained = true
		mgr.stats.RectsDrained++
	}

	restore := func(r image.Rectangle) {
		screen.CopyFrom(mgr.overlay, r.Min.X, r.Min.Y, r)
	}

	draw := func() {
		spr := mgr.cursor.Surface()
		src := mgr.cursor.SrcRect()
		dst := mgr.cursor.DstRect()

		if spr.Format.IsCLUT8() {
			pal := &mgr.palette
			if mgr.cursorPaletteSet {
				pal = &mgr.cursorPalette
			}
			convert.Surface8ToSurface16WithKey(spr, pal, screen, dst.Min.X, dst.Min.Y, src, uint8(mgr.cursor.Key()))
			return
		}
		screen.CopyFromWithKey(spr, dst.Min.X, dst.Min.Y, src, mgr.cursor.Key())
	}

	return mgr.compositeCursor(true, forced, restore, draw) || drained
}

func (mgr *Manager) updateSingleBuffer() bool {
	screen := mgr.buffers.Front().Surface()

	drained := false
	forced := mgr.cursorDrawn && mgr.chunkyDirty.Intersects(mgr.oldCursorRect)
	for {
		r, ok := mgr.chunkyDirty.Pop()
		if !ok {
			break
		}
		mgr.rend.CopyRectToSurface(screen, mgr.chunky, r.Min.X, r.Min.Y, r)
		drained = true
		mgr.stats.RectsDrained++
	}

	// planar screen memory can't be read back so the area under the cursor
	// is converted again from the chunky surface
	restore := func(r image.Rectangle) {
		r = mgr.rend.AlignRect(r, mgr.chunky.W)
		mgr.rend.CopyRectToSurface(screen, mgr.chunky, r.Min.X, r.Min.Y, r)
	}

	draw := func() {
		mgr.drawCursor8(screen)
	}

	return mgr.compositeCursor(false, forced, restore, draw) || drained
}

func (mgr *Manager) updateDoubleAndTripleBuffer(intent frameIntent) bool {
	n := mgr.chunkyDirty.Len()
	mgr.chunkyDirty.Clear()
	drained := n > 0
	mgr.stats.RectsDrained += n

	shown := mgr.cursorShown(false)
	if !drained && !mgr.cursor.IsModified() && shown == mgr.cursorDrawn {
		mgr.cursor.Settle()
		return false
	}

	// the whole of the back buffer is redrawn so the previous cursor
	// position is always restored
	screen := mgr.buffers.Writable(intent.mode).Surface()
	mgr.rend.CopySurfaceToSurface(screen, mgr.chunky)
	if mgr.cursorDrawn {
		mgr.cursorDrawn = false
		mgr.stats.CursorRestores++
	}

	if shown {
		mgr.drawCursor8(screen)
		mgr.oldCursorRect = mgr.cursor.DstRect()
		mgr.cursorDrawn = true
		mgr.stats.CursorDraws++
	}

	mgr.cursor.Settle()
	return true
}

func (mgr *Manager) updateDirectBuffer() bool {
	screen := mgr.buffers.Front().Surface()

	restore := func(_ image.Rectangle) {
		mgr.restoreBackground(screen)
	}

	draw := func() {
		dst := mgr.cursor.DstRect()
		if mgr.cursorBackground == nil || mgr.cursorBackground.W != dst.Dx() || mgr.cursorBackground.H != dst.Dy() {
			mgr.cursorBackground = surface.New(dst.Dx(), dst.Dy(), surface.CLUT8())
		}
		mgr.cursorBackground.CopyFrom(screen, 0, 0, dst)
		mgr.backgroundValid = true
		mgr.drawCursor8(screen)
	}

	return mgr.compositeCursor(false, false, restore, draw)
}

// restoreBackground puts back the pixels saved from under the cursor in the
// direct rendering mode. Nothing is restored if the background has not been
// saved since the last reset.
func (mgr *Manager) restoreBackground(screen *surface.Surface) {
	if !mgr.backgroundValid {
		return
	}
	r := mgr.oldCursorRect
	screen.CopyFrom(mgr.cursorBackground, r.Min.X, r.Min.Y, mgr.cursorBackground.Bounds())
	mgr.backgroundValid = false
}

// eraseDirectCursor removes the cursor from the physical screen in the direct
// rendering mode. The cursor will be drawn again on the next UpdateScreen().
//
// Nothing happens while the overlay is visible. The cursor is then on the
// overlay buffer and is restored by the next UpdateScreen().
func (mgr *Manager) eraseDirectCursor() {
	if mgr.overlayVisible || !mgr.cursorDrawn {
		return
	}
	mgr.restoreBackground(mgr.buffers.Front().Surface())
	mgr.cursorDrawn = false
	mgr.stats.CursorRestores++
}
