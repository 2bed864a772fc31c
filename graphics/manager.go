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

	"github.com/falcongfx/falcongfx/curated"
	"github.com/falcongfx/falcongfx/graphics/buffers"
	"github.com/falcongfx/falcongfx/graphics/cursor"
	"github.com/falcongfx/falcongfx/graphics/dirty"
	"github.com/falcongfx/falcongfx/graphics/palette"
	"github.com/falcongfx/falcongfx/graphics/renderer"
	"github.com/falcongfx/falcongfx/graphics/surface"
	"github.com/falcongfx/falcongfx/graphics/videomode"
	"github.com/falcongfx/falcongfx/hardware"
	"github.com/falcongfx/falcongfx/hardware/memory"
	"github.com/falcongfx/falcongfx/hardware/vblank"
	"github.com/falcongfx/falcongfx/hardware/videl"
	"github.com/falcongfx/falcongfx/logger"
)

// the largest screen supported. buffers are allocated for this size.
const (
	maxWidth  = 640
	maxHeight = 480
)

// error patterns.
const (
	AllocationFailed = "graphics: allocation failed: %v"
	ViewFailed       = "graphics: %v"
)

// the hardware resolution change waiting for the next UpdateScreen().
type pendingResolution int

const (
	resolutionNone pendingResolution = iota
	resolutionOverlay
	resolutionScreen
)

// Manager is the display backend.
type Manager struct {
	hw    hardware.Video
	clock vblank.Clock
	alloc *memory.Allocator
	rend  renderer.Renderer

	// the monitor can be changed at runtime. see SetMonitor()
	monitor videl.Monitor

	modes *videomode.Controller

	// physical screens and the physical overlay screen
	buffers *buffers.Set

	// off-screen surfaces
	chunkyBlock  *memory.Block
	chunky       *surface.Surface
	overlayBlock *memory.Block
	overlay      *surface.Surface

	chunkyDirty  *dirty.Tracker
	overlayDirty *dirty.Tracker

	palette          palette.Palette
	cursorPalette    palette.Palette
	cursorPaletteSet bool

	cursor *cursor.Cursor

	// the area of physical screen memory covered by the cursor. only valid
	// if cursorDrawn is true
	oldCursorRect image.Rectangle
	cursorDrawn   bool

	// pixels under the cursor in the direct rendering mode
	cursorBackground *surface.Surface
	backgroundValid  bool

	overlayVisible    bool
	pendingResolution pendingResolution
	pendingPalette    bool

	// aspect ratio correction as requested and as last applied to the
	// hardware
	aspect        bool
	appliedAspect bool

	vsync bool

	// greater than zero while vsync is suppressed. see suppressVsync()
	ignoreVsync int

	stats Stats
}

// NewManager is the preferred method of initialisation for the Manager type.
//
// All memory required by the manager is allocated here. Failure to allocate
// is fatal and the returned error should be treated accordingly.
func NewManager(hw hardware.Video, clock vblank.Clock, alloc *memory.Allocator) (*Manager, error) {
	caps := hw.Capabilities()

	mgr := &Manager{
		hw:           hw,
		clock:        clock,
		alloc:        alloc,
		rend:         renderer.New(caps),
		monitor:      caps.Monitor,
		modes:        videomode.NewController(caps.AcceleratedBlit),
		chunkyDirty:  dirty.NewTracker(),
		overlayDirty: dirty.NewTracker(),
		cursor:       cursor.NewCursor(),
		vsync:        true,
	}

	ow, oh := mgr.rend.OverlaySize()

	screenSize, err := memory.BufferSize(maxWidth, maxHeight, 1)
	if err != nil {
		return nil, curated.Errorf(AllocationFailed, err)
	}
	overlaySize, err := memory.BufferSize(ow, oh, 2)
	if err != nil {
		return nil, curated.Errorf(AllocationFailed, err)
	}

	mgr.buffers, err = buffers.NewSet(alloc, mgr.rend.ScreenBank(), screenSize, overlaySize)
	if err != nil {
		return nil, curated.Errorf(AllocationFailed, err)
	}

	mgr.chunkyBlock, err = mgr.rend.AllocFast(alloc, screenSize)
	if err != nil {
		mgr.Close()
		return nil, curated.Errorf(AllocationFailed, err)
	}

	mgr.overlayBlock, err = mgr.rend.AllocFast(alloc, overlaySize)
	if err != nil {
		mgr.Close()
		return nil, curated.Errorf(AllocationFailed, err)
	}

	mgr.chunky = surface.Wrap(mgr.chunkyBlock.Mem, 0, 0, 0, surface.CLUT8())
	mgr.overlay = surface.Wrap(mgr.overlayBlock.Mem, ow, oh, ow*2, surface.RGB565())

	_, err = mgr.buffers.Overlay().TrueColor16(ow, oh, surface.RGB565())
	if err != nil {
		mgr.Close()
		return nil, curated.Errorf(ViewFailed, err)
	}

	logger.Logf(logger.Allow, "graphics", "%s renderer. overlay is %dx%d", mgr.rend.Name(), ow, oh)

	return mgr, nil
}

// Close releases all memory allocated by the manager. The manager should not
// be used after Close() has been called.
func (mgr *Manager) Close() {
	if mgr.buffers != nil {
		mgr.buffers.Free(mgr.alloc)
		mgr.buffers = nil
	}
	if mgr.chunkyBlock != nil {
		mgr.alloc.Free(mgr.chunkyBlock)
		mgr.chunkyBlock = nil
	}
	if mgr.overlayBlock != nil {
		mgr.alloc.Free(mgr.overlayBlock)
		mgr.overlayBlock = nil
	}
}

// Accelerated returns true if the graphics accelerator is being used.
func (mgr *Manager) Accelerated() bool {
	return mgr.rend.Accelerated()
}

// SupportedGraphicsModes returns the list of buffering modes that can be
// requested with SetGraphicsMode().
func (mgr *Manager) SupportedGraphicsModes() []videomode.GraphicsMode {
	return videomode.SupportedModes(mgr.rend.Accelerated())
}

// DefaultGraphicsMode returns the buffering mode used if none is requested.
func (mgr *Manager) DefaultGraphicsMode() videomode.Mode {
	return videomode.DefaultMode
}

// GraphicsMode returns the current buffering mode.
func (mgr *Manager) GraphicsMode() videomode.Mode {
	return mgr.modes.Current().Mode
}

// Width returns the width of the game screen.
func (mgr *Manager) Width() int {
	return mgr.modes.Current().Width
}

// Height returns the height of the game screen.
func (mgr *Manager) Height() int {
	return mgr.modes.Current().Height
}

// BeginGFXTransaction starts a transaction. Changes requested with
// SetGraphicsMode() and InitSize() take effect when the transaction ends.
func (mgr *Manager) BeginGFXTransaction() error {
	return mgr.modes.BeginTransaction()
}

// SetGraphicsMode requests a buffering mode. Returns false if the mode is not
// supported, in which case the transaction will fail.
func (mgr *Manager) SetGraphicsMode(mode videomode.Mode) bool {
	return mgr.modes.SetMode(mode)
}

// InitSize requests a screen size. A nil format requests 8-bit indexed
// pixels, which is the only format supported for the game screen.
func (mgr *Manager) InitSize(width int, height int, format *surface.PixelFormat) {
	mgr.modes.InitSize(width, height, format)
}

// EndGFXTransaction ends the transaction. The requested state is validated
// and, if it is valid, committed.
//
// If the state is not valid the flags indicate the problems and the error
// lists them. The current state is left unchanged.
//
// A successful transaction always resets the screen, even if nothing has
// changed. Surfaces and buffers are cleared, dirty areas are forgotten and
// the cursor is moved to the centre of the screen. The hardware resolution is
// changed on the next call to UpdateScreen().
func (mgr *Manager) EndGFXTransaction() (videomode.TransactionError, error) {
	flags, err := mgr.modes.EndTransaction()
	if flags != videomode.Success {
		logger.Log(logger.Allow, "graphics", err)
		return flags, err
	}

	pending := mgr.modes.Pending()

	// every screen must accept the new size before any of them are viewed
	for i := 0; i < buffers.NumScreens; i++ {
		if err := mgr.buffers.Screen(i).Fits(pending.Width, pending.Height, 1); err != nil {
			mgr.modes.Abandon()
			logger.Log(logger.Allow, "graphics", err)
			return videomode.ModeSwitchFailed | videomode.SizeChangeFailed, curated.Errorf(ViewFailed, err)
		}
	}
	for i := 0; i < buffers.NumScreens; i++ {
		if _, err := mgr.buffers.Screen(i).Indexed8(pending.Width, pending.Height); err != nil {
			panic(err)
		}
	}
	mgr.chunky = surface.Wrap(mgr.chunkyBlock.Mem, pending.Width, pending.Height, pending.Width, surface.CLUT8())

	mgr.buffers.Clear()
	clear(mgr.chunkyBlock.Mem)
	mgr.chunkyDirty.Clear()
	mgr.overlayDirty.Clear()

	mgr.cursorDrawn = false
	mgr.backgroundValid = false
	mgr.cursor.SetPosition(pending.Width/2, pending.Height/2, true)

	// the physical overlay screen has been cleared too
	if mgr.overlayVisible {
		mgr.overlayDirty.Record(mgr.overlay.Bounds(), mgr.overlay.Bounds(), false)
	} else {
		mgr.pendingResolution = resolutionScreen
	}

	mgr.modes.Commit()

	return videomode.Success, nil
}

// SetPalette sets count entries of the game palette, starting at entry start.
// The colors slice holds three bytes, red, green and blue, for each entry.
// The range must be within the 256 entries of the palette.
//
// The palette is uploaded to the hardware immediately unless the overlay is
// visible.
func (mgr *Manager) SetPalette(colors []byte, start int, count int) {
	mgr.palette.Set(colors, start, count)

	if mgr.overlayVisible {
		mgr.pendingPalette = true

		// 8-bit cursors on the overlay may be using the game palette
		if !mgr.cursorPaletteSet {
			mgr.cursor.MarkChanged()
		}
		return
	}

	mgr.hw.SetPalette(mgr.palette.Packed())
	mgr.stats.PaletteUploads++
}

// GrabPalette is the inverse of SetPalette().
func (mgr *Manager) GrabPalette(colors []byte, start int, count int) {
	mgr.palette.Grab(colors, start, count)
}

// the surface the game is drawing to. in the direct rendering mode this is
// the physical screen.
func (mgr *Manager) gameSurface() *surface.Surface {
	if mgr.modes.Current().Mode == videomode.Direct {
		return mgr.buffers.Front().Surface()
	}
	return mgr.chunky
}

// dirty areas of the chunky surface are aligned in single buffered mode
// because they are copied directly to planar screen memory.
func (mgr *Manager) alignDirty() bool {
	return mgr.modes.Current().Mode == videomode.Single && !mgr.rend.Accelerated()
}

func (mgr *Manager) markChunky(r image.Rectangle) {
	mgr.chunkyDirty.Record(r, mgr.chunky.Bounds(), mgr.alignDirty())
}

// CopyRectToScreen copies a w by h block of 8-bit pixels to the game screen
// at x, y. The pitch is the number of bytes between rows in buf.
//
// In the direct rendering mode the pixels are written to the physical screen
// immediately, without waiting for the vertical blank.
func (mgr *Manager) CopyRectToScreen(buf []byte, pitch int, x, y, w, h int) {
	r := image.Rect(x, y, x+w, y+h)

	if mgr.modes.Current().Mode == videomode.Direct {
		if mgr.cursorDrawn && r.Overlaps(mgr.oldCursorRect) {
			mgr.eraseDirectCursor()
		}
		mgr.gameSurface().CopyRectToSurface(buf, pitch, x, y, w, h)

		defer mgr.suppressVsync()()
		mgr.UpdateScreen()
		return
	}

	mgr.chunky.CopyRectToSurface(buf, pitch, x, y, w, h)
	mgr.markChunky(r)
}

// LockScreen returns the game surface for direct manipulation. UnlockScreen()
// must be called once the manipulation is complete.
func (mgr *Manager) LockScreen() *surface.Surface {
	if mgr.modes.Current().Mode == videomode.Direct {
		mgr.eraseDirectCursor()
	}
	return mgr.gameSurface()
}

// UnlockScreen indicates that manipulation of the surface returned by
// LockScreen() has completed.
func (mgr *Manager) UnlockScreen() {
	if mgr.modes.Current().Mode == videomode.Direct {
		return
	}
	mgr.markChunky(mgr.chunky.Bounds())
}

// FillScreen fills the game screen with a single colour.
func (mgr *Manager) FillScreen(col uint32) {
	if mgr.modes.Current().Mode == videomode.Direct {
		mgr.eraseDirectCursor()
		mgr.gameSurface().Fill(col)

		defer mgr.suppressVsync()()
		mgr.UpdateScreen()
		return
	}

	mgr.chunky.Fill(col)
	mgr.markChunky(mgr.chunky.Bounds())
}

// SetShakePos is accepted for compatibility. Screen shaking is not
// supported and the function has no effect.
func (mgr *Manager) SetShakePos(shakeXOffset, shakeYOffset int) {
}
