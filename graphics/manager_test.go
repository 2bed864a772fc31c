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
	"image/color"
	"testing"

	"github.com/falcongfx/falcongfx/curated"
	"github.com/falcongfx/falcongfx/graphics/buffers"
	"github.com/falcongfx/falcongfx/graphics/videomode"
	"github.com/falcongfx/falcongfx/hardware"
	"github.com/falcongfx/falcongfx/hardware/memory"
	"github.com/falcongfx/falcongfx/hardware/vblank"
	"github.com/falcongfx/falcongfx/hardware/videl"
	"github.com/falcongfx/falcongfx/host/headless"
	"github.com/falcongfx/falcongfx/test"
)

type harness struct {
	mgr  *Manager
	host *headless.Host
	clk  *vblank.Manual
}

func newHarness(t *testing.T, accelerated bool) *harness {
	t.Helper()

	clk := vblank.NewManual()
	host := headless.NewHost(hardware.Capabilities{AcceleratedBlit: accelerated}, clk)
	mgr, err := NewManager(host, clk, memory.NewAllocator())
	test.DemandSuccess(t, err)
	t.Cleanup(mgr.Close)

	return &harness{mgr: mgr, host: host, clk: clk}
}

func (h *harness) init(t *testing.T, mode videomode.Mode, w, ht int) {
	t.Helper()

	test.DemandSuccess(t, h.mgr.BeginGFXTransaction())
	h.mgr.SetGraphicsMode(mode)
	h.mgr.InitSize(w, ht, nil)
	flags, err := h.mgr.EndGFXTransaction()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, flags, videomode.Success)

	h.mgr.SetPalette(testPalette(), 0, 256)
}

// entry i of the test palette.
func paletteColor(i int) color.RGBA {
	return color.RGBA{R: uint8(i), G: uint8(255 - i), B: 0x80, A: 0xff}
}

func testPalette() []byte {
	p := make([]byte, 256*3)
	for i := 0; i < 256; i++ {
		c := paletteColor(i)
		p[i*3] = c.R
		p[i*3+1] = c.G
		p[i*3+2] = c.B
	}
	return p
}

func (h *harness) snapshot(t *testing.T) *image.RGBA {
	t.Helper()
	img := h.host.Snapshot()
	test.DemandSuccess(t, img != nil)
	return img
}

// setCursor sets an 8x8 cursor of colour 7 with the hotspot in the top left
// corner.
func (h *harness) setCursor() {
	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = 7
	}
	h.mgr.SetMouseCursor(buf, 8, 8, 0, 0, 0, nil)
	h.mgr.ShowMouse(true)
}

var variants = []struct {
	name        string
	accelerated bool
}{
	{name: "planar", accelerated: false},
	{name: "accelerated", accelerated: true},
}

func TestNoOpTransaction(t *testing.T) {
	for _, v := range variants {
		h := newHarness(t, v.accelerated)
		h.init(t, videomode.Single, 320, 200)

		h.mgr.CopyRectToScreen(make([]byte, 64), 8, 4, 4, 8, 8)
		h.mgr.CopyRectToOverlay(make([]byte, 32), 16, 0, 0, 8, 2)
		h.mgr.WarpMouse(10, 20)
		test.ExpectFailure(t, h.mgr.chunkyDirty.Empty(), v.name)
		test.ExpectFailure(t, h.mgr.overlayDirty.Empty(), v.name)

		// same state as current
		test.DemandSuccess(t, h.mgr.BeginGFXTransaction())
		h.mgr.SetGraphicsMode(videomode.Single)
		h.mgr.InitSize(320, 200, nil)
		flags, err := h.mgr.EndGFXTransaction()
		test.ExpectSuccess(t, err, v.name)
		test.ExpectEquality(t, flags, videomode.Success, v.name)

		test.ExpectSuccess(t, h.mgr.chunkyDirty.Empty(), v.name)
		test.ExpectSuccess(t, h.mgr.overlayDirty.Empty(), v.name)
		x, y := h.mgr.MousePosition()
		test.ExpectEquality(t, x, 160, v.name)
		test.ExpectEquality(t, y, 100, v.name)
		test.ExpectEquality(t, h.mgr.pendingResolution, resolutionScreen, v.name)
	}
}

func TestFailedTransaction(t *testing.T) {
	h := newHarness(t, false)
	h.init(t, videomode.Single, 320, 200)

	test.DemandSuccess(t, h.mgr.BeginGFXTransaction())
	test.ExpectFailure(t, h.mgr.SetGraphicsMode(videomode.Direct))
	h.mgr.InitSize(100, 100, nil)
	flags, err := h.mgr.EndGFXTransaction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, flags.Has(videomode.ModeSwitchFailed|videomode.SizeChangeFailed))

	// current state is unchanged
	test.ExpectEquality(t, h.mgr.GraphicsMode(), videomode.Single)
	test.ExpectEquality(t, h.mgr.Width(), 320)
	test.ExpectEquality(t, h.mgr.Height(), 200)
}

func TestSingleBufferCopy(t *testing.T) {
	for _, v := range variants {
		h := newHarness(t, v.accelerated)
		h.init(t, videomode.Single, 320, 200)

		h.mgr.FillScreen(5)
		h.mgr.UpdateScreen()

		h.mgr.CopyRectToScreen(make([]byte, 256), 16, 0, 0, 16, 16)
		h.mgr.UpdateScreen()
		test.ExpectSuccess(t, h.mgr.chunkyDirty.Empty(), v.name)

		img := h.snapshot(t)
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				test.ExpectEquality(t, img.RGBAAt(x, y), paletteColor(0), v.name, x, y)
			}
		}
		test.ExpectEquality(t, img.RGBAAt(16, 0), paletteColor(5), v.name)
		test.ExpectEquality(t, img.RGBAAt(0, 16), paletteColor(5), v.name)
		test.ExpectEquality(t, img.RGBAAt(319, 199), paletteColor(5), v.name)
	}
}

func TestCursorSettles(t *testing.T) {
	for _, v := range variants {
		for _, mode := range []videomode.Mode{videomode.Single, videomode.Double, videomode.Triple} {
			h := newHarness(t, v.accelerated)
			h.init(t, mode, 320, 200)
			h.setCursor()
			h.mgr.WarpMouse(100, 100)

			h.mgr.UpdateScreen()
			first := h.mgr.Stats()
			test.ExpectEquality(t, first.CursorDraws, 1, v.name, mode)

			img := h.snapshot(t)
			test.ExpectEquality(t, img.RGBAAt(100, 100), paletteColor(7), v.name, mode)
			test.ExpectEquality(t, img.RGBAAt(107, 107), paletteColor(7), v.name, mode)
			test.ExpectEquality(t, img.RGBAAt(108, 100), paletteColor(0), v.name, mode)

			// nothing has changed so nothing is redrawn or restored
			h.mgr.UpdateScreen()
			second := h.mgr.Stats()
			test.ExpectFailure(t, h.mgr.cursor.IsModified(), v.name, mode)
			test.ExpectEquality(t, second.CursorDraws, first.CursorDraws, v.name, mode)
			test.ExpectEquality(t, second.CursorRestores, first.CursorRestores, v.name, mode)
			test.ExpectEquality(t, h.mgr.oldCursorRect, h.mgr.cursor.DstRect(), v.name, mode)
		}
	}
}

func TestCursorMovement(t *testing.T) {
	for _, v := range variants {
		for _, mode := range []videomode.Mode{videomode.Single, videomode.Double, videomode.Triple} {
			h := newHarness(t, v.accelerated)
			h.init(t, mode, 320, 200)
			h.mgr.FillScreen(3)
			h.setCursor()
			h.mgr.WarpMouse(100, 100)
			h.mgr.UpdateScreen()

			h.mgr.WarpMouse(200, 150)
			h.mgr.UpdateScreen()

			img := h.snapshot(t)
			test.ExpectEquality(t, img.RGBAAt(100, 100), paletteColor(3), v.name, mode)
			test.ExpectEquality(t, img.RGBAAt(200, 150), paletteColor(7), v.name, mode)
			test.ExpectEquality(t, h.mgr.Stats().CursorRestores, 1, v.name, mode)

			// hiding the cursor restores the background
			h.mgr.ShowMouse(false)
			h.mgr.UpdateScreen()
			img = h.snapshot(t)
			test.ExpectEquality(t, img.RGBAAt(200, 150), paletteColor(3), v.name, mode)
		}
	}
}

func TestCursorOutOfScreen(t *testing.T) {
	for _, v := range variants {
		h := newHarness(t, v.accelerated)
		h.init(t, videomode.Single, 320, 200)
		h.setCursor()
		h.mgr.WarpMouse(500, 500)
		h.mgr.UpdateScreen()

		test.ExpectSuccess(t, h.mgr.cursor.OutOfScreen(), v.name)
		test.ExpectEquality(t, h.mgr.Stats().CursorDraws, 0, v.name)

		// the screen is untouched
		for _, b := range h.mgr.buffers.Front().Block.Mem {
			if b != 0 {
				t.Fatalf("%s: screen memory has been written to", v.name)
			}
		}
	}
}

func TestDirtyOverlapsCursor(t *testing.T) {
	h := newHarness(t, false)
	h.init(t, videomode.Single, 320, 200)
	h.setCursor()
	h.mgr.WarpMouse(100, 100)
	h.mgr.UpdateScreen()

	// a write under the cursor forces the cursor to be redrawn
	buf := make([]byte, 16*16)
	for i := range buf {
		buf[i] = 9
	}
	h.mgr.CopyRectToScreen(buf, 16, 96, 96, 16, 16)
	h.mgr.UpdateScreen()

	img := h.snapshot(t)
	test.ExpectEquality(t, img.RGBAAt(96, 96), paletteColor(9))
	test.ExpectEquality(t, img.RGBAAt(100, 100), paletteColor(7))
	test.ExpectEquality(t, h.mgr.Stats().CursorDraws, 2)
}

func TestDirectRendering(t *testing.T) {
	h := newHarness(t, true)
	h.init(t, videomode.Direct, 320, 200)
	h.setCursor()
	h.mgr.WarpMouse(10, 10)
	h.mgr.UpdateScreen()

	screen := h.mgr.buffers.Front().Surface()
	test.ExpectEquality(t, screen.Pixel(10, 10), 7)

	// writes in direct mode are immediate and do not wait for the vertical
	// blank
	waits := h.clk.Waits()
	buf := make([]byte, 4*4)
	for i := range buf {
		buf[i] = 9
	}
	h.mgr.CopyRectToScreen(buf, 4, 8, 8, 4, 4)
	test.ExpectEquality(t, h.clk.Waits(), waits)
	test.ExpectEquality(t, h.mgr.ignoreVsync, 0)

	test.ExpectEquality(t, screen.Pixel(9, 9), 9)
	test.ExpectEquality(t, screen.Pixel(10, 10), 7)

	// the background saved under the cursor includes the write
	h.mgr.WarpMouse(100, 100)
	h.mgr.UpdateScreen()
	test.ExpectEquality(t, screen.Pixel(10, 10), 9)
	test.ExpectEquality(t, screen.Pixel(17, 17), 0)
	test.ExpectEquality(t, screen.Pixel(100, 100), 7)
}

func TestDoubleBuffering(t *testing.T) {
	h := newHarness(t, false)
	h.init(t, videomode.Double, 320, 200)

	h.mgr.FillScreen(1)
	h.mgr.UpdateScreen()
	front := h.mgr.buffers.Front().Block
	regs, _ := h.host.Latched()
	test.ExpectEquality(t, regs.Screen, front)

	h.mgr.FillScreen(2)
	h.mgr.UpdateScreen()
	test.ExpectInequality(t, h.mgr.buffers.Front().Block, front)
	regs, _ = h.host.Latched()
	test.ExpectEquality(t, regs.Screen, h.mgr.buffers.Front().Block)
	test.ExpectEquality(t, h.snapshot(t).RGBAAt(0, 0), paletteColor(2))

	// nothing changed. no rotation
	h.mgr.UpdateScreen()
	test.ExpectEquality(t, h.mgr.Stats().Rotations, 2)
}

func TestTripleBufferingNoVsync(t *testing.T) {
	h := newHarness(t, false)
	h.init(t, videomode.Triple, 320, 200)
	h.mgr.SetFeatureState(FeatureVSync, false)

	// the resolution change always waits
	h.mgr.FillScreen(1)
	h.mgr.UpdateScreen()
	test.ExpectEquality(t, h.clk.Waits(), 1)

	h.mgr.FillScreen(2)
	h.mgr.UpdateScreen()
	test.ExpectEquality(t, h.clk.Waits(), 1)
	test.ExpectEquality(t, h.mgr.Stats().Rotations, 2)

	h.mgr.SetFeatureState(FeatureVSync, true)
	h.mgr.FillScreen(3)
	h.mgr.UpdateScreen()
	test.ExpectEquality(t, h.clk.Waits(), 2)
}

func TestOverlay(t *testing.T) {
	for _, v := range variants {
		h := newHarness(t, v.accelerated)
		h.init(t, videomode.Triple, 320, 200)
		ow, oh := h.mgr.OverlayWidth(), h.mgr.OverlayHeight()

		h.mgr.ShowOverlay()
		test.ExpectSuccess(t, h.mgr.IsOverlayVisible(), v.name)

		// red block in the overlay format
		buf := make([]byte, 4*4*2)
		for i := 0; i < len(buf); i += 2 {
			buf[i] = 0x00
			buf[i+1] = 0xf8
		}
		h.mgr.CopyRectToOverlay(buf, 8, 4, 4, 4, 4)
		h.mgr.UpdateScreen()

		regs, _ := h.host.Latched()
		test.ExpectEquality(t, regs.Resolution.Layout, videl.TrueColor16, v.name)
		test.ExpectEquality(t, regs.Resolution.Width, ow, v.name)
		test.ExpectEquality(t, regs.Resolution.Height, oh, v.name)

		img := h.snapshot(t)
		test.ExpectEquality(t, img.RGBAAt(4, 4), color.RGBA{R: 0xff, A: 0xff}, v.name)
		test.ExpectEquality(t, img.RGBAAt(3, 4), color.RGBA{A: 0xff}, v.name)

		h.mgr.HideOverlay()
		h.mgr.UpdateScreen()
		regs, _ = h.host.Latched()
		test.ExpectInequality(t, regs.Resolution.Layout, videl.TrueColor16, v.name)
		test.ExpectEquality(t, regs.Resolution.Width, 320, v.name)
		test.ExpectEquality(t, regs.Resolution.Height, 200, v.name)
		test.ExpectEquality(t, h.snapshot(t).RGBAAt(0, 0), paletteColor(0), v.name)
	}
}

func TestDirectRenderingWithOverlay(t *testing.T) {
	h := newHarness(t, true)
	h.init(t, videomode.Direct, 320, 200)
	h.setCursor()
	h.mgr.ShowOverlay()

	screen := h.mgr.buffers.Overlay().Surface()
	front := h.mgr.buffers.Front().Surface()

	h.mgr.WarpMouse(100, 100)
	h.mgr.UpdateScreen()
	test.DemandSuccess(t, screen.Pixel(100, 100) != h.mgr.overlay.Pixel(100, 100))

	buf := make([]byte, 4*4)
	for i := range buf {
		buf[i] = 9
	}

	// game screen writes while the overlay is visible. each is preceded by
	// a cursor movement
	writes := []struct {
		name  string
		x, y  int
		write func()
	}{
		{name: "fill", x: 200, y: 150, write: func() {
			h.mgr.FillScreen(3)
		}},
		{name: "lock", x: 50, y: 200, write: func() {
			s := h.mgr.LockScreen()
			s.SetPixel(0, 0, 5)
			h.mgr.UnlockScreen()
			h.mgr.UpdateScreen()
		}},
		{name: "copy", x: 150, y: 50, write: func() {
			h.mgr.CopyRectToScreen(buf, 4, 100, 100, 4, 4)
		}},
	}

	oldX, oldY := 100, 100
	for _, w := range writes {
		h.mgr.WarpMouse(w.x, w.y)
		w.write()

		// nothing is left behind at the previous cursor position
		test.ExpectEquality(t, screen.Pixel(oldX, oldY), h.mgr.overlay.Pixel(oldX, oldY), w.name)
		test.ExpectEquality(t, screen.Pixel(oldX+7, oldY+7), h.mgr.overlay.Pixel(oldX+7, oldY+7), w.name)
		test.ExpectInequality(t, screen.Pixel(w.x, w.y), h.mgr.overlay.Pixel(w.x, w.y), w.name)
		oldX, oldY = w.x, w.y
	}

	// the game screen never had the cursor drawn on it
	test.ExpectEquality(t, front.Pixel(100, 100), 9)
	test.ExpectEquality(t, front.Pixel(200, 150), 3)
	test.ExpectEquality(t, front.Pixel(0, 0), 5)
}

func TestOverlayCursor(t *testing.T) {
	h := newHarness(t, false)
	h.init(t, videomode.Single, 320, 200)
	h.setCursor()
	h.mgr.ShowOverlay()

	// cursor palette entry 7 is pure green
	cp := make([]byte, 3)
	cp[1] = 0xff
	h.mgr.SetCursorPalette(cp, 7, 1)

	h.mgr.WarpMouse(50, 50)
	h.mgr.UpdateScreen()

	screen := h.mgr.buffers.Overlay().Surface()
	test.ExpectEquality(t, screen.Pixel(50, 50), 0x07e0)
	test.ExpectEquality(t, screen.Pixel(49, 50), 0)

	// 16-bit cursors are shown on the overlay
	buf := make([]byte, 4*4*2)
	for i := 0; i < len(buf); i += 2 {
		buf[i] = 0x1f
	}
	format := h.mgr.OverlayFormat()
	h.mgr.SetMouseCursor(buf, 4, 4, 0, 0, 0, &format)
	h.mgr.UpdateScreen()
	test.ExpectEquality(t, screen.Pixel(50, 50), 0x001f)
	test.ExpectEquality(t, screen.Pixel(55, 55), 0)

	// but not on the game screen
	h.mgr.HideOverlay()
	h.mgr.UpdateScreen()
	test.ExpectFailure(t, h.mgr.cursorDrawn)
}

func TestClearOverlay(t *testing.T) {
	// planar: 320x240 overlay, game screen copied without scaling
	h := newHarness(t, false)
	h.init(t, videomode.Single, 320, 200)
	h.mgr.FillScreen(5)
	h.mgr.ClearOverlay()

	col := h.mgr.OverlayFormat().RGBToColor(paletteColor(5).R, paletteColor(5).G, paletteColor(5).B)
	test.ExpectEquality(t, h.mgr.overlay.Pixel(0, 19), 0)
	test.ExpectEquality(t, h.mgr.overlay.Pixel(0, 20), col)
	test.ExpectEquality(t, h.mgr.overlay.Pixel(319, 219), col)
	test.ExpectEquality(t, h.mgr.overlay.Pixel(319, 220), 0)

	// accelerated: 640x480 overlay, game screen doubled
	h = newHarness(t, true)
	h.init(t, videomode.Single, 320, 200)
	h.mgr.FillScreen(5)
	h.mgr.ClearOverlay()
	test.ExpectEquality(t, h.mgr.overlay.Pixel(0, 39), 0)
	test.ExpectEquality(t, h.mgr.overlay.Pixel(0, 40), col)
	test.ExpectEquality(t, h.mgr.overlay.Pixel(639, 439), col)
	test.ExpectEquality(t, h.mgr.overlay.Pixel(639, 440), 0)
}

func TestPaletteRoundTrip(t *testing.T) {
	h := newHarness(t, false)
	h.init(t, videomode.Single, 320, 200)

	src := testPalette()[30:60]
	h.mgr.SetPalette(src, 10, 10)
	dst := make([]byte, 30)
	h.mgr.GrabPalette(dst, 10, 10)
	test.ExpectEquality(t, string(dst), string(src))
}

func TestPaletteDeferredByOverlay(t *testing.T) {
	h := newHarness(t, false)
	h.init(t, videomode.Single, 320, 200)
	h.mgr.UpdateScreen()
	uploads := h.mgr.Stats().PaletteUploads

	h.mgr.ShowOverlay()
	h.mgr.SetPalette([]byte{1, 2, 3}, 0, 1)
	test.ExpectEquality(t, h.mgr.Stats().PaletteUploads, uploads)

	h.mgr.HideOverlay()
	h.mgr.UpdateScreen()
	test.ExpectEquality(t, h.mgr.Stats().PaletteUploads, uploads+1)
	test.ExpectEquality(t, h.snapshot(t).RGBAAt(0, 0), color.RGBA{R: 1, G: 2, B: 3, A: 0xff})
}

func TestAspectRatioCorrection(t *testing.T) {
	h := newHarness(t, false)
	h.init(t, videomode.Single, 320, 200)
	h.mgr.UpdateScreen()

	regs, _ := h.host.Latched()
	test.ExpectFailure(t, regs.Resolution.Aspect)

	h.mgr.ToggleAspectRatioCorrection()
	test.ExpectSuccess(t, h.mgr.FeatureState(FeatureAspectRatioCorrection))
	h.mgr.UpdateScreen()

	regs, _ = h.host.Latched()
	test.ExpectSuccess(t, regs.Resolution.Aspect)
	test.ExpectApproximate(t, regs.Resolution.PixelAspect, 1.2, 0.001)
	test.ExpectEquality(t, h.mgr.Stats().ResolutionChanges, 2)

	// no further change
	h.mgr.UpdateScreen()
	test.ExpectEquality(t, h.mgr.Stats().ResolutionChanges, 2)
}

func TestUpdateMousePosition(t *testing.T) {
	h := newHarness(t, false)
	h.init(t, videomode.Single, 320, 200)
	h.setCursor()

	h.mgr.UpdateMousePosition(-1000, 1000)
	x, y := h.mgr.MousePosition()
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, y, 199)

	// position is scaled to the overlay
	h.mgr.WarpMouse(160, 100)
	h.mgr.ShowOverlay()
	x, y = h.mgr.MousePosition()
	test.ExpectEquality(t, x, 160)
	test.ExpectEquality(t, y, 120)

	h.mgr.UpdateMousePosition(1000, 1000)
	x, y = h.mgr.MousePosition()
	test.ExpectEquality(t, x, h.mgr.OverlayWidth()-1)
	test.ExpectEquality(t, y, h.mgr.OverlayHeight()-1)
}

func TestSuppressVsync(t *testing.T) {
	h := newHarness(t, false)

	release1 := h.mgr.suppressVsync()
	release2 := h.mgr.suppressVsync()
	test.ExpectEquality(t, h.mgr.ignoreVsync, 2)

	// releasing twice has no extra effect
	release2()
	release2()
	test.ExpectEquality(t, h.mgr.ignoreVsync, 1)
	test.ExpectFailure(t, h.mgr.intent().vsync)

	release1()
	test.ExpectEquality(t, h.mgr.ignoreVsync, 0)
	test.ExpectSuccess(t, h.mgr.intent().vsync)
}

func TestOutOfMemory(t *testing.T) {
	clk := vblank.NewManual()
	host := headless.NewHost(hardware.Capabilities{}, clk)
	alloc := memory.NewAllocator()
	// room for two screens but not three
	alloc.SetCapacity(memory.STRAM, 3*640*480)

	_, err := NewManager(host, clk, alloc)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, memory.OutOfMemory))

	// nothing is left allocated
	test.ExpectEquality(t, alloc.Available(memory.STRAM), 3*640*480)
}

func TestViewFailureNotApplied(t *testing.T) {
	h := newHarness(t, false)
	h.init(t, videomode.Single, 320, 200)

	// the last screen can no longer hold a larger view
	last := h.mgr.buffers.Screen(buffers.NumScreens - 1)
	last.Block.Mem = last.Block.Mem[:320*200]

	test.DemandSuccess(t, h.mgr.BeginGFXTransaction())
	h.mgr.InitSize(640, 480, nil)
	flags, err := h.mgr.EndGFXTransaction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, flags&videomode.SizeChangeFailed == videomode.SizeChangeFailed)

	// nothing was changed
	test.ExpectEquality(t, h.mgr.Width(), 320)
	test.ExpectEquality(t, h.mgr.Height(), 200)
	test.ExpectEquality(t, h.mgr.modes.Pending(), h.mgr.modes.Current())
	for i := 0; i < buffers.NumScreens; i++ {
		s := h.mgr.buffers.Screen(i).Surface()
		test.DemandSuccess(t, s != nil)
		test.ExpectEquality(t, s.W, 320)
		test.ExpectEquality(t, s.H, 200)
	}
}
