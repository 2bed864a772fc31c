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


// Package ebitenhost presents the screen memory in a window managed by ebiten.
// It is an alternative to the sdlhost package for platforms where SDL is not
// available.
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/falcongfx/falcongfx/hardware"
	"github.com/falcongfx/falcongfx/hardware/vblank"
	"github.com/falcongfx/falcongfx/host"
	"github.com/falcongfx/falcongfx/host/headless"
	"github.com/falcongfx/falcongfx/logger"
)

// Game implements the hardware.Video interface and the ebiten.Game interface.
type Game struct {
	*headless.Host

	input host.Input

	// frame is called once per ebiten update. returning false ends the
	// game loop
	frame func() bool

	// status is printed over the screen when showStatus is true
	status     func() string
	showStatus bool

	tex   *ebiten.Image
	texW  int
	texH  int
	scale int

	// frame number of the most recently presented latch
	presented uint32

	// most recent cursor position reported by ebiten
	mouseX, mouseY int
}

// NewGame is the preferred method of initialisation for the Game type.
func NewGame(caps hardware.Capabilities, clock vblank.Clock, scale int) *Game {
	gm := &Game{
		Host:  headless.NewHost(caps, clock),
		scale: max(scale, 1),
	}
	ebiten.SetWindowTitle("Falcongfx")
	ebiten.SetWindowSize(640*gm.scale, 480*gm.scale)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	return gm
}

// Run the game loop. The frame function is called once per update and the
// status function provides the text shown when F3 is pressed. Run returns
// when the window is closed or when the frame function returns false.
func (gm *Game) Run(input host.Input, frame func() bool, status func() string) error {
	gm.input = input
	gm.frame = frame
	gm.status = status
	err := ebiten.RunGame(gm)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// Update implements the ebiten.Game interface.
func (gm *Game) Update() error {
	x, y := ebiten.CursorPosition()
	if dx, dy := x-gm.mouseX, y-gm.mouseY; dx != 0 || dy != 0 {
		gm.input.UpdateMousePosition(dx, dy)
	}
	gm.mouseX, gm.mouseY = x, y

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		host.ToggleOverlay(gm.input)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		gm.input.ToggleAspectRatioCorrection()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		gm.showStatus = !gm.showStatus
	}

	if gm.frame != nil && !gm.frame() {
		return ebiten.Termination
	}

	return nil
}

// Draw implements the ebiten.Game interface.
func (gm *Game) Draw(screen *ebiten.Image) {
	regs, frame := gm.Latched()

	if frame != gm.presented || gm.tex == nil {
		img := headless.Decode(regs)
		if img == nil {
			return
		}
		gm.presented = frame

		w := img.Bounds().Dx()
		h := img.Bounds().Dy()
		if gm.tex == nil || w != gm.texW || h != gm.texH {
			if gm.tex != nil {
				gm.tex.Deallocate()
			}
			gm.tex = ebiten.NewImage(w, h)
			gm.texW = w
			gm.texH = h

			ww := 640 * gm.scale
			wh := int(float32(ww*h) / float32(w) * regs.Resolution.PixelAspect)
			ebiten.SetWindowSize(ww, wh)
			logger.Logf(logger.Allow, "ebitenhost", "screen: %dx%d window: %dx%d", w, h, ww, wh)
		}
		gm.tex.WritePixels(img.Pix)
	}

	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(sw)/float64(gm.texW), float64(sh)/float64(gm.texH))
	opts.Filter = ebiten.FilterNearest
	screen.DrawImage(gm.tex, opts)

	if gm.showStatus && gm.status != nil {
		ebitenutil.DebugPrintAt(screen, gm.status(), 4, 4)
	}
}

// Layout implements the ebiten.Game interface.
func (gm *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
