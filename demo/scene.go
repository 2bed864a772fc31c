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


// Package demo draws an animated scene through the graphics manager. It is
// used by the command line tool to exercise the display pipeline in every
// graphics mode.
//
// The scene is a vertical gradient with a ball bouncing over it. The colours
// of the ball are animated by cycling a range of palette entries. A mouse
// cursor is shown and, when the overlay is visible, a panel is drawn on the
// overlay.
package demo

import (
	"image"

	"github.com/falcongfx/falcongfx/graphics"
	"github.com/falcongfx/falcongfx/graphics/videomode"
	"github.com/falcongfx/falcongfx/logger"
)

// palette layout.
const (
	backgroundStart = 1
	backgroundCount = 63
	ballStart       = 64
	ballCount       = 64
	cursorOutline   = 254
	cursorFill      = 255
)

const ballSize = 32

// cycle the ball colours every few frames.
const cycleRate = 2

// Scene is the animated demonstration scene.
type Scene struct {
	mgr *graphics.Manager

	frame int

	// the most recently drawn position of the ball and its velocity
	ball   image.Rectangle
	vx, vy int

	// ball mask. true where the ball covers the background
	mask []bool

	// palette entries for the ball colours. rotated by cycle()
	ballColors []byte

	// area of the screen redrawn in the most recent step
	scratch []byte

	// whether the overlay panel needs to be drawn
	overlayShown bool
}

// NewScene is the preferred method of initialisation for the Scene type.
func NewScene(mgr *graphics.Manager) *Scene {
	scn := &Scene{
		mgr:        mgr,
		vx:         3,
		vy:         2,
		mask:       make([]bool, ballSize*ballSize),
		ballColors: make([]byte, ballCount*3),
	}

	r := ballSize / 2
	for y := 0; y < ballSize; y++ {
		for x := 0; x < ballSize; x++ {
			dx := x - r
			dy := y - r
			scn.mask[y*ballSize+x] = dx*dx+dy*dy < r*r
		}
	}

	for i := 0; i < ballCount; i++ {
		v := uint8(i * 4)
		scn.ballColors[i*3] = 0xff
		scn.ballColors[i*3+1] = v
		scn.ballColors[i*3+2] = 0xff - v
	}

	return scn
}

// Setup changes the graphics mode and screen size and draws the first frame
// of the scene.
func (scn *Scene) Setup(mode videomode.Mode, width, height int) (videomode.TransactionError, error) {
	err := scn.mgr.BeginGFXTransaction()
	if err != nil {
		return videomode.Success, err
	}
	scn.mgr.SetGraphicsMode(mode)
	scn.mgr.InitSize(width, height, nil)
	flags, err := scn.mgr.EndGFXTransaction()
	if err != nil {
		return flags, err
	}
	if flags != videomode.Success {
		logger.Logf(logger.Allow, "demo", "setup: %v", flags)
	}

	scn.mgr.SetPalette(scn.palette(), 0, 256)
	scn.mgr.SetMouseCursor(arrow(), arrowWidth, arrowHeight, 0, 0, 0, nil)
	scn.mgr.ShowMouse(true)

	w := scn.mgr.Width()
	h := scn.mgr.Height()
	bg := make([]byte, w*h)
	scn.background(bg, image.Rect(0, 0, w, h))
	scn.mgr.CopyRectToScreen(bg, w, 0, 0, w, h)

	scn.ball = image.Rect(0, 0, ballSize, ballSize).Add(image.Pt(w/2-ballSize/2, h/2-ballSize/2))
	scn.drawBall(scn.ball)
	scn.frame = 0

	return flags, nil
}

// Frame returns the number of steps since the most recent call to Setup().
func (scn *Scene) Frame() int {
	return scn.frame
}

// Ball returns the position of the ball on the screen.
func (scn *Scene) Ball() image.Rectangle {
	return scn.ball
}

// Step advances the scene by one frame and updates the screen.
func (scn *Scene) Step() {
	scn.frame++

	scn.move()

	if scn.frame%cycleRate == 0 {
		scn.cycle()
	}

	if scn.mgr.IsOverlayVisible() {
		if !scn.overlayShown {
			scn.drawPanel()
			scn.overlayShown = true
		}
	} else {
		scn.overlayShown = false
	}

	scn.mgr.UpdateScreen()
}

func (scn *Scene) palette() []byte {
	p := make([]byte, 256*3)
	for i := 0; i < backgroundCount; i++ {
		v := uint8(i * 4)
		idx := (backgroundStart + i) * 3
		p[idx] = 0
		p[idx+1] = v / 2
		p[idx+2] = v
	}
	copy(p[ballStart*3:], scn.ballColors)
	p[cursorFill*3] = 0xff
	p[cursorFill*3+1] = 0xff
	p[cursorFill*3+2] = 0xff
	return p
}

// background fills buf with the background pixels for the rectangle r. The
// pitch of buf is the width of r.
func (scn *Scene) background(buf []byte, r image.Rectangle) {
	h := scn.mgr.Height()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		c := uint8(backgroundStart + y*backgroundCount/h)
		row := buf[(y-r.Min.Y)*r.Dx():]
		for x := 0; x < r.Dx(); x++ {
			row[x] = c
		}
	}
}

func (scn *Scene) move() {
	bounds := image.Rect(0, 0, scn.mgr.Width(), scn.mgr.Height())

	next := scn.ball.Add(image.Pt(scn.vx, scn.vy))
	if next.Min.X < bounds.Min.X || next.Max.X > bounds.Max.X {
		scn.vx = -scn.vx
	}
	if next.Min.Y < bounds.Min.Y || next.Max.Y > bounds.Max.Y {
		scn.vy = -scn.vy
	}
	next = scn.ball.Add(image.Pt(scn.vx, scn.vy))

	// redraw the background where the ball was and the ball where it is now
	// in one copy
	scn.redraw(scn.ball.Union(next).Intersect(bounds), next)
	scn.ball = next
}

func (scn *Scene) drawBall(ball image.Rectangle) {
	scn.redraw(ball, ball)
}

func (scn *Scene) redraw(area image.Rectangle, ball image.Rectangle) {
	if area.Empty() {
		return
	}

	sz := area.Dx() * area.Dy()
	if cap(scn.scratch) < sz {
		scn.scratch = make([]byte, sz)
	}
	buf := scn.scratch[:sz]
	scn.background(buf, area)

	for y := 0; y < ballSize; y++ {
		for x := 0; x < ballSize; x++ {
			if !scn.mask[y*ballSize+x] {
				continue
			}
			p := image.Pt(ball.Min.X+x, ball.Min.Y+y)
			if !p.In(area) {
				continue
			}
			buf[(p.Y-area.Min.Y)*area.Dx()+p.X-area.Min.X] = uint8(ballStart + (x+y)/2%ballCount)
		}
	}

	scn.mgr.CopyRectToScreen(buf, area.Dx(), area.Min.X, area.Min.Y, area.Dx(), area.Dy())
}

// cycle rotates the ball colours by one palette entry.
func (scn *Scene) cycle() {
	first := [3]byte{scn.ballColors[0], scn.ballColors[1], scn.ballColors[2]}
	copy(scn.ballColors, scn.ballColors[3:])
	copy(scn.ballColors[len(scn.ballColors)-3:], first[:])
	scn.mgr.SetPalette(scn.ballColors, ballStart, ballCount)
}

// panel colours in RGB565.
const (
	panelFill   = 0x2945
	panelBorder = 0xffff
)

// drawPanel draws a bordered box in the middle of the overlay over a copy of
// the game screen.
func (scn *Scene) drawPanel() {
	scn.mgr.ClearOverlay()

	ow := scn.mgr.OverlayWidth()
	oh := scn.mgr.OverlayHeight()
	pw := ow / 2
	ph := oh / 3

	buf := make([]byte, pw*ph*2)
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			c := uint16(panelFill)
			if x == 0 || y == 0 || x == pw-1 || y == ph-1 {
				c = panelBorder
			}
			i := (y*pw + x) * 2
			buf[i] = uint8(c)
			buf[i+1] = uint8(c >> 8)
		}
	}

	scn.mgr.CopyRectToOverlay(buf, pw*2, (ow-pw)/2, (oh-ph)/2, pw, ph)
}
