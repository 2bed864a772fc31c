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

// Package sdlhost presents the screen memory in an SDL window. The screen is
// uploaded to an OpenGL texture and drawn as a single quad, stretched
// vertically by the pixel aspect of the resolution.
//
// SDL requires that all window functions are called from the main thread.
// NewWindow() locks the calling goroutine to its thread and every other
// function must be called from the same goroutine.
package sdlhost

import (
	"fmt"
	"image"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/falcongfx/falcongfx/hardware"
	"github.com/falcongfx/falcongfx/hardware/vblank"
	"github.com/falcongfx/falcongfx/host"
	"github.com/falcongfx/falcongfx/host/headless"
	"github.com/falcongfx/falcongfx/logger"
)

// Window is an SDL window that implements the hardware.Video interface.
//
// Publish() must be called by the graphics pipeline after each frame.
type Window struct {
	*headless.Host

	window    *sdl.Window
	glContext sdl.GLContext
	texture   uint32

	// size of the texture. the texture is recreated when the resolution
	// changes
	texW, texH int

	scale int
}

// NewWindow is the preferred method of initialisation for the Window type.
// The window is sized to scale times the size of the screen.
func NewWindow(caps hardware.Capabilities, clock vblank.Clock, scale int) (*Window, error) {
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: failed to initialise SDL: %w", err)
	}

	win := &Window{
		Host:  headless.NewHost(caps, clock),
		scale: max(scale, 1),
	}

	// the window is serviced on a different goroutine to the graphics
	// pipeline. screen memory is only shown once it has been published
	win.EnablePublishing()

	win.window, err = sdl.CreateWindow("Falcongfx", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(320*win.scale), int32(240*win.scale), sdl.WINDOW_OPENGL)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlhost: failed to create window: %w", err)
	}

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	win.glContext, err = win.window.GLCreateContext()
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("sdlhost: failed to create OpenGL context: %w", err)
	}
	err = win.window.GLMakeCurrent(win.glContext)
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("sdlhost: failed to set current OpenGL context: %w", err)
	}

	err = gl.Init()
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("sdlhost: %w", err)
	}

	logger.Logf(logger.Allow, "sdlhost", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "sdlhost", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "sdlhost", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	_ = sdl.GLSetSwapInterval(1)

	gl.GenTextures(1, &win.texture)
	gl.BindTexture(gl.TEXTURE_2D, win.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)

	// the mouse reports relative movement. the cursor itself is drawn by
	// the graphics backend
	_, _ = sdl.ShowCursor(sdl.DISABLE)
	sdl.SetRelativeMouseMode(true)

	return win, nil
}

// Destroy the window and release all resources.
func (win *Window) Destroy() {
	if win.texture != 0 {
		gl.DeleteTextures(1, &win.texture)
		win.texture = 0
	}
	if win.glContext != nil {
		sdl.GLDeleteContext(win.glContext)
		win.glContext = nil
	}
	if win.window != nil {
		_ = win.window.Destroy()
		win.window = nil
	}
	sdl.Quit()
}

// Service handles pending window events and presents the screen latched at
// the most recent vertical blank. Returns false if the window has been
// closed.
//
// F1 toggles the overlay and F2 toggles aspect ratio correction.
func (win *Window) Service(input host.Input) bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.MouseMotionEvent:
			input.UpdateMousePosition(int(ev.XRel), int(ev.YRel))

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				break
			}
			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE:
				return false
			case sdl.K_F1:
				host.ToggleOverlay(input)
			case sdl.K_F2:
				input.ToggleAspectRatioCorrection()
			}
		}
	}

	regs, _ := win.Latched()
	img := headless.Decode(regs)
	if img != nil {
		win.present(img, regs.Resolution.PixelAspect)
	}

	return true
}

func (win *Window) present(img *image.RGBA, pixelAspect float32) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	gl.BindTexture(gl.TEXTURE_2D, win.texture)

	if w != win.texW || h != win.texH {
		win.texW = w
		win.texH = h
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA, int32(w), int32(h), 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(img.Pix))

		// window width is fixed. height follows the screen proportions
		ww := int32(640 * win.scale)
		wh := int32(float32(int(ww)*h) / float32(w) * pixelAspect)
		win.window.SetSize(ww, wh)
		logger.Logf(logger.Allow, "sdlhost", "screen: %dx%d window: %dx%d", w, h, ww, wh)
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0,
			0, 0, int32(w), int32(h),
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(img.Pix))
	}

	fbw, fbh := win.window.GLGetDrawableSize()
	gl.Viewport(0, 0, fbw, fbh)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.Enable(gl.TEXTURE_2D)
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(-1, 1)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(1, 1)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(1, -1)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(-1, -1)
	gl.End()

	win.window.GLSwap()
}
