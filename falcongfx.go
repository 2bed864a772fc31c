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


package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/falcongfx/falcongfx/demo"
	"github.com/falcongfx/falcongfx/digest"
	"github.com/falcongfx/falcongfx/graphics"
	"github.com/falcongfx/falcongfx/graphics/videomode"
	"github.com/falcongfx/falcongfx/hardware"
	"github.com/falcongfx/falcongfx/hardware/memory"
	"github.com/falcongfx/falcongfx/hardware/vblank"
	"github.com/falcongfx/falcongfx/hardware/videl"
	"github.com/falcongfx/falcongfx/host/ebitenhost"
	"github.com/falcongfx/falcongfx/host/headless"
	"github.com/falcongfx/falcongfx/host/sdlhost"
	"github.com/falcongfx/falcongfx/logger"
	"github.com/falcongfx/falcongfx/modalflag"
	"github.com/falcongfx/falcongfx/prefs"
	"github.com/falcongfx/falcongfx/screenshot"
	"github.com/falcongfx/falcongfx/statsview"
)

// size of the game screen used by the demo.
const (
	screenWidth  = 320
	screenHeight = 200
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of windows
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the window
	Destroy(io.Writer)

	// Service() MUST ONLY be called from the main thread. It should service
	// all window events and present the most recent frame.
	Service()
}

// communication between the main() function and the launch() function. this
// is required because SDL and ebiten require window handling (including
// creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// SDL requires window functions to be called from the main thread.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "HEADLESS", "MODES")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "HEADLESS":
		err = runHeadless(md)

	case "MODES":
		err = listModes(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// display configuration shared by the RUN and HEADLESS modes.
type displayArgs struct {
	accel *bool
	rgb   *bool
	mode  *string
	prefs *string
	log   *bool
}

func addDisplayArgs(md *modalflag.Modes) displayArgs {
	names := make([]string, 0, 4)
	for _, gm := range videomode.SupportedModes(true) {
		names = append(names, gm.Name)
	}

	return displayArgs{
		accel: md.AddBool("accel", false, "use the accelerated blitter"),
		rgb:   md.AddBool("rgb", false, "use RGB monitor timings instead of VGA"),
		mode:  md.AddChoice("mode", "", names, "buffering mode. defaults to graphics.mode preference"),
		prefs: md.AddString("prefs", "", "preferences for this run only. \"key::value; ...\""),
		log:   md.AddBool("log", false, "echo log to stdout"),
	}
}

func (args displayArgs) capabilities() hardware.Capabilities {
	caps := hardware.Capabilities{AcceleratedBlit: *args.accel}
	if *args.rgb {
		caps.Monitor = videl.RGB
	}
	return caps
}

// display is a manager and scene ready to run.
type display struct {
	mgr   *graphics.Manager
	prefs *graphics.Preferences
	scn   *demo.Scene
}

func newDisplay(args displayArgs, hw hardware.Video, clock vblank.Clock) (*display, error) {
	if *args.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	mgr, err := graphics.NewManager(hw, clock, memory.NewAllocator())
	if err != nil {
		return nil, err
	}

	prefs.PushCommandLineStack(*args.prefs)
	p, err := graphics.NewPreferences(mgr)
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "falcongfx", "unused preferences: %s", unused)
	}
	if err != nil {
		mgr.Close()
		return nil, err
	}

	// the monitor flag takes priority over the preference
	if *args.rgb {
		err = p.VGA.Set(false)
		if err != nil {
			mgr.Close()
			return nil, err
		}
	}

	mode := p.GraphicsMode()
	if *args.mode != "" {
		mode, _ = videomode.ParseMode(*args.mode)
	}

	scn := demo.NewScene(mgr)
	flags, err := scn.Setup(mode, screenWidth, screenHeight)
	if err != nil {
		mgr.Close()
		return nil, err
	}
	if flags != videomode.Success {
		fmt.Printf("* %s mode not available: %v\n", mode, flags)
	}

	fmt.Printf("%s mode %dx%d\n", mgr.GraphicsMode(), mgr.Width(), mgr.Height())

	return &display{mgr: mgr, prefs: p, scn: scn}, nil
}

func (dsp *display) close() {
	logger.Logf(logger.Allow, "graphics", "%v", dsp.mgr.Stats())
	dsp.mgr.Close()
}

// syncClock sets the rate of the vertical blank to the refresh rate of the
// resolution being shown.
func syncClock(intr *vblank.Interrupt, host *headless.Host) {
	regs, _ := host.Latched()
	if hz := regs.Resolution.RefreshRate; hz > 0 && hz != intr.Rate() {
		intr.SetRate(hz)
	}
}

// sdlGui is the GuiCreator for the SDL backend.
type sdlGui struct {
	win   *sdlhost.Window
	input *inputQueue
	quit  chan bool
	ended bool
}

func (gui *sdlGui) Service() {
	if gui.ended {
		return
	}
	if !gui.win.Service(gui.input) {
		gui.ended = true
		close(gui.quit)
	}
}

func (gui *sdlGui) Destroy(_ io.Writer) {
	gui.win.Destroy()
}

// ebitenGui is the GuiCreator for the ebiten backend. ebiten runs its own
// loop so the first call to Service() does not return until the window is
// closed.
type ebitenGui struct {
	run   func() error
	done  chan error
	ended bool
}

func (gui *ebitenGui) Service() {
	if gui.ended {
		return
	}
	gui.ended = true
	gui.done <- gui.run()
}

func (gui *ebitenGui) Destroy(_ io.Writer) {
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	args := addDisplayArgs(md)
	backend := md.AddChoice("backend", "sdl", []string{"sdl", "ebiten"}, "windowing backend")
	scale := md.AddInt("scale", 2, "window scaling")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	intr := vblank.NewInterrupt(50)
	defer intr.Stop()

	switch *backend {
	case "ebiten":
		return runEbiten(args, sync, intr, *scale)
	default:
		return runSDL(args, sync, intr, *scale)
	}
}

func runSDL(args displayArgs, sync *mainSync, intr *vblank.Interrupt, scale int) error {
	input := newInputQueue()
	quit := make(chan bool)

	var gui *sdlGui
	sync.creator <- func() (GuiCreator, error) {
		win, err := sdlhost.NewWindow(args.capabilities(), intr, scale)
		if err != nil {
			return nil, err
		}
		return &sdlGui{win: win, input: input, quit: quit}, nil
	}

	select {
	case g := <-sync.creation:
		gui = g.(*sdlGui)
	case err := <-sync.creationError:
		return err
	}

	dsp, err := newDisplay(args, gui.win, intr)
	if err != nil {
		return err
	}
	defer dsp.close()

	for {
		select {
		case <-quit:
			return dsp.prefs.Save()
		default:
		}

		input.drain(dsp.mgr)

		// the scene advances at most once per vertical blank. the pipeline
		// does not wait for the vertical blank in every mode
		count := intr.Count()
		dsp.scn.Step()
		gui.win.Publish()
		if intr.Count() == count {
			intr.WaitForNextTick()
		}

		syncClock(intr, gui.win.Host)
	}
}

func runEbiten(args displayArgs, sync *mainSync, intr *vblank.Interrupt, scale int) error {
	done := make(chan error, 1)

	var dsp *display

	sync.creator <- func() (GuiCreator, error) {
		game := ebitenhost.NewGame(args.capabilities(), intr, scale)

		var err error
		dsp, err = newDisplay(args, game, intr)
		if err != nil {
			return nil, err
		}

		frame := func() bool {
			dsp.scn.Step()
			syncClock(intr, game.Host)
			return true
		}

		status := func() string {
			return strings.ReplaceAll(dsp.mgr.Stats().String(), ", ", "\n")
		}

		return &ebitenGui{
			run:  func() error { return game.Run(dsp.mgr, frame, status) },
			done: done,
		}, nil
	}

	select {
	case <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	// the game loop is running on the main thread
	err := <-done
	dsp.close()
	if err != nil {
		return err
	}

	return dsp.prefs.Save()
}

func runHeadless(md *modalflag.Modes) error {
	md.NewMode()

	args := addDisplayArgs(md)
	frames := md.AddInt("frames", 100, "number of frames to run")
	overlay := md.AddInt("overlay", -1, "show the overlay at this frame")
	shot := md.AddBool("screenshot", false, "save the final frame")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	clk := vblank.NewManual()
	host := headless.NewHost(args.capabilities(), clk)

	dsp, err := newDisplay(args, host, clk)
	if err != nil {
		return err
	}
	defer dsp.close()

	dig := digest.NewScreen(host)

	for i := 0; i < *frames; i++ {
		if i == *overlay {
			dsp.mgr.ShowOverlay()
		}

		dsp.scn.Step()

		// the display clock keeps running even when the pipeline is not
		// waiting for it
		clk.Tick()
		dig.Update()
	}

	fmt.Printf("%d frames: %s\n", dig.Frames(), dig.Hash())
	fmt.Println(dsp.mgr.Stats())

	if *shot {
		regs, _ := host.Latched()
		path, err := screenshot.Save(regs, dsp.mgr.GraphicsMode().String(), 2)
		if err != nil {
			return err
		}
		fmt.Printf("screenshot saved to %s\n", path)
	}

	return nil
}

func listModes(md *modalflag.Modes) error {
	md.NewMode()

	accel := md.AddBool("accel", false, "list modes for the accelerated blitter")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	def := videomode.DefaultMode
	for _, gm := range videomode.SupportedModes(*accel) {
		s := fmt.Sprintf("%-8s %s", gm.Name, gm.Description)
		if gm.ID == def {
			s = fmt.Sprintf("%s (default)", s)
		}
		fmt.Println(s)
	}

	return nil
}
