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


package demo_test

import (
	"image"
	"testing"

	"github.com/falcongfx/falcongfx/demo"
	"github.com/falcongfx/falcongfx/digest"
	"github.com/falcongfx/falcongfx/graphics"
	"github.com/falcongfx/falcongfx/graphics/videomode"
	"github.com/falcongfx/falcongfx/hardware"
	"github.com/falcongfx/falcongfx/hardware/memory"
	"github.com/falcongfx/falcongfx/hardware/vblank"
	"github.com/falcongfx/falcongfx/host/headless"
	"github.com/falcongfx/falcongfx/test"
)

type rig struct {
	mgr  *graphics.Manager
	host *headless.Host
	clk  *vblank.Manual
	scn  *demo.Scene
}

// snapshot of the screen after the next vertical blank.
func (r *rig) snapshot() *image.RGBA {
	r.clk.Tick()
	return r.host.Snapshot()
}

func newRig(t *testing.T, accelerated bool, mode videomode.Mode) *rig {
	t.Helper()

	clk := vblank.NewManual()
	host := headless.NewHost(hardware.Capabilities{AcceleratedBlit: accelerated}, clk)
	mgr, err := graphics.NewManager(host, clk, memory.NewAllocator())
	test.DemandSuccess(t, err)
	t.Cleanup(mgr.Close)

	scn := demo.NewScene(mgr)
	flags, err := scn.Setup(mode, 320, 200)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, flags, videomode.Success)

	return &rig{mgr: mgr, host: host, clk: clk, scn: scn}
}

func TestBall(t *testing.T) {
	r := newRig(t, false, videomode.Double)

	start := r.scn.Ball()
	test.ExpectEquality(t, start, image.Rect(144, 84, 176, 116))

	for i := 0; i < 10; i++ {
		r.scn.Step()
	}
	test.ExpectEquality(t, r.scn.Frame(), 10)
	test.ExpectEquality(t, r.scn.Ball(), start.Add(image.Pt(30, 20)))

	img := r.snapshot()
	test.DemandSuccess(t, img != nil)

	// ball colours all have a red component. background colours do not
	c := r.scn.Ball().Min.Add(image.Pt(16, 16))
	test.ExpectInequality(t, img.RGBAAt(c.X, c.Y).R, 0)
	test.ExpectEquality(t, img.RGBAAt(150, 90).R, 0)

	test.ExpectEquality(t, r.mgr.Stats().Frames, 10)
}

func TestBounce(t *testing.T) {
	r := newRig(t, true, videomode.Single)
	for i := 0; i < 200; i++ {
		r.scn.Step()
		b := r.scn.Ball()
		test.DemandSuccess(t, b.In(image.Rect(0, 0, 320, 200)))
	}
}

func TestAllModes(t *testing.T) {
	for _, accelerated := range []bool{false, true} {
		for _, gm := range videomode.SupportedModes(accelerated) {
			r := newRig(t, accelerated, gm.ID)
			for i := 0; i < 5; i++ {
				r.scn.Step()
			}
			test.ExpectEquality(t, r.mgr.GraphicsMode(), gm.ID)
			test.ExpectSuccess(t, r.snapshot() != nil, gm.Name)
		}
	}
}

func TestOverlayPanel(t *testing.T) {
	r := newRig(t, false, videomode.Triple)
	r.scn.Step()

	r.mgr.ShowOverlay()
	r.scn.Step()

	img := r.snapshot()
	test.DemandSuccess(t, img != nil)
	test.ExpectEquality(t, img.Bounds().Dx(), r.mgr.OverlayWidth())

	// border of the panel is white
	ow := r.mgr.OverlayWidth()
	oh := r.mgr.OverlayHeight()
	x := (ow - ow/2) / 2
	y := (oh - oh/3) / 2
	test.ExpectEquality(t, img.RGBAAt(x+1, y).G, 0xff)

	r.mgr.HideOverlay()
	r.scn.Step()
	test.ExpectEquality(t, r.snapshot().Bounds().Dx(), 320)
}

// the planar and accelerated renderers produce the same frames
func TestRenderersAgree(t *testing.T) {
	planar := newRig(t, false, videomode.Triple)
	accel := newRig(t, true, videomode.Triple)

	digPlanar := digest.NewScreen(planar.host)
	digAccel := digest.NewScreen(accel.host)

	for i := 0; i < 20; i++ {
		planar.scn.Step()
		accel.scn.Step()
		planar.clk.Tick()
		accel.clk.Tick()
		digPlanar.Update()
		digAccel.Update()
	}

	test.ExpectEquality(t, digPlanar.Frames(), 20)
	test.ExpectEquality(t, digPlanar.Hash(), digAccel.Hash())
}
