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

package buffers_test

import (
	"testing"

	"github.com/falcongfx/falcongfx/graphics/buffers"
	"github.com/falcongfx/falcongfx/graphics/surface"
	"github.com/falcongfx/falcongfx/graphics/videomode"
	"github.com/falcongfx/falcongfx/hardware/memory"
	"github.com/falcongfx/falcongfx/test"
)

func newSet(t *testing.T) (*buffers.Set, *memory.Allocator) {
	t.Helper()
	alloc := memory.NewAllocator()
	set, err := buffers.NewSet(alloc, memory.STRAM, 640*480, 320*240*2)
	test.DemandSuccess(t, err)
	return set, alloc
}

func TestTripleRotation(t *testing.T) {
	set, _ := newSet(t)

	f := set.Screen(buffers.FrontBuffer)
	b1 := set.Screen(buffers.BackBuffer1)
	b2 := set.Screen(buffers.BackBuffer2)

	// the back buffer is written to
	test.ExpectEquality(t, set.Writable(videomode.Triple), b1)

	wait := set.Rotate(videomode.Triple, true)
	test.ExpectSuccess(t, wait)
	test.ExpectEquality(t, set.Screen(buffers.FrontBuffer), b1)
	test.ExpectEquality(t, set.Screen(buffers.BackBuffer1), b2)
	test.ExpectEquality(t, set.Screen(buffers.BackBuffer2), f)

	// same rotation without waiting
	wait = set.Rotate(videomode.Triple, false)
	test.ExpectFailure(t, wait)
	test.ExpectEquality(t, set.Screen(buffers.FrontBuffer), b2)
	test.ExpectEquality(t, set.Screen(buffers.BackBuffer1), f)
	test.ExpectEquality(t, set.Screen(buffers.BackBuffer2), b1)

	// three rotations return to the start
	set.Rotate(videomode.Triple, true)
	test.ExpectEquality(t, set.Front(), f)
}

func TestDoubleRotation(t *testing.T) {
	set, _ := newSet(t)

	f := set.Front()
	b1 := set.Screen(buffers.BackBuffer1)
	b2 := set.Screen(buffers.BackBuffer2)

	// always waits
	test.ExpectSuccess(t, set.Rotate(videomode.Double, false))
	test.ExpectEquality(t, set.Front(), b1)
	test.ExpectEquality(t, set.Screen(buffers.BackBuffer1), f)
	test.ExpectEquality(t, set.Screen(buffers.BackBuffer2), b2)
}

func TestNoRotation(t *testing.T) {
	set, _ := newSet(t)
	f := set.Front()
	test.ExpectFailure(t, set.Rotate(videomode.Single, true))
	test.ExpectFailure(t, set.Rotate(videomode.Direct, true))
	test.ExpectEquality(t, set.Front(), f)
	test.ExpectEquality(t, set.Writable(videomode.Single), f)
}

func TestView(t *testing.T) {
	set, _ := newSet(t)
	v := set.Overlay()
	test.ExpectEquality(t, v.Interpretation(), buffers.Unviewed)

	s8, err := v.Indexed8(320, 200)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v.Interpretation(), buffers.Indexed8)

	// asking again returns the same surface
	again, err := v.Indexed8(320, 200)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, again, s8)

	// reinterpreting invalidates the previous surface
	s16, err := v.TrueColor16(320, 240, surface.RGB565())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v.Interpretation(), buffers.TrueColor16)
	test.ExpectSuccess(t, s8.Pix == nil)
	test.ExpectEquality(t, s16.Pitch, 640)

	// too large for the buffer
	_, err = v.TrueColor16(640, 480, surface.RGB565())
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, v.Fits(640, 480, 2))
	test.ExpectSuccess(t, v.Fits(320, 240, 2))

	// a failed request leaves the current view alone
	test.ExpectEquality(t, v.Surface(), s16)
	test.ExpectSuccess(t, s16.Pix != nil)
}

func TestAlignedAndFree(t *testing.T) {
	set, alloc := newSet(t)
	for i := 0; i < buffers.NumScreens; i++ {
		test.ExpectEquality(t, set.Screen(i).Block.Addr%memory.VideoAlignment, 0)
	}

	before := alloc.Available(memory.STRAM)
	set.Free(alloc)
	test.ExpectSuccess(t, alloc.Available(memory.STRAM) > before)
}

func TestClear(t *testing.T) {
	set, _ := newSet(t)
	set.Front().Block.Mem[100] = 0xff
	set.Overlay().Block.Mem[5] = 0xff
	set.Clear()
	test.ExpectEquality(t, set.Front().Block.Mem[100], 0)
	test.ExpectEquality(t, set.Overlay().Block.Mem[5], 0)
}

func TestOutOfMemory(t *testing.T) {
	alloc := memory.NewAllocator()
	alloc.SetCapacity(memory.STRAM, 640*480*2)
	_, err := buffers.NewSet(alloc, memory.STRAM, 640*480, 320*240*2)
	test.ExpectFailure(t, err)

	// partial allocations have been returned
	test.ExpectEquality(t, alloc.Available(memory.STRAM), 640*480*2)
}
