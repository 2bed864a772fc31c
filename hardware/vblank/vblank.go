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

// Package vblank provides the vertical blank clock. The clock is a free
// running counter that increments once per vertical blank.
//
// The Interrupt type simulates the hardware vertical blank interrupt with a
// ticker running in its own goroutine. Readers poll the counter, which is the
// only state shared with the interrupt goroutine.
//
// The Manual type is a clock that only advances when told to. It is intended
// for testing and for headless operation where there is no display to
// synchronise with.
package vblank

// Clock is the interface to a vertical blank counter.
type Clock interface {
	// the number of vertical blanks since the clock started
	Count() uint32

	// block until the counter has advanced. the wait is never longer than one
	// frame period
	WaitForNextTick()

	// add a function to be called after every increment of the counter. the
	// function is called from the context that increments the counter
	OnTick(f func(count uint32))
}
