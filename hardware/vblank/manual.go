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

package vblank

// Manual is a Clock that advances only when Tick() is called. A call to
// WaitForNextTick() is treated as a request for a tick and so never blocks.
type Manual struct {
	count uint32
	waits int
	hooks []func(count uint32)
}

// NewManual is the preferred method of initialisation for the Manual type.
func NewManual() *Manual {
	return &Manual{}
}

// Tick advances the counter by one and runs the OnTick() hooks.
func (m *Manual) Tick() {
	m.count++
	for _, f := range m.hooks {
		f(m.count)
	}
}

// Waits returns the number of times WaitForNextTick() has been called.
func (m *Manual) Waits() int {
	return m.waits
}

// Count implements the Clock interface.
func (m *Manual) Count() uint32 {
	return m.count
}

// WaitForNextTick implements the Clock interface.
func (m *Manual) WaitForNextTick() {
	m.waits++
	m.Tick()
}

// OnTick implements the Clock interface.
func (m *Manual) OnTick(f func(count uint32)) {
	m.hooks = append(m.hooks, f)
}
