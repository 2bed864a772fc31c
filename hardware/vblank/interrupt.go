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

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/falcongfx/falcongfx/logger"
)

// Interrupt is a Clock driven by a time.Ticker.
type Interrupt struct {
	count atomic.Uint32

	// the refresh rate in Hz
	rate atomic.Value // float32

	pulse *time.Ticker
	quit  chan bool
	done  chan bool

	crit  sync.Mutex
	hooks []func(count uint32)
}

// NewInterrupt creates and starts an Interrupt ticking at the given rate.
func NewInterrupt(hz float32) *Interrupt {
	intr := &Interrupt{
		pulse: time.NewTicker(period(hz)),
		quit:  make(chan bool),
		done:  make(chan bool),
	}
	intr.rate.Store(hz)

	go intr.service()

	return intr
}

func period(hz float32) time.Duration {
	if hz <= 0 {
		hz = 50
	}
	return time.Duration(float64(time.Second) / float64(hz))
}

func (intr *Interrupt) String() string {
	return fmt.Sprintf("%.2fHz", intr.rate.Load().(float32))
}

// the interrupt service routine.
func (intr *Interrupt) service() {
	defer close(intr.done)
	for {
		select {
		case <-intr.quit:
			return
		case <-intr.pulse.C:
			count := intr.count.Add(1)

			intr.crit.Lock()
			for _, f := range intr.hooks {
				f(count)
			}
			intr.crit.Unlock()
		}
	}
}

// SetRate changes the rate of the interrupt. Called when the video hardware
// changes to a resolution with a different refresh rate.
func (intr *Interrupt) SetRate(hz float32) {
	if intr.rate.Load().(float32) == hz {
		return
	}
	intr.rate.Store(hz)
	intr.pulse.Reset(period(hz))
	logger.Logf(logger.Allow, "vblank", "rate changed to %.2fHz", hz)
}

// Rate returns the current rate of the interrupt.
func (intr *Interrupt) Rate() float32 {
	return intr.rate.Load().(float32)
}

// Stop the interrupt. The counter will no longer advance.
func (intr *Interrupt) Stop() {
	select {
	case <-intr.done:
		return
	default:
	}
	intr.pulse.Stop()
	close(intr.quit)
	<-intr.done
}

// Count implements the Clock interface.
func (intr *Interrupt) Count() uint32 {
	return intr.count.Load()
}

// WaitForNextTick implements the Clock interface.
func (intr *Interrupt) WaitForNextTick() {
	start := intr.count.Load()
	for intr.count.Load() == start {
		select {
		case <-intr.done:
			return
		default:
		}
		runtime.Gosched()
	}
}

// OnTick implements the Clock interface.
func (intr *Interrupt) OnTick(f func(count uint32)) {
	intr.crit.Lock()
	defer intr.crit.Unlock()
	intr.hooks = append(intr.hooks, f)
}
