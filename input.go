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
	"sync/atomic"

	"github.com/falcongfx/falcongfx/graphics"
)

// inputQueue implements the host.Input interface for hosts that service
// their window on a different goroutine to the one running the display
// pipeline. Requests are queued and applied to the manager by drain().
type inputQueue struct {
	queue chan func(*graphics.Manager)

	// visibility of the overlay as of the most recent call to drain()
	overlay atomic.Bool
}

func newInputQueue() *inputQueue {
	return &inputQueue{
		queue: make(chan func(*graphics.Manager), 64),
	}
}

// push a request. requests are dropped if the queue is full.
func (q *inputQueue) push(f func(*graphics.Manager)) {
	select {
	case q.queue <- f:
	default:
	}
}

// drain applies all queued requests to the manager. must be called from the
// goroutine running the display pipeline.
func (q *inputQueue) drain(mgr *graphics.Manager) {
	for {
		select {
		case f := <-q.queue:
			f(mgr)
		default:
			q.overlay.Store(mgr.IsOverlayVisible())
			return
		}
	}
}

func (q *inputQueue) UpdateMousePosition(deltaX, deltaY int) {
	q.push(func(mgr *graphics.Manager) {
		mgr.UpdateMousePosition(deltaX, deltaY)
	})
}

func (q *inputQueue) IsOverlayVisible() bool {
	return q.overlay.Load()
}

func (q *inputQueue) ShowOverlay() {
	q.push(func(mgr *graphics.Manager) {
		mgr.ShowOverlay()
	})
}

func (q *inputQueue) HideOverlay() {
	q.push(func(mgr *graphics.Manager) {
		mgr.HideOverlay()
	})
}

func (q *inputQueue) ToggleAspectRatioCorrection() {
	q.push(func(mgr *graphics.Manager) {
		mgr.ToggleAspectRatioCorrection()
	})
}
