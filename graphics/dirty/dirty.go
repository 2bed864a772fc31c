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

// Package dirty tracks the areas of a surface that have changed since the
// last screen update.
//
// Recorded rectangles are drained once per update with Pop(). Rectangles are
// returned in the reverse order of recording. The most recent modification is
// the most likely to be under the cursor and so is tested for cursor overlap
// first.
package dirty

import (
	"image"
)

// Alignment is the horizontal boundary, in pixels, that rectangles are snapped
// to when alignment is requested. Planar video memory can only be written in
// strips of this width.
const Alignment = 16

// Align16 snaps the left and right edges of r outwards to a 16 pixel
// boundary. The right edge is limited to width.
func Align16(r image.Rectangle, width int) image.Rectangle {
	r.Min.X &^= Alignment - 1
	r.Max.X = min(width, (r.Max.X+Alignment-1)&^(Alignment-1))
	return r
}

// Tracker accumulates the dirty rectangles for a single surface.
type Tracker struct {
	rects []image.Rectangle
}

// NewTracker is the preferred method of initialisation for the Tracker type.
func NewTracker() *Tracker {
	return &Tracker{
		rects: make([]image.Rectangle, 0, 64),
	}
}

// Record rectangle r for a surface with the given bounds. If align is true
// the rectangle is first snapped to a 16 pixel boundary.
//
// A rectangle covering the whole surface replaces every existing entry. A
// rectangle contained by an existing entry is dropped.
func (d *Tracker) Record(r image.Rectangle, bounds image.Rectangle, align bool) {
	if align {
		r = Align16(r, bounds.Max.X)
	}

	r = r.Intersect(bounds)
	if r.Empty() {
		return
	}

	if r == bounds {
		d.rects = append(d.rects[:0], bounds)
		return
	}

	for _, e := range d.rects {
		if r.In(e) {
			return
		}
	}

	d.rects = append(d.rects, r)
}

// Pop removes and returns the most recently recorded rectangle. Returns false
// if there are no more rectangles.
func (d *Tracker) Pop() (image.Rectangle, bool) {
	if len(d.rects) == 0 {
		return image.Rectangle{}, false
	}
	r := d.rects[len(d.rects)-1]
	d.rects = d.rects[:len(d.rects)-1]
	return r, true
}

// Len returns the number of rectangles waiting to be drained.
func (d *Tracker) Len() int {
	return len(d.rects)
}

// Empty returns true if there are no rectangles waiting to be drained.
func (d *Tracker) Empty() bool {
	return len(d.rects) == 0
}

// Clear forgets all recorded rectangles.
func (d *Tracker) Clear() {
	d.rects = d.rects[:0]
}

// Intersects returns true if any recorded rectangle overlaps r.
func (d *Tracker) Intersects(r image.Rectangle) bool {
	for _, e := range d.rects {
		if e.Overlaps(r) {
			return true
		}
	}
	return false
}
