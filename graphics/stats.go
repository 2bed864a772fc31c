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

package graphics

import "fmt"

// Stats are counters of the work done by the Manager since it was created.
type Stats struct {
	Frames            int
	Rotations         int
	VblankWaits       int
	RectsDrained      int
	CursorDraws       int
	CursorRestores    int
	ResolutionChanges int
	PaletteUploads    int
}

func (s Stats) String() string {
	return fmt.Sprintf("frames: %d, rotations: %d, vblank waits: %d, rects: %d, cursor: %d/%d, resolution changes: %d, palette uploads: %d",
		s.Frames, s.Rotations, s.VblankWaits, s.RectsDrained, s.CursorDraws, s.CursorRestores, s.ResolutionChanges, s.PaletteUploads)
}

// Stats returns a copy of the current counters.
func (mgr *Manager) Stats() Stats {
	return mgr.stats
}
