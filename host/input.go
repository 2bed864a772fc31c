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


package host

// Input is the part of the graphics backend that windowed hosts forward user
// input to.
type Input interface {
	UpdateMousePosition(deltaX, deltaY int)
	IsOverlayVisible() bool
	ShowOverlay()
	HideOverlay()
	ToggleAspectRatioCorrection()
}

// ToggleOverlay shows the overlay if it is hidden and hides it otherwise.
func ToggleOverlay(input Input) {
	if input.IsOverlayVisible() {
		input.HideOverlay()
	} else {
		input.ShowOverlay()
	}
}
