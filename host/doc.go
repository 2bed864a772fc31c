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

// Package host contains implementations of the hardware.Video interface.
//
// The headless package has no display. It is used for testing and for
// running the pipeline without a window. The sdlhost and ebitenhost packages
// present the screen memory in a window.
//
// All hosts latch the screen address, resolution and palette on the vertical
// blank, as the real video controller does.
package host
