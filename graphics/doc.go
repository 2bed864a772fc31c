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

// Package graphics is the display backend. The Manager type is the only type
// that callers need to interact with.
//
// The game draws to an 8-bit chunky surface. The areas that have changed are
// recorded and, once per frame, the UpdateScreen() function copies them to
// the physical screen memory. How that happens depends on the buffering mode:
//
//	Direct: no chunky surface. drawing goes straight to the physical screen
//	Single: dirty areas are copied to the one physical screen
//	Double: the chunky surface is copied to the back buffer which is then
//	        swapped with the front buffer
//	Triple: as double buffering but with two back buffers
//
// The Direct mode is only available with the graphics accelerator.
//
// The overlay is a 16-bit surface used by the launcher and menus. When the
// overlay is visible it replaces the game screen entirely.
//
// The mouse cursor is composited in software on top of whichever surface is
// being displayed. The cursor is never drawn to the chunky surface or the
// overlay surface, only to physical screen memory.
//
// Changes to the buffering mode or screen size are made inside a transaction:
//
//	mgr.BeginGFXTransaction()
//	mgr.SetGraphicsMode(videomode.Single)
//	mgr.InitSize(320, 200, nil)
//	flags, err := mgr.EndGFXTransaction()
//
// The hardware resolution is not changed until the next call to
// UpdateScreen(). Palette uploads are immediate unless the overlay is visible.
//
// The Manager is not safe for concurrent use. Every function must be called
// from the same goroutine.
package graphics
