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


// Package modalflag extends the flag package with program modes. A mode is a
// command line argument that selects a different way of running the program,
// each mode having its own set of flags. For example:
//
//	falcongfx -backend ebiten RUN -mode double
//
// The top level flags are parsed first. The first argument after those flags
// is then compared with the list of sub-modes. If it matches, the sub-mode is
// added to the mode path and the caller can set up the flags for that mode
// with NewMode() before calling Parse() again:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "headless", "modes")
//	backend := md.AddString("backend", "sdl", "windowing backend")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		...
//	}
//
// If the argument does not match a sub-mode, the first sub-mode in the list
// is used and the argument is left for the mode to consume. Sub-mode
// comparisons are case insensitive and the mode path is always upper case.
//
// Help is printed to the Output writer when the -help flag is given. The
// help includes the mode path, the flags of the current mode and the list of
// sub-modes.
package modalflag
