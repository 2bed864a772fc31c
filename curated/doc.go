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

// Package curated is a way of creating errors that can be tested for by
// pattern rather than by value. Errors are created with Errorf() in the same
// way as fmt.Errorf(), but the pattern string is retained so that Is() and
// Has() can identify the error at a later point.
//
// Patterns are normally declared as constants in the package that raises the
// error. For example, the memory package declares:
//
//	const OutOfMemory = "memory: out of memory in %s bank (%d bytes requested)"
//
// and a caller can test for that error with:
//
//	if curated.Is(err, memory.OutOfMemory) {
//		...
//	}
package curated
