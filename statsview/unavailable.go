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


//go:build !statsview

package statsview

import (
	"io"
)

// Address is empty when statsview is not available.
const Address = ""

// Launch does nothing when statsview is not available.
func Launch(_ io.Writer) {
}

// Available returns true if the statsview server can be launched.
func Available() bool {
	return false
}
