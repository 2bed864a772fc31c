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

package videomode

import (
	"fmt"
	"strings"

	"github.com/falcongfx/falcongfx/graphics/surface"
)

// State is the graphics state, either pending or current.
type State struct {
	Mode   Mode
	Width  int
	Height int
	Format surface.PixelFormat
}

func (s State) String() string {
	return fmt.Sprintf("%v %dx%d %v", s.Mode, s.Width, s.Height, s.Format)
}

// TransactionError is the result of a transaction. The values are flags and
// can be combined.
type TransactionError int

// List of valid TransactionError flags.
const (
	Success            TransactionError = 0
	ModeSwitchFailed   TransactionError = 1 << 2
	SizeChangeFailed   TransactionError = 1 << 3
	FormatNotSupported TransactionError = 1 << 4
)

func (e TransactionError) String() string {
	if e == Success {
		return "success"
	}
	s := make([]string, 0, 3)
	if e&ModeSwitchFailed == ModeSwitchFailed {
		s = append(s, "mode switch failed")
	}
	if e&SizeChangeFailed == SizeChangeFailed {
		s = append(s, "size change failed")
	}
	if e&FormatNotSupported == FormatNotSupported {
		s = append(s, "format not supported")
	}
	return strings.Join(s, ", ")
}

// Has returns true if every flag in f is set.
func (e TransactionError) Has(f TransactionError) bool {
	return e&f == f
}
