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

package prefs_test

import (
	"testing"

	"github.com/falcongfx/falcongfx/prefs"
	"github.com/falcongfx/falcongfx/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("graphics.vsync::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "graphics.vsync::false")

	// additional space is trimmed
	prefs.PushCommandLineStack("   graphics.vsync:: false ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "graphics.vsync::false")

	// remaining string is sorted
	prefs.PushCommandLineStack("graphics.vsync::false; graphics.aspect::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "graphics.aspect::true; graphics.vsync::false")

	// invalid prefs string
	prefs.PushCommandLineStack("foo_bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// partially invalid prefs string
	prefs.PushCommandLineStack("foo_bar;baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	prefs.PushCommandLineStack("foo::bar;baz_qux")
	ok, _ := prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("foo::bar")
	prefs.PushCommandLineStack("baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	// first group still exists
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestCommandLineConsumed(t *testing.T) {
	prefs.PushCommandLineStack("graphics.mode::double; other::1")
	defer prefs.PopCommandLineStack()

	ok, v := prefs.GetCommandLinePref("graphics.mode")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "double")

	// value is consumed
	ok, _ = prefs.GetCommandLinePref("graphics.mode")
	test.ExpectFailure(t, ok)
}
