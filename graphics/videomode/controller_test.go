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

package videomode_test

import (
	"testing"

	"github.com/hashicorp/go-multierror"

	"github.com/falcongfx/falcongfx/curated"
	"github.com/falcongfx/falcongfx/graphics/surface"
	"github.com/falcongfx/falcongfx/graphics/videomode"
	"github.com/falcongfx/falcongfx/test"
)

func TestSuccessfulTransaction(t *testing.T) {
	ctrl := videomode.NewController(false)
	test.ExpectEquality(t, ctrl.Current().Mode, videomode.Triple)

	test.DemandSuccess(t, ctrl.BeginTransaction())
	test.ExpectSuccess(t, ctrl.SetMode(videomode.Single))
	ctrl.InitSize(320, 200, nil)

	// current is unchanged until commit
	test.ExpectEquality(t, ctrl.Current().Width, 0)
	test.ExpectEquality(t, ctrl.Pending().Width, 320)

	flags, err := ctrl.EndTransaction()
	test.ExpectEquality(t, flags, videomode.Success)
	test.ExpectSuccess(t, err)

	ctrl.Commit()
	test.ExpectEquality(t, ctrl.Current(), videomode.State{
		Mode: videomode.Single, Width: 320, Height: 200, Format: surface.CLUT8(),
	})
}

func TestAccumulatedFailures(t *testing.T) {
	ctrl := videomode.NewController(false)

	test.DemandSuccess(t, ctrl.BeginTransaction())
	ctrl.InitSize(320, 200, nil)
	flags, _ := ctrl.EndTransaction()
	test.DemandEquality(t, flags, videomode.Success)
	ctrl.Commit()

	// every problem is reported
	f := surface.RGB565()
	test.DemandSuccess(t, ctrl.BeginTransaction())
	test.ExpectFailure(t, ctrl.SetMode(videomode.Direct))
	ctrl.InitSize(800, 600, &f)

	flags, err := ctrl.EndTransaction()
	test.ExpectSuccess(t, flags.Has(videomode.FormatNotSupported))
	test.ExpectSuccess(t, flags.Has(videomode.SizeChangeFailed))
	test.ExpectSuccess(t, flags.Has(videomode.ModeSwitchFailed))

	merr, ok := err.(*multierror.Error)
	test.DemandSuccess(t, ok)
	test.DemandEquality(t, len(merr.Errors), 3)
	test.ExpectSuccess(t, curated.Is(merr.Errors[0], videomode.UnsupportedFormat))
	test.ExpectSuccess(t, curated.Is(merr.Errors[1], videomode.UnsupportedSize))
	test.ExpectSuccess(t, curated.Is(merr.Errors[2], videomode.UnsupportedMode))

	// pending has been reset to current. current is untouched
	test.ExpectEquality(t, ctrl.Pending(), ctrl.Current())
	test.ExpectEquality(t, ctrl.Current().Width, 320)
	test.ExpectEquality(t, ctrl.Current().Mode, videomode.Triple)
}

func TestSizeChangeFailedAlwaysSet(t *testing.T) {
	ctrl := videomode.NewController(false)

	// only the format is wrong
	f := surface.RGB565()
	test.DemandSuccess(t, ctrl.BeginTransaction())
	ctrl.InitSize(320, 240, &f)
	flags, err := ctrl.EndTransaction()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, flags, videomode.FormatNotSupported|videomode.SizeChangeFailed)

	// only the mode is wrong
	test.DemandSuccess(t, ctrl.BeginTransaction())
	ctrl.InitSize(320, 240, nil)
	ctrl.SetMode(videomode.Direct)
	flags, err = ctrl.EndTransaction()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, flags, videomode.ModeSwitchFailed|videomode.SizeChangeFailed)
	test.ExpectEquality(t, flags.String(), "mode switch failed, size change failed")
}

func TestDirectWithAccelerator(t *testing.T) {
	ctrl := videomode.NewController(true)
	test.DemandSuccess(t, ctrl.BeginTransaction())
	test.ExpectSuccess(t, ctrl.SetMode(videomode.Direct))
	ctrl.InitSize(640, 480, nil)
	flags, err := ctrl.EndTransaction()
	test.ExpectEquality(t, flags, videomode.Success)
	test.ExpectSuccess(t, err)
}

func TestUnbalancedTransactions(t *testing.T) {
	ctrl := videomode.NewController(false)

	_, err := ctrl.EndTransaction()
	test.ExpectSuccess(t, curated.Is(err, videomode.NoTransaction))

	test.DemandSuccess(t, ctrl.BeginTransaction())
	test.ExpectSuccess(t, curated.Is(ctrl.BeginTransaction(), videomode.NestedTransaction))
	test.ExpectSuccess(t, ctrl.InTransaction())
}

func TestModes(t *testing.T) {
	m, ok := videomode.ParseMode(" Double ")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, m, videomode.Double)

	_, ok = videomode.ParseMode("quadruple")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, len(videomode.SupportedModes(false)), 3)
	test.ExpectEquality(t, videomode.SupportedModes(false)[0].Name, "single")
	test.ExpectEquality(t, len(videomode.SupportedModes(true)), 4)
	test.ExpectEquality(t, videomode.SupportedModes(true)[0].ID, videomode.Direct)
	test.ExpectEquality(t, videomode.Mode(7).String(), "mode 7")
}
