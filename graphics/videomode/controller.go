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

	"github.com/hashicorp/go-multierror"

	"github.com/falcongfx/falcongfx/curated"
	"github.com/falcongfx/falcongfx/graphics/surface"
	"github.com/falcongfx/falcongfx/hardware/videl"
	"github.com/falcongfx/falcongfx/logger"
)

// error patterns.
const (
	UnsupportedFormat = "videomode: unsupported pixel format (%v)"
	UnsupportedSize   = "videomode: unsupported size (%dx%d)"
	UnsupportedMode   = "videomode: unsupported mode (%v)"
	NoTransaction     = "videomode: no transaction in progress"
	NestedTransaction = "videomode: transaction already in progress"
)

// Controller holds the pending and current graphics states.
type Controller struct {
	accelerated bool

	current State
	pending State

	inTransaction bool
}

// NewController is the preferred method of initialisation for the
// Controller type. The accelerated argument indicates whether the graphics
// accelerator is present.
func NewController(accelerated bool) *Controller {
	s := State{
		Mode:   DefaultMode,
		Format: surface.CLUT8(),
	}
	return &Controller{
		accelerated: accelerated,
		current:     s,
		pending:     s,
	}
}

// Current returns the committed graphics state.
func (ctrl *Controller) Current() State {
	return ctrl.current
}

// Pending returns the graphics state as it will be if the current
// transaction succeeds.
func (ctrl *Controller) Pending() State {
	return ctrl.pending
}

// InTransaction returns true if BeginTransaction() has been called without a
// matching EndTransaction().
func (ctrl *Controller) InTransaction() bool {
	return ctrl.inTransaction
}

// BeginTransaction starts a new transaction. Transactions cannot be nested.
func (ctrl *Controller) BeginTransaction() error {
	if ctrl.inTransaction {
		return curated.Errorf(NestedTransaction)
	}
	ctrl.inTransaction = true
	return nil
}

// SetMode requests a buffering mode. Returns true if the mode is supported.
// An unsupported mode is still recorded and will cause the transaction to
// fail.
func (ctrl *Controller) SetMode(mode Mode) bool {
	logger.Logf(logger.Allow, "videomode", "set mode: %v", mode)
	ctrl.pending.Mode = mode
	return ctrl.supported(mode)
}

// InitSize requests a screen size and pixel format. A nil format requests
// the CLUT8 format.
func (ctrl *Controller) InitSize(width int, height int, format *surface.PixelFormat) {
	logger.Logf(logger.Allow, "videomode", "init size: %dx%d", width, height)
	ctrl.pending.Width = width
	ctrl.pending.Height = height
	if format == nil {
		ctrl.pending.Format = surface.CLUT8()
	} else {
		ctrl.pending.Format = *format
	}
}

func (ctrl *Controller) supported(mode Mode) bool {
	if !mode.Valid() {
		return false
	}
	return mode != Direct || ctrl.accelerated
}

// EndTransaction validates the pending state. The returned flags are Success
// if the pending state can be committed with Commit().
//
// If there are any problems then SizeChangeFailed is always set, along with
// the flag for each problem. The returned error lists every problem found. A
// failed transaction resets the pending state to the current state.
func (ctrl *Controller) EndTransaction() (TransactionError, error) {
	if !ctrl.inTransaction {
		return ModeSwitchFailed | SizeChangeFailed, curated.Errorf(NoTransaction)
	}
	ctrl.inTransaction = false

	var result *multierror.Error
	var flags TransactionError

	if !ctrl.pending.Format.IsCLUT8() {
		flags |= FormatNotSupported
		result = multierror.Append(result, curated.Errorf(UnsupportedFormat, ctrl.pending.Format))
	}

	if !videl.Supported(ctrl.pending.Width, ctrl.pending.Height, videl.Planar8) {
		flags |= SizeChangeFailed
		result = multierror.Append(result, curated.Errorf(UnsupportedSize, ctrl.pending.Width, ctrl.pending.Height))
	}

	if !ctrl.supported(ctrl.pending.Mode) {
		flags |= ModeSwitchFailed
		result = multierror.Append(result, curated.Errorf(UnsupportedMode, ctrl.pending.Mode))
	}

	if flags != Success {
		// callers only reliably inspect the size change flag
		flags |= SizeChangeFailed

		result.ErrorFormat = func(errs []error) string {
			return fmt.Sprintf("videomode: %d problems with requested state (%v)", len(errs), flattenErrors(errs))
		}

		logger.Logf(logger.Allow, "videomode", "transaction failed: %v", flags)
		ctrl.pending = ctrl.current
		return flags, result.ErrorOrNil()
	}

	return Success, nil
}

// Commit makes the pending state the current state. Should only be called
// after a successful EndTransaction().
func (ctrl *Controller) Commit() {
	logger.Logf(logger.Allow, "videomode", "commit: %v", ctrl.pending)
	ctrl.current = ctrl.pending
}

// Abandon discards the pending state. Used when a successful EndTransaction()
// could not be applied.
func (ctrl *Controller) Abandon() {
	logger.Logf(logger.Allow, "videomode", "abandoned: %v", ctrl.pending)
	ctrl.pending = ctrl.current
}

func flattenErrors(errs []error) string {
	s := ""
	for i, e := range errs {
		if i > 0 {
			s += "; "
		}
		s += e.Error()
	}
	return s
}
