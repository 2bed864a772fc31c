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

package graphics

import (
	"fmt"

	"github.com/falcongfx/falcongfx/hardware/videl"
	"github.com/falcongfx/falcongfx/logger"
)

// Feature is an optional behaviour of the display backend.
type Feature int

// List of valid Feature values.
const (
	// use the alternate timing for 200 and 400 line resolutions so that
	// they fill a 4:3 screen
	FeatureAspectRatioCorrection Feature = iota

	// wait for the vertical blank before changing the screen
	FeatureVSync
)

func (f Feature) String() string {
	switch f {
	case FeatureAspectRatioCorrection:
		return "aspect ratio correction"
	case FeatureVSync:
		return "vsync"
	}
	return fmt.Sprintf("feature %d", int(f))
}

// HasFeature returns true if the feature is supported.
func (mgr *Manager) HasFeature(f Feature) bool {
	switch f {
	case FeatureAspectRatioCorrection, FeatureVSync:
		return true
	}
	return false
}

// SetFeatureState enables or disables a feature. The change is observed on
// the next call to UpdateScreen().
func (mgr *Manager) SetFeatureState(f Feature, enable bool) {
	switch f {
	case FeatureAspectRatioCorrection:
		mgr.aspect = enable
	case FeatureVSync:
		mgr.vsync = enable
	default:
		return
	}
	logger.Logf(logger.Allow, "graphics", "%v: %v", f, enable)
}

// FeatureState returns true if the feature is enabled.
func (mgr *Manager) FeatureState(f Feature) bool {
	switch f {
	case FeatureAspectRatioCorrection:
		return mgr.aspect
	case FeatureVSync:
		return mgr.vsync
	}
	return false
}

// ToggleAspectRatioCorrection flips the state of aspect ratio correction.
func (mgr *Manager) ToggleAspectRatioCorrection() {
	mgr.SetFeatureState(FeatureAspectRatioCorrection, !mgr.aspect)
}

// SetMonitor changes the monitor type used to choose resolutions. The
// resolution is changed on the next call to UpdateScreen().
func (mgr *Manager) SetMonitor(monitor videl.Monitor) {
	if mgr.monitor == monitor {
		return
	}
	mgr.monitor = monitor
	if mgr.overlayVisible {
		mgr.pendingResolution = resolutionOverlay
	} else if mgr.Width() > 0 {
		mgr.pendingResolution = resolutionScreen
	}
}

// Monitor returns the monitor type.
func (mgr *Manager) Monitor() videl.Monitor {
	return mgr.monitor
}
