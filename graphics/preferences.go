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
	"github.com/falcongfx/falcongfx/curated"
	"github.com/falcongfx/falcongfx/graphics/videomode"
	"github.com/falcongfx/falcongfx/hardware/videl"
	"github.com/falcongfx/falcongfx/paths"
	"github.com/falcongfx/falcongfx/prefs"
)

// UnknownMode is the error pattern for a graphics.mode preference that does
// not name a buffering mode.
const UnknownMode = "graphics: unknown buffering mode (%s)"

// Preferences for the display backend. Changes to the values are applied to
// the Manager immediately, with the exception of Mode, which is only used
// when choosing the buffering mode for a new transaction.
type Preferences struct {
	mgr *Manager
	dsk *prefs.Disk

	VSync            prefs.Bool
	AspectCorrection prefs.Bool
	VGA              prefs.Bool

	// name of the preferred buffering mode
	Mode prefs.String
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences(mgr *Manager) (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(mgr, pth)
}

func newPreferences(mgr *Manager, pth string) (*Preferences, error) {
	p := &Preferences{mgr: mgr}
	p.SetDefaults()

	p.VSync.SetHookPost(func(v prefs.Value) error {
		p.mgr.SetFeatureState(FeatureVSync, v.(bool))
		return nil
	})

	p.AspectCorrection.SetHookPost(func(v prefs.Value) error {
		p.mgr.SetFeatureState(FeatureAspectRatioCorrection, v.(bool))
		return nil
	})

	p.VGA.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			p.mgr.SetMonitor(videl.VGA)
		} else {
			p.mgr.SetMonitor(videl.RGB)
		}
		return nil
	})

	p.Mode.SetHookPre(func(v prefs.Value) error {
		if _, ok := videomode.ParseMode(v.(string)); !ok {
			return curated.Errorf(UnknownMode, v)
		}
		return nil
	})

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("graphics.vsync", &p.VSync)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("graphics.aspect", &p.AspectCorrection)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("graphics.vga", &p.VGA)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("graphics.mode", &p.Mode)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all graphics preferences to the default values. The
// default monitor is the one attached when the Manager was created.
func (p *Preferences) SetDefaults() {
	p.VSync.Set(true)
	p.AspectCorrection.Set(false)
	p.VGA.Set(p.mgr.Monitor() == videl.VGA)
	p.Mode.Set(videomode.DefaultMode.String())
}

// GraphicsMode returns the preferred buffering mode. The default mode is
// returned if the preference does not name a supported mode.
func (p *Preferences) GraphicsMode() videomode.Mode {
	m, ok := videomode.ParseMode(p.Mode.Get().(string))
	if !ok {
		return videomode.DefaultMode
	}
	for _, s := range p.mgr.SupportedGraphicsModes() {
		if s.ID == m {
			return m
		}
	}
	return videomode.DefaultMode
}

// Load graphics preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current graphics preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
