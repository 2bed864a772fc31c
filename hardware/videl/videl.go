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

// Package videl describes the canned video modes of the video hardware and
// decodes video memory into an image for display on the host.
//
// Only a small enumerated set of resolutions is supported. Each resolution
// exists for both VGA and RGB monitors and, for the 200 and 400 line
// resolutions, in an aspect-ratio corrected variant which uses an alternate
// timing to stretch the picture to the full 4:3 height of the screen.
package videl

import (
	"fmt"

	"github.com/falcongfx/falcongfx/curated"
)

// Monitor type connected to the video hardware.
type Monitor int

// List of valid Monitor values.
const (
	VGA Monitor = iota
	RGB
)

func (m Monitor) String() string {
	if m == RGB {
		return "RGB"
	}
	return "VGA"
}

// Layout of the pixel data in video memory.
type Layout int

// List of valid Layout values.
const (
	// eight interleaved bitplanes
	Planar8 Layout = iota

	// one byte per pixel. only available with the graphics accelerator
	Chunky8

	// 16-bit true-colour
	TrueColor16
)

func (l Layout) String() string {
	switch l {
	case Planar8:
		return "planar8"
	case Chunky8:
		return "chunky8"
	case TrueColor16:
		return "truecolor16"
	}
	return "unknown"
}

// BytesPerPixel returns the number of bytes used per pixel by the layout.
func (l Layout) BytesPerPixel() int {
	if l == TrueColor16 {
		return 2
	}
	return 1
}

// Resolution is a canned low-level resolution descriptor.
type Resolution struct {
	Width   int
	Height  int
	Layout  Layout
	Monitor Monitor

	// the alternate aspect-ratio corrected timing
	Aspect bool

	// vertical refresh rate in Hz
	RefreshRate float32

	// how much each pixel is stretched vertically when displayed
	PixelAspect float32
}

func (r Resolution) String() string {
	s := fmt.Sprintf("%dx%d %v %v %.0fHz", r.Width, r.Height, r.Layout, r.Monitor, r.RefreshRate)
	if r.Aspect {
		s = fmt.Sprintf("%s (aspect)", s)
	}
	return s
}

// Pitch returns the number of bytes in one line of the resolution.
func (r Resolution) Pitch() int {
	return r.Width * r.Layout.BytesPerPixel()
}

// error patterns.
const (
	UnsupportedResolution = "videl: unsupported resolution (%dx%d %v)"
)

type size struct {
	w, h int
}

// the resolutions supported by each layout.
var supported = map[Layout][]size{
	Planar8:     {{320, 200}, {320, 240}, {640, 400}, {640, 480}},
	Chunky8:     {{320, 200}, {320, 240}, {640, 400}, {640, 480}},
	TrueColor16: {{320, 240}, {640, 480}},
}

// Supported returns true if the size is supported by the layout.
func Supported(width, height int, layout Layout) bool {
	for _, s := range supported[layout] {
		if s.w == width && s.h == height {
			return true
		}
	}
	return false
}

// Lookup returns the canned resolution descriptor for the requested mode. The
// aspect argument is ignored for resolutions that do not have an aspect
// corrected variant.
func Lookup(width, height int, layout Layout, monitor Monitor, aspect bool) (Resolution, error) {
	if !Supported(width, height, layout) {
		return Resolution{}, curated.Errorf(UnsupportedResolution, width, height, layout)
	}

	res := Resolution{
		Width:       width,
		Height:      height,
		Layout:      layout,
		Monitor:     monitor,
		PixelAspect: 1.0,
	}

	// 200 and 400 line modes are not 4:3. the aspect corrected variant
	// stretches them to fill the screen
	tall := height == 200 || height == 400
	res.Aspect = aspect && tall
	if res.Aspect {
		res.PixelAspect = 1.2
	}

	switch monitor {
	case VGA:
		if tall && !res.Aspect {
			res.RefreshRate = 70
		} else {
			res.RefreshRate = 60
		}
	case RGB:
		res.RefreshRate = 50
	}

	return res, nil
}
