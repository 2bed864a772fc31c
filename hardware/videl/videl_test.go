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

package videl_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/falcongfx/falcongfx/curated"
	"github.com/falcongfx/falcongfx/hardware/c2p"
	"github.com/falcongfx/falcongfx/hardware/videl"
	"github.com/falcongfx/falcongfx/test"
)

func TestLookup(t *testing.T) {
	res, err := videl.Lookup(320, 200, videl.Planar8, videl.VGA, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.RefreshRate, 70)
	test.ExpectEquality(t, res.PixelAspect, 1.0)
	test.ExpectEquality(t, res.Pitch(), 320)

	// aspect corrected variant uses the alternate timing
	res, err = videl.Lookup(320, 200, videl.Planar8, videl.VGA, true)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, res.Aspect)
	test.ExpectEquality(t, res.RefreshRate, 60)
	test.ExpectEquality(t, res.PixelAspect, 1.2)

	// 240 line resolutions have no aspect corrected variant
	res, err = videl.Lookup(320, 240, videl.Planar8, videl.VGA, true)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, res.Aspect)

	res, err = videl.Lookup(640, 480, videl.TrueColor16, videl.RGB, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.RefreshRate, 50)
	test.ExpectEquality(t, res.Pitch(), 1280)
	test.ExpectEquality(t, res.String(), "640x480 truecolor16 RGB 50Hz")

	_, err = videl.Lookup(320, 200, videl.TrueColor16, videl.VGA, false)
	test.ExpectSuccess(t, curated.Is(err, videl.UnsupportedResolution))

	_, err = videl.Lookup(800, 600, videl.Planar8, videl.VGA, false)
	test.ExpectSuccess(t, curated.Is(err, videl.UnsupportedResolution))
}

func TestDecode(t *testing.T) {
	palette := make([]uint32, 256)
	palette[1] = 0xff0000ff
	palette[2] = 0x00ff0000

	chunky := make([]byte, 320*200)
	chunky[0] = 1
	chunky[321] = 2

	img := image.NewRGBA(image.Rect(0, 0, 320, 200))

	res, _ := videl.Lookup(320, 200, videl.Chunky8, videl.VGA, false)
	videl.Decode(res, chunky, palette, img)
	test.ExpectEquality(t, img.RGBAAt(0, 0), color.RGBA{R: 0xff, B: 0xff, A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(1, 1), color.RGBA{G: 0xff, A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(2, 2), color.RGBA{A: 0xff})

	// planar data decodes to the same image
	planar := make([]byte, 320*200)
	c2p.ChunkyToPlanar(planar, 320, chunky, 320, image.Rect(0, 0, 320, 200))
	pimg := image.NewRGBA(image.Rect(0, 0, 320, 200))
	res, _ = videl.Lookup(320, 200, videl.Planar8, videl.VGA, false)
	videl.Decode(res, planar, palette, pimg)
	test.ExpectEquality(t, string(pimg.Pix), string(img.Pix))
}

func TestDecodeTrueColor(t *testing.T) {
	mem := make([]byte, 320*240*2)
	mem[0] = 0x00
	mem[1] = 0xf8

	img := image.NewRGBA(image.Rect(0, 0, 320, 240))
	res, _ := videl.Lookup(320, 240, videl.TrueColor16, videl.VGA, false)
	videl.Decode(res, mem, nil, img)
	test.ExpectEquality(t, img.RGBAAt(0, 0), color.RGBA{R: 0xff, A: 0xff})
}
