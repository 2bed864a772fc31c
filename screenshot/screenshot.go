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


// Package screenshot saves the screen being shown to a PNG file. The image is
// scaled so that it appears as it would on the monitor, with the pixel aspect
// of the resolution applied.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/falcongfx/falcongfx/curated"
	"github.com/falcongfx/falcongfx/host/headless"
	"github.com/falcongfx/falcongfx/logger"
	"github.com/falcongfx/falcongfx/paths"
)

// error patterns.
const (
	NoScreen    = "screenshot: no screen has been latched"
	WriteFailed = "screenshot: %v"
)

// Scale the image by an integer factor horizontally. The vertical factor is
// multiplied by the pixel aspect. Pixels are not interpolated.
func Scale(img *image.RGBA, factor int, pixelAspect float32) *image.RGBA {
	factor = max(factor, 1)
	if pixelAspect <= 0 {
		pixelAspect = 1.0
	}

	w := img.Bounds().Dx() * factor
	h := int(float32(img.Bounds().Dy()*factor) * pixelAspect)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Save the screen described by the registers. The file is created in the
// current directory with a unique name starting with the label. Returns the
// name of the file.
func Save(regs headless.Registers, label string, factor int) (string, error) {
	img := headless.Decode(regs)
	if img == nil {
		return "", curated.Errorf(NoScreen)
	}

	path := fmt.Sprintf("%s.png", paths.UniqueFilename("screenshot", label))
	err := Write(path, Scale(img, factor, regs.Resolution.PixelAspect))
	if err != nil {
		return "", err
	}

	logger.Logf(logger.Allow, "screenshot", "saved: %s", path)
	return path, nil
}

// Write the image to path as a PNG file.
func Write(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(WriteFailed, err)
	}

	err = png.Encode(f, img)
	if err != nil {
		_ = f.Close()
		return curated.Errorf(WriteFailed, err)
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf(WriteFailed, err)
	}

	return nil
}
