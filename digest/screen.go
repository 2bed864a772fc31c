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


package digest

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"

	"github.com/falcongfx/falcongfx/host/headless"
)

// Source of latched video registers.
type Source interface {
	Latched() (headless.Registers, uint32)
}

// Screen is a Digest of the frames presented by a Source.
type Screen struct {
	src    Source
	digest uint64

	// the frame number of the most recently hashed latch and the number of
	// frames included in the digest
	frameNum uint32
	frames   int

	// the previous digest is written to the head of the hash input
	chain [8]byte
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen(src Source) *Screen {
	return &Screen{src: src}
}

// Hash implements the Digest interface.
func (dig *Screen) Hash() string {
	return fmt.Sprintf("%016x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Screen) ResetDigest() {
	dig.digest = 0
	dig.frames = 0
}

// Frames returns the number of frames included in the digest.
func (dig *Screen) Frames() int {
	return dig.frames
}

// Update adds the most recently latched frame to the digest. Frames are
// only added once and frames that cannot be decoded are ignored. Returns
// true if the digest has changed.
func (dig *Screen) Update() bool {
	regs, frameNum := dig.src.Latched()
	if frameNum == dig.frameNum {
		return false
	}

	img := headless.Decode(regs)
	if img == nil {
		return false
	}
	dig.frameNum = frameNum

	binary.LittleEndian.PutUint64(dig.chain[:], dig.digest)

	d := xxhash.New()
	_, _ = d.Write(dig.chain[:])
	_, _ = d.Write(img.Pix)
	dig.digest = d.Sum64()
	dig.frames++

	return true
}
