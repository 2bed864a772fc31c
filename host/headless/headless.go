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

// Package headless implements a video controller with no display. The screen
// memory being shown at the most recent vertical blank can be decoded to an
// image with the Snapshot() function.
package headless

import (
	"image"
	"sync"

	"github.com/falcongfx/falcongfx/hardware"
	"github.com/falcongfx/falcongfx/hardware/memory"
	"github.com/falcongfx/falcongfx/hardware/vblank"
	"github.com/falcongfx/falcongfx/hardware/videl"
)

// Registers are the values of the video controller registers.
type Registers struct {
	Screen     *memory.Block
	Resolution videl.Resolution
	Palette    []uint32
}

// Host is a video controller with no display.
type Host struct {
	caps hardware.Capabilities

	// the latch happens on the goroutine of the clock
	crit sync.Mutex

	// values written by the graphics manager
	pending Registers

	// values in effect since the last vertical blank
	latched Registers
	frame   uint32

	// when publishing, the registers latched at the vertical blank are the
	// ones most recently published, with a copy of the screen memory
	publishing bool
	published  Registers

	// the published screen memory has been latched and may be being read
	publishedLatched bool
}

// NewHost is the preferred method of initialisation for the Host type. The
// host latches the registers on every tick of the clock.
func NewHost(caps hardware.Capabilities, clock vblank.Clock) *Host {
	h := &Host{
		caps: caps,
	}
	clock.OnTick(h.latch)
	return h
}

func (h *Host) latch(count uint32) {
	h.crit.Lock()
	defer h.crit.Unlock()
	if h.publishing {
		if h.published.Screen != nil {
			h.latched = h.published
			h.publishedLatched = true
		}
	} else {
		h.latched = h.pending
	}
	h.frame = count
}

// EnablePublishing changes how screen memory is latched. Once enabled, only
// screen memory copied by Publish() is latched. Required when the latched
// screen is read on a different goroutine to the one writing screen memory.
func (h *Host) EnablePublishing() {
	h.crit.Lock()
	defer h.crit.Unlock()
	h.publishing = true
}

// Publish copies the current screen memory and registers, ready to be latched
// at the next vertical blank. Must be called on the goroutine that writes to
// screen memory.
func (h *Host) Publish() {
	h.crit.Lock()
	defer h.crit.Unlock()

	src := h.pending.Screen
	if src == nil {
		return
	}

	// memory that has been latched is never written to again
	dst := h.published.Screen
	if dst == nil || h.publishedLatched || len(dst.Mem) != len(src.Mem) {
		dst = &memory.Block{Mem: make([]byte, len(src.Mem))}
		h.publishedLatched = false
	}
	dst.Bank = src.Bank
	dst.Addr = src.Addr
	copy(dst.Mem, src.Mem)

	h.published = h.pending
	h.published.Screen = dst
}

// Capabilities implements the hardware.Video interface.
func (h *Host) Capabilities() hardware.Capabilities {
	return h.caps
}

// SetScreenAddress implements the hardware.Video interface.
func (h *Host) SetScreenAddress(b *memory.Block) {
	h.crit.Lock()
	defer h.crit.Unlock()
	h.pending.Screen = b
}

// SetResolution implements the hardware.Video interface.
func (h *Host) SetResolution(res videl.Resolution) {
	h.crit.Lock()
	defer h.crit.Unlock()
	h.pending.Resolution = res
}

// SetPalette implements the hardware.Video interface.
func (h *Host) SetPalette(palette []uint32) {
	h.crit.Lock()
	defer h.crit.Unlock()
	h.pending.Palette = append(h.pending.Palette[:0:0], palette...)
}

// Latched returns the registers in effect and the vertical blank count at
// which they were latched.
func (h *Host) Latched() (Registers, uint32) {
	h.crit.Lock()
	defer h.crit.Unlock()
	return h.latched, h.frame
}

// Snapshot decodes the screen memory being shown. Returns nil if no screen
// has been latched yet.
func (h *Host) Snapshot() *image.RGBA {
	regs, _ := h.Latched()
	return Decode(regs)
}

// Decode the screen memory described by the registers. Returns nil if the
// registers are incomplete.
func Decode(regs Registers) *image.RGBA {
	if regs.Screen == nil || regs.Resolution.Width == 0 {
		return nil
	}

	pal := regs.Palette
	if len(pal) < 256 {
		pal = make([]uint32, 256)
		copy(pal, regs.Palette)
	}

	img := image.NewRGBA(image.Rect(0, 0, regs.Resolution.Width, regs.Resolution.Height))
	videl.Decode(regs.Resolution, regs.Screen.Mem, pal, img)
	return img
}
