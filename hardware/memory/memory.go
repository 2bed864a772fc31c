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

package memory

import (
	"fmt"
	"math"

	"github.com/falcongfx/falcongfx/curated"
	"github.com/falcongfx/falcongfx/logger"
)

// Bank identifies a region of memory.
type Bank int

// List of valid Bank values.
const (
	// memory visible to the video hardware of the base machine
	STRAM Bank = iota

	// fast memory. not visible to the base video hardware
	FastRAM

	// memory of the graphics accelerator
	AcceleratorRAM

	numBanks
)

func (b Bank) String() string {
	switch b {
	case STRAM:
		return "ST RAM"
	case FastRAM:
		return "fast RAM"
	case AcceleratorRAM:
		return "accelerator RAM"
	}
	return fmt.Sprintf("bank %d", int(b))
}

// AcceleratorTag is set in the address of every block in the accelerator bank.
const AcceleratorTag = 0xa0000000

// VideoAlignment is the address alignment required by the video hardware for
// the start of a screen.
const VideoAlignment = 16

// base address and default capacity of each bank.
var banks = [numBanks]struct {
	base     uint32
	capacity int
}{
	STRAM:          {base: 0x00010000, capacity: 14 * 1024 * 1024},
	FastRAM:        {base: 0x01000000, capacity: 256 * 1024 * 1024},
	AcceleratorRAM: {base: AcceleratorTag, capacity: 128 * 1024 * 1024},
}

// error patterns.
const (
	OutOfMemory  = "memory: out of %v (%d bytes requested, %d available)"
	InvalidSize  = "memory: invalid size (%s)"
	InvalidAlign = "memory: invalid alignment (%d)"
	NoSuchBank   = "memory: no such bank (%v)"
)

// Block is an allocated region of memory.
type Block struct {
	Bank Bank

	// the aligned address of the block
	Addr uint32

	// the aligned memory of the block. the length of the slice is the size
	// requested when the block was allocated
	Mem []byte

	// the size of the allocation including alignment padding
	allocated int
}

// Tagged returns true if the address of the block has the accelerator tag.
func (b *Block) Tagged() bool {
	return b.Addr&AcceleratorTag == AcceleratorTag
}

func (b *Block) String() string {
	return fmt.Sprintf("%v %#08x (%d bytes)", b.Bank, b.Addr, len(b.Mem))
}

// Allocator hands out blocks from each bank.
type Allocator struct {
	capacity [numBanks]int
	used     [numBanks]int
	next     [numBanks]uint32
}

// NewAllocator is the preferred method of initialisation for the Allocator
// type.
func NewAllocator() *Allocator {
	a := &Allocator{}
	for i, b := range banks {
		a.capacity[i] = b.capacity
		a.next[i] = b.base
	}
	return a
}

// SetCapacity changes the capacity of a bank. Used to simulate machines with
// less memory.
func (a *Allocator) SetCapacity(bank Bank, capacity int) {
	if bank >= 0 && bank < numBanks {
		a.capacity[bank] = capacity
	}
}

// Available returns the number of unallocated bytes in the bank.
func (a *Allocator) Available(bank Bank) int {
	if bank < 0 || bank >= numBanks {
		return 0
	}
	return a.capacity[bank] - a.used[bank]
}

// Alloc allocates size bytes from the bank. The address of the returned
// block is a multiple of align, which must be a power of two.
func (a *Allocator) Alloc(bank Bank, size int, align int) (*Block, error) {
	if bank < 0 || bank >= numBanks {
		return nil, curated.Errorf(NoSuchBank, bank)
	}
	if align <= 0 || align&(align-1) != 0 {
		return nil, curated.Errorf(InvalidAlign, align)
	}
	if size <= 0 || size > math.MaxInt32-align {
		return nil, curated.Errorf(InvalidSize, fmt.Sprintf("%d bytes", size))
	}

	// the block is allocated with enough padding to allow the start to be
	// moved to an aligned address
	padded := size + align - 1
	if padded > a.Available(bank) {
		return nil, curated.Errorf(OutOfMemory, bank, size, a.Available(bank))
	}

	raw := make([]byte, padded)
	addr := a.next[bank]
	aligned := (addr + uint32(align) - 1) &^ (uint32(align) - 1)
	offset := int(aligned - addr)

	a.next[bank] += uint32(padded)
	a.used[bank] += padded

	b := &Block{
		Bank:      bank,
		Addr:      aligned,
		Mem:       raw[offset : offset+size : offset+size],
		allocated: padded,
	}

	logger.Logf(logger.Allow, "memory", "allocated %v", b)

	return b, nil
}

// Free returns the memory of the block to the bank. Addresses are not
// reused.
func (a *Allocator) Free(b *Block) {
	if b == nil || b.allocated == 0 {
		return
	}
	a.used[b.Bank] -= b.allocated
	b.allocated = 0
	b.Mem = nil
}

// BufferSize returns the number of bytes needed for a buffer of the given
// dimensions. The arithmetic is checked for overflow.
func BufferSize(width, height, bytesPerPixel int) (int, error) {
	if width <= 0 || height <= 0 || bytesPerPixel <= 0 {
		return 0, curated.Errorf(InvalidSize, fmt.Sprintf("%dx%dx%d", width, height, bytesPerPixel))
	}

	pitch := width * bytesPerPixel
	if pitch/bytesPerPixel != width || pitch > math.MaxInt32 {
		return 0, curated.Errorf(InvalidSize, fmt.Sprintf("%dx%dx%d", width, height, bytesPerPixel))
	}

	size := pitch * height
	if size/height != pitch || size > math.MaxInt32 {
		return 0, curated.Errorf(InvalidSize, fmt.Sprintf("%dx%dx%d", width, height, bytesPerPixel))
	}

	return size, nil
}
