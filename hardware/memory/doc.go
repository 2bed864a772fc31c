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

// Package memory simulates the banked memory of the target machine. Video
// buffers must be allocated from a bank the video hardware can see and must
// start on an aligned address.
//
// Addresses are simulated. Each bank has its own address range and blocks
// are handed out sequentially from the bottom of the range. Blocks in the
// accelerator bank have the high bank bits of the address set, which the
// accelerator uses to select its own memory.
//
// Allocation failure is not recoverable. The errors returned by Alloc()
// should be treated as fatal by the caller.
package memory
