// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

package invaders

import (
	"github.com/jetsetilly/gopher8080/curated"
)

// Sentinal error patterns returned by the invaders board.
const (
	ErrROMSize = "invaders: rom too large (%d bytes)"
)

// Memory map of the board. Addresses are mirrored with AddressMask.
const (
	ROMOrigin   = 0x0000
	ROMSize     = 0x2000
	RAMOrigin   = 0x2000
	VRAMOrigin  = 0x2400
	VRAMSize    = 0x1c00
	AddressMask = 0x3fff
)

// Board is the Space Invaders board. It implements the cpubus.Memory
// interface.
type Board struct {
	mem [AddressMask + 1]uint8

	// input latches for ports 0, 1 and 2
	inputs [3]uint8

	shift       uint16
	shiftOffset uint8

	// the last values written to the sound ports 3 and 5
	soundLatch [2]uint8

	listener SoundListener

	// the number of watchdog resets
	Watchdog int
}

// NewBoard is the preferred method of initialisation for the Board type. The
// ROM is copied to the start of memory and must be no larger than 8KiB.
func NewBoard(rom []uint8) (*Board, error) {
	if len(rom) > ROMSize {
		return nil, curated.Errorf(ErrROMSize, len(rom))
	}

	brd := &Board{}
	copy(brd.mem[ROMOrigin:], rom)

	// bits that are always set
	brd.inputs[0] = 0x0e
	brd.inputs[1] = 0x08

	return brd, nil
}

// Peek returns the byte at the address.
func (brd *Board) Peek(address uint16) uint8 {
	return brd.mem[address&AddressMask]
}

// Read implements the cpubus.Memory interface.
func (brd *Board) Read(address uint16) (uint8, error) {
	return brd.mem[address&AddressMask], nil
}

// Write implements the cpubus.Memory interface. Writes to ROM are ignored.
func (brd *Board) Write(address uint16, data uint8) error {
	address &= AddressMask
	if address < RAMOrigin {
		return nil
	}
	brd.mem[address] = data
	return nil
}

// Input implements the cpubus.Memory interface.
func (brd *Board) Input(port uint8) (uint8, error) {
	switch port {
	case 0, 1, 2:
		return brd.inputs[port], nil
	case 3:
		return uint8(brd.shift >> (8 - brd.shiftOffset)), nil
	}
	return 0, nil
}

// Output implements the cpubus.Memory interface.
func (brd *Board) Output(port uint8, data uint8) error {
	switch port {
	case 2:
		brd.shiftOffset = data & 0x07
	case 3:
		brd.sound(0, data)
	case 4:
		brd.shift = brd.shift>>8 | uint16(data)<<8
	case 5:
		brd.sound(1, data)
	case 6:
		brd.Watchdog++
	}
	return nil
}

// VRAM returns a copy of video memory.
func (brd *Board) VRAM() [VRAMSize]uint8 {
	var v [VRAMSize]uint8
	copy(v[:], brd.mem[VRAMOrigin:])
	return v
}
