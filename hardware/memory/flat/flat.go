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

// Package flat implements the simplest possible board for the 8080: a full
// 64KiB of RAM and 256 input and output ports. Every address is readable and
// writable and no port has any side effect.
//
// It is the board used by a Machine when no other bus is provided.
package flat

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8080/curated"
)

// Sentinal error patterns returned by the flat board.
const (
	ErrLoadOverflow = "flat: data too large for origin (%#04x + %d bytes)"
)

// MemorySize is the number of addressable bytes on the board.
const MemorySize = 0x10000

// NumPorts is the number of input ports and the number of output ports.
const NumPorts = 256

// Viewer is read-only access to a Board.
type Viewer interface {
	Peek(address uint16) uint8
	PeekInput(port uint8) uint8
	PeekOutput(port uint8) uint8
	Dump(from uint16, to uint16) string
}

// Board is a flat 64KiB memory with plain input and output ports. The fields
// are exported for inspection.
type Board struct {
	RAM [MemorySize]uint8
	In  [NumPorts]uint8
	Out [NumPorts]uint8
}

// NewBoard is the preferred method of initialisation for the Board type. All
// memory and ports are zero.
func NewBoard() *Board {
	return &Board{}
}

// NewBoardFromImage returns a board with the image copied to address zero.
func NewBoardFromImage(image []uint8) (*Board, error) {
	brd := NewBoard()
	if err := brd.Load(0x0000, image); err != nil {
		return nil, err
	}
	return brd, nil
}

// Load copies data into memory starting at the origin address. The data must
// fit without wrapping past the top of memory.
func (brd *Board) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > MemorySize {
		return curated.Errorf(ErrLoadOverflow, origin, len(data))
	}
	copy(brd.RAM[origin:], data)
	return nil
}

// Peek returns the byte at the address. Unlike Read() there is no error return.
func (brd *Board) Peek(address uint16) uint8 {
	return brd.RAM[address]
}

// PeekInput returns the value that will be read from the input port.
func (brd *Board) PeekInput(port uint8) uint8 {
	return brd.In[port]
}

// PeekOutput returns the last value written to the output port.
func (brd *Board) PeekOutput(port uint8) uint8 {
	return brd.Out[port]
}

// Read implements the cpubus.Memory interface.
func (brd *Board) Read(address uint16) (uint8, error) {
	return brd.RAM[address], nil
}

// Write implements the cpubus.Memory interface.
func (brd *Board) Write(address uint16, data uint8) error {
	brd.RAM[address] = data
	return nil
}

// ReadWord implements the cpubus.WordReader interface.
func (brd *Board) ReadWord(address uint16) (uint16, error) {
	return uint16(brd.RAM[address]) | uint16(brd.RAM[address+1])<<8, nil
}

// WriteWord implements the cpubus.WordWriter interface.
func (brd *Board) WriteWord(address uint16, data uint16) error {
	brd.RAM[address] = uint8(data)
	brd.RAM[address+1] = uint8(data >> 8)
	return nil
}

// Input implements the cpubus.Memory interface.
func (brd *Board) Input(port uint8) (uint8, error) {
	return brd.In[port], nil
}

// Output implements the cpubus.Memory interface.
func (brd *Board) Output(port uint8, data uint8) error {
	brd.Out[port] = data
	return nil
}

// Dump returns a hex dump of the memory between the two addresses inclusive.
// Output is aligned to sixteen byte rows.
func (brd *Board) Dump(from uint16, to uint16) string {
	s := strings.Builder{}
	s.WriteString("        -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("      ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")

	start := int(from) &^ 0x0f
	for y := start; y <= int(to); y += 16 {
		s.WriteString(fmt.Sprintf("%04X- | ", y>>4))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", brd.RAM[y+x]))
		}
		s.WriteString("\n")
	}

	return strings.Trim(s.String(), "\n")
}
