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

package hardware

import (
	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8080/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher8080/hardware/memory/flat"
	"github.com/jetsetilly/gopher8080/logger"
)

// Sentinal error patterns returned by the hardware package.
const (
	ErrImageTooLarge  = "machine: image too large (%d bytes)"
	ErrNoDefaultBoard = "machine: no default board"
)

// Machine is the root of the emulation. It contains external references to
// the CPU and the bus.
type Machine struct {
	CPU *cpu.CPU

	// the bus the CPU is attached to. nil once the machine has been closed
	Mem cpubus.Memory

	// board is only non-nil if the machine created its own bus
	board *flat.Board

	// the total number of cycles executed since the machine was installed
	Cycles uint64
}

// Install creates a new Machine attached to the bus. If the bus is nil then a
// flat board is created and owned by the Machine. The flat board can be seeded
// with Load() and inspected through the DefaultBoard() function.
//
// The CPU is in the power-on state.
func Install(bus cpubus.Memory) *Machine {
	m := &Machine{}

	if bus == nil {
		m.board = flat.NewBoard()
		bus = m.board
	}

	m.Mem = bus
	m.CPU = cpu.NewCPU(m.Mem)

	return m
}

// NewFromImage creates a new Machine with a flat board. The image is copied
// to the board starting at address zero. The image must not be larger than the
// 8080 address space.
func NewFromImage(image []uint8) (*Machine, error) {
	if len(image) > flat.MemorySize {
		return nil, curated.Errorf(ErrImageTooLarge, len(image))
	}

	m := Install(nil)
	if err := m.Load(0x0000, image); err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "machine", "image loaded (%d bytes)", len(image))

	return m, nil
}

// DefaultBoard returns read-only access to the flat board created by the
// Machine. Returns nil if the Machine was installed with an external bus or if
// the Machine has been closed.
//
// Use Load() to seed the default board.
func (m *Machine) DefaultBoard() flat.Viewer {
	if m.board == nil {
		return nil
	}
	return m.board
}

// Load copies data into the default board starting at the origin address.
// Returns the ErrNoDefaultBoard error if the Machine does not own a board.
func (m *Machine) Load(origin uint16, data []uint8) error {
	if m.board == nil {
		return curated.Errorf(ErrNoDefaultBoard)
	}
	return m.board.Load(origin, data)
}

// Close detaches the bus from the Machine. Further calls to Execute() will
// return zero.
func (m *Machine) Close() {
	m.Mem = nil
	m.board = nil
	m.CPU.Plumb(nil)
}

// Execute a single instruction. See cpu.Execute() for details.
func (m *Machine) Execute() (uint8, error) {
	c, err := m.CPU.Execute()
	if err != nil {
		return 0, err
	}
	m.Cycles += uint64(c)
	return c, nil
}

// Interrupt delivers the instruction to the CPU as an interrupt. See
// cpu.Interrupt() for details.
func (m *Machine) Interrupt(code uint8) (bool, error) {
	if m.Mem == nil {
		return false, nil
	}
	ok, err := m.CPU.Interrupt(code)
	if ok {
		m.Cycles += uint64(m.CPU.LastResult.Cycles)
	}
	return ok, err
}

// Reset delivers the RST instruction for the vector as an interrupt. See
// cpu.Reset() for details.
func (m *Machine) Reset(vector uint8) (bool, error) {
	if vector >= cpubus.NumVectors {
		return false, curated.Errorf(cpu.ErrResetVector, vector)
	}
	return m.Interrupt(cpu.RSTCode(vector))
}

// State returns a snapshot of the CPU.
func (m *Machine) State() registers.State {
	return m.CPU.State()
}

func (m *Machine) String() string {
	return m.CPU.String()
}
