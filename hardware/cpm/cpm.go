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

package cpm

import (
	"io"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8080/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher8080/logger"
)

// Sentinal error patterns returned by the CP/M board.
const (
	ErrTestsFailed = "cpm: tests failed"
)

// Addresses of interest in the CP/M memory map.
const (
	WarmBoot      = 0x0000
	BDOS          = 0x0005
	ProgramOrigin = 0x0100

	// the end of the transient program area. the stub at the BDOS entry point
	// jumps here and programs that size their stack from the word at 0x0006
	// use it as the top of the stack
	TopOfMemory = 0xff00
)

// MaxProgramSize is the largest program that can be loaded. Longer programs
// are truncated.
const MaxProgramSize = 0x10000 - ProgramOrigin

// CPUDiagErrorRoutine is the address of the error routine in the cpudiag
// program.
const CPUDiagErrorRoutine = 0x0689

const (
	opHLT = 0x76
	opJMP = 0xc3
	opRET = 0xc9
)

// Board is the CP/M board. It implements the cpubus.Memory and cpubus.Trap
// interfaces.
type Board struct {
	RAM   [0x10000]uint8
	Ports [256]uint8

	console Console

	// the program's error routine. only used if hasErrorRoutine is true
	errorRoutine    uint16
	hasErrorRoutine bool

	// failed is set when the error routine is entered
	failed bool

	// the first visit to the warm boot address is the jump to the program
	booted bool

	// the number of writes to the zero page that have been discarded
	discarded int

	// the remaining instructions of a BDOS function. the final instruction is
	// always a RET
	pending [][]uint8
}

// NewBoard is the preferred method of initialisation for the Board type. The
// console can be nil, in which case console output is discarded and there is
// no console input.
func NewBoard(program []uint8, console Console) *Board {
	brd := &Board{
		console: console,
	}

	if brd.console == nil {
		brd.console = NewConsole(nil, nil)
	}

	brd.RAM[WarmBoot] = opJMP
	brd.RAM[WarmBoot+1] = uint8(ProgramOrigin & 0xff)
	brd.RAM[WarmBoot+2] = uint8(ProgramOrigin >> 8)

	brd.RAM[BDOS] = opJMP
	brd.RAM[BDOS+1] = uint8(TopOfMemory & 0xff)
	brd.RAM[BDOS+2] = uint8(TopOfMemory >> 8)

	if len(program) > MaxProgramSize {
		logger.Logf(logger.Allow, "cpm", "program truncated to %d bytes (from %d bytes)", MaxProgramSize, len(program))
		program = program[:MaxProgramSize]
	}
	copy(brd.RAM[ProgramOrigin:], program)

	logger.Logf(logger.Allow, "cpm", "loaded %d bytes", len(program))

	return brd
}

// SetErrorRoutine sets the address of the program's error routine. Entering
// the error routine marks the program as failed.
func (brd *Board) SetErrorRoutine(address uint16) {
	brd.errorRoutine = address
	brd.hasErrorRoutine = true
}

// Failed returns true if the program's error routine has been entered.
func (brd *Board) Failed() bool {
	return brd.failed
}

// Discarded returns the number of writes to the zero page that have been
// ignored.
func (brd *Board) Discarded() int {
	return brd.discarded
}

// Peek returns the byte at the address.
func (brd *Board) Peek(address uint16) uint8 {
	return brd.RAM[address]
}

// Read implements the cpubus.Memory interface.
func (brd *Board) Read(address uint16) (uint8, error) {
	return brd.RAM[address], nil
}

// Write implements the cpubus.Memory interface. Writes to the zero page are
// discarded.
func (brd *Board) Write(address uint16, data uint8) error {
	if address < ProgramOrigin {
		brd.discarded++
		return nil
	}
	brd.RAM[address] = data
	return nil
}

// Input implements the cpubus.Memory interface.
func (brd *Board) Input(port uint8) (uint8, error) {
	return brd.Ports[port], nil
}

// Output implements the cpubus.Memory interface.
func (brd *Board) Output(port uint8, data uint8) error {
	brd.Ports[port] = data
	return nil
}

// OnInstruction implements the cpubus.Trap interface.
func (brd *Board) OnInstruction(state registers.State, opcode [cpubus.TrapSize]uint8) ([]uint8, error) {
	switch state.PC {
	case WarmBoot:
		if !brd.booted {
			brd.booted = true
			return nil, nil
		}

		if _, err := io.WriteString(brd.console, "\n"); err != nil {
			return nil, err
		}

		if brd.failed {
			return nil, curated.Errorf(ErrTestsFailed)
		}

		logger.Log(logger.Allow, "cpm", "warm boot")
		return []uint8{opHLT}, nil

	case BDOS:
		if len(brd.pending) == 0 {
			var err error
			brd.pending, err = brd.bdos(state)
			if err != nil {
				return nil, err
			}
		}

		r := brd.pending[0]
		brd.pending = brd.pending[1:]
		return r, nil
	}

	if brd.hasErrorRoutine && state.PC == brd.errorRoutine {
		brd.failed = true

		// the error routine is entered with a CALL so the return address is
		// on the stack
		from := uint16(brd.RAM[state.SP]) | uint16(brd.RAM[state.SP+1])<<8
		from -= 3

		logger.Logf(logger.Allow, "cpm", "entered cpu error routine from %#04x", from)
		logger.Logf(logger.Allow, "cpm", "a=%02xh c=%d p=%d s=%d z=%d", state.A,
			flag(state.Status.Carry), flag(state.Status.Parity),
			flag(state.Status.Sign), flag(state.Status.Zero))
	}

	return nil, nil
}

func flag(f bool) int {
	if f {
		return 1
	}
	return 0
}
