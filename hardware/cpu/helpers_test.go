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

package cpu_test

import (
	"errors"

	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8080/hardware/memory/cpubus"
)

var errBus = errors.New("bus error")

type mockMem struct {
	internal [0x10000]uint8
	in       [256]uint8
	out      [256]uint8

	// address that will cause an error when accessed. zero for no fault
	fault uint16
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if mem.fault != 0 && address == mem.fault {
		return 0, errBus
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if mem.fault != 0 && address == mem.fault {
		return errBus
	}
	mem.internal[address] = data
	return nil
}

func (mem *mockMem) Input(port uint8) (uint8, error) {
	return mem.in[port], nil
}

func (mem *mockMem) Output(port uint8, data uint8) error {
	mem.out[port] = data
	return nil
}

// putInstructions places the bytes at the origin address and returns the
// address of the byte after the last one.
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

// trapMem adds the cpubus.Trap interface to mockMem.
type trapMem struct {
	mockMem
	onInstruction func(state registers.State, opcode [cpubus.TrapSize]uint8) ([]uint8, error)
	calls         int
}

func (mem *trapMem) OnInstruction(state registers.State, opcode [cpubus.TrapSize]uint8) ([]uint8, error) {
	mem.calls++
	if mem.onInstruction == nil {
		return nil, nil
	}
	return mem.onInstruction(state, opcode)
}

// newTestCPU returns a CPU with the program loaded at address zero.
func newTestCPU(program ...uint8) (*cpu.CPU, *mockMem) {
	mem := &mockMem{}
	mem.putInstructions(0, program...)
	return cpu.NewCPU(mem), mem
}

// step executes the number of instructions and returns the total number of
// cycles. the first error ends the steps early.
func step(mc *cpu.CPU, n int) (int, error) {
	var total int
	for i := 0; i < n; i++ {
		c, err := mc.Execute()
		if err != nil {
			return total, err
		}
		total += int(c)
	}
	return total, nil
}
