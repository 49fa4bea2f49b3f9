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

package cpu

import (
	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/memory/cpubus"
)

// RSTCode returns the opcode of the RST instruction for the vector. Only the
// lower three bits of the vector are used.
func RSTCode(vector uint8) uint8 {
	return 0xc7 | (vector&0x07)<<3
}

// Interrupt delivers an interrupt to the CPU. The code is an opcode that is
// executed as though it was read from the data bus, usually an RST
// instruction.
//
// If interrupts are disabled, or if there is no memory plumbed into the CPU,
// the interrupt is ignored and false is returned.
// This is not an error. Otherwise interrupts are disabled, the CPU is
// reactivated and the code is executed.
//
// The code must be a single byte instruction. If it is not then the
// ErrInterruptCode error is returned and the CPU is unchanged.
func (mc *CPU) Interrupt(code uint8) (bool, error) {
	if mc.mem == nil || !mc.InterruptsEnabled {
		return false, nil
	}

	if mc.instructions[code].Bytes != 1 {
		return false, curated.Errorf(ErrInterruptCode, code)
	}

	mc.InterruptsEnabled = false
	mc.Active = true
	mc.Waiting = false

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.FromInterrupt = true

	_, err := mc.executeStream([]uint8{code})
	if err != nil {
		return true, err
	}

	return true, nil
}

// Reset delivers the RST instruction for the vector as an interrupt. The
// vector must be less than eight otherwise the ErrResetVector error is
// returned.
//
// The same masking rules as Interrupt() apply.
func (mc *CPU) Reset(vector uint8) (bool, error) {
	if vector >= cpubus.NumVectors {
		return false, curated.Errorf(ErrResetVector, vector)
	}
	return mc.Interrupt(RSTCode(vector))
}
