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

// Package cpu emulates the Intel 8080 microprocessor. It requires an
// implementation of the cpubus.Memory interface, through which all memory and
// port accesses are made. The CPU does not own the memory.
//
// Execute() performs a single instruction and returns the number of cycles
// the instruction took. A return value of zero means that the CPU has halted
// and will not execute any more instructions. Timing of the emulation is the
// responsibility of the caller. For example, the following will run a program
// until it halts and keep count of the number of cycles elapsed.
//
//	mc := cpu.NewCPU(mem)
//	for {
//		c, err := mc.Execute()
//		if err != nil {
//			return err
//		}
//		if c == 0 {
//			break // for loop
//		}
//		cycles += int(c)
//	}
//
// The CPU begins with all registers cleared and with interrupts disabled,
// which is the power-on state of the real hardware.
//
// The HLT instruction behaves differently depending on whether interrupts are
// enabled. If interrupts are disabled the CPU will halt and Execute() will
// return zero indefinitely. If interrupts are enabled the CPU will wait for an
// interrupt and Execute() will return the cycle count of the HLT instruction
// while waiting.
//
// Interrupts are delivered with the Interrupt() function. The argument is an
// opcode which is executed as though it was read from the bus. It is almost
// always an RST instruction. The Reset() function is a convenient way of
// delivering an RST instruction.
//
// Undocumented opcodes are executed as the instruction they are an alias of.
// The first time each undocumented opcode is executed a log entry is made.
package cpu
