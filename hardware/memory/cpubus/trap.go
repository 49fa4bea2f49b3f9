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

package cpubus

import "github.com/jetsetilly/gopher8080/hardware/cpu/registers"

// TrapSize is the number of bytes given to the OnInstruction() function. This
// is the longest instruction plus one.
const TrapSize = 4

// Trap is an optional interface for Memory implementations. If present, the
// OnInstruction() function is called before every instruction is fetched.
//
// The state argument is a snapshot of the CPU at the start of the instruction
// and the opcode argument are the bytes at the program counter. Bytes that
// are beyond the end of an instruction are included but are not meaningful.
//
// Returning a non-empty slice will cause the CPU to execute those bytes
// instead of the bytes in memory. The program counter is not advanced past
// the replacement instruction. For example, returning a RET opcode when the
// PC is at the entry point of an operating system routine will cause the CPU
// to immediately return to the caller.
//
// Returning an empty or nil slice indicates that the instruction in memory
// should be executed as normal.
//
// A non-nil error is returned by the CPU's Execute() function without
// modification and the instruction is not executed.
type Trap interface {
	OnInstruction(state registers.State, opcode [TrapSize]uint8) ([]uint8, error)
}
