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

// Package instructions defines the instruction set of the 8080 CPU. The
// GetDefinitions() function returns a table of 256 entries, one for every
// opcode, with the opcode as the index.
//
// The fields of the opcode that select registers, register pairs, conditions
// and RST vectors are decoded in advance and stored in the Definition so that
// the CPU does not need to do it on every instruction.
//
// Twelve opcodes are not assigned by the 8080 documentation. On real hardware
// they behave as aliases of other instructions (NOP, JMP, RET and CALL). They
// are included in the table with the Undocumented field set.
package instructions
