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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/test"
)

func TestTable(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.DemandEquality(t, len(defs), 256)

	undocumented := 0
	for i, defn := range defs {
		test.ExpectEquality(t, defn.OpCode, uint8(i))
		test.ExpectSuccess(t, defn.Bytes >= 1 && defn.Bytes <= 3, defn)
		test.ExpectSuccess(t, defn.Cycles >= 4 && defn.Cycles <= 18, defn)
		if defn.Undocumented {
			undocumented++
		}
	}
	test.ExpectEquality(t, undocumented, 12)
}

func TestDecoding(t *testing.T) {
	defs := instructions.GetDefinitions()

	test.ExpectEquality(t, defs[0x00].String(), "NOP")
	test.ExpectEquality(t, defs[0x08].String(), "NOP (undocumented)")
	test.ExpectEquality(t, defs[0x01].String(), "LXI B")
	test.ExpectEquality(t, defs[0x31].String(), "LXI SP")
	test.ExpectEquality(t, defs[0x3e].String(), "MVI A")
	test.ExpectEquality(t, defs[0x41].String(), "MOV B,C")
	test.ExpectEquality(t, defs[0x77].String(), "MOV M,A")
	test.ExpectEquality(t, defs[0x76].String(), "HLT")
	test.ExpectEquality(t, defs[0x86].String(), "ADD M")
	test.ExpectEquality(t, defs[0xbf].String(), "CMP A")
	test.ExpectEquality(t, defs[0xc2].String(), "JNZ")
	test.ExpectEquality(t, defs[0xcb].String(), "JMP (undocumented)")
	test.ExpectEquality(t, defs[0xd9].String(), "RET (undocumented)")
	test.ExpectEquality(t, defs[0xdd].String(), "CALL (undocumented)")
	test.ExpectEquality(t, defs[0xf5].String(), "PUSH PSW")
	test.ExpectEquality(t, defs[0xf8].String(), "RM")
	test.ExpectEquality(t, defs[0xff].String(), "RST 7")
	test.ExpectEquality(t, defs[0xeb].String(), "XCHG")
	test.ExpectEquality(t, defs[0xfe].String(), "CPI")
}

func TestCycles(t *testing.T) {
	defs := instructions.GetDefinitions()

	// register and memory variants
	test.ExpectEquality(t, defs[0x41].Cycles, 5)
	test.ExpectEquality(t, defs[0x46].Cycles, 7)
	test.ExpectEquality(t, defs[0x70].Cycles, 7)
	test.ExpectEquality(t, defs[0x06].Cycles, 7)
	test.ExpectEquality(t, defs[0x36].Cycles, 10)
	test.ExpectEquality(t, defs[0x34].Cycles, 10)
	test.ExpectEquality(t, defs[0x80].Cycles, 4)
	test.ExpectEquality(t, defs[0x86].Cycles, 7)

	// conditional instructions
	test.ExpectEquality(t, defs[0xc4].Cycles, 17)
	test.ExpectEquality(t, defs[0xc4].CyclesSkipped, 11)
	test.ExpectEquality(t, defs[0xc0].Cycles, 11)
	test.ExpectEquality(t, defs[0xc0].CyclesSkipped, 5)
	test.ExpectEquality(t, defs[0xc2].Cycles, 10)
	test.ExpectEquality(t, defs[0xc2].CyclesSkipped, 10)
	test.ExpectSuccess(t, defs[0xc2].IsConditional())
	test.ExpectFailure(t, defs[0xc3].IsConditional())

	// others
	test.ExpectEquality(t, defs[0xe3].Cycles, 18)
	test.ExpectEquality(t, defs[0x2a].Cycles, 16)
	test.ExpectEquality(t, defs[0x3a].Cycles, 13)
	test.ExpectEquality(t, defs[0xc7].Cycles, 11)
	test.ExpectEquality(t, defs[0xcd].Cycles, 17)
	test.ExpectEquality(t, defs[0xc9].Cycles, 10)
	test.ExpectEquality(t, defs[0x76].Cycles, 7)
}

func TestCategories(t *testing.T) {
	defs := instructions.GetDefinitions()

	test.ExpectEquality(t, defs[0x41].Category, instructions.DataTransfer)
	test.ExpectEquality(t, defs[0xeb].Category, instructions.DataTransfer)
	test.ExpectEquality(t, defs[0x80].Category, instructions.Arithmetic)
	test.ExpectEquality(t, defs[0x27].Category, instructions.Arithmetic)
	test.ExpectEquality(t, defs[0xa0].Category, instructions.Logical)
	test.ExpectEquality(t, defs[0x07].Category, instructions.Logical)
	test.ExpectEquality(t, defs[0xc3].Category, instructions.Branch)
	test.ExpectEquality(t, defs[0xc5].Category, instructions.Stack)
	test.ExpectEquality(t, defs[0xdb].Category, instructions.IO)
	test.ExpectEquality(t, defs[0x76].Category, instructions.Control)
	test.ExpectEquality(t, defs[0xfb].Category, instructions.Control)
}
