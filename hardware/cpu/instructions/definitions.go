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

package instructions

import (
	"fmt"
	"strings"
)

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode   uint8
	Operator Operator
	Category Category

	// number of bytes including the opcode
	Bytes int

	// number of cycles taken by the instruction. for conditional CALL and RET
	// instructions this is the number of cycles when the condition is met.
	// CyclesSkipped is the number of cycles when the condition is not met
	Cycles        int
	CyclesSkipped int

	// operands decoded from the opcode. which of these fields are meaningful
	// depends on the Operator
	Dst       Operand
	Src       Operand
	Pair      Pair
	Condition Condition
	Vector    uint8

	// opcode is not assigned by the documentation and is an alias of another
	// instruction
	Undocumented bool
}

// Mnemonic returns the assembly mnemonic of the instruction, without any
// immediate operands.
func (defn Definition) Mnemonic() string {
	switch defn.Operator {
	case Jcc, Ccc, Rcc:
		return fmt.Sprintf("%s%s", defn.Operator, defn.Condition.Suffix())
	}
	return defn.Operator.String()
}

func (defn Definition) String() string {
	s := strings.Builder{}
	s.WriteString(defn.Mnemonic())

	switch defn.Operator {
	case Mov:
		s.WriteString(fmt.Sprintf(" %s,%s", defn.Dst, defn.Src))
	case Mvi, Inr, Dcr:
		s.WriteString(fmt.Sprintf(" %s", defn.Dst))
	case Add, Adc, Sub, Sbb, Ana, Xra, Ora, Cmp:
		s.WriteString(fmt.Sprintf(" %s", defn.Src))
	case Lxi, Inx, Dcx, Dad, Push, Pop, Ldax, Stax:
		s.WriteString(fmt.Sprintf(" %s", defn.Pair))
	case Rst:
		s.WriteString(fmt.Sprintf(" %d", defn.Vector))
	}

	if defn.Undocumented {
		s.WriteString(" (undocumented)")
	}

	return s.String()
}

// IsConditional returns true if the instruction only takes effect when a
// condition is met.
func (defn Definition) IsConditional() bool {
	return defn.Operator == Jcc || defn.Operator == Ccc || defn.Operator == Rcc
}

// the pair operands for instructions that use the register pair encoding.
var rp = [4]Pair{BC, DE, HL, SP}

// the pair operands for PUSH and POP.
var rp2 = [4]Pair{BC, DE, HL, PSW}

var aluRegister = [8]Operator{Add, Adc, Sub, Sbb, Ana, Xra, Ora, Cmp}
var aluImmediate = [8]Operator{Adi, Aci, Sui, Sbi, Ani, Xri, Ori, Cpi}
var accumulator = [8]Operator{Rlc, Rrc, Ral, Rar, Daa, Cma, Stc, Cmc}

func categorise(o Operator) Category {
	switch {
	case o >= Mov && o <= Xchg:
		return DataTransfer
	case o >= Add && o <= Daa:
		return Arithmetic
	case o >= Ana && o <= Stc:
		return Logical
	case o >= Jmp && o <= Pchl:
		return Branch
	case o >= Push && o <= Sphl:
		return Stack
	case o == In || o == Out:
		return IO
	}
	return Control
}

// memCycles returns the memory variant of the cycle count if either operand
// is the M pseudo-register.
func memCycles(reg int, mem int, operands ...Operand) int {
	for _, o := range operands {
		if o == M {
			return mem
		}
	}
	return reg
}

// decode the opcode into a Definition. the opcode is split into the fields
// xx yyy zzz, with yyy further split into pp q.
func decode(opcode uint8) *Definition {
	x := opcode >> 6
	y := (opcode >> 3) & 0x07
	z := opcode & 0x07
	p := y >> 1
	q := y & 0x01

	defn := &Definition{
		OpCode: opcode,
		Bytes:  1,
		Cycles: 4,
	}

	switch x {
	case 0:
		switch z {
		case 0:
			defn.Operator = Nop
			defn.Undocumented = y != 0
		case 1:
			defn.Pair = rp[p]
			defn.Cycles = 10
			if q == 0 {
				defn.Operator = Lxi
				defn.Bytes = 3
			} else {
				defn.Operator = Dad
			}
		case 2:
			switch p {
			case 0, 1:
				defn.Pair = rp[p]
				defn.Cycles = 7
				if q == 0 {
					defn.Operator = Stax
				} else {
					defn.Operator = Ldax
				}
			case 2:
				defn.Bytes = 3
				defn.Cycles = 16
				if q == 0 {
					defn.Operator = Shld
				} else {
					defn.Operator = Lhld
				}
			case 3:
				defn.Bytes = 3
				defn.Cycles = 13
				if q == 0 {
					defn.Operator = Sta
				} else {
					defn.Operator = Lda
				}
			}
		case 3:
			defn.Pair = rp[p]
			defn.Cycles = 5
			if q == 0 {
				defn.Operator = Inx
			} else {
				defn.Operator = Dcx
			}
		case 4:
			defn.Operator = Inr
			defn.Dst = Operand(y)
			defn.Cycles = memCycles(5, 10, defn.Dst)
		case 5:
			defn.Operator = Dcr
			defn.Dst = Operand(y)
			defn.Cycles = memCycles(5, 10, defn.Dst)
		case 6:
			defn.Operator = Mvi
			defn.Dst = Operand(y)
			defn.Bytes = 2
			defn.Cycles = memCycles(7, 10, defn.Dst)
		case 7:
			defn.Operator = accumulator[y]
		}

	case 1:
		if opcode == 0x76 {
			defn.Operator = Hlt
			defn.Cycles = 7
			break // switch x
		}
		defn.Operator = Mov
		defn.Dst = Operand(y)
		defn.Src = Operand(z)
		defn.Cycles = memCycles(5, 7, defn.Dst, defn.Src)

	case 2:
		defn.Operator = aluRegister[y]
		defn.Src = Operand(z)
		defn.Cycles = memCycles(4, 7, defn.Src)

	case 3:
		switch z {
		case 0:
			defn.Operator = Rcc
			defn.Condition = Condition(y)
			defn.Cycles = 11
			defn.CyclesSkipped = 5
		case 1:
			if q == 0 {
				defn.Operator = Pop
				defn.Pair = rp2[p]
				defn.Cycles = 10
				break // switch z
			}
			switch p {
			case 0, 1:
				defn.Operator = Ret
				defn.Cycles = 10
				defn.Undocumented = p == 1
			case 2:
				defn.Operator = Pchl
				defn.Cycles = 5
			case 3:
				defn.Operator = Sphl
				defn.Cycles = 5
			}
		case 2:
			defn.Operator = Jcc
			defn.Condition = Condition(y)
			defn.Bytes = 3
			defn.Cycles = 10
			defn.CyclesSkipped = 10
		case 3:
			switch y {
			case 0, 1:
				defn.Operator = Jmp
				defn.Bytes = 3
				defn.Cycles = 10
				defn.Undocumented = y == 1
			case 2:
				defn.Operator = Out
				defn.Bytes = 2
				defn.Cycles = 10
			case 3:
				defn.Operator = In
				defn.Bytes = 2
				defn.Cycles = 10
			case 4:
				defn.Operator = Xthl
				defn.Cycles = 18
			case 5:
				defn.Operator = Xchg
			case 6:
				defn.Operator = Di
			case 7:
				defn.Operator = Ei
			}
		case 4:
			defn.Operator = Ccc
			defn.Condition = Condition(y)
			defn.Bytes = 3
			defn.Cycles = 17
			defn.CyclesSkipped = 11
		case 5:
			if q == 0 {
				defn.Operator = Push
				defn.Pair = rp2[p]
				defn.Cycles = 11
				break // switch z
			}
			defn.Operator = Call
			defn.Bytes = 3
			defn.Cycles = 17
			defn.Undocumented = p != 0
		case 6:
			defn.Operator = aluImmediate[y]
			defn.Bytes = 2
			defn.Cycles = 7
		case 7:
			defn.Operator = Rst
			defn.Vector = y
			defn.Cycles = 11
		}
	}

	defn.Category = categorise(defn.Operator)

	return defn
}

// GetDefinitions returns the table of instruction definitions for the 8080.
// The opcode of the instruction is the index into the table.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, 256)
	for i := range defs {
		defs[i] = decode(uint8(i))
	}
	return defs
}
