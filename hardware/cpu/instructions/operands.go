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

// Operand is an 8bit register operand, in the order used by the encoding of
// the instruction.
type Operand int

// List of valid Operand values. M is not a register but the memory location
// pointed to by the HL register pair.
const (
	B Operand = iota
	C
	D
	E
	H
	L
	M
	A
)

func (o Operand) String() string {
	return [...]string{"B", "C", "D", "E", "H", "L", "M", "A"}[o&0x07]
}

// Pair is a 16bit register pair operand.
type Pair int

// List of valid Pair values. The SP and PSW pairs share an encoding and which
// one is meant depends on the instruction.
const (
	BC Pair = iota
	DE
	HL
	SP
	PSW
)

func (p Pair) String() string {
	switch p {
	case BC:
		return "B"
	case DE:
		return "D"
	case HL:
		return "H"
	case SP:
		return "SP"
	case PSW:
		return "PSW"
	}
	return "?"
}

// Condition for conditional JMP, CALL and RET instructions.
type Condition int

// List of valid Condition values, in the order used by the encoding of the
// instruction.
const (
	NotZero Condition = iota
	Zero
	NoCarry
	Carry
	ParityOdd
	ParityEven
	Plus
	Minus
)

// Suffix returns the condition as it appears in the mnemonic of an
// instruction. For example, "NZ" for NotZero in the mnemonic JNZ.
func (c Condition) Suffix() string {
	return [...]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}[c&0x07]
}

func (c Condition) String() string {
	return [...]string{"not zero", "zero", "no carry", "carry", "parity odd", "parity even", "plus", "minus"}[c&0x07]
}
