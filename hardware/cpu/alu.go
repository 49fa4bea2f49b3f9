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
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
)

// arithmetic performs the ADD, ADC, SUB and SBB instructions and their
// immediate equivalents. all flags are affected.
func (mc *CPU) arithmetic(op instructions.Operator, v uint8) {
	var carry, aux bool

	switch op {
	case instructions.Add, instructions.Adi:
		carry, aux = mc.A.Add(v, false)
	case instructions.Adc, instructions.Aci:
		carry, aux = mc.A.Add(v, mc.Status.Carry)
	case instructions.Sub, instructions.Sui:
		carry, aux = mc.A.Subtract(v, false)
	case instructions.Sbb, instructions.Sbi:
		carry, aux = mc.A.Subtract(v, mc.Status.Carry)
	}

	mc.Status.Carry = carry
	mc.Status.AuxCarry = aux
	mc.Status.SetZSP(mc.A.Value())
}

// logical performs the ANA, XRA, ORA and CMP instructions and their immediate
// equivalents. all flags are affected.
func (mc *CPU) logical(op instructions.Operator, v uint8) {
	switch op {
	case instructions.Ana, instructions.Ani:
		mc.Status.AuxCarry = mc.A.AND(v)
		mc.Status.Carry = false
	case instructions.Xra, instructions.Xri:
		mc.A.XOR(v)
		mc.Status.AuxCarry = false
		mc.Status.Carry = false
	case instructions.Ora, instructions.Ori:
		mc.A.OR(v)
		mc.Status.AuxCarry = false
		mc.Status.Carry = false
	case instructions.Cmp, instructions.Cpi:
		// comparison is a subtraction that discards the result
		cmp := *mc.A
		mc.Status.Carry, mc.Status.AuxCarry = cmp.Subtract(v, false)
		mc.Status.SetZSP(cmp.Value())
		return
	}

	mc.Status.SetZSP(mc.A.Value())
}

// increment returns v+1 and sets the flags for the INR instruction. the carry
// flag is not affected.
func (mc *CPU) increment(v uint8) uint8 {
	v++
	mc.Status.AuxCarry = v&0x0f == 0x00
	mc.Status.SetZSP(v)
	return v
}

// decrement returns v-1 and sets the flags for the DCR instruction. the carry
// flag is not affected.
func (mc *CPU) decrement(v uint8) uint8 {
	v--
	mc.Status.AuxCarry = v&0x0f != 0x0f
	mc.Status.SetZSP(v)
	return v
}

// decimalAdjust performs the DAA instruction.
func (mc *CPU) decimalAdjust() {
	lsb := mc.A.Value() & 0x0f
	msb := mc.A.Value() >> 4

	var correction uint8
	carry := mc.Status.Carry

	if mc.Status.AuxCarry || lsb > 9 {
		correction |= 0x06
	}
	if mc.Status.Carry || msb > 9 || (msb >= 9 && lsb > 9) {
		correction |= 0x60
		carry = true
	}

	_, aux := mc.A.Add(correction, false)
	mc.Status.AuxCarry = aux
	mc.Status.Carry = carry
	mc.Status.SetZSP(mc.A.Value())
}
