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

package registers

import (
	"fmt"
)

// Register is an 8bit register.
type Register struct {
	value uint8
	label string
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) *Register {
	return &Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the canonical name for the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// IsZero checks if register is all zero bits.
func (r Register) IsZero() bool {
	return r.value == 0
}

// IsNegative checks the sign bit of the register.
func (r Register) IsNegative() bool {
	return r.value&0x80 == 0x80
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register, with an additional one if carry is true. Returns the
// carry out of bit 7 and the carry out of bit 3.
func (r *Register) Add(val uint8, carry bool) (rcarry bool, aux bool) {
	var c uint16
	if carry {
		c = 1
	}

	v := uint16(r.value) + uint16(val) + c
	aux = (uint16(r.value&0x0f) + uint16(val&0x0f) + c) > 0x0f
	r.value = uint8(v)

	return v > 0xff, aux
}

// Subtract value from register, with an additional one if borrow is true.
// Returns whether a borrow was required and the carry out of bit 3.
//
// Subtraction is performed as an addition of the complement so the auxiliary
// carry is that of the addition.
func (r *Register) Subtract(val uint8, borrow bool) (rborrow bool, aux bool) {
	carry, aux := r.Add(^val, !borrow)
	return !carry, aux
}

// AND value with register. Returns the auxiliary carry, which for the AND
// operation is bit 3 of the logical OR of the two operands.
func (r *Register) AND(val uint8) (aux bool) {
	aux = (r.value|val)&0x08 == 0x08
	r.value &= val
	return aux
}

// XOR value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}

// OR value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// Complement the bits of the register.
func (r *Register) Complement() {
	r.value = ^r.value
}

// RLC rotates the register left. Bit 7 moves to bit 0 and is returned as the
// new carry.
func (r *Register) RLC() bool {
	carry := r.value&0x80 == 0x80
	r.value = r.value<<1 | r.value>>7
	return carry
}

// RRC rotates the register right. Bit 0 moves to bit 7 and is returned as the
// new carry.
func (r *Register) RRC() bool {
	carry := r.value&0x01 == 0x01
	r.value = r.value>>1 | r.value<<7
	return carry
}

// RAL rotates the register left through the carry.
func (r *Register) RAL(carry bool) bool {
	rcarry := r.value&0x80 == 0x80
	r.value <<= 1
	if carry {
		r.value |= 0x01
	}
	return rcarry
}

// RAR rotates the register right through the carry.
func (r *Register) RAR(carry bool) bool {
	rcarry := r.value&0x01 == 0x01
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return rcarry
}
