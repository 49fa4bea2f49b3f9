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

// Pair is a 16bit register made up of two 8bit halves. Both halves share the
// same storage so that a write to the high byte is seen by a read of the
// 16bit value and vice versa.
type Pair struct {
	value uint16
	label string
}

// NewPair is the preferred method of initialisation for Pair.
func NewPair(val uint16, label string) *Pair {
	return &Pair{
		value: val,
		label: label,
	}
}

func (p Pair) String() string {
	return fmt.Sprintf("%s=%#04x", p.label, p.value)
}

// Label returns the canonical name for the register pair.
func (p Pair) Label() string {
	return p.label
}

// Value returns the 16bit value of the pair.
func (p Pair) Value() uint16 {
	return p.value
}

// Address is a synonym for Value() and is used when the pair is being used as
// a memory pointer.
func (p Pair) Address() uint16 {
	return p.value
}

// Hi returns the high byte of the pair (B, D or H).
func (p Pair) Hi() uint8 {
	return uint8(p.value >> 8)
}

// Lo returns the low byte of the pair (C, E or L).
func (p Pair) Lo() uint8 {
	return uint8(p.value)
}

// Load 16bit value into the pair.
func (p *Pair) Load(val uint16) {
	p.value = val
}

// SetHi sets the high byte of the pair, leaving the low byte unchanged.
func (p *Pair) SetHi(val uint8) {
	p.value = p.value&0x00ff | uint16(val)<<8
}

// SetLo sets the low byte of the pair, leaving the high byte unchanged.
func (p *Pair) SetLo(val uint8) {
	p.value = p.value&0xff00 | uint16(val)
}

// Add value to the pair, returning the carry out of bit 15.
func (p *Pair) Add(val uint16) bool {
	v := uint32(p.value) + uint32(val)
	p.value = uint16(v)
	return v > 0xffff
}
