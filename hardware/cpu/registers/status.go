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
	"math/bits"
	"strings"
)

// Status is the special purpose register that stores the flags of the CPU.
type Status struct {
	Sign     bool
	Zero     bool
	AuxCarry bool
	Parity   bool
	Carry    bool
}

// Label returns the canonical name for the status register.
func (sr Status) Label() string {
	return "F"
}

// String returns the flags in the order they appear in the PSW byte. Set flags
// are upper case, cleared flags lower case. Bits that have a fixed value are
// shown as a dash.
func (sr Status) String() string {
	s := strings.Builder{}

	if sr.Sign {
		s.WriteRune('S')
	} else {
		s.WriteRune('s')
	}
	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}

	s.WriteRune('-')

	if sr.AuxCarry {
		s.WriteRune('A')
	} else {
		s.WriteRune('a')
	}

	s.WriteRune('-')

	if sr.Parity {
		s.WriteRune('P')
	} else {
		s.WriteRune('p')
	}

	s.WriteRune('-')

	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset status flags to initial state.
func (sr *Status) Reset() {
	*sr = Status{}
}

// SetZSP sets the zero, sign and parity flags according to the value.
func (sr *Status) SetZSP(v uint8) {
	sr.Zero = v == 0
	sr.Sign = v&0x80 == 0x80
	sr.Parity = bits.OnesCount8(v)&0x01 == 0
}

// Value converts the Status into the flags byte of the PSW, suitable for
// pushing onto the stack.
func (sr Status) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= 0x80
	}
	if sr.Zero {
		v |= 0x40
	}
	if sr.AuxCarry {
		v |= 0x10
	}
	if sr.Parity {
		v |= 0x04
	}
	if sr.Carry {
		v |= 0x01
	}

	// bit 1 is always set. bits 3 and 5 are always clear
	v |= 0x02

	return v
}

// FromValue converts the flags byte of the PSW (taken from the stack, for
// example) into the Status receiver.
func (sr *Status) FromValue(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Zero = v&0x40 == 0x40
	sr.AuxCarry = v&0x10 == 0x10
	sr.Parity = v&0x04 == 0x04
	sr.Carry = v&0x01 == 0x01
}
