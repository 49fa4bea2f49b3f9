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
	"strings"
)

// State is a snapshot of the CPU. It is given to a bus trap before every
// instruction and can be requested from the CPU at any time.
type State struct {
	PC uint16
	SP uint16
	BC Pair
	DE Pair
	HL Pair
	A  uint8

	Status Status

	// Active is false when the CPU has halted with interrupts disabled
	Active bool

	InterruptsEnabled bool

	// Waiting is true when the CPU has halted with interrupts enabled. The CPU
	// will not fetch another instruction until an interrupt is received
	Waiting bool
}

// PSW returns the processor status word. The accumulator in the high byte and
// the flags in the low byte.
func (s State) PSW() uint16 {
	return uint16(s.A)<<8 | uint16(s.Status.Value())
}

func (s State) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("PC=%#04x SP=%#04x A=%#02x ", s.PC, s.SP, s.A))
	b.WriteString(fmt.Sprintf("BC=%#04x DE=%#04x HL=%#04x ", s.BC.Value(), s.DE.Value(), s.HL.Value()))
	b.WriteString(s.Status.String())
	switch {
	case !s.Active:
		b.WriteString(" halted")
	case s.Waiting:
		b.WriteString(" waiting")
	}
	if s.InterruptsEnabled {
		b.WriteString(" EI")
	} else {
		b.WriteString(" DI")
	}
	return b.String()
}
