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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
)

// Result records the state/result of the most recent instruction executed by
// the CPU.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the operand of the instruction, if any. one byte instructions have no
	// operand and two byte instructions only use the lower byte
	InstructionData uint16

	// the number of bytes consumed from the instruction stream
	ByteCount int

	// the number of cycles taken by the instruction
	Cycles int

	// whether the instruction was supplied by a trap rather than read from
	// memory
	Trapped bool

	// whether the instruction was supplied by an interrupt
	FromInterrupt bool

	// whether the condition of a conditional instruction was met
	ConditionMet bool

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return "no instruction"
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%#04x %s", r.Address, r.Defn.String()))

	switch r.Defn.Bytes {
	case 2:
		s.WriteString(fmt.Sprintf(" #%#02x", r.InstructionData))
	case 3:
		s.WriteString(fmt.Sprintf(" %#04x", r.InstructionData))
	}

	s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))

	if r.Trapped {
		s.WriteString(" (trapped)")
	}
	if r.FromInterrupt {
		s.WriteString(" (interrupt)")
	}

	return s.String()
}
