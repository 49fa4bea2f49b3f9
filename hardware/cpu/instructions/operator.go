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

// Operator identifies the operation performed by an instruction. Conditional
// instructions share a single Operator for all conditions. The condition
// itself is in the Condition field of the Definition.
type Operator int

// List of valid Operator values.
const (
	Nop Operator = iota

	// data transfer
	Mov
	Mvi
	Lxi
	Lda
	Sta
	Lhld
	Shld
	Ldax
	Stax
	Xchg

	// arithmetic
	Add
	Adc
	Sub
	Sbb
	Adi
	Aci
	Sui
	Sbi
	Inr
	Dcr
	Inx
	Dcx
	Dad
	Daa

	// logical
	Ana
	Xra
	Ora
	Cmp
	Ani
	Xri
	Ori
	Cpi
	Rlc
	Rrc
	Ral
	Rar
	Cma
	Cmc
	Stc

	// branch
	Jmp
	Jcc
	Call
	Ccc
	Ret
	Rcc
	Rst
	Pchl

	// stack
	Push
	Pop
	Xthl
	Sphl

	// io
	In
	Out

	// control
	Ei
	Di
	Hlt
)

var operatorNames = [...]string{
	"NOP",
	"MOV", "MVI", "LXI", "LDA", "STA", "LHLD", "SHLD", "LDAX", "STAX", "XCHG",
	"ADD", "ADC", "SUB", "SBB", "ADI", "ACI", "SUI", "SBI", "INR", "DCR", "INX", "DCX", "DAD", "DAA",
	"ANA", "XRA", "ORA", "CMP", "ANI", "XRI", "ORI", "CPI", "RLC", "RRC", "RAL", "RAR", "CMA", "CMC", "STC",
	"JMP", "J", "CALL", "C", "RET", "R", "RST", "PCHL",
	"PUSH", "POP", "XTHL", "SPHL",
	"IN", "OUT",
	"EI", "DI", "HLT",
}

func (o Operator) String() string {
	if o < 0 || int(o) >= len(operatorNames) {
		return "???"
	}
	return operatorNames[o]
}
