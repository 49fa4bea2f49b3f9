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
	"fmt"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8080/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher8080/logger"
)

// Sentinal error patterns returned by the CPU.
const (
	ErrResetVector     = "cpu: reset vector out of range (%d)"
	ErrInterruptCode   = "cpu: interrupt code is not a single byte instruction (%#02x)"
	ErrTrapReplacement = "cpu: replacement instruction too short (%s)"
)

// the number of cycles reported while the CPU is waiting for an interrupt.
// this is the same as the HLT instruction.
const waitingCycles = 7

// CPU implements the Intel 8080. Register logic is implemented by the types in
// the registers sub-package.
type CPU struct {
	PC     *registers.ProgramCounter
	SP     *registers.StackPointer
	A      *registers.Register
	BC     *registers.Pair
	DE     *registers.Pair
	HL     *registers.Pair
	Status registers.Status

	// Active is false once a HLT instruction has been executed with interrupts
	// disabled
	Active bool

	// InterruptsEnabled is changed by the EI and DI instructions. it is also
	// cleared when an interrupt is accepted
	InterruptsEnabled bool

	// Waiting is true once a HLT instruction has been executed with
	// interrupts enabled. cleared when an interrupt is accepted
	Waiting bool

	mem          cpubus.Memory
	trap         cpubus.Trap
	instructions []*instructions.Definition

	// the instruction stream when it doesn't come from memory. either a
	// replacement from the trap or an opcode from an interrupt
	stream    []uint8
	streamIdx int

	// undocumented opcodes that have been logged
	undocumented map[uint8]bool

	// LastResult is the result of the most recent instruction
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU will be in the power-on state.
//
// If the memory implements the cpubus.Trap interface then the trap will be
// consulted before every instruction.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		PC:           registers.NewProgramCounter(0),
		SP:           registers.NewStackPointer(0),
		A:            registers.NewRegister(0, "A"),
		BC:           registers.NewPair(0, "BC"),
		DE:           registers.NewPair(0, "DE"),
		HL:           registers.NewPair(0, "HL"),
		instructions: instructions.GetDefinitions(),
		undocumented: make(map[uint8]bool),
	}
	mc.Plumb(mem)
	mc.PowerOn()
	return mc
}

// Plumb a new memory into the CPU. A nil memory will cause Execute() to always
// return zero.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
	mc.trap = nil
	if t, ok := mem.(cpubus.Trap); ok {
		mc.trap = t
	}
}

// PowerOn reinitialises all registers to the state of the CPU when power is
// first applied. Execution begins at address zero with interrupts disabled.
func (mc *CPU) PowerOn() {
	mc.LastResult.Reset()
	mc.PC.Load(cpubus.Reset)
	mc.SP.Load(0)
	mc.A.Load(0)
	mc.BC.Load(0)
	mc.DE.Load(0)
	mc.HL.Load(0)
	mc.Status.Reset()
	mc.Active = true
	mc.InterruptsEnabled = false
	mc.Waiting = false
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.SP.Label(), mc.SP,
		mc.A, mc.BC, mc.DE, mc.HL,
		mc.Status.Label(), mc.Status)
}

// State returns a snapshot of the CPU.
func (mc *CPU) State() registers.State {
	return registers.State{
		PC:                mc.PC.Address(),
		SP:                mc.SP.Address(),
		BC:                *mc.BC,
		DE:                *mc.DE,
		HL:                *mc.HL,
		A:                 mc.A.Value(),
		Status:            mc.Status,
		Active:            mc.Active,
		InterruptsEnabled: mc.InterruptsEnabled,
		Waiting:           mc.Waiting,
	}
}

// read8Bit returns the 8bit value from the specified address.
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	return mc.mem.Read(address)
}

// write8Bit writes 8 bits to the specified address.
func (mc *CPU) write8Bit(address uint16, value uint8) error {
	return mc.mem.Write(address, value)
}

// read16Bit returns the 16bit value starting at the specified address.
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	return cpubus.ReadWord(mc.mem, address)
}

// write16Bit writes the 16bit value starting at the specified address.
func (mc *CPU) write16Bit(address uint16, value uint16) error {
	return cpubus.WriteWord(mc.mem, address, value)
}

// push a 16bit value onto the stack.
func (mc *CPU) push(value uint16) error {
	return mc.write16Bit(mc.SP.Push(), value)
}

// pop a 16bit value from the stack.
func (mc *CPU) pop() (uint16, error) {
	return mc.read16Bit(mc.SP.Pop())
}

// fetch the next byte of the instruction. if there is an instruction stream
// then the byte comes from there. otherwise the byte is read from memory at
// the PC, which is then advanced.
func (mc *CPU) fetch() (uint8, error) {
	mc.LastResult.ByteCount++

	if mc.stream != nil {
		if mc.streamIdx >= len(mc.stream) {
			return 0, curated.Errorf(ErrTrapReplacement, mc.LastResult.Defn)
		}
		v := mc.stream[mc.streamIdx]
		mc.streamIdx++
		return v, nil
	}

	v, err := mc.read8Bit(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	return v, nil
}

// get the value of an 8bit operand.
func (mc *CPU) get(o instructions.Operand) (uint8, error) {
	switch o {
	case instructions.B:
		return mc.BC.Hi(), nil
	case instructions.C:
		return mc.BC.Lo(), nil
	case instructions.D:
		return mc.DE.Hi(), nil
	case instructions.E:
		return mc.DE.Lo(), nil
	case instructions.H:
		return mc.HL.Hi(), nil
	case instructions.L:
		return mc.HL.Lo(), nil
	case instructions.M:
		return mc.read8Bit(mc.HL.Address())
	}
	return mc.A.Value(), nil
}

// set the value of an 8bit operand.
func (mc *CPU) set(o instructions.Operand, v uint8) error {
	switch o {
	case instructions.B:
		mc.BC.SetHi(v)
	case instructions.C:
		mc.BC.SetLo(v)
	case instructions.D:
		mc.DE.SetHi(v)
	case instructions.E:
		mc.DE.SetLo(v)
	case instructions.H:
		mc.HL.SetHi(v)
	case instructions.L:
		mc.HL.SetLo(v)
	case instructions.M:
		return mc.write8Bit(mc.HL.Address(), v)
	default:
		mc.A.Load(v)
	}
	return nil
}

// getPair returns the value of a 16bit operand.
func (mc *CPU) getPair(p instructions.Pair) uint16 {
	switch p {
	case instructions.BC:
		return mc.BC.Value()
	case instructions.DE:
		return mc.DE.Value()
	case instructions.HL:
		return mc.HL.Value()
	case instructions.SP:
		return mc.SP.Address()
	}
	return uint16(mc.A.Value())<<8 | uint16(mc.Status.Value())
}

// setPair sets the value of a 16bit operand.
func (mc *CPU) setPair(p instructions.Pair, v uint16) {
	switch p {
	case instructions.BC:
		mc.BC.Load(v)
	case instructions.DE:
		mc.DE.Load(v)
	case instructions.HL:
		mc.HL.Load(v)
	case instructions.SP:
		mc.SP.Load(v)
	case instructions.PSW:
		mc.A.Load(uint8(v >> 8))
		mc.Status.FromValue(uint8(v))
	}
}

// condition returns true if the condition is met by the current state of the
// status register.
func (mc *CPU) condition(c instructions.Condition) bool {
	switch c {
	case instructions.NotZero:
		return !mc.Status.Zero
	case instructions.Zero:
		return mc.Status.Zero
	case instructions.NoCarry:
		return !mc.Status.Carry
	case instructions.Carry:
		return mc.Status.Carry
	case instructions.ParityOdd:
		return !mc.Status.Parity
	case instructions.ParityEven:
		return mc.Status.Parity
	case instructions.Plus:
		return !mc.Status.Sign
	}
	return mc.Status.Sign
}

// Execute a single instruction. Returns the number of cycles taken by the
// instruction. A return value of zero means that the CPU has halted.
//
// Errors from the memory or from the trap are returned unchanged. If an error
// is returned the state of the CPU is undefined.
func (mc *CPU) Execute() (uint8, error) {
	if mc.mem == nil || !mc.Active {
		return 0, nil
	}

	if mc.Waiting {
		return waitingCycles, nil
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	if mc.trap != nil {
		var opcode [cpubus.TrapSize]uint8
		for i := range opcode {
			v, err := mc.read8Bit(mc.PC.Address() + uint16(i))
			if err != nil {
				return 0, err
			}
			opcode[i] = v
		}

		replacement, err := mc.trap.OnInstruction(mc.State(), opcode)
		if err != nil {
			return 0, err
		}

		if len(replacement) > 0 {
			mc.LastResult.Trapped = true
			return mc.executeStream(replacement)
		}
	}

	return mc.executeInstruction()
}

// executeStream executes a single instruction from the supplied bytes rather
// than from memory. the PC is not advanced.
func (mc *CPU) executeStream(stream []uint8) (uint8, error) {
	mc.stream = stream
	mc.streamIdx = 0
	defer func() {
		mc.stream = nil
	}()
	return mc.executeInstruction()
}

// executeInstruction decodes and executes the next instruction in the
// instruction stream.
func (mc *CPU) executeInstruction() (uint8, error) {
	opcode, err := mc.fetch()
	if err != nil {
		return 0, err
	}

	defn := mc.instructions[opcode]
	mc.LastResult.Defn = defn

	if defn.Undocumented && !mc.undocumented[opcode] {
		mc.undocumented[opcode] = true
		logger.Logf(logger.Allow, "cpu", "undocumented opcode %#02x at %#04x executed as %s", opcode, mc.LastResult.Address, defn.Mnemonic())
	}

	// operand
	switch defn.Bytes {
	case 2:
		v, err := mc.fetch()
		if err != nil {
			return 0, err
		}
		mc.LastResult.InstructionData = uint16(v)
	case 3:
		lo, err := mc.fetch()
		if err != nil {
			return 0, err
		}
		hi, err := mc.fetch()
		if err != nil {
			return 0, err
		}
		mc.LastResult.InstructionData = uint16(hi)<<8 | uint16(lo)
	}

	cycles, err := mc.dispatch(defn, mc.LastResult.InstructionData)
	if err != nil {
		return 0, err
	}

	mc.LastResult.Cycles = cycles
	mc.LastResult.Final = true

	return uint8(cycles), nil
}
