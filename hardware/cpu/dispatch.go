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
	"github.com/jetsetilly/gopher8080/hardware/memory/cpubus"
)

// dispatch performs the operation of the instruction. returns the number of
// cycles taken.
func (mc *CPU) dispatch(defn *instructions.Definition, data uint16) (int, error) {
	var err error

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	// data transfer
	case instructions.Mov:
		var v uint8
		v, err = mc.get(defn.Src)
		if err == nil {
			err = mc.set(defn.Dst, v)
		}

	case instructions.Mvi:
		err = mc.set(defn.Dst, uint8(data))

	case instructions.Lxi:
		mc.setPair(defn.Pair, data)

	case instructions.Lda:
		var v uint8
		v, err = mc.read8Bit(data)
		mc.A.Load(v)

	case instructions.Sta:
		err = mc.write8Bit(data, mc.A.Value())

	case instructions.Lhld:
		var v uint16
		v, err = mc.read16Bit(data)
		mc.HL.Load(v)

	case instructions.Shld:
		err = mc.write16Bit(data, mc.HL.Value())

	case instructions.Ldax:
		var v uint8
		v, err = mc.read8Bit(mc.getPair(defn.Pair))
		mc.A.Load(v)

	case instructions.Stax:
		err = mc.write8Bit(mc.getPair(defn.Pair), mc.A.Value())

	case instructions.Xchg:
		de := mc.DE.Value()
		mc.DE.Load(mc.HL.Value())
		mc.HL.Load(de)

	// arithmetic
	case instructions.Add, instructions.Adc, instructions.Sub, instructions.Sbb:
		var v uint8
		v, err = mc.get(defn.Src)
		if err == nil {
			mc.arithmetic(defn.Operator, v)
		}

	case instructions.Adi, instructions.Aci, instructions.Sui, instructions.Sbi:
		mc.arithmetic(defn.Operator, uint8(data))

	case instructions.Inr:
		var v uint8
		v, err = mc.get(defn.Dst)
		if err == nil {
			err = mc.set(defn.Dst, mc.increment(v))
		}

	case instructions.Dcr:
		var v uint8
		v, err = mc.get(defn.Dst)
		if err == nil {
			err = mc.set(defn.Dst, mc.decrement(v))
		}

	case instructions.Inx:
		mc.setPair(defn.Pair, mc.getPair(defn.Pair)+1)

	case instructions.Dcx:
		mc.setPair(defn.Pair, mc.getPair(defn.Pair)-1)

	case instructions.Dad:
		mc.Status.Carry = mc.HL.Add(mc.getPair(defn.Pair))

	case instructions.Daa:
		mc.decimalAdjust()

	// logical
	case instructions.Ana, instructions.Xra, instructions.Ora, instructions.Cmp:
		var v uint8
		v, err = mc.get(defn.Src)
		if err == nil {
			mc.logical(defn.Operator, v)
		}

	case instructions.Ani, instructions.Xri, instructions.Ori, instructions.Cpi:
		mc.logical(defn.Operator, uint8(data))

	case instructions.Rlc:
		mc.Status.Carry = mc.A.RLC()

	case instructions.Rrc:
		mc.Status.Carry = mc.A.RRC()

	case instructions.Ral:
		mc.Status.Carry = mc.A.RAL(mc.Status.Carry)

	case instructions.Rar:
		mc.Status.Carry = mc.A.RAR(mc.Status.Carry)

	case instructions.Cma:
		mc.A.Complement()

	case instructions.Cmc:
		mc.Status.Carry = !mc.Status.Carry

	case instructions.Stc:
		mc.Status.Carry = true

	// branch
	case instructions.Jmp:
		mc.PC.Load(data)

	case instructions.Jcc:
		mc.LastResult.ConditionMet = mc.condition(defn.Condition)
		if mc.LastResult.ConditionMet {
			mc.PC.Load(data)
		}

	case instructions.Call:
		err = mc.call(data)

	case instructions.Ccc:
		mc.LastResult.ConditionMet = mc.condition(defn.Condition)
		if !mc.LastResult.ConditionMet {
			return defn.CyclesSkipped, nil
		}
		err = mc.call(data)

	case instructions.Ret:
		err = mc.ret()

	case instructions.Rcc:
		mc.LastResult.ConditionMet = mc.condition(defn.Condition)
		if !mc.LastResult.ConditionMet {
			return defn.CyclesSkipped, nil
		}
		err = mc.ret()

	case instructions.Rst:
		err = mc.call(cpubus.Vector(defn.Vector))

	case instructions.Pchl:
		mc.PC.Load(mc.HL.Value())

	// stack
	case instructions.Push:
		err = mc.push(mc.getPair(defn.Pair))

	case instructions.Pop:
		var v uint16
		v, err = mc.pop()
		if err == nil {
			mc.setPair(defn.Pair, v)
		}

	case instructions.Xthl:
		var v uint16
		v, err = mc.read16Bit(mc.SP.Address())
		if err == nil {
			err = mc.write16Bit(mc.SP.Address(), mc.HL.Value())
			mc.HL.Load(v)
		}

	case instructions.Sphl:
		mc.SP.Load(mc.HL.Value())

	// io
	case instructions.In:
		var v uint8
		v, err = mc.mem.Input(uint8(data))
		mc.A.Load(v)

	case instructions.Out:
		err = mc.mem.Output(uint8(data), mc.A.Value())

	// control
	case instructions.Ei:
		mc.InterruptsEnabled = true

	case instructions.Di:
		mc.InterruptsEnabled = false

	case instructions.Hlt:
		if mc.InterruptsEnabled {
			mc.Waiting = true
		} else {
			mc.Active = false
		}
	}

	if err != nil {
		return 0, err
	}

	return defn.Cycles, nil
}

// call pushes the PC onto the stack and jumps to the address.
func (mc *CPU) call(address uint16) error {
	err := mc.push(mc.PC.Address())
	if err != nil {
		return err
	}
	mc.PC.Load(address)
	return nil
}

// ret pops the PC from the stack.
func (mc *CPU) ret() error {
	v, err := mc.pop()
	if err != nil {
		return err
	}
	mc.PC.Load(v)
	return nil
}
