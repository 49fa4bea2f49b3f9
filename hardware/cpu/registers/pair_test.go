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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8080/test"
)

func TestPairAliasing(t *testing.T) {
	bc := registers.NewPair(0, "BC")

	bc.SetHi(0x12)
	bc.SetLo(0x34)
	test.ExpectEquality(t, bc.Value(), 0x1234)

	bc.Load(0xabcd)
	test.ExpectEquality(t, bc.Hi(), 0xab)
	test.ExpectEquality(t, bc.Lo(), 0xcd)

	bc.SetLo(0xff)
	test.ExpectEquality(t, bc.Value(), 0xabff)
	test.ExpectEquality(t, bc.String(), "BC=0xabff")
}

func TestPairArithmetic(t *testing.T) {
	hl := registers.NewPair(0xffff, "HL")

	carry := hl.Add(0x0002)
	test.ExpectSuccess(t, carry)
	test.ExpectEquality(t, hl.Value(), 0x0001)

	carry = hl.Add(0x1000)
	test.ExpectFailure(t, carry)
	test.ExpectEquality(t, hl.Value(), 0x1001)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0xfffe)
	pc.Add(3)
	test.ExpectEquality(t, pc.Address(), 0x0001)
	pc.Load(0x0100)
	test.ExpectEquality(t, pc.String(), "0x0100")
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0x0000)
	test.ExpectEquality(t, sp.Push(), 0xfffe)
	test.ExpectEquality(t, sp.Address(), 0xfffe)
	test.ExpectEquality(t, sp.Pop(), 0xfffe)
	test.ExpectEquality(t, sp.Address(), 0x0000)
}
