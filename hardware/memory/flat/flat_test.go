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

package flat_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher8080/hardware/memory/flat"
	"github.com/jetsetilly/gopher8080/test"
)

func TestReadWrite(t *testing.T) {
	brd := flat.NewBoard()

	for a := 0; a < flat.MemorySize; a++ {
		err := brd.Write(uint16(a), uint8(a^(a>>8)))
		test.DemandSuccess(t, err)
	}

	for a := 0; a < flat.MemorySize; a++ {
		v, err := brd.Read(uint16(a))
		test.DemandSuccess(t, err)
		test.DemandEquality(t, v, uint8(a^(a>>8)))
		test.DemandEquality(t, brd.Peek(uint16(a)), v)
	}
}

func TestWords(t *testing.T) {
	brd := flat.NewBoard()
	_ = test.DemandImplements[cpubus.WordReader](t, brd)
	_ = test.DemandImplements[cpubus.WordWriter](t, brd)

	err := cpubus.WriteWord(brd, 0x1000, 0xbeef)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, brd.RAM[0x1000], 0xef)
	test.ExpectEquality(t, brd.RAM[0x1001], 0xbe)

	v, err := cpubus.ReadWord(brd, 0x1000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xbeef)

	// word access wraps at the top of memory
	err = brd.WriteWord(0xffff, 0x1234)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, brd.RAM[0xffff], 0x34)
	test.ExpectEquality(t, brd.RAM[0x0000], 0x12)
}

func TestPorts(t *testing.T) {
	brd := flat.NewBoard()
	brd.In[0x10] = 0x99

	v, err := brd.Input(0x10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x99)

	err = brd.Output(0xff, 0x42)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, brd.Out[0xff], 0x42)

	view := test.DemandImplements[flat.Viewer](t, brd)
	test.ExpectEquality(t, view.PeekInput(0x10), 0x99)
	test.ExpectEquality(t, view.PeekOutput(0xff), 0x42)
	test.ExpectEquality(t, view.PeekOutput(0x10), 0x00)
}

func TestLoad(t *testing.T) {
	brd, err := flat.NewBoardFromImage([]uint8{0xc3, 0x00, 0x01})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, brd.Peek(0x0000), 0xc3)
	test.ExpectEquality(t, brd.Peek(0x0002), 0x01)

	err = brd.Load(0xfffe, []uint8{0x01, 0x02})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, brd.Peek(0xffff), 0x02)

	err = brd.Load(0xffff, []uint8{0x01, 0x02})
	test.ExpectSuccess(t, curated.Is(err, flat.ErrLoadOverflow))

	_, err = flat.NewBoardFromImage(make([]uint8, flat.MemorySize+1))
	test.ExpectFailure(t, err)
}

func TestDump(t *testing.T) {
	brd := flat.NewBoard()
	brd.RAM[0x0101] = 0xab

	d := brd.Dump(0x0100, 0x010f)
	test.ExpectSuccess(t, strings.Contains(d, "0010- |  00 ab 00"))
	test.ExpectEquality(t, len(strings.Split(d, "\n")), 3)
}
