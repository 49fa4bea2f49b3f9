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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/memory/flat"
	"github.com/jetsetilly/gopher8080/test"
)

func TestDefaultBoard(t *testing.T) {
	m := hardware.Install(nil)
	defer m.Close()

	brd := m.DefaultBoard()
	test.DemandSuccess(t, brd != nil)

	// MVI A,0x2a; OUT 0x10; STA 0x0100; HLT
	err := m.Load(0x0000, []uint8{0x3e, 0x2a, 0xd3, 0x10, 0x32, 0x00, 0x01, 0x76})
	test.DemandSuccess(t, err)

	err = m.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, brd.PeekOutput(0x10), 0x2a)
	test.ExpectEquality(t, brd.PeekInput(0x10), 0x00)
	test.ExpectEquality(t, brd.Peek(0x0100), 0x2a)
	test.ExpectEquality(t, m.State().A, 0x2a)
	test.ExpectFailure(t, m.State().Active)
	test.ExpectEquality(t, m.Cycles, uint64(7+10+13+7))
}

func TestExternalBus(t *testing.T) {
	brd := flat.NewBoard()
	m := hardware.Install(brd)
	defer m.Close()

	test.ExpectSuccess(t, m.DefaultBoard() == nil)
	test.ExpectSuccess(t, curated.Is(m.Load(0x0000, []uint8{0x00}), hardware.ErrNoDefaultBoard))

	brd.RAM[0x0000] = 0x3c // INR A
	c, err := m.Execute()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, 5)
	test.ExpectEquality(t, m.State().A, 0x01)
}

func TestNewFromImage(t *testing.T) {
	// JMP 0x0100 stub with MVI A,0x55; HLT at 0x0100
	image := make([]uint8, 0x0103)
	copy(image, []uint8{0xc3, 0x00, 0x01})
	copy(image[0x0100:], []uint8{0x3e, 0x55, 0x76})

	m, err := hardware.NewFromImage(image)
	test.DemandSuccess(t, err)
	defer m.Close()

	var total int
	for {
		c, err := m.Execute()
		test.DemandSuccess(t, err)
		if c == 0 {
			break // for loop
		}
		total += int(c)
	}
	test.ExpectEquality(t, m.State().A, 0x55)
	test.ExpectEquality(t, total, 24)

	_, err = hardware.NewFromImage(make([]uint8, flat.MemorySize))
	test.ExpectSuccess(t, err)

	_, err = hardware.NewFromImage(make([]uint8, flat.MemorySize+1))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, hardware.ErrImageTooLarge))
}

func TestClose(t *testing.T) {
	m := hardware.Install(nil)
	m.Close()

	test.ExpectSuccess(t, m.DefaultBoard() == nil)

	c, err := m.Execute()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, 0)

	ok, err := m.Interrupt(cpu.RSTCode(0))
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)
}

func TestReset(t *testing.T) {
	m := hardware.Install(nil)
	defer m.Close()

	// LXI SP,0x2000; EI; HLT
	err := m.Load(0x0000, []uint8{0x31, 0x00, 0x20, 0xfb, 0x76})
	test.DemandSuccess(t, err)

	n, err := m.RunForCycles(10 + 4 + 7)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 21)
	test.ExpectSuccess(t, m.State().Waiting)

	// a waiting CPU keeps the cycle count moving
	n, err = m.RunForCycles(70)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 70)

	_, err = m.Reset(8)
	test.ExpectSuccess(t, curated.Is(err, cpu.ErrResetVector))

	ok, err := m.Reset(1)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, m.State().PC, 0x0008)
	test.ExpectFailure(t, m.State().Waiting)
	test.ExpectEquality(t, m.Cycles, uint64(21+70+11))

	// interrupts are now disabled
	ok, err = m.Reset(1)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)
}

func TestRunContinueCheck(t *testing.T) {
	m := hardware.Install(nil)
	defer m.Close()

	// JMP 0x0000
	err := m.Load(0x0000, []uint8{0xc3, 0x00, 0x00})
	test.DemandSuccess(t, err)

	var count int
	err = m.Run(func() (bool, error) {
		count++
		return count < hardware.PerformanceBrake, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, count, hardware.PerformanceBrake)
	test.ExpectEquality(t, m.Cycles, uint64(10*hardware.PerformanceBrake))
}
