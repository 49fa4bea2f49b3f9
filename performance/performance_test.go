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

package performance_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/performance"
	"github.com/jetsetilly/gopher8080/test"
)

func TestCalcMHz(t *testing.T) {
	mhz, accuracy := performance.CalcMHz(4000000, 2.0)
	test.ExpectEquality(t, mhz, 2.0)
	test.ExpectEquality(t, accuracy, 100.0)

	mhz, accuracy = performance.CalcMHz(100, 0)
	test.ExpectEquality(t, mhz, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu,trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfileString("gpu")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	performance.Leadtime = 10 * time.Millisecond

	m := hardware.Install(nil)
	defer m.Close()

	// JMP 0x0000
	test.DemandSuccess(t, m.Load(0x0000, []uint8{0xc3, 0x00, 0x00}))

	w := &strings.Builder{}
	err := performance.Check(w, performance.ProfileNone, m, "50ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(w.String(), "MHz"))
	test.ExpectSuccess(t, m.Cycles > 0)

	err = performance.Check(w, performance.ProfileNone, m, "not a duration")
	test.ExpectFailure(t, err)
}

func TestCheckHalted(t *testing.T) {
	performance.Leadtime = 10 * time.Millisecond

	m := hardware.Install(nil)
	defer m.Close()

	// HLT
	test.DemandSuccess(t, m.Load(0x0000, []uint8{0x76}))

	w := &strings.Builder{}
	err := performance.Check(w, performance.ProfileNone, m, "50ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "program halted"))
}
