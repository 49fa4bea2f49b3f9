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

package test_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher8080/test"
)

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(10)
	test.DemandSuccess(t, err)

	fmt.Fprint(r, "abcde")
	test.ExpectEquality(t, r.String(), "abcde")

	fmt.Fprint(r, "fghij")
	test.ExpectEquality(t, r.String(), "abcdefghij")

	fmt.Fprint(r, "kl")
	test.ExpectEquality(t, r.String(), "cdefghijkl")

	// a write larger than the ring leaves only the tail of that write
	fmt.Fprint(r, "0123456789AB")
	test.ExpectEquality(t, r.String(), "23456789AB")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")

	_, err = test.NewRingWriter(0)
	test.ExpectFailure(t, err)
}

func TestCappedWriter(t *testing.T) {
	c, err := test.NewCappedWriter(10)
	test.DemandSuccess(t, err)

	fmt.Fprint(c, "abcde")
	test.ExpectEquality(t, c.String(), "abcde")
	test.ExpectFailure(t, c.Full())

	n, err := fmt.Fprint(c, "fghijklmn")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 9)
	test.ExpectEquality(t, c.String(), "abcdefghij")
	test.ExpectSuccess(t, c.Full())

	c.Reset()
	test.ExpectEquality(t, c.String(), "")

	_, err = test.NewCappedWriter(-1)
	test.ExpectFailure(t, err)
}

func TestExpect(t *testing.T) {
	var err error
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, fmt.Errorf("test"))
	test.ExpectInequality(t, 1, 2)
	test.ExpectEquality(t, uint16(0x1234), 0x1234)
}
