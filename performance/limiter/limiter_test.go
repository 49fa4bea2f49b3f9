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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8080/performance/limiter"
	"github.com/jetsetilly/gopher8080/test"
)

func TestLimiter(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectFailure(t, err)

	lim, err := limiter.NewFPSLimiter(100)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	test.ExpectEquality(t, lim.Limit(), 100)

	start := time.Now()
	for i := 0; i < 10; i++ {
		lim.Wait()
	}
	test.ExpectSuccess(t, time.Since(start) >= 90*time.Millisecond)

	lim.SetLimit(-1)
	test.ExpectEquality(t, lim.Limit(), 100)
	lim.SetLimit(50)
	test.ExpectEquality(t, lim.Limit(), 50)
}
