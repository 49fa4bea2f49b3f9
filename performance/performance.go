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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8080/hardware"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// Leadtime is the amount of time the emulation runs before measurement
// begins.
var Leadtime = 2 * time.Second

// Check the performance of the emulator by running the Machine for the
// specified duration. The Machine should be ready to run.
//
// Emulation will create a cpu, memory profile, a trace (or a combination of
// those) as defined by the Profile argument.
func Check(output io.Writer, profile Profile, m *hardware.Machine, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var startCycles uint64
	var startTime time.Time

	runner := func() error {
		// the leadtime will put false on the timerChan. the conclusion of the
		// measurement period will put true on the timerChan
		timerChan := make(chan bool, 2)

		// the time.AfterFunc for the measurement period is only started once
		// the leadtime has elapsed
		time.AfterFunc(Leadtime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		startTime = time.Now()

		// only check for end of measurement period every PerformanceBrake
		// instructions. checking the timerChan is relatively expensive
		performanceBrake := 0

		return m.Run(func() (bool, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return true, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					return false, timedOut
				}

				// leadtime has concluded so measurement begins
				startCycles = m.Cycles
				startTime = time.Now()
			default:
			}

			return true, nil
		})
	}

	// launch runner directly or through the CPU profiler, depending on
	// supplied arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	elapsed := time.Since(startTime)
	cycles := m.Cycles - startCycles

	if !m.State().Active {
		io.WriteString(output, "program halted before the end of the measurement period\n")
	}

	mhz, accuracy := CalcMHz(cycles, elapsed.Seconds())
	io.WriteString(output, fmt.Sprintf("%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, elapsed.Seconds(), accuracy))

	return nil
}
