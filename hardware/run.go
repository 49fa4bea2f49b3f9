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

package hardware

// While the continueCheck() function only runs at the end of a CPU
// instruction it can still be expensive to do a full continue check every
// time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. Run returns when
// the CPU has halted or when continueCheck returns false.
//
// A CPU that is waiting for an interrupt has not halted and so the
// continueCheck function should be used to deliver interrupts or to end the
// emulation.
func (m *Machine) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		c, err := m.Execute()
		if err != nil {
			return err
		}
		if c == 0 {
			return nil
		}

		running, err := continueCheck()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
	}
}

// RunForCycles runs the emulation until at least the number of cycles has
// been executed or the CPU has halted. Returns the number of cycles actually
// executed, which may be more than requested by the length of the last
// instruction.
func (m *Machine) RunForCycles(cycles int) (int, error) {
	var n int
	for n < cycles {
		c, err := m.Execute()
		if err != nil {
			return n, err
		}
		if c == 0 {
			break // for loop
		}
		n += int(c)
	}
	return n, nil
}
