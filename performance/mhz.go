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

// NominalClock is the clock speed of a typical 8080 system in Hz.
const NominalClock = 2000000

// CalcMHz takes the number of cycles and duration (in seconds) and returns the
// emulated clock speed in MHz and the accuracy of that value as a percentage
// of the nominal clock.
func CalcMHz(cycles uint64, duration float64) (mhz float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	hz := float64(cycles) / duration
	return hz / 1000000, 100 * hz / NominalClock
}
