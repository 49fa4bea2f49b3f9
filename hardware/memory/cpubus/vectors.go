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

package cpubus

// Reset is the address of the first instruction after a reset. It is also
// the address of RST 0.
const Reset = uint16(0x0000)

// NumVectors is the number of RST instructions and therefore the number of
// interrupt vectors.
const NumVectors = 8

// Vector returns the address called by the RST instruction of the same number.
// For example, the RST 1 instruction calls 0x0008. Only the lower three bits
// of n are used.
func Vector(n uint8) uint16 {
	return uint16(n&0x07) << 3
}
