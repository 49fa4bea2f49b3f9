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

// ReadWord reads a little-endian 16bit value from memory. The WordReader
// implementation is used if the Memory has one. Reading from 0xffff takes the
// high byte from 0x0000.
func ReadWord(mem Memory, address uint16) (uint16, error) {
	if wr, ok := mem.(WordReader); ok {
		return wr.ReadWord(address)
	}

	lo, err := mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mem.Read(address + 1)
	if err != nil {
		return 0, err
	}

	return uint16(hi)<<8 | uint16(lo), nil
}

// WriteWord writes a 16bit value to memory in little-endian order. The
// WordWriter implementation is used if the Memory has one.
func WriteWord(mem Memory, address uint16, data uint16) error {
	if ww, ok := mem.(WordWriter); ok {
		return ww.WriteWord(address, data)
	}

	err := mem.Write(address, uint8(data))
	if err != nil {
		return err
	}
	return mem.Write(address+1, uint8(data>>8))
}
