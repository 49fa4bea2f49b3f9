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

// Package hardware is the base package for the 8080 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation. It owns the CPU and is
// attached to a bus when it is installed. If no bus is provided the machine
// creates its own flat board with 64KiB of RAM.
//
//	m := hardware.Install(nil)
//	defer m.Close()
//
//	m.Load(0x0000, program)
//	for {
//		c, err := m.Execute()
//		if err != nil {
//			return err
//		}
//		if c == 0 {
//			break
//		}
//	}
//
// From here the emulation can either be run continuously, with an optional
// callback to check for continuation, or it can be stepped one instruction
// at a time with Execute().
package hardware
