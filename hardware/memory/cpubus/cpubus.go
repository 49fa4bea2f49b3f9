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

// Package cpubus defines the interface between the 8080 CPU and the rest of
// the machine. The machine implements the Memory interface and the CPU uses it
// for every memory and port access.
//
// The machine can optionally implement the WordReader and WordWriter
// interfaces if it has a faster way of accessing 16bit values. The ReadWord()
// and WriteWord() functions should be used by the CPU for all 16bit accesses.
//
// The Trap interface is another optional extension. A machine that implements
// it is consulted before every instruction and can replace the instruction
// that is about to be executed. This is the mechanism used to emulate
// operating system calls without emulating the operating system.
package cpubus

// Memory defines the operations for the memory system and the IO ports when
// accessed from the CPU. Addresses cover the full 64KB space. The 8080 has 256
// input ports and 256 output ports, which are separate from one another.
//
// An error returned by any of these functions will be returned by the CPU's
// Execute() function without modification.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
	Input(port uint8) (uint8, error)
	Output(port uint8, data uint8) error
}

// WordReader is an optional interface for Memory implementations. If present
// it will be used instead of two calls to Read().
type WordReader interface {
	ReadWord(address uint16) (uint16, error)
}

// WordWriter is an optional interface for Memory implementations. If present
// it will be used instead of two calls to Write().
type WordWriter interface {
	WriteWord(address uint16, data uint16) error
}
