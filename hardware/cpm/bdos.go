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

package cpm

import (
	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8080/logger"
)

// BDOS function numbers. The function number is passed in register C.
const (
	ConsoleInput    = 1
	ConsoleOutput   = 2
	DirectConsoleIO = 6
	PrintString     = 9
	ConsoleStatus   = 11
	VersionNumber   = 12
)

// the version number returned by the VersionNumber function. CP/M 2.2
const version = 0x0022

const (
	opMVIA = 0x3e
	opLXIH = 0x21
)

// bdos services the function in register C and returns the instructions that
// complete the function. the last instruction returned is always RET.
func (brd *Board) bdos(state registers.State) ([][]uint8, error) {
	ret := []uint8{opRET}

	switch state.BC.Lo() {
	case ConsoleInput:
		b, err := brd.console.ReadByte()
		if err != nil {
			return nil, err
		}
		if _, err := brd.console.Write([]byte{b}); err != nil {
			return nil, err
		}
		return [][]uint8{{opMVIA, b}, ret}, nil

	case ConsoleOutput:
		if _, err := brd.console.Write([]byte{state.DE.Lo()}); err != nil {
			return nil, err
		}

	case DirectConsoleIO:
		if state.DE.Lo() != 0xff {
			if _, err := brd.console.Write([]byte{state.DE.Lo()}); err != nil {
				return nil, err
			}
			break // switch
		}

		var b uint8
		if brd.console.Ready() {
			var err error
			b, err = brd.console.ReadByte()
			if err != nil {
				return nil, err
			}
		}
		return [][]uint8{{opMVIA, b}, ret}, nil

	case PrintString:
		var s []byte
		for a := state.DE.Address(); brd.RAM[a] != '$'; a++ {
			s = append(s, brd.RAM[a])

			// a string without a terminator would otherwise loop forever
			if len(s) >= len(brd.RAM) {
				logger.Log(logger.Allow, "cpm", "unterminated string for print string function")
				break // for loop
			}
		}
		if _, err := brd.console.Write(s); err != nil {
			return nil, err
		}

	case ConsoleStatus:
		var b uint8
		if brd.console.Ready() {
			b = 0xff
		}
		return [][]uint8{{opMVIA, b}, ret}, nil

	case VersionNumber:
		return [][]uint8{{opLXIH, uint8(version), uint8(version >> 8)}, ret}, nil

	default:
		logger.Logf(logger.Allow, "cpm", "unsupported bdos function (%d)", state.BC.Lo())
	}

	return [][]uint8{ret}, nil
}
