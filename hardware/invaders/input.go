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

package invaders

// Input identifies one of the switches on the cabinet.
type Input int

// List of valid Input values.
const (
	Coin Input = iota
	P1Start
	P2Start
	P1Fire
	P1Left
	P1Right
	P2Fire
	P2Left
	P2Right
	Tilt
)

func (in Input) String() string {
	switch in {
	case Coin:
		return "coin"
	case P1Start:
		return "1up start"
	case P2Start:
		return "2up start"
	case P1Fire:
		return "1up fire"
	case P1Left:
		return "1up left"
	case P1Right:
		return "1up right"
	case P2Fire:
		return "2up fire"
	case P2Left:
		return "2up left"
	case P2Right:
		return "2up right"
	case Tilt:
		return "tilt"
	}
	return "unknown input"
}

// the port and bit for each input
var inputMap = map[Input]struct {
	port int
	bit  uint8
}{
	Coin:    {1, 0x01},
	P2Start: {1, 0x02},
	P1Start: {1, 0x04},
	P1Fire:  {1, 0x10},
	P1Left:  {1, 0x20},
	P1Right: {1, 0x40},
	Tilt:    {2, 0x04},
	P2Fire:  {2, 0x10},
	P2Left:  {2, 0x20},
	P2Right: {2, 0x40},
}

// SetInput sets or clears the switch. A pressed switch is a set bit.
func (brd *Board) SetInput(in Input, pressed bool) {
	m, ok := inputMap[in]
	if !ok {
		return
	}
	if pressed {
		brd.inputs[m.port] |= m.bit
	} else {
		brd.inputs[m.port] &^= m.bit
	}
}

// SetLives sets the DIP switches for the number of lives at the start of a
// game. Valid values are 3 to 6.
func (brd *Board) SetLives(lives int) {
	if lives < 3 {
		lives = 3
	} else if lives > 6 {
		lives = 6
	}
	brd.inputs[2] = brd.inputs[2]&^0x03 | uint8(lives-3)
}
