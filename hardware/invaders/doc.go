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

// Package invaders implements the board of the Midway Space Invaders arcade
// machine. The board has 8KiB of ROM, 8KiB of RAM (most of which is video
// memory), a hardware shift register and input and sound ports.
//
// The board is installed in a Machine like any other bus:
//
//	brd, err := invaders.NewBoard(rom)
//	m := hardware.Install(brd)
//
// The Frame() function runs the Machine for one sixtieth of a second,
// delivering the two video interrupts. Pacing the calls to Frame() is the
// caller's job.
package invaders
