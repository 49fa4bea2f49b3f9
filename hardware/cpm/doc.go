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

// Package cpm implements a board that runs CP/M programs, such as the
// classic cpudiag and 8080 exerciser programs, without a CP/M operating
// system.
//
// The program is loaded at 0x0100 and a jump to the program is placed at
// 0x0000. The board implements the cpubus.Trap interface and uses it to
// intercept calls to the BDOS entry point at 0x0005. Console functions are
// serviced by the Console given to the board. A jump to 0x0000 (warm boot)
// ends the program.
//
// If the board has been told the address of the program's error routine,
// entering the routine records a failure. A warm boot after a failure causes
// the ErrTestsFailed error to be returned by the CPU.
package cpm
