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

// Package sdlinvaders is an SDL front end for the Space Invaders board. It
// displays the screen, plays the sound samples and translates key presses to
// the switches of the cabinet.
//
// SDL requires that all calls are made from the main thread. The Run()
// function should therefore be called from the main goroutine after
// runtime.LockOSThread() has been called.
//
// Keys:
//
//	C         insert coin
//	1, 2      one or two player start
//	Left      player one left
//	Right     player one right
//	Space     player one fire
//	A, D      player two left, right
//	W         player two fire
//	T         tilt
//	Escape    quit
package sdlinvaders
