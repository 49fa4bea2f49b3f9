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

package sdlinvaders

import (
	"github.com/jetsetilly/gopher8080/hardware/invaders"
	"github.com/veandco/go-sdl2/sdl"
)

var keys = map[sdl.Keycode]invaders.Input{
	sdl.K_c:     invaders.Coin,
	sdl.K_1:     invaders.P1Start,
	sdl.K_2:     invaders.P2Start,
	sdl.K_LEFT:  invaders.P1Left,
	sdl.K_RIGHT: invaders.P1Right,
	sdl.K_SPACE: invaders.P1Fire,
	sdl.K_a:     invaders.P2Left,
	sdl.K_d:     invaders.P2Right,
	sdl.K_w:     invaders.P2Fire,
	sdl.K_t:     invaders.Tilt,
}

// service SDL events. returns true if the emulation should end.
func (gui *SdlInvaders) service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				break // switch
			}

			if ev.Keysym.Sym == sdl.K_ESCAPE {
				return true
			}

			if in, ok := keys[ev.Keysym.Sym]; ok {
				gui.brd.SetInput(in, ev.Type == sdl.KEYDOWN)
			}
		}
	}

	return false
}
