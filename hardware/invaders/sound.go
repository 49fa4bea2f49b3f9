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

import "fmt"

// Sound identifies one of the sound effects of the machine. The numbering
// follows the file names of the common sample sets.
type Sound int

// List of valid Sound values.
const (
	UFO Sound = iota
	Shot
	PlayerDie
	InvaderDie
	Fleet1
	Fleet2
	Fleet3
	Fleet4
	UFOHit
	ExtendedPlay
	NumSounds
)

func (snd Sound) String() string {
	switch snd {
	case UFO:
		return "ufo"
	case Shot:
		return "shot"
	case PlayerDie:
		return "player die"
	case InvaderDie:
		return "invader die"
	case Fleet1, Fleet2, Fleet3, Fleet4:
		return fmt.Sprintf("fleet %d", snd-Fleet1+1)
	case UFOHit:
		return "ufo hit"
	case ExtendedPlay:
		return "extended play"
	}
	return "unknown sound"
}

// Filename returns the name, without extension, of the sample for the sound.
func (snd Sound) Filename() string {
	return fmt.Sprintf("%d", snd)
}

// SoundListener implementations are told when a sound should start.
type SoundListener interface {
	PlaySound(Sound)
}

// the sound for each bit of the two sound ports
var soundMap = [2][5]Sound{
	{UFO, Shot, PlayerDie, InvaderDie, ExtendedPlay},
	{Fleet1, Fleet2, Fleet3, Fleet4, UFOHit},
}

// AttachSoundListener adds a listener to the board. A nil listener removes
// the current listener.
func (brd *Board) AttachSoundListener(l SoundListener) {
	brd.listener = l
}

// sound reports the bits that have changed from zero to one since the last
// write to the sound port.
func (brd *Board) sound(latch int, data uint8) {
	rising := data &^ brd.soundLatch[latch]
	brd.soundLatch[latch] = data

	if brd.listener == nil {
		return
	}

	for i, snd := range soundMap[latch] {
		if rising&(0x01<<i) != 0 {
			brd.listener.PlaySound(snd)
		}
	}
}
