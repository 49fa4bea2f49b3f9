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

package invaders_test

import (
	"image/color"
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/invaders"
	"github.com/jetsetilly/gopher8080/test"
)

func TestMemoryMap(t *testing.T) {
	brd, err := invaders.NewBoard([]uint8{0x01, 0x02, 0x03})
	test.DemandSuccess(t, err)

	// rom is not writable
	err = brd.Write(0x0000, 0xff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, brd.Peek(0x0000), 0x01)

	// ram is writable and mirrored
	err = brd.Write(0x2000, 0xaa)
	test.ExpectSuccess(t, err)
	v, err := brd.Read(0x6000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xaa)

	err = brd.Write(0xa001, 0xbb)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, brd.Peek(0x2001), 0xbb)

	// rom is mirrored too
	test.ExpectEquality(t, brd.Peek(0x4002), 0x03)

	_, err = invaders.NewBoard(make([]uint8, invaders.ROMSize+1))
	test.ExpectSuccess(t, curated.Is(err, invaders.ErrROMSize))
}

func TestShiftRegister(t *testing.T) {
	brd, err := invaders.NewBoard(nil)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, brd.Output(4, 0xaa))
	test.DemandSuccess(t, brd.Output(4, 0xff))

	test.DemandSuccess(t, brd.Output(2, 0))
	v, err := brd.Input(3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xff)

	test.DemandSuccess(t, brd.Output(2, 3))
	v, _ = brd.Input(3)
	test.ExpectEquality(t, v, 0xfd)

	test.DemandSuccess(t, brd.Output(2, 7))
	v, _ = brd.Input(3)
	test.ExpectEquality(t, v, 0xd5)

	// only the lower three bits of the offset are used
	test.DemandSuccess(t, brd.Output(2, 0x0b))
	v, _ = brd.Input(3)
	test.ExpectEquality(t, v, 0xfd)
}

func TestInputs(t *testing.T) {
	brd, err := invaders.NewBoard(nil)
	test.DemandSuccess(t, err)

	v, _ := brd.Input(1)
	test.ExpectEquality(t, v, 0x08)

	brd.SetInput(invaders.Coin, true)
	brd.SetInput(invaders.P1Fire, true)
	v, _ = brd.Input(1)
	test.ExpectEquality(t, v, 0x19)

	brd.SetInput(invaders.Coin, false)
	v, _ = brd.Input(1)
	test.ExpectEquality(t, v, 0x18)

	brd.SetInput(invaders.P2Left, true)
	brd.SetLives(5)
	v, _ = brd.Input(2)
	test.ExpectEquality(t, v, 0x22)

	brd.SetLives(10)
	v, _ = brd.Input(2)
	test.ExpectEquality(t, v, 0x23)
}

type soundRecorder struct {
	sounds []invaders.Sound
}

func (r *soundRecorder) PlaySound(snd invaders.Sound) {
	r.sounds = append(r.sounds, snd)
}

func TestSound(t *testing.T) {
	brd, err := invaders.NewBoard(nil)
	test.DemandSuccess(t, err)

	r := &soundRecorder{}
	brd.AttachSoundListener(r)

	test.DemandSuccess(t, brd.Output(3, 0x02))
	test.DemandSuccess(t, brd.Output(3, 0x02))
	test.DemandEquality(t, len(r.sounds), 1)
	test.ExpectEquality(t, r.sounds[0], invaders.Shot)

	test.DemandSuccess(t, brd.Output(3, 0x00))
	test.DemandSuccess(t, brd.Output(3, 0x12))
	test.DemandSuccess(t, brd.Output(5, 0x11))
	test.DemandEquality(t, len(r.sounds), 5)
	test.ExpectEquality(t, r.sounds[1], invaders.Shot)
	test.ExpectEquality(t, r.sounds[2], invaders.ExtendedPlay)
	test.ExpectEquality(t, r.sounds[3], invaders.Fleet1)
	test.ExpectEquality(t, r.sounds[4], invaders.UFOHit)

	test.ExpectEquality(t, invaders.UFOHit.Filename(), "8")
	test.ExpectEquality(t, invaders.Fleet3.String(), "fleet 3")

	// watchdog has no effect other than being counted
	test.DemandSuccess(t, brd.Output(6, 0x00))
	test.ExpectEquality(t, brd.Watchdog, 1)
}

func TestVideo(t *testing.T) {
	brd, err := invaders.NewBoard(nil)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, brd.Write(invaders.VRAMOrigin, 0x01))
	test.DemandSuccess(t, brd.Write(invaders.VRAMOrigin+invaders.VRAMSize-1, 0x80))

	vram := brd.VRAM()
	test.ExpectEquality(t, vram[0], 0x01)
	test.ExpectEquality(t, vram[len(vram)-1], 0x80)

	img := brd.Image()
	test.ExpectEquality(t, img.Bounds().Dx(), invaders.ScreenWidth)
	test.ExpectEquality(t, img.Bounds().Dy(), invaders.ScreenHeight)

	// first byte of video memory is the bottom left of the screen
	test.ExpectEquality(t, img.RGBAAt(0, 255), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(0, 254), color.RGBA{A: 0xff})

	// last byte is the top right
	test.ExpectEquality(t, img.RGBAAt(223, 0), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
}

func TestFrame(t *testing.T) {
	rom := make([]uint8, 0x40)
	copy(rom, []uint8{
		0x31, 0x00, 0x24, // LXI SP,0x2400
		0xfb,             // EI
		0xc3, 0x04, 0x00, // JMP 0x0004
	})
	copy(rom[0x08:], []uint8{0xc3, 0x20, 0x00}) // JMP 0x0020
	copy(rom[0x10:], []uint8{0xc3, 0x30, 0x00}) // JMP 0x0030

	// LXI H,0x2000; INR M; EI; RET
	copy(rom[0x20:], []uint8{0x21, 0x00, 0x20, 0x34, 0xfb, 0xc9})

	// LXI H,0x2001; INR M; EI; RET
	copy(rom[0x30:], []uint8{0x21, 0x01, 0x20, 0x34, 0xfb, 0xc9})

	brd, err := invaders.NewBoard(rom)
	test.DemandSuccess(t, err)

	m := hardware.Install(brd)
	defer m.Close()

	for i := 0; i < 3; i++ {
		test.DemandSuccess(t, invaders.Frame(m))
	}

	// the end of screen interrupt is the last thing in a frame so its
	// handler for the third frame hasn't run yet
	test.ExpectEquality(t, brd.Peek(0x2000), 3)
	test.ExpectEquality(t, brd.Peek(0x2001), 2)
	test.ExpectSuccess(t, m.Cycles >= 3*invaders.CyclesPerFrame)
	test.ExpectSuccess(t, m.Cycles < 3*invaders.CyclesPerFrame+100)

	_, err = m.RunForCycles(100)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, brd.Peek(0x2001), 3)
}
