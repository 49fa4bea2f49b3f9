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

import (
	"image"
	"image/color"
)

// Dimensions of the screen as seen by the player. The monitor is mounted on
// its side so the screen is taller than it is wide.
const (
	ScreenWidth  = 224
	ScreenHeight = 256
)

// the width in bytes of one line of video memory
const lineBytes = ScreenHeight / 8

// colours of the gel overlay on the monitor
var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red   = color.RGBA{R: 0xff, G: 0x20, B: 0x20, A: 0xff}
	green = color.RGBA{R: 0x20, G: 0xff, B: 0x20, A: 0xff}
	black = color.RGBA{A: 0xff}
)

// overlay returns the colour of a lit pixel at the screen coordinates.
func overlay(x, y int) color.RGBA {
	switch {
	case y >= 32 && y < 64:
		return red
	case y >= 184 && y < 240:
		return green
	case y >= 240 && x >= 16 && x < 134:
		return green
	}
	return white
}

// NewImage returns an image suitable for use with the Render() function.
func NewImage() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
}

// Render draws the contents of video memory to the image. The image should
// have been created with NewImage().
func (brd *Board) Render(img *image.RGBA) {
	vram := brd.mem[VRAMOrigin : VRAMOrigin+VRAMSize]

	for i, b := range vram {
		// video memory is scanned from the bottom left of the rotated screen
		x := i / lineBytes
		yb := (i % lineBytes) * 8

		for bit := 0; bit < 8; bit++ {
			y := ScreenHeight - 1 - (yb + bit)
			if b&(0x01<<bit) != 0 {
				img.SetRGBA(x, y, overlay(x, y))
			} else {
				img.SetRGBA(x, y, black)
			}
		}
	}
}

// Image returns a new image of the screen.
func (brd *Board) Image() *image.RGBA {
	img := NewImage()
	brd.Render(img)
	return img
}
