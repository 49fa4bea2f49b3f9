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
	"fmt"

	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/invaders"
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/performance/limiter"
	"github.com/jetsetilly/gopher8080/version"
	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// SdlInvaders is the SDL front end for the Space Invaders board.
type SdlInvaders struct {
	m   *hardware.Machine
	brd *invaders.Board

	// limit the emulation to the frame rate of the machine
	lmtr *limiter.FpsLimiter

	// all audio is handled by the sound type
	snd *sound

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	scale int32
}

// NewSdlInvaders is the preferred method of initialisation for SdlInvaders.
// The board should already be installed in the machine.
//
// Samples are loaded from the sample directory. Missing samples are not an
// error.
func NewSdlInvaders(m *hardware.Machine, brd *invaders.Board, scale int, sampleDir string) (*SdlInvaders, error) {
	if scale < 1 {
		scale = 1
	}

	gui := &SdlInvaders{
		m:     m,
		brd:   brd,
		scale: int32(scale),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	gui.window, err = sdl.CreateWindow(version.Title(),
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		invaders.ScreenWidth*gui.scale, invaders.ScreenHeight*gui.scale,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	gui.renderer, err = sdl.CreateRenderer(gui.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	// texture is the same size as the screen. scaling is applied when the
	// texture is copied to the renderer
	gui.texture, err = gui.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		invaders.ScreenWidth, invaders.ScreenHeight)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	gui.lmtr, err = limiter.NewFPSLimiter(invaders.FrameRate)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	gui.snd, err = newSound(sampleDir)
	if err != nil {
		// the game is playable without sound
		logger.Log(logger.Allow, "sdl", err)
	} else {
		brd.AttachSoundListener(gui.snd)
	}

	return gui, nil
}

// Destroy releases the SDL resources.
func (gui *SdlInvaders) Destroy() {
	gui.brd.AttachSoundListener(nil)
	if gui.snd != nil {
		gui.snd.destroy()
	}
	if gui.lmtr != nil {
		gui.lmtr.Stop()
	}
	if gui.texture != nil {
		_ = gui.texture.Destroy()
	}
	if gui.renderer != nil {
		_ = gui.renderer.Destroy()
	}
	if gui.window != nil {
		_ = gui.window.Destroy()
	}
	sdl.Quit()
}

// Run the emulation until the window is closed or the escape key is pressed.
// Must be called from the main thread.
func (gui *SdlInvaders) Run() error {
	img := invaders.NewImage()

	for {
		if quit := gui.service(); quit {
			return nil
		}

		if err := invaders.Frame(gui.m); err != nil {
			return err
		}

		if gui.snd != nil {
			if err := gui.snd.mix(); err != nil {
				return err
			}
		}

		gui.brd.Render(img)

		pixels, pitch, err := gui.texture.Lock(nil)
		if err != nil {
			return fmt.Errorf("sdl: %w", err)
		}
		for y := 0; y < invaders.ScreenHeight; y++ {
			copy(pixels[y*pitch:], img.Pix[y*img.Stride:y*img.Stride+invaders.ScreenWidth*pixelDepth])
		}
		gui.texture.Unlock()

		err = gui.renderer.Copy(gui.texture, nil, nil)
		if err != nil {
			return fmt.Errorf("sdl: %w", err)
		}

		gui.renderer.Present()

		gui.lmtr.Wait()
	}
}
