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
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gopher8080/hardware/invaders"
	"github.com/jetsetilly/gopher8080/samples"
	"github.com/veandco/go-sdl2/sdl"
)

const sampleFreq = 44100

// the number of samples mixed every frame
const samplesPerFrame = sampleFreq / invaders.FrameRate

// if there is more than this amount of data queued then the mixed audio is
// dropped. prevents audio lag from growing
const maxQueued = samplesPerFrame * 2 * 4

type voice struct {
	data []int16
	pos  int
}

type sound struct {
	id sdl.AudioDeviceID

	// samples converted to the playback frequency
	samples [invaders.NumSounds][]int16

	voices []voice

	// mixing buffers
	mixed []int32
	buf   []byte
}

func newSound(sampleDir string) (*sound, error) {
	snd := &sound{
		mixed: make([]int32, samplesPerFrame),
		buf:   make([]byte, samplesPerFrame*2),
	}

	names := make([]string, invaders.NumSounds)
	for i := range names {
		names[i] = invaders.Sound(i).Filename()
	}

	set := samples.LoadSet(sampleDir, names)
	if len(set) == 0 {
		return nil, fmt.Errorf("sdl: no sound samples in %s", sampleDir)
	}

	for i := range snd.samples {
		if s, ok := set[names[i]]; ok {
			snd.samples[i] = s.Resample(sampleFreq)
		}
	}

	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(samplesPerFrame),
	}

	var err error
	var actualSpec sdl.AudioSpec

	snd.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	sdl.PauseAudioDevice(snd.id, false)

	return snd, nil
}

// PlaySound implements the invaders.SoundListener interface.
func (snd *sound) PlaySound(s invaders.Sound) {
	if s < 0 || s >= invaders.NumSounds || len(snd.samples[s]) == 0 {
		return
	}
	snd.voices = append(snd.voices, voice{data: snd.samples[s]})
}

// mix one frame of audio and queue it for playback.
func (snd *sound) mix() error {
	for i := range snd.mixed {
		snd.mixed[i] = 0
	}

	active := snd.voices[:0]
	for _, v := range snd.voices {
		n := copyMix(snd.mixed, v.data[v.pos:])
		v.pos += n
		if v.pos < len(v.data) {
			active = append(active, v)
		}
	}
	snd.voices = active

	for i, v := range snd.mixed {
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		binary.LittleEndian.PutUint16(snd.buf[i*2:], uint16(int16(v)))
	}

	if sdl.GetQueuedAudioSize(snd.id) > maxQueued {
		return nil
	}

	return sdl.QueueAudio(snd.id, snd.buf)
}

// copyMix adds the data to the mix and returns the number of samples used.
func copyMix(mixed []int32, data []int16) int {
	n := len(data)
	if n > len(mixed) {
		n = len(mixed)
	}
	for i := 0; i < n; i++ {
		mixed[i] += int32(data[i])
	}
	return n
}

func (snd *sound) destroy() {
	sdl.CloseAudioDevice(snd.id)
}
