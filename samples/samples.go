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

// Package samples decodes sound samples for playback. WAV and MP3 files are
// supported. Decoded data is always mono, signed 16bit PCM. Stereo files are
// reduced to the left channel.
package samples

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/logger"
)

// Sentinal error patterns returned by the samples package.
const (
	ErrDecode      = "samples: %s: %v"
	ErrUnsupported = "samples: unsupported file type (%s)"
)

// Extensions is the list of supported file extensions in order of preference.
var Extensions = []string{".wav", ".mp3"}

// Sample is decoded PCM data.
type Sample struct {
	SampleRate int
	Data       []int16
}

// Duration returns the playing time of the sample.
func (s Sample) Duration() time.Duration {
	if s.SampleRate == 0 {
		return 0
	}
	return time.Duration(len(s.Data)) * time.Second / time.Duration(s.SampleRate)
}

// Resample returns the data converted to the sample rate. Conversion is by
// nearest neighbour.
func (s Sample) Resample(rate int) []int16 {
	if s.SampleRate == rate || s.SampleRate == 0 {
		return s.Data
	}

	n := int(int64(len(s.Data)) * int64(rate) / int64(s.SampleRate))
	d := make([]int16, n)
	for i := range d {
		d[i] = s.Data[int64(i)*int64(s.SampleRate)/int64(rate)]
	}
	return d
}

// Decode the file. The file type is decided by the file extension.
func Decode(filename string) (Sample, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Sample{}, curated.Errorf(ErrDecode, filename, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		return decodeWAV(filename, f)
	case ".mp3":
		return decodeMP3(filename, f)
	}

	return Sample{}, curated.Errorf(ErrUnsupported, filepath.Ext(filename))
}

func decodeWAV(filename string, r io.ReadSeeker) (Sample, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Sample{}, curated.Errorf(ErrDecode, filename, "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Sample{}, curated.Errorf(ErrDecode, filename, err)
	}

	return fromIntBuffer(buf, int(dec.BitDepth)), nil
}

// fromIntBuffer converts the first channel of the buffer to 16bit data.
func fromIntBuffer(buf *audio.IntBuffer, bitDepth int) Sample {
	numChans := 1
	s := Sample{}
	if buf.Format != nil {
		numChans = buf.Format.NumChannels
		s.SampleRate = buf.Format.SampleRate
	}
	if numChans < 1 {
		numChans = 1
	}

	s.Data = make([]int16, 0, len(buf.Data)/numChans)
	for i := 0; i < len(buf.Data); i += numChans {
		v := buf.Data[i]
		switch bitDepth {
		case 8:
			// 8bit wav data is unsigned
			v = (v - 128) << 8
		case 24:
			v >>= 8
		case 32:
			v >>= 16
		}
		s.Data = append(s.Data, int16(v))
	}

	return s
}

func decodeMP3(filename string, r io.Reader) (Sample, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return Sample{}, curated.Errorf(ErrDecode, filename, err)
	}

	s := Sample{SampleRate: dec.SampleRate()}

	data, err := io.ReadAll(dec)
	if err != nil {
		return Sample{}, curated.Errorf(ErrDecode, filename, err)
	}

	// the decoded stream is always 16bit little endian with two channels.
	// a sample is therefore always four bytes
	s.Data = make([]int16, 0, len(data)/4)
	for i := 0; i+3 < len(data); i += 4 {
		s.Data = append(s.Data, int16(uint16(data[i])|uint16(data[i+1])<<8))
	}

	return s, nil
}

// LoadSet decodes the named samples from the directory. A name has no file
// extension. Each of the Extensions is tried in turn. Samples that cannot be
// found or decoded are logged and are missing from the returned map.
func LoadSet(dir string, names []string) map[string]Sample {
	set := make(map[string]Sample)

	for _, n := range names {
		var found bool
		for _, ext := range Extensions {
			fn := filepath.Join(dir, fmt.Sprintf("%s%s", n, ext))
			if _, err := os.Stat(fn); err != nil {
				continue // for loop
			}

			s, err := Decode(fn)
			if err != nil {
				logger.Log(logger.Allow, "samples", err)
				continue // for loop
			}

			set[n] = s
			found = true
			logger.Logf(logger.Allow, "samples", "%s: %dHz %.2fs", fn, s.SampleRate, s.Duration().Seconds())
			break // for loop
		}

		if !found {
			logger.Logf(logger.Allow, "samples", "no sample for %s in %s", n, dir)
		}
	}

	return set
}
