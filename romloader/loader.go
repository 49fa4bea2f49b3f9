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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/logger"
)

// Sentinal error patterns returned by the romloader package.
const (
	ErrTooLarge     = "romloader: data too large (%d bytes, maximum %d)"
	ErrNoFiles      = "romloader: no files to load"
	ErrHashMismatch = "romloader: unexpected hash value (%s)"
	ErrLoad         = "romloader: %v"
)

// DefaultMaxSize is the largest amount of data that can be loaded unless
// MaxSize is changed. It is the size of the 8080 address space.
const DefaultMaxSize = 0x10000

// Loader is used to specify the data to load.
type Loader struct {
	// filenames of the data to load. the data of each file is concatenated in
	// the order of the list
	Filenames []string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// the maximum number of bytes in the loaded data
	MaxSize int

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filenames ...string) Loader {
	return Loader{
		Filenames: filenames,
		MaxSize:   DefaultMaxSize,
	}
}

// ShortName returns a shortened version of the first filename.
func (ld Loader) ShortName() string {
	if len(ld.Filenames) == 0 {
		return ""
	}
	s := path.Base(ld.Filenames[0])
	s = strings.TrimSuffix(s, path.Ext(s))
	return s
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the data from every file. Filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (ld *Loader) Load() error {
	if len(ld.Filenames) == 0 {
		return curated.Errorf(ErrNoFiles)
	}

	maxSize := ld.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	var data []byte
	for _, fn := range ld.Filenames {
		d, err := load(fn)
		if err != nil {
			return err
		}
		data = append(data, d...)
		if len(data) > maxSize {
			return curated.Errorf(ErrTooLarge, len(data), maxSize)
		}
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(ErrHashMismatch, hash)
	}

	ld.Hash = hash
	ld.Data = data

	logger.Logf(logger.Allow, "romloader", "%s: %d bytes (sha1 %s)", ld.ShortName(), len(ld.Data), ld.Hash)

	return nil
}

// load data from a single file or URL.
func load(filename string) ([]byte, error) {
	scheme := "file"

	u, err := url.Parse(filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(filename)
		if err != nil {
			return nil, curated.Errorf(ErrLoad, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, curated.Errorf(ErrLoad, fmt.Sprintf("%s (%s)", filename, resp.Status))
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, curated.Errorf(ErrLoad, err)
		}
		return data, nil

	case "file":
		fallthrough

	case "":
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, curated.Errorf(ErrLoad, err)
		}
		return data, nil
	}

	return nil, curated.Errorf(ErrLoad, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
}

// Load is a convenience function that loads a single file and returns the
// data.
func Load(filename string) ([]byte, error) {
	ld := NewLoader(filename)
	if err := ld.Load(); err != nil {
		return nil, err
	}
	return ld.Data, nil
}

// LoadSet is a convenience function that loads and concatenates several files
// and returns the data.
func LoadSet(filenames ...string) ([]byte, error) {
	ld := NewLoader(filenames...)
	if err := ld.Load(); err != nil {
		return nil, err
	}
	return ld.Data, nil
}
