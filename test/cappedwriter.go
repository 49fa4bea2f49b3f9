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

package test

import (
	"fmt"
)

// CappedWriter is an implementation of io.Writer that stops buffering once a
// predefined size is reached.
type CappedWriter struct {
	buffer []byte
	size   int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (r *CappedWriter) String() string {
	return string(r.buffer)
}

// Reset empties the capped writer's buffer.
func (r *CappedWriter) Reset() {
	r.buffer = r.buffer[:0]
}

// Full returns true if no more bytes will be buffered.
func (r *CappedWriter) Full() bool {
	return len(r.buffer) >= r.size
}

// Write implements io.Writer. Bytes beyond the capacity of the writer are
// silently dropped but are still counted as written, so that callers wrapped
// around the writer do not fail with io.ErrShortWrite.
func (r *CappedWriter) Write(p []byte) (n int, err error) {
	remaining := r.size - len(r.buffer)

	if remaining == 0 {
		return len(p), nil
	}

	if len(p) < remaining {
		r.buffer = append(r.buffer, p...)
		return len(p), nil
	}

	r.buffer = append(r.buffer, p[:remaining]...)
	return len(p), nil
}
