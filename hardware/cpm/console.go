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

package cpm

import (
	"bufio"
	"io"
	"os"

	"github.com/jetsetilly/gopher8080/terminal/easyterm"
)

// Console is used by the BDOS functions for console input and output.
type Console interface {
	io.Writer

	// ReadByte blocks until a byte is available
	ReadByte() (byte, error)

	// Ready returns true if ReadByte() will return a byte without blocking
	Ready() bool
}

type console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole returns a Console that reads from and writes to the supplied
// io.Reader and io.Writer. The input may be nil in which case ReadByte()
// returns io.EOF.
//
// Note that Ready() will block if the io.Reader blocks.
func NewConsole(in io.Reader, out io.Writer) Console {
	c := &console{out: out}
	if in != nil {
		c.in = bufio.NewReader(in)
	}
	if c.out == nil {
		c.out = io.Discard
	}
	return c
}

func (c *console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

func (c *console) ReadByte() (byte, error) {
	if c.in == nil {
		return 0, io.EOF
	}
	return c.in.ReadByte()
}

func (c *console) Ready() bool {
	if c.in == nil {
		return false
	}
	_, err := c.in.Peek(1)
	return err == nil
}

// TerminalConsole is a Console for an interactive terminal. The terminal is
// put into cbreak mode so that key presses are available immediately.
type TerminalConsole struct {
	easyterm.Terminal
}

// NewTerminalConsole is the preferred method of initialisation for the
// TerminalConsole type. The Close() function should be called to return the
// terminal to its normal state.
func NewTerminalConsole(in *os.File, out *os.File) (*TerminalConsole, error) {
	tc := &TerminalConsole{}
	if err := tc.Initialise(in, out); err != nil {
		return nil, err
	}
	tc.CBreakMode()
	return tc, nil
}

// ReadByte implements the Console interface. Line feeds are converted to
// carriage returns.
func (tc *TerminalConsole) ReadByte() (byte, error) {
	b, err := tc.Terminal.ReadByte()
	if err != nil {
		return 0, err
	}
	if b == easyterm.KeyLineFeed {
		b = easyterm.KeyCarriage
	}
	return b, nil
}

// Ready implements the Console interface.
func (tc *TerminalConsole) Ready() bool {
	return tc.InputReady()
}

// Close returns the terminal to canonical mode.
func (tc *TerminalConsole) Close() {
	tc.CleanUp()
}
