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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". it provides
// some features not present in the third-party package, such as terminal
// geometry and non-blocking input checks, and wraps termios methods in
// functions with friendlier names.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TermGeometry contains the dimensions of a terminal (usually the output
// terminal).
type TermGeometry struct {
	Rows uint16
	Cols uint16
}

// Terminal is the main container for posix terminals. usually embedded in
// other struct types.
type Terminal struct {
	input  *os.File
	output *os.File

	Geometry TermGeometry

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// public functions that are called from the signal handler are prefaced
	// with:
	//		pt.mu.Lock()
	//		defer pt.mu.Unlock()
	mu sync.Mutex
}

// Initialise the fields in the Terminal struct.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an output file")
	}

	pt.input = inputFile
	pt.output = outputFile

	// prepare the attributes for the different terminal modes we'll be using
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)
	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	_ = pt.UpdateGeometry()

	pt.terminateHandlerSig = make(chan bool)
	pt.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			pt.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = pt.UpdateGeometry()
			case <-pt.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp restores the canonical mode and closes resources created in the
// Initialise() function.
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
	pt.terminateHandlerSig <- true
	<-pt.terminateHandlerAck
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...interface{}) {
	pt.output.WriteString(fmt.Sprintf(s, a...))
	pt.output.Sync()
}

// Write implements the io.Writer interface.
func (pt *Terminal) Write(p []byte) (int, error) {
	return pt.output.Write(p)
}

// ReadByte blocks until a byte is available on the input file.
func (pt *Terminal) ReadByte() (byte, error) {
	var b [1]byte
	for {
		n, err := pt.input.Read(b[:])
		if err != nil {
			return 0, err
		}
		if n == 1 {
			return b[0], nil
		}
	}
}

// InputReady returns true if there is at least one byte that can be read
// from the input file without blocking.
func (pt *Terminal) InputReady() bool {
	fds := []unix.PollFd{{Fd: int32(pt.input.Fd()), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil {
		return false
	}
	return n > 0 && fds[0].Revents&unix.POLLIN == unix.POLLIN
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (pt *Terminal) UpdateGeometry() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("easyterm: error updating terminal geometry information (%w)", err)
	}
	pt.Geometry.Rows = ws.Row
	pt.Geometry.Cols = ws.Col
	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// RawMode puts terminal into raw mode.
func (pt *Terminal) RawMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.rawAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (pt *Terminal) CBreakMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return err
	}
	return nil
}
