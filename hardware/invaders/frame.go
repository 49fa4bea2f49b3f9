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
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/cpu"
)

// ClockSpeed is the speed of the CPU in Hz.
const ClockSpeed = 2000000

// FrameRate is the number of frames per second of the monitor.
const FrameRate = 60

// CyclesPerFrame is the number of CPU cycles in one frame.
const CyclesPerFrame = ClockSpeed / FrameRate

// the video hardware interrupts with RST 1 when the beam is in the middle of
// the screen and with RST 2 at the end of the screen
const (
	midScreen = 1
	endScreen = 2
)

// Frame runs the machine for one frame. The mid-screen and end-of-screen
// interrupts are delivered at the correct point.
func Frame(m *hardware.Machine) error {
	n, err := m.RunForCycles(CyclesPerFrame / 2)
	if err != nil {
		return err
	}

	if _, err := m.Interrupt(cpu.RSTCode(midScreen)); err != nil {
		return err
	}

	if _, err := m.RunForCycles(CyclesPerFrame - n); err != nil {
		return err
	}

	if _, err := m.Interrupt(cpu.RSTCode(endScreen)); err != nil {
		return err
	}

	return nil
}
