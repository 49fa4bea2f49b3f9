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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"fmt"
	"time"
)

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	ticker *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, fmt.Errorf("limiter: invalid frames per second (%d)", framesPerSecond)
	}
	lim := &FpsLimiter{}
	lim.SetLimit(framesPerSecond)
	lim.ticker = time.NewTicker(lim.secondsPerFrame)
	return lim, nil
}

// SetLimit changes the limit at which the FpsLimiter waits. Values of zero or
// less are ignored.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	if framesPerSecond <= 0 {
		return
	}
	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Second / time.Duration(framesPerSecond)
	if lim.ticker != nil {
		lim.ticker.Reset(lim.secondsPerFrame)
	}
}

// Limit returns the current frames per second.
func (lim *FpsLimiter) Limit() int {
	return lim.framesPerSecond
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.ticker.C
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *FpsLimiter) Stop() {
	lim.ticker.Stop()
}
