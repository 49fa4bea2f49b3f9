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

// Package test bundles a number of helper functions useful for testing
// purposes, particularly in conjunction with the standard go test harness.
//
// The Expect*() functions report a failed test but allow the test to continue.
// The Demand*() functions are fatal.
//
// ExpectSuccess() and ExpectFailure() test for success under generic
// conditions. Supported types are bool and error. A nil value is considered a
// success because of how errors usually work (nil to indicate no error).
//
// RingWriter and CappedWriter implement io.Writer and should be used to
// capture output when the amount of output is uncertain. For example, output
// from a CP/M program that is stuck in a loop.
package test
