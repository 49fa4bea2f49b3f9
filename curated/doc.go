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

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with Errorf(), which takes a formatting pattern and
// placeholder values in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Packages that want callers
// to be able to test for a specific error export the pattern as a constant:
//
//	const ErrResetVector = "cpu: reset vector out of range (%d)"
//
//	err := curated.Errorf(ErrResetVector, 9)
//
//	if curated.Is(err, ErrResetVector) {
//		...
//	}
//
// Is() checks the outermost error only. Has() searches the whole chain, so an
// error wrapped by a higher level package with something like:
//
//	curated.Errorf("machine: %v", err)
//
// will still be found with curated.Has(err, ErrResetVector).
//
// The Error() implementation normalises the message so that adjacent,
// identical parts of the chain are only printed once. Parts are separated by
// the sub-string ": " in the manner described on p239 of "The Go Programming
// Language" (Donovan, Kernighan). For example, the chain:
//
//	cpm: cpm: tests failed
//
// is printed as:
//
//	cpm: tests failed
//
// Curated errors also work with the errors package from the standard library.
// Unwrap() returns the first error value in the placeholder list and
// errors.Is() against a value returned by Sentinel() compares patterns.
package curated
