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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a method of handling program modes (and sub-modes) and
// allows different flags for each mode.
//
// Arguments are first given to the Modes type with NewArgs(). Parse() is then
// called with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "IMAGE", "INVADERS", "PERFORMANCE")
//	p, err := md.Parse()
//
// If the first argument after any flags matches one of the sub-modes then the
// Mode() function will return that mode. Otherwise the first sub-mode in the
// list is the default.
//
// Flags for the selected mode are added after a call to NewMode(). Parse() is
// then called again to consume those flags:
//
//	md.NewMode()
//	org := md.AddAddress("org", 0x0100, "load address of the image")
//	p, err = md.Parse()
//	switch p {
//	case modalflag.ParseError:
//		return err
//	case modalflag.ParseHelp:
//		return nil
//	}
//
// Modes can be chained as deeply as required. All sub-mode comparisons are
// case insensitive.
package modalflag
