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

// Package registers implements the registers of the 8080 CPU.
//
// The accumulator is an instance of the Register type. The BC, DE and HL pairs
// are instances of the Pair type, which allow the high and low bytes to be
// accessed individually. The flags are stored in the Status type.
//
// Registers do not set the flags themselves. Operations that would affect a
// flag return the relevant bits of information instead and it is up to the
// CPU to decide what to do with them. For example:
//
//	carry, aux := a.Add(v, false)
//	sr.Carry = carry
//	sr.AuxCarry = aux
//	sr.SetZSP(a.Value())
//
// The State type is a snapshot of all the registers and the running state of
// the CPU. It can be copied freely.
package registers
