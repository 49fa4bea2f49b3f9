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

package instructions

// Category is the group to which an instruction belongs.
type Category int

// List of valid Category values.
const (
	DataTransfer Category = iota
	Arithmetic
	Logical
	Stack
	Branch
	IO
	Control
)

func (c Category) String() string {
	switch c {
	case DataTransfer:
		return "Data Transfer"
	case Arithmetic:
		return "Arithmetic"
	case Logical:
		return "Logical"
	case Stack:
		return "Stack"
	case Branch:
		return "Branch"
	case IO:
		return "IO"
	case Control:
		return "Control"
	}
	return "unknown category"
}
