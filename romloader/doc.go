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

// Package romloader is used to load program and ROM data into the emulator.
// Data can be loaded from local files or from HTTP URLs.
//
// ROMs that were distributed as several chips, such as the four files of the
// Space Invaders ROM set, are loaded by listing every file in address order.
// The data from each file is concatenated.
//
//	ld := romloader.NewLoader("invaders.h", "invaders.g", "invaders.f", "invaders.e")
//	err := ld.Load()
//
// The SHA1 hash of the loaded data is stored in the Hash field. If the Hash
// field is set before calling Load() then the loaded data must match.
package romloader
