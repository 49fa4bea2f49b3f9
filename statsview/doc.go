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

// Package statsview provides a HTTP server running locally offering runtime
// statistics of the emulator process. The underlying functionality is
// provided by "github.com/go-echarts/statsview".
//
// The server is launched by the -stats option of the RUN and INVADERS modes.
// After launch, graphical statistics will be viewable at:
//
//	localhost:18080/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:18080/debug/pprof/
package statsview
