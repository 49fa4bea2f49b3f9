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

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/gopher8080/logger"
)

// Address of the statsview server.
const Address = "localhost:18080"

const url = "/debug/statsview"

// the statsview configuration is global to the statsview package so we only
// allow one launch per process.
var launch sync.Once

// Launch a new goroutine running the statsview. Subsequent calls to Launch()
// do nothing except print the address of the running server.
func Launch(output io.Writer) {
	launch.Do(func() {
		go func() {
			viewer.SetConfiguration(viewer.WithAddr(Address))
			mgr := statsview.New()
			logger.Logf(logger.Allow, "statsview", "starting server on %s", Address)
			mgr.Start()
		}()
	})

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
}
