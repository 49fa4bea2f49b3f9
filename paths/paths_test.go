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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8080/paths"
	"github.com/jetsetilly/gopher8080/test"
)

func TestLocalResourcePath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(".gopher8080", 0700))

	test.ExpectEquality(t, paths.ResourcePath("samples", "0.wav"), filepath.Join(".gopher8080", "samples", "0.wav"))
	test.ExpectEquality(t, paths.ResourcePath("samples", ""), filepath.Join(".gopher8080", "samples"))
	test.ExpectEquality(t, paths.ResourcePath(), ".gopher8080")
}

func TestConfigResourcePath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	cnf, err := os.UserConfigDir()
	if err != nil {
		t.Skip("no user config directory")
	}
	test.ExpectEquality(t, paths.ResourcePath("samples"), filepath.Join(cnf, "gopher8080", "samples"))
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("memviz", "cpudiag")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "memviz_cpudiag_"))

	fn = paths.UniqueFilename("memviz", " ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "memviz_2"))
}
