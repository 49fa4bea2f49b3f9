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

// Package version reports the application name and the version of the
// build. The version number is set by the linker:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher8080/version.number=v0.1.0"
//
// Builds without a number report "unreleased" if vcs information is present
// in the binary and "local" otherwise.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher8080"

// set by the linker
var number string

var revision string
var version string

// Version returns the version string, the revision string and whether this is
// a numbered release.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// Title returns the application name with the version appended.
func Title() string {
	return fmt.Sprintf("%s (%s)", ApplicationName, version)
}

func init() {
	version, revision = fromBuildInfo(number, readSettings())
}

func readSettings() map[string]string {
	settings := make(map[string]string)
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			settings[s.Key] = s.Value
		}
	}
	return settings
}

// fromBuildInfo decides on the version and revision strings from the linker
// number and the build settings.
func fromBuildInfo(number string, settings map[string]string) (string, string) {
	var v, r string

	r = settings["vcs.revision"]
	if r == "" {
		r = "no revision information"
	} else if settings["vcs.modified"] == "true" {
		r = fmt.Sprintf("%s+dirty", r)
	}

	switch {
	case number != "":
		v = number
	case settings["vcs"] != "":
		v = "unreleased"
	default:
		v = "local"
	}

	return v, r
}
