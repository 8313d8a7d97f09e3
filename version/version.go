// This file is part of Gopher8563.
//
// Gopher8563 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8563 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8563.  If not, see <https://www.gnu.org/licenses/>.
// Package version reports the version of the application. The number is set
// by the linker when building a release and the vcs revision is taken from
// the build information.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher8563"

// set with -ldflags "-X github.com/jetsetilly/gopher8563/version.number=v0.1.0"
var number string

var revision string
var version string

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// A version of "unreleased" means the binary was built from a vcs checkout
// without a version number. A version of "local" means there is no vcs
// information either, which is the case with "go run".
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

func init() {
	version, revision = resolve(number, debug.ReadBuildInfo)
}

func resolve(number string, readBuildInfo func() (*debug.BuildInfo, bool)) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := readBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
