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

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8563/resources"
	"github.com/jetsetilly/gopher8563/test"
)

func TestJoinPath(t *testing.T) {
	base := t.TempDir()
	t.Setenv("GOPHER8563_RESOURCES", base)

	p, err := resources.JoinPath("palettes", "vdc.vpl")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(base, "palettes", "vdc.vpl"))

	// directory has been created but not the file
	info, err := os.Stat(filepath.Join(base, "palettes"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	_, err = os.Stat(p)
	test.ExpectFailure(t, err)

	// base path is not prepended twice
	q, err := resources.JoinPath(p)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q, p)
}
