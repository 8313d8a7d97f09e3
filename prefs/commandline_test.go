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
package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopher8563/prefs"
	"github.com/jetsetilly/gopher8563/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.DemandEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// the unused entries are returned sorted by key with normalised spacing
	for _, c := range []struct {
		prefs    string
		expected string
	}{
		{"vdc.color.gamma::2200", "vdc.color.gamma::2200"},
		{"   vdc.color.gamma::  2200 ", "vdc.color.gamma::2200"},
		{"vdc.color.tint::10; vdc.color.blur::true", "vdc.color.blur::true; vdc.color.tint::10"},
		{"vdc.color.tint", ""},
		{"vdc.color.tint;vdc.color.blur::true", "vdc.color.blur::true"},
		{"vdc.color.tint::1::2", ""},
	} {
		prefs.PushCommandLineStack(c.prefs)
		test.ExpectEquality(t, prefs.PopCommandLineStack(), c.expected, c.prefs)
	}

	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestCommandLineConsumed(t *testing.T) {
	prefs.PushCommandLineStack("vdc.color.gamma::2200;vdc.color.blur")

	ok, _ := prefs.GetCommandLinePref("vdc.color.blur")
	test.ExpectFailure(t, ok)

	ok, v := prefs.GetCommandLinePref("vdc.color.gamma")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "2200")

	// a value can only be read once
	ok, _ = prefs.GetCommandLinePref("vdc.color.gamma")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineGroups(t *testing.T) {
	prefs.PushCommandLineStack("vdc.color.gamma::2200")
	prefs.PushCommandLineStack("vdc.color.tint::10")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the most recent group is visible
	ok, _ := prefs.GetCommandLinePref("vdc.color.gamma")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "vdc.color.tint::10")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "vdc.color.gamma::2200")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
