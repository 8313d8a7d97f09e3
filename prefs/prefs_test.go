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
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8563/prefs"
	"github.com/jetsetilly/gopher8563/test"
)

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\n"+expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestIntLimits(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))
	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// values outside the limits are clamped
	v.SetLimits(0, 2000)
	test.ExpectSuccess(t, v.Set(3000))
	test.ExpectEquality(t, v.Value(), 2000)
	test.ExpectSuccess(t, v.Set(-1))
	test.ExpectEquality(t, v.Value(), 0)

	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
}

func TestHook(t *testing.T) {
	var v prefs.Int
	var called int
	v.SetHookPost(func(value prefs.Value) error {
		called = value.(int)
		return nil
	})
	test.ExpectSuccess(t, v.Set(1234))
	test.ExpectEquality(t, called, 1234)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestSharedFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpFile(t, fn, "foo :: bar\ntest :: true\n")

	// load into a fresh instance
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var r prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &r))
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, r.Get().(bool), true)
}

func TestCommandLineOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("vdc.color.gamma", &v))
	test.ExpectSuccess(t, v.Set(2200))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("vdc.color.gamma::1000")
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Value(), 1000)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length (using value zero) will not result in
	// cropped string infomration reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

func TestIllegalKey(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("", &v))
	test.ExpectFailure(t, dsk.Add("a :: b", &v))
	test.ExpectSuccess(t, dsk.Add("a", &v))
	test.ExpectFailure(t, dsk.Add("a", &v))
}

func TestRenamedKeys(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")
	data := prefs.WarningBoilerPlate + "\n" +
		"other :: kept\n" +
		"vdc.color.delayloop :: true\n" +
		"vdc.color.oddlinesoffset :: 1000\n" +
		"vdc.color.oddlinesphase :: 500\n" +
		"vdc.color.videostandard :: pal\n"
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0644))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var artifact prefs.Bool
	var phase prefs.Int
	test.ExpectSuccess(t, dsk.Add("vdc.color.artifact", &artifact))
	test.ExpectSuccess(t, dsk.Add("vdc.color.oddlinesphase", &phase))
	test.DemandSuccess(t, dsk.Load())

	// the old key only fills in a missing value
	test.ExpectEquality(t, artifact.Get().(bool), true)
	test.ExpectEquality(t, phase.Value(), 500)

	// old and defunct keys are dropped on save
	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "other :: kept\nvdc.color.artifact :: true\nvdc.color.oddlinesphase :: 500\n")
}

func TestReset(t *testing.T) {
	var b prefs.Bool
	var s prefs.String
	var i prefs.Int

	// without a default the zero value is used
	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, b.Reset())
	test.ExpectEquality(t, b.Get().(bool), false)

	b.SetDefault(true)
	test.ExpectEquality(t, b.Get().(bool), false)
	test.ExpectSuccess(t, b.Reset())
	test.ExpectEquality(t, b.Get().(bool), true)

	s.SetDefault("palette.vpl")
	test.ExpectSuccess(t, s.Set("other.vpl"))
	test.ExpectSuccess(t, s.Reset())
	test.ExpectEquality(t, s.String(), "palette.vpl")

	// the default is clamped by the limits
	i.SetLimits(100, 200)
	test.ExpectSuccess(t, i.Reset())
	test.ExpectEquality(t, i.Value(), 100)
	i.SetDefault(150)
	test.ExpectSuccess(t, i.Reset())
	test.ExpectEquality(t, i.Value(), 150)
	i.SetDefault(1000)
	test.ExpectSuccess(t, i.Reset())
	test.ExpectEquality(t, i.Value(), 200)
}
