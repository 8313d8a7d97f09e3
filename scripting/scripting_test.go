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

package scripting_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8563/curated"
	"github.com/jetsetilly/gopher8563/hardware/scheduler"
	"github.com/jetsetilly/gopher8563/hardware/television/colourgen"
	"github.com/jetsetilly/gopher8563/hardware/television/specification"
	"github.com/jetsetilly/gopher8563/hardware/vdc"
	"github.com/jetsetilly/gopher8563/renderers"
	"github.com/jetsetilly/gopher8563/scripting"
	"github.com/jetsetilly/gopher8563/test"
)

func newHarness(t *testing.T) (*scripting.Harness, *vdc.VDC, *colourgen.ColourGen) {
	t.Helper()
	t.Setenv("GOPHER8563_RESOURCES", t.TempDir())

	cg, err := colourgen.NewColourGen(specification.ChipVDC)
	test.DemandSuccess(t, err)

	s := scheduler.NewScheduler()
	v := vdc.NewVDC(s, renderers.NewDigest(), cg)
	h := scripting.NewHarness(s, v, cg)
	t.Cleanup(h.Close)

	return h, v, cg
}

func TestRegisters(t *testing.T) {
	h, v, _ := newHarness(t)

	test.DemandSuccess(t, h.Run(`
		vdc.kernal()
		vdc.write(26, 0x1e)
		colours = vdc.read(26)
		masked = vdc.read(5)
		vdc.poke(0x100, 0x55)
		poked = vdc.peek(0x100)
	`))

	test.ExpectEquality(t, v.Registers()[vdc.RegColors], uint8(0x1e))
	test.ExpectEquality(t, h.Global("colours"), "30")
	test.ExpectEquality(t, h.Global("masked"), "224")
	test.ExpectEquality(t, h.Global("poked"), "85")
	test.ExpectEquality(t, v.Peek(0x100), uint8(0x55))
}

func TestFrames(t *testing.T) {
	h, v, _ := newHarness(t)

	test.DemandSuccess(t, h.Run(`
		vdc.kernal()
		vdc.frames(3)
		frame = vdc.frame()
		line = vdc.line()
		vdc.lines(40)
		mode = vdc.mode()
		g = vdc.geometry()
		height = g.screen_height
		cycles = g.cycles_per_line
	`))

	// the pending tick after frames(3) is line 0, which starts the next frame
	test.ExpectEquality(t, h.Global("frame"), "3")
	test.ExpectEquality(t, v.Frame(), 4)
	test.ExpectEquality(t, h.Global("line"), "0")
	test.ExpectEquality(t, v.Line(), 40)
	test.ExpectEquality(t, h.Global("mode"), "text")
	test.ExpectEquality(t, h.Global("height"), "264")
	test.ExpectEquality(t, h.Global("cycles"), "63.5")
}

func TestKnobs(t *testing.T) {
	h, _, cg := newHarness(t)

	test.DemandSuccess(t, h.Run(`
		colour.set("saturation", 1500)
		colour.set("Tint", 5000)
		colour.artifact(true)
		tint = colour.get("tint")
		pal = colour.palette()
		entries = #pal
		first = pal[1]
	`))

	test.ExpectEquality(t, cg.Saturation.Value(), 1500)

	// the knob is clamped to its limit
	test.ExpectEquality(t, h.Global("tint"), "2000")
	test.ExpectEquality(t, h.Global("entries"), "256")
	test.ExpectEquality(t, len(h.Global("first")), 6)

	err := h.Run(`colour.set("sharpness", 10)`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, scripting.ScriptError))

	test.DemandSuccess(t, h.Run(`
		colour.defaults()
		saturation = colour.get("saturation")
		entries = #colour.palette()
	`))
	test.ExpectEquality(t, h.Global("saturation"), "1000")
	test.ExpectEquality(t, h.Global("entries"), "16")
}

func TestScriptErrors(t *testing.T) {
	h, _, _ := newHarness(t)

	err := h.Run(`vdc.write(1, 256)`)
	test.ExpectSuccess(t, curated.Is(err, scripting.ScriptError))

	err = h.Run(`this is not lua`)
	test.ExpectSuccess(t, curated.Is(err, scripting.ScriptError))

	err = h.RunFile(filepath.Join(t.TempDir(), "missing.lua"))
	test.ExpectSuccess(t, curated.Is(err, scripting.ScriptFile))
}

func TestRunFile(t *testing.T) {
	h, v, _ := newHarness(t)

	fn := filepath.Join(t.TempDir(), "script.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("vdc.kernal()\nvdc.reset()\nlog('done')\n"), 0o644))
	test.DemandSuccess(t, h.RunFile(fn))

	// the reset clears the registers written by kernal()
	test.ExpectEquality(t, v.Registers()[vdc.RegHorizTotal], uint8(0))
}
