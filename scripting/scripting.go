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

// Package scripting runs Lua scripts against a VDC instance. Scripts can write
// and read registers, access video RAM, change the colour knobs and advance
// the chip by scanlines or whole frames.
//
// The functions available to a script are held in two tables. The vdc table:
//
//	vdc.write(reg, value)    vdc.read(reg)
//	vdc.poke(addr, value)    vdc.peek(addr)
//	vdc.reset()              vdc.kernal()
//	vdc.lines(n)             vdc.frames(n)
//	vdc.line()               vdc.frame()
//	vdc.mode()               vdc.geometry()
//
// And the colour table:
//
//	colour.set(knob, value)  colour.get(knob)
//	colour.artifact(bool)    colour.palette()
//
// The global function log(msg) writes to the central logger.
package scripting

import (
	"fmt"
	"os"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/gopher8563/curated"
	"github.com/jetsetilly/gopher8563/hardware/scheduler"
	"github.com/jetsetilly/gopher8563/hardware/television/colourgen"
	"github.com/jetsetilly/gopher8563/hardware/vdc"
	"github.com/jetsetilly/gopher8563/logger"
	"github.com/jetsetilly/gopher8563/prefs"
)

// Sentinal error patterns.
const (
	ScriptError = "scripting: %v"
	ScriptFile  = "scripting: file: %v"
)

// maximum number of scanlines in a frame. used to stop a frame that never
// ends from running forever
const maxLinesPerFrame = 1024

// Harness connects a Lua interpreter to a VDC.
type Harness struct {
	state *lua.LState

	sched   *scheduler.Scheduler
	chip    *vdc.VDC
	colours *colourgen.ColourGen

	knobs map[string]*prefs.Int
}

// NewHarness is the preferred method of initialisation for the Harness type.
// The colours argument can be nil, in which case the colour table is not
// available to scripts.
func NewHarness(sched *scheduler.Scheduler, chip *vdc.VDC, colours *colourgen.ColourGen) *Harness {
	h := &Harness{
		state:   lua.NewState(),
		sched:   sched,
		chip:    chip,
		colours: colours,
	}

	h.state.SetGlobal("log", h.state.NewFunction(h.log))

	t := h.state.NewTable()
	h.state.SetFuncs(t, map[string]lua.LGFunction{
		"write":    h.write,
		"read":     h.read,
		"poke":     h.poke,
		"peek":     h.peek,
		"reset":    h.reset,
		"kernal":   h.kernal,
		"lines":    h.lines,
		"frames":   h.frames,
		"line":     h.line,
		"frame":    h.frame,
		"mode":     h.mode,
		"geometry": h.geometry,
	})
	h.state.SetGlobal("vdc", t)

	if colours != nil {
		h.knobs = map[string]*prefs.Int{
			"saturation":    &colours.Saturation,
			"brightness":    &colours.Brightness,
			"contrast":      &colours.Contrast,
			"gamma":         &colours.Gamma,
			"scanlineshade": &colours.ScanlineShade,
			"tint":          &colours.Tint,
			"blur":          &colours.Blur,
			"oddlinesphase": &colours.OddLinesPhase,
		}

		t := h.state.NewTable()
		h.state.SetFuncs(t, map[string]lua.LGFunction{
			"set":      h.setKnob,
			"get":      h.getKnob,
			"artifact": h.artifact,
			"palette":  h.palette,
			"defaults": h.defaults,
		})
		h.state.SetGlobal("colour", t)
	}

	return h
}

// Close the Lua interpreter.
func (h *Harness) Close() {
	h.state.Close()
}

// Run the Lua script.
func (h *Harness) Run(script string) error {
	err := h.state.DoString(script)
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunFile runs the Lua script in the named file.
func (h *Harness) RunFile(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf(ScriptFile, err)
	}
	logger.Logf(logger.Allow, "scripting", "running %s", filename)
	return h.Run(string(b))
}

// Global returns the value of a global variable as a string. Useful for
// inspecting the result of a script.
func (h *Harness) Global(name string) string {
	return h.state.GetGlobal(name).String()
}

// RunFrames advances the chip to the start of the frame n frames from now.
func (h *Harness) RunFrames(n int) {
	for range n {
		h.sched.Step()
		for i := 0; i < maxLinesPerFrame && h.chip.Line() != 0; i++ {
			h.sched.Step()
		}
	}
}

func checkByte(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, fmt.Sprintf("value out of range (%d)", v))
	}
	return uint8(v)
}

func (h *Harness) log(L *lua.LState) int {
	logger.Log(logger.Allow, "scripting", L.CheckString(1))
	return 0
}

func (h *Harness) write(L *lua.LState) int {
	h.chip.Write(L.CheckInt(1), checkByte(L, 2))
	return 0
}

func (h *Harness) read(L *lua.LState) int {
	L.Push(lua.LNumber(h.chip.Read(L.CheckInt(1))))
	return 1
}

func (h *Harness) poke(L *lua.LState) int {
	h.chip.Poke(uint16(L.CheckInt(1)), checkByte(L, 2))
	return 0
}

func (h *Harness) peek(L *lua.LState) int {
	L.Push(lua.LNumber(h.chip.Peek(uint16(L.CheckInt(1)))))
	return 1
}

func (h *Harness) reset(L *lua.LState) int {
	h.chip.Reset()
	return 0
}

func (h *Harness) kernal(L *lua.LState) int {
	h.chip.WriteRegisters(vdc.KernalNTSC)
	return 0
}

func (h *Harness) lines(L *lua.LState) int {
	n := L.OptInt(1, 1)
	for range n {
		h.sched.Step()
	}
	return 0
}

func (h *Harness) frames(L *lua.LState) int {
	h.RunFrames(L.OptInt(1, 1))
	return 0
}

func (h *Harness) line(L *lua.LState) int {
	L.Push(lua.LNumber(h.chip.Line()))
	return 1
}

func (h *Harness) frame(L *lua.LState) int {
	L.Push(lua.LNumber(h.chip.Frame()))
	return 1
}

func (h *Harness) mode(L *lua.LState) int {
	L.Push(lua.LString(h.chip.Mode().String()))
	return 1
}

func (h *Harness) geometry(L *lua.LState) int {
	g := h.chip.Geometry()
	t := L.NewTable()
	L.SetField(t, "screen_width", lua.LNumber(g.ScreenWidth))
	L.SetField(t, "screen_height", lua.LNumber(g.ScreenHeight))
	L.SetField(t, "active_width", lua.LNumber(g.ActiveWidth))
	L.SetField(t, "active_height", lua.LNumber(g.ActiveHeight))
	L.SetField(t, "border_width", lua.LNumber(g.BorderWidth))
	L.SetField(t, "border_height", lua.LNumber(g.BorderHeight))
	L.SetField(t, "first_line", lua.LNumber(g.FirstDisplayedLine))
	L.SetField(t, "last_line", lua.LNumber(g.LastDisplayedLine))
	L.SetField(t, "char_height", lua.LNumber(g.CharHeight))
	L.SetField(t, "char_width", lua.LNumber(g.CharWidth))
	L.SetField(t, "cycles_per_line", lua.LNumber(g.CyclesPerLine.Float()))
	L.Push(t)
	return 1
}

func (h *Harness) knob(L *lua.LState) *prefs.Int {
	name := strings.ToLower(L.CheckString(1))
	k, ok := h.knobs[name]
	if !ok {
		L.ArgError(1, fmt.Sprintf("unknown knob (%s)", name))
	}
	return k
}

func (h *Harness) setKnob(L *lua.LState) int {
	k := h.knob(L)
	if err := k.Set(L.CheckInt(2)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (h *Harness) getKnob(L *lua.LState) int {
	L.Push(lua.LNumber(h.knob(L).Value()))
	return 1
}

func (h *Harness) artifact(L *lua.LState) int {
	if err := h.colours.Artifact.Set(L.CheckBool(1)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// revert every knob to its default value
func (h *Harness) defaults(L *lua.LState) int {
	h.colours.SetDefaults()
	return 0
}

// the palette as a table of "RRGGBB" strings. lua tables are indexed from one
func (h *Harness) palette(L *lua.LState) int {
	tab := h.colours.Refresh()
	t := L.NewTable()
	for _, c := range tab.Palette {
		t.Append(lua.LString(fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)))
	}
	L.Push(t)
	return 1
}
