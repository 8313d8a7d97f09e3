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

package vdc

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8563/hardware/clocks"
	"github.com/jetsetilly/gopher8563/hardware/television/colourgen"
	"github.com/jetsetilly/gopher8563/hardware/vdc/geometry"
	"github.com/jetsetilly/gopher8563/logger"
)

// VDC emulates the raster timing of the 8563 video chip.
type VDC struct {
	// used to identify the chip in the log
	label string
	quiet bool

	scheduler Scheduler
	renderer  Renderer

	// may be nil in which case the renderer is never sent a palette
	colours *colourgen.ColourGen

	regs geometry.Registers
	ram  [RAMSize]uint8

	geom geometry.Geometry

	// current scanline
	line int

	// the number of frames since reset
	frame int

	// scanline within the character row. always in the range 0 to
	// geom.CharHeight
	ycounter int

	// offsets from the screen start address for text mode and for bitmap
	// mode. the text mode counter advances once per character row and the
	// bitmap counter once per scanline
	charCounter   int
	bitmapCounter int

	mode VideoMode

	cursorBlink blink
	textBlink   blink

	// addresses latched on the first displayed line of the frame
	screenAddr  uint16
	attrAddr    uint16
	chargenAddr uint16
	cursorAddr  uint16

	geometryDirty   bool
	forceResize     bool
	forceRepaint    bool
	forceCacheFlush bool

	// generation of the colour tables last sent to the renderer
	paletteGeneration uint64

	// fractional cycles carried between scanlines
	acc clocks.Accumulator

	// incremented on reset. ticks scheduled before the reset are ignored
	epoch int
}

// NewVDC is the preferred method of initialisation for the VDC type. The
// colours argument can be nil.
//
// The chip is reset and the first line event is scheduled.
func NewVDC(scheduler Scheduler, renderer Renderer, colours *colourgen.ColourGen) *VDC {
	v := &VDC{
		label:     "vdc",
		scheduler: scheduler,
		renderer:  renderer,
		colours:   colours,
	}
	v.Reset()
	return v
}

// SetLabel sets the tag used when the chip writes to the log. Useful when
// there is more than one chip.
func (v *VDC) SetLabel(label string) {
	v.label = label
}

// SetLogging turns logging on or off for the chip.
func (v *VDC) SetLogging(allow bool) {
	v.quiet = !allow
}

// AllowLogging implements the logger.Permission interface.
func (v *VDC) AllowLogging() bool {
	return !v.quiet
}

func (v *VDC) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("line=%d ", v.line))
	s.WriteString(fmt.Sprintf("frame=%d ", v.frame))
	s.WriteString(fmt.Sprintf("y=%d ", v.ycounter))
	s.WriteString(fmt.Sprintf("char=%04x ", v.charCounter))
	s.WriteString(fmt.Sprintf("bitmap=%04x ", v.bitmapCounter))
	s.WriteString(fmt.Sprintf("mode=%s", v.mode))
	return s.String()
}

// Reset the chip. All registers are cleared and the first line event is
// scheduled with no delay. Any line event that was scheduled before the reset
// will be ignored when it is delivered.
func (v *VDC) Reset() {
	v.regs = geometry.Registers{}
	v.line = 0
	v.frame = 0
	v.ycounter = 0
	v.charCounter = 0
	v.bitmapCounter = 0
	v.mode = ModeIdle
	v.cursorBlink = blink{visible: true}
	v.textBlink = blink{visible: true}
	v.screenAddr = 0
	v.attrAddr = 0
	v.chargenAddr = 0
	v.cursorAddr = 0
	v.geom = geometry.Resolve(v.regs)
	v.geometryDirty = true
	v.forceResize = false
	v.forceRepaint = true
	v.forceCacheFlush = false
	v.paletteGeneration = 0
	v.acc.Reset()
	v.epoch++

	logger.Log(v, v.label, "reset")

	v.schedule(0)
}

func (v *VDC) schedule(delay int64) {
	epoch := v.epoch
	v.scheduler.Schedule(delay, func(offset int64) {
		if epoch == v.epoch {
			v.Tick(offset)
		}
	})
}

// Geometry returns the current display geometry. The geometry can differ
// from the geometry described by the registers until the start of the next
// frame.
func (v *VDC) Geometry() geometry.Geometry {
	return v.geom
}

// Mode returns the mode that will be used to draw the next scanline.
func (v *VDC) Mode() VideoMode {
	return v.mode
}

// Line returns the scanline that will be drawn next.
func (v *VDC) Line() int {
	return v.line
}

// Frame returns the number of frames since reset.
func (v *VDC) Frame() int {
	return v.frame
}

// YCounter returns the scanline within the current character row.
func (v *VDC) YCounter() int {
	return v.ycounter
}

// Counters returns the text mode and bitmap mode memory counters.
func (v *VDC) Counters() (int, int) {
	return v.charCounter, v.bitmapCounter
}

// GeometryDirty returns true if the geometry will be recalculated at the start
// of the next frame.
func (v *VDC) GeometryDirty() bool {
	return v.geometryDirty
}

// SetPaletteDirty forces the palette to be sent to the renderer at the start
// of the next frame, even if the colour tables have not changed.
func (v *VDC) SetPaletteDirty() {
	v.paletteGeneration = 0
}

// Tick advances the chip by one scanline. It is called by the scheduler with
// the number of cycles the call is late by. The next call is always scheduled
// before Tick returns.
func (v *VDC) Tick(offset int64) {
	g := &v.geom

	visible := v.line >= g.FirstDisplayedLine && v.line <= g.LastDisplayedLine
	idle := v.inIdle(v.line)

	// screen addresses are latched once per frame
	if v.line == g.FirstDisplayedLine {
		v.latch()
	}

	if v.line == 0 {
		v.startFrame()
	}

	v.renderer.DrawLine(v.mode, v.lineState(visible, idle))

	if visible && !idle {
		stride := int(v.regs[RegHorizDisplayed]) + int(v.regs[RegRowIncrement])
		if v.ycounter == g.CharHeight {
			v.charCounter += stride
		}
		v.bitmapCounter += stride
		v.ycounter = (v.ycounter + 1) % (g.CharHeight + 1)
	}

	v.line++
	if v.line >= g.ScreenHeight {
		v.line = 0
	}

	v.mode = v.nextMode()

	v.schedule(v.acc.Next(g.CyclesPerLine) - offset)
}

// returns true if the line is outside of the active display area
func (v *VDC) inIdle(line int) bool {
	return line < v.geom.BorderHeight || line >= v.geom.BorderHeight+v.geom.ActiveHeight
}

// the mode for the next scanline
func (v *VDC) nextMode() VideoMode {
	if v.inIdle(v.line) {
		return ModeIdle
	}

	// the chip stops fetching character data once the scanline within the
	// row passes the number of displayed scanlines. a value of zero means
	// that no scanlines are displayed
	displayed := int(v.regs[RegCharDisplayed] & 0x1f)
	if displayed == 0 || v.ycounter > displayed {
		return ModeIdle
	}

	if v.regs[RegHorizScroll]&horizScrollBitmap == horizScrollBitmap {
		return ModeBitmap
	}
	return ModeText
}

func (v *VDC) latch() {
	v.screenAddr = uint16(v.regs[RegDisplayStartHi])<<8 | uint16(v.regs[RegDisplayStartLo])
	v.attrAddr = uint16(v.regs[RegAttrStartHi])<<8 | uint16(v.regs[RegAttrStartLo])
	v.chargenAddr = uint16(v.regs[RegCharBase]&0xe0) << 8
	v.cursorAddr = uint16(v.regs[RegCursorPosHi])<<8 | uint16(v.regs[RegCursorPosLo])
}

// the work done at the start of every frame
func (v *VDC) startFrame() {
	v.frame++
	v.charCounter = 0
	v.bitmapCounter = 0
	v.ycounter = 0

	v.cursorBlink.tick(v.cursorFrequency())
	v.textBlink.tick(v.textFrequency())

	// a change of palette invalidates the render cache. the flush is
	// suppressed below if the geometry has also changed
	if v.colours != nil {
		t := v.colours.Refresh()
		if t.Generation != v.paletteGeneration {
			v.paletteGeneration = t.Generation
			v.renderer.SetPalette(t.Palette)
			v.forceCacheFlush = true
		}
	}

	if v.geometryDirty {
		v.geom = geometry.Resolve(v.regs)
		v.geometryDirty = false
		v.forceResize = true
		v.forceRepaint = true

		// resizing invalidates the render cache anyway
		v.forceCacheFlush = false

		logger.Logf(v, v.label, "geometry: %s", v.geom)
	} else if v.forceCacheFlush {
		v.renderer.InvalidateCache()
		v.forceCacheFlush = false
	}

	if v.forceResize {
		v.renderer.Resize(v.geom)
		v.forceResize = false
	}

	if v.forceRepaint {
		v.renderer.Repaint()
		v.forceRepaint = false
	}
}
