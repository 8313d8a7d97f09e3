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

package renderers

import (
	"testing"

	"github.com/jetsetilly/gopher8563/hardware/vdc"
	"github.com/jetsetilly/gopher8563/hardware/vdc/geometry"
	"github.com/jetsetilly/gopher8563/test"
)

const (
	screenAddr  = 0x0000
	attrAddr    = 0x0800
	chargenAddr = 0x2000
)

// line state for the first scanline of the first character row with the
// power-up register values
func kernalLine(t *testing.T) (vdc.LineState, *[vdc.RAMSize]uint8) {
	t.Helper()
	var ram [vdc.RAMSize]uint8
	ls := vdc.LineState{
		Visible:          true,
		ScreenAddr:       screenAddr,
		AttrAddr:         attrAddr,
		ChargenAddr:      chargenAddr,
		CursorAddr:       0x07ff,
		CursorVisible:    true,
		TextBlinkVisible: true,
		Registers:        vdc.KernalNTSC,
		Geometry:         geometry.Resolve(vdc.KernalNTSC),
		RAM:              &ram,
		RAMMask:          0x3fff,
	}
	return ls, &ram
}

// the eight pixels of the first character cell
func firstCell(t *testing.T, mode vdc.VideoMode, ls vdc.LineState) []uint8 {
	t.Helper()
	dst := make([]uint8, ls.Geometry.ScreenWidth)
	decodeLine(dst, mode, &ls)
	x := ls.Geometry.BorderWidth + ls.Geometry.HSyncShift
	return dst[x : x+8]
}

func expectCell(t *testing.T, cell []uint8, pattern uint8, fg uint8, bg uint8) {
	t.Helper()
	for b := range 8 {
		if pattern&(0x80>>b) != 0 {
			test.ExpectEquality(t, cell[b], fg, b)
		} else {
			test.ExpectEquality(t, cell[b], bg, b)
		}
	}
}

func TestTextCell(t *testing.T) {
	ls, ram := kernalLine(t)

	// character 1 with foreground colour 5
	ram[screenAddr] = 0x01
	ram[attrAddr] = 0x05
	ram[chargenAddr+16] = 0xa1

	cell := firstCell(t, vdc.ModeText, ls)
	expectCell(t, cell, 0xa1, 5, 0)

	// reverse attribute
	ram[attrAddr] = vdc.AttrReverse | 0x05
	cell = firstCell(t, vdc.ModeText, ls)
	expectCell(t, cell, 0x5e, 5, 0)

	// reverse screen cancels the reverse attribute
	ls.Registers[vdc.RegVertScroll] |= 0x40
	cell = firstCell(t, vdc.ModeText, ls)
	expectCell(t, cell, 0xa1, 5, 0)
	ls.Registers[vdc.RegVertScroll] &^= 0x40

	// alternative character set
	ram[attrAddr] = vdc.AttrAltCharset | 0x03
	ram[chargenAddr+0x1000+16] = 0x18
	cell = firstCell(t, vdc.ModeText, ls)
	expectCell(t, cell, 0x18, 3, 0)
}

func TestTextWithoutAttributes(t *testing.T) {
	ls, ram := kernalLine(t)
	ls.Registers[vdc.RegHorizScroll] &^= 0x40
	ls.Registers[vdc.RegColors] = 0x72

	// the attribute byte is ignored
	ram[screenAddr] = 0x01
	ram[attrAddr] = vdc.AttrReverse | 0x05
	ram[chargenAddr+16] = 0xa1

	cell := firstCell(t, vdc.ModeText, ls)
	expectCell(t, cell, 0xa1, 7, 2)
}

func TestUnderlineAndFlash(t *testing.T) {
	ls, ram := kernalLine(t)
	ram[screenAddr] = 0x01
	ram[attrAddr] = vdc.AttrUnderline | 0x05

	// the underline is on scanline seven
	ls.YCounter = 7
	cell := firstCell(t, vdc.ModeText, ls)
	expectCell(t, cell, 0xff, 5, 0)

	ls.YCounter = 6
	cell = firstCell(t, vdc.ModeText, ls)
	expectCell(t, cell, 0x00, 5, 0)

	// the underline flashes with the character
	ls.YCounter = 7
	ram[attrAddr] = vdc.AttrUnderline | vdc.AttrFlash | 0x05
	ls.TextBlinkVisible = false
	cell = firstCell(t, vdc.ModeText, ls)
	expectCell(t, cell, 0x00, 5, 0)

	ls.TextBlinkVisible = true
	cell = firstCell(t, vdc.ModeText, ls)
	expectCell(t, cell, 0xff, 5, 0)
}

func TestDisplayedScanlines(t *testing.T) {
	ls, ram := kernalLine(t)
	ram[screenAddr] = 0x01
	ram[attrAddr] = 0x05
	ram[chargenAddr+16+3] = 0xff

	ls.YCounter = 3
	cell := firstCell(t, vdc.ModeText, ls)
	expectCell(t, cell, 0xff, 5, 0)

	// scanlines after R23 are blank
	ls.Registers[vdc.RegCharDisplayed] = 2
	cell = firstCell(t, vdc.ModeText, ls)
	expectCell(t, cell, 0x00, 5, 0)
}

func TestDisplayMask(t *testing.T) {
	ls, ram := kernalLine(t)
	ram[screenAddr] = 0x01
	ram[attrAddr] = 0x05
	ram[chargenAddr+16] = 0xff

	ls.Registers[vdc.RegCharWidth] = 0x73
	cell := firstCell(t, vdc.ModeText, ls)
	expectCell(t, cell, 0xf0, 5, 0)

	ls.Registers[vdc.RegCharWidth] = 0x77
	cell = firstCell(t, vdc.ModeText, ls)
	expectCell(t, cell, 0x00, 5, 0)
}

func TestCursor(t *testing.T) {
	ls, ram := kernalLine(t)
	ram[screenAddr] = 0x01
	ram[attrAddr] = 0x05
	ram[chargenAddr+16] = 0xa1

	ls.CursorAddr = screenAddr
	ls.Registers[vdc.RegCursorStart] = 0x00
	ls.Registers[vdc.RegCursorEnd] = 0x07

	cell := firstCell(t, vdc.ModeText, ls)
	expectCell(t, cell, 0x5e, 5, 0)

	// cursor not visible in this frame
	ls.CursorVisible = false
	cell = firstCell(t, vdc.ModeText, ls)
	expectCell(t, cell, 0xa1, 5, 0)

	// scanline outside of the cursor
	ls.CursorVisible = true
	ls.Registers[vdc.RegCursorStart] = 0x01
	cell = firstCell(t, vdc.ModeText, ls)
	expectCell(t, cell, 0xa1, 5, 0)
}

func TestBitmapCell(t *testing.T) {
	ls, ram := kernalLine(t)
	ls.Registers[vdc.RegHorizScroll] |= 0x80
	ls.BitmapCounter = 80
	ls.CharCounter = 0

	ram[screenAddr+80] = 0x81
	ram[attrAddr] = 0x0c

	cell := firstCell(t, vdc.ModeBitmap, ls)
	expectCell(t, cell, 0x81, 12, 0)

	ls.Registers[vdc.RegVertScroll] |= 0x40
	cell = firstCell(t, vdc.ModeBitmap, ls)
	expectCell(t, cell, 0x7e, 12, 0)
}

func TestIdleLine(t *testing.T) {
	ls, ram := kernalLine(t)
	ls.Registers[vdc.RegColors] = 0xf6
	ram[screenAddr] = 0x01
	ram[chargenAddr+16] = 0xff

	dst := make([]uint8, ls.Geometry.ScreenWidth)
	decodeLine(dst, vdc.ModeIdle, &ls)
	for x, c := range dst {
		test.ExpectEquality(t, c, uint8(6), x)
	}
}

func TestArtifactIndexes(t *testing.T) {
	line := []uint8{5, 5, 0, 3}
	artifactIndexes(line, 16)
	test.ExpectEquality(t, line[0], uint8(5*16+5))
	test.ExpectEquality(t, line[1], uint8(5*16+5))
	test.ExpectEquality(t, line[2], uint8(5*16+0))
	test.ExpectEquality(t, line[3], uint8(0*16+3))

	artifactIndexes(nil, 16)
}
