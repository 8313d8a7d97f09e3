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
	"github.com/jetsetilly/gopher8563/hardware/vdc/geometry"
)

// Attribute bits in attribute memory. The lower nibble is the foreground
// colour.
const (
	AttrAltCharset = 0x80
	AttrReverse    = 0x40
	AttrUnderline  = 0x20
	AttrFlash      = 0x10
)

// LineState is the state of the chip for a single scanline. It is a copy of
// the chip's state and so is not affected by later changes to the chip.
//
// The exception is the RAM field, which refers to the chip's video RAM. It
// must not be modified and its content is only valid for the duration of the
// DrawLine() call.
type LineState struct {
	// the scanline being drawn and the number of frames since reset
	Line  int
	Frame int

	// the scanline is inside the displayed window
	Visible bool

	// the scanline is outside of the active display area
	Idle bool

	// scanline within the character row
	YCounter int

	// memory offsets from the screen and attribute addresses
	CharCounter   int
	BitmapCounter int

	// addresses latched at the start of the frame
	ScreenAddr  uint16
	AttrAddr    uint16
	ChargenAddr uint16
	CursorAddr  uint16

	CursorVisible    bool
	TextBlinkVisible bool

	Registers geometry.Registers
	Geometry  geometry.Geometry

	RAM     *[RAMSize]uint8
	RAMMask uint16
}

// Peek returns the byte in video RAM at the address.
func (ls *LineState) Peek(addr uint16) uint8 {
	if ls.RAM == nil {
		return 0
	}
	return ls.RAM[addr&ls.RAMMask]
}

// Bitmap returns true if the chip is in bitmap mode.
func (ls *LineState) Bitmap() bool {
	return ls.Registers[RegHorizScroll]&horizScrollBitmap == horizScrollBitmap
}

// Attributes returns true if attribute memory is used for colour and text
// attributes.
func (ls *LineState) Attributes() bool {
	return ls.Registers[RegHorizScroll]&horizScrollAttr == horizScrollAttr
}

// ReverseScreen returns true if the whole screen is drawn in reverse.
func (ls *LineState) ReverseScreen() bool {
	return ls.Registers[RegVertScroll]&vertScrollReverse == vertScrollReverse
}

// Foreground returns the foreground colour set in R26.
func (ls *LineState) Foreground() uint8 {
	return ls.Registers[RegColors] >> 4
}

// Background returns the background colour set in R26.
func (ls *LineState) Background() uint8 {
	return ls.Registers[RegColors] & 0x0f
}

// LineState returns the state of the chip for the next scanline.
func (v *VDC) LineState() LineState {
	visible := v.line >= v.geom.FirstDisplayedLine && v.line <= v.geom.LastDisplayedLine
	return v.lineState(visible, v.inIdle(v.line))
}

func (v *VDC) lineState(visible bool, idle bool) LineState {
	return LineState{
		Line:             v.line,
		Frame:            v.frame,
		Visible:          visible,
		Idle:             idle,
		YCounter:         v.ycounter,
		CharCounter:      v.charCounter,
		BitmapCounter:    v.bitmapCounter,
		ScreenAddr:       v.screenAddr,
		AttrAddr:         v.attrAddr,
		ChargenAddr:      v.chargenAddr,
		CursorAddr:       v.cursorAddr,
		CursorVisible:    v.CursorVisible(),
		TextBlinkVisible: v.textBlink.visible,
		Registers:        v.regs,
		Geometry:         v.geom,
		RAM:              &v.ram,
		RAMMask:          v.ramMask(),
	}
}
