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
	"github.com/jetsetilly/gopher8563/hardware/vdc"
)

// pixels of the character data that are displayed for each value of the low
// nibble of R22. a value of seven displays nothing
var displayMask = [16]uint8{
	0x80, 0xc0, 0xe0, 0xf0, 0xf8, 0xfc, 0xfe, 0x00,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// decodeLine writes the colour index of every pixel of the scanline to dst.
// dst must be at least as long as the screen width. colour indexes are in the
// range 0 to 15.
func decodeLine(dst []uint8, mode vdc.VideoMode, ls *vdc.LineState) {
	g := &ls.Geometry
	bg := ls.Background()

	dst = dst[:g.ScreenWidth]
	for i := range dst {
		dst[i] = bg
	}

	if mode == vdc.ModeIdle {
		return
	}

	x := max(g.BorderWidth+g.HSyncShift, 0)

	switch mode {
	case vdc.ModeText:
		for c := 0; c < g.TextColumns; c++ {
			data, fg := textCell(ls, c)
			x = expand(dst, x, g.CharWidth, data, fg, bg)
		}
	case vdc.ModeBitmap:
		for c := 0; c < g.TextColumns; c++ {
			data, fg := bitmapCell(ls, c)
			x = expand(dst, x, g.CharWidth, data, fg, bg)
		}
	}
}

// write the eight bits of data, most significant bit first, followed by
// background pixels for characters wider than eight pixels. returns the
// position of the next character
func expand(dst []uint8, x int, width int, data uint8, fg uint8, bg uint8) int {
	for b := range width {
		if x+b >= len(dst) {
			break
		}
		if b < 8 && data&(0x80>>b) != 0 {
			dst[x+b] = fg
		} else {
			dst[x+b] = bg
		}
	}
	return x + width
}

// the colour attribute of the character cell. the foreground colour in R26 is
// used when attributes are disabled
func attribute(ls *vdc.LineState, c int) uint8 {
	if ls.Attributes() {
		return ls.Peek(ls.AttrAddr + uint16(ls.CharCounter+c))
	}
	return ls.Foreground()
}

func textCell(ls *vdc.LineState, c int) (uint8, uint8) {
	regs := &ls.Registers
	addr := ls.ScreenAddr + uint16(ls.CharCounter+c)
	code := ls.Peek(addr)

	// attribute bits only have meaning when attributes are enabled
	attr := attribute(ls, c)
	fg := attr & 0x0f
	if !ls.Attributes() {
		attr = 0
	}

	l := ls.YCounter

	var data uint8
	if l <= int(regs[vdc.RegCharDisplayed]&0x1f) {
		chargen := ls.ChargenAddr
		if attr&vdc.AttrAltCharset == vdc.AttrAltCharset {
			chargen += 0x1000
		}
		data = ls.Peek(chargen+uint16(code)*uint16(ls.Geometry.BytesPerChar)+uint16(l)) & displayMask[regs[vdc.RegCharWidth]&0x0f]
	}

	if attr&vdc.AttrUnderline == vdc.AttrUnderline && l == int(regs[vdc.RegUnderline]&0x1f) {
		data = 0xff
	}

	// the underline also flashes
	if attr&vdc.AttrFlash == vdc.AttrFlash && !ls.TextBlinkVisible {
		data = 0x00
	}

	if attr&vdc.AttrReverse == vdc.AttrReverse {
		data ^= 0xff
	}
	if ls.ReverseScreen() {
		data ^= 0xff
	}

	if ls.CursorVisible && addr&ls.RAMMask == ls.CursorAddr&ls.RAMMask {
		start := int(regs[vdc.RegCursorStart] & 0x1f)
		end := int(regs[vdc.RegCursorEnd] & 0x1f)
		if l >= start && l < end {
			data ^= 0xff
		}
	}

	return data, fg
}

func bitmapCell(ls *vdc.LineState, c int) (uint8, uint8) {
	data := ls.Peek(ls.ScreenAddr + uint16(ls.BitmapCounter+c))
	if ls.ReverseScreen() {
		data ^= 0xff
	}
	return data, attribute(ls, c) & 0x0f
}

// artifactIndexes converts the colour indexes in the line to indexes into an
// artifact palette of numColours squared entries. each pixel is blended with
// the pixel to its left. the first pixel is blended with itself
func artifactIndexes(dst []uint8, numColours int) {
	if len(dst) == 0 {
		return
	}
	prev := dst[0]
	for i, c := range dst {
		dst[i] = uint8(int(prev)*numColours + int(c))
		prev = c
	}
}
