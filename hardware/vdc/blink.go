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

// blink counts frames and toggles visibility every frequency frames.
type blink struct {
	counter int
	visible bool
}

// tick is called once per frame. a frequency of zero disables blinking
func (b *blink) tick(frequency int) {
	if frequency <= 0 {
		return
	}

	// reload if the counter is unset or the frequency has been reduced
	if b.counter <= 0 || b.counter > frequency {
		b.counter = frequency
	}

	b.counter--
	if b.counter == 0 {
		b.visible = !b.visible
		b.counter = frequency
	}
}

// cursor modes in bits 5 and 6 of R10
const (
	cursorSteady    = 0
	cursorInvisible = 1
	cursorFast      = 2
	cursorSlow      = 3
)

func (v *VDC) cursorMode() int {
	return int(v.regs[RegCursorStart]>>5) & 0x03
}

// the number of frames between cursor blinks. zero if the cursor doesn't
// blink
func (v *VDC) cursorFrequency() int {
	switch v.cursorMode() {
	case cursorFast:
		return 16
	case cursorSlow:
		return 32
	}
	return 0
}

// the number of frames between text blinks
func (v *VDC) textFrequency() int {
	if v.regs[RegVertScroll]&vertScrollBlink == vertScrollBlink {
		return 32
	}
	return 16
}

// CursorVisible returns true if the cursor is currently visible.
func (v *VDC) CursorVisible() bool {
	switch v.cursorMode() {
	case cursorSteady:
		return true
	case cursorInvisible:
		return false
	}
	return v.cursorBlink.visible
}

// TextBlinkVisible returns true if characters with the flash attribute are
// currently visible.
func (v *VDC) TextBlinkVisible() bool {
	return v.textBlink.visible
}
