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

// Package geometry derives the display geometry of the VDC from the values in
// the register file. The Resolve() function is pure: it never touches raster
// state and the same register values always produce the same Geometry.
//
// Degenerate register values are clamped rather than rejected. In particular a
// character height of zero, a displayed area larger than the total area and
// sync positions outside of the frame all produce a usable Geometry.
package geometry

import (
	"fmt"

	"github.com/jetsetilly/gopher8563/hardware/clocks"
)

// NumRegisters is the number of registers in the VDC register file.
const NumRegisters = 37

// Registers is the VDC register file.
type Registers [NumRegisters]uint8

// Hardware limits of the raster. Register values that describe a frame larger
// than these limits are clamped.
const (
	// the largest number of pixels in a scanline, including the border and
	// sync areas
	MaxScreenWidth = 856

	// the largest number of scanlines in a frame
	MaxScreenHeight = 312

	// scanlines before this line are always in the vertical blank
	FirstVisibleLine = 16

	// the last scanline that can ever be displayed
	MaxDisplayedLine = 295
)

// The number of bytes used by each character in the character generator. The
// larger size is required when the character height exceeds 16 scanlines.
const (
	BytesPerCharSmall = 16
	BytesPerCharLarge = 32
)

// register indexes used by the resolver
const (
	regHorizTotal     = 0
	regHorizDisplayed = 1
	regHorizSyncPos   = 2
	regVertTotal      = 4
	regVertAdjust     = 5
	regVertDisplayed  = 6
	regVertSyncPos    = 7
	regCharHeight     = 9
	regCharWidth      = 22
)

// Geometry describes the size of the frame and where within it the active
// display area sits. All sizes are in pixels or scanlines.
type Geometry struct {
	ScreenWidth  int
	ScreenHeight int

	ActiveWidth  int
	ActiveHeight int

	// the border is the number of pixels (or scanlines) between the end of
	// the sync area and the start of the active area
	BorderWidth  int
	BorderHeight int

	// the range of scanlines that will be presented to the renderer. the
	// range is inclusive
	FirstDisplayedLine int
	LastDisplayedLine  int

	// the number of pixels the image must be shifted to center the active
	// area. may be negative
	HSyncShift int

	// value of R9. scanlines per character row is CharHeight+1
	CharHeight int

	// pixel clocks per character and the number of those that are displayed
	CharWidth          int
	CharDisplayedWidth int

	// number of bytes between each character definition in the character
	// generator
	BytesPerChar int

	// number of characters in each row and the number of rows
	TextColumns int
	TextRows    int

	// number of CPU cycles in each scanline
	CyclesPerLine clocks.Fixed
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d (active %dx%d) lines %d-%d %s cycles/line",
		g.ScreenWidth, g.ScreenHeight, g.ActiveWidth, g.ActiveHeight,
		g.FirstDisplayedLine, g.LastDisplayedLine, g.CyclesPerLine)
}

// RowHeight returns the number of scanlines in each character row.
func (g Geometry) RowHeight() int {
	return g.CharHeight + 1
}

// RefreshRate returns the number of frames per second when the CPU is
// clocked at the given rate in MHz.
func (g Geometry) RefreshRate(mhz float64) float32 {
	if g.CyclesPerLine == 0 || g.ScreenHeight == 0 {
		return 0
	}
	return float32(mhz * 1000000 / (g.CyclesPerLine.Float() * float64(g.ScreenHeight)))
}

// Resolve derives the Geometry from the register file.
func Resolve(regs Registers) Geometry {
	var g Geometry

	// vertical
	g.CharHeight = int(regs[regCharHeight] & 0x1f)
	rowHeight := g.CharHeight + 1

	adjust := int(regs[regVertAdjust] & 0x1f)
	rows := int(regs[regVertTotal]) + 1

	g.ScreenHeight = min(rows*rowHeight+adjust, MaxScreenHeight)
	g.ActiveHeight = min(int(regs[regVertDisplayed])*rowHeight, g.ScreenHeight)

	syncRow := int(regs[regVertSyncPos])
	if syncRow <= rows {
		g.BorderHeight = clamp((rows-syncRow)*rowHeight+adjust, 0, g.ScreenHeight-g.ActiveHeight)
	}

	g.LastDisplayedLine = min(g.ScreenHeight-1, MaxDisplayedLine)
	g.FirstDisplayedLine = min(FirstVisibleLine, g.LastDisplayedLine)

	// a screen height of zero is not possible because rowHeight is at least
	// one but the clamp above keeps the invariant regardless
	g.LastDisplayedLine = max(g.LastDisplayedLine, g.FirstDisplayedLine)

	// horizontal
	g.CharWidth = int(regs[regCharWidth]>>4) + 1
	g.CharDisplayedWidth = min(int(regs[regCharWidth]&0x0f)+1, g.CharWidth)

	columns := int(regs[regHorizTotal]) + 1
	g.ScreenWidth = min(columns*g.CharWidth, MaxScreenWidth)
	g.ActiveWidth = min(int(regs[regHorizDisplayed])*g.CharWidth, g.ScreenWidth)
	g.BorderWidth = clamp((columns-int(regs[regHorizSyncPos]))*g.CharWidth, 0, g.ScreenWidth-g.ActiveWidth)
	g.HSyncShift = (g.ScreenWidth-g.ActiveWidth)/2 - g.BorderWidth

	if g.CharHeight < 16 {
		g.BytesPerChar = BytesPerCharSmall
	} else {
		g.BytesPerChar = BytesPerCharLarge
	}

	g.TextColumns = int(regs[regHorizDisplayed])
	g.TextRows = int(regs[regVertDisplayed])

	// the length of the line is not clamped to the screen width. the dot
	// clock keeps running in the sync area whether it is visible or not
	g.CyclesPerLine = max(clocks.FixedFromDots(columns*g.CharWidth), clocks.FixedOne)

	return g
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return max(lo, min(v, hi))
}
