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
	"image/color"

	"github.com/jetsetilly/gopher8563/hardware/vdc/geometry"
)

// Scheduler is the host's cycle scheduler. The tick function must be called
// once, after delay cycles, with the number of cycles the call is late by.
type Scheduler interface {
	Schedule(delay int64, tick func(offset int64))
}

// Renderer implementations draw the scanlines produced by the VDC.
//
// Resize(), SetPalette(), InvalidateCache() and Repaint() are only ever called
// at the start of a frame, before the first line of the frame is drawn.
type Renderer interface {
	// the display geometry has changed
	Resize(geometry.Geometry)

	// new palette. the palette has either the number of colours of the chip
	// or the square of that number when it is an artifact palette
	SetPalette([]color.RGBA)

	// any cached line data is no longer valid
	InvalidateCache()

	// every line of the next frame must be redrawn
	Repaint()

	// draw the scanline described by the LineState. called for every
	// scanline including those outside of the displayed area
	DrawLine(mode VideoMode, state LineState)
}
