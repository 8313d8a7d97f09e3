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

// Package vdc emulates the raster timing of the MOS 8563 VDC, the 80 column
// video chip of the C128.
//
// The VDC type is driven by a host Scheduler, which calls Tick() once per
// scanline. Tick() advances the raster state by one scanline, hands the line
// to the Renderer and schedules the next call. The length of a scanline is
// not always a whole number of CPU cycles so the delay to the next scanline
// is calculated with a fixed-point accumulator that carries the fractional
// part from one line to the next. Timing therefore never drifts, however long
// the chip runs for.
//
// Register writes never change the display geometry immediately. Writing to a
// register that affects the geometry marks the geometry as dirty and the
// geometry is recalculated at the start of the next frame. The colour tables
// are refreshed at the same point.
//
// The VDC type owns all of its state. Many instances can run side by side
// with the same or different schedulers and renderers.
package vdc
