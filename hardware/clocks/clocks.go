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

// Package clocks defines the constant values that define the speed of the
// clocks in the C128 and the fixed-point type used to measure scanline
// lengths in CPU cycles.
//
// The VDC runs from its own 16MHz dot clock. The host scheduler counts
// cycles of the 1MHz CPU clock so the length of a VDC scanline is measured in
// sixteenths of a CPU cycle. That quantity is not always a whole number of
// cycles, which is why the Fixed type and the Accumulator exist.
package clocks

// Speed of the CPU clock in MHz.
const (
	PAL  = 0.985248
	NTSC = 1.022727
)

// Speed of the VDC dot clock in MHz.
const VDC = 16.0

// DotsPerCycle is the number of VDC dot clocks in one CPU clock. The two
// clocks are derived from different crystals but they are close enough to
// 16:1 for the purposes of the emulation.
const DotsPerCycle = 16
