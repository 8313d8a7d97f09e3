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

package clocks

import "fmt"

// Fixed is a 16.16 fixed point number of CPU cycles.
type Fixed uint32

// FixedShift is the number of fractional bits in a Fixed value.
const FixedShift = 16

// FixedOne is the Fixed value of exactly one cycle.
const FixedOne Fixed = 1 << FixedShift

const fixedMask = uint64(FixedOne - 1)

// FixedFromDots returns the number of CPU cycles taken by the specified
// number of VDC dot clocks. Any multiple of 1/16 is exactly representable so
// the conversion is lossless.
func FixedFromDots(dots int) Fixed {
	if dots < 0 {
		dots = 0
	}
	return Fixed((uint64(dots) << FixedShift) / DotsPerCycle)
}

// Whole returns the integer part of the value.
func (f Fixed) Whole() int64 {
	return int64(f >> FixedShift)
}

// Float returns the value as a float. Should only be used for presentation.
func (f Fixed) Float() float64 {
	return float64(f) / float64(FixedOne)
}

func (f Fixed) String() string {
	return fmt.Sprintf("%.4f", f.Float())
}

// Accumulator converts a sequence of fractional scanline lengths into whole
// cycle delays. The fraction that doesn't fit in a whole cycle is carried to
// the next call to Next(). This means that the total of all delays returned by
// Next() is never more than one cycle away from the exact total, no matter
// how many times it is called.
type Accumulator struct {
	// fractional cycles carried from the previous call to Next()
	frac uint32
}

// Next adds rate to the accumulator and returns the number of whole cycles
// that are now due.
func (a *Accumulator) Next(rate Fixed) int64 {
	v := uint64(a.frac) + uint64(rate)
	a.frac = uint32(v & fixedMask)
	return int64(v >> FixedShift)
}

// Fraction returns the carried fraction in 16.16 fixed point.
func (a *Accumulator) Fraction() uint32 {
	return a.frac
}

// SetFraction restores a previously saved fraction. Only the fractional bits
// are used.
func (a *Accumulator) SetFraction(frac uint32) {
	a.frac = uint32(uint64(frac) & fixedMask)
}

// Reset the accumulator to zero.
func (a *Accumulator) Reset() {
	a.frac = 0
}
