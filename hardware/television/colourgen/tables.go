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

package colourgen

import (
	"image/color"
)

// Size of the gamma tables. The input to the table is offset by GammaOffset
// so that the tables can absorb values outside of the 0 to 255 range that
// result from the brightness adjustment.
const (
	GammaTableSize = 256 * 3
	GammaOffset    = 256

	// the shade table has an entry for every half step of input
	ShadeTableSize = GammaTableSize * 2
)

// Tables is the complete set of derived colour tables. A Tables instance is
// never modified once it has been published by the ColourGen.
type Tables struct {
	// increases by one every time the tables are recomputed
	Generation uint64

	// the chip and knob values used to create the tables
	Chip  string
	Knobs Knobs

	// the colour of each palette entry. OddLines is the colour of the entry
	// on odd lines, which differs by the odd lines phase offset
	YCbCr    []YCbCr
	OddLines []YCbCr

	// fixed point tables for each palette entry. Y is scaled by 256 and the
	// chroma tables by the saturation (also scaled by 256). the Cr tables
	// include the tint, which is subtracted rather than added on odd lines
	Y     []int32
	Cb    []int32
	Cr    []int32
	CbOdd []int32
	CrOdd []int32

	// Y premultiplied by the weight of the blurred neighbours (low) and the
	// weight of the center pixel (high). the Y values are offset by 65536 so
	// that the sum is always positive
	YLow  []int32
	YHigh []int32

	// YUV packed into a 24 bit value. each component is in the range 0 to
	// 255 and the chroma components are offset by 128
	YUV []uint32

	// channel value for gamma corrected input offset by GammaOffset
	Gamma [GammaTableSize]uint8

	// the same as the Gamma table but scaled by the scanline shade factor.
	// index (i+GammaOffset)*2 is the shaded value of i and the next entry is
	// the shaded value of i+0.5
	Shade [ShadeTableSize]uint8

	// the RGB palette. has either the same number of entries as YCbCr or the
	// square of that number for an artifact palette
	Palette []color.RGBA

	// true if the palette was loaded from a palette file
	External bool

	// if a palette file was requested but could not be used this is the
	// reason. the palette is the computed palette in that case
	PaletteError error
}

// Artifact returns true if the palette is an artifact palette.
func (t *Tables) Artifact() bool {
	return len(t.Palette) > len(t.YCbCr)
}

// GammaLookup returns the gamma corrected value of v.
func (t *Tables) GammaLookup(v int) uint8 {
	return t.Gamma[clampIndex(v+GammaOffset, GammaTableSize)]
}

// ShadeLookup returns the shaded gamma corrected value of v. The half flag
// selects the value half a step above v.
func (t *Tables) ShadeLookup(v int, half bool) uint8 {
	i := clampIndex(v+GammaOffset, GammaTableSize) * 2
	if half {
		i++
	}
	return t.Shade[i]
}

func clampIndex(i int, size int) int {
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}

// fillYCbCr populates the fixed point tables of the even lines
func (t *Tables) fillYCbCr() {
	n := len(t.YCbCr)
	t.Y = make([]int32, n)
	t.YLow = make([]int32, n)
	t.YHigh = make([]int32, n)
	t.Cb = make([]int32, n)
	t.Cr = make([]int32, n)
	t.YUV = make([]uint32, n)

	lf := int32(t.Knobs.BlurFactor())
	hf := 256 - (lf << 1)
	sat := float64(t.Knobs.Saturation) * (256.0 / 1000.0)
	tin := float64(int32(t.Knobs.TintOffset()))

	for i, e := range t.YCbCr {
		y := int32(e.Y * 256.0)
		t.Y[i] = y
		t.YLow[i] = (y + 65536) * lf
		t.YHigh[i] = (y + 65536) * hf
		t.Cb[i] = int32(e.Cb * sat)
		t.Cr[i] = int32((e.Cr + tin) * sat)
		t.YUV[i] = uint32(byteOf(e.Y*255/256+0.5))<<16 |
			uint32(byteOf(FactorU*e.Cb*255/256+128.5))<<8 |
			uint32(byteOf(FactorV*e.Cr*255/256+128.5))
	}
}

// fillOddLines populates the fixed point tables of the odd lines
func (t *Tables) fillOddLines() {
	n := len(t.OddLines)
	t.CbOdd = make([]int32, n)
	t.CrOdd = make([]int32, n)

	sat := float64(t.Knobs.Saturation) * (256.0 / 1000.0)
	tin := float64(int32(t.Knobs.TintOffset()))

	for i, e := range t.OddLines {
		t.CbOdd[i] = int32(e.Cb * sat)
		t.CrOdd[i] = int32((e.Cr - tin) * sat)
	}
}

// fillGamma populates the gamma and shade tables
func (t *Tables) fillGamma() {
	bri := t.Knobs.BrightnessOffset()
	con := t.Knobs.ContrastFactor()
	gam := t.Knobs.GammaFactor()
	scn := t.Knobs.ShadeFactor()

	for i := range GammaTableSize {
		v := gammaCurve(float64(i-GammaOffset), gam, bri, con)
		t.Gamma[i] = byteOf(v)
		t.Shade[i*2] = byteOf(v * scn)

		v = gammaCurve(float64(i-GammaOffset)+0.5, gam, bri, con)
		t.Shade[i*2+1] = byteOf(v * scn)
	}
}

// truncate and clamp to an unsigned byte
func byteOf(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
