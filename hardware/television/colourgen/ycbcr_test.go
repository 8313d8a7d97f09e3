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

package colourgen_test

import (
	"image/color"
	"testing"

	"github.com/jetsetilly/gopher8563/hardware/television/colourgen"
	"github.com/jetsetilly/gopher8563/hardware/television/specification"
	"github.com/jetsetilly/gopher8563/test"
)

func TestComputeYCbCr(t *testing.T) {
	d := specification.Descriptor{Luminance: 128, Angle: 0, Direction: specification.Normal}
	c := colourgen.ComputeYCbCr(d, 100, 0)

	test.ExpectEquality(t, c.Y, 128.0)
	test.ExpectWithin(t, c.Cb, 202.80, 0.01)
	test.ExpectEquality(t, c.Cr, 0.0)

	rgb := colourgen.YCbCrToRGB(c, 1.0, 0.0, 1.0, 1.0)
	test.ExpectEquality(t, rgb, color.RGBA{R: 128, G: 88, B: 255, A: 255})

	// the inverted direction negates both chroma components
	d.Angle = 30
	n := colourgen.ComputeYCbCr(d, 100, 15)
	d.Direction = specification.Inverted
	i := colourgen.ComputeYCbCr(d, 100, 15)
	test.ExpectEquality(t, i.Y, n.Y)
	test.ExpectEquality(t, i.Cb, -n.Cb)
	test.ExpectEquality(t, i.Cr, -n.Cr)
}

func TestNeutralDescriptor(t *testing.T) {
	for angle := -180.0; angle <= 180.0; angle += 22.5 {
		for _, sat := range []float64{0, 1, 48, 100, 1000} {
			d := specification.Descriptor{Luminance: 200, Angle: angle, Direction: specification.Neutral}
			c := colourgen.ComputeYCbCr(d, sat, -4.5)
			test.ExpectEquality(t, c.Cb, 0.0)
			test.ExpectEquality(t, c.Cr, 0.0)
			test.ExpectEquality(t, c.Y, 200.0)
		}
	}
}

func TestApplyGamma(t *testing.T) {
	test.ExpectEquality(t, colourgen.ApplyGamma(0, 1.0, 0, 1.0), 0.0)
	for _, g := range []float64{0.0, 0.5, 0.88, 1.0, 2.2, 4.0} {
		test.ExpectEquality(t, colourgen.ApplyGamma(-5, g, 0, 1.0), 0.0, g)
	}

	// a contrast of zero leaves nothing
	test.ExpectEquality(t, colourgen.ApplyGamma(100, 1.0, 0, 0.0), 0.0)

	// neutral settings are a passthrough
	test.ExpectEquality(t, colourgen.ApplyGamma(100, 1.0, 0, 1.0), 100.0)

	// the brightness offset is applied before the contrast
	test.ExpectEquality(t, colourgen.ApplyGamma(100, 1.0, 10, 2.0), 220.0)

	// clamped to the maximum channel value
	test.ExpectEquality(t, colourgen.ApplyGamma(300, 1.0, 0, 1.0), 255.0)

	// gamma does not affect the end points
	test.ExpectWithin(t, colourgen.ApplyGamma(255, 2.2, 0, 1.0), 255.0, 0.0001)
	test.ExpectEquality(t, colourgen.ApplyGamma(128, 2.2, 0, 1.0) < 128, true)
}

func TestRGBRoundTrip(t *testing.T) {
	k := colourgen.NeutralKnobs
	for _, c := range specification.ChipVDC.Native {
		y := colourgen.RGBToYCbCr(c)
		rgb := colourgen.YCbCrToRGB(y, k.SaturationFactor(), k.BrightnessOffset(), k.ContrastFactor(), k.GammaFactor())
		test.ExpectWithin(t, int(rgb.R), int(c.R), 1)
		test.ExpectWithin(t, int(rgb.G), int(c.G), 1)
		test.ExpectWithin(t, int(rgb.B), int(c.B), 1)
	}

	// the colour differences are not scaled
	y := colourgen.RGBToYCbCr(color.RGBA{R: 0, G: 0, B: 255, A: 255})
	test.ExpectApproximate(t, y.Cb, 255.0-y.Y, 0.000001)
	test.ExpectApproximate(t, y.Cr, -y.Y, 0.000001)
}

func TestKnobs(t *testing.T) {
	k := colourgen.NeutralKnobs
	test.ExpectEquality(t, k.SaturationFactor(), 1.0)
	test.ExpectEquality(t, k.BrightnessOffset(), 0.0)
	test.ExpectEquality(t, k.ContrastFactor(), 1.0)
	test.ExpectEquality(t, k.GammaFactor(), 1.0)
	test.ExpectEquality(t, k.ShadeFactor(), 1.0)
	test.ExpectEquality(t, k.TintOffset(), 0.0)
	test.ExpectEquality(t, k.BlurFactor(), 0)
	test.ExpectEquality(t, k.OddLinesOffset(), 180.0)

	k.Brightness = 2000
	test.ExpectEquality(t, k.BrightnessOffset(), 128.0)
	k.Brightness = 0
	test.ExpectEquality(t, k.BrightnessOffset(), -128.0)

	k.Tint = 0
	test.ExpectEquality(t, k.TintOffset(), -25.0)
	k.Tint = 2000
	test.ExpectEquality(t, k.TintOffset(), 25.0)

	k.Blur = 1000
	test.ExpectEquality(t, k.BlurFactor(), 64)
	k.Blur = 500
	test.ExpectEquality(t, k.BlurFactor(), 32)

	k.OddLinesPhase = 0
	test.ExpectEquality(t, k.OddLinesOffset(), 135.0)
}
