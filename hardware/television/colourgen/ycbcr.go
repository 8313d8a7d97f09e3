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
	"fmt"
	"image/color"
	"math"

	"github.com/jetsetilly/gopher8563/hardware/television/specification"
)

// Constants of the PAL colour encoding. The luma weights are those of the
// RGB to Y conversion and the chroma factors convert the U and V axes to Cb
// and Cr.
//
//	Y  = 0.2989*R + 0.5866*G + 0.1145*B
//	Cb = B - Y
//	Cr = R - Y
//	U  = 0.493111*Cb
//	V  = 0.877283*Cr
const (
	WeightR = 0.2989
	WeightG = 0.5866
	WeightB = 0.1145

	FactorU = 0.493111
	FactorV = 0.877283
)

// YCbCr is a colour in the YCbCr colour space. Luminance is in the range 0 to
// 256. The chroma components are signed.
type YCbCr struct {
	Y  float64
	Cb float64
	Cr float64
}

func (c YCbCr) String() string {
	return fmt.Sprintf("Y=%.2f Cb=%.2f Cr=%.2f", c.Y, c.Cb, c.Cr)
}

// ComputeYCbCr converts a colour descriptor to YCbCr. The chroma vector is the
// base saturation rotated by the angle of the descriptor plus the phase. Both
// angles are in degrees.
func ComputeYCbCr(d specification.Descriptor, baseSaturation float64, phase float64) YCbCr {
	phi := (d.Angle + phase) * (math.Pi / 180.0)

	c := YCbCr{
		Y:  d.Luminance,
		Cb: baseSaturation * math.Cos(phi),
		Cr: baseSaturation * math.Sin(phi),
	}

	// the chroma vector is in UV units
	c.Cb /= FactorU
	c.Cr /= FactorV

	switch d.Direction {
	case specification.Neutral:
		c.Cb = 0.0
		c.Cr = 0.0
	case specification.Inverted:
		c.Cb = -c.Cb
		c.Cr = -c.Cr
	}

	return c
}

// RGBToYCbCr converts an RGB colour to YCbCr. The conversion is the inverse
// of the conversion in YCbCrToRGB() so a colour converted with neutral knobs
// is unchanged.
//
// Cb and Cr are the plain colour differences B-Y and R-Y. VICE uses the JPEG
// scaled differences (Cb is about 0.564 of B-Y) when it converts an external
// palette, so artifact blends of an external palette differ slightly from
// those of VICE.
func RGBToYCbCr(col color.RGBA) YCbCr {
	r := float64(col.R)
	g := float64(col.G)
	b := float64(col.B)
	y := WeightR*r + WeightG*g + WeightB*b
	return YCbCr{
		Y:  y,
		Cb: b - y,
		Cr: r - y,
	}
}

// gammaCurve applies brightness, contrast and gamma to a colour channel. The
// result is not clamped to the maximum value.
func gammaCurve(raw float64, gamma float64, brightnessOffset float64, contrast float64) float64 {
	v := (raw + brightnessOffset) * contrast
	if v <= 0.0 {
		return 0.0
	}
	return math.Pow(255.0, 1.0-gamma) * math.Pow(v, gamma)
}

// ApplyGamma applies brightness, contrast and gamma to a colour channel. A
// value that is zero or less after the brightness and contrast adjustment is
// always zero. The result is in the range 0 to 255.
func ApplyGamma(raw float64, gamma float64, brightnessOffset float64, contrast float64) float64 {
	return min(gammaCurve(raw, gamma, brightnessOffset, contrast), 255.0)
}

// YCbCrToRGB converts a YCbCr colour to RGB using the adjustments. Saturation,
// contrast and gamma are factors (1.0 is neutral) and brightness is an offset
// added to each channel.
func YCbCrToRGB(c YCbCr, saturation, brightness, contrast, gamma float64) color.RGBA {
	return YCbCrToRGBTint(c, saturation, brightness, contrast, gamma, 0.0)
}

// YCbCrToRGBTint is the same as YCbCrToRGB but with a tint offset added to the
// Cr component before the saturation is applied.
func YCbCrToRGBTint(c YCbCr, saturation, brightness, contrast, gamma, tint float64) color.RGBA {
	cb := c.Cb * saturation
	cr := (c.Cr + tint) * saturation

	b := cb + c.Y
	r := cr + c.Y
	g := c.Y - (WeightB/WeightG)*cb - (WeightR/WeightG)*cr

	return color.RGBA{
		R: channel(ApplyGamma(r, gamma, brightness, contrast)),
		G: channel(ApplyGamma(g, gamma, brightness, contrast)),
		B: channel(ApplyGamma(b, gamma, brightness, contrast)),
		A: 255,
	}
}

// round to nearest and clamp to the range of a byte
func channel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
