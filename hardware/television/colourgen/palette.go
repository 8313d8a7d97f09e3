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

	"github.com/jetsetilly/gopher8563/hardware/television/specification"
)

// DefaultArtifactThreshold is the largest number of colours for which an
// artifact palette is created by BuildPalette().
const DefaultArtifactThreshold = specification.DefaultArtifactThreshold

// BuildPalette creates the RGB palette for the colour descriptors.
//
// If artifact is true and there are no more than DefaultArtifactThreshold
// descriptors then the palette has the square of the number of descriptors.
// Entry i*N+j is the colour seen when a dot of colour j follows a dot of
// colour i: the chroma of the two colours is averaged and the luminance is
// that of colour j.
func BuildPalette(descriptors []specification.Descriptor, baseSaturation float64, phase float64, knobs Knobs, artifact bool) []color.RGBA {
	entries := make([]YCbCr, len(descriptors))
	for i, d := range descriptors {
		entries[i] = ComputeYCbCr(d, baseSaturation, phase)
	}
	knobs.Artifact = artifact
	return buildPalette(entries, knobs, DefaultArtifactThreshold)
}

// buildPalette creates the RGB palette from a list of YCbCr colours.
func buildPalette(entries []YCbCr, knobs Knobs, threshold int) []color.RGBA {
	sat := knobs.SaturationFactor()
	bri := knobs.BrightnessOffset()
	con := knobs.ContrastFactor()
	gam := knobs.GammaFactor()
	tin := knobs.TintOffset()

	n := len(entries)

	if !knobs.Artifact || n > threshold {
		pal := make([]color.RGBA, n)
		for i, e := range entries {
			pal[i] = YCbCrToRGBTint(e, sat, bri, con, gam, tin)
		}
		return pal
	}

	pal := make([]color.RGBA, n*n)
	for i, a := range entries {
		for j, b := range entries {
			// entries[j] is copied so the luminance is that of j
			b.Cb = (b.Cb + a.Cb) * 0.5
			b.Cr = (b.Cr + a.Cr) * 0.5
			pal[i*n+j] = YCbCrToRGBTint(b, sat, bri, con, gam, tin)
		}
	}

	return pal
}
