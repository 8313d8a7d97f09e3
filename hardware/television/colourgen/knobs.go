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

import "fmt"

// Knobs is a copy of the tunable values that control the colour pipeline. The
// integer values are scaled by 1000, so 1000 is the neutral value for the
// factors.
type Knobs struct {
	Saturation    int
	Brightness    int
	Contrast      int
	Gamma         int
	ScanlineShade int

	// the tint is added to the Cr component. 1000 is no tint
	Tint int

	// amount of horizontal blur applied by the renderer. 0 is no blur
	Blur int

	// phase offset of odd lines. 1000 is the neutral setting, which gives
	// the 180 degree line alternation of PAL
	OddLinesPhase int

	// blend the chroma of adjacent colours
	Artifact bool
}

// DefaultKnobs are the values used when a ColourGen is created.
var DefaultKnobs = Knobs{
	Saturation:    1000,
	Brightness:    1000,
	Contrast:      1000,
	Gamma:         880,
	ScanlineShade: 667,
	Tint:          1000,
	Blur:          500,
	OddLinesPhase: 1250,
	Artifact:      false,
}

// NeutralKnobs make no adjustment to the colours.
var NeutralKnobs = Knobs{
	Saturation:    1000,
	Brightness:    1000,
	Contrast:      1000,
	Gamma:         1000,
	ScanlineShade: 1000,
	Tint:          1000,
	OddLinesPhase: 1000,
}

func (k Knobs) String() string {
	return fmt.Sprintf("sat=%d bri=%d con=%d gam=%d shade=%d tint=%d blur=%d phase=%d artifact=%v",
		k.Saturation, k.Brightness, k.Contrast, k.Gamma, k.ScanlineShade,
		k.Tint, k.Blur, k.OddLinesPhase, k.Artifact)
}

// SaturationFactor returns the saturation as a factor.
func (k Knobs) SaturationFactor() float64 {
	return float64(k.Saturation) / 1000.0
}

// BrightnessOffset returns the brightness as an offset added to each channel.
func (k Knobs) BrightnessOffset() float64 {
	return float64(k.Brightness-1000) * (128.0 / 1000.0)
}

// ContrastFactor returns the contrast as a factor.
func (k Knobs) ContrastFactor() float64 {
	return float64(k.Contrast) / 1000.0
}

// GammaFactor returns the gamma as a factor.
func (k Knobs) GammaFactor() float64 {
	return float64(k.Gamma) / 1000.0
}

// ShadeFactor returns the brightness factor of the scanlines between
// rasterlines.
func (k Knobs) ShadeFactor() float64 {
	return float64(k.ScanlineShade) / 1000.0
}

// TintOffset returns the offset added to the Cr component. The neutral value
// of 1000 gives an offset of zero.
func (k Knobs) TintOffset() float64 {
	return float64(k.Tint)*(50.0/2000.0) - 25.0
}

// BlurFactor returns the weight of the neighbouring pixels out of 256.
func (k Knobs) BlurFactor() int {
	return 64 * k.Blur / 1000
}

// OddLinesOffset returns the phase offset in degrees of odd lines.
func (k Knobs) OddLinesOffset() float64 {
	return float64(k.OddLinesPhase)/(2000.0/90.0) + (180.0 - 45.0)
}
