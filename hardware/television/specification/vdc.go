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

package specification

import (
	"image/color"
	"math"
)

// the RGBI output of the 8563 VDC. the intensity bit raises every component
// by a third of the range and dark yellow is brown on most monitors
var vdcRGBI = []color.RGBA{
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	{R: 0x55, G: 0x55, B: 0x55, A: 0xff},
	{R: 0x00, G: 0x00, B: 0xaa, A: 0xff},
	{R: 0x55, G: 0x55, B: 0xff, A: 0xff},
	{R: 0x00, G: 0xaa, B: 0x00, A: 0xff},
	{R: 0x55, G: 0xff, B: 0x55, A: 0xff},
	{R: 0x00, G: 0xaa, B: 0xaa, A: 0xff},
	{R: 0x55, G: 0xff, B: 0xff, A: 0xff},
	{R: 0xaa, G: 0x00, B: 0x00, A: 0xff},
	{R: 0xff, G: 0x55, B: 0x55, A: 0xff},
	{R: 0xaa, G: 0x00, B: 0xaa, A: 0xff},
	{R: 0xff, G: 0x55, B: 0xff, A: 0xff},
	{R: 0xaa, G: 0x55, B: 0x00, A: 0xff},
	{R: 0xff, G: 0xff, B: 0x55, A: 0xff},
	{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

var vdcNames = []string{
	"Black", "Dark Grey", "Dark Blue", "Light Blue",
	"Dark Green", "Light Green", "Dark Cyan", "Light Cyan",
	"Dark Red", "Light Red", "Dark Purple", "Light Purple",
	"Brown", "Yellow", "Light Grey", "White",
}

// ChipVDC is the binding for the MOS 8563/8568 VDC. The chip has a digital
// output and the palette is sourced from the Native RGB values. The
// descriptors are derived from the same values and describe the colour a
// composite monitor would see.
var ChipVDC = Chip{
	ID:                "VDC",
	Native:            vdcRGBI,
	BaseSaturation:    vdcBaseSaturation,
	Phase:             0.0,
	ArtifactThreshold: 16,
}

// the chroma magnitude of the fully saturated RGBI colours is close to this
// value for all six hues
const vdcBaseSaturation = 60.0

func init() {
	ChipVDC.Descriptors = make([]Descriptor, len(vdcRGBI))
	for i, c := range vdcRGBI {
		ChipVDC.Descriptors[i] = describeRGB(vdcNames[i], c)
	}
}

// describeRGB converts an RGB value to a descriptor. Colours with no chroma
// are neutral. The magnitude of the chroma vector is lost.
func describeRGB(name string, c color.RGBA) Descriptor {
	r := float64(c.R)
	g := float64(c.G)
	b := float64(c.B)

	y := 0.2989*r + 0.5866*g + 0.1145*b
	cb := b - y
	cr := r - y

	d := Descriptor{
		Name:      name,
		Luminance: y,
	}

	// undo the scaling applied to each axis by the colour encoder
	u := cb * 0.493111
	v := cr * 0.877283

	if math.Abs(u) < 0.5 && math.Abs(v) < 0.5 {
		d.Direction = Neutral
		return d
	}

	d.Angle = math.Atan2(v, u) * 180 / math.Pi
	d.Direction = Normal

	return d
}
