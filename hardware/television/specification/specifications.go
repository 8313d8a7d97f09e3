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

// Package specification contains the colour definitions of the video chips
// supported by the colour generator. Each chip is described by a Chip
// binding: the list of colour descriptors, the base saturation and phase
// offset of the chip's colour encoder and the largest palette for which
// composite artifact blending is possible.
package specification

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/jetsetilly/gopher8563/curated"
)

// UnknownChip is the error pattern returned by Lookup().
const UnknownChip = "specification: unknown chip (%s)"

// DefaultArtifactThreshold is used by a Chip with a zero ArtifactThreshold.
const DefaultArtifactThreshold = 16

// Direction of the chroma vector of a colour descriptor.
type Direction int

// List of valid Direction values. The values are the factor applied to the
// chroma components.
const (
	Inverted Direction = -1
	Neutral  Direction = 0
	Normal   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Inverted:
		return "inverted"
	case Neutral:
		return "neutral"
	case Normal:
		return "normal"
	}
	return "unknown direction"
}

// Descriptor defines one colour produced by a video chip in terms of the
// analogue signal the chip generates.
type Descriptor struct {
	Name string

	// luminance in the range 0 to 256
	Luminance float64

	// angle of the chroma vector in degrees
	Angle float64

	Direction Direction
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%-12s lum=%6.2f angle=%7.2f %s", d.Name, d.Luminance, d.Angle, d.Direction)
}

// Chip binds the colour descriptors of a video chip to the constants of the
// chip's colour encoder.
type Chip struct {
	ID string

	Descriptors []Descriptor

	// the digital RGB values produced by the chip. chips with a digital
	// output use these values as the source of the palette rather than the
	// descriptors. nil for chips with an analogue output
	Native []color.RGBA

	// base saturation and phase offset (in degrees) of the colour encoder
	BaseSaturation float64
	Phase          float64

	// the largest number of colours for which a composite artifact palette
	// can be generated. the artifact palette has the square of the number of
	// colours so the threshold keeps the size of the table reasonable. zero
	// means DefaultArtifactThreshold
	ArtifactThreshold int
}

func (c Chip) String() string {
	return c.ID
}

// NumColors returns the number of colours in the chip's direct palette.
func (c Chip) NumColors() int {
	return len(c.Descriptors)
}

// Threshold returns the artifact threshold of the chip, applying the default
// if the ArtifactThreshold field is zero.
func (c Chip) Threshold() int {
	if c.ArtifactThreshold <= 0 {
		return DefaultArtifactThreshold
	}
	return c.ArtifactThreshold
}

// ArtifactAllowed returns true if the chip supports composite artifact
// blending.
func (c Chip) ArtifactAllowed() bool {
	return len(c.Descriptors) <= c.Threshold()
}

// ChipList is the list of chip IDs that can be used with Lookup().
var ChipList = []string{"VDC", "VICII"}

// Lookup returns the chip binding for the ID. The ID is case insensitive.
func Lookup(id string) (Chip, error) {
	switch strings.ToUpper(strings.TrimSpace(id)) {
	case "VDC", "8563", "8568":
		return ChipVDC, nil
	case "VICII", "VIC-II", "VIC2", "6567", "6569":
		return ChipVICII, nil
	}
	return Chip{}, curated.Errorf(UnknownChip, id)
}
