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

// luminance levels of the VIC-II
const (
	lumn0 = 0.0
	lumn1 = 56.0
	lumn2 = 74.0
	lumn3 = 92.0
	lumn4 = 117.0
	lumn5 = 128.0
	lumn6 = 163.0
	lumn7 = 199.0
	lumn8 = 256.0
)

// chroma angles of the VIC-II
const (
	angleRed = 112.5
	angleGrn = -135.0
	angleBlu = 0.0
	angleOrn = -45.0
	angleBrn = 157.5
)

// ChipVICII is the binding for the MOS 6567/6569 VIC-II.
var ChipVICII = Chip{
	ID: "VICII",
	Descriptors: []Descriptor{
		{Name: "Black", Luminance: lumn0, Angle: angleOrn, Direction: Neutral},
		{Name: "White", Luminance: lumn8, Angle: angleBrn, Direction: Neutral},
		{Name: "Red", Luminance: lumn2, Angle: angleRed, Direction: Normal},
		{Name: "Cyan", Luminance: lumn6, Angle: angleRed, Direction: Inverted},
		{Name: "Purple", Luminance: lumn3, Angle: angleGrn, Direction: Inverted},
		{Name: "Green", Luminance: lumn5, Angle: angleGrn, Direction: Normal},
		{Name: "Blue", Luminance: lumn1, Angle: angleBlu, Direction: Normal},
		{Name: "Yellow", Luminance: lumn7, Angle: angleBlu, Direction: Inverted},
		{Name: "Orange", Luminance: lumn3, Angle: angleOrn, Direction: Inverted},
		{Name: "Brown", Luminance: lumn1, Angle: angleBrn, Direction: Normal},
		{Name: "Light Red", Luminance: lumn5, Angle: angleRed, Direction: Normal},
		{Name: "Dark Grey", Luminance: lumn2, Angle: angleRed, Direction: Neutral},
		{Name: "Medium Grey", Luminance: lumn4, Angle: angleGrn, Direction: Neutral},
		{Name: "Light Green", Luminance: lumn7, Angle: angleGrn, Direction: Normal},
		{Name: "Light Blue", Luminance: lumn4, Angle: angleBlu, Direction: Normal},
		{Name: "Light Grey", Luminance: lumn6, Angle: angleBlu, Direction: Neutral},
	},
	BaseSaturation:    48.0,
	Phase:             -4.5,
	ArtifactThreshold: 16,
}
