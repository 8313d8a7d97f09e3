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

package specification_test

import (
	"testing"

	"github.com/jetsetilly/gopher8563/curated"
	"github.com/jetsetilly/gopher8563/hardware/television/specification"
	"github.com/jetsetilly/gopher8563/test"
)

func TestLookup(t *testing.T) {
	for _, id := range specification.ChipList {
		c, err := specification.Lookup(id)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, c.ID, id)
	}

	c, err := specification.Lookup(" vic-ii ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.ID, "VICII")

	_, err = specification.Lookup("TIA")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, specification.UnknownChip))
}

func TestArtifactThreshold(t *testing.T) {
	c := specification.ChipVICII
	c.ArtifactThreshold = 0
	test.ExpectEquality(t, c.Threshold(), specification.DefaultArtifactThreshold)
	test.ExpectSuccess(t, c.ArtifactAllowed())

	c.ArtifactThreshold = 8
	test.ExpectEquality(t, c.Threshold(), 8)
	test.ExpectFailure(t, c.ArtifactAllowed())
}

func TestBindings(t *testing.T) {
	for _, c := range []specification.Chip{specification.ChipVDC, specification.ChipVICII} {
		test.ExpectEquality(t, c.NumColors(), 16, c.ID)
		test.ExpectEquality(t, c.ArtifactThreshold, 16, c.ID)
		test.ExpectSuccess(t, c.ArtifactAllowed(), c.ID)
	}
	test.ExpectEquality(t, len(specification.ChipVDC.Native), 16)
	test.ExpectEquality(t, specification.ChipVICII.Native == nil, true)
}

func TestVDCDescriptors(t *testing.T) {
	d := specification.ChipVDC.Descriptors

	// black, greys and white have no chroma
	for _, i := range []int{0, 1, 14, 15} {
		test.ExpectEquality(t, d[i].Direction, specification.Neutral, d[i].Name)
	}
	test.ExpectEquality(t, d[0].Luminance, 0.0)
	test.ExpectApproximate(t, d[15].Luminance, 255.0, 0.001)

	// blue lies on the positive cb axis
	test.ExpectEquality(t, d[2].Direction, specification.Normal)
	test.ExpectWithin(t, d[2].Angle, 0.0, 30.0)

	// red is in the positive cr half of the colour wheel
	test.ExpectEquality(t, d[8].Direction, specification.Normal)
	test.ExpectEquality(t, d[8].Angle > 0, true)
}
