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

package renderers

import (
	"crypto/sha1"
	"fmt"
	"image/color"

	"github.com/jetsetilly/gopher8563/hardware/television/specification"
	"github.com/jetsetilly/gopher8563/hardware/vdc"
	"github.com/jetsetilly/gopher8563/hardware/vdc/geometry"
)

// Digest is an implementation of the vdc.Renderer interface. It generates a
// SHA-1 value of the image every frame. It does not display the image
// anywhere.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Digest struct {
	digest [sha1.Size]byte

	// the first bytes of the pixels array are reserved for the digest of the
	// previous frame
	pixels []byte

	geom geometry.Geometry

	palette    []color.RGBA
	numColours int
	artifact   bool

	line   []uint8
	drawn  bool
	frames int
}

const pixelDepth = 3

// NewDigest is the preferred method of initialisation for the Digest type.
func NewDigest() *Digest {
	dig := &Digest{
		palette:    specification.ChipVDC.Native,
		numColours: specification.ChipVDC.NumColors(),
	}
	dig.Resize(geometry.Resolve(geometry.Registers{}))
	return dig
}

// Hash returns the digest of the most recently completed frame.
func (dig *Digest) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest sets the digest value to zero.
func (dig *Digest) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Frames returns the number of frames that have contributed to the digest.
func (dig *Digest) Frames() int {
	return dig.frames
}

// Resize implements the vdc.Renderer interface.
func (dig *Digest) Resize(g geometry.Geometry) {
	dig.geom = g
	w := max(g.ScreenWidth, 1)
	h := max(g.ScreenHeight, 1)

	// length of pixels array contains enough room for the previous frames
	// digest value
	dig.pixels = make([]byte, len(dig.digest)+w*h*pixelDepth)
	dig.line = make([]uint8, w)
}

// SetPalette implements the vdc.Renderer interface.
func (dig *Digest) SetPalette(palette []color.RGBA) {
	dig.palette = palette
	dig.artifact = len(palette) == dig.numColours*dig.numColours
}

// InvalidateCache implements the vdc.Renderer interface.
func (dig *Digest) InvalidateCache() {
}

// Repaint implements the vdc.Renderer interface.
func (dig *Digest) Repaint() {
	clear(dig.pixels[len(dig.digest):])
}

// DrawLine implements the vdc.Renderer interface.
func (dig *Digest) DrawLine(mode vdc.VideoMode, ls vdc.LineState) {
	if ls.Line == 0 && dig.drawn {
		// chain fingerprints by copying the value of the last fingerprint
		// to the head of the video data
		copy(dig.pixels, dig.digest[:])
		dig.digest = sha1.Sum(dig.pixels)
		dig.frames++
	}
	dig.drawn = true

	w := len(dig.line)
	if !ls.Visible || ls.Geometry.ScreenWidth > w {
		return
	}

	decodeLine(dig.line, mode, &ls)
	if dig.artifact {
		artifactIndexes(dig.line, dig.numColours)
	}

	// preserve the first few bytes for a chained fingerprint
	i := len(dig.digest) + ls.Line*w*pixelDepth
	if i > len(dig.pixels)-w*pixelDepth {
		return
	}
	for _, c := range dig.line {
		var col color.RGBA
		if int(c) < len(dig.palette) {
			col = dig.palette[c]
		}
		dig.pixels[i] = col.R
		dig.pixels[i+1] = col.G
		dig.pixels[i+2] = col.B
		i += pixelDepth
	}
}
