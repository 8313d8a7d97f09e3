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
	"bufio"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8563/curated"
)

// Sentinal error patterns returned by the palette loader.
const (
	PaletteFile       = "palette: %v"
	PaletteSyntax     = "palette: line %d: %v"
	PaletteEntryCount = "palette: %d entries (expected %d or %d)"
)

// LoadPalette reads a palette in the VPL text format. Each entry is a line of
// three or four hexadecimal values: red, green, blue and an optional dither
// value which is ignored. Blank lines and everything after a # character are
// ignored.
//
//	# black
//	00 00 00 0
//
// The palette must have exactly the expected number of entries, or the square
// of that number in which case it is an artifact palette.
func LoadPalette(r io.Reader, expected int) ([]color.RGBA, error) {
	var pal []color.RGBA

	scanner := bufio.NewScanner(r)
	var ln int
	for scanner.Scan() {
		ln++

		s, _, _ := strings.Cut(scanner.Text(), "#")
		f := strings.Fields(s)
		if len(f) == 0 {
			continue
		}
		if len(f) < 3 || len(f) > 4 {
			return nil, curated.Errorf(PaletteSyntax, ln, "expected three or four values")
		}

		var v [3]uint8
		for i := range v {
			n, err := strconv.ParseUint(f[i], 16, 8)
			if err != nil {
				return nil, curated.Errorf(PaletteSyntax, ln, err)
			}
			v[i] = uint8(n)
		}

		pal = append(pal, color.RGBA{R: v[0], G: v[1], B: v[2], A: 255})
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(PaletteFile, err)
	}

	if len(pal) != expected && len(pal) != expected*expected {
		return nil, curated.Errorf(PaletteEntryCount, len(pal), expected, expected*expected)
	}

	return pal, nil
}

// LoadPaletteFile opens the named file and reads it with LoadPalette().
func LoadPaletteFile(path string, expected int) ([]color.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(PaletteFile, err)
	}
	defer f.Close()
	return LoadPalette(f, expected)
}

// SavePalette writes the palette in the format read by LoadPalette(). The
// names are written as comments if they are supplied.
func SavePalette(w io.Writer, pal []color.RGBA, names []string) error {
	b := bufio.NewWriter(w)
	for i, c := range pal {
		if i < len(names) {
			b.WriteString("# ")
			b.WriteString(names[i])
			b.WriteString("\n")
		}
		b.WriteString(strings.ToUpper(hex2(c.R) + " " + hex2(c.G) + " " + hex2(c.B) + " 0\n"))
	}
	if err := b.Flush(); err != nil {
		return curated.Errorf(PaletteFile, err)
	}
	return nil
}

func hex2(v uint8) string {
	s := strconv.FormatUint(uint64(v), 16)
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
