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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// particular pattern. For example:
//
//	e := curated.Errorf("vdc: snapshot: unsupported version (%d)", v)
//
//	if curated.Is(e, "vdc: snapshot: unsupported version (%d)") {
//		fmt.Println("true")
//	}
//
// Patterns that callers are expected to test for should be exported as string
// constants by the package that produces them. For example, the colourgen
// package exports PaletteEntryCount.
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(colourgen.PaletteEntryCount, n, 16, 256)
//	f := curated.Errorf("palette: %v", e)
//
//	curated.Has(f, colourgen.PaletteEntryCount) // true
//	curated.Is(f, colourgen.PaletteEntryCount)  // false
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For the purposes of this package we think of
// chains as being composed of parts separted by the sub-string ': ' as
// suggested on p239 of "The Go Programming Language" (Donovan, Kernighan).
// For example:
//
//	palette: palette: file not found
//
// is normalised to:
//
//	palette: file not found
//
// Curated errors also implement Unwrap() so they can be used with the
// errors.Is() and errors.As() functions of the standard library.
package curated
