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

// Package renderers contains reference implementations of the vdc.Renderer
// interface.
//
// The Image type draws every frame to an image.RGBA and can save the most
// recently completed frame as a PNG or BMP file. The Digest type produces a
// SHA-1 hash of every frame, chained with the hash of the previous frame, and
// is used to compare the output of one emulation run with another.
//
// Both types decode the scanline in the same way. Text mode and bitmap mode
// scanlines are decoded from video RAM using the registers and latched
// addresses in the vdc.LineState. Idle scanlines are filled with the
// background colour. Scanlines outside of the displayed window are not drawn.
package renderers
