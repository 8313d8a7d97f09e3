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

package vdc

// VideoMode is the mode used to draw a scanline.
type VideoMode int

// List of valid VideoMode values.
const (
	ModeText VideoMode = iota
	ModeBitmap
	ModeIdle
)

func (m VideoMode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeBitmap:
		return "bitmap"
	case ModeIdle:
		return "idle"
	}
	return "unknown mode"
}
