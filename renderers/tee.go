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
	"image/color"

	"github.com/jetsetilly/gopher8563/hardware/vdc"
	"github.com/jetsetilly/gopher8563/hardware/vdc/geometry"
)

// Tee forwards every call to each of its renderers in turn.
type Tee []vdc.Renderer

// Resize implements the vdc.Renderer interface.
func (t Tee) Resize(g geometry.Geometry) {
	for _, r := range t {
		r.Resize(g)
	}
}

// SetPalette implements the vdc.Renderer interface.
func (t Tee) SetPalette(p []color.RGBA) {
	for _, r := range t {
		r.SetPalette(p)
	}
}

// InvalidateCache implements the vdc.Renderer interface.
func (t Tee) InvalidateCache() {
	for _, r := range t {
		r.InvalidateCache()
	}
}

// Repaint implements the vdc.Renderer interface.
func (t Tee) Repaint() {
	for _, r := range t {
		r.Repaint()
	}
}

// DrawLine implements the vdc.Renderer interface.
func (t Tee) DrawLine(mode vdc.VideoMode, ls vdc.LineState) {
	for _, r := range t {
		r.DrawLine(mode, ls)
	}
}
