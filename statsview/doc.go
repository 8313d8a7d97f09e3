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

// Package statsview launches a local HTTP server showing runtime statistics
// of the emulation. It is only available when the program is built with the
// statsview build tag:
//
//	go build -tags statsview
//
// The statistics are served by github.com/go-echarts/statsview at:
//
//	localhost:18563/debug/statsview
//
// Without the build tag Available() returns false and Launch() does nothing.
package statsview
