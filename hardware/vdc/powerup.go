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

import "github.com/jetsetilly/gopher8563/hardware/vdc/geometry"

// KernalNTSC are the register values written by the C128 kernal on an NTSC
// machine. 80 columns and 25 rows of 8x8 characters with attributes. The
// screen is at 0x0000, attributes at 0x0800 and the character set at 0x2000.
var KernalNTSC = geometry.Registers{
	0x7e, 0x50, 0x66, 0x49, 0x20, 0x00, 0x19, 0x1d,
	0x00, 0x07, 0x60, 0x07, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x08, 0x00, 0x78, 0x08,
	0x20, 0x47, 0xf0, 0x00, 0x2f, 0x07, 0x00, 0x00,
	0x00, 0x00, 0x7d, 0x64, 0xf5,
}

// KernalPAL are the register values written by the C128 kernal on a PAL
// machine. The same as KernalNTSC except for the vertical timing.
var KernalPAL = func() geometry.Registers {
	r := KernalNTSC
	r[RegVertTotal] = 0x26
	r[RegVertSyncPos] = 0x20
	return r
}()

// WriteRegisters writes every register in order, skipping the registers that
// access video RAM.
func (v *VDC) WriteRegisters(regs geometry.Registers) {
	for i, r := range regs {
		switch i {
		case RegWordCount, RegData:
			continue
		}
		v.Write(i, r)
	}
}
