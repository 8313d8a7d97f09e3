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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8563/hardware/vdc/geometry"
)

// NumRegisters is the number of registers in the VDC.
const NumRegisters = geometry.NumRegisters

// Register indexes.
const (
	RegHorizTotal       = 0
	RegHorizDisplayed   = 1
	RegHorizSyncPos     = 2
	RegSyncWidth        = 3
	RegVertTotal        = 4
	RegVertAdjust       = 5
	RegVertDisplayed    = 6
	RegVertSyncPos      = 7
	RegInterlace        = 8
	RegCharHeight       = 9
	RegCursorStart      = 10
	RegCursorEnd        = 11
	RegDisplayStartHi   = 12
	RegDisplayStartLo   = 13
	RegCursorPosHi      = 14
	RegCursorPosLo      = 15
	RegLightPenV        = 16
	RegLightPenH        = 17
	RegUpdateAddrHi     = 18
	RegUpdateAddrLo     = 19
	RegAttrStartHi      = 20
	RegAttrStartLo      = 21
	RegCharWidth        = 22
	RegCharDisplayed    = 23
	RegVertScroll       = 24
	RegHorizScroll      = 25
	RegColors           = 26
	RegRowIncrement     = 27
	RegCharBase         = 28
	RegUnderline        = 29
	RegWordCount        = 30
	RegData             = 31
	RegBlockSrcHi       = 32
	RegBlockSrcLo       = 33
	RegDisplayEnableBeg = 34
	RegDisplayEnableEnd = 35
	RegRefresh          = 36
)

// bits of R24
const (
	vertScrollCopy    = 0x80
	vertScrollReverse = 0x40
	vertScrollBlink   = 0x20
)

// bits of R25
const (
	horizScrollBitmap = 0x80
	horizScrollAttr   = 0x40
)

// bit 4 of R28 selects 64K of RAM
const charBaseRAM64K = 0x10

// Sizes of the video RAM. The 16K mask is used when R28 selects the smaller
// RAM type.
const (
	RAMSize    = 0x10000
	ram64KMask = 0xffff
	ram16KMask = 0x3fff
)

// unused bits of each register read back as one
var readMask = [NumRegisters]uint8{
	0x00, 0x00, 0x00, 0x00, 0x00, 0xe0, 0x00, 0x00,
	0xfc, 0xe0, 0x80, 0xe0, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xe0,
	0x00, 0x00, 0x00, 0x00, 0x0f, 0xe0, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xf0,
}

// writing to these registers changes the display geometry
var geometryRegister = [NumRegisters]bool{
	RegHorizTotal:       true,
	RegHorizDisplayed:   true,
	RegHorizSyncPos:     true,
	RegSyncWidth:        true,
	RegVertTotal:        true,
	RegVertAdjust:       true,
	RegVertDisplayed:    true,
	RegVertSyncPos:      true,
	RegInterlace:        true,
	RegCharHeight:       true,
	RegCharWidth:        true,
	RegDisplayEnableBeg: true,
	RegDisplayEnableEnd: true,
}

// writing to these registers changes how lines are drawn but not the geometry
var renderRegister = [NumRegisters]bool{
	RegCursorStart:    true,
	RegCursorEnd:      true,
	RegDisplayStartHi: true,
	RegDisplayStartLo: true,
	RegCursorPosHi:    true,
	RegCursorPosLo:    true,
	RegAttrStartHi:    true,
	RegAttrStartLo:    true,
	RegCharDisplayed:  true,
	RegVertScroll:     true,
	RegHorizScroll:    true,
	RegColors:         true,
	RegRowIncrement:   true,
	RegCharBase:       true,
	RegUnderline:      true,
}

// Write value to the register. Writes to registers outside of the register
// file are ignored.
//
// Writing to a register that affects the display geometry does not change the
// geometry until the start of the next frame.
func (v *VDC) Write(index int, value uint8) {
	if index < 0 || index >= NumRegisters {
		return
	}

	switch index {
	case RegData:
		v.regs[RegData] = value
		v.writeRAM(value)
		return
	case RegWordCount:
		v.regs[RegWordCount] = value
		v.blockOperation(value)
		return
	}

	v.regs[index] = value

	if geometryRegister[index] {
		v.geometryDirty = true
	} else if renderRegister[index] {
		v.forceCacheFlush = true
	}
}

// Read value from the register. Reads from registers outside of the register
// file return 0xff.
func (v *VDC) Read(index int) uint8 {
	if index < 0 || index >= NumRegisters {
		return 0xff
	}

	if index == RegData {
		v.regs[RegData] = v.readRAM()
	}

	return v.regs[index] | readMask[index]
}

// Registers returns a copy of the register file.
func (v *VDC) Registers() geometry.Registers {
	return v.regs
}

func (v *VDC) ramMask() uint16 {
	if v.regs[RegCharBase]&charBaseRAM64K == charBaseRAM64K {
		return ram64KMask
	}
	return ram16KMask
}

func (v *VDC) updateAddress() uint16 {
	return uint16(v.regs[RegUpdateAddrHi])<<8 | uint16(v.regs[RegUpdateAddrLo])
}

func (v *VDC) setUpdateAddress(addr uint16) {
	v.regs[RegUpdateAddrHi] = uint8(addr >> 8)
	v.regs[RegUpdateAddrLo] = uint8(addr)
}

func (v *VDC) blockSource() uint16 {
	return uint16(v.regs[RegBlockSrcHi])<<8 | uint16(v.regs[RegBlockSrcLo])
}

func (v *VDC) setBlockSource(addr uint16) {
	v.regs[RegBlockSrcHi] = uint8(addr >> 8)
	v.regs[RegBlockSrcLo] = uint8(addr)
}

// write to RAM at the update address and advance the update address
func (v *VDC) writeRAM(value uint8) {
	addr := v.updateAddress()
	v.ram[addr&v.ramMask()] = value
	v.setUpdateAddress(addr + 1)
}

// read from RAM at the update address and advance the update address
func (v *VDC) readRAM() uint8 {
	addr := v.updateAddress()
	value := v.ram[addr&v.ramMask()]
	v.setUpdateAddress(addr + 1)
	return value
}

// block fill or block copy count bytes. a count of zero is 256 bytes
func (v *VDC) blockOperation(count uint8) {
	n := int(count)
	if n == 0 {
		n = 256
	}

	mask := v.ramMask()
	dst := v.updateAddress()

	if v.regs[RegVertScroll]&vertScrollCopy == vertScrollCopy {
		src := v.blockSource()
		var d uint8
		for range n {
			d = v.ram[src&mask]
			v.ram[dst&mask] = d
			src++
			dst++
		}
		v.setBlockSource(src)

		// the data register holds the last byte copied
		v.regs[RegData] = d
	} else {
		d := v.regs[RegData]
		for range n {
			v.ram[dst&mask] = d
			dst++
		}
	}

	v.setUpdateAddress(dst)
}

// Peek returns the value in video RAM without affecting the update address.
func (v *VDC) Peek(addr uint16) uint8 {
	return v.ram[addr&v.ramMask()]
}

// Poke sets the value in video RAM without affecting the update address.
func (v *VDC) Poke(addr uint16, value uint8) {
	v.ram[addr&v.ramMask()] = value
}

// RegistersString returns the register file as a multi-line string.
func (v *VDC) RegistersString() string {
	var s strings.Builder
	for i, r := range v.regs {
		s.WriteString(fmt.Sprintf("R%02d=%02x", i, r))
		if i%8 == 7 || i == len(v.regs)-1 {
			s.WriteString("\n")
		} else {
			s.WriteString(" ")
		}
	}
	return s.String()
}
