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
	"encoding/binary"

	"github.com/jetsetilly/gopher8563/curated"
	"github.com/jetsetilly/gopher8563/hardware/vdc/geometry"
	"github.com/jetsetilly/gopher8563/logger"
)

// CurrentSnapshotVersion is the version of the snapshot format created by
// Snapshot(). Restore() accepts snapshots up to and including this version.
const CurrentSnapshotVersion = 1

// Sentinal error patterns returned by Restore().
const (
	SnapshotTooShort = "vdc: snapshot: too short (%d bytes)"
	SnapshotVersion  = "vdc: snapshot: unsupported version (%d)"
)

// layout of the snapshot. all values are little-endian
const (
	snapVersion       = 0
	snapRegisters     = snapVersion + 1
	snapLine          = snapRegisters + NumRegisters
	snapFrame         = snapLine + 4
	snapYCounter      = snapFrame + 4
	snapCharCounter   = snapYCounter + 4
	snapBitmapCounter = snapCharCounter + 4
	snapMode          = snapBitmapCounter + 4
	snapCursorBlink   = snapMode + 1
	snapTextBlink     = snapCursorBlink + 5
	snapScreenAddr    = snapTextBlink + 5
	snapAttrAddr      = snapScreenAddr + 2
	snapChargenAddr   = snapAttrAddr + 2
	snapCursorAddr    = snapChargenAddr + 2
	snapFlags         = snapCursorAddr + 2
	snapAccumulator   = snapFlags + 1
	snapRAM           = snapAccumulator + 4
	snapshotSize      = snapRAM + RAMSize
)

// bits in the flags byte
const (
	flagGeometryDirty = 0x01
	flagForceResize   = 0x02
	flagForceRepaint  = 0x04
	flagCacheFlush    = 0x08
)

// Snapshot returns the state of the chip as a versioned binary blob. The
// derived geometry and colour tables are not included because they can be
// recreated from the registers.
func (v *VDC) Snapshot() []byte {
	buf := make([]byte, snapshotSize)

	buf[snapVersion] = CurrentSnapshotVersion
	copy(buf[snapRegisters:], v.regs[:])
	binary.LittleEndian.PutUint32(buf[snapLine:], uint32(v.line))
	binary.LittleEndian.PutUint32(buf[snapFrame:], uint32(v.frame))
	binary.LittleEndian.PutUint32(buf[snapYCounter:], uint32(v.ycounter))
	binary.LittleEndian.PutUint32(buf[snapCharCounter:], uint32(v.charCounter))
	binary.LittleEndian.PutUint32(buf[snapBitmapCounter:], uint32(v.bitmapCounter))
	buf[snapMode] = uint8(v.mode)
	v.cursorBlink.put(buf[snapCursorBlink:])
	v.textBlink.put(buf[snapTextBlink:])
	binary.LittleEndian.PutUint16(buf[snapScreenAddr:], v.screenAddr)
	binary.LittleEndian.PutUint16(buf[snapAttrAddr:], v.attrAddr)
	binary.LittleEndian.PutUint16(buf[snapChargenAddr:], v.chargenAddr)
	binary.LittleEndian.PutUint16(buf[snapCursorAddr:], v.cursorAddr)

	var flags uint8
	if v.geometryDirty {
		flags |= flagGeometryDirty
	}
	if v.forceResize {
		flags |= flagForceResize
	}
	if v.forceRepaint {
		flags |= flagForceRepaint
	}
	if v.forceCacheFlush {
		flags |= flagCacheFlush
	}
	buf[snapFlags] = flags

	binary.LittleEndian.PutUint32(buf[snapAccumulator:], v.acc.Fraction())
	copy(buf[snapRAM:], v.ram[:])

	return buf
}

// Restore the state of the chip from a blob created by Snapshot(). The
// geometry is recalculated at the start of the next frame.
//
// The line event chain is not affected. The host scheduler is assumed to
// be restored to the same point as the chip.
func (v *VDC) Restore(buf []byte) error {
	if len(buf) == 0 {
		return curated.Errorf(SnapshotTooShort, len(buf))
	}
	if buf[snapVersion] > CurrentSnapshotVersion || buf[snapVersion] == 0 {
		return curated.Errorf(SnapshotVersion, buf[snapVersion])
	}
	if len(buf) < snapshotSize {
		return curated.Errorf(SnapshotTooShort, len(buf))
	}

	copy(v.regs[:], buf[snapRegisters:snapRegisters+NumRegisters])
	v.line = int(binary.LittleEndian.Uint32(buf[snapLine:]))
	v.frame = int(binary.LittleEndian.Uint32(buf[snapFrame:]))
	v.ycounter = int(binary.LittleEndian.Uint32(buf[snapYCounter:]))
	v.charCounter = int(binary.LittleEndian.Uint32(buf[snapCharCounter:]))
	v.bitmapCounter = int(binary.LittleEndian.Uint32(buf[snapBitmapCounter:]))
	v.mode = VideoMode(buf[snapMode])
	if v.mode < ModeText || v.mode > ModeIdle {
		v.mode = ModeIdle
	}
	v.cursorBlink.get(buf[snapCursorBlink:])
	v.textBlink.get(buf[snapTextBlink:])
	v.screenAddr = binary.LittleEndian.Uint16(buf[snapScreenAddr:])
	v.attrAddr = binary.LittleEndian.Uint16(buf[snapAttrAddr:])
	v.chargenAddr = binary.LittleEndian.Uint16(buf[snapChargenAddr:])
	v.cursorAddr = binary.LittleEndian.Uint16(buf[snapCursorAddr:])

	flags := buf[snapFlags]
	v.forceResize = flags&flagForceResize == flagForceResize
	v.forceRepaint = flags&flagForceRepaint == flagForceRepaint
	v.forceCacheFlush = flags&flagCacheFlush == flagCacheFlush

	v.acc.SetFraction(binary.LittleEndian.Uint32(buf[snapAccumulator:]))
	copy(v.ram[:], buf[snapRAM:snapRAM+RAMSize])

	// the geometry is resolved now so that the rest of the current frame
	// continues with the restored timing. it is marked dirty so that the
	// renderer is told about it at the start of the next frame
	v.geom = geometry.Resolve(v.regs)
	v.geometryDirty = true

	// the raster counters must be consistent with the restored geometry
	v.ycounter = min(max(v.ycounter, 0), v.geom.CharHeight)
	if v.line < 0 || v.line >= v.geom.ScreenHeight {
		v.line = 0
	}

	// the renderer will be sent the palette again
	v.paletteGeneration = 0

	logger.Logf(v, v.label, "restored snapshot (version %d)", buf[snapVersion])

	return nil
}

func (b *blink) put(buf []byte) {
	binary.LittleEndian.PutUint32(buf, uint32(b.counter))
	if b.visible {
		buf[4] = 1
	} else {
		buf[4] = 0
	}
}

func (b *blink) get(buf []byte) {
	b.counter = int(int32(binary.LittleEndian.Uint32(buf)))
	b.visible = buf[4] != 0
}
