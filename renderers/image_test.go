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

package renderers_test

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/jetsetilly/gopher8563/curated"
	"github.com/jetsetilly/gopher8563/hardware/scheduler"
	"github.com/jetsetilly/gopher8563/hardware/television/specification"
	"github.com/jetsetilly/gopher8563/hardware/vdc"
	"github.com/jetsetilly/gopher8563/renderers"
	"github.com/jetsetilly/gopher8563/test"
)

// a chip with the power-up registers and a single character at the top left
// of the screen
func newChip(r vdc.Renderer) (*scheduler.Scheduler, *vdc.VDC) {
	s := scheduler.NewScheduler()
	v := vdc.NewVDC(s, r, nil)
	v.WriteRegisters(vdc.KernalNTSC)

	// move the cursor out of the way
	v.Write(vdc.RegCursorPosHi, 0x07)
	v.Write(vdc.RegCursorPosLo, 0xff)

	v.Poke(0x0000, 0x01)
	v.Poke(0x0800, 0x05)
	for l := range uint16(8) {
		v.Poke(0x2010+l, 0xa1)
	}
	return s, v
}

func runFrames(s *scheduler.Scheduler, v *vdc.VDC, n int) {
	for range n {
		for {
			s.Step()
			if v.Line() == 0 {
				break
			}
		}
	}
}

func TestImage(t *testing.T) {
	img := renderers.NewImage()
	s, v := newChip(img)

	runFrames(s, v, 2)
	s.Step()

	frame, num := img.Frame()
	test.ExpectEquality(t, num, 2)

	g := v.Geometry()
	test.ExpectEquality(t, frame.Bounds().Dx(), g.ScreenWidth)
	test.ExpectEquality(t, frame.Bounds().Dy(), g.ScreenHeight)

	x := g.BorderWidth + g.HSyncShift
	y := g.BorderHeight
	fg := specification.ChipVDC.Native[5]
	bg := specification.ChipVDC.Native[0]
	for b := range 8 {
		col := frame.RGBAAt(x+b, y)
		if 0xa1&(0x80>>b) != 0 {
			test.ExpectEquality(t, col, fg, b)
		} else {
			test.ExpectEquality(t, col, bg, b)
		}
	}

	// lines outside of the displayed window are not drawn
	test.ExpectEquality(t, frame.RGBAAt(0, 0), color.RGBA{A: 0xff})
}

func TestImageCache(t *testing.T) {
	img := renderers.NewImage()
	s, v := newChip(img)

	runFrames(s, v, 2)
	hits := img.CacheHits()

	// nothing changes so every visible line is a cache hit
	runFrames(s, v, 1)
	g := v.Geometry()
	test.ExpectEquality(t, img.CacheHits()-hits, g.LastDisplayedLine-g.FirstDisplayedLine+1)

	// a palette change invalidates the cache
	hits = img.CacheHits()
	img.SetPalette(specification.ChipVDC.Native)
	img.InvalidateCache()
	runFrames(s, v, 1)
	test.ExpectEquality(t, img.CacheHits(), hits)
}

func TestImageArtifact(t *testing.T) {
	img := renderers.NewImage()
	s, v := newChip(img)

	// a palette where every entry is a different colour
	pal := make([]color.RGBA, 256)
	for i := range pal {
		pal[i] = color.RGBA{R: uint8(i), A: 0xff}
	}
	img.SetPalette(pal)

	runFrames(s, v, 2)
	frame, _ := img.Frame()

	g := v.Geometry()
	x := g.BorderWidth + g.HSyncShift
	y := g.BorderHeight

	// the pattern 0xa1 against background 0 with foreground 5
	test.ExpectEquality(t, frame.RGBAAt(x, y).R, uint8(0*16+5))
	test.ExpectEquality(t, frame.RGBAAt(x+1, y).R, uint8(5*16+0))
	test.ExpectEquality(t, frame.RGBAAt(x+2, y).R, uint8(0*16+5))
	test.ExpectEquality(t, frame.RGBAAt(x+3, y).R, uint8(5*16+0))
}

func TestImageSave(t *testing.T) {
	img := renderers.NewImage()

	err := img.Save(filepath.Join(t.TempDir(), "frame.png"))
	test.ExpectSuccess(t, curated.Is(err, renderers.ImageNoFrame))

	s, v := newChip(img)
	runFrames(s, v, 2)
	g := v.Geometry()

	img.SetScale(1, 2)
	dir := t.TempDir()

	fn := filepath.Join(dir, "frame.png")
	test.DemandSuccess(t, img.Save(fn))
	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()
	p, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Bounds().Dx(), g.ScreenWidth)
	test.ExpectEquality(t, p.Bounds().Dy(), g.ScreenHeight*2)

	fn = filepath.Join(dir, "frame.BMP")
	test.DemandSuccess(t, img.Save(fn))
	f, err = os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()
	b, err := bmp.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b.Bounds().Dy(), g.ScreenHeight*2)

	err = img.Save(filepath.Join(dir, "frame.gif"))
	test.ExpectSuccess(t, curated.Is(err, renderers.ImageFormat))
	test.ExpectSuccess(t, strings.Contains(err.Error(), ".gif"))
}
