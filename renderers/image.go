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
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/jetsetilly/gopher8563/curated"
	"github.com/jetsetilly/gopher8563/hardware/television/specification"
	"github.com/jetsetilly/gopher8563/hardware/vdc"
	"github.com/jetsetilly/gopher8563/hardware/vdc/geometry"
	"github.com/jetsetilly/gopher8563/logger"
)

// Sentinal error patterns returned by Image.Save().
const (
	ImageNoFrame = "image: no frame to save"
	ImageFormat  = "image: unsupported format (%s)"
	ImageSave    = "image: %v"
)

// Image is an implementation of the vdc.Renderer interface. It draws each
// frame to an image and saves the most recently completed frame on request.
type Image struct {
	geom geometry.Geometry

	palette    []color.RGBA
	numColours int
	artifact   bool

	// the frame currently being drawn and the most recently completed frame
	curr     *image.RGBA
	last     *image.RGBA
	drawn    bool
	complete bool

	// number of the most recently completed frame
	frameNum int

	// colour indexes of the scanline being drawn
	line []uint8

	// the colour indexes of every scanline the last time it was drawn. a
	// scanline is not redrawn if it hasn't changed
	cache      [][]uint8
	cacheValid []bool
	cacheHits  int

	// scaling applied to the saved image
	scaleX int
	scaleY int
}

// NewImage is the preferred method of initialisation for the Image type. The
// native colours of the VDC are used until a palette is set.
func NewImage() *Image {
	img := &Image{
		palette:    specification.ChipVDC.Native,
		numColours: specification.ChipVDC.NumColors(),
		scaleX:     1,
		scaleY:     1,
	}
	img.Resize(geometry.Resolve(geometry.Registers{}))
	return img
}

// SetScale sets the scaling applied to the image returned by Scaled(). The
// VDC's pixels are narrow and a vertical scale of two gives a better aspect
// ratio for the usual 640x200 display.
func (img *Image) SetScale(x, y int) {
	img.scaleX = max(x, 1)
	img.scaleY = max(y, 1)
}

// Resize implements the vdc.Renderer interface.
func (img *Image) Resize(g geometry.Geometry) {
	img.geom = g
	w := max(g.ScreenWidth, 1)
	h := max(g.ScreenHeight, 1)

	img.curr = image.NewRGBA(image.Rect(0, 0, w, h))
	img.last = image.NewRGBA(image.Rect(0, 0, w, h))
	blank(img.curr)
	blank(img.last)
	img.drawn = false
	img.complete = false

	img.line = make([]uint8, w)
	img.cache = make([][]uint8, h)
	for i := range img.cache {
		img.cache[i] = make([]uint8, w)
	}
	img.cacheValid = make([]bool, h)

	logger.Logf(logger.Allow, "image", "resized to %dx%d", w, h)
}

// SetPalette implements the vdc.Renderer interface.
func (img *Image) SetPalette(palette []color.RGBA) {
	img.palette = palette
	img.artifact = len(palette) == img.numColours*img.numColours
}

// InvalidateCache implements the vdc.Renderer interface.
func (img *Image) InvalidateCache() {
	clear(img.cacheValid)
}

// Repaint implements the vdc.Renderer interface.
func (img *Image) Repaint() {
	img.InvalidateCache()
	blank(img.curr)
}

// fill image with opaque black
func blank(im *image.RGBA) {
	for i := 0; i < len(im.Pix); i += 4 {
		im.Pix[i] = 0
		im.Pix[i+1] = 0
		im.Pix[i+2] = 0
		im.Pix[i+3] = 0xff
	}
}

// DrawLine implements the vdc.Renderer interface.
func (img *Image) DrawLine(mode vdc.VideoMode, ls vdc.LineState) {
	if ls.Line == 0 && img.drawn {
		copy(img.last.Pix, img.curr.Pix)
		img.complete = true
		img.frameNum = ls.Frame - 1
	}
	img.drawn = true

	if !ls.Visible || ls.Line >= len(img.cache) || ls.Geometry.ScreenWidth > len(img.line) {
		return
	}

	decodeLine(img.line, mode, &ls)
	if img.artifact {
		artifactIndexes(img.line, img.numColours)
	}

	y := ls.Line
	if img.cacheValid[y] && bytes.Equal(img.cache[y], img.line) {
		img.cacheHits++
		return
	}
	copy(img.cache[y], img.line)
	img.cacheValid[y] = true

	row := img.curr.Pix[y*img.curr.Stride:]
	for x, c := range img.line {
		var col color.RGBA
		if int(c) < len(img.palette) {
			col = img.palette[c]
		}
		i := x * 4
		row[i] = col.R
		row[i+1] = col.G
		row[i+2] = col.B
		row[i+3] = 0xff
	}
}

// CacheHits returns the number of scanlines that were not redrawn because
// they had not changed.
func (img *Image) CacheHits() int {
	return img.cacheHits
}

// Frame returns the most recently completed frame and its number. If no frame
// has been completed the frame currently being drawn is returned.
func (img *Image) Frame() (*image.RGBA, int) {
	if !img.complete {
		return img.curr, img.frameNum
	}
	return img.last, img.frameNum
}

// Scaled returns the most recently completed frame scaled by the values
// given to SetScale().
func (img *Image) Scaled() image.Image {
	src, _ := img.Frame()
	if img.scaleX == 1 && img.scaleY == 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*img.scaleX, b.Dy()*img.scaleY))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Save the scaled frame to the named file. The format is chosen by the file's
// extension, which must be .png or .bmp.
func (img *Image) Save(filename string) error {
	if !img.drawn {
		return curated.Errorf(ImageNoFrame)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".png" && ext != ".bmp" {
		return curated.Errorf(ImageFormat, ext)
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(ImageSave, err)
	}
	defer f.Close()

	switch ext {
	case ".png":
		err = png.Encode(f, img.Scaled())
	case ".bmp":
		err = bmp.Encode(f, img.Scaled())
	}
	if err != nil {
		return curated.Errorf(ImageSave, err)
	}

	logger.Logf(logger.Allow, "image", "saved frame %d to %s", img.frameNum, filename)

	return nil
}
