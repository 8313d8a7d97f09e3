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

// Package colourgen converts the colour descriptors of a video chip to RGB.
//
// The conversion is in three stages. The descriptors are converted to YCbCr,
// the tunable knobs are applied in YCbCr space and the result is converted to
// RGB with gamma correction. An artifact palette can be created for chips with
// a small number of colours. The artifact palette emulates the colour bleed of
// a composite monitor by blending the chroma of adjacent dots.
//
// The ColourGen type holds the knobs as preference values and publishes the
// derived Tables atomically. Changing a knob only marks the tables as stale;
// the tables are recomputed when the owner of the ColourGen calls Refresh().
package colourgen

import (
	"fmt"
	"image/color"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/gopher8563/hardware/television/specification"
	"github.com/jetsetilly/gopher8563/logger"
	"github.com/jetsetilly/gopher8563/prefs"
	"github.com/jetsetilly/gopher8563/resources"
)

// ColourGen creates the colour tables for a video chip.
type ColourGen struct {
	dsk *prefs.Disk

	Saturation    prefs.Int
	Brightness    prefs.Int
	Contrast      prefs.Int
	Gamma         prefs.Int
	ScanlineShade prefs.Int
	Tint          prefs.Int
	Blur          prefs.Int
	OddLinesPhase prefs.Int
	Artifact      prefs.Bool

	// use the palette file rather than computing the palette
	External    prefs.Bool
	PaletteFile prefs.String

	chip atomic.Pointer[specification.Chip]

	// the most recently published tables
	tables     atomic.Pointer[Tables]
	generation atomic.Uint64
	stale      atomic.Bool

	// serialises calls to Recompute()
	crit sync.Mutex
}

// NewColourGen is the preferred method of intialisation for the ColourGen
// type. The chip binding is used until Bind() is called with a different one.
// The knob values are loaded from the preferences file.
func NewColourGen(chip specification.Chip) (*ColourGen, error) {
	c := &ColourGen{}
	c.chip.Store(&chip)
	c.stale.Store(true)

	c.Saturation.SetLimits(0, 2000)
	c.Brightness.SetLimits(0, 2000)
	c.Contrast.SetLimits(0, 2000)
	c.Gamma.SetLimits(0, 4000)
	c.ScanlineShade.SetLimits(0, 1000)
	c.Tint.SetLimits(0, 2000)
	c.Blur.SetLimits(0, 1000)
	c.OddLinesPhase.SetLimits(0, 2000)

	c.Saturation.SetDefault(DefaultKnobs.Saturation)
	c.Brightness.SetDefault(DefaultKnobs.Brightness)
	c.Contrast.SetDefault(DefaultKnobs.Contrast)
	c.Gamma.SetDefault(DefaultKnobs.Gamma)
	c.ScanlineShade.SetDefault(DefaultKnobs.ScanlineShade)
	c.Tint.SetDefault(DefaultKnobs.Tint)
	c.Blur.SetDefault(DefaultKnobs.Blur)
	c.OddLinesPhase.SetDefault(DefaultKnobs.OddLinesPhase)
	c.Artifact.SetDefault(DefaultKnobs.Artifact)

	c.SetDefaults()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	c.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = c.dsk.Add("vdc.color.saturation", &c.Saturation)
	if err != nil {
		return nil, err
	}
	err = c.dsk.Add("vdc.color.brightness", &c.Brightness)
	if err != nil {
		return nil, err
	}
	err = c.dsk.Add("vdc.color.contrast", &c.Contrast)
	if err != nil {
		return nil, err
	}
	err = c.dsk.Add("vdc.color.gamma", &c.Gamma)
	if err != nil {
		return nil, err
	}
	err = c.dsk.Add("vdc.color.scanlineshade", &c.ScanlineShade)
	if err != nil {
		return nil, err
	}
	err = c.dsk.Add("vdc.color.tint", &c.Tint)
	if err != nil {
		return nil, err
	}
	err = c.dsk.Add("vdc.color.blur", &c.Blur)
	if err != nil {
		return nil, err
	}
	err = c.dsk.Add("vdc.color.oddlinesphase", &c.OddLinesPhase)
	if err != nil {
		return nil, err
	}
	err = c.dsk.Add("vdc.color.artifact", &c.Artifact)
	if err != nil {
		return nil, err
	}
	err = c.dsk.Add("vdc.color.external", &c.External)
	if err != nil {
		return nil, err
	}
	err = c.dsk.Add("vdc.color.palettefile", &c.PaletteFile)
	if err != nil {
		return nil, err
	}

	// any change to the knobs invalidates the tables
	f := func(_ prefs.Value) error {
		c.MarkStale()
		return nil
	}

	c.Saturation.SetHookPost(f)
	c.Brightness.SetHookPost(f)
	c.Contrast.SetHookPost(f)
	c.Gamma.SetHookPost(f)
	c.ScanlineShade.SetHookPost(f)
	c.Tint.SetHookPost(f)
	c.Blur.SetHookPost(f)
	c.OddLinesPhase.SetHookPost(f)
	c.Artifact.SetHookPost(f)
	c.External.SetHookPost(f)
	c.PaletteFile.SetHookPost(f)

	err = c.dsk.Load()
	if err != nil {
		return nil, err
	}

	return c, nil
}

// SetDefaults reverts all knobs to their default values.
func (c *ColourGen) SetDefaults() {
	for _, p := range []interface{ Reset() error }{
		&c.Saturation, &c.Brightness, &c.Contrast, &c.Gamma,
		&c.ScanlineShade, &c.Tint, &c.Blur, &c.OddLinesPhase,
		&c.Artifact, &c.External, &c.PaletteFile,
	} {
		_ = p.Reset()
	}
}

// SetKnobs sets all the knobs at once.
func (c *ColourGen) SetKnobs(k Knobs) {
	c.Saturation.Set(k.Saturation)
	c.Brightness.Set(k.Brightness)
	c.Contrast.Set(k.Contrast)
	c.Gamma.Set(k.Gamma)
	c.ScanlineShade.Set(k.ScanlineShade)
	c.Tint.Set(k.Tint)
	c.Blur.Set(k.Blur)
	c.OddLinesPhase.Set(k.OddLinesPhase)
	c.Artifact.Set(k.Artifact)
}

// Knobs returns a copy of the current knob values.
func (c *ColourGen) Knobs() Knobs {
	return Knobs{
		Saturation:    c.Saturation.Value(),
		Brightness:    c.Brightness.Value(),
		Contrast:      c.Contrast.Value(),
		Gamma:         c.Gamma.Value(),
		ScanlineShade: c.ScanlineShade.Value(),
		Tint:          c.Tint.Value(),
		Blur:          c.Blur.Value(),
		OddLinesPhase: c.OddLinesPhase.Value(),
		Artifact:      c.Artifact.Get().(bool),
	}
}

// Load knob values from disk.
func (c *ColourGen) Load() error {
	return c.dsk.Load()
}

// Save current knob values to disk.
func (c *ColourGen) Save() error {
	return c.dsk.Save()
}

func (c *ColourGen) String() string {
	return fmt.Sprintf("%s: %s", c.Chip().ID, c.Knobs())
}

// Bind the ColourGen to a different chip.
func (c *ColourGen) Bind(chip specification.Chip) {
	c.chip.Store(&chip)
	c.MarkStale()
}

// Chip returns the current chip binding.
func (c *ColourGen) Chip() specification.Chip {
	return *c.chip.Load()
}

// MarkStale indicates that the tables should be recomputed. Safe to call from
// any goroutine.
func (c *ColourGen) MarkStale() {
	c.stale.Store(true)
}

// Stale returns true if the tables need to be recomputed.
func (c *ColourGen) Stale() bool {
	return c.stale.Load() || c.tables.Load() == nil
}

// Generation returns the generation of the most recently published tables.
// The value is zero until the first tables have been published.
func (c *ColourGen) Generation() uint64 {
	return c.generation.Load()
}

// Tables returns the most recently published tables. Returns nil if the
// tables have never been computed.
func (c *ColourGen) Tables() *Tables {
	return c.tables.Load()
}

// Refresh recomputes the tables if they are stale and returns the current
// tables.
func (c *ColourGen) Refresh() *Tables {
	if c.Stale() {
		return c.Recompute()
	}
	return c.tables.Load()
}

// Recompute the tables from the current chip binding and knob values and
// publish them. The published Tables are returned.
//
// If the palette file can't be used then the computed palette is used instead.
// The reason is logged and is noted in the PaletteError field of the tables.
func (c *ColourGen) Recompute() *Tables {
	c.crit.Lock()
	defer c.crit.Unlock()

	// cleared before the knobs are read so that a change made while the
	// tables are being recomputed is not lost
	c.stale.Store(false)

	chip := c.Chip()

	t := &Tables{
		Chip:  chip.ID,
		Knobs: c.Knobs(),
	}

	n := chip.NumColors()
	threshold := chip.Threshold()

	// the source of the colours is in order of preference: the palette file,
	// the native RGB output of the chip and the colour descriptors
	if c.External.Get().(bool) {
		pth := strings.TrimSpace(c.PaletteFile.String())
		pal, err := LoadPaletteFile(pth, n)
		if err == nil {
			t.External = true
			c.fromRGB(t, pal, n)

			// a palette file with the square of the number of colours is an
			// artifact palette and is used as it is
			if len(pal) == n*n && n > 1 {
				t.Palette = pal
			} else if t.Knobs.Artifact {
				t.Palette = buildPalette(t.YCbCr, t.Knobs, threshold)
			} else {
				t.Palette = pal
			}
		} else {
			t.PaletteError = err
			logger.Logf(logger.Allow, "colourgen", "using computed palette: %v", err)
		}
	}

	if !t.External {
		if len(chip.Native) > 0 {
			c.fromRGB(t, chip.Native, n)
		} else {
			t.YCbCr = make([]YCbCr, n)
			t.OddLines = make([]YCbCr, n)
			offset := t.Knobs.OddLinesOffset()
			for i, d := range chip.Descriptors {
				t.YCbCr[i] = ComputeYCbCr(d, chip.BaseSaturation, chip.Phase)
				t.OddLines[i] = ComputeYCbCr(d, chip.BaseSaturation, chip.Phase+offset)
			}
		}
		t.Palette = buildPalette(t.YCbCr, t.Knobs, threshold)
	}

	t.fillGamma()
	t.fillYCbCr()
	t.fillOddLines()

	t.Generation = c.generation.Add(1)
	c.tables.Store(t)

	logger.Logf(logger.Allow, "colourgen", "tables %d: %s %s (%d entries)", t.Generation, chip.ID, t.Knobs, len(t.Palette))

	return t
}

// fromRGB sets the YCbCr tables from RGB values. Only the first n entries are
// used unless the palette is an artifact palette in which case the diagonal
// is used. The odd lines are the same as the even lines because there is no
// phase information.
func (c *ColourGen) fromRGB(t *Tables, pal []color.RGBA, n int) {
	t.YCbCr = make([]YCbCr, n)
	for i := range n {
		if len(pal) == n*n {
			t.YCbCr[i] = RGBToYCbCr(pal[i*n+i])
		} else {
			t.YCbCr[i] = RGBToYCbCr(pal[i])
		}
	}
	t.OddLines = t.YCbCr
}
