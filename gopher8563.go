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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/term"

	"github.com/jetsetilly/gopher8563/hardware/clocks"
	"github.com/jetsetilly/gopher8563/hardware/scheduler"
	"github.com/jetsetilly/gopher8563/hardware/television/colourgen"
	"github.com/jetsetilly/gopher8563/hardware/television/limiter"
	"github.com/jetsetilly/gopher8563/hardware/television/specification"
	"github.com/jetsetilly/gopher8563/hardware/vdc"
	"github.com/jetsetilly/gopher8563/logger"
	"github.com/jetsetilly/gopher8563/modalflag"
	"github.com/jetsetilly/gopher8563/prefs"
	"github.com/jetsetilly/gopher8563/renderers"
	"github.com/jetsetilly/gopher8563/scripting"
	"github.com/jetsetilly/gopher8563/statsview"
	"github.com/jetsetilly/gopher8563/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "PALETTE", "SCRIPT", "DUMP")
	echo := md.AddBool("log", false, "echo log to stdout")
	showVersion := md.AddBool("version", false, "print version and exit")
	override := md.AddString("prefs", "", "preferences for this run only (eg. \"vdc.color.gamma::2200; vdc.color.artifact::true\")")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *showVersion {
		v, r, release := version.Version()
		if release {
			fmt.Printf("%s %s\n", version.ApplicationName, v)
		} else {
			fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
		}
		return
	}

	if *echo {
		setupEcho(os.Stdout)
	}

	if *override != "" {
		prefs.PushCommandLineStack(*override)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "PALETTE":
		err = palette(md)
	case "SCRIPT":
		err = script(md)
	case "DUMP":
		err = dump(md)
	}

	if *override != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Printf("* unused preferences: %s\n", unused)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// echo the log to the output. the tags are coloured if the output is a
// terminal
func setupEcho(output *os.File) {
	if term.IsTerminal(int(output.Fd())) {
		logger.SetEcho(logger.NewColorizer(output))
	} else {
		logger.SetEcho(output)
	}
}

// the parts of the emulation shared by all modes
type emulation struct {
	sched   *scheduler.Scheduler
	chip    *vdc.VDC
	colours *colourgen.ColourGen
	image   *renderers.Image
	digest  *renderers.Digest

	// CPU clock in MHz
	clock float64
}

func newEmulation(chipID string, paletteFile string, artifact bool, pal bool) (*emulation, error) {
	chip, err := specification.Lookup(chipID)
	if err != nil {
		return nil, err
	}

	colours, err := colourgen.NewColourGen(chip)
	if err != nil {
		return nil, err
	}

	if paletteFile != "" {
		if err := colours.PaletteFile.Set(paletteFile); err != nil {
			return nil, err
		}
		if err := colours.External.Set(true); err != nil {
			return nil, err
		}
	}

	if artifact {
		if err := colours.Artifact.Set(true); err != nil {
			return nil, err
		}
	}

	emu := &emulation{
		sched:   scheduler.NewScheduler(),
		colours: colours,
		image:   renderers.NewImage(),
		digest:  renderers.NewDigest(),
	}
	emu.chip = vdc.NewVDC(emu.sched, renderers.Tee{emu.image, emu.digest}, colours)

	if pal {
		emu.clock = clocks.PAL
		emu.chip.WriteRegisters(vdc.KernalPAL)
	} else {
		emu.clock = clocks.NTSC
		emu.chip.WriteRegisters(vdc.KernalNTSC)
	}

	return emu, nil
}

// fill the screen with the character codes and attribute colours so that
// there is something to see
func (emu *emulation) testCard() {
	regs := emu.chip.Registers()
	screen := uint16(regs[vdc.RegDisplayStartHi])<<8 | uint16(regs[vdc.RegDisplayStartLo])
	attr := uint16(regs[vdc.RegAttrStartHi])<<8 | uint16(regs[vdc.RegAttrStartLo])
	chargen := uint16(regs[vdc.RegCharBase]&0xe0) << 8

	for i := range uint16(2000) {
		emu.chip.Poke(screen+i, uint8(i))
		emu.chip.Poke(attr+i, uint8(i/80)%15+1|uint8(i&0x03)<<4)
	}

	// every character is the binary pattern of its code on alternate lines
	for c := range uint16(256) {
		for l := range uint16(8) {
			var d uint8
			if l&1 == 0 {
				d = uint8(c)
			} else {
				d = uint8(c) ^ 0xff
			}
			emu.chip.Poke(chargen+c*16+l, d)
		}
	}
}

func (emu *emulation) runFrames(n int) {
	for range n {
		emu.sched.Step()
		for emu.chip.Line() != 0 {
			emu.sched.Step()
		}
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	chipID := md.AddString("chip", "VDC", fmt.Sprintf("colour binding: %s", strings.Join(specification.ChipList, ", ")))
	paletteFile := md.AddString("palette", "", "palette file (.vpl)")
	artifact := md.AddBool("artifact", false, "composite artifact colours")
	pal := md.AddBool("pal", false, "PAL register values")
	frames := md.AddInt("frames", 2, "number of frames to run")
	out := md.AddString("out", "", "save the last frame (.png or .bmp)")
	scale := md.AddInt("scale", 2, "vertical scaling of the saved frame")
	watch := md.AddBool("watch", false, "reload the palette file when it changes and run until interrupted")
	stats := md.AddBool("statsview", false, "run stats server (only if built with the statsview tag)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	emu, err := newEmulation(*chipID, *paletteFile, *artifact, *pal)
	if err != nil {
		return err
	}
	emu.testCard()

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("stats server not available in this build")
		}
		statsview.Launch(md.Output)
	}

	emu.runFrames(*frames)

	if *watch || *stats {
		var wt *colourgen.Watcher
		if *watch && *paletteFile != "" {
			wt, err = emu.colours.Watch(*paletteFile)
			if err != nil {
				return err
			}
			defer wt.Close()
		}

		lmtr := limiter.NewLimiter(emu.chip.Geometry().RefreshRate(emu.clock))
		defer lmtr.Stop()

		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)
		defer signal.Reset(os.Interrupt)

		done := false
		for !done {
			select {
			case <-intChan:
				fmt.Print("\r")
				done = true
			default:
				emu.runFrames(1)
				lmtr.SetRefreshRate(emu.chip.Geometry().RefreshRate(emu.clock))
				lmtr.CheckFrame()
				lmtr.MeasureActual()
			}
		}
		logger.Logf(logger.Allow, "limiter", "%.2f fps", lmtr.Measured.Load().(float32))
	}

	fmt.Fprintf(md.Output, "%s\n", emu.chip.Geometry())
	fmt.Fprintf(md.Output, "frame %d: %s\n", emu.chip.Frame(), emu.digest.Hash())

	if *out != "" {
		emu.image.SetScale(1, *scale)
		return emu.image.Save(*out)
	}

	return nil
}

func palette(md *modalflag.Modes) error {
	md.NewMode()

	chipID := md.AddString("chip", "VDC", fmt.Sprintf("colour binding: %s", strings.Join(specification.ChipList, ", ")))
	paletteFile := md.AddString("palette", "", "palette file (.vpl)")
	artifact := md.AddBool("artifact", false, "composite artifact colours")
	save := md.AddString("save", "", "save the palette to a file (.vpl)")
	store := md.AddBool("store", false, "save the knob values to the preferences file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	emu, err := newEmulation(*chipID, *paletteFile, *artifact, false)
	if err != nil {
		return err
	}

	t := emu.colours.Refresh()
	if t.PaletteError != nil {
		fmt.Fprintf(md.Output, "* %v\n", t.PaletteError)
	}

	chip := emu.colours.Chip()
	names := make([]string, len(t.Palette))
	for i := range names {
		n := len(chip.Descriptors)
		if t.Artifact() {
			names[i] = fmt.Sprintf("%s/%s", chip.Descriptors[i/n].Name, chip.Descriptors[i%n].Name)
		} else if i < n {
			names[i] = chip.Descriptors[i].Name
		}
	}

	fmt.Fprintf(md.Output, "%s %s\n", chip, t.Knobs)
	for i, c := range t.Palette {
		fmt.Fprintf(md.Output, "%3d #%02X%02X%02X %s\n", i, c.R, c.G, c.B, names[i])
	}

	if *save != "" {
		f, err := os.Create(*save)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := colourgen.SavePalette(f, t.Palette, names); err != nil {
			return err
		}
	}

	if *store {
		return emu.colours.Save()
	}

	return nil
}

func script(md *modalflag.Modes) error {
	md.NewMode()

	chipID := md.AddString("chip", "VDC", fmt.Sprintf("colour binding: %s", strings.Join(specification.ChipList, ", ")))
	out := md.AddString("out", "", "save the last frame (.png or .bmp)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("lua script required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	emu, err := newEmulation(*chipID, "", false, false)
	if err != nil {
		return err
	}

	h := scripting.NewHarness(emu.sched, emu.chip, emu.colours)
	defer h.Close()

	if err := h.RunFile(md.GetArg(0)); err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "frame %d: %s\n", emu.chip.Frame(), emu.digest.Hash())

	if *out != "" {
		return emu.image.Save(*out)
	}
	return nil
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	lines := md.AddInt("lines", 100, "number of scanlines to run before the dump")
	out := md.AddString("out", "", "write the graph to a file rather than stdout (.dot)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	emu, err := newEmulation("VDC", "", false, false)
	if err != nil {
		return err
	}
	emu.testCard()

	for range *lines {
		emu.sched.Step()
	}

	var w io.Writer = md.Output
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	// video RAM is too large to be usefully drawn
	ls := emu.chip.LineState()
	ls.RAM = nil
	memviz.Map(w, &ls)

	return nil
}
