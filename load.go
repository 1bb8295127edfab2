package main

import (
	"fmt"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"image/color"
)

func (g *Gui) LoadGuiData() {
	// Read from the disk over and over until a full read is possible.
	// This repetition is meant to avoid crashes due to reading files
	// while they are still being written.
	// It's a hack but possibly a quick and very useful one.
	// This repeated reading is only useful when we're not reading from the
	// embedded filesystem. When we're reading from the embedded filesystem we
	// want to crash as soon as possible. We might be in the browser, in which
	// case we want to see an error in the developer console instead of a page
	// that keeps trying to load and reports nothing.
	previousVal := CheckCrashes
	if g.folderWatcher.Folder != "" {
		CheckCrashes = false
	}
	for {
		CheckFailed = nil
		if g.devModeEnabled {
			LoadYAML(g.FSys, "data/config-dev.yaml", &g.Config)
		} else {
			LoadYAML(g.FSys, "data/config.yaml", &g.Config)
		}
		if CheckFailed == nil {
			Check(g.validateConfig())
		}

		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal

	g.palette = g.palette[:0]
	for _, c := range g.Palette {
		g.palette = append(g.palette, color.NRGBA{R: c[0], G: c[1], B: c[2], A: 255})
	}
	g.sounds = NewSounds(g.SoundEnabled)
	g.visWorld = NewVisWorld()
	g.computeGameSize()

	// Load the Go Regular font, sized to fit in a cell.
	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)

	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    float64(g.CellPixelSize),
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
}

func (g *Gui) validateConfig() error {
	if g.TickMillis <= 0 {
		return fmt.Errorf("TickMillis must be positive, got %d", g.TickMillis)
	}
	if g.CellPixelSize <= 0 {
		return fmt.Errorf("CellPixelSize must be positive, got %d", g.CellPixelSize)
	}
	if int64(len(g.Palette)) < g.World.NColors {
		return fmt.Errorf("Palette has %d colors, the world uses %d",
			len(g.Palette), g.World.NColors)
	}
	return g.World.Validate()
}

// framesPerTick converts TickMillis to a number of frames at 60 FPS.
func (g *Gui) framesPerTick() int64 {
	return max(1, g.TickMillis*60/1000)
}
