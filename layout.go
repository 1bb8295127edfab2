package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"image"
)

// Visual areas
// ------------
//
// - The play area: the grid of the World, one square of CellPixelSize per
// cell.
// - The side panel: right of the play area. Shows the score and the number of
// cleared lines.
// - The game area: contains the play area, the side panel and a margin of one
// cell around them. Its size depends on the configuration and is computed
// when the configuration is loaded.
// - The debug area: under the game area, holds the playback controls. It is
// displayed only during playback.
// - The screen: contains the game area, the debug area if it is displayed and
// any margins necessary to fill in the application window on the OS. Its size
// is known only at run time.
//
// All sizes are measured in cells so that the whole layout scales with
// CellPixelSize.

const MarginCells = 1
const SidePanelCells = 8
const DebugCells = 2

func (g *Gui) cells(n int64) int64 {
	return n * g.CellPixelSize
}

func (g *Gui) playWidth() int64 {
	return g.cells(g.world.Config.NCols)
}

func (g *Gui) playHeight() int64 {
	return g.cells(g.world.Config.NRows)
}

// playArea is relative to the game area.
func (g *Gui) playArea() image.Rectangle {
	m := g.cells(MarginCells)
	return image.Rect(int(m), int(m), int(m+g.playWidth()), int(m+g.playHeight()))
}

// sidePanel is relative to the game area.
func (g *Gui) sidePanel() image.Rectangle {
	m := g.cells(MarginCells)
	x := 2*m + g.playWidth()
	return image.Rect(int(x), int(m), int(x+g.cells(SidePanelCells)),
		int(m+g.playHeight()))
}

// computeGameSize must run every time the grid size or CellPixelSize change.
func (g *Gui) computeGameSize() {
	m := g.cells(MarginCells)
	g.gameWidth = 3*m + g.playWidth() + g.cells(SidePanelCells)
	g.gameHeight = 2*m + g.playHeight()
}

func (g *Gui) UpdateWindowSize() {
	g.computeGameSize()
	width, height := g.adjustedGameSize()
	ebiten.SetWindowSize(int(width), int(height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Tetris1")
}

// adjustedGameSize is the size of the game area plus the debug area, if the
// debug area is displayed.
func (g *Gui) adjustedGameSize() (width, height int64) {
	width, height = g.gameWidth, g.gameHeight
	if g.enableDebugArea {
		height += g.cells(DebugCells)
	}
	return
}

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	defer g.HandlePanic()

	// I receive the application window's actual width and height, via
	// outsideWidth, outsideHeight. I have to return the size I want, in pixels,
	// for the bitmap that will be drawn in the window.
	//
	// The screen bitmap is scaled by ebitengine to fit inside the window,
	// preserving its aspect ratio. What I want:
	// - Cover the entire window with some background.
	// - Have a game area of a fixed size that I can reason about easily, no
	// matter the aspect ratio or the resolution of the user's screen.
	//
	// Solution:
	// - Give the screen bitmap the aspect ratio of the window.
	// - Make the screen bitmap as small as possible while still containing the
	// game area. This means either screenWidth = game width or
	// screenHeight = game height.
	adjustedWidth, adjustedHeight := g.adjustedGameSize()
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return int(adjustedWidth), int(adjustedHeight)
	}

	// The aspect ratio of a rectangle is width / height. If the window is
	// thinner/taller than the game, the game fills the width of the screen and
	// there is space left at the top and the bottom.
	screenAspectRatio := float64(outsideWidth) / float64(outsideHeight)
	gameAspectRatio := float64(adjustedWidth) / float64(adjustedHeight)
	if screenAspectRatio < gameAspectRatio {
		screenWidth = int(adjustedWidth)
		screenHeight = int(float64(screenWidth) / screenAspectRatio)
	} else {
		screenHeight = int(adjustedHeight)
		screenWidth = int(float64(screenHeight) * screenAspectRatio)
	}

	// Store these values in Gui so that Update() can use them as well,
	// otherwise only Draw() will have access to them via the size of the
	// screen parameter it receives.
	g.screenWidth = int64(screenWidth)
	g.screenHeight = int64(screenHeight)
	g.gameAreaOrigin.X = (g.screenWidth - adjustedWidth) / 2
	g.gameAreaOrigin.Y = (g.screenHeight - adjustedHeight) / 2
	return
}
