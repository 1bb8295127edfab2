package main

import (
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"image"
	"image/color"
)

var colorBackground = color.NRGBA{R: 180, G: 180, B: 180, A: 255}
var colorEmptyCell = color.NRGBA{R: 30, G: 30, B: 40, A: 255}
var colorGridLine = color.NRGBA{R: 60, G: 60, B: 75, A: 255}
var colorUnknownPiece = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
var colorText = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
var colorOverlay = color.NRGBA{R: 0, G: 0, B: 0, A: 160}
var colorOverlayText = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

func (g *Gui) Draw(screen *ebiten.Image) {
	defer g.HandlePanic()

	// The screen bitmap has the aspect ratio of the application window. We fill
	// it with some background. Then, we select the area inside of screen on
	// which we draw all the actually interesting elements of our game.
	screen.Fill(colorBackground)

	origin := g.gameAreaOrigin
	game := SubImage(screen, image.Rect(
		int(origin.X),
		int(origin.Y),
		int(origin.X+g.gameWidth),
		int(origin.Y+g.gameHeight)))

	switch g.state {
	case PlayScreen:
		g.DrawPlayScreen(game)
	case PausedScreen:
		g.DrawPlayScreen(game)
		g.DrawOverlay(game, "PAUSED", "P to continue, R to restart")
	case GameOverScreen:
		g.DrawPlayScreen(game)
		g.DrawOverlay(game, "GAME OVER", "R to restart")
	case Playback:
		g.DrawPlayScreen(game)
	case DebugCrash:
		g.DrawPlayScreen(game)
	default:
		panic("unhandled default case")
	}

	if g.enableDebugArea {
		debug := SubImage(screen, image.Rect(
			int(origin.X),
			int(origin.Y+g.gameHeight),
			int(origin.X+g.gameWidth),
			int(origin.Y+g.gameHeight+g.cells(DebugCells))))
		g.DrawDebugControls(debug)
	}
}

// pieceColor returns the palette color of a piece id. Pieces which are no
// longer tracked by the world are drawn in grey.
func (g *Gui) pieceColor(id int64) color.Color {
	c, ok := g.world.ColorOf(id)
	if !ok || c < 0 || c >= int64(len(g.palette)) {
		return colorUnknownPiece
	}
	return g.palette[c]
}

func (g *Gui) DrawPlayScreen(screen *ebiten.Image) {
	play := SubImage(screen, g.playArea())
	play.Fill(colorEmptyCell)

	// Cells. The active piece is already written in the grid, so it gets
	// drawn along with everything else.
	size := g.CellPixelSize
	nCols := g.world.Grid.NCols()
	nRows := g.world.Grid.NRows()
	for i, id := range g.world.Grid.Cells() {
		if id == 0 {
			continue
		}
		x := int64(i) % nCols
		y := int64(i) / nCols
		FillRect(play, x*size, y*size, size, size, g.pieceColor(id))
	}

	// Grid lines.
	for x := int64(1); x < nCols; x++ {
		Line(play, x*size, 0, x*size, nRows*size, colorGridLine)
	}
	for y := int64(1); y < nRows; y++ {
		Line(play, 0, y*size, nCols*size, y*size, colorGridLine)
	}

	// Flashes of cleared rows.
	for _, a := range g.visWorld.Temporary {
		flash := color.NRGBA{R: 255, G: 255, B: 255, A: a.Animation.Alpha()}
		FillRect(play, 0, a.Row*size, nCols*size, size, flash)
	}

	g.DrawSidePanel(SubImage(screen, g.sidePanel()))
}

func (g *Gui) DrawSidePanel(screen *ebiten.Image) {
	lines := []string{
		"Score",
		fmt.Sprintf("%d", g.world.Score),
		"",
		"Lines",
		fmt.Sprintf("%d", g.world.LinesCleared),
	}
	if g.state == Playback || g.state == DebugCrash {
		lines = append(lines, "",
			"Frame",
			fmt.Sprintf("%d/%d", g.frameIdx, len(g.playthrough.History)),
			g.world.State.String())
	}

	lineHeight := g.cells(1) * 3 / 2
	width := int64(screen.Bounds().Dx())
	for i, line := range lines {
		if line == "" {
			continue
		}
		y := int64(i) * lineHeight
		DrawText(SubImage(screen, image.Rect(0, int(y), int(width), int(y+lineHeight))),
			g.defaultFont, line, false, true, colorText)
	}
}

func (g *Gui) DrawOverlay(screen *ebiten.Image, title string, hint string) {
	play := SubImage(screen, g.playArea())
	FillRect(play, 0, 0, int64(play.Bounds().Dx()), int64(play.Bounds().Dy()),
		colorOverlay)
	half := play.Bounds().Dy() / 2
	top := SubImage(play, image.Rect(0, 0, play.Bounds().Dx(), half))
	DrawText(top, g.defaultFont, title, true, false, colorOverlayText)
	bottom := SubImage(play, image.Rect(0, half, play.Bounds().Dx(),
		half+int(g.cells(2))))
	DrawText(bottom, g.defaultFont, hint, true, true, colorOverlayText)
}

func (g *Gui) DrawDebugControls(screen *ebiten.Image) {
	// Background of playback bar.
	screen.Fill(color.NRGBA{
		R: 200,
		G: 200,
		B: 200,
		A: 255,
	})

	// Play/pause button.
	playbarHeight := int64(screen.Bounds().Dy())
	playButton := SubImage(screen,
		image.Rect(0, 0, int(playbarHeight), int(playbarHeight)))
	label := "||"
	if g.playbackPaused {
		label = ">"
	}
	DrawText(playButton, g.defaultFont, label, true, true, colorText)
	// Remember the region so that Update() can react when it's clicked.
	g.buttonPlaybackPlay = playButton.Bounds()

	// Play bar.
	barXMargin := int64(10)
	barX := playbarHeight + barXMargin
	barWidth := int64(screen.Bounds().Dx()) - barX - barXMargin
	bar := SubImage(screen,
		image.Rect(int(barX), 0, int(barX+barWidth), int(playbarHeight)))
	bar.Fill(color.NRGBA{R: 120, G: 120, B: 120, A: 255})
	// Remember the region so that Update() can react when it's clicked.
	g.buttonPlaybackBar = bar.Bounds()

	// Playback bar cursor.
	nFrames := max(1, int64(len(g.playthrough.History)))
	cursorWidth := playbarHeight / 4
	cursorX := g.frameIdx*barWidth/nFrames - cursorWidth/2
	FillRect(bar, cursorX, 0, cursorWidth, playbarHeight,
		color.NRGBA{R: 251, G: 150, B: 32, A: 255})
}
