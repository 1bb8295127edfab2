package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"image"
	"image/color"
)

// SubImage returns a sub-region of screen.
// r indicates a rectangle inside of screen, in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func SubImage(screen *ebiten.Image, r image.Rectangle) *ebiten.Image {
	// Ebitengine keeps the coordinates of the parent image for sub-images.
	// img2 = img1.SubImage(pt1, pt2) still needs img2.At(pt1) to indicate
	// pixel img1.At(pt1). Shift r so that the callers can think in local
	// coordinates.
	minPt := screen.Bounds().Min
	r.Min = r.Min.Add(minPt)
	r.Max = r.Max.Add(minPt)
	return screen.SubImage(r).(*ebiten.Image)
}

// FillRect fills a rectangle given in the local coordinates of screen.
func FillRect(screen *ebiten.Image, x, y, width, height int64, clr color.Color) {
	o := screen.Bounds().Min
	vector.DrawFilledRect(screen,
		float32(int64(o.X)+x), float32(int64(o.Y)+y),
		float32(width), float32(height), clr, false)
}

// Line draws a line between two points given in the local coordinates of
// screen.
func Line(screen *ebiten.Image, x0, y0, x1, y1 int64, clr color.Color) {
	o := screen.Bounds().Min
	vector.StrokeLine(screen,
		float32(int64(o.X)+x0), float32(int64(o.Y)+y0),
		float32(int64(o.X)+x1), float32(int64(o.Y)+y1), 1, clr, false)
}

func DrawText(screen *ebiten.Image, face font.Face, message string, centerX bool, centerY bool, color color.Color) {
	// Remember that text there is an origin point for the text.
	// That origin point is kind of the lower-left corner of the bounds of the
	// text. Kind of. Read the BoundString docs to understand, particularly this
	// image:
	// https://developer.apple.com/library/archive/documentation/TextFonts/Conceptual/CocoaTextArchitecture/Art/glyphterms_2x.png
	// This means that if you do text.Draw at (x, y), most of the text will
	// appear above y, and a little bit under y. If you want all the pixels in
	// your text to be above y, you should do text.Draw at
	// (x, y - text.BoundString().Max.Y).
	textSize := text.BoundString(face, message)
	var offsetX int
	if centerX {
		offsetX = (screen.Bounds().Dx() - textSize.Dx()) / 2
	} else {
		offsetX = 0
	}

	var offsetY int
	if centerY {
		offsetY = (screen.Bounds().Dy() - textSize.Dy()) / 2
	} else {
		offsetY = 0
	}

	textX := screen.Bounds().Min.X + offsetX
	textY := screen.Bounds().Max.Y - offsetY - textSize.Max.Y
	text.Draw(screen, message, face, textX, textY, color)
}
