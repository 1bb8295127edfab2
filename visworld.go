package main

import (
	"github.com/marisvali/tetris1/world"
)

// RowFlashImgs is the number of steps in which a cleared row fades out.
const RowFlashImgs = 8

// TemporaryAnimation represents an animation that appears in one place, runs
// for a while and then it goes away. It doesn't represent an ongoing entity in
// the World, it is a standalone effect, like the flash of a cleared row.
type TemporaryAnimation struct {
	Row         int64
	Animation   Animation
	NFramesLeft int64
}

// VisWorld is a world parallel to World that holds "visual logic". Its role is
// to store data and execute logic for ongoing visual effects like animations.
// Draw() relies the information in VisWorld to draw things, just like it relies
// on World.
//
// VisWorld runs parallel to World and is meant to be updated alongside World,
// in the Update() function.
type VisWorld struct {
	Temporary []*TemporaryAnimation
}

func NewVisWorld() (v VisWorld) {
	return v
}

func (v *VisWorld) Step(w *world.World) {
	// Step existing animations.
	for _, a := range v.Temporary {
		a.NFramesLeft--
		a.Animation.Step()
	}

	// Filter out obsolete animations.
	n := 0
	for i := range v.Temporary {
		if v.Temporary[i].NFramesLeft > 0 {
			v.Temporary[n] = v.Temporary[i]
			n++
		}
	}
	v.Temporary = v.Temporary[:n]

	// The rows are already gone from the grid, the flash marks where they
	// used to be.
	for _, row := range w.Outcome.ClearedRows {
		flash := TemporaryAnimation{}
		flash.Row = row
		flash.Animation = NewAnimation(RowFlashImgs)
		// One-shot animation, go through all the images once then end.
		flash.NFramesLeft = flash.Animation.TotalNFrames()
		v.Temporary = append(v.Temporary, &flash)
	}
}
