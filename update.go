package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/marisvali/tetris1/world"
	"image"
	"slices"
)

// A held left or right key moves the piece again after RepeatDelayFrames and
// then every RepeatFrames.
const RepeatDelayFrames = 10
const RepeatFrames = 3

var keysLeft = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
var keysRight = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
var keysRotate = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyX}
var keysSoftDrop = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}

func (g *Gui) Update() error {
	defer g.HandlePanic()

	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)
	g.justReleasedKeys = g.justReleasedKeys[:0]
	g.justReleasedKeys = inpututil.AppendJustReleasedKeys(g.justReleasedKeys)

	if g.JustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.folderWatcher.FolderContentsChanged() {
		g.LoadGuiData()
		// A recorded game keeps the rules it was recorded with.
		if g.state != Playback && g.state != DebugCrash {
			g.restart()
		}
	}

	switch g.state {
	case PlayScreen:
		g.UpdatePlayScreen()
	case PausedScreen:
		g.UpdatePausedScreen()
	case GameOverScreen:
		g.UpdateGameOverScreen()
	case Playback:
		g.UpdatePlayback()
	case DebugCrash:
		g.UpdateDebugCrash()
	default:
		panic("unhandled default case")
	}

	return nil
}

// repeating says if a held key should produce a move in this frame.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d > RepeatDelayFrames && (d-RepeatDelayFrames)%RepeatFrames == 0
}

func anyRepeating(keys []ebiten.Key) bool {
	return slices.ContainsFunc(keys, repeating)
}

// collectInput turns the keyboard state of this frame and the passing of time
// into the events of one world step. Key events come before the timer tick.
func (g *Gui) collectInput() (input world.PlayerInput) {
	if anyRepeating(keysLeft) {
		input.Events = append(input.Events, world.KeyDown(world.KeyLeft))
	}
	if anyRepeating(keysRight) {
		input.Events = append(input.Events, world.KeyDown(world.KeyRight))
	}
	if g.AnyJustPressed(keysRotate) {
		input.Events = append(input.Events, world.KeyDown(world.KeyRotate))
	}
	if g.AnyJustPressed(keysSoftDrop) {
		input.Events = append(input.Events, world.KeyDown(world.KeySoftDrop))
	}
	if g.AnyJustReleased(keysSoftDrop) && !g.AnyPressed(keysSoftDrop) {
		input.Events = append(input.Events, world.KeyUp(world.KeySoftDrop))
	}
	if g.devModeEnabled && g.JustPressed(ebiten.KeyW) {
		input.Events = append(input.Events, world.KeyDown(world.KeyMoveUp))
	}

	g.framesSinceTick++
	if g.framesSinceTick >= g.framesPerTick() {
		g.framesSinceTick = 0
		input.Events = append(input.Events, world.TimerTick())
	}
	return
}

func (g *Gui) UpdatePlayScreen() {
	if g.JustPressed(ebiten.KeyP) || g.JustPressed(ebiten.KeyEscape) {
		g.state = PausedScreen
		return
	}
	if g.JustPressed(ebiten.KeyR) {
		g.restart()
		return
	}

	input := g.collectInput()

	// Save the input in the playthrough.
	g.playthrough.History = append(g.playthrough.History, input)
	if g.RecordToFile {
		// IMPORTANT: save the playthrough before stepping the World. If
		// a bug in the World causes it to crash, we want to save the input
		// that caused the bug before the program crashes.
		data, err := g.playthrough.Serialize()
		Check(err)
		WriteFile(g.RecordingFile, data)
	}

	g.world.Step(input)
	g.visWorld.Step(&g.world)
	g.sounds.Play(g.world.Outcome)
	g.frameIdx++

	if g.world.State == world.GameOver {
		g.state = GameOverScreen
		// The channel gets its own copy, the history keeps growing only
		// until the next restart.
		g.uploadPlaythroughChannel <- *g.playthrough.Clone()
	}
}

func (g *Gui) UpdatePausedScreen() {
	if g.JustPressed(ebiten.KeyP) || g.JustPressed(ebiten.KeyEscape) {
		g.state = PlayScreen
	}
	if g.JustPressed(ebiten.KeyR) {
		g.restart()
	}
}

func (g *Gui) UpdateGameOverScreen() {
	// Let the last flashes fade out.
	g.visWorld.Step(&g.world)
	if g.JustPressed(ebiten.KeyR) || g.JustPressed(ebiten.KeyEnter) {
		g.restart()
	}
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

func (g *Gui) AnyPressed(keys []ebiten.Key) bool {
	return slices.ContainsFunc(keys, g.Pressed)
}

func (g *Gui) AnyJustPressed(keys []ebiten.Key) bool {
	return slices.ContainsFunc(keys, g.JustPressed)
}

func (g *Gui) AnyJustReleased(keys []ebiten.Key) bool {
	return slices.ContainsFunc(keys, func(k ebiten.Key) bool {
		return slices.Contains(g.justReleasedKeys, k)
	})
}

func ImageRectContainsPt(r image.Rectangle, pt image.Point) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

func (g *Gui) JustClicked(button image.Rectangle) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return ImageRectContainsPt(button, image.Pt(x, y))
}

func (g *Gui) LeftClickPressedOn(button image.Rectangle) bool {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButton0) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return ImageRectContainsPt(button, image.Pt(x, y))
}

// replayTo rebuilds the world from the start of the playthrough and steps it
// frameIdx times.
func (g *Gui) replayTo(frameIdx int64) {
	g.world = world.NewWorldFromPlaythrough(g.playthrough)
	g.visWorld = NewVisWorld()
	for i := range frameIdx {
		g.world.Step(g.playthrough.History[i])
	}
	g.frameIdx = frameIdx
}

func (g *Gui) UpdatePlayback() {
	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}

	userRequestedPlaybackPause := g.JustPressed(ebiten.KeySpace) || g.JustClicked(g.buttonPlaybackPlay)
	if userRequestedPlaybackPause {
		g.playbackPaused = !g.playbackPaused
	}

	// Choose target frame.
	targetFrameIdx := g.frameIdx

	// Compute the target frame index based on where on the play bar the user
	// clicked.
	if g.LeftClickPressedOn(g.buttonPlaybackBar) {
		x, _ := ebiten.CursorPosition()
		dx := int64(x - g.buttonPlaybackBar.Min.X)
		targetFrameIdx = dx * nFrames / int64(max(1, g.buttonPlaybackBar.Dx()))
	}

	if g.Pressed(ebiten.KeyArrowLeft) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyArrowRight) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyArrowLeft) && !g.Pressed(ebiten.KeyShift) {
		if g.playbackPaused {
			targetFrameIdx -= g.FrameSkipArrow
		} else {
			targetFrameIdx -= g.FrameSkipArrow * 2
		}
	}

	if g.Pressed(ebiten.KeyArrowRight) && !g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipArrow
	}

	targetFrameIdx = max(0, min(targetFrameIdx, nFrames))

	if targetFrameIdx != g.frameIdx {
		g.replayTo(targetFrameIdx)
	}

	// frameIdx is the number of inputs the world has seen so far.
	if !g.playbackPaused && g.frameIdx < nFrames {
		g.world.Step(g.playthrough.History[g.frameIdx])
		g.visWorld.Step(&g.world)
		g.sounds.Play(g.world.Outcome)
		g.frameIdx++
	}
}

func (g *Gui) UpdateDebugCrash() {
	nFrames := int64(len(g.playthrough.History))

	// Go to the next frame.
	goToNextFrame := g.JustPressed(ebiten.KeyD) || g.JustPressed(ebiten.KeyArrowRight)
	if goToNextFrame && g.frameIdx < nFrames {
		g.world.Step(g.playthrough.History[g.frameIdx])
		g.visWorld.Step(&g.world)
		g.frameIdx++
	}

	// Go to the previous frame.
	goToPreviousFrame := g.JustPressed(ebiten.KeyA) || g.JustPressed(ebiten.KeyArrowLeft)
	if goToPreviousFrame && g.frameIdx > 0 {
		// There is no better way to go to the previous frame than redoing all
		// the frames from the beginning.
		g.replayTo(g.frameIdx - 1)
	}
}
