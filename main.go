package main

import (
	"embed"
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/tetris1/world"
	"golang.org/x/image/font"
	"image"
	"image/color"
	"os"
	"time"
)

// ReleaseVersion is the version of an executable built and given to someone
// to play, either as a native executable or a .wasm in the browser. It is a
// unique label for the experience a player got.
// ReleaseVersion must change when world.SimulationVersion or
// world.InputVersion change. It also changes when the simulation and the input
// stay the same but something else about the build changes: the upload is
// enabled or disabled, asserts are enabled or disabled, graphics change.
// Each variation gets its own executable instead of its own configuration
// file. This way it's possible to keep track of who played what.
const ReleaseVersion = 1

//go:embed data/*
var embeddedFiles embed.FS

type GameState int64

const (
	PlayScreen GameState = iota
	PausedScreen
	GameOverScreen
	Playback
	DebugCrash
)

type Gui struct {
	Config
	world                    world.World
	playthrough              world.Playthrough
	FSys                     FS
	folderWatcher            FolderWatcher
	defaultFont              font.Face
	palette                  []color.Color
	sounds                   Sounds
	visWorld                 VisWorld
	frameIdx                 int64
	framesSinceTick          int64
	state                    GameState
	playbackPaused           bool
	pressedKeys              []ebiten.Key
	justPressedKeys          []ebiten.Key // keys pressed in this frame
	justReleasedKeys         []ebiten.Key // keys released in this frame
	FrameSkipShiftArrow      int64
	FrameSkipArrow           int64
	enableDebugArea          bool
	gameWidth                int64
	gameHeight               int64
	screenWidth              int64
	screenHeight             int64
	gameAreaOrigin           world.Pt
	buttonPlaybackPlay       image.Rectangle
	buttonPlaybackBar        image.Rectangle
	username                 string
	uploadPlaythroughChannel chan world.Playthrough
	devModeEnabled           bool
}

type Config struct {
	StartState    string `yaml:"StartState"`
	PlaybackFile  string `yaml:"PlaybackFile"`
	RecordToFile  bool   `yaml:"RecordToFile"`
	RecordingFile string `yaml:"RecordingFile"`
	LoadTest      bool   `yaml:"LoadTest"`
	TestFile      string `yaml:"TestFile"`
	// TickMillis is the period of the timer which makes pieces fall. The shell
	// turns it into a number of frames, at 60 frames per second.
	TickMillis    int64             `yaml:"TickMillis"`
	CellPixelSize int64             `yaml:"CellPixelSize"`
	SoundEnabled  bool              `yaml:"SoundEnabled"`
	Palette       [][3]uint8        `yaml:"Palette"`
	World         world.WorldConfig `yaml:"World"`
}

func main() {
	ebiten.SetWindowPosition(1000, 100)

	var g Gui
	g.username = getUsername()
	// A channel size of 10 means the channel will buffer 10 playthroughs
	// before it is full and it blocks.
	g.uploadPlaythroughChannel = make(chan world.Playthrough, 10)
	go UploadPlaythroughs(g.username, g.uploadPlaythroughChannel)
	g.FrameSkipShiftArrow = 10
	g.FrameSkipArrow = 1
	g.FSys, g.folderWatcher.Folder = openDataFS()
	// Take the current timestamps so that the first call in Update() doesn't
	// report a change.
	g.folderWatcher.FolderContentsChanged()

	filePassedForPlayback := false
	if len(os.Args) == 2 {
		if os.Args[1] == "developer-mode-enabled" {
			g.devModeEnabled = true
		} else {
			filePassedForPlayback = true
		}
	}

	g.LoadGuiData()

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	var err error
	switch g.StartState {
	case "Playback":
		g.state = Playback
		g.enableDebugArea = true
		g.playthrough, err = world.DeserializePlaythrough(ReadFile(g.PlaybackFile))
		Check(err)
	case "DebugCrash":
		g.state = DebugCrash
		g.enableDebugArea = true
		// Don't crash while debugging the crash. If the crash came from a
		// Check(), the frame with the bug can be stepped and looked at.
		CheckCrashes = false
		g.playthrough, err = world.DeserializePlaythrough(ReadFile(g.PlaybackFile))
		Check(err)
	case "Play":
		g.state = PlayScreen
		g.playthrough = world.NewPlaythrough(ReleaseVersion,
			time.Now().UnixNano(), g.startLevel())
	default:
		Check(fmt.Errorf("invalid StartState: %s", g.StartState))
	}

	g.world = world.NewWorldFromPlaythrough(g.playthrough)

	// The last input caused the crash, so run everything except the last
	// input. This leaves the world in the state right before the crash.
	if g.state == DebugCrash {
		g.frameIdx = int64(len(g.playthrough.History)) - 1
		for i := range g.frameIdx {
			g.world.Step(g.playthrough.History[i])
		}
	}

	g.UpdateWindowSize()
	err = ebiten.RunGame(&g)
	Check(err)
}

// startLevel is the level of a new game. It is either the empty grid
// described by the configuration or a board loaded from TestFile.
func (g *Gui) startLevel() world.Level {
	if !g.LoadTest {
		return world.Level{Config: g.World}
	}
	board, err := world.LoadBoard(ReadFileFS(g.FSys, g.TestFile))
	Check(err)
	l, err := board.Level(g.World)
	Check(err)
	return l
}

// restart throws away the current game and starts a new one with a new seed.
func (g *Gui) restart() {
	g.playthrough = world.NewPlaythrough(ReleaseVersion, time.Now().UnixNano(),
		g.startLevel())
	g.world = world.NewWorldFromPlaythrough(g.playthrough)
	g.visWorld = NewVisWorld()
	g.computeGameSize()
	g.frameIdx = 0
	g.framesSinceTick = 0
	g.state = PlayScreen
}

// HandlePanic saves the playthrough before letting a panic continue, so that
// the crash can be replayed with StartState: DebugCrash.
func (g *Gui) HandlePanic() {
	r := recover()
	if r == nil {
		return
	}
	if g.state == PlayScreen && !g.RecordToFile {
		if data, err := g.playthrough.Serialize(); err == nil {
			WriteFile(fmt.Sprintf("crash-%s.tetris1", g.playthrough.Id), data)
		}
	}
	panic(r)
}
