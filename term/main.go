// Command term plays the game in a terminal. It runs the same World as the
// graphical version, with the keyboard and the timer delivered through tcell.
//
// Terminals report key presses but not key releases, so the down arrow
// toggles the soft drop instead of holding it. When the program exits, the
// game is saved to last-game.tetris1 and can be watched in the graphical
// version with StartState: Playback.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/goccy/go-yaml"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/marisvali/tetris1/world"
)

const defaultRecordingFile = "last-game.tetris1"

// Config is the part of data/config.yaml the terminal version uses.
type Config struct {
	TickMillis   int64             `yaml:"TickMillis"`
	SoundEnabled bool              `yaml:"SoundEnabled"`
	Palette      [][3]uint8        `yaml:"Palette"`
	World        world.WorldConfig `yaml:"World"`
}

func defaultConfig() Config {
	return Config{
		TickMillis:   50,
		SoundEnabled: true,
		Palette:      [][3]uint8{{255, 0, 0}, {0, 255, 0}, {0, 255, 255}},
		World:        world.DefaultWorldConfig(),
	}
}

func loadConfig(name string) (Config, error) {
	c := defaultConfig()
	data, err := os.ReadFile(name)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing %s: %w", name, err)
	}
	if c.TickMillis <= 0 {
		return c, fmt.Errorf("TickMillis must be positive, got %d", c.TickMillis)
	}
	if err := c.World.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

type Game struct {
	Config
	screen        tcell.Screen
	world         world.World
	playthrough   world.Playthrough
	palette       []tcell.Color
	audioInit     bool
	recordingFile string
	// message is shown under the score. The terminal belongs to the screen
	// while the game runs, so nothing may be logged.
	message string
}

func NewGame(c Config) (*Game, error) {
	g := &Game{Config: c, recordingFile: defaultRecordingFile}
	if c.SoundEnabled {
		if err := g.initAudio(); err != nil {
			// Non-fatal, the game can run without sound.
			log.Printf("audio initialization failed: %v", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	g.screen = screen
	for _, p := range c.Palette {
		g.palette = append(g.palette,
			tcell.NewRGBColor(int32(p[0]), int32(p[1]), int32(p[2])))
	}
	g.restart()
	return g, nil
}

func (g *Game) restart() {
	g.playthrough = world.NewPlaythrough(0, time.Now().UnixNano(),
		world.Level{Config: g.World})
	g.world = world.NewWorldFromPlaythrough(g.playthrough)
}

func (g *Game) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		g.audioInit = true
	}
	return err
}

func (g *Game) beep(freq float64, d time.Duration) {
	if !g.audioInit {
		return
	}
	sampleRate := beep.SampleRate(44100)
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// step feeds one input to the world, records it and plays the sound for
// what happened.
func (g *Game) step(events ...world.Event) {
	input := world.PlayerInput{Events: events}
	g.playthrough.History = append(g.playthrough.History, input)
	g.world.Step(input)

	o := g.world.Outcome
	switch {
	case o.GameOver:
		g.beep(220, 500*time.Millisecond)
	case len(o.ClearedRows) > 0:
		g.beep(1320, 150*time.Millisecond)
	case o.NLocked > 0:
		g.beep(440, 50*time.Millisecond)
	}
}

// handleInput returns false when the player wants to quit.
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			g.step(world.KeyDown(world.KeyLeft))
		case tcell.KeyRight:
			g.step(world.KeyDown(world.KeyRight))
		case tcell.KeyUp:
			g.step(world.KeyDown(world.KeyRotate))
		case tcell.KeyDown:
			if g.world.SoftDrop {
				g.step(world.KeyUp(world.KeySoftDrop))
			} else {
				g.step(world.KeyDown(world.KeySoftDrop))
			}
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				g.message = ""
				if err := g.save(); err != nil {
					g.message = "saving failed: " + err.Error()
				}
				g.restart()
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) cellStyle(id int64) tcell.Style {
	c, ok := g.world.ColorOf(id)
	if !ok || c < 0 || c >= int64(len(g.palette)) {
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
	return tcell.StyleDefault.Foreground(g.palette[c])
}

func (g *Game) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}

// draw shows the grid with a border, two terminal columns per cell, and the
// score on the right.
func (g *Game) draw() {
	g.screen.Clear()
	border := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	nCols := int(g.world.Grid.NCols())
	nRows := int(g.world.Grid.NRows())
	for y := 0; y < nRows; y++ {
		g.screen.SetContent(0, y, '│', nil, border)
		g.screen.SetContent(2*nCols+1, y, '│', nil, border)
	}
	for x := 0; x <= 2*nCols+1; x++ {
		g.screen.SetContent(x, nRows, '─', nil, border)
	}

	for i, id := range g.world.Grid.Cells() {
		x := 1 + 2*(i%nCols)
		y := i / nCols
		if id == 0 {
			g.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
			g.screen.SetContent(x+1, y, '.', nil, border.Dim(true))
			continue
		}
		style := g.cellStyle(id)
		g.screen.SetContent(x, y, '█', nil, style)
		g.screen.SetContent(x+1, y, '█', nil, style)
	}

	panelX := 2*nCols + 4
	g.drawText(panelX, 0, fmt.Sprintf("Score %d", g.world.Score), border)
	g.drawText(panelX, 1, fmt.Sprintf("Lines %d", g.world.LinesCleared), border)
	if g.world.SoftDrop {
		g.drawText(panelX, 3, "Soft drop", border)
	}
	if g.world.State == world.GameOver {
		g.drawText(panelX, 5, "GAME OVER", border.Bold(true))
		g.drawText(panelX, 6, "r to restart, q to quit", border)
	}
	if g.message != "" {
		g.drawText(panelX, 8, g.message, border)
	}
	g.screen.Show()
}

func (g *Game) save() error {
	data, err := g.playthrough.Serialize()
	if err != nil {
		return err
	}
	return os.WriteFile(g.recordingFile, data, 0644)
}

func (g *Game) run() {
	ticker := time.NewTicker(time.Duration(g.TickMillis) * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	g.draw()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			if g.world.State != world.GameOver {
				g.step(world.TimerTick())
			}
		}
		g.draw()
	}
}

func (g *Game) cleanup() {
	g.screen.Fini()
	if g.audioInit {
		speaker.Close()
	}
	if err := g.save(); err != nil {
		log.Printf("saving the game failed: %v", err)
	}
}

func main() {
	configFile := "data/config.yaml"
	if len(os.Args) == 2 {
		configFile = os.Args[1]
	}
	c, err := loadConfig(configFile)
	if err != nil {
		log.Printf("using the default configuration: %v", err)
		c = defaultConfig()
	}

	game, err := NewGame(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
