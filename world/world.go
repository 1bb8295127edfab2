package world

import (
	"github.com/kamstrup/intmap"
)

// World rules
// - The grid has a fixed size. Each cell is empty or holds the id of a piece.
// - There is at most one active piece. It is controlled by the player and it
// falls by one row every time the tick counter reaches the drop threshold.
// - When the active piece can't fall anymore it locks. Its cells stay in the
// grid. Complete rows are then removed, the rows above them move down and
// each removed row is worth RowBonus points.
// - After a lock a new piece spawns at the spawn anchor. If any of its cells
// is already occupied, the game is over. A World that is over stays over, the
// shell creates a new World to play again.

type State int64

const (
	Spawning State = iota
	Active
	Locking
	Clearing
	GameOver
)

func (s State) String() string {
	switch s {
	case Spawning:
		return "Spawning"
	case Active:
		return "Active"
	case Locking:
		return "Locking"
	case Clearing:
		return "Clearing"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Outcome is what happened during the last Step. It is the only way the
// World tells the outside about events worth a sound or an animation.
type Outcome struct {
	NLocked     int64
	ClearedRows []int64
	GameOver    bool
}

type World struct {
	Config       WorldConfig
	Grid         Grid
	Piece        *Piece
	NextId       int64
	Score        int64
	LinesCleared int64
	State        State
	SoftDrop     bool
	TickCount    int64
	Outcome      Outcome
	rand         Rand
	// colors has an entry for every piece which still has cells in the grid.
	colors *intmap.Map[int64, int64]
}

func NewWorld(seed int64, l Level) (w World) {
	w.Config = l.Config
	w.Grid = NewGrid(l.Config.NCols, l.Config.NRows)
	w.rand = NewRand(seed)
	w.colors = intmap.New[int64, int64](64)
	w.NextId = 1

	// Load the initial board, if there is one. Ids found on the board are
	// tracked like any other residue.
	if len(l.Cells) > 0 {
		Assert(int64(len(l.Cells)) == l.Config.NCols*l.Config.NRows)
		copy(w.Grid.mat.cells, l.Cells)
		for _, id := range l.Cells {
			if id == 0 {
				continue
			}
			if _, ok := w.colors.Get(id); !ok {
				w.colors.Put(id, id%max(w.Config.NColors, 1))
			}
			if id >= w.NextId {
				w.NextId = id + 1
			}
		}
	}

	w.spawn()
	return w
}

// ColorOf returns the display color index of a tracked piece.
func (w *World) ColorOf(id int64) (int64, bool) {
	return w.colors.Get(id)
}

func (w *World) NTrackedPieces() int {
	return w.colors.Len()
}

func (w *World) dropThreshold() int64 {
	if w.SoftDrop {
		return w.Config.SoftDropTicks
	}
	return w.Config.NormalDropTicks
}

// spawn creates the next piece at the spawn anchor. If the new piece doesn't
// fit, the game is over and the grid is left as it was.
func (w *World) spawn() {
	Assert(w.State != GameOver)
	w.State = Spawning
	shape := Shapes[w.rand.RInt(0, int64(len(Shapes))-1)]
	color := w.rand.RInt(0, max(w.Config.NColors, 1)-1)
	p := NewPiece(w.NextId, shape, w.Config.SpawnAnchor(), color)
	w.NextId++

	for pt := range p.Cells() {
		if pt.Y < 0 {
			continue
		}
		if !w.Grid.InBounds(pt) || w.Grid.at(pt) != 0 {
			w.Piece = nil
			w.State = GameOver
			w.Outcome.GameOver = true
			return
		}
	}

	p.Place(&w.Grid)
	w.colors.Put(p.Id, p.Color)
	w.Piece = &p
	w.State = Active
}

// lock handles a piece that just locked: clear the complete rows, update the
// score and spawn the next piece.
func (w *World) lock() {
	w.State = Locking
	w.Outcome.NLocked++
	w.TickCount = 0

	w.State = Clearing
	rows := w.Grid.CompleteRows()
	if len(rows) > 0 {
		// Remember which pieces lose cells, some of them may disappear.
		var touched []int64
		for _, r := range rows {
			for x := int64(0); x < w.Grid.NCols(); x++ {
				touched = append(touched, w.Grid.at(Pt{x, r}))
			}
		}

		w.Grid.ClearAndCompact(rows)
		w.Score += int64(len(rows)) * w.Config.RowBonus
		w.LinesCleared += int64(len(rows))
		w.Outcome.ClearedRows = append(w.Outcome.ClearedRows, rows...)

		for _, id := range touched {
			if _, ok := w.colors.Get(id); ok && !w.Grid.Contains(id) {
				w.colors.Del(id)
			}
		}
	}

	w.spawn()
}

func (w *World) Tick() {
	if w.State != Active {
		return
	}
	w.TickCount++
	if w.TickCount < w.dropThreshold() {
		return
	}
	w.TickCount = 0
	if w.Piece.MoveDown(&w.Grid) {
		w.lock()
	}
}

func (w *World) MoveLeft() bool {
	if w.State != Active {
		return false
	}
	return w.Piece.MoveLeft(&w.Grid)
}

func (w *World) MoveRight() bool {
	if w.State != Active {
		return false
	}
	return w.Piece.MoveRight(&w.Grid)
}

func (w *World) MoveUp() bool {
	if w.State != Active {
		return false
	}
	return w.Piece.MoveUp(&w.Grid)
}

func (w *World) Rotate() bool {
	if w.State != Active {
		return false
	}
	return w.Piece.Rotate(&w.Grid)
}

// SetSoftDrop switches between the normal and the soft drop speed. Ticks
// already counted are kept, so releasing the key never causes a jump.
func (w *World) SetSoftDrop(enabled bool) {
	w.SoftDrop = enabled
}

func (w *World) HandleEvent(e Event) {
	if w.State == GameOver {
		return
	}
	switch e.Type {
	case EventTimerTick:
		w.Tick()
	case EventKeyDown:
		switch e.Key {
		case KeyLeft:
			w.MoveLeft()
		case KeyRight:
			w.MoveRight()
		case KeyRotate:
			w.Rotate()
		case KeyMoveUp:
			w.MoveUp()
		case KeySoftDrop:
			w.SetSoftDrop(true)
		}
	case EventKeyUp:
		if e.Key == KeySoftDrop {
			w.SetSoftDrop(false)
		}
	}
}

// Step processes all the events of one frame, in order. Outcome describes
// only what happened during this Step.
func (w *World) Step(input PlayerInput) {
	w.Outcome = Outcome{}
	for _, e := range input.Events {
		w.HandleEvent(e)
	}
}
