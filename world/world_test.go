package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setPiece replaces the active piece with a piece of shape s at pos, keeping
// the id. The test decides the shape instead of the random generator.
func setPiece(w *World, s Shape, pos Pt) {
	w.Piece.write(&w.Grid, 0)
	w.colors.Del(w.Piece.Id)
	p := NewPiece(w.Piece.Id, s, pos, 0)
	p.Place(&w.Grid)
	w.colors.Put(p.Id, p.Color)
	w.Piece = &p
}

func ticks(n int) PlayerInput {
	var input PlayerInput
	for range n {
		input.Events = append(input.Events, TimerTick())
	}
	return input
}

// stepUntilLocked sends one tick per step until a piece locks.
func stepUntilLocked(t *testing.T, w *World) {
	for range 1000 {
		w.Step(ticks(1))
		if w.Outcome.NLocked > 0 {
			return
		}
	}
	require.Fail(t, "piece never locked")
}

// checkInvariants verifies the relations between the grid, the active piece
// and the color registry.
func checkInvariants(t *testing.T, w *World) {
	if w.State == GameOver {
		require.Nil(t, w.Piece)
	} else {
		require.Equal(t, Active, w.State)
		require.NotNil(t, w.Piece)
		require.False(t, w.Piece.Locked)
		for pt := range w.Piece.Cells() {
			if pt.Y < 0 {
				continue
			}
			val, err := w.Grid.CellValue(pt)
			require.NoError(t, err)
			require.Equal(t, w.Piece.Id, val)
		}
	}
	for _, id := range w.Grid.Cells() {
		if id == 0 {
			continue
		}
		require.Less(t, id, w.NextId)
		_, ok := w.ColorOf(id)
		require.True(t, ok)
	}
	require.Equal(t, w.LinesCleared*w.Config.RowBonus, w.Score)
}

func TestNewWorld(t *testing.T) {
	w := NewWorld(0, DefaultLevel())
	assert.Equal(t, Active, w.State)
	require.NotNil(t, w.Piece)
	assert.Equal(t, int64(1), w.Piece.Id)
	assert.Equal(t, int64(2), w.NextId)
	assert.Equal(t, Pt{4, 0}, w.Piece.Pos)
	assert.Equal(t, 1, w.NTrackedPieces())
	checkInvariants(t, &w)
}

func TestWorld_RandomGames(t *testing.T) {
	RSeed(0)
	keys := []Key{KeyLeft, KeyRight, KeyRotate, KeySoftDrop, KeyMoveUp}
	for range 10 {
		w := NewWorld(RInt(0, 10000), DefaultLevel())
		for range 3000 {
			var input PlayerInput
			for range RInt(0, 3) {
				switch RInt(0, 2) {
				case 0:
					input.Events = append(input.Events, TimerTick())
				case 1:
					input.Events = append(input.Events, KeyDown(keys[RInt(0, 4)]))
				case 2:
					input.Events = append(input.Events, KeyUp(keys[RInt(0, 4)]))
				}
			}
			require.NotPanics(t, func() {
				w.Step(input)
			})
			checkInvariants(t, &w)
		}
	}
}

func TestWorld_TickThreshold(t *testing.T) {
	w := NewWorld(0, DefaultLevel())
	setPiece(&w, Square, Pt{4, 0})

	w.Step(ticks(2))
	assert.Equal(t, Pt{4, 0}, w.Piece.Pos)
	w.Step(ticks(1))
	assert.Equal(t, Pt{4, 1}, w.Piece.Pos)
	assert.Equal(t, int64(0), w.TickCount)

	// Soft drop: one row per tick while the key is down.
	w.Step(PlayerInput{Events: []Event{KeyDown(KeySoftDrop), TimerTick()}})
	assert.Equal(t, Pt{4, 2}, w.Piece.Pos)
	w.Step(ticks(1))
	assert.Equal(t, Pt{4, 3}, w.Piece.Pos)

	// Back to normal speed when it is released.
	w.Step(PlayerInput{Events: []Event{KeyUp(KeySoftDrop), TimerTick()}})
	assert.Equal(t, Pt{4, 3}, w.Piece.Pos)
	w.Step(ticks(2))
	assert.Equal(t, Pt{4, 4}, w.Piece.Pos)
}

func TestWorld_ScoreTwoRows(t *testing.T) {
	w := NewWorld(0, loadLevel(t, "two-rows.yaml"))
	require.Equal(t, Active, w.State)
	id := w.Piece.Id
	assert.Equal(t, int64(3), id)
	setPiece(&w, Stick, Pt{0, 0})

	stepUntilLocked(t, &w)
	assert.Equal(t, int64(1), w.Outcome.NLocked)
	assert.Equal(t, []int64{4, 5}, w.Outcome.ClearedRows)
	assert.Equal(t, int64(200), w.Score)
	assert.Equal(t, int64(2), w.LinesCleared)

	// The part of the stick above the cleared rows fell to the bottom.
	b := BoardFromGrid(&w.Grid)
	assert.Equal(t, "3.........", b.Rows[5])
	assert.Equal(t, "..........", b.Rows[3])
	assert.Equal(t, "..........", b.Rows[4])

	// Pieces 1 and 2 are gone, 3 has one cell left, 4 is the new piece.
	_, ok := w.ColorOf(1)
	assert.False(t, ok)
	_, ok = w.ColorOf(2)
	assert.False(t, ok)
	_, ok = w.ColorOf(id)
	assert.True(t, ok)
	assert.Equal(t, 2, w.NTrackedPieces())
	assert.Equal(t, id+1, w.Piece.Id)
	checkInvariants(t, &w)
}

func TestWorld_NoRowsNoScore(t *testing.T) {
	w := NewWorld(0, DefaultLevel())
	setPiece(&w, T, Pt{4, 0})
	stepUntilLocked(t, &w)
	assert.Empty(t, w.Outcome.ClearedRows)
	assert.Equal(t, int64(0), w.Score)
	assert.Equal(t, Active, w.State)
	assert.Equal(t, int64(2), w.Piece.Id)
}

func TestWorld_GameOverAtStart(t *testing.T) {
	l := loadLevel(t, "spawn-blocked.yaml")
	w := NewWorld(0, l)
	assert.Equal(t, GameOver, w.State)
	assert.True(t, w.Outcome.GameOver)
	assert.Nil(t, w.Piece)
	assert.Equal(t, l.Cells, w.Grid.Cells())

	// Nothing happens anymore.
	w.Step(PlayerInput{Events: []Event{TimerTick(), KeyDown(KeyLeft), KeyDown(KeyRotate)}})
	assert.Equal(t, GameOver, w.State)
	assert.False(t, w.Outcome.GameOver)
	assert.Equal(t, l.Cells, w.Grid.Cells())
}

func TestWorld_GameOverOnSpawn(t *testing.T) {
	w := NewWorld(0, DefaultLevel())

	// Cover the spawn area with another piece.
	for y := int64(0); y < 3; y++ {
		for x := int64(4); x < 7; x++ {
			if w.Grid.at(Pt{x, y}) == 0 {
				w.Grid.set(Pt{x, y}, 99)
			}
		}
	}
	before := w.Grid.Cells()
	nextId := w.NextId
	w.spawn()
	assert.Equal(t, GameOver, w.State)
	assert.Nil(t, w.Piece)
	assert.Equal(t, before, w.Grid.Cells())
	// The id is used up even though the piece never entered the grid.
	assert.Equal(t, nextId+1, w.NextId)
}

func TestWorld_GameOverAfterLock(t *testing.T) {
	// Fill the grid by dropping pieces without moving them, they pile up
	// under the spawn anchor until there's no room left.
	w := NewWorld(3, DefaultLevel())
	for range 100000 {
		w.Step(ticks(1))
		if w.State == GameOver {
			break
		}
	}
	assert.Equal(t, GameOver, w.State)
	assert.Equal(t, int64(0), w.Score)
	checkInvariants(t, &w)
}

func TestWorld_ZScenario(t *testing.T) {
	w := NewWorld(0, DefaultLevel())
	anchor := w.Config.SpawnAnchor()
	setPiece(&w, Z, anchor)
	id := w.Piece.Id

	w.Step(PlayerInput{Events: []Event{
		KeyDown(KeyLeft),
		KeyDown(KeyLeft),
		KeyDown(KeyLeft)}})
	assert.Equal(t, Pt{anchor.X - 3, 0}, w.Piece.Pos)
	stepUntilLocked(t, &w)

	top := w.Config.NRows - 2
	for _, pt := range []Pt{
		{anchor.X - 3, top},
		{anchor.X - 2, top},
		{anchor.X - 2, top + 1},
		{anchor.X - 1, top + 1}} {
		val, err := w.Grid.CellValue(pt)
		assert.NoError(t, err)
		assert.Equal(t, id, val)
	}
	assert.NotEqual(t, id, w.Piece.Id)
}

func TestWorld_RotateAndMoveForwarded(t *testing.T) {
	w := NewWorld(0, DefaultLevel())
	setPiece(&w, Stick, Pt{4, 5})
	w.Step(PlayerInput{Events: []Event{KeyDown(KeyRotate), KeyDown(KeyRight)}})
	assert.Equal(t, Pt{5, 5}, w.Piece.Pos)
	assert.Equal(t, Pt{3, 1}, w.Piece.Mask.Size())
	w.Step(PlayerInput{Events: []Event{KeyDown(KeyMoveUp)}})
	assert.Equal(t, Pt{5, 4}, w.Piece.Pos)
	// Key releases other than the soft drop do nothing.
	w.Step(PlayerInput{Events: []Event{KeyUp(KeyLeft), KeyUp(KeyRotate)}})
	assert.Equal(t, Pt{5, 4}, w.Piece.Pos)
}

func TestWorld_SameSeedSameGame(t *testing.T) {
	RSeed(5)
	var inputs []PlayerInput
	for range 2000 {
		var input PlayerInput
		if RInt(0, 3) == 0 {
			input.Events = append(input.Events, KeyDown(Key(RInt(1, 3))))
		}
		input.Events = append(input.Events, TimerTick())
		inputs = append(inputs, input)
	}

	w1 := NewWorld(42, DefaultLevel())
	w2 := NewWorld(42, DefaultLevel())
	for _, input := range inputs {
		w1.Step(input)
		w2.Step(input)
		require.Equal(t, w1.StateBytes(), w2.StateBytes())
	}
}

func BenchmarkWorld_Step(b *testing.B) {
	input := ticks(1)
	for b.Loop() {
		w := NewWorld(0, DefaultLevel())
		for w.State != GameOver {
			w.Step(input)
		}
	}
}
