package world

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPiece_SpawnAlwaysFits(t *testing.T) {
	for nCols := int64(7); nCols <= 15; nCols++ {
		for nRows := int64(3); nRows <= 30; nRows++ {
			g := NewGrid(nCols, nRows)
			for _, s := range Shapes {
				p := NewPiece(1, s, Pt{4, 0}, 0)
				assert.True(t, p.Fits(&g, p.Pos, p.Mask), s.Name)
			}
		}
	}
}

func TestPiece_Walls(t *testing.T) {
	for _, s := range Shapes {
		g := NewGrid(10, 24)
		p := NewPiece(1, s, Pt{0, 5}, 0)
		p.Place(&g)
		assert.False(t, p.MoveLeft(&g), s.Name)
		assert.Equal(t, Pt{0, 5}, p.Pos)

		right := Pt{g.NCols() - p.Mask.Size().X, 5}
		for p.MoveRight(&g) {
		}
		assert.Equal(t, right, p.Pos, s.Name)
		assert.False(t, p.MoveRight(&g), s.Name)
		assert.Equal(t, right, p.Pos, s.Name)

		// Only the piece's own cells are in the grid.
		n := 0
		for _, v := range g.Cells() {
			if v != 0 {
				assert.Equal(t, int64(1), v)
				n++
			}
		}
		assert.Equal(t, len(slices.Collect(p.Cells())), n)
	}
}

func TestPiece_MoveUpdatesGrid(t *testing.T) {
	g := NewGrid(10, 24)
	p := NewPiece(3, Square, Pt{4, 0}, 0)
	p.Place(&g)
	assert.True(t, p.MoveRight(&g))
	assert.False(t, p.MoveDown(&g))

	b := BoardFromGrid(&g)
	assert.Equal(t, "..........", b.Rows[0])
	assert.Equal(t, ".....33...", b.Rows[1])
	assert.Equal(t, ".....33...", b.Rows[2])
	assert.Equal(t, "..........", b.Rows[3])
}

func TestPiece_RotateRejected(t *testing.T) {
	// Out of bounds: a vertical stick against the right wall can't lie down.
	g := NewGrid(10, 24)
	p := NewPiece(1, Stick, Pt{8, 10}, 0)
	p.Place(&g)
	before := g.Cells()
	mask := p.Mask.Clone()
	for range 3 {
		assert.False(t, p.Rotate(&g))
		assert.Equal(t, Pt{8, 10}, p.Pos)
		assert.True(t, mask.Equal(p.Mask))
		assert.Equal(t, before, g.Cells())
	}

	// Overlap: the rotated L would cover a cell of another piece.
	b := Board{Rows: []string{
		"..........",
		"..........",
		"......2...",
		"..........",
		"..........",
	}}
	g, err := GridFromBoard(b)
	require.NoError(t, err)
	p = NewPiece(1, L, Pt{4, 1}, 0)
	require.True(t, p.Fits(&g, p.Pos, p.Mask))
	p.Place(&g)
	before = g.Cells()
	mask = p.Mask.Clone()
	assert.False(t, p.Rotate(&g))
	assert.Equal(t, Pt{4, 1}, p.Pos)
	assert.True(t, mask.Equal(p.Mask))
	assert.Equal(t, before, g.Cells())

	// Once the other piece is gone, the same rotation is accepted.
	g.set(Pt{6, 2}, 0)
	assert.True(t, p.Rotate(&g))
	assert.Equal(t, []Pt{{6, 1}, {4, 2}, {5, 2}, {6, 2}}, slices.Collect(p.Cells()))
}

func TestPiece_RotateAccepted(t *testing.T) {
	g := NewGrid(10, 24)
	p := NewPiece(1, Stick, Pt{4, 5}, 0)
	p.Place(&g)
	assert.True(t, p.Rotate(&g))
	assert.Equal(t, Pt{3, 1}, p.Mask.Size())
	assert.Equal(t, []Pt{{4, 5}, {5, 5}, {6, 5}}, slices.Collect(p.Cells()))

	b := BoardFromGrid(&g)
	assert.Equal(t, "....111...", b.Rows[5])
	assert.Equal(t, "..........", b.Rows[6])
	assert.Equal(t, "..........", b.Rows[7])

	// The catalog is not affected by the rotation of a piece.
	assert.Equal(t, Pt{1, 3}, Stick.mask.Size())
}

func TestPiece_LockOnce(t *testing.T) {
	for _, s := range Shapes {
		g := NewGrid(10, 24)
		p := NewPiece(7, s, Pt{4, 0}, 0)
		p.Place(&g)

		nLocks := 0
		var lastCells []Pt
		for range 100 {
			cells := slices.Collect(p.Cells())
			if p.MoveDown(&g) {
				nLocks++
				lastCells = cells
			}
		}
		assert.Equal(t, 1, nLocks, s.Name)
		assert.True(t, p.Locked)

		// The residue is exactly the footprint before the rejected move.
		var residue []Pt
		for y := int64(0); y < g.NRows(); y++ {
			for x := int64(0); x < g.NCols(); x++ {
				if g.at(Pt{x, y}) == 7 {
					residue = append(residue, Pt{x, y})
				}
			}
		}
		assert.Equal(t, lastCells, residue, s.Name)
		assert.Equal(t, g.NRows(), p.Pos.Y+p.Mask.Size().Y, s.Name)

		// A locked piece doesn't move and has no cells.
		assert.Empty(t, slices.Collect(p.Cells()))
		assert.False(t, p.MoveLeft(&g))
		assert.False(t, p.Rotate(&g))
		assert.False(t, p.MoveDown(&g))
	}
}

func TestPiece_AboveGrid(t *testing.T) {
	g := NewGrid(10, 24)
	p := NewPiece(1, Square, Pt{4, 0}, 0)
	p.Place(&g)
	assert.True(t, p.MoveUp(&g))
	assert.Equal(t, Pt{4, -1}, p.Pos)

	// Only the visible row is in the grid.
	b := BoardFromGrid(&g)
	assert.Equal(t, "....11....", b.Rows[0])
	assert.Equal(t, "..........", b.Rows[1])

	// Cells above the grid are not checked against the walls either.
	assert.True(t, p.Fits(&g, Pt{-5, -2}, p.Mask))
	assert.False(t, p.MoveDown(&g))
	assert.Equal(t, Pt{4, 0}, p.Pos)
}

func TestPiece_FitsIgnoresOwnCells(t *testing.T) {
	g := NewGrid(10, 24)
	p := NewPiece(1, T, Pt{4, 4}, 0)
	p.Place(&g)
	assert.True(t, p.Fits(&g, p.Pos, p.Mask))
	assert.True(t, p.Fits(&g, p.Pos.Plus(Down), p.Mask))

	other := NewPiece(2, T, Pt{4, 4}, 0)
	assert.False(t, other.Fits(&g, other.Pos, other.Mask))
	assert.False(t, other.Fits(&g, Pt{4, 5}, other.Mask))
	assert.True(t, other.Fits(&g, Pt{4, 6}, other.Mask))
}

func TestPiece_ZScenario(t *testing.T) {
	g := NewGrid(10, 24)
	anchor := Pt{4, 0}
	p := NewPiece(1, Z, anchor, 0)
	require.True(t, p.Fits(&g, p.Pos, p.Mask))
	p.Place(&g)

	for range 3 {
		assert.True(t, p.MoveLeft(&g))
	}
	locked := false
	for !locked {
		locked = p.MoveDown(&g)
	}

	// Top row of the Z covers anchor-3 and anchor-2, the bottom row is
	// shifted one column to the right.
	top := g.NRows() - 2
	for _, pt := range []Pt{
		{anchor.X - 3, top},
		{anchor.X - 2, top},
		{anchor.X - 2, top + 1},
		{anchor.X - 1, top + 1}} {
		val, err := g.CellValue(pt)
		assert.NoError(t, err)
		assert.Equal(t, p.Id, val)
	}
	assert.Equal(t, 4, countNonZero(g.Cells()))
}

func countNonZero(cells []int64) (n int) {
	for _, c := range cells {
		if c != 0 {
			n++
		}
	}
	return
}
