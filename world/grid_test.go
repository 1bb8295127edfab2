package world

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_Bounds(t *testing.T) {
	g := NewGrid(10, 24)
	assert.True(t, g.InBounds(Pt{0, 0}))
	assert.True(t, g.InBounds(Pt{9, 23}))
	assert.False(t, g.InBounds(Pt{10, 0}))
	assert.False(t, g.InBounds(Pt{0, 24}))
	assert.False(t, g.InBounds(Pt{-1, 0}))
	assert.False(t, g.InBounds(Pt{0, -1}))

	val, err := g.CellValue(Pt{3, 7})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), val)

	g.set(Pt{3, 7}, 5)
	val, err = g.CellValue(Pt{3, 7})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), val)

	_, err = g.CellValue(Pt{10, 7})
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = g.CellValue(Pt{3, -1})
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

// randomGrid returns a grid in which row r is complete and every other row
// has at least one empty cell.
func randomGrid(nCols, nRows, r int64) Grid {
	g := NewGrid(nCols, nRows)
	for y := int64(0); y < nRows; y++ {
		for x := int64(0); x < nCols; x++ {
			g.set(Pt{x, y}, RInt(0, 5))
		}
		if y == r {
			for x := int64(0); x < nCols; x++ {
				g.set(Pt{x, y}, RInt(1, 5))
			}
		} else {
			g.set(Pt{RInt(0, nCols-1), y}, 0)
		}
	}
	return g
}

func row(g *Grid, y int64) []int64 {
	cells := g.Cells()
	return cells[y*g.NCols() : (y+1)*g.NCols()]
}

func TestGrid_ClearOneRow(t *testing.T) {
	RSeed(0)
	for range 100 {
		nCols := RInt(1, 12)
		nRows := RInt(1, 30)
		r := RInt(0, nRows-1)
		g := randomGrid(nCols, nRows, r)
		original := g.Clone()

		require.Equal(t, []int64{r}, g.CompleteRows())
		g.ClearAndCompact([]int64{r})

		assert.Equal(t, make([]int64, nCols), row(&g, 0))
		for y := int64(0); y < r; y++ {
			assert.Equal(t, row(&original, y), row(&g, y+1))
		}
		for y := r + 1; y < nRows; y++ {
			assert.Equal(t, row(&original, y), row(&g, y))
		}
		assert.Equal(t, nCols, g.NCols())
		assert.Equal(t, nRows, g.NRows())
		assert.Empty(t, g.CompleteRows())
	}
}

func TestGrid_ClearTwoRows(t *testing.T) {
	b := Board{Rows: []string{
		"1.1",
		"222",
		"3.3",
		"444",
		".55",
	}}
	g, err := GridFromBoard(b)
	require.NoError(t, err)
	rows := g.CompleteRows()
	assert.Equal(t, []int64{1, 3}, rows)

	expected := Board{Rows: []string{
		"...",
		"...",
		"1.1",
		"3.3",
		".55",
	}}

	// The order in which the rows are given doesn't matter.
	g1 := g.Clone()
	g1.ClearAndCompact(rows)
	assert.Equal(t, expected, BoardFromGrid(&g1))

	g2 := g.Clone()
	g2.ClearAndCompact([]int64{3, 1})
	assert.Equal(t, expected, BoardFromGrid(&g2))

	// Duplicates and rows outside the grid are ignored.
	g3 := g.Clone()
	g3.ClearAndCompact([]int64{3, 1, 3, -1, 5})
	assert.Equal(t, expected, BoardFromGrid(&g3))
}

func TestGrid_AdjacentCompleteRows(t *testing.T) {
	// Two complete rows next to each other are both removed in the same pass.
	b := Board{Rows: []string{
		"..1",
		"222",
		"333",
		"4.4",
	}}
	g, err := GridFromBoard(b)
	require.NoError(t, err)
	g.ClearAndCompact(g.CompleteRows())
	assert.Equal(t, Board{Rows: []string{
		"...",
		"...",
		"..1",
		"4.4",
	}}, BoardFromGrid(&g))
}

func TestGrid_ClearNothing(t *testing.T) {
	g := randomGrid(10, 24, 5)
	original := g.Cells()
	g.ClearAndCompact(nil)
	assert.True(t, slices.Equal(original, g.Cells()))
}

func TestGrid_Contains(t *testing.T) {
	g := NewGrid(4, 4)
	assert.False(t, g.Contains(7))
	g.set(Pt{2, 3}, 7)
	assert.True(t, g.Contains(7))
}

func BenchmarkClearAndCompact(b *testing.B) {
	RSeed(0)
	g := randomGrid(10, 24, 12)
	for b.Loop() {
		g2 := g.Clone()
		g2.ClearAndCompact(g2.CompleteRows())
	}
}
