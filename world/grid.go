package world

import (
	"errors"
	"fmt"
	"slices"
)

// ErrOutOfRange is returned when the grid is queried outside its dimensions.
// Callers are expected to check InBounds first, so this indicates a bug in
// the caller.
var ErrOutOfRange = errors.New("cell out of range")

// Grid is the occupancy state of the play area. A cell holds 0 if it is empty
// or the id of the piece occupying it. The dimensions of a Grid never change
// after NewGrid.
type Grid struct {
	mat Mat
}

func NewGrid(nCols, nRows int64) Grid {
	return Grid{mat: NewMat(Pt{nCols, nRows})}
}

func (g *Grid) NCols() int64 {
	return g.mat.size.X
}

func (g *Grid) NRows() int64 {
	return g.mat.size.Y
}

func (g *Grid) InBounds(pt Pt) bool {
	return g.mat.InBounds(pt)
}

func (g *Grid) CellValue(pt Pt) (int64, error) {
	if !g.InBounds(pt) {
		return 0, fmt.Errorf("%w: (%d, %d) in a %dx%d grid", ErrOutOfRange,
			pt.X, pt.Y, g.NCols(), g.NRows())
	}
	return g.mat.Get(pt), nil
}

// at is CellValue without the bounds check, for callers that already did it.
func (g *Grid) at(pt Pt) int64 {
	return g.mat.Get(pt)
}

func (g *Grid) set(pt Pt, id int64) {
	g.mat.Set(pt, id)
}

// Cells returns a copy of all cells, row by row.
func (g *Grid) Cells() []int64 {
	return slices.Clone(g.mat.cells)
}

func (g *Grid) Clone() Grid {
	return Grid{mat: g.mat.Clone()}
}

func (g *Grid) rowComplete(row int64) bool {
	for x := int64(0); x < g.NCols(); x++ {
		if g.mat.Get(Pt{x, row}) == 0 {
			return false
		}
	}
	return true
}

// CompleteRows returns the indexes of all rows which have no empty cell, from
// top to bottom.
func (g *Grid) CompleteRows() (rows []int64) {
	for y := int64(0); y < g.NRows(); y++ {
		if g.rowComplete(y) {
			rows = append(rows, y)
		}
	}
	return
}

// ClearAndCompact removes the given rows and inserts the same number of empty
// rows at the top. The remaining rows keep their relative order. All indexes
// refer to the grid as it is before the call, so the order of rows doesn't
// matter. Duplicates and indexes outside the grid are ignored.
func (g *Grid) ClearAndCompact(rows []int64) {
	nCols := g.NCols()
	remove := make([]bool, g.NRows())
	nRemoved := int64(0)
	for _, r := range rows {
		if r < 0 || r >= g.NRows() || remove[r] {
			continue
		}
		remove[r] = true
		nRemoved++
	}
	if nRemoved == 0 {
		return
	}

	// Prepend the empty rows, then append the rows that survive in order.
	cells := make([]int64, nRemoved*nCols, len(g.mat.cells))
	for y := int64(0); y < g.NRows(); y++ {
		if remove[y] {
			continue
		}
		cells = append(cells, g.mat.cells[y*nCols:(y+1)*nCols]...)
	}
	Assert(int64(len(cells)) == int64(len(g.mat.cells)))
	g.mat.cells = cells
}

// Contains checks if any cell of the grid holds id.
func (g *Grid) Contains(id int64) bool {
	return slices.Contains(g.mat.cells, id)
}
