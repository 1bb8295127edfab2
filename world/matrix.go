package world

import "iter"

// Mat is a dense matrix of int64 values stored row by row. It is used both
// for the occupancy grid and for the masks of pieces (1 for a filled cell, 0
// for an empty one).
type Mat struct {
	cells []int64
	size  Pt
}

func NewMat(size Pt) Mat {
	m := Mat{}
	m.size = size
	m.cells = make([]int64, size.X*size.Y)
	return m
}

// NewMatFromRows builds a matrix from a list of rows of equal length.
func NewMatFromRows(rows [][]int64) Mat {
	var width int64
	if len(rows) > 0 {
		width = int64(len(rows[0]))
	}
	m := NewMat(Pt{width, int64(len(rows))})
	for y, row := range rows {
		Assert(int64(len(row)) == width)
		for x, val := range row {
			m.Set(Pt{int64(x), int64(y)}, val)
		}
	}
	return m
}

func (m *Mat) Set(pos Pt, val int64) {
	m.cells[pos.Y*m.size.X+pos.X] = val
}

func (m *Mat) Get(pos Pt) int64 {
	return m.cells[pos.Y*m.size.X+pos.X]
}

func (m *Mat) Size() Pt {
	return m.size
}

func (m *Mat) InBounds(pt Pt) bool {
	return pt.X >= 0 &&
		pt.Y >= 0 &&
		pt.Y < m.size.Y &&
		pt.X < m.size.X
}

func (m *Mat) Clone() Mat {
	c := *m
	c.cells = make([]int64, len(m.cells))
	copy(c.cells, m.cells)
	return c
}

func (m *Mat) Equal(other Mat) bool {
	if m.size != other.size {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rotated returns a new matrix which is m rotated 90 degrees
// counterclockwise. A matrix of size (w, h) becomes a matrix of size (h, w).
// The right column of m becomes the top row of the result.
func (m *Mat) Rotated() Mat {
	r := NewMat(Pt{m.size.Y, m.size.X})
	i := Pt{}
	for i.Y = 0; i.Y < r.size.Y; i.Y++ {
		for i.X = 0; i.X < r.size.X; i.X++ {
			r.Set(i, m.Get(Pt{m.size.X - 1 - i.Y, i.X}))
		}
	}
	return r
}

// Filled yields the positions of all non-zero cells, row by row.
func (m *Mat) Filled() iter.Seq[Pt] {
	return func(yield func(Pt) bool) {
		i := Pt{}
		for i.Y = 0; i.Y < m.size.Y; i.Y++ {
			for i.X = 0; i.X < m.size.X; i.X++ {
				if m.Get(i) != 0 && !yield(i) {
					return
				}
			}
		}
	}
}
