package world

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// Board is a grid written by hand, for tests and for starting a game from a
// prepared position. Each row is a string with one character per cell:
// '.' is an empty cell, '1'-'9' and 'a'-'z' are piece ids 1 to 35.
type Board struct {
	Rows []string `yaml:"Rows"`
}

const boardIds = "123456789abcdefghijklmnopqrstuvwxyz"

func LoadBoard(data []byte) (b Board, err error) {
	err = yaml.Unmarshal(data, &b)
	return
}

// Level returns a level with the board's cells and dimensions. The rest of
// the configuration comes from c.
func (b *Board) Level(c WorldConfig) (l Level, err error) {
	if len(b.Rows) == 0 {
		return l, fmt.Errorf("board has no rows")
	}
	nCols := int64(len(b.Rows[0]))
	c.NCols = nCols
	c.NRows = int64(len(b.Rows))
	l.Config = c
	l.Cells = make([]int64, 0, c.NCols*c.NRows)
	for y, row := range b.Rows {
		if int64(len(row)) != nCols {
			return l, fmt.Errorf("row %d has %d cells instead of %d", y,
				len(row), nCols)
		}
		for x, ch := range row {
			if ch == '.' {
				l.Cells = append(l.Cells, 0)
				continue
			}
			idx := strings.IndexRune(boardIds, ch)
			if idx < 0 {
				return l, fmt.Errorf("invalid cell %q at (%d, %d)", ch, x, y)
			}
			l.Cells = append(l.Cells, int64(idx+1))
		}
	}
	return l, nil
}

// GridFromBoard builds a grid directly from a board.
func GridFromBoard(b Board) (Grid, error) {
	l, err := b.Level(DefaultWorldConfig())
	if err != nil {
		return Grid{}, err
	}
	g := NewGrid(l.Config.NCols, l.Config.NRows)
	copy(g.mat.cells, l.Cells)
	return g, nil
}

// BoardFromGrid is the inverse of GridFromBoard. Ids which have no character
// are written as '#'.
func BoardFromGrid(g *Grid) (b Board) {
	for y := int64(0); y < g.NRows(); y++ {
		var sb strings.Builder
		for x := int64(0); x < g.NCols(); x++ {
			id := g.at(Pt{x, y})
			switch {
			case id == 0:
				sb.WriteByte('.')
			case id <= int64(len(boardIds)):
				sb.WriteByte(boardIds[id-1])
			default:
				sb.WriteByte('#')
			}
		}
		b.Rows = append(b.Rows, sb.String())
	}
	return
}
