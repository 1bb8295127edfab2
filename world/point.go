package world

// Pt is a position on the grid. X is the column, Y is the row. Row 0 is the
// top of the grid and rows grow downwards.
type Pt struct {
	X int64
	Y int64
}

func (p Pt) Plus(other Pt) Pt {
	return Pt{p.X + other.X, p.Y + other.Y}
}

var (
	Left  = Pt{-1, 0}
	Right = Pt{1, 0}
	Up    = Pt{0, -1}
	Down  = Pt{0, 1}
)
