package world

import "iter"

// Piece is the falling body controlled by the player.
// - Pos is the grid position of the top-left corner of Mask.
// - While the piece is not locked, the grid holds Id in every cell of its
// footprint, except cells above the grid (negative rows).
// - A piece locks exactly once, when it can't move down anymore. After that
// its cells stay in the grid as residue and the piece itself doesn't move
// again.
type Piece struct {
	Id        int64
	ShapeName string
	Mask      Mat
	Pos       Pt
	Color     int64
	Locked    bool
}

func NewPiece(id int64, s Shape, pos Pt, color int64) Piece {
	return Piece{
		Id:        id,
		ShapeName: s.Name,
		Mask:      s.Mask(),
		Pos:       pos,
		Color:     color,
	}
}

// footprint yields the grid positions covered by mask when placed at pos.
func footprint(pos Pt, mask Mat) iter.Seq[Pt] {
	return func(yield func(Pt) bool) {
		for offset := range mask.Filled() {
			if !yield(pos.Plus(offset)) {
				return
			}
		}
	}
}

// Fits checks if mask placed at pos is a valid position for the piece.
// Cells above the grid are always valid. Every other cell must be inside the
// grid and either empty or already occupied by the piece itself.
func (p *Piece) Fits(g *Grid, pos Pt, mask Mat) bool {
	for pt := range footprint(pos, mask) {
		if pt.Y < 0 {
			continue
		}
		if !g.InBounds(pt) {
			return false
		}
		if val := g.at(pt); val != 0 && val != p.Id {
			return false
		}
	}
	return true
}

func (p *Piece) write(g *Grid, id int64) {
	for pt := range footprint(p.Pos, p.Mask) {
		if pt.Y < 0 {
			continue
		}
		g.set(pt, id)
	}
}

// Place writes the piece into the grid at its current position. The caller
// must have checked the position with Fits.
func (p *Piece) Place(g *Grid) {
	p.write(g, p.Id)
}

// commit moves the piece from its current position and mask to a new
// position and mask, which must already have been validated.
func (p *Piece) commit(g *Grid, pos Pt, mask Mat) {
	p.write(g, 0)
	p.Pos = pos
	p.Mask = mask
	p.write(g, p.Id)
}

// Move translates the piece by delta if the new position fits. Otherwise
// nothing changes and false is returned.
func (p *Piece) Move(g *Grid, delta Pt) bool {
	if p.Locked {
		return false
	}
	target := p.Pos.Plus(delta)
	if !p.Fits(g, target, p.Mask) {
		return false
	}
	p.commit(g, target, p.Mask)
	return true
}

func (p *Piece) MoveLeft(g *Grid) bool {
	return p.Move(g, Left)
}

func (p *Piece) MoveRight(g *Grid) bool {
	return p.Move(g, Right)
}

func (p *Piece) MoveUp(g *Grid) bool {
	return p.Move(g, Up)
}

// MoveDown moves the piece one row down. If it can't, the piece becomes
// locked and MoveDown returns true. This is the only way a piece locks.
func (p *Piece) MoveDown(g *Grid) (locked bool) {
	if p.Locked {
		return false
	}
	if p.Move(g, Down) {
		return false
	}
	p.Locked = true
	return true
}

// Rotate turns the piece 90 degrees counterclockwise in place, around its
// anchor. There is no search for an alternative position: if the rotated
// mask doesn't fit where the piece is, the rotation is refused.
func (p *Piece) Rotate(g *Grid) bool {
	if p.Locked {
		return false
	}
	rotated := p.Mask.Rotated()
	if !p.Fits(g, p.Pos, rotated) {
		return false
	}
	p.commit(g, p.Pos, rotated)
	return true
}

// Cells yields the grid positions of the piece. A locked piece yields
// nothing, its cells belong to the grid now.
func (p *Piece) Cells() iter.Seq[Pt] {
	return func(yield func(Pt) bool) {
		if p.Locked {
			return
		}
		for pt := range footprint(p.Pos, p.Mask) {
			if !yield(pt) {
				return
			}
		}
	}
}
