package world

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// StateBytes is an array of bytes that represent the current state of the
// World, as perceived by the outside. If two Worlds have the same StateBytes
// they are considered the same, even if they are implemented differently.
// The World is the same if it has:
// - the same cells in the grid
// - the same active piece, at the same position, with the same orientation
// - the same score, state and drop speed
// Writes to a bytes.Buffer don't fail, so errors are not checked here.
func (w *World) StateBytes() []byte {
	buf := new(bytes.Buffer)
	_ = SerializeSlice(buf, w.Grid.mat.cells)
	_ = Serialize(buf, w.Score)
	_ = Serialize(buf, w.LinesCleared)
	_ = Serialize(buf, w.State)
	_ = Serialize(buf, w.SoftDrop)
	_ = Serialize(buf, w.TickCount)
	if w.Piece != nil {
		_ = Serialize(buf, w.Piece.Id)
		_ = Serialize(buf, w.Piece.Pos)
		_ = Serialize(buf, w.Piece.Mask.size)
		_ = SerializeSlice(buf, w.Piece.Mask.cells)
		_ = Serialize(buf, w.Piece.Color)
	}
	return buf.Bytes()
}

// RegressionId returns a string which uniquely identifies how a playthrough
// plays out: a hash of the states of the World after each step. If a change
// in World leaves the RegressionId of a playthrough unchanged, the change did
// not alter the game for that playthrough.
func RegressionId(p *Playthrough) string {
	hash := sha256.New()
	w := NewWorldFromPlaythrough(*p)
	hash.Write(w.StateBytes())
	for i := range p.History {
		w.Step(p.History[i])
		hash.Write(w.StateBytes())
	}
	return hex.EncodeToString(hash.Sum(nil))
}
