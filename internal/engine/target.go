package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Target records, for one generation pass, the move kind last found legal
// (or Blocked) for each destination cell, and the frontline mask of source
// cells that produced at least one legal move.
type Target struct {
	kinds     []chess.MoveKind
	frontline []bool
}

// NewTarget creates a Target sized for geom.
func NewTarget(geom chess.Geometry) *Target {
	return &Target{
		kinds:     make([]chess.MoveKind, geom.Size()),
		frontline: make([]bool, geom.Size()),
	}
}

// Reset clears every annotation and the frontline mask.
func (t *Target) Reset() {
	for i := range t.kinds {
		t.kinds[i] = chess.NoMove
		t.frontline[i] = false
	}
}

// Set overwrites the recorded kind of a destination cell.
func (t *Target) Set(cell chess.Cell, kind chess.MoveKind) {
	t.kinds[cell] = kind
}

// Get returns the recorded kind of a destination cell.
func (t *Target) Get(cell chess.Cell) chess.MoveKind {
	return t.kinds[cell]
}

// MarkFrontline flags a source cell as having a legal move.
func (t *Target) MarkFrontline(cell chess.Cell) {
	t.frontline[cell] = true
}

// IsFrontline reports whether a source cell has a legal move.
func (t *Target) IsFrontline(cell chess.Cell) bool {
	return t.frontline[cell]
}
