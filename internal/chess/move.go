package chess

// Move represents one generated or played move.
type Move struct {
	From Cell
	To   Cell
	Kind MoveKind

	// The kind promoted to (Empty unless Kind is Promotion).
	Promotion Kind
}

// Name returns the long algebraic form of the move ("e2e4", "e7e8q").
func (m Move) Name(g Geometry) string {
	s := g.CellName(m.From) + g.CellName(m.To)
	if m.Kind == Promotion && m.Promotion.Valid() {
		s += string(toLower(m.Promotion.Letter()))
	}
	return s
}
