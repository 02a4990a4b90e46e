// Package output formats legal move reports as text or JSON.
package output

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Status is the check state of the side to move.
type Status int

const (
	Normal Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "normal"
}

// Report is the legal move list of one position.
type Report struct {
	FEN      string
	Geometry chess.Geometry
	Side     chess.Colour
	Moves    []chess.Move
	Status   Status
}

// NewReport generates the legal moves of board with v and classifies the
// position. v must use game as its game context.
func NewReport(v *engine.Validator, game *engine.Game, board *chess.Board) (*Report, error) {
	moves, err := engine.LegalMoves(v, board)
	if err != nil {
		return nil, err
	}
	inCheck, err := engine.IsInCheck(v, board)
	if err != nil {
		return nil, err
	}

	r := &Report{
		FEN:      engine.PositionToFEN(board, game),
		Geometry: board.Geometry(),
		Side:     game.CurrentSide(),
		Moves:    moves,
	}
	switch {
	case inCheck && len(moves) == 0:
		r.Status = Checkmate
	case len(moves) == 0:
		r.Status = Stalemate
	case inCheck:
		r.Status = Check
	}
	return r, nil
}
