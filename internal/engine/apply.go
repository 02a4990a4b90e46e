package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Apply commits a move to board. Every argument is checked before the board
// is touched; a violation returns an *errors.InvariantError and leaves the
// board unchanged. Apply does not decide legality, see Game.Play for that.
func (v *Validator) Apply(board *chess.Board, from, to chess.Cell, kind chess.MoveKind, promotion chess.Kind) error {
	const op = "engine.Apply"
	if err := v.bind(board); err != nil {
		return err
	}
	geom := board.Geometry()
	if !geom.IsWithin(from) {
		return errors.Invariant(errors.ErrCellOutOfRange, op, int(from), -1)
	}
	if !geom.IsWithin(to) {
		return errors.Invariant(errors.ErrCellOutOfRange, op, int(to), -1)
	}
	piece := board.Get(from)
	if piece.IsEmpty() {
		return errors.Invariant(errors.ErrEmptySource, op, int(from), -1)
	}
	if !kind.IsMove() || from == to {
		return errors.Invariant(errors.ErrInvalidMoveKind, op, int(from), int(kind))
	}

	switch kind {
	case chess.Promotion:
		if !v.rules.IsPromotable(promotion) {
			return errors.Invariant(errors.ErrInvalidPromotion, op, int(to), int(promotion))
		}
	case chess.Castling:
		side := castlingSide(geom, from, to)
		rookCell, ok := v.ctx.CastlingHome(piece.Colour(), side)
		if !ok || !geom.IsWithin(rookCell) || geom.Rank(from) != geom.Rank(to) || piece.Kind() != chess.King {
			return errors.Invariant(errors.ErrInvalidMoveKind, op, int(from), int(kind))
		}
		if board.Get(rookCell) != chess.MakePiece(chess.Rook, piece.Colour(), false) {
			return errors.Invariant(errors.ErrInvalidMoveKind, op, int(rookCell), int(kind))
		}
	case chess.EnPassant:
		captured, ok := geom.Step(to, chess.Ray{DR: -piece.Colour().Forward()})
		if !ok {
			return errors.Invariant(errors.ErrInvalidMoveKind, op, int(to), int(kind))
		}
		if victim := board.Get(captured); victim.Kind() != chess.Pawn || victim.Colour() == piece.Colour() {
			return errors.Invariant(errors.ErrInvalidMoveKind, op, int(captured), int(kind))
		}
	}

	v.applyMove(board, from, to, kind, promotion)
	return nil
}

// applyMove updates board for a move whose arguments are known to be valid.
// It is the move-application step of every legality probe.
func (v *Validator) applyMove(board *chess.Board, from, to chess.Cell, kind chess.MoveKind, promotion chess.Kind) {
	piece := board.Get(from)
	colour := piece.Colour()
	geom := board.Geometry()

	switch kind {
	case chess.Step, chess.DoublePawn, chess.Capture:
		board.Set(to, chess.MakePiece(piece.Kind(), colour, true))
		board.Empty(from)

	case chess.Castling:
		v.applyMove(board, from, to, chess.Step, chess.Empty)
		rookCell, _ := v.ctx.CastlingHome(colour, castlingSide(geom, from, to))
		passed := geom.Cell((geom.File(from)+geom.File(to))/2, geom.Rank(from))
		if !board.IsEmpty(rookCell) {
			v.applyMove(board, rookCell, passed, chess.Step, chess.Empty)
		}

	case chess.EnPassant:
		v.applyMove(board, from, to, chess.Step, chess.Empty)
		captured, _ := geom.Step(to, chess.Ray{DR: -colour.Forward()})
		board.Empty(captured)

	case chess.Promotion:
		board.Set(to, chess.MakePiece(promotion, colour, true))
		board.Empty(from)
	}
}
