package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawn generates the moves of a pawn, or on minor checks whether its
// diagonal reaches the king of the side to move.
func (v *Validator) pawn(board *chess.Board, cell chess.Cell, pawn chess.Piece, probing bool) error {
	geom := board.Geometry()
	colour := pawn.Colour()
	forward := chess.Ray{DR: colour.Forward()}

	// forward diagonals: captures and en passant
	for _, ray := range [2]chess.Ray{{DF: 1, DR: forward.DR}, {DF: -1, DR: forward.DR}} {
		to, ok := geom.Step(cell, ray)
		if !ok {
			continue
		}
		occupant := board.Get(to)
		if !occupant.IsEmpty() && occupant.Colour() == colour {
			continue
		}

		if probing {
			if occupant.Kind() == chess.King {
				v.kingHurt = true
				return nil
			}
			continue
		}

		var kind chess.MoveKind
		switch {
		case !occupant.IsEmpty():
			kind = v.promoteOr(geom, to, colour, chess.Capture)
		case v.isEnPassantTarget(board, to, colour):
			kind = chess.EnPassant
		default:
			continue
		}
		if err := v.probe(board, cell, to, kind); err != nil {
			return err
		}
	}

	// the opponent's pawns cannot reach a king by walking forward
	if probing {
		return nil
	}

	to, ok := geom.Step(cell, forward)
	if !ok || !board.IsEmpty(to) {
		return nil
	}
	if err := v.probe(board, cell, to, v.promoteOr(geom, to, colour, chess.Step)); err != nil {
		return err
	}

	if pawn.Shifted() {
		return nil
	}
	to, ok = geom.Step(to, forward)
	if !ok || !board.IsEmpty(to) {
		return nil
	}
	return v.probe(board, cell, to, v.promoteOr(geom, to, colour, chess.DoublePawn))
}

// promoteOr returns Promotion when to lies on the farthest rank for colour.
func (v *Validator) promoteOr(geom chess.Geometry, to chess.Cell, colour chess.Colour, kind chess.MoveKind) chess.MoveKind {
	if geom.Rank(to) == geom.LastRank(colour) {
		return chess.Promotion
	}
	return kind
}

// isEnPassantTarget reports whether the empty cell to may be taken en
// passant: the last move was a double advance of an opposing pawn that
// landed right behind it.
func (v *Validator) isEnPassantTarget(board *chess.Board, to chess.Cell, colour chess.Colour) bool {
	lastKind, lastCell := v.ctx.LastMove()
	if lastKind != chess.DoublePawn {
		return false
	}
	behind, ok := board.Geometry().Step(to, chess.Ray{DR: -colour.Forward()})
	if !ok || behind != lastCell {
		return false
	}
	victim := board.Get(behind)
	return victim.Kind() == chess.Pawn && victim.Colour() != colour
}
