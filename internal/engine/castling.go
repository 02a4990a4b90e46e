package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castling generates the castling candidates of an unshifted king of the
// side to move standing on its home cell.
//
// The walk towards the rook places a copy of the king on each crossed cell
// of minor (at most CastlingKingSteps of them). The king also stays on its
// own cell, so the opponent pass rejects castling out of, through or into
// an attacked cell.
func (v *Validator) castling(board *chess.Board, cell chess.Cell, king chess.Piece) error {
	geom := board.Geometry()
	if home, ok := v.ctx.KingHome(king.Colour()); !ok || home != cell {
		return nil
	}
	rook := chess.MakePiece(chess.Rook, king.Colour(), false)

	for _, side := range chess.CastlingSides {
		rookCell, ok := v.ctx.CastlingHome(king.Colour(), side)
		if !ok || !geom.IsWithin(rookCell) || board.Get(rookCell) != rook {
			continue
		}
		ray := side.Ray()

		v.minor.CopyFrom(board)
		to, ok := geom.Step(cell, ray)
		for steps := 0; ok && to != rookCell && board.IsEmpty(to); steps++ {
			if steps < v.rules.CastlingKingSteps {
				v.minor.Set(to, king)
			}
			to, ok = geom.Step(to, ray)
		}
		if !ok || to != rookCell {
			continue
		}

		// the king never jumps over its rook
		dest, ok := geom.Step(cell, ray.Scale(2))
		if !ok || abs(geom.File(dest)-geom.File(cell)) >= abs(geom.File(rookCell)-geom.File(cell)) {
			continue
		}
		if err := v.validate(cell, dest, chess.Castling); err != nil {
			return err
		}
	}
	return nil
}

// castlingSide returns the side a king move from -> to castles towards.
func castlingSide(geom chess.Geometry, from, to chess.Cell) chess.CastlingSide {
	if geom.File(to) < geom.File(from) {
		return chess.QueenSide
	}
	return chess.KingSide
}
