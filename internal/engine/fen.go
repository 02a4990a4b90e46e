package engine

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPositionFromFEN sets up a standard 8x8 position from a FEN string.
func NewPositionFromFEN(fen string) (*chess.Board, *Game, error) {
	return ParseFEN(chess.Standard, fen)
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() (*chess.Board, *Game) {
	board, game, _ := NewPositionFromFEN(InitialFEN)
	return board, game
}

// ParseFEN sets up a position of the given geometry from a FEN string.
//
// FEN carries no per-piece history, so shifted flags are derived: a pawn is
// unshifted only on its starting rank, a king only while its side keeps a
// castling right, and a rook only on a home cell whose right is kept. The
// en passant field becomes a double pawn advance as the last move.
func ParseFEN(geom chess.Geometry, fen string) (*chess.Board, *Game, error) {
	if geom.Files < 1 || geom.Ranks < 2 {
		return nil, nil, &errors.PositionError{
			Err:   errors.ErrInvalidFEN,
			Field: "geometry",
			Got:   strconv.Itoa(geom.Files) + "x" + strconv.Itoa(geom.Ranks),
		}
	}
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, nil, &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "placement"}
	}

	board := chess.NewBoard(geom)
	game := NewGame(geom)

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, nil, err
	}
	if err := parseSideToMove(game, parts); err != nil {
		return nil, nil, err
	}
	if err := parseCastlingRights(board, game, parts); err != nil {
		return nil, nil, err
	}
	if err := parseEnPassant(board, game, parts); err != nil {
		return nil, nil, err
	}
	return board, game, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	geom := board.Geometry()
	rows := strings.Split(positions, "/")
	if len(rows) != geom.Ranks {
		return &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "placement", Got: positions}
	}

	for i, row := range rows {
		rank := geom.Ranks - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '0' && c <= '9' {
				k := j
				for k < len(row) && row[k] >= '0' && row[k] <= '9' {
					k++
				}
				n, _ := strconv.Atoi(row[j:k])
				file += n
				j = k - 1
				continue
			}

			kind, ok := chess.KindFromLetter(c)
			if !ok {
				return &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "placement", Got: string(c)}
			}
			if file >= geom.Files {
				return &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "placement", Got: row}
			}

			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}
			// provisional flags, settled by parseCastlingRights
			shifted := kind != chess.Pawn || rank != pawnStartRank(geom, colour)
			board.Set(geom.Cell(file, rank), chess.MakePiece(kind, colour, shifted))
			file++
		}
		if file != geom.Files {
			return &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "placement", Got: row}
		}
	}
	return nil
}

// pawnStartRank returns the rank colour's pawns start on.
func pawnStartRank(geom chess.Geometry, colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return geom.Ranks - 2
}

// homeRank returns colour's back rank.
func homeRank(geom chess.Geometry, colour chess.Colour) int {
	if colour == chess.White {
		return 0
	}
	return geom.Ranks - 1
}

// parseSideToMove parses the side to move field.
func parseSideToMove(game *Game, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		game.SetSideToMove(chess.White)
	case "b":
		game.SetSideToMove(chess.Black)
	default:
		return &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "side", Got: parts[1]}
	}
	return nil
}

// parseCastlingRights parses the castling availability field and settles
// the shifted flags of kings and rooks.
func parseCastlingRights(board *chess.Board, game *Game, parts []string) error {
	geom := board.Geometry()
	var rights [2][2]bool

	if len(parts) >= 3 && parts[2] != "-" {
		for _, c := range parts[2] {
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			switch unicode.ToUpper(c) {
			case 'K':
				rights[colour][chess.KingSide] = true
			case 'Q':
				rights[colour][chess.QueenSide] = true
			default:
				// Chess960 notation - rook file letter
				file := int(unicode.ToLower(c) - 'a')
				if file < 0 || file >= geom.Files {
					return &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "castling", Got: string(c)}
				}
				side := chess.QueenSide
				if king, ok := board.FindKing(colour); ok && file > geom.File(king) {
					side = chess.KingSide
				}
				game.SetCastlingHome(colour, side, geom.Cell(file, homeRank(geom, colour)))
				rights[colour][side] = true
			}
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if king, ok := board.FindKing(colour); ok && geom.Rank(king) == homeRank(geom, colour) {
			game.SetKingHome(colour, king)
		}
		kept := false
		for _, side := range chess.CastlingSides {
			home, ok := game.CastlingHome(colour, side)
			if !ok {
				continue
			}
			rook := board.Get(home)
			if !rights[colour][side] || rook.Kind() != chess.Rook || rook.Colour() != colour {
				continue
			}
			board.Set(home, rook.WithShifted(false))
			kept = true
		}
		if king, ok := board.FindKing(colour); ok && kept {
			board.Set(king, board.Get(king).WithShifted(false))
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, game *Game, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	geom := board.Geometry()
	target, err := geom.ParseCell(parts[3])
	if err != nil {
		return &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "en passant", Got: parts[3]}
	}
	// the pawn that just advanced sits one cell beyond the target, seen from
	// the side that moved
	mover := game.CurrentSide().Opposite()
	pawn, ok := geom.Step(target, chess.Ray{DR: mover.Forward()})
	if !ok {
		return &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "en passant", Got: parts[3]}
	}
	game.SetLastMove(chess.DoublePawn, pawn)
	return nil
}

// PositionToFEN converts a position to a FEN string. Clocks are not
// tracked and are always written as "0 1".
func PositionToFEN(board *chess.Board, game *Game) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if game.CurrentSide() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board, game)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board, game)
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	geom := board.Geometry()
	for rank := geom.Ranks - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < geom.Files; file++ {
			piece := board.Get(geom.Cell(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(chess.Display(piece))
		}
		if emptyCount > 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board, game *Game) {
	letters := [2][2]byte{
		chess.White: {chess.KingSide: 'K', chess.QueenSide: 'Q'},
		chess.Black: {chess.KingSide: 'k', chess.QueenSide: 'q'},
	}
	hasCastling := false
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king, ok := board.FindKing(colour)
		if !ok || board.Get(king).Shifted() {
			continue
		}
		for _, side := range chess.CastlingSides {
			home, ok := game.CastlingHome(colour, side)
			if ok && board.Get(home) == chess.MakePiece(chess.Rook, colour, false) {
				sb.WriteByte(letters[colour][side])
				hasCastling = true
			}
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board, game *Game) {
	kind, cell := game.LastMove()
	if kind == chess.DoublePawn {
		geom := board.Geometry()
		mover := game.CurrentSide().Opposite()
		if target, ok := geom.Step(cell, chess.Ray{DR: -mover.Forward()}); ok {
			sb.WriteString(geom.CellName(target))
			return
		}
	}
	sb.WriteByte('-')
}
