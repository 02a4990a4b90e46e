package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// referenceMoves returns the legal moves of a standard position as
// generated by the dragontoothmg bitboard generator. Its square numbering
// (a1 = 0, h8 = 63) matches chess.Standard.
func referenceMoves(fen string) []string {
	board := dragontoothmg.ParseFen(fen)
	moves := board.GenerateLegalMoves()

	names := make([]string, 0, len(moves))
	for i := range moves {
		m := &moves[i]
		name := chess.Standard.CellName(chess.Cell(m.From())) + chess.Standard.CellName(chess.Cell(m.To()))
		switch m.Promote() {
		case dragontoothmg.Queen:
			name += "q"
		case dragontoothmg.Rook:
			name += "r"
		case dragontoothmg.Bishop:
			name += "b"
		case dragontoothmg.Knight:
			name += "n"
		}
		names = append(names, name)
	}
	return sorted(names)
}

// TestLegalMoves_MatchReference compares the legal move list with an
// independent bitboard generator.
func TestLegalMoves_MatchReference(t *testing.T) {
	fens := []string{
		InitialFEN,
		kiwipeteFEN,
		endgameFEN,
		mirrorFEN,
		talkchessFEN,
		enPassantFEN,
		castlingFEN,
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
		"8/8/8/K2pP2r/8/8/8/4k3 w - d6 0 1",
		"r3k2r/8/8/8/8/8/5r2/R3K2R w KQ - 0 1",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board, _, v := newPosition(t, fen)
			moves, err := LegalMoves(v, board)
			if err != nil {
				t.Fatalf("LegalMoves() error = %v", err)
			}

			got := sortedNames(board.Geometry(), moves)
			if diff := cmp.Diff(referenceMoves(fen), got); diff != "" {
				t.Errorf("legal moves mismatch (-reference +got):\n%s", diff)
			}
		})
	}
}
