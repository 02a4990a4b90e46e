package engine

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// Reference positions with well known perft counts.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	endgameFEN   = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	mirrorFEN    = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	talkchessFEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	enPassantFEN = "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3"
	castlingFEN  = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"
)

// newPosition sets up a standard position with a default validator bound to
// its game.
func newPosition(t *testing.T, fen string) (*chess.Board, *Game, *Validator) {
	t.Helper()
	board, game, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error = %v", fen, err)
	}
	v, err := NewValidator(config.NewConfigBuilder().WithVerbosity(0).Build(), game)
	if err != nil {
		t.Fatalf("NewValidator() error = %v", err)
	}
	return board, game, v
}

// cell parses a standard cell name.
func cell(t *testing.T, name string) chess.Cell {
	t.Helper()
	return testutil.MustCell(t, chess.Standard, name)
}

// sortedNames returns the names of moves in sorted order.
func sortedNames(geom chess.Geometry, moves []chess.Move) []string {
	return sorted(testutil.MoveNames(geom, moves))
}

func sorted(names []string) []string {
	out := append([]string(nil), names...)
	slices.Sort(out)
	return out
}
