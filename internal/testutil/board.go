package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Placement maps cell names such as "e1" to the piece standing there.
type Placement map[string]chess.Piece

// ParseTestBoard builds a board of the given geometry from a placement, or
// returns nil if a cell name is invalid.
func ParseTestBoard(geom chess.Geometry, placement Placement) *chess.Board {
	board := chess.NewBoard(geom)
	for name, piece := range placement {
		c, err := geom.ParseCell(name)
		if err != nil {
			return nil
		}
		board.Set(c, piece)
	}
	return board
}

// MustBoard builds a board from a placement.
// It calls t.Fatal if a cell name is invalid.
func MustBoard(t *testing.T, geom chess.Geometry, placement Placement) *chess.Board {
	t.Helper()
	board := ParseTestBoard(geom, placement)
	if board == nil {
		t.Fatalf("invalid placement: %v", placement)
	}
	return board
}

// MustCell parses a cell name such as "e4".
// It calls t.Fatal if the name is invalid for geom.
func MustCell(t *testing.T, geom chess.Geometry, name string) chess.Cell {
	t.Helper()
	c, err := geom.ParseCell(name)
	if err != nil {
		t.Fatalf("invalid cell %q: %v", name, err)
	}
	return c
}

// MoveNames returns the names of moves, in order.
func MoveNames(geom chess.Geometry, moves []chess.Move) []string {
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		names = append(names, m.Name(geom))
	}
	return names
}
