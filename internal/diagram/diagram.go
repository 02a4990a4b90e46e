// Package diagram renders boards and generation passes for display: plain
// text through the piece glyphs, and SVG.
package diagram

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Pass is the result of a generation pass, as exposed by engine.Validator.
type Pass interface {
	Targets() map[chess.Cell]chess.MoveKind
	Frontline() []chess.Cell
}

// markers are the text annotations drawn after a glyph, indexed by MoveKind.
var markers = [...]byte{
	chess.NoMove:     ' ',
	chess.Step:       '*',
	chess.DoublePawn: ':',
	chess.Capture:    'x',
	chess.Castling:   'o',
	chess.EnPassant:  'e',
	chess.Promotion:  '=',
	chess.Blocked:    '#',
}

// Marker returns the text annotation of a move kind.
func Marker(kind chess.MoveKind) byte {
	if kind < 0 || int(kind) >= len(markers) {
		return '?'
	}
	return markers[kind]
}

// Text returns the board as rows of glyphs, last rank first, with rank
// numbers and file letters.
func Text(board *chess.Board) string {
	return render(board, nil)
}

// Annotated is Text with each destination of pass marked after its glyph.
func Annotated(board *chess.Board, pass Pass) string {
	return render(board, pass.Targets())
}

func render(board *chess.Board, targets map[chess.Cell]chess.MoveKind) string {
	geom := board.Geometry()
	var sb strings.Builder
	for rank := geom.Ranks - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%2d ", rank+1)
		for file := 0; file < geom.Files; file++ {
			c := geom.Cell(file, rank)
			sb.WriteByte(chess.Display(board.Get(c)))
			sb.WriteByte(Marker(targets[c]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   ")
	for file := 0; file < geom.Files; file++ {
		sb.WriteByte(byte('a' + file))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Legend lists the destinations of pass in cell order, one "e4 DoublePawn"
// line each.
func Legend(geom chess.Geometry, pass Pass) []string {
	targets := pass.Targets()
	cells := SortedKeys(targets)

	lines := make([]string, 0, len(cells))
	for _, c := range cells {
		lines = append(lines, fmt.Sprintf("%s %v", geom.CellName(c), targets[c]))
	}
	return lines
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
