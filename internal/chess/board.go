package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Cell is a row-major cell index: rank*Files + file, rank 0 being White's
// home rank.
type Cell int

// NoCell marks the absence of a cell.
const NoCell Cell = -1

// Geometry is the shape of a board.
type Geometry struct {
	Files int
	Ranks int
}

// Standard is the 8x8 board.
var Standard = Geometry{Files: 8, Ranks: 8}

// Size returns the number of cells.
func (g Geometry) Size() int {
	return g.Files * g.Ranks
}

// Cell returns the cell at file, rank (both 0-based). It does not check bounds.
func (g Geometry) Cell(file, rank int) Cell {
	return Cell(rank*g.Files + file)
}

// File returns the 0-based file of c.
func (g Geometry) File(c Cell) int {
	return int(c) % g.Files
}

// Rank returns the 0-based rank of c.
func (g Geometry) Rank(c Cell) int {
	return int(c) / g.Files
}

// IsWithin reports whether c lies on the board.
func (g Geometry) IsWithin(c Cell) bool {
	return c >= 0 && int(c) < g.Size()
}

// IsWithinStep reports whether c lies on the board and one step along ray
// from c still does. A step that would leave through one edge and wrap
// around to the opposite one is rejected.
func (g Geometry) IsWithinStep(c Cell, ray Ray) bool {
	if !g.IsWithin(c) {
		return false
	}
	file := g.File(c) + ray.DF
	rank := g.Rank(c) + ray.DR
	return file >= 0 && file < g.Files && rank >= 0 && rank < g.Ranks
}

// Step returns the neighbour of c along ray and whether it is on the board.
func (g Geometry) Step(c Cell, ray Ray) (Cell, bool) {
	if !g.IsWithinStep(c, ray) {
		return NoCell, false
	}
	return c + Cell(ray.DR*g.Files+ray.DF), true
}

// LastRank returns the farthest rank for colour (the promotion rank).
func (g Geometry) LastRank(colour Colour) int {
	if colour == White {
		return g.Ranks - 1
	}
	return 0
}

// CellName returns the algebraic name of c ("e4"). Files beyond 'z' are not
// representable and yield "?".
func (g Geometry) CellName(c Cell) string {
	if !g.IsWithin(c) || g.Files > 26 {
		return "?"
	}
	return fmt.Sprintf("%c%d", 'a'+g.File(c), g.Rank(c)+1)
}

// ParseCell converts an algebraic cell name to a Cell.
func (g Geometry) ParseCell(name string) (Cell, error) {
	var file byte
	var rank int
	if n, err := fmt.Sscanf(name, "%c%d", &file, &rank); err != nil || n != 2 {
		return NoCell, errors.Invariant(errors.ErrCellOutOfRange, "chess.ParseCell", -1, -1)
	}
	f := int(file) - 'a'
	r := rank - 1
	if f < 0 || f >= g.Files || r < 0 || r >= g.Ranks {
		return NoCell, errors.Invariant(errors.ErrCellOutOfRange, "chess.ParseCell", -1, -1)
	}
	return g.Cell(f, r), nil
}

// Board is a fixed array of piece values. The rules core works with two
// boards of the same geometry: the authoritative position (MAJOR) owned by
// the caller, and a scratch board (MINOR) owned by a validator session.
type Board struct {
	geom  Geometry
	cells []Piece
}

// NewBoard creates an empty board of the given geometry.
func NewBoard(geom Geometry) *Board {
	return &Board{
		geom:  geom,
		cells: make([]Piece, geom.Size()),
	}
}

// Geometry returns the board shape.
func (b *Board) Geometry() Geometry {
	return b.geom
}

// Check returns an invariant error when c is off the board.
func (b *Board) Check(c Cell) error {
	if !b.geom.IsWithin(c) {
		return errors.Invariant(errors.ErrCellOutOfRange, "board", int(c), -1)
	}
	return nil
}

func (b *Board) mustWithin(op string, c Cell) {
	if !b.geom.IsWithin(c) {
		panic(errors.Invariant(errors.ErrCellOutOfRange, op, int(c), -1))
	}
}

// Get returns the piece at c. An off-board cell panics with an invariant error.
func (b *Board) Get(c Cell) Piece {
	b.mustWithin("board.Get", c)
	return b.cells[c]
}

// Set places p at c.
func (b *Board) Set(c Cell, p Piece) {
	b.mustWithin("board.Set", c)
	b.cells[c] = p
}

// Empty clears c.
func (b *Board) Empty(c Cell) {
	b.mustWithin("board.Empty", c)
	b.cells[c] = NoPiece
}

// IsEmpty reports whether c holds no piece.
func (b *Board) IsEmpty(c Cell) bool {
	return b.Get(c).IsEmpty()
}

// CopyFrom overwrites b with the contents of src. Both boards must share
// a geometry.
func (b *Board) CopyFrom(src *Board) {
	if b.geom != src.geom {
		panic(errors.Invariant(errors.ErrGeometryMismatch, "board.CopyFrom", -1, src.geom.Size()))
	}
	copy(b.cells, src.cells)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := NewBoard(b.geom)
	copy(nb.cells, b.cells)
	return nb
}

// Equal reports whether both boards have the same shape and contents.
func (b *Board) Equal(other *Board) bool {
	if b.geom != other.geom {
		return false
	}
	for i, p := range b.cells {
		if other.cells[i] != p {
			return false
		}
	}
	return true
}

// Find returns the first cell holding p.
func (b *Board) Find(p Piece) (Cell, bool) {
	for i, q := range b.cells {
		if q == p {
			return Cell(i), true
		}
	}
	return NoCell, false
}

// FindKing returns the cell of colour's king regardless of its shifted flag.
func (b *Board) FindKing(colour Colour) (Cell, bool) {
	for i, q := range b.cells {
		if q.Kind() == King && q.Colour() == colour {
			return Cell(i), true
		}
	}
	return NoCell, false
}
