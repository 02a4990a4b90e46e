package chess

import (
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Ray is a fixed direction vector in files and ranks.
type Ray struct {
	DF int
	DR int
}

// Scale returns the ray multiplied by n.
func (r Ray) Scale(n int) Ray {
	return Ray{DF: r.DF * n, DR: r.DR * n}
}

var (
	Up        = Ray{0, 1}
	Down      = Ray{0, -1}
	Right     = Ray{1, 0}
	Left      = Ray{-1, 0}
	UpRight   = Ray{1, 1}
	UpLeft    = Ray{-1, 1}
	DownRight = Ray{1, -1}
	DownLeft  = Ray{-1, -1}
)

// RaysRow is the number of orthogonal (and of diagonal) directions.
const RaysRow = 4

// Rays holds rook directions, bishop directions and knight offsets in that
// order. Kind descriptors select half-open ranges of it.
var Rays = [RaysRow * 4]Ray{
	Up, Right, Down, Left,
	UpRight, DownRight, DownLeft, UpLeft,
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// SpecialRule names the extra generation hook of a kind.
type SpecialRule int

const (
	NoSpecial    SpecialRule = iota
	PawnRule                 // forward steps, diagonal captures, en passant, promotion
	CastlingRule             // king castling, before the ordinary one-step rays
)

// Descriptor drives generation for one piece kind.
type Descriptor struct {
	First   int  // first index into Rays
	Last    int  // one past the last index into Rays
	Sliding bool // walk each ray until blocked
	Special SpecialRule
}

// Rays returns the ray slice selected by the descriptor.
func (d Descriptor) Rays() []Ray {
	return Rays[d.First:d.Last]
}

var descriptors = map[Kind]Descriptor{
	Pawn:   {Special: PawnRule},
	Knight: {First: RaysRow * 2, Last: RaysRow * 4},
	Bishop: {First: RaysRow, Last: RaysRow * 2, Sliding: true},
	Rook:   {First: 0, Last: RaysRow, Sliding: true},
	Queen:  {First: 0, Last: RaysRow * 2, Sliding: true},
	King:   {First: 0, Last: RaysRow * 2, Special: CastlingRule},
}

// DescriptorFor returns the generation descriptor of kind.
func DescriptorFor(kind Kind) (Descriptor, error) {
	d, ok := descriptors[kind]
	if !ok {
		return Descriptor{}, errors.Invariant(errors.ErrInvalidKind, "chess.DescriptorFor", -1, int(kind))
	}
	return d, nil
}

// CastlingSide selects the king-side or queen-side rook.
type CastlingSide int

const (
	KingSide CastlingSide = iota
	QueenSide
)

// CastlingSides lists both sides in generation order.
var CastlingSides = [2]CastlingSide{KingSide, QueenSide}

// String returns the string representation of a castling side.
func (s CastlingSide) String() string {
	if s == QueenSide {
		return "QueenSide"
	}
	return "KingSide"
}

// Ray returns the direction the king travels when castling on side s.
func (s CastlingSide) Ray() Ray {
	if s == QueenSide {
		return Left
	}
	return Right
}
