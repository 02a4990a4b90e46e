package chess

import (
	"fmt"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Piece is an encoded piece value: kind, colour and shifted flag packed
// into one byte. The zero value is NoPiece.
type Piece uint8

// PieceShift is the bit offset of the kind inside a Piece.
const PieceShift = 2

const (
	colourBit  Piece = 1 << 0
	shiftedBit Piece = 1 << 1
)

// NoPiece is the empty cell value.
const NoPiece Piece = 0

// BlankGlyph is the display glyph of an empty cell.
const BlankGlyph = '.'

// MakePiece encodes a piece. An Empty kind always yields NoPiece; any kind
// outside Empty..King or colour other than Black and White panics with an
// invariant error.
func MakePiece(kind Kind, colour Colour, shifted bool) Piece {
	if kind == Empty {
		return NoPiece
	}
	if !kind.Valid() {
		panic(errors.Invariant(errors.ErrInvalidKind, "chess.MakePiece", -1, int(kind)))
	}
	if colour != Black && colour != White {
		panic(errors.Invariant(errors.ErrInvalidKind, "chess.MakePiece", -1, int(colour)))
	}
	p := Piece(kind) << PieceShift
	if colour == White {
		p |= colourBit
	}
	if shifted {
		p |= shiftedBit
	}
	return p
}

// W creates an unshifted white piece.
func W(kind Kind) Piece {
	return MakePiece(kind, White, false)
}

// B creates an unshifted black piece.
func B(kind Kind) Piece {
	return MakePiece(kind, Black, false)
}

// Kind extracts the piece kind.
func (p Piece) Kind() Kind {
	return Kind(p >> PieceShift)
}

// Colour extracts the colour. Meaningless for NoPiece.
func (p Piece) Colour() Colour {
	if p&colourBit != 0 {
		return White
	}
	return Black
}

// Shifted reports whether the piece has left its starting cell.
func (p Piece) Shifted() bool {
	return p&shiftedBit != 0
}

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool {
	return p.Kind() == Empty
}

// IsWhite reports whether p is a white piece.
func (p Piece) IsWhite() bool {
	return !p.IsEmpty() && p.Colour() == White
}

// WithShifted returns p with the shifted flag set to shifted.
func (p Piece) WithShifted(shifted bool) Piece {
	if p.IsEmpty() {
		return NoPiece
	}
	if shifted {
		return p | shiftedBit
	}
	return p &^ shiftedBit
}

// String returns a readable form such as "White Rook*" (star = shifted).
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	s := fmt.Sprintf("%s %s", p.Colour(), p.Kind())
	if p.Shifted() {
		s += "*"
	}
	return s
}

// Display returns the glyph of p: BlankGlyph for an empty cell, otherwise
// the kind letter, upper-case for white and lower-case for black.
func Display(p Piece) byte {
	if p.IsEmpty() {
		return BlankGlyph
	}
	letter := p.Kind().Letter()
	if p.IsWhite() {
		return toUpper(letter)
	}
	return toLower(letter)
}

// ParseGlyph reports whether glyph is the blank glyph or, ignoring case,
// one of the kind letters. Colour and shift are not derived here.
func ParseGlyph(glyph byte) bool {
	if glyph == BlankGlyph {
		return true
	}
	_, ok := KindFromLetter(glyph)
	return ok
}

// KindFromLetter converts a kind letter (either case) to its Kind.
func KindFromLetter(letter byte) (Kind, bool) {
	upper := toUpper(letter)
	for k := Pawn; k < NumKinds; k++ {
		if k.Letter() == upper {
			return k, true
		}
	}
	return Empty, false
}

func toUpper(b byte) byte {
	return byte(unicode.ToUpper(rune(b)))
}

func toLower(b byte) byte {
	return byte(unicode.ToLower(rune(b)))
}
