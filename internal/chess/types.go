// Package chess provides the board-level types of the rules core: piece
// values, board geometry and storage, and the static ray table.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (rank direction of pawns).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// Kind represents a piece kind.
type Kind int

const (
	Empty Kind = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single upper-case letter of a kind, or the blank glyph
// for Empty and '?' for anything unknown.
func (k Kind) Letter() byte {
	letters := []byte{BlankGlyph, 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Valid reports whether k names an actual piece (not Empty).
func (k Kind) Valid() bool {
	return k > Empty && k < NumKinds
}

// MoveKind classifies a generated move.
type MoveKind int

const (
	NoMove MoveKind = iota // No annotation recorded
	Step
	DoublePawn
	Capture
	Castling
	EnPassant
	Promotion
	Blocked // Pseudo-legal candidate rejected by the legality probe
)

// String returns the string representation of a move kind.
func (m MoveKind) String() string {
	names := []string{"None", "Step", "DoublePawn", "Capture", "Castling", "EnPassant", "Promotion", "Blocked"}
	if m >= 0 && int(m) < len(names) {
		return names[m]
	}
	return "Unknown"
}

// IsMove reports whether m is a move a player may choose.
func (m MoveKind) IsMove() bool {
	return m >= Step && m <= Promotion
}
