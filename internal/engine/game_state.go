package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// GameContext is what the validator needs to know about the game beyond
// the board: whose turn it is, the last move played (for en passant) and
// where each side's king and castling rooks start.
type GameContext interface {
	CurrentSide() chess.Colour
	IsCurrentSide(colour chess.Colour) bool
	LastMove() (chess.MoveKind, chess.Cell)
	KingHome(colour chess.Colour) (chess.Cell, bool)
	CastlingHome(colour chess.Colour, side chess.CastlingSide) (chess.Cell, bool)
}

// Game is the standard GameContext: side to move, move history and home
// cells of the kings and castling rooks.
type Game struct {
	toMove   chess.Colour
	lastKind chess.MoveKind
	lastCell chess.Cell
	kingHome [2]chess.Cell
	rookHome [2][2]chess.Cell // [colour][side], NoCell when absent
	history  []chess.Move
}

// NewGame creates a Game with White to move and the homes of geom: kings on
// the middle file and rooks on the corner cells of each side's home rank.
func NewGame(geom chess.Geometry) *Game {
	g := &Game{
		toMove:   chess.White,
		lastKind: chess.NoMove,
		lastCell: chess.NoCell,
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		rank := 0
		if colour == chess.Black {
			rank = geom.Ranks - 1
		}
		g.kingHome[colour] = geom.Cell(geom.Files/2, rank)
		g.rookHome[colour][chess.KingSide] = geom.Cell(geom.Files-1, rank)
		g.rookHome[colour][chess.QueenSide] = geom.Cell(0, rank)
	}
	return g
}

// CurrentSide returns the side to move.
func (g *Game) CurrentSide() chess.Colour {
	return g.toMove
}

// IsCurrentSide reports whether colour is the side to move.
func (g *Game) IsCurrentSide(colour chess.Colour) bool {
	return g.toMove == colour
}

// LastMove returns the kind and destination of the last move played, or
// NoMove and NoCell before the first move.
func (g *Game) LastMove() (chess.MoveKind, chess.Cell) {
	return g.lastKind, g.lastCell
}

// KingHome returns the home cell of colour's king.
func (g *Game) KingHome(colour chess.Colour) (chess.Cell, bool) {
	c := g.kingHome[colour]
	return c, c != chess.NoCell
}

// CastlingHome returns the home cell of colour's rook on side.
func (g *Game) CastlingHome(colour chess.Colour, side chess.CastlingSide) (chess.Cell, bool) {
	c := g.rookHome[colour][side]
	return c, c != chess.NoCell
}

// SetSideToMove sets the side to move.
func (g *Game) SetSideToMove(colour chess.Colour) {
	g.toMove = colour
}

// SetLastMove overrides the last move, e.g. from a FEN en passant field.
func (g *Game) SetLastMove(kind chess.MoveKind, cell chess.Cell) {
	g.lastKind = kind
	g.lastCell = cell
}

// SetKingHome sets (or with NoCell removes) the home cell of colour's king.
func (g *Game) SetKingHome(colour chess.Colour, cell chess.Cell) {
	g.kingHome[colour] = cell
}

// SetCastlingHome sets (or with NoCell removes) the home cell of colour's
// rook on side.
func (g *Game) SetCastlingHome(colour chess.Colour, side chess.CastlingSide, cell chess.Cell) {
	g.rookHome[colour][side] = cell
}

// Record appends a played move to the history, makes it the last move and
// passes the turn.
func (g *Game) Record(m chess.Move) {
	g.history = append(g.history, m)
	g.lastKind = m.Kind
	g.lastCell = m.To
	g.toMove = g.toMove.Opposite()
}

// History returns the moves played so far.
func (g *Game) History() []chess.Move {
	out := make([]chess.Move, len(g.history))
	copy(out, g.history)
	return out
}

// GameState captures the mutable game state for save/restore operations.
type GameState struct {
	ToMove   chess.Colour
	LastKind chess.MoveKind
	LastCell chess.Cell
	Plies    int
}

// SaveState captures the current game state for later restoration.
func (g *Game) SaveState() GameState {
	return GameState{
		ToMove:   g.toMove,
		LastKind: g.lastKind,
		LastCell: g.lastCell,
		Plies:    len(g.history),
	}
}

// RestoreState restores the game to a previously saved state. Moves
// recorded after the save are dropped from the history.
func (g *Game) RestoreState(s GameState) {
	g.toMove = s.ToMove
	g.lastKind = s.LastKind
	g.lastCell = s.LastCell
	if s.Plies <= len(g.history) {
		g.history = g.history[:s.Plies]
	}
}

// Play checks that m is legal on board for the side to move, commits it and
// records it. v must use g as its game context.
func (g *Game) Play(v *Validator, board *chess.Board, m chess.Move) error {
	if err := v.GenerateFor(board, m.From); err != nil {
		return err
	}
	if got := v.Target(m.To); got != m.Kind {
		return fmt.Errorf("%s recorded as %v, played as %v: %w",
			m.Name(board.Geometry()), got, m.Kind, errors.ErrIllegalMove)
	}
	if err := v.Apply(board, m.From, m.To, m.Kind, m.Promotion); err != nil {
		return err
	}
	g.Record(m)
	return nil
}

// Clone returns an independent copy of g.
func (g *Game) Clone() *Game {
	c := *g
	c.history = g.History()
	return &c
}
