// Package engine provides legal move generation and move application.
//
// Legality is decided without attack maps: every pseudo-legal candidate is
// played on a scratch board, then every opposing piece is asked whether a
// single reply could capture the mover's king.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Validator generates the legal moves of the side to move. It owns the
// scratch board (MINOR) and the Target annotations of one generation
// session, so a Validator must not be shared between goroutines; separate
// Validators are fully independent.
type Validator struct {
	cfg   *config.Config
	rules *config.RulesConfig
	ctx   GameContext

	minor  *chess.Board
	target *Target
	moves  []chess.Move

	// Set by an opponent pass on minor when a reply reaches the king of
	// the side under test.
	kingHurt bool
	probes   int
}

// NewValidator creates a Validator for the rules in cfg and the game
// context ctx. A nil cfg selects the defaults; ctx is required.
func NewValidator(cfg *config.Config, ctx GameContext) (*Validator, error) {
	if ctx == nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "engine.NewValidator: no game context")
	}
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	geom := cfg.Rules.Geometry
	return &Validator{
		cfg:    cfg,
		rules:  &cfg.Rules,
		ctx:    ctx,
		minor:  chess.NewBoard(geom),
		target: NewTarget(geom),
	}, nil
}

// bind checks that major has the validator's geometry.
func (v *Validator) bind(major *chess.Board) error {
	if major == nil || major.Geometry() != v.rules.Geometry {
		return errors.Invariant(errors.ErrGeometryMismatch, "engine.Validator", -1, -1)
	}
	return nil
}

func (v *Validator) begin() {
	v.target.Reset()
	v.moves = v.moves[:0]
	v.probes = 0
	v.kingHurt = false
}

// Generate fills the Target annotations and frontline mask for every piece
// of the side to move on major.
func (v *Validator) Generate(major *chess.Board) error {
	if err := v.bind(major); err != nil {
		return err
	}
	v.begin()
	for c := chess.Cell(0); int(c) < major.Geometry().Size(); c++ {
		if err := v.calculate(major, c); err != nil {
			return err
		}
	}
	v.cfg.Logf(2, "generate %v: %d candidates, %d frontline, %d probes\n",
		v.ctx.CurrentSide(), len(v.moves), len(v.Frontline()), v.probes)
	return nil
}

// GenerateFor resets the annotations and generates the moves of the single
// piece on cell. An empty cell or an opposing piece leaves them empty.
func (v *Validator) GenerateFor(major *chess.Board, cell chess.Cell) error {
	if err := v.bind(major); err != nil {
		return err
	}
	if err := major.Check(cell); err != nil {
		return err
	}
	v.begin()
	return v.calculate(major, cell)
}

// calculate dispatches one cell. On major it generates and proves the
// moves of a piece of the side to move; on minor it looks for an opposing
// reply that captures the king of the side to move.
func (v *Validator) calculate(board *chess.Board, cell chess.Cell) error {
	piece := board.Get(cell)
	if piece.IsEmpty() {
		return nil
	}
	kind := piece.Kind()
	if !v.rules.Enables(kind) {
		return errors.Invariant(errors.ErrInvalidKind, "engine.calculate", int(cell), int(kind))
	}
	desc, err := chess.DescriptorFor(kind)
	if err != nil {
		return err
	}

	probing := board == v.minor
	own := v.ctx.IsCurrentSide(piece.Colour())
	if probing && (own || v.kingHurt) {
		return nil
	}
	if !probing && !own {
		return nil
	}

	switch desc.Special {
	case chess.PawnRule:
		return v.pawn(board, cell, piece, probing)
	case chess.CastlingRule:
		if !probing && !piece.Shifted() {
			if err := v.castling(board, cell, piece); err != nil {
				return err
			}
		}
	}
	return v.rays(board, cell, piece, desc, probing)
}

// rays walks the ray segment of desc from cell.
func (v *Validator) rays(board *chess.Board, cell chess.Cell, piece chess.Piece, desc chess.Descriptor, probing bool) error {
	geom := board.Geometry()
	for _, ray := range desc.Rays() {
		to := cell
		for {
			next, ok := geom.Step(to, ray)
			if !ok {
				break
			}
			to = next
			occupant := board.Get(to)
			if !occupant.IsEmpty() && occupant.Colour() == piece.Colour() {
				break
			}

			if probing {
				if occupant.Kind() == chess.King {
					v.kingHurt = true
					return nil
				}
			} else {
				kind := chess.Step
				if !occupant.IsEmpty() {
					kind = chess.Capture
				}
				if err := v.probe(board, cell, to, kind); err != nil {
					return err
				}
			}

			// sliders stop at the first occupied cell, steppers after one step
			if !desc.Sliding || !occupant.IsEmpty() {
				break
			}
		}
	}
	return nil
}

// probe plays a candidate on minor and records whether it is legal.
func (v *Validator) probe(major *chess.Board, from, to chess.Cell, kind chess.MoveKind) error {
	v.minor.CopyFrom(major)
	promotion := chess.Empty
	if kind == chess.Promotion {
		promotion = v.rules.ProbePromotion()
	}
	v.applyMove(v.minor, from, to, kind, promotion)
	return v.validate(from, to, kind)
}

// validate runs the opponent pass over the already prepared minor board
// and records the outcome of the candidate from -> to.
func (v *Validator) validate(from, to chess.Cell, kind chess.MoveKind) error {
	hurt, err := v.opponentPass()
	if err != nil {
		return err
	}

	result := kind
	if hurt {
		result = chess.Blocked
	} else {
		v.target.MarkFrontline(from)
	}
	v.target.Set(to, result)
	v.moves = append(v.moves, chess.Move{From: from, To: to, Kind: result})
	return nil
}

// opponentPass asks every opposing piece on minor whether it can capture
// the king of the side to move.
func (v *Validator) opponentPass() (bool, error) {
	v.probes++
	v.kingHurt = false
	size := v.minor.Geometry().Size()
	for c := 0; c < size && !v.kingHurt; c++ {
		if err := v.calculate(v.minor, chess.Cell(c)); err != nil {
			return false, err
		}
	}
	hurt := v.kingHurt
	v.kingHurt = false
	return hurt, nil
}

// InCheck reports whether an opposing piece could capture the king of the
// side to move in the position on major.
func (v *Validator) InCheck(major *chess.Board) (bool, error) {
	if err := v.bind(major); err != nil {
		return false, err
	}
	v.minor.CopyFrom(major)
	return v.opponentPass()
}

// Target returns the move kind recorded for a destination cell during the
// last generation pass.
func (v *Validator) Target(cell chess.Cell) chess.MoveKind {
	v.mustWithin("engine.Target", cell)
	return v.target.Get(cell)
}

// IsFrontline reports whether a source cell produced a legal move during
// the last generation pass.
func (v *Validator) IsFrontline(cell chess.Cell) bool {
	v.mustWithin("engine.IsFrontline", cell)
	return v.target.IsFrontline(cell)
}

func (v *Validator) mustWithin(op string, cell chess.Cell) {
	if !v.rules.Geometry.IsWithin(cell) {
		panic(errors.Invariant(errors.ErrCellOutOfRange, op, int(cell), -1))
	}
}

// Frontline returns the frontline cells in ascending order.
func (v *Validator) Frontline() []chess.Cell {
	var cells []chess.Cell
	for c := chess.Cell(0); int(c) < v.rules.Geometry.Size(); c++ {
		if v.target.IsFrontline(c) {
			cells = append(cells, c)
		}
	}
	return cells
}

// Targets returns every destination annotated during the last pass.
func (v *Validator) Targets() map[chess.Cell]chess.MoveKind {
	out := make(map[chess.Cell]chess.MoveKind)
	for c := chess.Cell(0); int(c) < v.rules.Geometry.Size(); c++ {
		if k := v.target.Get(c); k != chess.NoMove {
			out[c] = k
		}
	}
	return out
}

// Moves returns every candidate proved during the last pass, in generation
// order. Rejected candidates carry the Blocked kind.
func (v *Validator) Moves() []chess.Move {
	out := make([]chess.Move, len(v.moves))
	copy(out, v.moves)
	return out
}

// Probes returns the number of opponent passes run by the last pass.
func (v *Validator) Probes() int {
	return v.probes
}
