package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// LegalMoves returns every legal move of the side to move on board, in
// generation order. A promotion is expanded into one move per promotable
// kind of the rules.
func LegalMoves(v *Validator, board *chess.Board) ([]chess.Move, error) {
	if err := v.Generate(board); err != nil {
		return nil, err
	}
	var moves []chess.Move
	for _, m := range v.moves {
		switch m.Kind {
		case chess.Blocked:
			continue
		case chess.Promotion:
			for _, kind := range v.rules.PromotionKinds {
				m.Promotion = kind
				moves = append(moves, m)
			}
		default:
			moves = append(moves, m)
		}
	}
	return moves, nil
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(v *Validator, board *chess.Board) (bool, error) {
	if err := v.Generate(board); err != nil {
		return false, err
	}
	return len(v.Frontline()) > 0, nil
}

// IsInCheck returns true if the king of the side to move is in check.
func IsInCheck(v *Validator, board *chess.Board) (bool, error) {
	return v.InCheck(board)
}

// IsCheckmate returns true if the side to move is in check with no legal
// move.
func IsCheckmate(v *Validator, board *chess.Board) (bool, error) {
	return inCheckWithMoves(v, board, true)
}

// IsStalemate returns true if the side to move is not in check but has no
// legal move.
func IsStalemate(v *Validator, board *chess.Board) (bool, error) {
	return inCheckWithMoves(v, board, false)
}

func inCheckWithMoves(v *Validator, board *chess.Board, wantCheck bool) (bool, error) {
	inCheck, err := v.InCheck(board)
	if err != nil || inCheck != wantCheck {
		return false, err
	}
	hasMoves, err := HasLegalMoves(v, board)
	if err != nil {
		return false, err
	}
	return !hasMoves, nil
}

// Perft counts the leaf nodes of the legal move tree of the given depth.
// v must use game as its game context. board and game are restored before
// Perft returns.
func Perft(v *Validator, game *Game, board *chess.Board, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	moves, err := LegalMoves(v, board)
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return uint64(len(moves)), nil
	}

	var nodes uint64
	state := game.SaveState()
	for _, m := range moves {
		next := board.Copy()
		if err := v.Apply(next, m.From, m.To, m.Kind, m.Promotion); err != nil {
			return 0, err
		}
		game.Record(m)
		n, err := Perft(v, game, next, depth-1)
		game.RestoreState(state)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// Divide returns the Perft count below each legal move of the side to
// move, keyed by the move name.
func Divide(v *Validator, game *Game, board *chess.Board, depth int) (map[string]uint64, error) {
	moves, err := LegalMoves(v, board)
	if err != nil {
		return nil, err
	}
	geom := board.Geometry()
	out := make(map[string]uint64, len(moves))
	state := game.SaveState()
	for _, m := range moves {
		next := board.Copy()
		if err := v.Apply(next, m.From, m.To, m.Kind, m.Promotion); err != nil {
			return nil, err
		}
		game.Record(m)
		n, err := Perft(v, game, next, depth-1)
		game.RestoreState(state)
		if err != nil {
			return nil, err
		}
		out[m.Name(geom)] = n
	}
	return out, nil
}

// ParallelDivide is Divide with the subtrees counted on workers goroutines.
// Each subtree gets its own board, game and validator built from cfg, so
// board and game are only read.
func ParallelDivide(cfg *config.Config, game *Game, board *chess.Board, depth, workers int) (map[string]uint64, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	root, err := NewValidator(quiet(cfg), game)
	if err != nil {
		return nil, err
	}
	moves, err := LegalMoves(root, board)
	if err != nil {
		return nil, err
	}
	cfg.Logf(1, "divide: %d root moves on %d workers\n", len(moves), workers)

	counts, err := worker.Map(workers, moves, func(m chess.Move) (uint64, error) {
		g := game.Clone()
		v, err := NewValidator(quiet(cfg), g)
		if err != nil {
			return 0, err
		}
		next := board.Copy()
		if err := v.Apply(next, m.From, m.To, m.Kind, m.Promotion); err != nil {
			return 0, err
		}
		g.Record(m)
		return Perft(v, g, next, depth-1)
	})
	if err != nil {
		return nil, err
	}

	geom := board.Geometry()
	out := make(map[string]uint64, len(moves))
	for i, m := range moves {
		out[m.Name(geom)] = counts[i]
	}
	return out, nil
}

// quiet returns a copy of cfg that logs nothing.
func quiet(cfg *config.Config) *config.Config {
	c := *cfg
	c.Verbosity = 0
	return &c
}
