package config

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxFiles is the widest board whose cells still have algebraic names.
const MaxFiles = 26

// DefaultCastlingKingSteps is the number of cells a king crosses when castling.
const DefaultCastlingKingSteps = 2

// RulesConfig holds the parameters of the rules model: board shape, the
// piece kinds in play and the promotion set.
type RulesConfig struct {
	Geometry chess.Geometry

	// Kinds enabled on the board. A piece of any other kind reaching the
	// generator is an invariant violation. King is mandatory.
	Kinds []chess.Kind

	// Kinds a pawn may promote to. The first one is used when simulating
	// a promotion during a legality probe.
	PromotionKinds []chess.Kind

	// Upper bound on the intermediate cells that must be safe while the
	// king walks towards the rook.
	CastlingKingSteps int
}

// NewRulesConfig creates a RulesConfig for standard 8x8 chess.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		Geometry:          chess.Standard,
		Kinds:             []chess.Kind{chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King},
		PromotionKinds:    []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight},
		CastlingKingSteps: DefaultCastlingKingSteps,
	}
}

// Enables reports whether kind is in play.
func (r *RulesConfig) Enables(kind chess.Kind) bool {
	return slices.Contains(r.Kinds, kind)
}

// IsPromotable reports whether a pawn may promote to kind.
func (r *RulesConfig) IsPromotable(kind chess.Kind) bool {
	return slices.Contains(r.PromotionKinds, kind)
}

// ProbePromotion returns the kind placed on the board when a promotion is
// simulated. Any promotable kind yields the same king safety.
func (r *RulesConfig) ProbePromotion() chess.Kind {
	if len(r.PromotionKinds) == 0 {
		return chess.Empty
	}
	return r.PromotionKinds[0]
}

// Validate checks that the rules configuration is valid.
func (r *RulesConfig) Validate() error {
	g := r.Geometry
	if g.Files < 1 || g.Files > MaxFiles {
		return fmt.Errorf("files %d outside 1..%d: %w", g.Files, MaxFiles, errors.ErrInvalidConfig)
	}
	if g.Ranks < 2 {
		return fmt.Errorf("ranks %d below 2: %w", g.Ranks, errors.ErrInvalidConfig)
	}
	for _, k := range r.Kinds {
		if !k.Valid() {
			return fmt.Errorf("kind %d: %w", int(k), errors.ErrInvalidConfig)
		}
	}
	if !r.Enables(chess.King) {
		return fmt.Errorf("king must be enabled: %w", errors.ErrInvalidConfig)
	}
	if r.Enables(chess.Pawn) && len(r.PromotionKinds) == 0 {
		return fmt.Errorf("pawns enabled without promotion kinds: %w", errors.ErrInvalidConfig)
	}
	for _, k := range r.PromotionKinds {
		if k == chess.Pawn || k == chess.King || !r.Enables(k) {
			return fmt.Errorf("promotion to %v: %w", k, errors.ErrInvalidConfig)
		}
	}
	if r.CastlingKingSteps < 0 {
		return fmt.Errorf("castling king steps %d: %w", r.CastlingKingSteps, errors.ErrInvalidConfig)
	}
	return nil
}
