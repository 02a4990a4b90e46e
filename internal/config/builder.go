package config

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithGeometry sets the board shape.
func (b *ConfigBuilder) WithGeometry(files, ranks int) *ConfigBuilder {
	b.cfg.Rules.Geometry = chess.Geometry{Files: files, Ranks: ranks}
	return b
}

// WithKinds sets the piece kinds in play.
func (b *ConfigBuilder) WithKinds(kinds ...chess.Kind) *ConfigBuilder {
	b.cfg.Rules.Kinds = kinds
	return b
}

// WithPromotionKinds sets the kinds a pawn may promote to.
func (b *ConfigBuilder) WithPromotionKinds(kinds ...chess.Kind) *ConfigBuilder {
	b.cfg.Rules.PromotionKinds = kinds
	return b
}

// WithCastlingKingSteps bounds the cells checked while the king castles.
func (b *ConfigBuilder) WithCastlingKingSteps(steps int) *ConfigBuilder {
	b.cfg.Rules.CastlingKingSteps = steps
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the diagnostic writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
