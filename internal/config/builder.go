package config

import (
	"io"

	"github.com/lgbarn/chessmatch-go/internal/chess"
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

// WithGames sets the number of games to play.
func (b *ConfigBuilder) WithGames(n int) *ConfigBuilder {
	b.cfg.Play.Games = n
	return b
}

// WithWorkers sets the number of parallel workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Play.Workers = n
	return b
}

// WithMaxPlies sets the per-game move cap.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Play.MaxPlies = n
	return b
}

// WithSeed sets the base random seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Play.Seed = seed
	return b
}

// WithStartPlacement sets the start position and side to move.
func (b *ConfigBuilder) WithStartPlacement(placement string, toMove chess.Colour) *ConfigBuilder {
	b.cfg.Play.StartPlacement = placement
	b.cfg.Play.StartColour = toMove
	return b
}

// WithVerify enables move generator cross-checking.
func (b *ConfigBuilder) WithVerify(enabled bool) *ConfigBuilder {
	b.cfg.Play.Verify = enabled
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithQuiet suppresses per-game output.
func (b *ConfigBuilder) WithQuiet(enabled bool) *ConfigBuilder {
	b.cfg.Output.Quiet = enabled
	return b
}

// WithLineLength sets the maximum text output line length.
func (b *ConfigBuilder) WithLineLength(n uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = n
	return b
}

// WithOutput sets the result writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output.Writer = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
