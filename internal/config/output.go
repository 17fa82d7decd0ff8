package config

import (
	"io"
	"os"
)

// OutputConfig holds settings related to result output.
type OutputConfig struct {
	// JSONFormat writes one JSON object per game instead of text lines.
	JSONFormat bool

	// Writer receives per-game results.
	Writer io.Writer

	// Quiet suppresses per-game results; only the summary is logged.
	Quiet bool

	// MaxLineLength wraps the move list in text output.
	MaxLineLength uint
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Writer:        os.Stdout,
		MaxLineLength: 80,
	}
}
