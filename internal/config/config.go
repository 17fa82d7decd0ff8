// Package config provides configuration for the self-play driver.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Config holds all driver configuration.
type Config struct {
	Play   *PlayConfig
	Output *OutputConfig

	// Verbosity: 0=nothing, 1=summary, 2=running commentary
	Verbosity int

	// LogFile receives human-readable progress and error lines.
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Play:      NewPlayConfig(),
		Output:    NewOutputConfig(),
		Verbosity: 1,
		LogFile:   os.Stderr,
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	p := c.Play
	switch {
	case p.Games < 1:
		return fmt.Errorf("games must be at least 1, got %d: %w", p.Games, errors.ErrInvalidConfig)
	case p.Workers < 1:
		return fmt.Errorf("workers must be at least 1, got %d: %w", p.Workers, errors.ErrInvalidConfig)
	case p.MaxPlies < 1:
		return fmt.Errorf("max plies must be at least 1, got %d: %w", p.MaxPlies, errors.ErrInvalidConfig)
	case c.Verbosity < 0:
		return fmt.Errorf("verbosity must not be negative: %w", errors.ErrInvalidConfig)
	}
	if _, err := chess.ParsePlacement(p.StartPlacement); err != nil {
		return errors.Wrap(err, "start position")
	}
	return nil
}

// Logf writes a log line when the configured verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
