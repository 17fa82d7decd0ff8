// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

var (
	// Play options
	games    = flag.Int("games", 1, "Number of games to play")
	workers  = flag.Int("workers", 1, "Number of games played in parallel")
	maxPlies = flag.Int("maxplies", 400, "Stop a game after N plies")
	seed     = flag.Int64("seed", 1, "Seed for the first game; game i uses seed+i")
	verify   = flag.Bool("verify", false, "Cross-check every position against dragontoothmg")
	start    = flag.String("start", "", "Start position: FEN piece placement, optionally followed by w or b")

	// Output options
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	lineLength = flag.Int("w", 80, "Maximum line length for move lists")
	logFile    = flag.String("l", "", "Write log to file (default: stderr)")
	verbose    = flag.Bool("v", false, "Log every game as it finishes")
	quiet      = flag.Bool("q", false, "Suppress per-game output")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	cfg.Play.Games = *games
	cfg.Play.Workers = *workers
	cfg.Play.MaxPlies = *maxPlies
	cfg.Play.Seed = *seed
	cfg.Play.Verify = *verify

	if *start != "" {
		placement, toMove, err := parseStart(*start)
		if err != nil {
			return err
		}
		cfg.Play.StartPlacement = placement
		cfg.Play.StartColour = toMove
	}

	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.Quiet = *quiet
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	if *verbose {
		cfg.Verbosity = 2
	}
	return nil
}

// parseStart splits "placement [w|b]". Any further FEN fields are ignored.
func parseStart(s string) (string, chess.Colour, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", chess.White, fmt.Errorf("empty start position: %w", errors.ErrInvalidPlacement)
	}
	if len(fields) == 1 {
		return fields[0], chess.White, nil
	}
	switch fields[1] {
	case "w":
		return fields[0], chess.White, nil
	case "b":
		return fields[0], chess.Black, nil
	}
	return "", chess.White, fmt.Errorf("side to move %q, want w or b: %w", fields[1], errors.ErrInvalidPlacement)
}
