package config

import "github.com/lgbarn/chessmatch-go/internal/chess"

// PlayConfig holds settings for generating self-play games.
type PlayConfig struct {
	// Games is the number of games to play.
	Games int

	// Workers is the number of games played in parallel.
	Workers int

	// MaxPlies stops a game that has not ended after this many moves.
	MaxPlies int

	// Seed for the random move picker. Game i uses Seed+i.
	Seed int64

	// StartPlacement is the piece-placement field every game starts from.
	StartPlacement string

	// StartColour is the side to move in the start position.
	StartColour chess.Colour

	// Verify cross-checks every position's legal moves against an
	// independent move generator. Standard 8x8 boards only.
	Verify bool
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		Games:          1,
		Workers:        1,
		MaxPlies:       400,
		Seed:           1,
		StartPlacement: chess.StandardPlacement,
		StartColour:    chess.White,
	}
}
