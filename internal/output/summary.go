package output

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/selfplay"
)

// Summary tallies outcomes over a run.
type Summary struct {
	Games      int
	Errors     int
	WhiteWins  int
	BlackWins  int
	Stalemates int
	PlyLimits  int
	Duplicates int
	Plies      int
}

// Add counts one record.
func (s *Summary) Add(rec GameRecord) {
	s.Games++
	if rec.Err != nil {
		s.Errors++
		return
	}
	s.Plies += rec.Result.Plies
	if rec.Duplicate {
		s.Duplicates++
	}
	switch rec.Result.Outcome {
	case selfplay.Checkmate:
		if rec.Result.Winner == chess.White {
			s.WhiteWins++
		} else {
			s.BlackWins++
		}
	case selfplay.Stalemate:
		s.Stalemates++
	case selfplay.PlyLimit:
		s.PlyLimits++
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("%d games: %d white wins, %d black wins, %d stalemates, %d ply limits, %d duplicates, %d errors, %d plies",
		s.Games, s.WhiteWins, s.BlackWins, s.Stalemates, s.PlyLimits, s.Duplicates, s.Errors, s.Plies)
}
