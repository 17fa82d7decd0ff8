// Package selfplay plays complete games by picking random legal moves.
package selfplay

import (
	"math/rand"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/match"
)

// Outcome describes how a game ended.
type Outcome int

const (
	Checkmate Outcome = iota
	Stalemate         // Side to move has no legal move and is not in check
	PlyLimit          // Move cap reached
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case PlyLimit:
		return "ply-limit"
	}
	return "unknown"
}

// Observer is called before every move with the position's legal moves.
// Returning an error aborts the game.
type Observer func(m *match.Match, legal []match.Move) error

// Result summarizes a finished game.
type Result struct {
	Plies         int
	Turn          int
	Outcome       Outcome
	Winner        chess.Colour // Only meaningful for Checkmate
	Checks        int
	CapturedWhite int
	CapturedBlack int
	Moves         []string
}

// Play plays m until checkmate, stalemate, or maxPlies moves. observer
// may be nil.
func Play(m *match.Match, rng *rand.Rand, maxPlies int, observer Observer) (Result, error) {
	var res Result

	for !m.Finished() && res.Plies < maxPlies {
		colour := m.ActiveColour()
		legal, err := m.LegalMoves(colour)
		if err != nil {
			return res, err
		}
		if observer != nil {
			if err := observer(m, legal); err != nil {
				return res, errors.Wrapf(err, "ply %d", res.Plies+1)
			}
		}

		if len(legal) == 0 {
			inCheck, err := m.IsInCheck(colour)
			if err != nil {
				return res, err
			}
			res.finish(m)
			if inCheck {
				// Only reachable when the start position is already mate.
				res.Outcome, res.Winner = Checkmate, colour.Opposite()
			} else {
				res.Outcome = Stalemate
			}
			return res, nil
		}

		mv := legal[rng.Intn(len(legal))]
		if err := m.PlayTurn(mv.From, mv.To); err != nil {
			return res, err
		}
		res.Plies++
		res.Moves = append(res.Moves, mv.String())
		if m.InCheck() {
			res.Checks++
		}
	}

	res.finish(m)
	if winner, ok := m.Winner(); ok {
		res.Outcome, res.Winner = Checkmate, winner
	} else {
		res.Outcome = PlyLimit
	}
	return res, nil
}

func (r *Result) finish(m *match.Match) {
	r.Turn = m.Turn()
	r.CapturedWhite = len(m.CapturedOf(chess.White))
	r.CapturedBlack = len(m.CapturedOf(chess.Black))
}
