package match

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// king finds colour's King among that colour's pieces in play.
func (m *Match) king(colour chess.Colour) (*chess.Piece, error) {
	for _, p := range m.PiecesInPlay(colour) {
		if p.Kind == chess.King {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no %s king on the board: %w", colour, errors.ErrInvariantViolation)
}

// IsInCheck reports whether any opposing piece in play can reach colour's
// King. A missing King is reported as ErrInvariantViolation.
func (m *Match) IsInCheck(colour chess.Colour) (bool, error) {
	k, err := m.king(colour)
	if err != nil {
		return false, err
	}
	target := k.Position()
	for _, p := range m.PiecesInPlay(colour.Opposite()) {
		if p.CanReach(m.board, target) {
			return true, nil
		}
	}
	return false, nil
}

// IsCheckmate reports whether colour is in check with no escape. Every
// reachable square of every piece of colour is tried by applying the move,
// re-testing for check and undoing it; the first move that clears the
// check proves there is no mate.
func (m *Match) IsCheckmate(colour chess.Colour) (bool, error) {
	inCheck, err := m.IsInCheck(colour)
	if err != nil || !inCheck {
		return false, err
	}

	for _, p := range m.PiecesInPlay(colour) {
		origin := p.Position()
		for _, dest := range p.ReachableSquares(m.board).Positions() {
			stillInCheck, err := m.probe(origin, dest, func() (bool, error) {
				return m.IsInCheck(colour)
			})
			if err != nil {
				return false, err
			}
			if !stillInCheck {
				return false, nil
			}
		}
	}
	return true, nil
}
