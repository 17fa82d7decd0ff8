package match

import (
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// ValidateOrigin checks that pos holds a piece of the side to move that
// has somewhere to go.
func (m *Match) ValidateOrigin(pos chess.Position) error {
	p := m.board.PieceAt(pos)
	if p == nil {
		return m.moveError(errors.ErrNoPieceAtOrigin, pos, nil)
	}
	if p.Colour != m.active {
		return m.moveError(errors.ErrNotYourPiece, pos, nil)
	}
	if !p.HasAnyLegalMove(m.board) {
		return m.moveError(errors.ErrNoLegalMoves, pos, nil)
	}
	return nil
}

// ValidateDestination checks that the piece on origin can reach destination.
func (m *Match) ValidateDestination(origin, destination chess.Position) error {
	p := m.board.PieceAt(origin)
	if p == nil {
		return m.moveError(errors.ErrNoPieceAtOrigin, origin, &destination)
	}
	if !p.CanReach(m.board, destination) {
		return m.moveError(errors.ErrIllegalDestination, origin, &destination)
	}
	return nil
}

// PlayTurn plays one full move for the side to move. A rejected move
// leaves the match exactly as it was. A move that mates the opponent
// finishes the game without advancing the turn or the side to move.
func (m *Match) PlayTurn(origin, destination chess.Position) error {
	if m.finished {
		return m.moveError(errors.ErrGameFinished, origin, &destination)
	}
	if err := m.ValidateOrigin(origin); err != nil {
		return err
	}
	if err := m.ValidateDestination(origin, destination); err != nil {
		return err
	}

	captured, err := m.ApplyMove(origin, destination)
	if err != nil {
		return err
	}

	selfCheck, err := m.IsInCheck(m.active)
	if err != nil || selfCheck {
		if undoErr := m.UndoMove(origin, destination, captured); undoErr != nil {
			return undoErr
		}
		if err != nil {
			return err
		}
		return m.moveError(errors.ErrSelfCheck, origin, &destination)
	}

	opponent := m.active.Opposite()
	if m.inCheck, err = m.IsInCheck(opponent); err != nil {
		return err
	}

	mate, err := m.IsCheckmate(opponent)
	if err != nil {
		return err
	}
	if mate {
		m.finished = true
		return nil
	}

	m.turn++
	m.active = opponent
	return nil
}

func (m *Match) moveError(err error, from chess.Position, to *chess.Position) error {
	me := &errors.MoveError{
		Err:    err,
		Turn:   m.turn,
		Colour: m.active.String(),
		From:   from.String(),
	}
	if to != nil {
		me.To = to.String()
	}
	return me
}
