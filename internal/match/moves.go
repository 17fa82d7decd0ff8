package match

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Move is an origin/destination pair.
type Move struct {
	From chess.Position
	To   chess.Position
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (mv Move) String() string {
	return mv.From.String() + mv.To.String()
}

// ApplyMove moves the piece on origin to destination, capturing whatever
// stood there. It returns the captured piece, or nil, so the move can be
// reverted with UndoMove. Turn and side to move are left untouched; this
// is the raw board mutation with no rule checks.
func (m *Match) ApplyMove(origin, destination chess.Position) (*chess.Piece, error) {
	if !m.board.Valid(destination) {
		return nil, fmt.Errorf("apply to %s: %w", destination, errors.ErrInvalidPosition)
	}
	p := m.board.Remove(origin)
	if p == nil {
		return nil, fmt.Errorf("apply from %s: %w", origin, errors.ErrNoPieceAtOrigin)
	}
	p.IncrementMoves()

	captured := m.board.Remove(destination)
	m.mustPlace(p, destination)
	if captured != nil {
		m.captured[captured.ID] = struct{}{}
	}
	return captured, nil
}

// UndoMove is the exact inverse of ApplyMove given the same squares and the
// piece ApplyMove returned. Board occupancy, the captured set and the
// mover's move count are restored to their values before the apply.
func (m *Match) UndoMove(origin, destination chess.Position, captured *chess.Piece) error {
	p := m.board.Remove(destination)
	if p == nil {
		return fmt.Errorf("undo to %s: %w", destination, errors.ErrInvariantViolation)
	}
	p.DecrementMoves()

	if captured != nil {
		m.mustPlace(captured, destination)
		delete(m.captured, captured.ID)
	}
	m.mustPlace(p, origin)
	return nil
}

// mustPlace puts p on a square the caller has just emptied.
func (m *Match) mustPlace(p *chess.Piece, pos chess.Position) {
	if err := m.board.Place(p, pos); err != nil {
		panic(fmt.Sprintf("match: board out of sync: %v", err))
	}
}

// probe applies a hypothetical move, evaluates test against the resulting
// position, and unconditionally reverts the move before returning.
func (m *Match) probe(origin, destination chess.Position, test func() (bool, error)) (bool, error) {
	captured, err := m.ApplyMove(origin, destination)
	if err != nil {
		return false, err
	}
	result, testErr := test()
	if err := m.UndoMove(origin, destination, captured); err != nil {
		return false, err
	}
	return result, testErr
}
