// Package errors provides sentinel errors and error types for the match engine.
// Rule violations all wrap ErrIllegalMove so callers can test for any of them
// with a single errors.Is() check while still telling the causes apart.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move or selection that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvariantViolation indicates corrupted match state, such as a
	// missing King during check evaluation. It is not a gameplay outcome.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrNoPieceAtOrigin indicates the origin square is empty.
	ErrNoPieceAtOrigin = fmt.Errorf("no piece at origin: %w", ErrIllegalMove)

	// ErrNotYourPiece indicates the origin piece belongs to the other side.
	ErrNotYourPiece = fmt.Errorf("piece belongs to the opponent: %w", ErrIllegalMove)

	// ErrNoLegalMoves indicates the origin piece cannot move anywhere.
	ErrNoLegalMoves = fmt.Errorf("piece has no possible moves: %w", ErrIllegalMove)

	// ErrIllegalDestination indicates the destination is not reachable.
	ErrIllegalDestination = fmt.Errorf("destination not reachable: %w", ErrIllegalMove)

	// ErrSelfCheck indicates the move would leave the mover's King in check.
	ErrSelfCheck = fmt.Errorf("self-check not permitted: %w", ErrIllegalMove)

	// ErrGameFinished indicates a move was attempted after checkmate.
	ErrGameFinished = fmt.Errorf("match already finished: %w", ErrIllegalMove)

	// ErrInvalidPosition indicates a position outside the board.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrPositionOccupied indicates a piece was placed on an occupied square.
	ErrPositionOccupied = errors.New("position already occupied")

	// ErrInvalidPlacement indicates a malformed piece-placement string.
	ErrInvalidPlacement = errors.New("invalid placement string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedBoard indicates a board shape an operation cannot handle.
	ErrUnsupportedBoard = errors.New("unsupported board")

	// ErrMatchNotFound indicates an unknown match ID.
	ErrMatchNotFound = errors.New("match not found")
)

// MoveError wraps a rule violation with the match context it happened in.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Turn   int    // Turn number when the move was attempted
	Colour string // Side that attempted the move
	From   string // Origin square, e.g. "e2" (empty if not applicable)
	To     string // Destination square (empty if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}

	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	case e.From != "":
		parts = append(parts, fmt.Sprintf("from %s", e.From))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// IsRuleViolation reports whether err is a recoverable rule violation.
func IsRuleViolation(err error) bool {
	return errors.Is(err, ErrIllegalMove)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
