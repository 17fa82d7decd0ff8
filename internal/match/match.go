// Package match implements the turn-by-turn rules core of a chess game:
// move execution and undo, move legalization, check and checkmate
// detection, and turn and capture bookkeeping.
//
// A Match is not safe for concurrent use. Legality probing temporarily
// mutates the board, so callers sharing a Match across goroutines must
// serialize every call (see package registry).
package match

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Match owns a board, every piece ever placed on it, and the state of the
// game being played.
type Match struct {
	board *chess.Board

	// pieces is the arena of every piece ever placed, indexed by piece ID.
	pieces   []*chess.Piece
	captured map[int]struct{}

	turn     int
	active   chess.Colour
	finished bool
	inCheck  bool
}

// New creates a match on a standard board with the 32-piece starting
// position and White to move.
func New() *Match {
	m, err := NewFromPlacement(chess.StandardPlacement, chess.White)
	if err != nil {
		// StandardPlacement is a constant known to parse.
		panic(err)
	}
	return m
}

// NewEmpty creates a match on an empty rows x cols board with the given
// side to move. Pieces are added with PlaceNewPiece.
func NewEmpty(rows, cols int, toMove chess.Colour) *Match {
	return &Match{
		board:    chess.NewBoard(rows, cols),
		captured: make(map[int]struct{}),
		turn:     1,
		active:   toMove,
	}
}

// NewFromPlacement creates a match from a piece-placement field such as
// "4k3/8/8/8/8/8/8/4K2R". The board takes the placement's dimensions.
func NewFromPlacement(placement string, toMove chess.Colour) (*Match, error) {
	pl, err := chess.ParsePlacement(placement)
	if err != nil {
		return nil, err
	}
	m := NewEmpty(pl.Rows, pl.Cols, toMove)
	for _, pp := range pl.Pieces {
		if _, err := m.PlaceNewPiece(pp.Kind, pp.Colour, pp.Position); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// PlaceNewPiece creates a piece, puts it on pos and adds it to the set of
// all pieces. It is a setup operation.
func (m *Match) PlaceNewPiece(kind chess.Kind, colour chess.Colour, pos chess.Position) (*chess.Piece, error) {
	p := chess.NewPiece(len(m.pieces), kind, colour)
	if err := m.board.Place(p, pos); err != nil {
		return nil, errors.Wrap(err, "setup")
	}
	m.pieces = append(m.pieces, p)
	return p, nil
}

// Board returns the match board. Callers must treat it as read-only.
func (m *Match) Board() *chess.Board { return m.board }

// Turn returns the current turn number, starting at 1.
func (m *Match) Turn() int { return m.turn }

// ActiveColour returns the side to move.
func (m *Match) ActiveColour() chess.Colour { return m.active }

// Finished reports whether the game has ended by checkmate.
func (m *Match) Finished() bool { return m.finished }

// InCheck reports whether the last completed move put the opponent in check.
func (m *Match) InCheck() bool { return m.inCheck }

// Winner returns the side that delivered checkmate. The second result is
// false while the game is still running.
func (m *Match) Winner() (chess.Colour, bool) {
	if !m.finished {
		return 0, false
	}
	return m.active, true
}

// Piece returns the piece with the given ID, or nil.
func (m *Match) Piece(id int) *chess.Piece {
	if id < 0 || id >= len(m.pieces) {
		return nil
	}
	return m.pieces[id]
}

// String returns a one-line summary, e.g. "turn 3, Black to move, check".
func (m *Match) String() string {
	s := fmt.Sprintf("turn %d, %s to move", m.turn, m.active)
	if m.finished {
		s = fmt.Sprintf("turn %d, checkmate, %s wins", m.turn, m.active)
	} else if m.inCheck {
		s += ", check"
	}
	return s
}
