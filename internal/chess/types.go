// Package chess provides the board and piece collaborators used by a match.
package chess

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// forward returns the row step a pawn of this colour moves by.
// White starts on the bottom rows and moves toward row 0.
func (c Colour) forward() int {
	if c == White {
		return -1
	}
	return 1
}

// Kind represents a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a placement letter (either case) to a kind.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return 0, false
}

// Standard board dimensions.
const (
	BoardSize = 8

	ColBase  = 'a'
	RankBase = '1'
)

// Position is a zero-based (row, column) pair. Row 0 is the eighth rank.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Valid reports whether the position lies on a rows x cols board.
func (p Position) Valid(rows, cols int) bool {
	return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
}

// Offset returns the position shifted by the given row and column steps.
func (p Position) Offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String returns the square name on a standard board, e.g. "e2".
// Positions outside the standard board fall back to "(row,col)".
func (p Position) String() string {
	if !p.Valid(BoardSize, BoardSize) {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return string([]byte{byte(ColBase + p.Col), byte(RankBase + BoardSize - 1 - p.Row)})
}

// ParseSquare converts a square name such as "e2" to a position on a
// standard board.
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidPosition)
	}
	col := int(s[0]) - ColBase
	rank := int(s[1]) - RankBase
	if col < 0 || col >= BoardSize || rank < 0 || rank >= BoardSize {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidPosition)
	}
	return Position{Row: BoardSize - 1 - rank, Col: col}, nil
}

// MustSquare is like ParseSquare but panics on a malformed square.
// It is meant for fixed square names in setup code and tests.
func MustSquare(s string) Position {
	p, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return p
}
