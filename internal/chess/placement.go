package chess

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// StandardPlacement is the piece-placement field of the starting position.
const StandardPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// PlacedPiece is one entry of a parsed placement.
type PlacedPiece struct {
	Kind     Kind
	Colour   Colour
	Position Position
}

// Placement is a parsed piece-placement field.
type Placement struct {
	Rows   int
	Cols   int
	Pieces []PlacedPiece
}

// ParsePlacement parses a FEN-style piece-placement field. Rows are
// separated by '/', the first row is row 0, digits count empty squares.
// Every row must describe the same number of columns.
func ParsePlacement(s string) (Placement, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Placement{}, fmt.Errorf("empty placement: %w", errors.ErrInvalidPlacement)
	}

	rows := strings.Split(s, "/")
	pl := Placement{Rows: len(rows)}

	for r, row := range rows {
		col := 0
		run := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '0' && c <= '9' {
				run = run*10 + int(c-'0')
				continue
			}
			col += run
			run = 0

			kind, ok := KindFromLetter(c)
			if !ok {
				return Placement{}, fmt.Errorf("invalid piece character %q in row %d: %w", c, r, errors.ErrInvalidPlacement)
			}
			colour := White
			if unicode.IsLower(rune(c)) {
				colour = Black
			}
			pl.Pieces = append(pl.Pieces, PlacedPiece{Kind: kind, Colour: colour, Position: Pos(r, col)})
			col++
		}
		col += run

		if col == 0 {
			return Placement{}, fmt.Errorf("row %d is empty: %w", r, errors.ErrInvalidPlacement)
		}
		if r == 0 {
			pl.Cols = col
		} else if col != pl.Cols {
			return Placement{}, fmt.Errorf("row %d has %d columns, want %d: %w", r, col, pl.Cols, errors.ErrInvalidPlacement)
		}
	}
	return pl, nil
}

// FormatPlacement renders the board's occupancy as a piece-placement field.
func FormatPlacement(board *Board) string {
	var sb strings.Builder
	for r := 0; r < board.Rows(); r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < board.Cols(); c++ {
			p := board.PieceAt(Pos(r, c))
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	return sb.String()
}
