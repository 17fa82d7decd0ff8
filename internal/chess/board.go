package chess

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Board is a rows x cols grid of optional piece references.
// It is the sole authority on occupancy: a square holds at most one piece
// and a piece's position is only ever written here.
type Board struct {
	rows    int
	cols    int
	squares []*Piece
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(rows, cols int) *Board {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return &Board{
		rows:    rows,
		cols:    cols,
		squares: make([]*Piece, rows*cols),
	}
}

// NewStandardBoard creates an empty 8x8 board.
func NewStandardBoard() *Board {
	return NewBoard(BoardSize, BoardSize)
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Valid reports whether pos lies on the board.
func (b *Board) Valid(pos Position) bool {
	return pos.Valid(b.rows, b.cols)
}

func (b *Board) index(pos Position) int {
	return pos.Row*b.cols + pos.Col
}

// PieceAt returns the piece at pos, or nil if the square is empty or off
// the board.
func (b *Board) PieceAt(pos Position) *Piece {
	if !b.Valid(pos) {
		return nil
	}
	return b.squares[b.index(pos)]
}

// Occupied reports whether a piece stands on pos.
func (b *Board) Occupied(pos Position) bool {
	return b.PieceAt(pos) != nil
}

// HasEnemy reports whether pos holds a piece of the colour opposing c.
func (b *Board) HasEnemy(pos Position, c Colour) bool {
	p := b.PieceAt(pos)
	return p != nil && p.Colour != c
}

// CanEnter reports whether a piece of colour c may land on pos: the square
// is on the board and either empty or held by an enemy.
func (b *Board) CanEnter(pos Position, c Colour) bool {
	if !b.Valid(pos) {
		return false
	}
	p := b.PieceAt(pos)
	return p == nil || p.Colour != c
}

// Place puts piece on pos and records pos as the piece's position.
func (b *Board) Place(piece *Piece, pos Position) error {
	if !b.Valid(pos) {
		return fmt.Errorf("place %s at %s: %w", piece, pos, errors.ErrInvalidPosition)
	}
	idx := b.index(pos)
	if b.squares[idx] != nil {
		return fmt.Errorf("place %s at %s: %w", piece, pos, errors.ErrPositionOccupied)
	}
	b.squares[idx] = piece
	piece.pos = pos
	piece.onBoard = true
	return nil
}

// Remove takes the piece off pos and returns it, or nil if pos was empty.
func (b *Board) Remove(pos Position) *Piece {
	if !b.Valid(pos) {
		return nil
	}
	idx := b.index(pos)
	p := b.squares[idx]
	if p == nil {
		return nil
	}
	b.squares[idx] = nil
	p.onBoard = false
	return p
}

// Pieces returns every piece on the board in row-major order.
func (b *Board) Pieces() []*Piece {
	var out []*Piece
	for _, p := range b.squares {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// Squares is a rows x cols boolean matrix, true where a piece may move.
type Squares struct {
	rows  int
	cols  int
	cells []bool
}

// NewSquares creates an all-false matrix with the given dimensions.
func NewSquares(rows, cols int) Squares {
	return Squares{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
}

// Rows returns the number of rows.
func (s Squares) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s Squares) Cols() int { return s.cols }

// At reports whether pos is marked.
func (s Squares) At(pos Position) bool {
	if !pos.Valid(s.rows, s.cols) {
		return false
	}
	return s.cells[pos.Row*s.cols+pos.Col]
}

// Set marks pos. Positions off the matrix are ignored.
func (s Squares) Set(pos Position) {
	if pos.Valid(s.rows, s.cols) {
		s.cells[pos.Row*s.cols+pos.Col] = true
	}
}

// Any reports whether at least one square is marked.
func (s Squares) Any() bool {
	for _, c := range s.cells {
		if c {
			return true
		}
	}
	return false
}

// Count returns the number of marked squares.
func (s Squares) Count() int {
	n := 0
	for _, c := range s.cells {
		if c {
			n++
		}
	}
	return n
}

// Positions returns the marked squares in row-major order.
func (s Squares) Positions() []Position {
	var out []Position
	for i, c := range s.cells {
		if c {
			out = append(out, Position{Row: i / s.cols, Col: i % s.cols})
		}
	}
	return out
}
