package chess

import "fmt"

// Piece is a single chess man. Pieces are identity entities: two pieces of
// the same kind and colour are distinct, told apart by ID.
type Piece struct {
	ID     int
	Kind   Kind
	Colour Colour

	moveCount int
	pos       Position
	onBoard   bool
}

// NewPiece creates a piece that has not yet been placed on a board.
func NewPiece(id int, kind Kind, colour Colour) *Piece {
	return &Piece{ID: id, Kind: kind, Colour: colour}
}

// Position returns where the board last placed the piece.
func (p *Piece) Position() Position { return p.pos }

// OnBoard reports whether the piece currently stands on a board square.
func (p *Piece) OnBoard() bool { return p.onBoard }

// MoveCount returns how many times the piece has moved.
func (p *Piece) MoveCount() int { return p.moveCount }

// IncrementMoves records one more move by the piece.
func (p *Piece) IncrementMoves() { p.moveCount++ }

// DecrementMoves takes back one move.
func (p *Piece) DecrementMoves() {
	if p.moveCount > 0 {
		p.moveCount--
	}
}

// Letter returns the placement letter: uppercase for White, lowercase for Black.
func (p *Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Rook#7".
func (p *Piece) String() string {
	if p == nil {
		return "<none>"
	}
	return fmt.Sprintf("%s %s#%d", p.Colour, p.Kind, p.ID)
}

// ReachableSquares returns every square the piece could move to given the
// current occupancy of board, before any self-check filtering.
func (p *Piece) ReachableSquares(board *Board) Squares {
	sq := NewSquares(board.Rows(), board.Cols())
	switch p.Kind {
	case Pawn:
		pawnSquares(board, p, sq)
	case Knight:
		stepSquares(board, p, knightSteps, sq)
	case Bishop:
		slideSquares(board, p, diagonalDirs, sq)
	case Rook:
		slideSquares(board, p, straightDirs, sq)
	case Queen:
		slideSquares(board, p, diagonalDirs, sq)
		slideSquares(board, p, straightDirs, sq)
	case King:
		stepSquares(board, p, kingSteps, sq)
	}
	return sq
}

// HasAnyLegalMove reports whether at least one square is reachable.
func (p *Piece) HasAnyLegalMove(board *Board) bool {
	return p.ReachableSquares(board).Any()
}

// CanReach reports whether pos is among the piece's reachable squares.
func (p *Piece) CanReach(board *Board, pos Position) bool {
	return p.ReachableSquares(board).At(pos)
}
