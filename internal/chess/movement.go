package chess

// Row/column step tables. Rows grow downward toward White's side.
var (
	knightSteps  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingSteps    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// stepSquares marks single-step targets (knight, king).
func stepSquares(board *Board, p *Piece, steps [][2]int, sq Squares) {
	from := p.Position()
	for _, s := range steps {
		to := from.Offset(s[0], s[1])
		if board.CanEnter(to, p.Colour) {
			sq.Set(to)
		}
	}
}

// slideSquares marks sliding targets until blocked. An enemy square is
// included and ends the ray.
func slideSquares(board *Board, p *Piece, dirs [][2]int, sq Squares) {
	from := p.Position()
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for board.Valid(to) {
			occupant := board.PieceAt(to)
			if occupant != nil {
				if occupant.Colour != p.Colour {
					sq.Set(to)
				}
				break // Blocked
			}
			sq.Set(to)
			to = to.Offset(dir[0], dir[1])
		}
	}
}

// pawnSquares marks forward pushes and diagonal captures. The double push
// is only available before the pawn's first move.
func pawnSquares(board *Board, p *Piece, sq Squares) {
	from := p.Position()
	dir := p.Colour.forward()

	one := from.Offset(dir, 0)
	if board.Valid(one) && !board.Occupied(one) {
		sq.Set(one)
		two := from.Offset(2*dir, 0)
		if p.MoveCount() == 0 && board.Valid(two) && !board.Occupied(two) {
			sq.Set(two)
		}
	}

	for dc := -1; dc <= 1; dc += 2 {
		to := from.Offset(dir, dc)
		if board.HasEnemy(to, p.Colour) {
			sq.Set(to)
		}
	}
}
