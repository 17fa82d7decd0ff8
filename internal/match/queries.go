package match

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// PiecesInPlay returns colour's pieces that have not been captured,
// ordered by piece ID.
func (m *Match) PiecesInPlay(colour chess.Colour) []*chess.Piece {
	var out []*chess.Piece
	for _, p := range m.pieces {
		if p.Colour != colour {
			continue
		}
		if _, gone := m.captured[p.ID]; gone {
			continue
		}
		out = append(out, p)
	}
	return out
}

// CapturedOf returns colour's captured pieces, ordered by piece ID.
func (m *Match) CapturedOf(colour chess.Colour) []*chess.Piece {
	ids := maps.Keys(m.captured)
	slices.Sort(ids)

	var out []*chess.Piece
	for _, id := range ids {
		if p := m.pieces[id]; p.Colour == colour {
			out = append(out, p)
		}
	}
	return out
}

// AllPieces returns every piece ever placed, ordered by piece ID.
func (m *Match) AllPieces() []*chess.Piece {
	return slices.Clone(m.pieces)
}

// LegalMoves returns every move available to colour that does not leave
// its own King in check, ordered by piece ID and then destination.
func (m *Match) LegalMoves(colour chess.Colour) ([]Move, error) {
	var moves []Move
	for _, p := range m.PiecesInPlay(colour) {
		origin := p.Position()
		for _, dest := range p.ReachableSquares(m.board).Positions() {
			selfCheck, err := m.probe(origin, dest, func() (bool, error) {
				return m.IsInCheck(colour)
			})
			if err != nil {
				return nil, err
			}
			if !selfCheck {
				moves = append(moves, Move{From: origin, To: dest})
			}
		}
	}
	return moves, nil
}
