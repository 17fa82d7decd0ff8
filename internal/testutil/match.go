package testutil

import (
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/match"
)

// MustMatch builds a match from a placement string and calls t.Fatal if
// the placement does not parse.
func MustMatch(t *testing.T, placement string, toMove chess.Colour) *match.Match {
	t.Helper()
	m, err := match.NewFromPlacement(placement, toMove)
	if err != nil {
		t.Fatalf("NewFromPlacement(%q): %v", placement, err)
	}
	return m
}

// Sq converts a square name such as "e2" to a position, failing the test
// on a malformed name.
func Sq(t *testing.T, square string) chess.Position {
	t.Helper()
	p, err := chess.ParseSquare(square)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", square, err)
	}
	return p
}

// Snapshot is a comparable copy of everything a match operation may mutate.
type Snapshot struct {
	Placement  string
	MoveCounts []int
	Captured   map[chess.Colour][]int
	InPlay     map[chess.Colour][]int
	Turn       int
	Active     chess.Colour
	Finished   bool
	InCheck    bool
}

// TakeSnapshot records the current state of m for comparison with cmp.Diff.
func TakeSnapshot(m *match.Match) Snapshot {
	s := Snapshot{
		Placement: chess.FormatPlacement(m.Board()),
		Captured:  map[chess.Colour][]int{},
		InPlay:    map[chess.Colour][]int{},
		Turn:      m.Turn(),
		Active:    m.ActiveColour(),
		Finished:  m.Finished(),
		InCheck:   m.InCheck(),
	}
	for _, p := range m.AllPieces() {
		s.MoveCounts = append(s.MoveCounts, p.MoveCount())
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		s.Captured[c] = PieceIDs(m.CapturedOf(c))
		s.InPlay[c] = PieceIDs(m.PiecesInPlay(c))
	}
	return s
}

// PieceIDs returns the IDs of pieces in order.
func PieceIDs(pieces []*chess.Piece) []int {
	ids := make([]int, 0, len(pieces))
	for _, p := range pieces {
		ids = append(ids, p.ID)
	}
	return ids
}
