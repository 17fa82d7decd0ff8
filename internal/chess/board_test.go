package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	engerrors "github.com/lgbarn/chessmatch-go/internal/errors"
)

// boardFrom builds a board from a placement string, numbering pieces in
// placement order.
func boardFrom(t *testing.T, placement string) *Board {
	t.Helper()
	pl, err := ParsePlacement(placement)
	if err != nil {
		t.Fatalf("ParsePlacement(%q) error: %v", placement, err)
	}
	b := NewBoard(pl.Rows, pl.Cols)
	for i, pp := range pl.Pieces {
		if err := b.Place(NewPiece(i, pp.Kind, pp.Colour), pp.Position); err != nil {
			t.Fatalf("Place: %v", err)
		}
	}
	return b
}

func squareNames(positions []Position) []string {
	names := make([]string, 0, len(positions))
	for _, p := range positions {
		names = append(names, p.String())
	}
	return names
}

func TestNewBoard(t *testing.T) {
	b := NewStandardBoard()

	t.Run("dimensions", func(t *testing.T) {
		if b.Rows() != 8 || b.Cols() != 8 {
			t.Errorf("dimensions = %dx%d; want 8x8", b.Rows(), b.Cols())
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for r := 0; r < b.Rows(); r++ {
			for c := 0; c < b.Cols(); c++ {
				if got := b.PieceAt(Pos(r, c)); got != nil {
					t.Errorf("PieceAt(%d, %d) = %v; want nil", r, c, got)
				}
			}
		}
	})

	t.Run("non-square board", func(t *testing.T) {
		wide := NewBoard(4, 10)
		if !wide.Valid(Pos(3, 9)) {
			t.Error("Valid(3, 9) = false on 4x10 board; want true")
		}
		if wide.Valid(Pos(4, 0)) {
			t.Error("Valid(4, 0) = true on 4x10 board; want false")
		}
	})
}

func TestBoardPlaceRemove(t *testing.T) {
	b := NewStandardBoard()
	knight := NewPiece(1, Knight, White)
	e4 := MustSquare("e4")

	if err := b.Place(knight, e4); err != nil {
		t.Fatalf("Place() error: %v", err)
	}
	if got := b.PieceAt(e4); got != knight {
		t.Errorf("PieceAt(e4) = %v; want %v", got, knight)
	}
	if knight.Position() != e4 || !knight.OnBoard() {
		t.Errorf("knight position = %v onBoard=%v; want e4 true", knight.Position(), knight.OnBoard())
	}

	t.Run("occupied square rejected", func(t *testing.T) {
		err := b.Place(NewPiece(2, Pawn, Black), e4)
		if !errors.Is(err, engerrors.ErrPositionOccupied) {
			t.Errorf("Place() on occupied square error = %v; want ErrPositionOccupied", err)
		}
	})

	t.Run("off board rejected", func(t *testing.T) {
		err := b.Place(NewPiece(3, Pawn, Black), Pos(8, 0))
		if !errors.Is(err, engerrors.ErrInvalidPosition) {
			t.Errorf("Place() off board error = %v; want ErrInvalidPosition", err)
		}
	})

	t.Run("remove", func(t *testing.T) {
		if got := b.Remove(e4); got != knight {
			t.Errorf("Remove(e4) = %v; want %v", got, knight)
		}
		if b.Occupied(e4) {
			t.Error("e4 still occupied after Remove")
		}
		if knight.OnBoard() {
			t.Error("knight.OnBoard() = true after Remove")
		}
		if got := b.Remove(e4); got != nil {
			t.Errorf("Remove(empty) = %v; want nil", got)
		}
	})
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		square string
		want   Position
	}{
		{"a8", Pos(0, 0)},
		{"h8", Pos(0, 7)},
		{"a1", Pos(7, 0)},
		{"e2", Pos(6, 4)},
		{"e4", Pos(4, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			got, err := ParseSquare(tt.square)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.square, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v; want %v", tt.square, got, tt.want)
			}
			if got.String() != tt.square {
				t.Errorf("String() = %q; want %q", got.String(), tt.square)
			}
		})
	}

	for _, bad := range []string{"", "e", "i1", "a9", "e22"} {
		if _, err := ParseSquare(bad); !errors.Is(err, engerrors.ErrInvalidPosition) {
			t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidPosition", bad, err)
		}
	}
}

func TestReachableSquares(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		from      string
		want      []string
	}{
		{
			name:      "pawn double push from start",
			placement: StandardPlacement,
			from:      "e2",
			want:      []string{"e4", "e3"},
		},
		{
			name:      "knight from start",
			placement: StandardPlacement,
			from:      "b1",
			want:      []string{"a3", "c3"},
		},
		{
			name:      "rook boxed in at start",
			placement: StandardPlacement,
			from:      "h1",
			want:      nil,
		},
		{
			name:      "king boxed in at start",
			placement: StandardPlacement,
			from:      "e1",
			want:      nil,
		},
		{
			name:      "black pawn moves down the board",
			placement: StandardPlacement,
			from:      "d7",
			want:      []string{"d6", "d5"},
		},
		{
			name:      "pawn captures diagonally and is blocked ahead",
			placement: "8/8/8/3nbn2/4P3/8/8/8",
			from:      "e4",
			want:      []string{"d5", "f5"},
		},
		{
			name:      "rook slides until capture",
			placement: "8/8/8/8/1p1R2P1/8/8/8",
			from:      "d4",
			want:      []string{"d8", "d7", "d6", "d5", "b4", "c4", "e4", "f4", "d3", "d2", "d1"},
		},
		{
			name:      "bishop in corner",
			placement: "8/8/8/8/8/8/8/B7",
			from:      "a1",
			want:      []string{"h8", "g7", "f6", "e5", "d4", "c3", "b2"},
		},
		{
			name:      "king in centre",
			placement: "8/8/8/8/3K4/8/8/8",
			from:      "d4",
			want:      []string{"c5", "d5", "e5", "c4", "e4", "c3", "d3", "e3"},
		},
		{
			name:      "queen blocked by own pieces",
			placement: "8/8/8/8/8/8/PP6/QR6",
			from:      "a1",
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFrom(t, tt.placement)
			p := b.PieceAt(MustSquare(tt.from))
			if p == nil {
				t.Fatalf("no piece at %s", tt.from)
			}
			got := squareNames(p.ReachableSquares(b).Positions())
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ReachableSquares(%s) mismatch (-want +got):\n%s", tt.from, diff)
			}
			if p.HasAnyLegalMove(b) != (len(tt.want) > 0) {
				t.Errorf("HasAnyLegalMove() = %v; want %v", p.HasAnyLegalMove(b), len(tt.want) > 0)
			}
		})
	}
}

func TestPawnDoublePushNeedsFirstMove(t *testing.T) {
	b := boardFrom(t, "8/8/8/8/8/8/4P3/8")
	pawn := b.PieceAt(MustSquare("e2"))
	pawn.IncrementMoves()

	got := squareNames(pawn.ReachableSquares(b).Positions())
	if diff := cmp.Diff([]string{"e3"}, got); diff != "" {
		t.Errorf("moved pawn reachable mismatch (-want +got):\n%s", diff)
	}

	pawn.DecrementMoves()
	pawn.DecrementMoves()
	if pawn.MoveCount() != 0 {
		t.Errorf("MoveCount() = %d after extra decrement; want 0", pawn.MoveCount())
	}
}

func TestSquares(t *testing.T) {
	sq := NewSquares(3, 3)
	if sq.Any() {
		t.Error("new Squares.Any() = true; want false")
	}
	sq.Set(Pos(1, 2))
	sq.Set(Pos(5, 5))
	if !sq.At(Pos(1, 2)) || sq.At(Pos(0, 0)) || sq.At(Pos(5, 5)) {
		t.Error("Squares.At() returned unexpected values")
	}
	if sq.Count() != 1 {
		t.Errorf("Count() = %d; want 1", sq.Count())
	}
}
