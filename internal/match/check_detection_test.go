package match_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/match"
	"github.com/lgbarn/chessmatch-go/internal/testutil"
)

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		colour    chess.Colour
		want      bool
	}{
		{"start position white", chess.StandardPlacement, chess.White, false},
		{"start position black", chess.StandardPlacement, chess.Black, false},
		{"queen on open file", "4k3/8/8/8/4Q3/8/8/K7", chess.Black, true},
		{"queen blocked", "4k3/4p3/8/8/4Q3/8/8/K7", chess.Black, false},
		{"knight check", "4k3/8/3N4/8/8/8/8/K7", chess.Black, true},
		{"pawn check", "8/8/8/8/8/8/3p4/4K2k", chess.White, true},
		{"pawn does not attack forward", "8/8/8/8/8/8/4p3/4K2k", chess.White, false},
		{"bishop off diagonal", "7k/8/8/8/8/8/2b5/K7", chess.White, false},
		{"bishop long diagonal", "7k/8/8/8/8/8/1b6/K7", chess.White, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testutil.MustMatch(t, tt.placement, chess.White)
			got, err := m.IsInCheck(tt.colour)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want, "IsInCheck(%v)", tt.colour)
		})
	}
}

func TestIsCheckmate(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		colour    chess.Colour
		want      bool
	}{
		{"start position", chess.StandardPlacement, chess.Black, false},
		{"queen on e-file, king boxed in", "3rkr2/3p1p2/8/8/4Q3/8/8/K7", chess.Black, true},
		{"check escapable by king", "4k3/8/8/8/4Q3/8/8/K7", chess.Black, false},
		{"check blockable", "3rkr2/3p1p2/8/3n4/8/8/4Q3/K7", chess.Black, false},
		{"checker capturable", "3rkr2/3p1p2/8/8/8/8/5b2/K3Q3", chess.Black, false},
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/6K1", chess.Black, true},
		{"in check but rook can capture", "R5k1/5ppp/8/8/8/8/8/r5K1", chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testutil.MustMatch(t, tt.placement, chess.White)
			before := testutil.TakeSnapshot(m)

			mate, err := m.IsCheckmate(tt.colour)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, mate, tt.want, "IsCheckmate(%v)", tt.colour)

			if mate {
				check, err := m.IsInCheck(tt.colour)
				testutil.AssertNoError(t, err)
				testutil.AssertTrue(t, check, "checkmate implies check")
			}

			if diff := cmp.Diff(before, testutil.TakeSnapshot(m)); diff != "" {
				t.Errorf("IsCheckmate mutated state (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMissingKingIsInvariantViolation(t *testing.T) {
	m := testutil.MustMatch(t, "8/8/8/8/8/8/8/4K3", chess.White)

	_, err := m.IsInCheck(chess.Black)
	testutil.AssertErrorIs(t, err, errors.ErrInvariantViolation)
	testutil.AssertFalse(t, errors.IsRuleViolation(err), "missing king is not a rule violation")

	_, err = m.IsCheckmate(chess.Black)
	testutil.AssertErrorIs(t, err, errors.ErrInvariantViolation)

	// White still has its king.
	_, err = m.IsInCheck(chess.White)
	testutil.AssertNoError(t, err)
}

func TestNewEmptyDimensions(t *testing.T) {
	m := match.NewEmpty(5, 6, chess.Black)
	testutil.AssertEqual(t, m.Board().Rows(), 5)
	testutil.AssertEqual(t, m.Board().Cols(), 6)
	testutil.AssertEqual(t, m.ActiveColour(), chess.Black)

	k, err := m.PlaceNewPiece(chess.King, chess.Black, chess.Pos(0, 0))
	testutil.AssertNoError(t, err)
	_, err = m.PlaceNewPiece(chess.Rook, chess.White, chess.Pos(0, 0))
	testutil.AssertErrorIs(t, err, errors.ErrPositionOccupied)
	testutil.AssertEqual(t, len(m.AllPieces()), 1, "rejected placement must not join the piece set")
	testutil.AssertTrue(t, m.Piece(k.ID) == k, "Piece(k.ID) must return the placed piece")
}
