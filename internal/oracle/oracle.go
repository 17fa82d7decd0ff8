// Package oracle cross-checks a match's legal moves against the
// dragontoothmg move generator.
//
// The comparison is made on a FEN with no castling rights and no en
// passant square, which keeps dragontoothmg's move set within the rules
// the match implements. Positions are skipped when a pawn stands on either
// back rank (the match has no promotion) or when an unmoved pawn stands
// off its home rank (the match lets it push two squares).
package oracle

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/match"
)

// Report lists disagreements between the match and the oracle, as long
// algebraic moves ("e2e4").
type Report struct {
	FEN     string
	Missing []string // Legal per the oracle, not offered by the match
	Extra   []string // Offered by the match, illegal per the oracle
	Skipped bool
}

// OK reports whether both generators agree.
func (r Report) OK() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0
}

// String summarizes the report on one line.
func (r Report) String() string {
	if r.Skipped {
		return "skipped: " + r.FEN
	}
	if r.OK() {
		return "ok: " + r.FEN
	}
	return fmt.Sprintf("mismatch at %s: missing %v, extra %v", r.FEN, r.Missing, r.Extra)
}

// Err returns a non-nil error when the report shows a disagreement.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%s: %w", r, errors.ErrInvariantViolation)
}

// FEN renders the match position for the oracle.
func FEN(m *match.Match) string {
	side := "w"
	if m.ActiveColour() == chess.Black {
		side = "b"
	}
	// Match turns count plies; FEN counts full moves.
	return fmt.Sprintf("%s %s - - 0 %d", chess.FormatPlacement(m.Board()), side, (m.Turn()+1)/2)
}

// CrossCheck compares m.LegalMoves for the side to move with dragontoothmg.
func CrossCheck(m *match.Match) (Report, error) {
	legal, err := m.LegalMoves(m.ActiveColour())
	if err != nil {
		return Report{}, err
	}
	return Compare(m, legal)
}

// Compare checks an already computed legal move list against the oracle.
func Compare(m *match.Match, legal []match.Move) (Report, error) {
	b := m.Board()
	if b.Rows() != chess.BoardSize || b.Cols() != chess.BoardSize {
		return Report{}, fmt.Errorf("oracle needs an 8x8 board, got %dx%d: %w", b.Rows(), b.Cols(), errors.ErrUnsupportedBoard)
	}

	rep := Report{FEN: FEN(m)}
	if outsideOracleRules(b) {
		rep.Skipped = true
		return rep, nil
	}

	ours := make([]string, 0, len(legal))
	for _, mv := range legal {
		ours = append(ours, mv.String())
	}

	rep.Missing, rep.Extra = diff(oracleMoves(rep.FEN), ours)
	return rep, nil
}

// oracleMoves returns dragontoothmg's legal moves with promotion suffixes
// dropped and duplicates removed.
func oracleMoves(fen string) []string {
	board := dragontoothmg.ParseFen(fen)
	moves := board.GenerateLegalMoves()

	seen := make(map[string]bool, len(moves))
	out := make([]string, 0, len(moves))
	for i := range moves {
		s := moves[i].String()
		if len(s) > 4 {
			s = s[:4]
		}
		s = strings.ToLower(s)
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// diff returns the entries only in want and only in got, each sorted.
func diff(want, got []string) (missing, extra []string) {
	inGot := make(map[string]bool, len(got))
	for _, s := range got {
		inGot[s] = true
	}
	inWant := make(map[string]bool, len(want))
	for _, s := range want {
		inWant[s] = true
		if !inGot[s] {
			missing = append(missing, s)
		}
	}
	for _, s := range got {
		if !inWant[s] {
			extra = append(extra, s)
		}
	}
	slices.Sort(missing)
	slices.Sort(extra)
	return missing, extra
}

func outsideOracleRules(b *chess.Board) bool {
	for _, p := range b.Pieces() {
		if p.Kind != chess.Pawn {
			continue
		}
		row := p.Position().Row
		if row == 0 || row == b.Rows()-1 {
			return true
		}
		home := 1
		if p.Colour == chess.White {
			home = b.Rows() - 2
		}
		if p.MoveCount() == 0 && row != home {
			return true
		}
	}
	return false
}
