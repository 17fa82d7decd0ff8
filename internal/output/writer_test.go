package output

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/selfplay"
)

func sampleRecord() GameRecord {
	return GameRecord{
		Index: 3,
		ID:    "abc",
		Start: chess.StandardPlacement,
		Result: selfplay.Result{
			Plies:         4,
			Turn:          4,
			Outcome:       selfplay.Checkmate,
			Winner:        chess.Black,
			Checks:        1,
			CapturedWhite: 0,
			CapturedBlack: 0,
			Moves:         []string{"f2f3", "e7e5", "g2g4", "d8h4"},
		},
	}
}

// TestTextWriter_WriteGame verifies the header line and numbered move list
func TestTextWriter_WriteGame(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf, 80)
	if err := w.WriteGame(sampleRecord()); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}

	want := "game 3 abc: checkmate, Black wins after 4 plies (turn 4, 1 checks, captured 0/0)\n" +
		"1. f2f3 e7e5 2. g2g4 d8h4\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("text output mismatch (-want +got):\n%s", diff)
	}
}

func TestTextWriter_Duplicate(t *testing.T) {
	var buf bytes.Buffer
	rec := sampleRecord()
	rec.Duplicate = true
	if err := NewTextWriter(&buf, 80).WriteGame(rec); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "captured 0/0, duplicate)") {
		t.Errorf("missing duplicate marker: %q", buf.String())
	}
}

func TestTextWriter_Error(t *testing.T) {
	var buf bytes.Buffer
	rec := GameRecord{Index: 1, ID: "x", Err: stderrors.New("boom")}
	if err := NewTextWriter(&buf, 80).WriteGame(rec); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "game 1 x: error: boom\n" {
		t.Errorf("got %q", got)
	}
}

func TestLineWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	lw := NewLineWriter(&buf, 10)
	for _, s := range []string{"1.", "e2e4", "e7e5", "2.", "g1f3"} {
		lw.Write(s)
	}
	lw.NewLine()

	want := "1. e2e4\ne7e5 2.\ng1f3\n"
	if got := buf.String(); got != want {
		t.Errorf("wrapped output = %q, want %q", got, want)
	}
}

// TestJSONWriter_Batch verifies records are buffered until Close
func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	if err := w.WriteGame(sampleRecord()); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteGame(GameRecord{Index: 4, Err: stderrors.New("boom")}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Error("batch writer wrote before Close")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out.Games) != 2 {
		t.Fatalf("games = %d, want 2", len(out.Games))
	}

	first := out.Games[0]
	if first.Outcome != "checkmate" || first.Winner != "black" || first.Plies != 4 {
		t.Errorf("first game = %+v", first)
	}
	if out.Games[1].Error != "boom" || out.Games[1].Outcome != "" {
		t.Errorf("second game = %+v", out.Games[1])
	}
}

func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf)
	if err := w.WriteGame(sampleRecord()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"moves": [`) {
		t.Errorf("single writer output missing moves: %s", buf.String())
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestRecordToJSON_NoWinnerOnPlyLimit(t *testing.T) {
	rec := sampleRecord()
	rec.Result.Outcome = selfplay.PlyLimit
	if jg := RecordToJSON(rec); jg.Winner != "" {
		t.Errorf("Winner = %q, want empty", jg.Winner)
	}
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	if _, ok := NewWriter(&buf, config.NewConfig()).(*TextWriter); !ok {
		t.Error("default writer should be text")
	}
	cfg := config.NewConfigBuilder().WithJSONOutput(true).Build()
	if _, ok := NewWriter(&buf, cfg).(*JSONWriter); !ok {
		t.Error("JSON config should select JSONWriter")
	}
}

func TestSummary(t *testing.T) {
	var s Summary
	s.Add(sampleRecord())
	mate := sampleRecord()
	mate.Result.Winner = chess.White
	s.Add(mate)
	stale := sampleRecord()
	stale.Result.Outcome = selfplay.Stalemate
	s.Add(stale)
	stale.Duplicate = true
	s.Add(stale)
	s.Add(GameRecord{Err: stderrors.New("boom")})

	want := Summary{Games: 5, Errors: 1, WhiteWins: 1, BlackWins: 1, Stalemates: 2, Duplicates: 1, Plies: 16}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(s.String(), "5 games:") {
		t.Errorf("String() = %q", s.String())
	}
}
