// Package output writes self-play game records as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/selfplay"
)

// GameRecord is one finished (or failed) self-play game.
type GameRecord struct {
	Index     int
	ID        string // Registry match ID
	Start     string // Starting placement
	Final     string // Final placement
	Result    selfplay.Result
	Duplicate bool // Ends in the same position as an earlier game
	Err       error
}

// GameWriter is the interface for writing game records.
type GameWriter interface {
	// WriteGame writes a single game record.
	WriteGame(rec GameRecord) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. Batch writers write pending output here.
	Close() error
}

// NewWriter returns the writer selected by cfg.
func NewWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, int(cfg.Output.MaxLineLength))
}

// TextWriter writes a header line per game followed by its wrapped move list.
type TextWriter struct {
	w             io.Writer
	maxLineLength int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, maxLineLength int) *TextWriter {
	return &TextWriter{w: w, maxLineLength: maxLineLength}
}

// WriteGame writes a game record as text.
func (tw *TextWriter) WriteGame(rec GameRecord) error {
	if rec.Err != nil {
		_, err := fmt.Fprintf(tw.w, "game %d %s: error: %v\n", rec.Index, rec.ID, rec.Err)
		return err
	}

	res := rec.Result
	verdict := res.Outcome.String()
	if res.Outcome == selfplay.Checkmate {
		verdict = fmt.Sprintf("%s, %s wins", verdict, res.Winner)
	}
	dup := ""
	if rec.Duplicate {
		dup = ", duplicate"
	}
	if _, err := fmt.Fprintf(tw.w, "game %d %s: %s after %d plies (turn %d, %d checks, captured %d/%d%s)\n",
		rec.Index, rec.ID, verdict, res.Plies, res.Turn, res.Checks, res.CapturedWhite, res.CapturedBlack, dup); err != nil {
		return err
	}
	if len(res.Moves) == 0 {
		return nil
	}

	lw := NewLineWriter(tw.w, tw.maxLineLength)
	for i, mv := range res.Moves {
		if i%2 == 0 {
			lw.Write(fmt.Sprintf("%d.", i/2+1))
		}
		lw.Write(mv)
	}
	lw.NewLine()
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes game records in JSON format.
// It buffers records and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*JSONGame, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each record immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteGame buffers a record (or writes it immediately in single mode).
func (jw *JSONWriter) WriteGame(rec GameRecord) error {
	jg := RecordToJSON(rec)
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(jg)
	}
	jw.games = append(jw.games, jg)
	return nil
}

// Flush writes all buffered records as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
