package output

import (
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/selfplay"
)

// JSONGame represents one self-play game in JSON format.
type JSONGame struct {
	Index     int          `json:"index"`
	ID        string       `json:"id,omitempty"`
	Start     string       `json:"start,omitempty"`
	Final     string       `json:"final,omitempty"`
	Duplicate bool         `json:"duplicate,omitempty"`
	Outcome   string       `json:"outcome,omitempty"`
	Winner    string       `json:"winner,omitempty"`
	Plies     int          `json:"plies"`
	Turn      int          `json:"turn"`
	Checks    int          `json:"checks"`
	Captured  JSONCaptured `json:"captured"`
	Moves     []string     `json:"moves,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// JSONCaptured counts captured pieces per side.
type JSONCaptured struct {
	White int `json:"white"`
	Black int `json:"black"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// RecordToJSON converts a game record to its JSON form.
func RecordToJSON(rec GameRecord) *JSONGame {
	jg := &JSONGame{
		Index: rec.Index,
		ID:    rec.ID,
		Start: rec.Start,
		Final: rec.Final,
	}
	if rec.Err != nil {
		jg.Error = rec.Err.Error()
		return jg
	}

	res := rec.Result
	jg.Outcome = res.Outcome.String()
	if res.Outcome == selfplay.Checkmate {
		jg.Winner = strings.ToLower(res.Winner.String())
	}
	jg.Duplicate = rec.Duplicate
	jg.Plies = res.Plies
	jg.Turn = res.Turn
	jg.Checks = res.Checks
	jg.Captured = JSONCaptured{White: res.CapturedWhite, Black: res.CapturedBlack}
	jg.Moves = res.Moves
	return jg
}
