package main

import (
	"math/rand"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/hashing"
	"github.com/lgbarn/chessmatch-go/internal/match"
	"github.com/lgbarn/chessmatch-go/internal/oracle"
	"github.com/lgbarn/chessmatch-go/internal/output"
	"github.com/lgbarn/chessmatch-go/internal/registry"
	"github.com/lgbarn/chessmatch-go/internal/selfplay"
	"github.com/lgbarn/chessmatch-go/internal/worker"
)

// run plays cfg.Play.Games games and writes one record per game.
func run(cfg *config.Config) (output.Summary, error) {
	reg := registry.New()
	play := cfg.Play

	var observer selfplay.Observer
	if play.Verify {
		observer = verifyObserver
	}

	process := func(item worker.WorkItem) worker.ProcessResult {
		res := worker.ProcessResult{Index: item.Index}
		id, err := reg.CreateFrom(play.StartPlacement, play.StartColour)
		if err != nil {
			res.Error = err
			return res
		}
		res.MatchID = id
		res.Error = reg.Do(id, func(m *match.Match) error {
			var err error
			res.Result, err = selfplay.Play(m, rand.New(rand.NewSource(item.Seed)), play.MaxPlies, observer)
			res.Final = chess.FormatPlacement(m.Board())
			res.Signature = hashing.Signature(m.Board(), m.ActiveColour(), res.Result.Plies)
			return err
		})
		// Finished games are not revisited.
		_ = reg.Remove(id)
		return res
	}

	items := make([]worker.WorkItem, play.Games)
	for i := range items {
		items[i] = worker.WorkItem{Index: i, Seed: play.Seed + int64(i)}
	}

	pool := worker.NewPool(process, worker.WithWorkers(play.Workers), worker.WithBufferSize(play.Workers*2))
	results := pool.Run(items, func(r worker.ProcessResult) bool {
		if r.Error != nil {
			cfg.Logf(1, "game %d: %v", r.Index, r.Error)
		} else {
			cfg.Logf(2, "game %d: %s after %d plies", r.Index, r.Result.Outcome, r.Result.Plies)
		}
		return true
	})

	// Flags are assigned in game order so they do not depend on scheduling.
	dups := hashing.NewDuplicateDetector(false, 0)

	var summary output.Summary
	var w output.GameWriter
	if !cfg.Output.Quiet {
		w = output.NewWriter(cfg.Output.Writer, cfg)
	}
	for _, r := range results {
		rec := output.GameRecord{
			Index:  r.Index,
			ID:     r.MatchID,
			Start:  play.StartPlacement,
			Final:  r.Final,
			Result: r.Result,
			Err:    r.Error,
		}
		if r.Error == nil {
			rec.Duplicate = dups.CheckAndAdd(r.Signature)
		}
		summary.Add(rec)
		if w != nil {
			if err := w.WriteGame(rec); err != nil {
				return summary, err
			}
		}
	}
	if w != nil {
		if err := w.Close(); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func verifyObserver(m *match.Match, legal []match.Move) error {
	rep, err := oracle.Compare(m, legal)
	if err != nil {
		return err
	}
	return rep.Err()
}
