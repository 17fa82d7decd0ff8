// Package registry keeps many independent matches in one process.
//
// Every match gets its own lock; Do runs a caller's function while holding
// it, so one call sees a match only between complete operations and never
// mid-way through a legality probe.
package registry

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/match"
)

// entry is a registered match and its bookkeeping.
type entry struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	mu    sync.Mutex
	match *match.Match
}

// Registry maps match IDs to matches.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Create registers a new match in the standard starting position.
func (r *Registry) Create() string {
	return r.add(match.New())
}

// CreateFrom registers a new match set up from a placement string.
func (r *Registry) CreateFrom(placement string, toMove chess.Colour) (string, error) {
	m, err := match.NewFromPlacement(placement, toMove)
	if err != nil {
		return "", err
	}
	return r.add(m), nil
}

func (r *Registry) add(m *match.Match) string {
	now := time.Now()
	e := &entry{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		match:     m,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.ID] = e
	return e.ID
}

func (r *Registry) get(id string) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrMatchNotFound, "match %s", id)
	}
	return e, nil
}

// Do runs fn on the match with the given ID while holding that match's
// lock. Calls on different matches run concurrently.
func (r *Registry) Do(id string, fn func(m *match.Match) error) error {
	e, err := r.get(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	err = fn(e.match)
	e.UpdatedAt = time.Now()
	return err
}

// PlayTurn plays one move on the identified match.
func (r *Registry) PlayTurn(id string, origin, destination chess.Position) error {
	return r.Do(id, func(m *match.Match) error {
		return m.PlayTurn(origin, destination)
	})
}

// Remove forgets a match. Removing an unknown ID is an error.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return errors.Wrapf(errors.ErrMatchNotFound, "match %s", id)
	}
	delete(r.entries, id)
	return nil
}

// Len returns the number of registered matches.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// IDs returns the registered match IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := maps.Keys(r.entries)
	slices.Sort(ids)
	return ids
}
