// Package worker provides a worker pool for playing games in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessmatch-go/internal/hashing"
	"github.com/lgbarn/chessmatch-go/internal/selfplay"
)

// WorkItem represents one game to be played.
type WorkItem struct {
	Index int   // Position in the run, used to restore order
	Seed  int64 // Seed for the game's move picker
}

// ProcessResult represents the outcome of playing one game.
type ProcessResult struct {
	Index     int
	MatchID   string
	Result    selfplay.Result
	Final     string // Final placement
	Signature hashing.GameSignature
	Error     error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel self-play.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. processFunc is required; without options
// the pool has 1 worker and a buffer of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish,
// then closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run starts the pool, plays every item and returns the results in the
// order of items. emit, if not nil, sees each result as it arrives and may
// return false to stop the run; results for skipped items are absent.
func (p *Pool) Run(items []WorkItem, emit func(ProcessResult) bool) []ProcessResult {
	p.Start()
	go func() {
		for _, item := range items {
			if p.IsStopped() {
				break
			}
			p.Submit(item)
		}
		p.Close()
	}()

	byIndex := make(map[int]ProcessResult, len(items))
	for r := range p.Results() {
		byIndex[r.Index] = r
		if emit != nil && !emit(r) {
			p.Stop()
		}
	}

	out := make([]ProcessResult, 0, len(byIndex))
	for _, item := range items {
		if r, ok := byIndex[item.Index]; ok {
			out = append(out, r)
		}
	}
	return out
}
