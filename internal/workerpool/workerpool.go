// Package workerpool provides a persistent pool of worker goroutines
// that the sweep engine submits closures to. It is a bare task queue:
// partitioning work into tasks and waiting for them to finish is the
// sweep engine's own responsibility, since what a "task" is differs
// between the engine's two parallel regions — one rotation per pair
// in a round, one row range for the off-diagonal reduction — and a
// single generic partitioning scheme cannot fit both without hiding
// which one is in play.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at
// creation and live until Close is called.
type Pool struct {
	numWorkers int
	workC      chan func()
	closeOnce  sync.Once
	closed     atomic.Bool
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, it
// uses runtime.GOMAXPROCS(0).
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan func(), numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for fn := range p.workC {
		fn()
	}
}

// NumWorkers reports the number of workers in the pool.
func (p *Pool) NumWorkers() int { return p.numWorkers }

// Close shuts the pool down. It does not wait for queued or running
// tasks: workers finish the work already queued after Close returns.
// Close is safe to call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Submit hands fn to a worker goroutine. It does not wait for fn to
// run; a caller that needs to know when a batch of submitted work has
// finished tracks that itself (a sync.WaitGroup around a set of
// Submit calls, as sweep.Engine does). If the pool has been closed,
// Submit runs fn synchronously on the calling goroutine instead of
// sending it to the closed channel.
func (p *Pool) Submit(fn func()) {
	if p.closed.Load() {
		fn()
		return
	}
	p.workC <- fn
}
