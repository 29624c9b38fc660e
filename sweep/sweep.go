// Package sweep implements the parallel Jacobi sweep engine: it drives
// rounds of disjoint rotations through a worker pool, with a barrier
// between rounds, and consults a convergence monitor between sweeps.
package sweep

import (
	"context"
	"math"
	"sync"

	"github.com/simonhorlick/parallel-jacobi/convergence"
	"github.com/simonhorlick/parallel-jacobi/internal/workerpool"
	"github.com/simonhorlick/parallel-jacobi/matrix"
	"github.com/simonhorlick/parallel-jacobi/pairing"
	"github.com/simonhorlick/parallel-jacobi/rotation"

	"github.com/simonhorlick/parallel-jacobi/jtimer"
)

// maxSweeps is the hard safety cap on sweep count, independent of
// whatever a monitor decides, so a misconfigured max-iterations
// monitor cannot hang the engine (spec.md §7 "Numerical
// non-convergence").
const maxSweeps = 100

// Status describes how a Run terminated.
type Status int

const (
	// Converged means the monitor signalled stop under normal
	// conditions.
	Converged Status = iota
	// MaxSweepsHit means the safety cap was reached before the
	// monitor signalled stop.
	MaxSweepsHit
	// NonFinite means off(A) became NaN or infinite.
	NonFinite
	// Cancelled means ctx was done at a sweep boundary.
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case MaxSweepsHit:
		return "max-sweeps-hit"
	case NonFinite:
		return "non-finite"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result summarizes how a sweep run ended.
type Result struct {
	Sweeps int
	Rounds int
	Off    float64
	Status Status
}

// Engine drives sweeps of a matrix through a worker pool. Engines are
// not safe for concurrent use by multiple goroutines against the same
// matrix, since the sweep engine itself is the synchronization point
// for that matrix's mutation.
type Engine struct {
	pool *workerpool.Pool
}

// New returns an Engine that schedules work on pool.
func New(pool *workerpool.Pool) *Engine {
	return &Engine{pool: pool}
}

// Run repeatedly executes full sweeps of a.Size()-1 rounds, checking
// mon after each sweep, until mon signals stop, the safety cap is
// reached, off(A) is within machine precision or non-finite, or ctx is
// done at a sweep boundary. root is the "run" timer node; Run starts
// and stops root's "pre-multiplication" and "post-multiplication"
// children around the respective phases of every round.
func (e *Engine) Run(ctx context.Context, a *matrix.Symmetric, mon convergence.Monitor, sched *pairing.Schedule, root *jtimer.Node) Result {
	n := a.ActualSize()
	pre := root.Child("pre-multiplication")
	post := root.Child("post-multiplication")

	off := a.OffDiagonalNorm()
	prevOff := off
	totalRounds := 0

	for sweepIdx := 0; ; sweepIdx++ {
		select {
		case <-ctx.Done():
			return Result{Sweeps: sweepIdx, Rounds: totalRounds, Off: off, Status: Cancelled}
		default:
		}

		if off <= machineEpsilonFloor(a) {
			return Result{Sweeps: sweepIdx, Rounds: totalRounds, Off: off, Status: Converged}
		}
		if mon.ShouldStop(sweepIdx, off, prevOff, n) {
			return Result{Sweeps: sweepIdx, Rounds: totalRounds, Off: off, Status: Converged}
		}
		if sweepIdx >= maxSweeps {
			return Result{Sweeps: sweepIdx, Rounds: totalRounds, Off: off, Status: MaxSweepsHit}
		}

		for k := 0; k < sched.Rounds(); k++ {
			e.runRound(a, sched.Round(k), pre, post)
			totalRounds++
		}

		prevOff = off
		off = e.offDiagonalParallel(a)
		if math.IsNaN(off) || math.IsInf(off, 0) {
			return Result{Sweeps: sweepIdx + 1, Rounds: totalRounds, Off: off, Status: NonFinite}
		}
	}
}

// machineEpsilonFloor returns the "within machine precision" bound
// from spec.md §4.4, scaled by the matrix's own magnitude so a
// near-zero matrix doesn't require off(A) to reach literal zero.
func machineEpsilonFloor(a *matrix.Symmetric) float64 {
	const eps = 1e-7
	norm := a.FrobeniusNorm()
	if norm == 0 {
		return eps
	}
	return eps * norm
}

// runRound applies every pair of round in parallel: rotations are
// computed, then the pre-multiplication phase runs for every pair
// (parallel across pairs), then the post-multiplication phase runs for
// every pair (parallel across pairs), then each pair's diagonal block
// is finalized. Rounds are internally disjoint by construction of the
// pairing schedule, so this ordering never races.
func (e *Engine) runRound(a *matrix.Symmetric, round []pairing.Pair, pre, post *jtimer.Node) {
	n := a.ActualSize()

	type active struct {
		rot rotation.Rotation
		ok  bool
	}
	rots := make([]active, len(round))

	e.dispatchPairs(round, func(i int, pair pairing.Pair) {
		if pair.P >= n || pair.Q >= n {
			return // padding index, sits idle this round
		}
		r, ok := rotation.Compute(a, pair.P, pair.Q)
		rots[i] = active{rot: r, ok: ok}
	})

	pre.Start()
	e.dispatchPairs(round, func(i int, _ pairing.Pair) {
		if !rots[i].ok {
			return
		}
		rotation.ApplyPre(a, rots[i].rot, 0, n)
	})
	pre.Stop()

	post.Start()
	e.dispatchPairs(round, func(i int, _ pairing.Pair) {
		if !rots[i].ok {
			return
		}
		rotation.ApplyPost(a, rots[i].rot, 0, n)
	})
	post.Stop()

	for i := range rots {
		if rots[i].ok {
			rotation.ApplyDiagonalBlock(a, rots[i].rot)
		}
	}
}

// dispatchPairs runs fn once per pair in round, each as its own worker
// task, and blocks until every pair has been handled. A round holds at
// most half the matrix's padded order in pairs — spec.md §4.4's "the
// round's pairs are partitioned across workers" grain — which is small
// enough that one task per pair is simpler than chunking and keeps the
// submission order matching the round's own pair order.
func (e *Engine) dispatchPairs(round []pairing.Pair, fn func(i int, pair pairing.Pair)) {
	var wg sync.WaitGroup
	wg.Add(len(round))
	for i, pair := range round {
		i, pair := i, pair
		e.pool.Submit(func() {
			defer wg.Done()
			fn(i, pair)
		})
	}
	wg.Wait()
}

// offDiagonalParallel computes off(A) as a parallel reduction over the
// strictly-upper triangle, partitioned by contiguous row ranges rather
// than by pair: the reduction visits every (i,j) pair in the triangle,
// not just the ones a round pairs up, so it is sized by row count
// instead of going through dispatchPairs.
func (e *Engine) offDiagonalParallel(a *matrix.Symmetric) float64 {
	n := a.ActualSize()
	if n == 0 {
		return 0
	}

	workers := min(e.pool.NumWorkers(), n)
	if workers <= 1 {
		return math.Sqrt(offDiagonalRows(a, 0, n))
	}
	chunk := (n + workers - 1) / workers

	var mu sync.Mutex
	var total float64
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		lo, hi := lo, hi
		e.pool.Submit(func() {
			defer wg.Done()
			partial := offDiagonalRows(a, lo, hi)
			mu.Lock()
			total += partial
			mu.Unlock()
		})
	}
	wg.Wait()
	return math.Sqrt(total)
}

// offDiagonalRows sums 2*A(i,j)^2 over rows [lo, hi) of the strictly
// upper triangle; the factor of 2 accounts for the mirrored (j,i) entry.
func offDiagonalRows(a *matrix.Symmetric, lo, hi int) float64 {
	n := a.ActualSize()
	var sum float64
	for i := lo; i < hi; i++ {
		for j := i + 1; j < n; j++ {
			v := float64(a.At(i, j))
			sum += 2 * v * v
		}
	}
	return sum
}
