// Package shotgun - restart scheduling & reduction to a single best tour.
//
// Design:
//   - Every restart is independent: a private generator (restartRNG), a
//     private tour, no cross-restart state. The matrix is shared read-only.
//   - Workers pull restart indices from a buffered channel (dynamic
//     partitioning): every index in 0..Restarts-1 runs exactly once, on
//     whichever worker drains it first.
//   - Each worker folds a local best and sends exactly ONE message; the
//     caller folds those messages with a commutative minimum over
//     (length, restart index): strict < on length, lower index on ties.
//     That fold is the only synchronization point in the system.
//   - Because seeds attach to restart indices, the fold's winner (tour and
//     length both) is identical for every pool size, including 1.
//
// Complexity:
//   - O(Restarts·Iterations·n³) work worst case, embarrassingly parallel;
//     O(n·Workers) extra space for local bests and channel buffers.
package shotgun

import (
	"sync"

	"github.com/jessbispo/tsp-parallel/distance"
)

// localBest accumulates the shortest tour a worker has seen and the restart
// index that produced it (the deterministic tie-break key).
type localBest struct {
	tour    []int   // best tour so far; nil until the first fold
	length  float64 // its length
	restart int     // index of the restart that produced it
}

// consider folds one finished restart into the accumulator: strictly
// shorter wins; equal lengths resolve to the earlier restart index.
// The fold is commutative and associative, so any arrival order across
// workers produces the same final accumulator.
//
// Complexity: O(1).
func (b *localBest) consider(tour []int, length float64, restart int) {
	if b.tour == nil || length < b.length || (length == b.length && restart < b.restart) {
		b.tour = tour
		b.length = length
		b.restart = restart
	}
}

// Solve runs opts.Restarts independent hill climbs over m and returns the
// globally best tour with its length.
//
// Determinism: the Result is a pure function of (m, Iterations, Restarts,
// Seed). Workers only changes wall-clock time; see the package
// documentation for the seed-derivation rule behind this guarantee.
//
// Errors:
//   - ErrNilMatrix: m == nil.
//   - ErrInvalidParameter: a negative Iterations, Restarts or Workers.
//   - ErrNoRestarts: Restarts == 0 (degenerate input, nothing to report).
//
// All validation happens before any scheduling; a failed Solve does no work
// and produces no partial results.
//
// Complexity: O(Restarts·Iterations·n³) worst case across the pool.
func Solve(m *distance.Matrix, opts Options) (Result, error) {
	if m == nil {
		return Result{}, ErrNilMatrix
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if opts.Restarts == 0 {
		return Result{}, ErrNoRestarts
	}

	var best localBest
	if w := opts.workerCount(); w <= 1 {
		best = runSequential(m, opts)
	} else {
		best = runParallel(m, opts, w)
	}

	// Invariant gate: the winner must be an anchored permutation.
	if err := validateTour(best.tour, m.N()); err != nil {
		return Result{}, err
	}

	return Result{Tour: best.tour, Length: best.length}, nil
}

// runSequential executes all restarts inline, in index order. This is both
// the Workers == 1 path and the reference order the parallel path must
// reproduce.
func runSequential(m *distance.Matrix, opts Options) localBest {
	var (
		best   localBest // running winner
		r      int       // restart index
		tour   []int     // climb output
		length float64   // climb output
	)
	for r = 0; r < opts.Restarts; r++ {
		tour, length = climb(m, restartRNG(opts.Seed, uint64(r)), opts.Iterations)
		best.consider(tour, length, r)
	}

	return best
}

// runParallel fans restart indices out to a fixed pool of workers and folds
// one local best per worker into the global winner.
func runParallel(m *distance.Matrix, opts Options, workers int) localBest {
	var (
		indices = make(chan int, opts.Restarts)   // work queue, dynamically drained
		results = make(chan localBest, workers)   // exactly one message per worker
		wg      sync.WaitGroup                    // tracks worker completion
	)

	// Publish the full index range up front; close marks the queue drained.
	var r int
	for r = 0; r < opts.Restarts; r++ {
		indices <- r
	}
	close(indices)

	// Fixed pool: each worker owns its generators, tours and accumulator.
	wg.Add(workers)
	var w int
	for w = 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			var (
				mine   localBest // worker-exclusive accumulator
				idx    int       // restart index pulled from the queue
				tour   []int
				length float64
			)
			for idx = range indices {
				tour, length = climb(m, restartRNG(opts.Seed, uint64(idx)), opts.Iterations)
				mine.consider(tour, length, idx)
			}
			results <- mine
		}()
	}

	// Close results once every worker has reported its single message.
	go func() {
		wg.Wait()
		close(results)
	}()

	// Commutative-minimum fold over the per-worker bests. A worker that
	// never drained an index reports a nil accumulator; the fold skips it.
	var (
		best localBest
		lb   localBest
	)
	for lb = range results {
		if lb.tour != nil {
			best.consider(lb.tour, lb.length, lb.restart)
		}
	}

	return best
}
