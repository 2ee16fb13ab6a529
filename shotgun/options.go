// Package shotgun - run configuration.
//
// Options is a plain value struct: start from DefaultOptions(), override
// fields explicitly, pass by value into Solve. No functional-option
// indirection; the engine has exactly four knobs.
package shotgun

import "runtime"

const (
	// DefaultIterations is a generous per-restart sweep budget. On typical
	// instances convergence happens far earlier; the budget is explicit fuel
	// guaranteeing termination, not a tuning target.
	DefaultIterations = 1000

	// DefaultRestarts balances exploration against wall-clock time for
	// small-to-medium instances.
	DefaultRestarts = 50
)

// Options configures one Solve call.
//
// The zero value is NOT runnable: Restarts == 0 is rejected with
// ErrNoRestarts. Use DefaultOptions as the base.
type Options struct {
	// Iterations caps the number of improvement sweeps per restart (fuel).
	// 0 is valid: every restart returns its random start tour unimproved.
	// Negative values are rejected with ErrInvalidParameter.
	Iterations int

	// Restarts is the number of independent random-restart climbs.
	// Negative values are rejected with ErrInvalidParameter.
	Restarts int

	// Seed is the base seed of the run. Per-restart generators derive from
	// it and the restart index (SplitMix64 mix), which makes the Result a
	// pure function of (matrix, Iterations, Restarts, Seed); Workers does
	// not influence it. Seed 0 selects a fixed non-zero default so the zero
	// policy stays reproducible.
	Seed int64

	// Workers sizes the pool of concurrent climbers. 0 means
	// runtime.NumCPU(); 1 forces the fully sequential path; the pool never
	// exceeds Restarts. Negative values are rejected with
	// ErrInvalidParameter.
	Workers int
}

// DefaultOptions returns the canonical configuration: the default sweep and
// restart budgets, the zero-seed policy, and one worker per CPU core.
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		Restarts:   DefaultRestarts,
		Seed:       0,
		Workers:    0,
	}
}

// validate rejects impossible configurations before any work is scheduled.
//
// Complexity: O(1).
func (o Options) validate() error {
	if o.Iterations < 0 || o.Restarts < 0 || o.Workers < 0 {
		return ErrInvalidParameter
	}

	return nil
}

// workerCount resolves the effective pool size: 0 expands to
// runtime.NumCPU(), and the pool is clamped to Restarts so no worker sits
// idle from the start.
//
// Complexity: O(1).
func (o Options) workerCount() int {
	var w = o.Workers
	if w == 0 {
		w = runtime.NumCPU()
	}
	if w > o.Restarts {
		w = o.Restarts
	}

	return w
}
