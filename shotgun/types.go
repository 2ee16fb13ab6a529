// Package shotgun - public result type & sentinel error set.
//
// This file defines ONLY the exported result struct and the package-level
// sentinel errors used across the engine. All entry points return these
// sentinels and tests check them via errors.Is. Nothing here panics on
// user-triggered conditions.
package shotgun

import "errors"

// Every message is prefixed with "shotgun: ..." for consistency and easy
// grepping across logs. Sentinels are returned directly; wrap with
// fmt.Errorf("ctx: %w", ErrX) at outer boundaries when context helps, and
// callers still match with errors.Is.
var (
	// ErrNilMatrix is returned by Solve when the cost matrix is nil.
	ErrNilMatrix = errors.New("shotgun: nil distance matrix")

	// ErrInvalidParameter is returned by Solve when Iterations, Restarts or
	// Workers is negative. Rejected up front, before any scheduling starts;
	// no partial results are produced.
	ErrInvalidParameter = errors.New("shotgun: negative parameter")

	// ErrNoRestarts is returned by Solve when Restarts == 0. Zero restarts
	// produce no candidate tours, so there is no best tour to report; the
	// degenerate input is rejected with this sentinel instead of returning
	// an empty Result silently.
	ErrNoRestarts = errors.New("shotgun: no restarts requested")

	// ErrBadTour reports a tour that is not an anchored permutation of
	// 0..n-1. It guards internal invariants; seeing it escape Solve means a
	// bug in the engine, not bad caller input.
	ErrBadTour = errors.New("shotgun: tour is not an anchored permutation")
)

// Result is the single artifact of a run: the best tour across all restarts
// and its length.
//
//   - Tour is an open permutation of 0..n-1 with the anchor city 0 at
//     position 0; the closing edge back to the anchor is implicit.
//   - Length is the full cycle length, wrap-around edge included, stabilized
//     to 1e-9 (see distance.Matrix.TourLength).
//
// Nothing else leaks out of the engine.
type Result struct {
	Tour   []int
	Length float64
}
