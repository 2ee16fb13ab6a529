// Package shotgun - fuel-bounded hill climbing from one random start.
//
// A climb owns exactly one tour and walks it downhill through the 2-opt
// neighborhood. Two states: searching (last sweep improved; keep going) and
// converged (no improving move found, or fuel exhausted).
//
// Contracts:
//   - The tracked length always equals m.TourLength(tour) and never
//     increases from sweep to sweep.
//   - Termination is unconditional: at most maxSweeps sweeps run even while
//     improvements keep appearing. The budget is explicit fuel, not a
//     convergence heuristic.
package shotgun

import (
	"math/rand"

	"github.com/jessbispo/tsp-parallel/distance"
)

// climb runs hill climbing from a fresh random tour drawn from rng and
// returns the final tour with its length.
//
// maxSweeps == 0 is valid: the random start is returned unimproved, priced.
// The caller owns the returned slice exclusively.
//
// Complexity: O(maxSweeps·n³) worst case, far less in expectation.
func climb(m *distance.Matrix, rng *rand.Rand, maxSweeps int) ([]int, float64) {
	var (
		tour     = randomTour(m.N(), rng) // fresh start, anchor pinned
		length   = m.TourLength(tour)     // invariant: length prices tour
		improved bool                     // outcome of the last sweep
		sweep    int                      // fuel spent so far
	)
	for sweep = 0; sweep < maxSweeps; sweep++ {
		length, improved = improveOnce(m, tour, length)
		if !improved {
			// Local optimum under the 2-opt neighborhood.
			break
		}
	}

	return tour, length
}
