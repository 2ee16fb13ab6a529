// Package shotgun - tour utilities for the anchored open representation.
//
// A tour here is an OPEN permutation of 0..n-1 of length n: position 0
// always holds city 0 (the cyclic anchor) and the closing edge back to the
// anchor is implicit in pricing (distance.Matrix.TourLength). Fixing the
// anchor removes rotation-equivalent duplicates from the search space, so
// no two tours in it describe the same cycle by rotation.
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from types.go.
//   - O(n) helpers; in-place mutation keeps the candidate scan allocation-free.
//   - Deterministic behavior with explicit pre/post-conditions.
package shotgun

import "math/rand"

// randomTour produces a uniformly random anchored tour: city 0 at position
// 0, then a Fisher–Yates shuffle of 1..n-1. Draws exclusively from rng and
// touches no shared state, so concurrent generators stay independent.
//
// Contract: n ≥ 1. For n == 1 the tour is the single-element sequence [0].
//
// Complexity: O(n) time, O(n) space (the returned slice).
func randomTour(n int, rng *rand.Rand) []int {
	var (
		tour = make([]int, n)
		i    int
	)
	for i = 0; i < n; i++ {
		tour[i] = i
	}
	// Shuffle positions [1..n) only; the anchor never moves.
	shuffleIntsInPlace(tour[1:], rng)

	return tour
}

// reverseSegment reverses the inclusive positions tour[i..j] in place.
// This is the 2-opt primitive; reversal is an involution, so applying the
// same call twice restores the tour exactly.
//
// Contract: 1 ≤ i ≤ j ≤ len(tour)-1. The candidate scan generates indices
// inside these bounds by construction, so the primitive performs no checks.
//
// Complexity: O(j-i) time, O(1) space.
func reverseSegment(tour []int, i, j int) {
	for i < j {
		tour[i], tour[j] = tour[j], tour[i]
		i++
		j--
	}
}

// validateTour checks that tour is an anchored permutation: length n, city 0
// at position 0, every index of 0..n-1 present exactly once. Allocates only
// the O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func validateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n {
		return ErrBadTour
	}
	if tour[0] != 0 {
		return ErrBadTour
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		// Out-of-range or duplicated index breaks the permutation contract.
		if v < 0 || v >= n || seen[v] {
			return ErrBadTour
		}
		seen[v] = true
	}

	return nil
}
