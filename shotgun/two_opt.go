// Package shotgun - first-improvement 2-opt sweep.
//
// improveOnce scans candidate pairs (i, j) with 1 ≤ i < j ≤ n-1 in
// increasing lexicographic order. Each candidate reverses tour[i..j] in
// place, prices the whole tour, and either keeps the reversal (the first
// strictly improving candidate wins and the scan stops) or reverts it and
// moves on.
//
// Design:
//   - First-improvement, NOT best-improvement: the scan accepts the first
//     strictly shorter candidate, never the shortest one in the
//     neighborhood.
//   - Full-length pricing per candidate, no delta bookkeeping; the
//     reverse/revert trick keeps the scan allocation-free.
//   - Position 0 is never inside a reversed segment, so the rotation anchor
//     survives every move and singleton reversals (i == j) cannot occur.
//
// Contracts:
//   - tour is an anchored permutation of 0..n-1 (see tour.go).
//   - length == m.TourLength(tour) on entry.
//
// Complexity:
//   - O(n²) candidates per sweep, O(n) pricing each ⇒ O(n³) worst case for
//     a sweep that finds no improvement; typically far less, because the
//     scan stops at the first improving candidate.
package shotgun

import "github.com/jessbispo/tsp-parallel/distance"

// improveOnce performs one first-improvement pass over the 2-opt
// neighborhood of tour.
//
// On improvement: the accepted reversal stays applied, and the strictly
// smaller candidate length is returned with improved == true.
// On a full scan without improvement: the tour is bit-for-bit unchanged,
// improved == false, and re-invoking on the same tour reports the same.
//
// Complexity: O(n³) worst case per call, O(1) extra space.
func improveOnce(m *distance.Matrix, tour []int, length float64) (newLength float64, improved bool) {
	var (
		n    = len(tour) // city count; candidates exist only for n ≥ 3
		i    int         // first cut position, 1 ≤ i ≤ n-2
		j    int         // second cut position, i < j ≤ n-1
		cand float64     // candidate tour length
	)
	for i = 1; i <= n-2; i++ {
		for j = i + 1; j <= n-1; j++ {
			reverseSegment(tour, i, j)
			cand = m.TourLength(tour)
			if cand < length {
				// First improvement: keep the reversal, stop scanning.
				return cand, true
			}
			// Not improving: revert (involution) and continue the scan.
			reverseSegment(tour, i, j)
		}
	}

	return length, false
}
