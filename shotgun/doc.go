// Package shotgun solves TSP instances approximately by shotgun hill
// climbing: many independent random restarts, each driven to a 2-opt local
// optimum, reduced to the single shortest tour found.
//
// Method, per restart:
//
//   - Draw a uniformly random tour with city 0 pinned as the cyclic anchor.
//
//   - Repeatedly apply the first strictly improving 2-opt move (segment
//     reversal), scanning candidates (i, j) in lexicographic order.
//
//   - Stop at a local optimum, or when the per-restart sweep budget
//     (Options.Iterations) runs out.
//
// Restarts are embarrassingly parallel: a fixed pool of workers climbs
// independent tours and a single commutative-minimum reduction picks the
// winner: strict < on length, ties to the lowest restart index.
//
// Determinism: each restart owns a private generator derived from
// Options.Seed and the restart index via a SplitMix64 mix. Seeds attach to
// restarts, not workers, so a fixed Seed reproduces the exact same Result
// for every Workers setting, including the sequential one.
//
// Complexity: O(Restarts · Iterations · n³) worst case; the
// first-improvement policy usually ends a sweep long before the full O(n²)
// candidate scan completes.
//
// Use this package when a good tour quickly matters more than a provably
// optimal one; the heuristic's failure to find the optimum is a quality
// outcome, not an error.
package shotgun
