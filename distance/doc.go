// SPDX-License-Identifier: MIT

// Package distance models the read-only cost structure of a TSP instance.
//
// It provides one concrete type, Matrix: a square n×n table of non-negative
// travel costs stored row-major in a single flat buffer (offset = i*n + j).
// Costs are directed: At(i, j) is the cost of traveling from city i to city
// j, and nothing forces At(i, j) == At(j, i), so asymmetric instances are
// first-class.
//
// Contracts:
//   - A Matrix is immutable after New; concurrent readers need no locking.
//   - Shape is validated exactly once, at construction (ErrInvalidMatrix);
//     accessors trust the established invariants and stay branch-light.
//   - TourLength is the hot path of the local-search engine: O(n) per call,
//     allocation-free, no per-edge validity checks. It assumes the tour is a
//     permutation of 0..n-1.
//   - Sums are stabilized to 1e-9 so length comparisons are reproducible
//     across platforms and optimization levels.
//
// The solver in package shotgun consumes this package directly; anything that
// needs to price a visiting order against a fixed cost table can use it on
// its own.
package distance
