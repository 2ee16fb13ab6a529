// Package tspparallel approximates the Traveling Salesman Problem with
// shotgun hill climbing: fire many independent random restarts, polish
// each one with 2-opt local search, and keep the shortest cycle any of
// them found.
//
// 🚀 What is tsp-parallel?
//
//	A small, deterministic solver toolkit that brings together:
//		• Cost tables: immutable, directed, float64 matrices with tour pricing
//		• Local search: first-improvement 2-opt over anchored tours
//		• Restarts: a worker pool that folds every climb into one best result
//		• Wire format: header + CSV instances read from files or stdin
//		• Benchmarks: sequential vs parallel measurements with CSV reports
//
// ✨ Why choose it?
//
//   - Reproducible - a run is a pure function of (matrix, options), whatever
//     the worker count
//   - Directed-friendly - asymmetric matrices are priced exactly, never
//     mirrored
//   - Plain Go API - build a matrix, call Solve, read the Result
//
// Everything is organized under focused subpackages:
//
//	distance/ - immutable cost tables and cycle pricing
//	problem/  - the textual instance format
//	shotgun/  - restarts, hill climbing and the parallel reduction
//	cmd/      - the solve and bench binaries
//
// Quick start:
//
//	m, err := distance.New(rows)
//	if err != nil { ... }
//	res, err := shotgun.Solve(m, shotgun.DefaultOptions())
//	if err != nil { ... }
//	fmt.Println(res.Tour, res.Length)
//
//	go get github.com/jessbispo/tsp-parallel
package tspparallel
