// SPDX-License-Identifier: MIT

// Package distance - square cost matrix storage & tour pricing.
//
// Purpose:
//   - Keep the n×n cost table in one contiguous row-major buffer (offset = i*n + j).
//   - Validate shape exactly once, at construction; accessors trust the invariant.
//   - Price whole tours in a single linear pass, wrap-around edge included.
//
// Complexity quicksheet:
//   - New: O(n²) copy; N/At: O(1); TourLength: O(n); String: O(n²).
package distance

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidMatrix is returned by New when the cost table is empty or any
// row's length differs from the number of rows. It fires once, before any
// optimization begins; callers match it with errors.Is.
var ErrInvalidMatrix = errors.New("distance: invalid matrix")

// roundScale controls length stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting
// which of two tours is shorter.
const roundScale = 1e9

// Formatting literals for String.
const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// Matrix is an immutable square cost table.
//   - n holds the dimension (n ≥ 1).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//
// A Matrix never changes after New, so it is safe for unsynchronized
// concurrent reads by any number of workers.
type Matrix struct {
	n    int       // dimension (rows == cols == n)
	data []float64 // contiguous row-major storage (len == n*n)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New builds a Matrix from rows, copying every value into the flat buffer.
// The input slices are not retained; callers may reuse them afterwards.
//
// Contract:
//   - rows is non-empty and square: len(rows[i]) == len(rows) for every i.
//   - Costs are non-negative reals. This is a documented input contract,
//     not a validated condition; negative entries change the reported
//     lengths but cannot corrupt the search.
//
// Errors:
//   - ErrInvalidMatrix when rows is empty or some row has the wrong length,
//     wrapped with the offending row index for diagnostics.
//
// Complexity: O(n²) time, O(n²) space.
func New(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("empty cost table: %w", ErrInvalidMatrix)
	}

	buf := make([]float64, n*n)

	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), n, ErrInvalidMatrix)
		}
		copy(buf[i*n:(i+1)*n], rows[i])
	}

	return &Matrix{n: n, data: buf}, nil
}

// N reports the matrix dimension (the number of cities).
//
// Complexity: O(1).
func (m *Matrix) N() int { return m.n }

// At returns the directed cost of edge i→j.
//
// Contract: 0 ≤ i, j < N(). Bounds are an established invariant of every
// caller (tours are validated permutations), so At performs no re-check;
// this keeps the hot path free of per-edge branches.
//
// Complexity: O(1).
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.n+j] }

// TourLength sums the costs of consecutive edges along tour, including the
// wrap-around edge from the last city back to the first.
//
// Contract: tour is a permutation of 0..n-1 of length n == N().
// For n == 1 the result is At(0, 0), the self-loop cost.
//
// Complexity: O(n) time, O(1) space; no allocations, no per-edge branches.
func (m *Matrix) TourLength(tour []int) float64 {
	if len(tour) == 0 {
		return 0
	}

	var (
		n   = m.n    // row stride
		d   = m.data // local alias keeps the loop tight
		sum float64  // accumulated length
		k   int      // edge index
		L   = len(tour) - 1
	)
	for k = 0; k < L; k++ {
		sum += d[tour[k]*n+tour[k+1]]
	}
	// Wrap edge: last city back to the first (self-loop when n == 1).
	sum += d[tour[L]*n+tour[0]]

	return round1e9(sum)
}

// String renders the cost table row by row, e.g. "[0, 10]\n[10, 0]\n".
// Intended for debugging and error reports, not for serialization.
//
// Complexity: O(n²) time and space.
func (m *Matrix) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.n; i++ {
		sb.WriteString(fmtRowOpen)
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(fmtSep)
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.n+j], 'g', -1, 64))
		}
		sb.WriteString(fmtRowClose)
	}

	return sb.String()
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// Keeps length comparisons stable without affecting which tour is shorter.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
