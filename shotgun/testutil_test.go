// Package shotgun_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating functionality that already lives in
// focused test files.
package shotgun_test

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/jessbispo/tsp-parallel/distance"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the canonical deterministic base seed for reproducible runs.
	seedDet = int64(42)

	// seedAlt is a second base seed to probe seed sensitivity.
	seedAlt = int64(1337)

	// sweepsPlenty is a budget large enough for full convergence on the
	// small instances used in tests.
	sweepsPlenty = 1000
)

// -----------------------------------------------------------------------------
// Matrix builders
// -----------------------------------------------------------------------------

// mustMatrix builds a distance.Matrix from rows or fails the test.
func mustMatrix(t *testing.T, rows [][]float64) *distance.Matrix {
	t.Helper()
	m, err := distance.New(rows)
	if err != nil {
		t.Fatalf("distance.New failed: %v", err)
	}

	return m
}

// classic4 returns the 4-city instance whose optimal cycle length is 80
// (reachable as 0→1→3→2 or its mirror 0→2→3→1).
func classic4(t *testing.T) *distance.Matrix {
	t.Helper()

	return mustMatrix(t, [][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})
}

// ripple returns n deterministic points on a gently rippled circle;
// the ripple breaks distance ties without introducing randomness.
func ripple(n int) [][2]float64 {
	var (
		pts = make([][2]float64, n)
		i   int
		th  float64
		r   float64
	)
	for i = 0; i < n; i++ {
		th = 2.0 * math.Pi * float64(i) / float64(n)
		r = 1.0 + 0.02*float64((i*5)%7)
		pts[i] = [2]float64{r * math.Cos(th), r * math.Sin(th)}
	}

	return pts
}

// euclidRows builds a symmetric metric from 2D points with zero diagonal.
func euclidRows(pts [][2]float64) [][]float64 {
	n := len(pts)
	a := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
	}

	// Fill the upper triangle, mirror to the lower one.
	var dx, dy, d float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if i == j {
				a[i][j] = 0
				continue // keep exact zeros on the diagonal
			}
			dx = pts[i][0] - pts[j][0]
			dy = pts[i][1] - pts[j][1]
			d = math.Hypot(dx, dy)
			a[i][j] = d
			a[j][i] = d
		}
	}

	return a
}

// randomRows builds a deterministic pseudo-random directed cost table with a
// zero diagonal: entries are uniform in [1, 10) and generally asymmetric.
func randomRows(n int, seed int64) [][]float64 {
	var (
		rng = rand.New(rand.NewSource(seed))
		a   = make([][]float64, n)
		i   int
		j   int
	)
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i == j {
				continue // zero diagonal
			}
			a[i][j] = 1 + 9*rng.Float64()
		}
	}

	return a
}

// -----------------------------------------------------------------------------
// Generic helpers (repeaters, assertions, reference pricing)
// -----------------------------------------------------------------------------

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int // loop iterator
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustEqualInts asserts exact equality of two integer slices (length & values).
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// edgeSum prices a tour by explicit At summation, wrap edge included.
// It is the reference implementation TourLength must agree with.
func edgeSum(m *distance.Matrix, tour []int) float64 {
	var (
		sum float64
		k   int
		n   = len(tour)
	)
	for k = 0; k < n; k++ {
		sum += m.At(tour[k], tour[(k+1)%n])
	}

	return sum
}
