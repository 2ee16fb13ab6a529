package bench

import (
	"math/rand"
	"path/filepath"
	"strconv"
)

func randForSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// randomCosts builds an n×n directed cost table with a zero diagonal and
// uniform off-diagonal costs in [1, 100).
func randomCosts(n int, rng *rand.Rand) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i == j {
				continue
			}
			rows[i][j] = 1 + 99*rng.Float64()
		}
	}
	return rows
}

func dirOf(path string) string {
	d := filepath.Dir(path)
	if d == "." {
		return ""
	}
	return d
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
