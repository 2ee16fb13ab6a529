package bench

import "math"

// FloatStats summarizes a sample of float64 measurements.
type FloatStats struct {
	N    int
	Best float64
	Mean float64
	Std  float64
}

// CalcFloatStats computes minimum, mean and sample standard deviation.
// Std is zero for samples of fewer than two values.
func CalcFloatStats(values []float64) FloatStats {
	s := FloatStats{N: len(values)}
	if s.N == 0 {
		return s
	}

	best := values[0]
	sum := 0.0
	for _, v := range values {
		if v < best {
			best = v
		}
		sum += v
	}
	mean := sum / float64(s.N)

	variance := 0.0
	if s.N >= 2 {
		for _, v := range values {
			d := v - mean
			variance += d * d
		}
		variance /= float64(s.N - 1)
	}

	s.Best = best
	s.Mean = mean
	s.Std = math.Sqrt(variance)
	return s
}
