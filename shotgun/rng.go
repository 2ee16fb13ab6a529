// Package shotgun - deterministic RNG utilities for restart streams.
//
// This file centralizes random generation for the whole engine.
//
// Goals:
//   - Determinism: same base seed ⇒ identical results across platforms.
//   - Independence: one derived stream per restart; no shared generator state.
//   - Safety: no panics, no logging; O(1) helpers, O(n) shuffles.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every restart owns the private
//     *rand.Rand built by restartRNG; workers never share streams.
package shotgun

import "math/rand"

// defaultSeed is the fixed "zero" seed used when callers pass Seed == 0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes the base seed and a restart index into a new 64-bit seed.
//
// Rationale:
//   - Every restart needs an independent substream of the base seed.
//   - A SplitMix64-style avalanche mix eliminates correlations: neighboring
//     restart indices produce well-separated streams, unlike base+index.
//
// The derivation is part of the reproducibility contract: seeds attach to
// restart indices, never to workers, so the multiset of climbs and the
// reduced winner are the same for every pool size.
//
// Complexity: O(1).
func deriveSeed(base int64, restart uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants.
	var x uint64
	x = uint64(base) ^ (restart + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// restartRNG builds the private generator of one restart from the base seed.
// The seed-zero policy is applied to the base first, so Seed == 0 and
// Seed == defaultSeed derive identical streams.
//
// Call during restart setup, never inside sweep loops.
//
// Complexity: O(1).
func restartRNG(base int64, restart uint64) *rand.Rand {
	var s = base
	if s == 0 {
		s = defaultSeed
	}

	return rngFromSeed(deriveSeed(s, restart))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
// If rng == nil, the deterministic default stream is used (seed == 0 policy).
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var n = len(a)
	if n <= 1 {
		return
	}

	var (
		r *rand.Rand
		i int
		j int
	)
	r = rng
	if r == nil {
		r = rngFromSeed(0)
	}

	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
