// Package crossover - RNG utilities shared by the operators.
//
// This file centralizes deterministic random generation for cut-point
// selection.
//
// Goals:
//   - Determinism: same seed ⇒ identical cut points across platforms.
//   - Encapsulation: a single RNG policy; no time-based sources hidden anywhere.
//   - Safety: no panics or logging.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand
//     across goroutines; give each worker its own seeded stream.
package crossover

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass a nil rng.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// ensureRNG returns rng unchanged when non-nil, otherwise the default
// deterministic stream. Operators call it once per invocation so a nil
// rng is a defined, reproducible configuration rather than a panic.
//
// Complexity: O(1).
func ensureRNG(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}

	return rngFromSeed(0)
}

// onePoint draws a single cut index uniformly from [1, n).
// Contract: n ≥ 2 (callers special-case smaller inputs first).
//
// Complexity: O(1).
func onePoint(n int, rng *rand.Rand) int {
	return 1 + rng.Intn(n-1)
}

// twoPoints draws two distinct indices uniformly from [0, n) without
// replacement and returns them sorted ascending.
// Contract: n ≥ 2 (callers special-case smaller inputs first).
//
// The second draw uses the classic shift trick: sample from [0, n-1)
// and bump values ≥ first, which keeps the pair uniform over all
// unordered distinct pairs with exactly two Intn calls.
//
// Complexity: O(1).
func twoPoints(n int, rng *rand.Rand) (int, int) {
	var (
		p1 = rng.Intn(n)
		p2 = rng.Intn(n - 1)
	)
	if p2 >= p1 {
		p2++
	}
	if p1 > p2 {
		p1, p2 = p2, p1
	}

	return p1, p2
}
