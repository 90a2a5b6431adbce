// Package crossover_test provides lightweight testing helpers shared
// across *_test.go files in this package. The helpers are intentionally
// minimal and avoid duplicating functionality that already lives in
// focused test files.
package crossover_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed used wherever an rng is needed.
	seedDet = int64(42)

	// propSeeds is how many independent rng streams each property-style
	// test sweeps per permutation length.
	propSeeds = 8
)

// propLens is the set of permutation lengths used by property-style tests.
// Chosen to cover tiny, odd, even and "real instance" shapes.
var propLens = []int{2, 3, 5, 9, 16, 33}

// newRNG returns a fresh deterministic stream for one test case.
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// identityPerm returns (1, 2, …, n) as a fresh slice.
func identityPerm(n int) []int {
	var (
		p = make([]int, n)
		i int
	)
	for i = 0; i < n; i++ {
		p[i] = i + 1
	}

	return p
}

// shuffledPerm returns a permutation of (1, …, n) shuffled by rng.
func shuffledPerm(n int, rng *rand.Rand) []int {
	p := identityPerm(n)
	rng.Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })

	return p
}

// requireSameElements asserts that child is a permutation of want's
// elements: same length, no duplicates, no omissions.
func requireSameElements[T comparable](t *testing.T, want, child []T) {
	t.Helper()
	require.Len(t, child, len(want), "child length differs from parent length")

	counts := make(map[T]int, len(want))
	var i int
	for i = range want {
		counts[want[i]]++
	}
	for i = range child {
		counts[child[i]]--
	}
	for v, c := range counts {
		require.Zerof(t, c, "element %v count off by %d in child %v", v, c, child)
	}
}
