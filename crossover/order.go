// Package crossover - order crossover (OX1).
//
// OX1 preserves a contiguous slice of one parent at its original
// positions and fills the remaining slots with the other parent's
// elements in their original relative (cyclic) order. Both the donor
// scan and the writes start at the slice's right edge and wrap
// circularly past the end of the tour, so recombining a permutation
// with itself reproduces it exactly. The relative-order fill is what
// OX1 is prized for in TSP work: it keeps long adjacency runs from
// both parents.
//
// Contracts:
//   - len(parent1) == len(parent2), same element set.
//   - n < 2 ⇒ identity: fresh copies of the parents.
//   - point1 == 0 or point2 == n degenerate to a linear fill; the
//     modulo arithmetic covers them with no special case.
//
// Complexity: O(n) time, O(n) extra space per child.
package crossover

import "math/rand"

// Order performs OX1 with two distinct cut points drawn uniformly
// without replacement from [0, n). A nil rng selects the fixed-seed
// deterministic stream.
func Order[T comparable](parent1, parent2 []T, rng *rand.Rand) ([]T, []T, error) {
	if err := checkLengths(parent1, parent2); err != nil {
		return nil, nil, err
	}
	var n = len(parent1)
	if n < 2 {
		c1, c2 := clonePair(parent1, parent2)

		return c1, c2, nil
	}

	p1, p2 := twoPoints(n, ensureRNG(rng))

	return OrderAt(parent1, parent2, p1, p2)
}

// OrderAt is the deterministic core of Order: the slice [point1, point2)
// is supplied by the caller instead of drawn from an rng.
//
// Contract: 0 ≤ point1 < point2 ≤ n (ErrCutOutOfRange otherwise).
func OrderAt[T comparable](parent1, parent2 []T, point1, point2 int) ([]T, []T, error) {
	if err := checkLengths(parent1, parent2); err != nil {
		return nil, nil, err
	}
	var n = len(parent1)
	if point1 < 0 || point2 > n || point1 >= point2 {
		return nil, nil, ErrCutOutOfRange
	}

	child1, err := sliceAndWrap(parent1, parent2, point1, point2)
	if err != nil {
		return nil, nil, err
	}
	child2, err := sliceAndWrap(parent2, parent1, point1, point2)
	if err != nil {
		return nil, nil, err
	}

	return child1, child2, nil
}

// sliceAndWrap builds one OX1 child: keeper's slice [point1, point2)
// verbatim, remaining slots filled from donor in donor cyclic order
// starting at point2 mod n, writing from point2 mod n onward and
// wrapping. The child is assembled in a placeholder buffer and
// finalized only once every slot is confirmed written.
func sliceAndWrap[T comparable](keeper, donor []T, point1, point2 int) ([]T, error) {
	var (
		n      = len(keeper)
		child  = make([]T, n)
		filled = make([]bool, n)
		inCut  = make(map[T]struct{}, point2-point1)

		i    int // donor scan offset from point2, wraps past n
		g    T   // donor element under consideration
		pos  int // next write position in the child, advances circularly
		free int // unwritten slots remaining, guards the wrap walk
	)

	for i = point1; i < point2; i++ {
		child[i] = keeper[i]
		filled[i] = true
		inCut[keeper[i]] = struct{}{}
	}
	free = n - (point2 - point1)

	pos = point2 % n
	for i = 0; i < n; i++ {
		g = donor[(point2+i)%n]
		if _, ok := inCut[g]; ok {
			continue
		}
		if free == 0 {
			// More donor elements than open slots: the parents cannot
			// share one element set.
			return nil, ErrElementSetMismatch
		}
		// Skip slots the copied slice already occupies. At most the
		// slice length of consecutive skips, so the walk stays O(n).
		for filled[pos] {
			pos = (pos + 1) % n
		}
		child[pos] = g
		filled[pos] = true
		free--
		pos = (pos + 1) % n
	}

	if err := finalize(filled); err != nil {
		return nil, err
	}

	return child, nil
}
