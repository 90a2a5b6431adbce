// Package crossover - single-point recombination with order-preserving repair.
//
// SinglePoint cuts parent1 once and keeps its prefix verbatim; the tail
// is then refilled from parent2 in parent2's original relative order,
// skipping elements the prefix already placed. The symmetric child swaps
// the parents' roles. The repair fill is what makes this a permutation
// operator: a literal one-point splice of two tours would duplicate and
// drop cities.
//
// Contracts:
//   - len(parent1) == len(parent2), same element set.
//   - n < 2 ⇒ identity: fresh copies of the parents (crossover is
//     undefined below two elements, not an error).
//
// Complexity: O(n) time, O(n) extra space per child.
package crossover

import "math/rand"

// SinglePoint performs single-point crossover with a cut drawn uniformly
// from [1, n). A nil rng selects the fixed-seed deterministic stream.
func SinglePoint[T comparable](parent1, parent2 []T, rng *rand.Rand) ([]T, []T, error) {
	if err := checkLengths(parent1, parent2); err != nil {
		return nil, nil, err
	}
	var n = len(parent1)
	if n < 2 {
		c1, c2 := clonePair(parent1, parent2)

		return c1, c2, nil
	}

	return SinglePointAt(parent1, parent2, onePoint(n, ensureRNG(rng)))
}

// SinglePointAt is the deterministic core of SinglePoint: the cut point
// is supplied by the caller instead of drawn from an rng.
//
// Contract: 1 ≤ point < n (ErrCutOutOfRange otherwise; n ≥ 2 follows).
func SinglePointAt[T comparable](parent1, parent2 []T, point int) ([]T, []T, error) {
	if err := checkLengths(parent1, parent2); err != nil {
		return nil, nil, err
	}
	var n = len(parent1)
	if point < 1 || point >= n {
		return nil, nil, ErrCutOutOfRange
	}

	var (
		child1 = fillByOrder(parent1, parent2, point)
		child2 = fillByOrder(parent2, parent1, point)
	)

	return child1, child2, nil
}

// fillByOrder builds one child: head's prefix [0, point) verbatim, then
// every tail element in tail's original order that the prefix does not
// already contain. Membership is tracked in a map so the fill stays O(n)
// for arbitrary comparable elements.
func fillByOrder[T comparable](head, tail []T, point int) []T {
	var (
		n     = len(head)
		child = make([]T, 0, n)
		used  = make(map[T]struct{}, point)
		i     int
	)
	for i = 0; i < point; i++ {
		child = append(child, head[i])
		used[head[i]] = struct{}{}
	}
	for i = 0; i < n; i++ {
		if _, ok := used[tail[i]]; ok {
			continue
		}
		child = append(child, tail[i])
	}

	return child
}
