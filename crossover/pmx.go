// Package crossover - partially mapped crossover (PMX).
//
// PMX swaps a slice between the parents, then repairs the positions
// outside the slice: every value the swap duplicated is substituted via
// the position-wise mapping the slice itself defines, following chains
// (A→B→C) until reaching a value the slice never displaced. Inside the
// slice PMX transmits absolute positions; outside it transmits each
// parent's own values wherever they do not conflict.
//
// Contracts:
//   - len(parent1) == len(parent2), same element set.
//   - n < 2 ⇒ identity: fresh copies of the parents.
//   - Chain resolution is bounded by the slice length; on malformed
//     input (element sets differ) the guard trips with
//     ErrElementSetMismatch instead of looping forever.
//
// Complexity: O(n) expected; O(n·m) worst case for slice length m
// during chain resolution.
package crossover

import "math/rand"

// PMX performs partially mapped crossover with two distinct cut points
// drawn uniformly without replacement from [0, n). A nil rng selects
// the fixed-seed deterministic stream.
func PMX[T comparable](parent1, parent2 []T, rng *rand.Rand) ([]T, []T, error) {
	if err := checkLengths(parent1, parent2); err != nil {
		return nil, nil, err
	}
	var n = len(parent1)
	if n < 2 {
		c1, c2 := clonePair(parent1, parent2)

		return c1, c2, nil
	}

	p1, p2 := twoPoints(n, ensureRNG(rng))

	return PMXAt(parent1, parent2, p1, p2)
}

// PMXAt is the deterministic core of PMX: the slice [point1, point2) is
// supplied by the caller instead of drawn from an rng.
//
// Contract: 0 ≤ point1 < point2 ≤ n (ErrCutOutOfRange otherwise).
func PMXAt[T comparable](parent1, parent2 []T, point1, point2 int) ([]T, []T, error) {
	if err := checkLengths(parent1, parent2); err != nil {
		return nil, nil, err
	}
	var n = len(parent1)
	if point1 < 0 || point2 > n || point1 >= point2 {
		return nil, nil, ErrCutOutOfRange
	}

	var (
		child1 = append([]T(nil), parent1...)
		child2 = append([]T(nil), parent2...)

		// Position-wise substitution maps derived from the swapped slice.
		// into1 repairs child1 (which received parent2's slice values):
		// parent2-slice element → parent1-slice element at the same
		// position. into2 is the inverse, repairing child2.
		into1 = make(map[T]T, point2-point1)
		into2 = make(map[T]T, point2-point1)

		i int
	)

	for i = point1; i < point2; i++ {
		child1[i], child2[i] = parent2[i], parent1[i]
		into1[parent2[i]] = parent1[i]
		into2[parent1[i]] = parent2[i]
	}

	if err := resolveOutside(child1, into1, point1, point2); err != nil {
		return nil, nil, err
	}
	if err := resolveOutside(child2, into2, point1, point2); err != nil {
		return nil, nil, err
	}

	return child1, child2, nil
}

// resolveOutside rewrites every position outside [point1, point2) whose
// value the slice swap duplicated, chasing substitution chains until the
// value leaves the mapping's domain. For a valid parent pair a chain
// cannot revisit a value, so len(sub) steps is a strict upper bound; the
// guard converts a cyclic chain (possible only under a broken
// element-set precondition) into ErrElementSetMismatch.
func resolveOutside[T comparable](child []T, sub map[T]T, point1, point2 int) error {
	var (
		n     = len(child)
		i     int
		v     T
		next  T
		ok    bool
		steps int
	)
	for i = 0; i < n; i++ {
		if i >= point1 && i < point2 {
			continue
		}
		v = child[i]
		for steps = 0; ; steps++ {
			next, ok = sub[v]
			if !ok {
				break
			}
			if steps > len(sub) {
				return ErrElementSetMismatch
			}
			v = next
		}
		child[i] = v
	}

	return nil
}
