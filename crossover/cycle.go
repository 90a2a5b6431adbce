// Package crossover - cycle crossover (CX).
//
// CX partitions tour positions into the index-cycles induced by the
// correspondence "parent1's value at position i sits at position j in
// parent2" and sources each cycle wholesale from one parent. Because a
// cycle's element set is identical in both parents, no repair step is
// needed: validity holds by construction.
//
// Alternation rule (canonical here): cycles are discovered in increasing
// order of their lowest unvisited starting index and alternate strictly
// by discovery order; the first cycle keeps parent1's values in child1.
//
// Contracts:
//   - len(parent1) == len(parent2); parent2 is a permutation of
//     parent1's elements. A broken element set cannot hang the walk —
//     it surfaces as ErrElementSetMismatch.
//   - n == 0 is a defined no-op (two empty children).
//
// Complexity: O(n) time, O(n) extra space.
package crossover

import "math/rand"

// Cycle performs cycle crossover. The rng parameter exists for
// operator-family uniformity (see Operator); CX selects no cut points
// and derives no randomness from it, so Cycle is fully deterministic.
func Cycle[T comparable](parent1, parent2 []T, _ *rand.Rand) ([]T, []T, error) {
	if err := checkLengths(parent1, parent2); err != nil {
		return nil, nil, err
	}

	var (
		n      = len(parent1)
		child1 = make([]T, n)
		child2 = make([]T, n)
		filled = make([]bool, n)

		// position of each element value inside parent2
		where = make(map[T]int, n)

		start   int  // lowest unvisited index, next cycle's entry point
		cur     int  // walker within the current cycle
		ok      bool // lookup hit flag
		keep    bool // true ⇒ this cycle keeps parent1 in child1
		nCycles int  // cycles discovered so far, drives alternation
	)

	for cur = 0; cur < n; cur++ {
		where[parent2[cur]] = cur
	}
	if len(where) != n {
		// Duplicate values in parent2 break the position bijection.
		return nil, nil, ErrElementSetMismatch
	}

	for start = 0; start < n; start++ {
		if filled[start] {
			continue
		}

		keep = nCycles%2 == 0
		nCycles++

		// Walk the cycle: i → position of parent1[i] in parent2, until
		// the walk closes on start. Each step lands on an unvisited
		// position, so the loop executes at most n times overall.
		cur = start
		for !filled[cur] {
			if keep {
				child1[cur] = parent1[cur]
				child2[cur] = parent2[cur]
			} else {
				child1[cur] = parent2[cur]
				child2[cur] = parent1[cur]
			}
			filled[cur] = true

			cur, ok = where[parent1[cur]]
			if !ok {
				// parent1 holds a value absent from parent2.
				return nil, nil, ErrElementSetMismatch
			}
		}
	}

	if err := finalize(filled); err != nil {
		return nil, nil, err
	}

	return child1, child2, nil
}
