// Package crossover - validation utilities shared by the operators.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) worst case; one map allocation where multiset equality is checked.
package crossover

// ValidatePair verifies the parent-pair precondition shared by all
// operators: equal length and identical element multisets. Operators
// themselves check only length (O(1)); callers that cannot trust their
// population invariants run this once per pair before recombining.
//
// Returns ErrLengthMismatch or ErrElementSetMismatch; nil otherwise.
//
// Complexity: O(n) time, O(n) extra space.
func ValidatePair[T comparable](parent1, parent2 []T) error {
	if len(parent1) != len(parent2) {
		return ErrLengthMismatch
	}

	// Multiset equality via signed counting: +1 per parent1 occurrence,
	// -1 per parent2 occurrence; any non-zero residue breaks the bijection.
	counts := make(map[T]int, len(parent1))

	var i int
	for i = range parent1 {
		counts[parent1[i]]++
	}
	for i = range parent2 {
		counts[parent2[i]]--
	}
	for _, c := range counts {
		if c != 0 {
			return ErrElementSetMismatch
		}
	}

	return nil
}

// checkLengths is the cheap precondition every operator runs first.
//
// Complexity: O(1).
func checkLengths[T comparable](parent1, parent2 []T) error {
	if len(parent1) != len(parent2) {
		return ErrLengthMismatch
	}

	return nil
}

// clonePair returns fresh copies of both parents. Used by the n < 2
// degenerate paths so callers always own their children, even when
// crossover degrades to identity. Copies are non-nil even for empty
// parents, so identity outputs compare equal to their inputs.
//
// Complexity: O(n) time and space.
func clonePair[T comparable](parent1, parent2 []T) ([]T, []T) {
	var (
		c1 = make([]T, len(parent1))
		c2 = make([]T, len(parent2))
	)
	copy(c1, parent1)
	copy(c2, parent2)

	return c1, c2
}

// finalize confirms that a placeholder-built child has every slot
// written before it is exposed as a result. An unfilled slot can only
// arise from a broken element-set precondition, so that sentinel is
// returned rather than a silently malformed permutation.
//
// Complexity: O(n).
func finalize(filled []bool) error {
	var i int
	for i = range filled {
		if !filled[i] {
			return ErrElementSetMismatch
		}
	}

	return nil
}
