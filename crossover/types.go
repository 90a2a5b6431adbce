// Package crossover - sentinel error set and shared operator type.
// This file defines ONLY package-level sentinels and the Operator
// function type. All operators MUST return these sentinels and tests
// MUST check them via errors.Is. No operator panics on user input.
package crossover

import (
	"errors"
	"math/rand"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "crossover: ..." for consistency and to
// allow easy grepping across logs. Do not %w-wrap these sentinels when
// returning directly; callers match them with errors.Is.

var (
	// ErrLengthMismatch is returned when the two parents differ in length.
	// Checked by every operator before any other work.
	ErrLengthMismatch = errors.New("crossover: parent length mismatch")

	// ErrElementSetMismatch is returned when parent2 is not a permutation
	// of parent1's elements. ValidatePair detects it eagerly; PMX's chain
	// guard and the placeholder finalization of CX/OX1 surface it as the
	// hardened failure mode instead of hanging or emitting a broken child.
	ErrElementSetMismatch = errors.New("crossover: parents are not permutations of the same element set")

	// ErrCutOutOfRange is returned by the deterministic ...At forms when an
	// explicit cut point lies outside its documented domain.
	ErrCutOutOfRange = errors.New("crossover: cut point out of range")
)

// Operator is the common shape of all four crossover operators: two
// parent permutations plus a randomness source in, two children out.
// A nil rng selects a fixed-seed deterministic stream.
//
// All implementations in this package satisfy Operator, so callers can
// route by name or table-dispatch without adapters:
//
//	var op crossover.Operator[string] = crossover.PMX[string]
type Operator[T comparable] func(parent1, parent2 []T, rng *rand.Rand) ([]T, []T, error)
