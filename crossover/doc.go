// Package crossover implements recombination operators for genetic
// algorithms over permutations (e.g. TSP tours): single-point with
// order-preserving repair, cycle crossover (CX), order crossover (OX1)
// and partially mapped crossover (PMX).
//
// Every operator takes two parent permutations of equal length over the
// same element set and returns two child permutations of that set. The
// hard invariant — each element appears exactly once in each child — is
// preserved by construction (CX) or by an explicit repair/fill step
// (single-point, OX1, PMX).
//
// ✨ Key properties:
//   - Pure functions: parents are never mutated; children are fresh
//     slices; no state survives a call. Safe to invoke concurrently on
//     independent parent pairs without synchronization.
//   - Deterministic: randomness is confined to cut-point selection and
//     threaded via an explicit *rand.Rand. A nil rng falls back to a
//     fixed-seed stream. Same rng state ⇒ identical children.
//   - Generic: elements are any comparable type (city names, indices).
//   - Strict sentinels: ErrLengthMismatch, ErrElementSetMismatch and
//     ErrCutOutOfRange; no panics on user input, no logging.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gax/crossover"
//
//	rng := rand.New(rand.NewSource(42))
//	c1, c2, err := crossover.Order(parent1, parent2, rng)
//
// Cut points can also be fixed explicitly for reproducible pipelines:
//
//	c1, c2, err := crossover.OrderAt(parent1, parent2, 2, 5)
//
// Complexity: O(n) per call for single-point, CX and OX1; PMX is O(n)
// expected and O(n²) worst case during chain resolution.
package crossover
