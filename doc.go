// Package gax provides deterministic building blocks for genetic-algorithm
// search over permutation-encoded tours, such as candidate routes for the
// Traveling Salesman Problem.
//
// 🚀 What is gax?
//
//	A small, pure-Go toolkit that brings together:
//		• Crossover operators: single-point (with repair), cycle (CX),
//		  order (OX1) and partially mapped (PMX) recombination
//		• A distance-matrix loader with symmetry and non-negativity
//		  validation, for fitness evaluation in a surrounding search
//
// ✨ Why choose gax?
//
//   - Deterministic – every operator threads an explicit *rand.Rand;
//     same seed ⇒ identical children, on every platform
//   - Safe by construction – children are always valid permutations;
//     precondition violations surface as sentinel errors, never panics
//   - Generic – elements are any comparable type: city names, indices, IDs
//   - Pure Go – no cgo, no hidden dependencies
//
// Everything is organized under two subpackages:
//
//	crossover/ — the operator family over []T permutations
//	distmat/   — symmetric distance-matrix loading, validation & lookup
//
// Quick sketch:
//
//	parents (1,2,3,4,5)×(5,3,1,2,4) ──PMX──▶ two children,
//	each a permutation of the same five elements.
//
// Dive into the package docs of crossover and distmat for contracts,
// complexity notes and runnable examples.
//
//	go get github.com/katalvlaran/gax
package gax
