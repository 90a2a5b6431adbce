// SPDX-License-Identifier: MIT

// Package distmat loads and validates symmetric distance matrices for
// tour-cost evaluation in TSP-style searches.
//
// File format:
//
//	9                ← number of cities n
//	0 3 5 …          ← n rows of n whitespace-separated integers
//	3 0 2 …
//	…
//
// City names are generated in row order: city_1 … city_n. Rows beyond
// the declared n are ignored.
//
// Validation (all-or-nothing, before any lookup is possible):
//   - header is a non-negative integer      ⇒ else ErrBadHeader
//   - exactly n rows of n integer columns   ⇒ else ErrBadShape / ErrBadValue
//   - every off-diagonal entry is ≥ 0       ⇒ else ErrNegativeDistance
//   - d[i][j] == d[j][i] for all i ≠ j      ⇒ else ErrAsymmetry
//
// The resulting Matrix is immutable and safe for concurrent readers.
// Lookup is symmetric by construction and a city's distance to itself
// is 0; diagonal cells in the file are never consulted.
//
// ⚙️ Usage:
//
//	m, err := distmat.Load("input/cities.txt")
//	if err != nil { … }
//	d, err := m.Lookup("city_1", "city_4")
//
// This package is the only part of the module that touches the
// filesystem; the crossover operators never do.
package distmat
