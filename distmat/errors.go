// SPDX-License-Identifier: MIT
// Package distmat: sentinel error set.
// This file defines ONLY package-level sentinel errors. Parse/Load MUST
// return these sentinels for format and data violations and tests MUST
// check them via errors.Is. I/O failures from the operating system are
// wrapped with %w at the Load boundary and matched the same way.

package distmat

import "errors"

var (
	// ErrBadHeader is returned when the first line is missing or is not a
	// non-negative integer city count.
	ErrBadHeader = errors.New("distmat: invalid city-count header")

	// ErrBadShape is returned when the file does not contain exactly n
	// rows of n columns (short file, ragged row, trailing columns).
	ErrBadShape = errors.New("distmat: matrix shape mismatch")

	// ErrBadValue is returned when a matrix cell is not an integer.
	ErrBadValue = errors.New("distmat: non-integer distance value")

	// ErrNegativeDistance is returned when an off-diagonal entry is < 0.
	ErrNegativeDistance = errors.New("distmat: negative distance")

	// ErrAsymmetry is returned when d[i][j] != d[j][i] for some i ≠ j.
	ErrAsymmetry = errors.New("distmat: matrix is not symmetric")

	// ErrUnknownCity is returned by Lookup for a name the matrix does not
	// contain.
	ErrUnknownCity = errors.New("distmat: unknown city name")

	// ErrOutOfRange is returned by At for an index outside [0, n).
	ErrOutOfRange = errors.New("distmat: index out of range")
)
