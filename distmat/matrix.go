// SPDX-License-Identifier: MIT
// Package distmat: the validated, immutable distance matrix and its
// read-only accessors. Construction happens exclusively in load.go;
// every accessor here is side-effect free and safe for concurrent use.

package distmat

// Matrix is a validated, symmetric, non-negative distance matrix with
// generated city names. The zero value is empty; instances are built by
// Load/Parse and never mutated afterwards.
type Matrix struct {
	names []string       // city names in row order: city_1 … city_n
	index map[string]int // name → row index
	dist  []float64      // dense row-major costs, len n*n
	n     int            // matrix order
}

// Size returns the number of cities n.
func (m *Matrix) Size() int { return m.n }

// Cities returns the city names in matrix row order. The slice is a
// copy; callers may reorder it freely (e.g. as a starting tour).
func (m *Matrix) Cities() []string {
	return append([]string(nil), m.names...)
}

// Lookup returns the distance between two cities by name. It is
// symmetric by construction, and Lookup(x, x) is 0 for any known x —
// a tour never pays a self-arc. Unknown names yield ErrUnknownCity.
//
// Complexity: O(1).
func (m *Matrix) Lookup(a, b string) (float64, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, ErrUnknownCity
	}
	j, ok := m.index[b]
	if !ok {
		return 0, ErrUnknownCity
	}
	if i == j {
		return 0, nil
	}

	return m.dist[i*m.n+j], nil
}

// At returns the distance between two cities by row index, for callers
// that evaluate index-encoded tours. Same symmetry and zero-diagonal
// semantics as Lookup; out-of-range indices yield ErrOutOfRange.
//
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrOutOfRange
	}
	if i == j {
		return 0, nil
	}

	return m.dist[i*m.n+j], nil
}
