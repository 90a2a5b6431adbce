// SPDX-License-Identifier: MIT
// Package distmat: file loading, parsing and validation.
//
// Validation is staged, cheapest first, and all-or-nothing: a Matrix is
// only returned once shape, value, negativity and symmetry checks have
// all passed. Only sentinel errors from errors.go describe data
// problems; operating-system errors are wrapped with %w at the Load
// boundary.

package distmat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads a distance-matrix file from path and parses it. The file
// is the only I/O this module performs.
func Load(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("distmat: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("distmat: parse %s: %w", path, err)
	}

	return m, nil
}

// Parse reads the header and n matrix rows from r, validates them, and
// returns the immutable Matrix. Lines beyond the declared n rows are
// ignored, matching the historical format.
//
// Complexity: O(n²) time and space.
func Parse(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	// Rows of large instances can exceed the default 64 KiB line limit.
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	// Stage 1: header — a single non-negative integer city count.
	if !sc.Scan() {
		return nil, ErrBadHeader
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || n < 0 {
		return nil, ErrBadHeader
	}

	// Stage 2: shape and values — exactly n rows of n integer columns.
	var (
		dist = make([]float64, n*n)
		row  int
		col  int
		v    int
	)
	for row = 0; row < n; row++ {
		if !sc.Scan() {
			return nil, ErrBadShape
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != n {
			return nil, ErrBadShape
		}
		for col = 0; col < n; col++ {
			v, err = strconv.Atoi(fields[col])
			if err != nil {
				return nil, ErrBadValue
			}
			dist[row*n+col] = float64(v)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("distmat: read: %w", err)
	}

	// Stage 3: negativity — off-diagonal entries must be ≥ 0. Diagonal
	// cells are never consulted, so their values are not interpreted.
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j && dist[i*n+j] < 0 {
				return nil, ErrNegativeDistance
			}
		}
	}

	// Stage 4: symmetry — exact equality; costs are integers by format.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if dist[i*n+j] != dist[j*n+i] {
				return nil, ErrAsymmetry
			}
		}
	}

	// Assemble the immutable result: generated names + inverted index.
	var (
		names = make([]string, n)
		index = make(map[string]int, n)
	)
	for i = 0; i < n; i++ {
		names[i] = "city_" + strconv.Itoa(i+1)
		index[names[i]] = i
	}

	return &Matrix{names: names, index: index, dist: dist, n: n}, nil
}
