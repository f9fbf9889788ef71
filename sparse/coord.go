// Copyright ©2026 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sparse provides coordinate-format sparse matrices and a block
// assembler for composing structured matrices from sub-blocks.
package sparse

import "fmt"

// Coord is a sparse matrix in coordinate (triplet) form.
//
// Entries are stored as parallel (row, col, value) slices in insertion order.
// Duplicate coordinates are allowed and treated as summed: every operation
// accumulates over all entries, so appending (i,j,a) and (i,j,b) is
// equivalent to a single entry (i,j,a+b).
type Coord struct {
	r, c int
	rows []int
	cols []int
	vals []float64
}

// New returns an empty r×c coordinate matrix.
func New(r, c int) *Coord {
	if r < 0 || c < 0 {
		panic("sparse: negative dimension")
	}
	return &Coord{r: r, c: c}
}

// FromDiag returns the square diagonal matrix with diagonal v.
func FromDiag(v []float64) *Coord {
	m := New(len(v), len(v))
	for i, d := range v {
		m.Append(i, i, d)
	}
	return m
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Coord {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.Append(i, i, 1)
	}
	return m
}

// Dims returns the matrix shape.
func (m *Coord) Dims() (r, c int) { return m.r, m.c }

// NNZ returns the number of stored entries, duplicates included.
func (m *Coord) NNZ() int { return len(m.vals) }

// Append adds the entry (i,j,v). Zero values are kept so that the
// sparsity pattern stays stable across numeric updates.
func (m *Coord) Append(i, j int, v float64) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		panic(fmt.Sprintf("sparse: entry (%d,%d) out of range %d×%d", i, j, m.r, m.c))
	}
	m.rows = append(m.rows, i)
	m.cols = append(m.cols, j)
	m.vals = append(m.vals, v)
}

// Do calls fn for every stored entry in insertion order.
func (m *Coord) Do(fn func(i, j int, v float64)) {
	for k, v := range m.vals {
		fn(m.rows[k], m.cols[k], v)
	}
}

// MulVec computes y = A·x, overwriting y. It panics when the dimensions
// of x or y do not match the matrix shape.
func (m *Coord) MulVec(y, x []float64) {
	if len(x) != m.c || len(y) != m.r {
		panic("sparse: dimension mismatch in MulVec")
	}
	for i := range y {
		y[i] = 0
	}
	for k, v := range m.vals {
		y[m.rows[k]] += v * x[m.cols[k]]
	}
}

// MulVecT computes y = Aᵀ·x, overwriting y.
func (m *Coord) MulVecT(y, x []float64) {
	if len(x) != m.r || len(y) != m.c {
		panic("sparse: dimension mismatch in MulVecT")
	}
	for i := range y {
		y[i] = 0
	}
	for k, v := range m.vals {
		y[m.cols[k]] += v * x[m.rows[k]]
	}
}

// Symmetric expands a symmetric matrix stored by one triangle into a full
// matrix: every off-diagonal entry (i,j,v) is mirrored as (j,i,v), diagonal
// entries are kept once. The receiver is not modified.
func (m *Coord) Symmetric() *Coord {
	if m.r != m.c {
		panic("sparse: Symmetric of non-square matrix")
	}
	s := New(m.r, m.c)
	for k, v := range m.vals {
		i, j := m.rows[k], m.cols[k]
		s.Append(i, j, v)
		if i != j {
			s.Append(j, i, v)
		}
	}
	return s
}
