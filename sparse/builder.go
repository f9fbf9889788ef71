// Copyright ©2026 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparse

// Builder assembles a matrix from sub-blocks placed at row/column offsets.
//
// Each Add* method scatters one logical block into the overall coordinate
// layout, so a structured matrix like
//
//	⎡ H  -Aᵀ ⎤
//	⎣ A   0  ⎦
//
// is expressed as a sequence of placements against a fixed overall shape.
// Omitted blocks stay structurally zero. The accumulated triples are
// independent of any particular sparse representation until Build.
type Builder struct {
	m *Coord
}

// NewBuilder returns a builder for an r×c matrix.
func NewBuilder(r, c int) *Builder {
	return &Builder{m: New(r, c)}
}

// Add places scale·b with its (0,0) entry at (rowOff, colOff).
func (b *Builder) Add(rowOff, colOff int, blk *Coord, scale float64) *Builder {
	blk.Do(func(i, j int, v float64) {
		b.m.Append(rowOff+i, colOff+j, scale*v)
	})
	return b
}

// AddT places scale·blkᵀ with its (0,0) entry at (rowOff, colOff).
func (b *Builder) AddT(rowOff, colOff int, blk *Coord, scale float64) *Builder {
	blk.Do(func(i, j int, v float64) {
		b.m.Append(rowOff+j, colOff+i, scale*v)
	})
	return b
}

// AddDiag places scale·diag(d) with its (0,0) entry at (rowOff, colOff).
func (b *Builder) AddDiag(rowOff, colOff int, d []float64, scale float64) *Builder {
	for i, v := range d {
		b.m.Append(rowOff+i, colOff+i, scale*v)
	}
	return b
}

// AddIdentity places scale·I of order n with its (0,0) entry at (rowOff, colOff).
func (b *Builder) AddIdentity(rowOff, colOff, n int, scale float64) *Builder {
	for i := 0; i < n; i++ {
		b.m.Append(rowOff+i, colOff+i, scale)
	}
	return b
}

// Build returns the assembled matrix. The builder must not be reused.
func (b *Builder) Build() *Coord {
	m := b.m
	b.m = nil
	return m
}
