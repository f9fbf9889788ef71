// Copyright ©2026 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparse

import "testing"

func TestBlockAssembly(t *testing.T) {

	// Assemble the 3×3 saddle structure
	//
	//	⎡ H  -𝐀ᵀ ⎤   H = ⎡ 2 0 ⎤  𝐀 = [ 1 1 ]
	//	⎣ 𝐀   0  ⎦       ⎣ 0 2 ⎦
	h := New(2, 2)
	h.Append(0, 0, 2)
	h.Append(1, 1, 2)

	a := New(1, 2)
	a.Append(0, 0, 1)
	a.Append(0, 1, 1)

	m := NewBuilder(3, 3).
		Add(0, 0, h, 1).
		AddT(0, 2, a, -1).
		Add(2, 0, a, 1).
		Build()

	x := []float64{1, 2, 3}
	y := make([]float64, 3)
	m.MulVec(y, x)
	// rows: 2·1 - 3, 2·2 - 3, 1 + 2
	if !vecEqual(y, []float64{-1, 1, 3}, 0) {
		t.Fatal("TestBlockAssembly: bad assembled product")
	}
}

func TestBlockDiagonals(t *testing.T) {

	// ⎡ -D(𝛍)  D(𝒔) ⎤ with 𝛍 = (1,2), 𝒔 = (3,4), plus 2·I in the right block
	m := NewBuilder(2, 4).
		AddDiag(0, 0, []float64{1, 2}, -1).
		AddDiag(0, 2, []float64{3, 4}, 1).
		AddIdentity(0, 2, 2, 2).
		Build()

	x := []float64{1, 1, 1, 1}
	y := make([]float64, 2)
	m.MulVec(y, x)
	// rows: -1 + 3 + 2, -2 + 4 + 2
	if !vecEqual(y, []float64{4, 4}, 0) {
		t.Fatal("TestBlockDiagonals: bad diagonal placement")
	}
}

func TestBuilderOverlap(t *testing.T) {

	// Overlapping placements must sum, matching coordinate semantics.
	d := FromDiag([]float64{1, 1})
	m := NewBuilder(2, 2).
		Add(0, 0, d, 1).
		AddDiag(0, 0, []float64{2, 3}, 1).
		Build()

	y := make([]float64, 2)
	m.MulVec(y, []float64{1, 1})
	if !vecEqual(y, []float64{3, 4}, 0) {
		t.Fatal("TestBuilderOverlap: overlapping blocks must accumulate")
	}
}
