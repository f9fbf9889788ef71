// Copyright ©2026 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparse

import (
	"math"
	"testing"
)

func vecEqual(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestMulVec(t *testing.T) {

	// ⎡ 2 1 ⎤   with the (0,1) entry split into two duplicates
	// ⎣ 0 3 ⎦
	m := New(2, 2)
	m.Append(0, 0, 2)
	m.Append(0, 1, 0.25)
	m.Append(0, 1, 0.75)
	m.Append(1, 1, 3)

	x := []float64{1, 2}
	y := make([]float64, 2)

	m.MulVec(y, x)
	if !vecEqual(y, []float64{4, 6}, 0) {
		t.Fatal("TestMulVec: bad product")
	}

	yt := make([]float64, 2)
	m.MulVecT(yt, x)
	if !vecEqual(yt, []float64{2, 7}, 0) {
		t.Fatal("TestMulVec: bad transposed product")
	}

	if m.NNZ() != 4 {
		t.Fatal("TestMulVec: duplicates must be kept")
	}
}

func TestRectangular(t *testing.T) {

	// 1×3 row [1 -2 3]
	m := New(1, 3)
	m.Append(0, 0, 1)
	m.Append(0, 1, -2)
	m.Append(0, 2, 3)

	y := make([]float64, 1)
	m.MulVec(y, []float64{1, 1, 1})
	if y[0] != 2 {
		t.Fatal("TestRectangular: bad product")
	}

	yt := make([]float64, 3)
	m.MulVecT(yt, []float64{2})
	if !vecEqual(yt, []float64{2, -4, 6}, 0) {
		t.Fatal("TestRectangular: bad transposed product")
	}
}

func TestEmpty(t *testing.T) {

	m := New(0, 3)
	y := make([]float64, 3)
	m.MulVecT(y, []float64{})
	if !vecEqual(y, []float64{0, 0, 0}, 0) {
		t.Fatal("TestEmpty: transposed product of empty matrix must be zero")
	}
}

func TestSymmetric(t *testing.T) {

	// upper triangle of ⎡ 1 2 ⎤
	//                   ⎣ 2 4 ⎦
	m := New(2, 2)
	m.Append(0, 0, 1)
	m.Append(0, 1, 2)
	m.Append(1, 1, 4)

	s := m.Symmetric()
	x := []float64{1, 1}
	y := make([]float64, 2)
	s.MulVec(y, x)
	if !vecEqual(y, []float64{3, 6}, 0) {
		t.Fatal("TestSymmetric: bad mirrored product")
	}
	if m.NNZ() != 3 {
		t.Fatal("TestSymmetric: receiver must not change")
	}
}

func TestDiagIdentity(t *testing.T) {

	d := FromDiag([]float64{2, 3})
	y := make([]float64, 2)
	d.MulVec(y, []float64{1, 1})
	if !vecEqual(y, []float64{2, 3}, 0) {
		t.Fatal("TestDiagIdentity: bad diagonal product")
	}

	i3 := Identity(3)
	x := []float64{4, 5, 6}
	y3 := make([]float64, 3)
	i3.MulVec(y3, x)
	if !vecEqual(y3, x, 0) {
		t.Fatal("TestDiagIdentity: identity must preserve the vector")
	}
}

func TestAppendRange(t *testing.T) {

	defer func() {
		if recover() == nil {
			t.Fatal("TestAppendRange: out-of-range append must panic")
		}
	}()
	m := New(2, 2)
	m.Append(2, 0, 1)
}
