// Copyright ©2026 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/curioloop/inlp/sparse"
)

// denseSym caches the symbolic analysis shared by the dense backends:
// the system order and the scatter buffer the triangle is expanded into.
// The buffer is reused across iterations since the sparsity pattern is
// assumed stable for the whole sequence of solves.
type denseSym struct {
	n int
	a *mat.Dense
}

func (d *denseSym) IsAnalyzed() bool { return d.a != nil }

func (d *denseSym) Analyze(a *sparse.Coord) error {
	r, c := a.Dims()
	if r != c {
		return fmt.Errorf("linsolver: system must be square, got %d×%d", r, c)
	}
	d.n = r
	d.a = mat.NewDense(r, r, nil)
	return nil
}

// scatter expands the one-triangle coordinate data into the full dense
// symmetric matrix, summing duplicates and mirroring off-diagonal entries.
func (d *denseSym) scatter(a *sparse.Coord) error {
	r, c := a.Dims()
	if r != d.n || c != d.n {
		return fmt.Errorf("linsolver: system order changed from %d to %d×%d after analysis", d.n, r, c)
	}
	d.a.Zero()
	a.Do(func(i, j int, v float64) {
		d.a.Set(i, j, d.a.At(i, j)+v)
		if i != j {
			d.a.Set(j, i, d.a.At(j, i)+v)
		}
	})
	return nil
}

// luSolver factorizes the assembled dense matrix with partially pivoted LU.
type luSolver struct {
	denseSym
	lu mat.LU
}

func (s *luSolver) FactorizeAndSolve(a *sparse.Coord, rhs []float64) ([]float64, error) {
	if !s.IsAnalyzed() {
		return nil, errors.New("linsolver: FactorizeAndSolve before Analyze")
	}
	if err := s.scatter(a); err != nil {
		return nil, err
	}
	if len(rhs) != s.n {
		return nil, fmt.Errorf("linsolver: rhs length %d, want %d", len(rhs), s.n)
	}
	s.lu.Factorize(s.a)
	x := mat.NewVecDense(s.n, nil)
	if err := s.lu.SolveVecTo(x, false, mat.NewVecDense(s.n, rhs)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	return x.RawVector().Data, nil
}

// qrSolver factorizes with Householder QR, trading speed for robustness
// on nearly rank-deficient systems.
type qrSolver struct {
	denseSym
	qr mat.QR
}

func (s *qrSolver) FactorizeAndSolve(a *sparse.Coord, rhs []float64) ([]float64, error) {
	if !s.IsAnalyzed() {
		return nil, errors.New("linsolver: FactorizeAndSolve before Analyze")
	}
	if err := s.scatter(a); err != nil {
		return nil, err
	}
	if len(rhs) != s.n {
		return nil, fmt.Errorf("linsolver: rhs length %d, want %d", len(rhs), s.n)
	}
	s.qr.Factorize(s.a)
	x := mat.NewVecDense(s.n, nil)
	if err := s.qr.SolveVecTo(x, false, mat.NewVecDense(s.n, rhs)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	return x.RawVector().Data, nil
}
