// Copyright ©2026 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linsolver provides direct solvers for the sparse symmetric
// indefinite systems arising from augmented KKT matrices.
//
// Matrices are given in the one-triangle convention: each off-diagonal
// entry of the symmetric matrix appears exactly once, in either triangle,
// and is mirrored by the backend. Diagonal entries appear once.
package linsolver

import (
	"errors"
	"fmt"

	"github.com/curioloop/inlp/sparse"
)

// ErrSingular reports a numeric factorization failure on a singular or
// severely ill-conditioned system.
var ErrSingular = errors.New("linsolver: singular or ill-conditioned system")

// Solver is a direct solver for symmetric indefinite systems.
//
// Analyze performs the one-time symbolic preprocessing of the sparsity
// structure and is expected to be called once per sequence of solves:
// the structure must stay identical across every later FactorizeAndSolve.
// Changing the matrix structure after Analyze is unsupported.
//
// A Solver instance holds mutable cached state and must not be shared
// between concurrent solves.
type Solver interface {
	// IsAnalyzed reports whether symbolic analysis has been performed.
	IsAnalyzed() bool
	// Analyze preprocesses the structure of a symmetric matrix given by
	// one triangle.
	Analyze(a *sparse.Coord) error
	// FactorizeAndSolve factorizes a and solves a·x = rhs, returning x.
	// It returns an error wrapping ErrSingular when the factorization
	// breaks down; such failures are not retried here.
	FactorizeAndSolve(a *sparse.Coord, rhs []float64) ([]float64, error)
}

// New returns the solver backend registered under name.
// The empty name and "default" select the LU backend.
func New(name string) (Solver, error) {
	switch name {
	case "", "default", "lu":
		return &luSolver{}, nil
	case "qr":
		return &qrSolver{}, nil
	}
	return nil, fmt.Errorf("linsolver: unknown backend %q", name)
}
