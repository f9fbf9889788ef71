// Copyright ©2026 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inlp

import (
	"errors"
	"fmt"

	"github.com/curioloop/inlp/sparse"
)

// Point holds the objective and constraint data evaluated at one x.
//
// Hessian matrices use upper-triangle storage: only entries (i,j) with
// i ≤ j are populated, the solver mirrors the strict triangle itself.
type Point struct {
	Phi  float64       // objective value 𝛗(𝐱)
	Gphi []float64     // objective gradient 𝛁𝛗(𝐱), length n
	Hphi *sparse.Coord // objective Hessian 𝛁²𝛗(𝐱), n×n upper triangle
	C    []float64     // nonlinear constraint value 𝐜(𝐱), length m2
	J    *sparse.Coord // constraint Jacobian 𝛁𝐜(𝐱), m2×n
}

// Evaluation recomputes the objective and constraint data at x.
// It is invoked on every residual evaluation; results must reflect the
// given x and are never cached across state updates.
type Evaluation func(x []float64) Point

// HessianCombiner recomputes the weighted sum ∑ wᵢ·𝛁²cᵢ(𝐱) of the
// per-constraint Hessians at the most recently evaluated point,
// returned as an n×n upper triangle. The solver calls it with w = -𝛎.
type HessianCombiner func(w []float64) *sparse.Coord

// Problem specifies a nonlinear program with linear equality constraints,
// nonlinear equality constraints and box bounds:
//
//	minimize 𝛗(𝐱) subject to
//	  - 𝐀𝐱 = 𝐛
//	  - 𝐜(𝐱) = 0
//	  - 𝒍 ≤ 𝐱 ≤ 𝒖
type Problem struct {
	N  int // number of primal variables
	M1 int // number of linear equality constraints
	M2 int // number of nonlinear equality constraints

	A *sparse.Coord // linear equality matrix, M1×N (nil allowed when M1 = 0)
	B []float64     // linear equality right-hand side, length M1

	Lower, Upper []float64 // box bounds, elementwise Lower ≤ Upper required

	Eval            Evaluation      // objective/constraint evaluation
	CombineHessians HessianCombiner // weighted constraint Hessians (required when M2 > 0)

	// Optional warm start. Nil slices select the cold-start defaults:
	// midpoint primal, zero equality duals, EpsCold bound multipliers.
	X0, Lam0, Nu0, Mu0, Pi0 []float64
}

func (p *Problem) validate() error {
	switch {
	case p.N <= 0:
		return errors.New("inlp: problem dimension must be greater than 0")
	case p.M1 < 0 || p.M2 < 0:
		return errors.New("inlp: negative constraint count")
	case p.Eval == nil:
		return errors.New("inlp: evaluation function is required")
	case p.M2 > 0 && p.CombineHessians == nil:
		return errors.New("inlp: hessian combiner is required with nonlinear constraints")
	case len(p.Lower) != p.N || len(p.Upper) != p.N:
		return errors.New("inlp: bound size must equal to n")
	case len(p.B) != p.M1:
		return errors.New("inlp: rhs size must equal to m1")
	}
	if p.M1 > 0 {
		if p.A == nil {
			return errors.New("inlp: linear equality matrix is required with m1 > 0")
		}
		if r, c := p.A.Dims(); r != p.M1 || c != p.N {
			return fmt.Errorf("inlp: linear equality matrix is %d×%d, want %d×%d", r, c, p.M1, p.N)
		}
	}
	for _, ws := range []struct {
		v    []float64
		n    int
		name string
	}{
		{p.X0, p.N, "x0"},
		{p.Lam0, p.M1, "lam0"},
		{p.Nu0, p.M2, "nu0"},
		{p.Mu0, p.N, "mu0"},
		{p.Pi0, p.N, "pi0"},
	} {
		if ws.v != nil && len(ws.v) != ws.n {
			return fmt.Errorf("inlp: warm start %s has length %d, want %d", ws.name, len(ws.v), ws.n)
		}
	}
	for i := range p.Lower {
		if p.Lower[i] > p.Upper[i] {
			return fmt.Errorf("%w: component %d", ErrNoInterior, i)
		}
	}
	return nil
}

// linearMatrix returns A, substituting an empty M1×N matrix for nil.
func (p *Problem) linearMatrix() *sparse.Coord {
	if p.A != nil {
		return p.A
	}
	return sparse.New(p.M1, p.N)
}

// combined returns the weighted constraint Hessian, substituting an empty
// upper triangle when no combiner is configured.
func (p *Problem) combined(w []float64) *sparse.Coord {
	if p.CombineHessians == nil {
		return sparse.New(p.N, p.N)
	}
	if h := p.CombineHessians(w); h != nil {
		return h
	}
	return sparse.New(p.N, p.N)
}
