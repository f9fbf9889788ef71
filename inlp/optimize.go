// Copyright ©2026 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inlp implements a primal-dual interior-point solver for
// nonlinear programs with linear equality constraints, nonlinear
// equality constraints and box bounds on the variables.
package inlp

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/curioloop/inlp/linsolver"
)

// Parameters configures a solve. Zero values select the defaults.
type Parameters struct {
	// Optimality tolerance on the KKT residual. Default 1e-4.
	Tol float64
	// The solve stops with an error when the iteration count reaches
	// this limit. Default 300.
	MaxIterations int
	// Centering factor scaling the perturbed complementarity target
	// and the inner accuracy target. Default 0.1.
	Sigma float64
	// Boundary proximity margin for the fraction-to-boundary rule and
	// the warm-start clipping. Default 1e-3.
	Eps float64
	// Cold-start value and floor for the bound multipliers. Default 1e-2.
	EpsCold float64
	// Linear solver backend name, resolved by linsolver.New.
	// Empty selects the default backend.
	LinSolver string
	// Progress output destination. Nil suppresses all output.
	Trace io.Writer
}

func (p Parameters) withDefaults() Parameters {
	if p.Tol == 0 {
		p.Tol = 1e-4
	}
	if p.MaxIterations == 0 {
		p.MaxIterations = 300
	}
	if p.Sigma == 0 {
		p.Sigma = 0.1
	}
	if p.Eps == 0 {
		p.Eps = 1e-3
	}
	if p.EpsCold == 0 {
		p.EpsCold = 1e-2
	}
	return p
}

// Optimizer runs interior-point solves of one problem.
// An optimizer supports one solve in flight at a time.
type Optimizer struct {
	prob   *Problem
	params Parameters
}

// Result is the terminal iterate of a solve. On Solved the primal and
// dual vectors satisfy the optimality tolerance; on a failure status
// they hold the last iterate without any optimality guarantee.
type Result struct {
	Status             Status
	X, Lam, Nu, Mu, Pi []float64
	Phi                float64 // objective value at X
	Iterations         int
}

// New validates the problem and configuration and creates an optimizer.
// A problem with any lower bound above its paired upper bound is
// rejected here with ErrNoInterior; such a solve never starts.
func (p *Problem) New(params Parameters) (*Optimizer, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	par := params.withDefaults()
	if _, err := linsolver.New(par.LinSolver); err != nil {
		return nil, err
	}
	return &Optimizer{prob: p, params: par}, nil
}

func (o *Optimizer) result(status Status, st *state, phi float64) *Result {
	clone := func(v []float64) []float64 {
		c := make([]float64, len(v))
		copy(c, v)
		return c
	}
	return &Result{
		Status: status,
		X:      clone(st.x), Lam: clone(st.lam), Nu: clone(st.nu),
		Mu: clone(st.mu), Pi: clone(st.pi),
		Phi:        phi,
		Iterations: st.k,
	}
}

func norminf(v []float64) float64 {
	return floats.Norm(v, math.Inf(1))
}

// tracer writes the progress table. A nil writer disables it entirely;
// output is best effort and never influences control flow.
type tracer struct {
	w io.Writer
}

func (t tracer) banner() {
	if t.w == nil {
		return
	}
	fmt.Fprintf(t.w, "\nSolver: INLP\n------------\n")
}

func (t tracer) header(k int) {
	if t.w == nil {
		return
	}
	if k > 0 {
		fmt.Fprintln(t.w)
	}
	fmt.Fprintf(t.w, "%4s %9s %9s %9s %8s %8s %8s\n",
		"iter", "phi", "fmax", "gmax", "cu", "cl", "alpha")
}

func (t tracer) row(k int, phi, fmax, gmax, cu, cl, alpha float64) {
	if t.w == nil {
		return
	}
	fmt.Fprintf(t.w, "%4d %9.2e %9.2e %9.2e %8.1e %8.1e %8.1e\n",
		k, phi, fmax, gmax, cu, cl, alpha)
}
