// Copyright ©2026 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inlp

import (
	"fmt"

	"github.com/curioloop/inlp/linsolver"
	"github.com/curioloop/inlp/sparse"
)

// direction computes the full primal-dual Newton step from the residual
// bundle by solving the reduced augmented KKT system.
//
// The complementarity rows are eliminated analytically, leaving the
// symmetric indefinite system (one-triangle convention, H̄ above the
// diagonal, constraint blocks below)
//
//	⎡ H̄   ·  · ⎤ ⎡ p𝐱 ⎤   ⎡ -rd + ru/(𝒖-𝐱) - rl/(𝐱-𝒍) ⎤
//	⎢ -𝐀  ·  · ⎥ ⎢ p𝛌 ⎥ = ⎢            rp1             ⎥
//	⎣ -𝐉  ·  · ⎦ ⎣ p𝛎 ⎦   ⎣            rp2             ⎦
//
// with H̄ = 𝛁²𝛗/sca + ∑(-𝛎ᵢ)𝛁²cᵢ + D(𝛍/(𝒖-𝐱)) + D(𝛑/(𝐱-𝒍)).
// The eliminated multiplier steps are recovered elementwise as
// p𝛍 = (-ru + 𝛍∘p𝐱)/(𝒖-𝐱) and p𝛑 = (-rl - 𝛑∘p𝐱)/(𝐱-𝒍).
//
// The solver's symbolic analysis runs on first use only; the sparsity
// pattern of the assembled system is stable across one solve.
func direction(p *Problem, st *state, r *residual, ls linsolver.Solver) ([]float64, error) {
	n, m1, m2 := st.n, st.m1, st.m2
	dim := n + m1 + m2

	d1 := make([]float64, n)
	d2 := make([]float64, n)
	for i := 0; i < n; i++ {
		d1[i] = st.mu[i] / r.ux[i]
		d2[i] = st.pi[i] / r.xl[i]
	}

	a := p.linearMatrix()
	jc := r.pt.J
	if jc == nil {
		jc = sparse.New(m2, n)
	}

	kkt := sparse.NewBuilder(dim, dim).
		Add(0, 0, r.hupper, 1).
		AddDiag(0, 0, d1, 1).
		AddDiag(0, 0, d2, 1).
		Add(n, 0, a, -1).
		Add(n+m1, 0, jc, -1).
		Build()

	rhs := make([]float64, 0, dim)
	for i := 0; i < n; i++ {
		rhs = append(rhs, -r.rd[i]+r.ru[i]/r.ux[i]-r.rl[i]/r.xl[i])
	}
	rhs = append(rhs, r.rp1...)
	rhs = append(rhs, r.rp2...)

	if !ls.IsAnalyzed() {
		if err := ls.Analyze(kkt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadLinSystem, err)
		}
	}
	pbar, err := ls.FactorizeAndSolve(kkt, rhs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadLinSystem, err)
	}

	px := pbar[:n]
	dir := make([]float64, 0, 3*n+m1+m2)
	dir = append(dir, pbar...)
	for i := 0; i < n; i++ {
		dir = append(dir, (-r.ru[i]+st.mu[i]*px[i])/r.ux[i])
	}
	for i := 0; i < n; i++ {
		dir = append(dir, (-r.rl[i]-st.pi[i]*px[i])/r.xl[i])
	}
	return dir, nil
}
