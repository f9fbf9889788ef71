// Copyright ©2026 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inlp

import (
	"gonum.org/v1/gonum/floats"

	"github.com/curioloop/inlp/sparse"
)

// residual is the perturbed-KKT residual bundle, recomputed from scratch
// on every evaluation. Callers must not reuse a bundle after the iterate
// has moved.
type residual struct {
	pt Point // problem data at the embedded x

	hupper *sparse.Coord // Hphi/objSca + combined Hessian, upper triangle
	ux, xl []float64     // bound slacks u-x and x-l

	rd  []float64 // dual residual
	rp1 []float64 // linear primal residual
	rp2 []float64 // nonlinear primal residual
	ru  []float64 // perturbed upper complementarity residual
	rl  []float64 // perturbed lower complementarity residual

	f     []float64     // [rd, rp1, rp2, ru, rl]
	jac   *sparse.Coord // Jacobian of f w.r.t. [x, lam, nu, mu, pi]
	merit float64       // F = ½‖f‖²
	grad  []float64     // 𝛁F = Jᵀf
}

// evaluate re-evaluates the problem at the current x and assembles the
// residual bundle. This is the only place the problem is re-evaluated.
//
// Residuals:
//
//	rd  = 𝛁𝛗(𝐱)/sca - 𝐀ᵀ𝛌 - 𝐉ᵀ𝛎 + 𝛍 - 𝛑
//	rp1 = 𝐀𝐱 - 𝐛
//	rp2 = 𝐜(𝐱)
//	ru  = 𝛍∘(𝒖-𝐱) - σ·ημ·𝟏
//	rl  = 𝛑∘(𝐱-𝒍) - σ·ηπ·𝟏
func evaluate(p *Problem, st *state, sigma float64) *residual {
	n, m1, m2 := st.n, st.m1, st.m2

	r := &residual{pt: p.Eval(st.x)}

	negNu := make([]float64, m2)
	for i, v := range st.nu {
		negNu[i] = -v
	}
	hcomb := p.combined(negNu)

	r.ux, r.xl = st.slacks()

	a := p.linearMatrix()
	jc := r.pt.J
	if jc == nil {
		jc = sparse.New(m2, n)
	}

	// rd = 𝛁𝛗(𝐱)/sca - 𝐀ᵀ𝛌 - 𝐉ᵀ𝛎 + 𝛍 - 𝛑
	atLam := make([]float64, n)
	jtNu := make([]float64, n)
	a.MulVecT(atLam, st.lam)
	jc.MulVecT(jtNu, st.nu)
	r.rd = make([]float64, n)
	for i := 0; i < n; i++ {
		r.rd[i] = r.pt.Gphi[i]/st.objSca - atLam[i] - jtNu[i] + st.mu[i] - st.pi[i]
	}

	// rp1 = 𝐀𝐱 - 𝐛
	r.rp1 = make([]float64, m1)
	a.MulVec(r.rp1, st.x)
	floats.AddScaled(r.rp1, -1, p.B)

	// rp2 = 𝐜(𝐱)
	r.rp2 = make([]float64, m2)
	copy(r.rp2, r.pt.C)

	// Perturbed complementarity residuals.
	r.ru = make([]float64, n)
	r.rl = make([]float64, n)
	for i := 0; i < n; i++ {
		r.ru[i] = st.mu[i]*r.ux[i] - sigma*st.etaMu
		r.rl[i] = st.pi[i]*r.xl[i] - sigma*st.etaPi
	}

	// Second derivatives, kept as an upper triangle for the Newton system.
	r.hupper = sparse.New(n, n)
	if r.pt.Hphi != nil {
		r.pt.Hphi.Do(func(i, j int, v float64) {
			r.hupper.Append(i, j, v/st.objSca)
		})
	}
	hcomb.Do(r.hupper.Append)

	// Jacobian of [rd, rp1, rp2, ru, rl] w.r.t. [x, lam, nu, mu, pi]:
	//
	//	⎡ H     -𝐀ᵀ  -𝐉ᵀ   𝐈    -𝐈  ⎤
	//	⎢ 𝐀      ·    ·    ·     ·  ⎥
	//	⎢ 𝐉      ·    ·    ·     ·  ⎥
	//	⎢ -D(𝛍)  ·    ·   D(𝒖-𝐱) ·  ⎥
	//	⎣ D(𝛑)   ·    ·    ·  D(𝐱-𝒍)⎦
	dim := 3*n + m1 + m2
	oLam, oNu, oMu, oPi := n, n+m1, n+m1+m2, 2*n+m1+m2
	r.jac = sparse.NewBuilder(dim, dim).
		Add(0, 0, r.hupper.Symmetric(), 1).
		AddT(0, oLam, a, -1).
		AddT(0, oNu, jc, -1).
		AddIdentity(0, oMu, n, 1).
		AddIdentity(0, oPi, n, -1).
		Add(oLam, 0, a, 1).
		Add(oNu, 0, jc, 1).
		AddDiag(oMu, 0, st.mu, -1).
		AddDiag(oMu, oMu, r.ux, 1).
		AddDiag(oPi, 0, st.pi, 1).
		AddDiag(oPi, oPi, r.xl, 1).
		Build()

	r.f = make([]float64, 0, dim)
	r.f = append(r.f, r.rd...)
	r.f = append(r.f, r.rp1...)
	r.f = append(r.f, r.rp2...)
	r.f = append(r.f, r.ru...)
	r.f = append(r.f, r.rl...)

	r.merit = 0.5 * floats.Dot(r.f, r.f)
	r.grad = make([]float64, dim)
	r.jac.MulVecT(r.grad, r.f)

	return r
}
