// Copyright ©2026 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inlp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// state is the primal-dual iterate threaded through the solve.
//
// The flat vector y stores the components in the fixed order
// [x, lam, nu, mu, pi]; x, lam, nu, mu and pi are subslice views of y,
// so an in-place update of y moves every component at once. All slicing
// downstream relies on this layout.
type state struct {
	n, m1, m2 int

	y                  []float64
	x, lam, nu, mu, pi []float64

	l, u []float64 // working bounds, relaxed outward from the user bounds

	etaMu, etaPi float64 // average complementarity violations
	objSca       float64 // objective scale, fixed for the whole solve

	k int // iteration counter
}

// components slices the flat iterate [x, lam, nu, mu, pi] into views.
func components(y []float64, n, m1, m2 int) (x, lam, nu, mu, pi []float64) {
	x = y[:n]
	lam = y[n : n+m1]
	nu = y[n+m1 : n+m1+m2]
	mu = y[n+m1+m2 : 2*n+m1+m2]
	pi = y[2*n+m1+m2:]
	return
}

// newState builds the strictly interior initial iterate.
func newState(p *Problem, par Parameters) *state {
	n, m1, m2 := p.N, p.M1, p.M2
	st := &state{n: n, m1: m1, m2: m2, objSca: 1}

	// Relax the bounds outward so that points on the user boundary,
	// including degenerate l = u components, become strictly interior.
	st.l = make([]float64, n)
	st.u = make([]float64, n)
	for i := 0; i < n; i++ {
		w := p.Upper[i] - p.Lower[i]
		st.u[i] = p.Upper[i] + boundRelSlack*w + boundAbsSlack
		st.l[i] = p.Lower[i] - boundRelSlack*w - boundAbsSlack
	}

	st.y = make([]float64, 3*n+m1+m2)
	st.x, st.lam, st.nu, st.mu, st.pi = components(st.y, n, m1, m2)

	if p.X0 == nil {
		for i := 0; i < n; i++ {
			st.x[i] = (st.u[i] + st.l[i]) / 2
		}
	} else {
		for i := 0; i < n; i++ {
			dul := par.Eps * (st.u[i] - st.l[i])
			st.x[i] = math.Max(math.Min(p.X0[i], st.u[i]-dul), st.l[i]+dul)
		}
	}

	copy(st.lam, p.Lam0)
	copy(st.nu, p.Nu0)

	for i := 0; i < n; i++ {
		if p.Mu0 == nil {
			st.mu[i] = par.EpsCold
		} else {
			st.mu[i] = math.Max(p.Mu0[i], par.Eps)
		}
		if p.Pi0 == nil {
			st.pi[i] = par.EpsCold
		} else {
			st.pi[i] = math.Max(p.Pi0[i], par.Eps)
		}
	}

	st.updateEta()
	return st
}

// updateEta recomputes the average complementarity products
// etaMu = 𝛍·(𝒖-𝐱)/n and etaPi = 𝛑·(𝐱-𝒍)/n.
func (st *state) updateEta() {
	ux, xl := st.slacks()
	st.etaMu = floats.Dot(st.mu, ux) / float64(st.n)
	st.etaPi = floats.Dot(st.pi, xl) / float64(st.n)
}

// slacks returns the distances to the working bounds, u-x and x-l.
func (st *state) slacks() (ux, xl []float64) {
	ux = make([]float64, st.n)
	xl = make([]float64, st.n)
	for i, x := range st.x {
		ux[i] = st.u[i] - x
		xl[i] = x - st.l[i]
	}
	return
}

// interior reports whether the iterate is strictly interior:
// l < x < u with mu > 0 and pi > 0.
func (st *state) interior() bool {
	for i, x := range st.x {
		if x >= st.u[i] || x <= st.l[i] {
			return false
		}
	}
	for i := range st.mu {
		if st.mu[i] <= 0 || st.pi[i] <= 0 {
			return false
		}
	}
	return true
}
