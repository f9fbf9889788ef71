// Copyright ©2026 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inlp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/curioloop/inlp/linsolver"
)

// Solve runs the primal-dual interior-point iteration
//
// minimize 𝛗(𝐱) subject to 𝐀𝐱 = 𝐛, 𝐜(𝐱) = 0, 𝒍 ≤ 𝐱 ≤ 𝒖
//
// as a two-level loop over the perturbed KKT conditions. The outer level
// recomputes the average complementarity products ημ = 𝛍·(𝒖-𝐱)/n and
// ηπ = 𝛑·(𝐱-𝒍)/n that center the complementarity targets, declares
// convergence when both ‖f‖∞ < tol and σ·max(ημ,ηπ) < tol, and otherwise
// fixes the inner accuracy target τ = σ·‖𝛁F‖∞ with F = ½‖f‖² the merit
// function. The inner level runs damped Newton steps on the perturbed
// residual f until ‖𝛁F‖∞ drops below τ (or f itself meets the tolerance
// together with the unperturbed complementarity products), then returns
// to the outer level for re-centering. Recomputing the centering target
// once per outer pass rather than per step amortizes its cost while the
// merit gradient is driven to zero in between.
//
// Each inner step solves the reduced augmented KKT system for the Newton
// direction and applies the fraction-to-boundary step length, so every
// accepted iterate stays strictly interior: 𝒍 < 𝐱 < 𝒖 and 𝛍, 𝛑 > 0.
// A violation after a step terminates the solve with ErrInfeasible.
//
// The returned result always carries the last iterate; on
// ErrMaxIterations, ErrBadLinSystem and ErrInfeasible it comes with no
// optimality guarantee.
func (o *Optimizer) Solve() (*Result, error) {
	p, par := o.prob, o.params

	ls, err := linsolver.New(par.LinSolver)
	if err != nil {
		return nil, err
	}

	st := newState(p, par)

	// The objective scale is fixed from the initial gradient and held
	// for the whole solve.
	pt := p.Eval(st.x)
	st.objSca = math.Max(norminf(pt.Gphi)/objScaleDiv, 1)

	tr := tracer{w: par.Trace}
	tr.banner()

	alpha := 0.0
	for { // outer: barrier reduction
		st.updateEta()

		r := evaluate(p, st, par.Sigma)
		if fmax := norminf(r.f); fmax < par.Tol && par.Sigma*math.Max(st.etaMu, st.etaPi) < par.Tol {
			return o.result(Solved, st, r.pt.Phi), nil
		}
		tau := par.Sigma * norminf(r.grad)

		tr.header(st.k)

		for { // inner: damped Newton on the perturbed residual
			r = evaluate(p, st, par.Sigma)
			fmax := norminf(r.f)
			gmax := norminf(r.grad)
			compu, compl := complementarity(st, r)
			tr.row(st.k, r.pt.Phi, fmax, gmax, compu, compl, alpha)

			if gmax < tau {
				break
			}
			if fmax < par.Tol && math.Max(compu, compl) < par.Tol {
				break
			}
			if st.k >= par.MaxIterations {
				return o.result(MaxIterExceeded, st, r.pt.Phi),
					fmt.Errorf("%w (%d)", ErrMaxIterations, st.k)
			}

			dir, err := direction(p, st, r, ls)
			if err != nil {
				return o.result(BadLinearSystem, st, r.pt.Phi), err
			}
			px, _, _, pmu, ppi := components(dir, st.n, st.m1, st.m2)
			alpha = steplen(px, pmu, ppi, st.x, st.mu, st.pi, st.l, st.u, par.Eps)

			floats.AddScaled(st.y, alpha, dir)
			st.k++

			if !st.interior() {
				return o.result(Infeasible, st, r.pt.Phi), ErrInfeasible
			}
		}
	}
}

// complementarity returns the infinity norms of the unperturbed
// complementarity products 𝛍∘(𝒖-𝐱) and 𝛑∘(𝐱-𝒍).
func complementarity(st *state, r *residual) (compu, compl float64) {
	for i := range st.mu {
		compu = math.Max(compu, math.Abs(st.mu[i]*r.ux[i]))
		compl = math.Max(compl, math.Abs(st.pi[i]*r.xl[i]))
	}
	return
}
