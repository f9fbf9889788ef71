// Copyright ©2026 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inlp

import "errors"

// Status describes the terminal state of a solve.
type Status int

const (
	// Unsolved no solve has completed on this optimizer yet.
	Unsolved Status = iota
	// Solved the KKT residual and the complementarity gaps met the tolerance.
	Solved
	// MaxIterExceeded the inner loop exhausted the iteration budget.
	MaxIterExceeded
	// Infeasible an accepted step left the strict interior, which the
	// fraction-to-boundary rule should prevent under exact arithmetic.
	Infeasible
	// BadLinearSystem the augmented KKT factorization failed.
	BadLinearSystem
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case MaxIterExceeded:
		return "max iterations exceeded"
	case Infeasible:
		return "infeasible"
	case BadLinearSystem:
		return "bad linear system"
	}
	return "unsolved"
}

var (
	// ErrNoInterior is returned when some lower bound exceeds its paired
	// upper bound, so no strictly interior point exists.
	ErrNoInterior = errors.New("inlp: empty interior, lower bound exceeds upper bound")
	// ErrMaxIterations is returned when the iteration budget runs out
	// before either inner break condition is met.
	ErrMaxIterations = errors.New("inlp: maximum number of iterations exceeded")
	// ErrBadLinSystem is returned when the augmented KKT system cannot be
	// factorized. The solve is not retried.
	ErrBadLinSystem = errors.New("inlp: bad linear system")
	// ErrInfeasible is returned when an accepted step violates strict
	// interiority of x or strict positivity of the bound multipliers.
	ErrInfeasible = errors.New("inlp: infeasible point reached")
)

const (
	// Relative and absolute slack used to relax the user bounds outward,
	// so points on the original boundary become strictly interior.
	// Empirical values carried over unchanged from long-standing use.
	boundRelSlack = 1e-5
	boundAbsSlack = 1e-8

	// Divisor applied to the initial gradient norm when fixing the
	// objective scale for the whole solve.
	objScaleDiv = 10.0
)
