// Copyright ©2026 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inlp

import "math"

// steplen computes the fraction-to-boundary step length for the direction
// [p𝐱, ·, ·, p𝛍, p𝛑]: the largest fraction of the step keeping every
// bounded primal variable inside (𝒍, 𝒖) and every bound multiplier
// positive, shrunk by the proximity margin eps and capped at 1.
//
// Components moving away from their bound contribute no limit. The
// result is always in (0, 1].
func steplen(px, pmu, ppi, x, mu, pi, l, u []float64, eps float64) float64 {
	s1, s2, s3, s4 := math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1)
	for i, p := range px {
		if p > 0 {
			s1 = math.Min(s1, (u[i]-x[i])/p)
		} else if p < 0 {
			s2 = math.Min(s2, (l[i]-x[i])/p)
		}
	}
	for i, p := range pmu {
		if p < 0 {
			s3 = math.Min(s3, -mu[i]/p)
		}
	}
	for i, p := range ppi {
		if p < 0 {
			s4 = math.Min(s4, -pi[i]/p)
		}
	}
	smax := (1 - eps) * math.Min(math.Min(s1, s2), math.Min(s3, s4))
	return math.Min(smax, 1)
}
