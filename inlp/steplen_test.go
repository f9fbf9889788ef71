// Copyright ©2026 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inlp

import (
	"math"
	"testing"
)

func TestStepNoLimit(t *testing.T) {

	// Nothing moves toward a bound: the default cap of 1 applies.
	x, mu, pi := []float64{0}, []float64{1}, []float64{1}
	l, u := []float64{-1}, []float64{1}

	if s := steplen([]float64{0}, []float64{0}, []float64{0}, x, mu, pi, l, u, 1e-3); s != 1 {
		t.Fatalf("TestStepNoLimit: want 1, got %v", s)
	}
	if s := steplen([]float64{-0.1}, []float64{2}, []float64{3}, x, mu, pi, l, u, 1e-3); s != 1 {
		// moving toward the lower bound but 10 steps away: still capped at 1
		t.Fatalf("TestStepNoLimit: want 1, got %v", s)
	}
}

func TestStepPrimalBound(t *testing.T) {

	x, mu, pi := []float64{0.5}, []float64{1}, []float64{1}
	l, u := []float64{-1}, []float64{1}

	// px = 1 hits the upper bound at fraction 0.5
	s := steplen([]float64{1}, []float64{0}, []float64{0}, x, mu, pi, l, u, 1e-3)
	if math.Abs(s-0.999*0.5) > 1e-15 {
		t.Fatalf("TestStepPrimalBound: want %v, got %v", 0.999*0.5, s)
	}

	// px = -3 hits the lower bound at fraction 0.5
	s = steplen([]float64{-3}, []float64{0}, []float64{0}, x, mu, pi, l, u, 1e-3)
	if math.Abs(s-0.999*0.5) > 1e-15 {
		t.Fatalf("TestStepPrimalBound: want %v, got %v", 0.999*0.5, s)
	}
}

func TestStepMultiplierBound(t *testing.T) {

	x := []float64{0}
	l, u := []float64{-1}, []float64{1}

	s := steplen([]float64{0}, []float64{-2}, []float64{0}, x, []float64{0.5}, []float64{1}, l, u, 1e-3)
	if math.Abs(s-0.999*0.25) > 1e-15 {
		t.Fatalf("TestStepMultiplierBound: want %v, got %v", 0.999*0.25, s)
	}

	s = steplen([]float64{0}, []float64{0}, []float64{-4}, x, []float64{1}, []float64{1}, l, u, 1e-3)
	if math.Abs(s-0.999*0.25) > 1e-15 {
		t.Fatalf("TestStepMultiplierBound: want %v, got %v", 0.999*0.25, s)
	}
}

func TestStepAlwaysUnit(t *testing.T) {

	// The limiter output is always in (0, 1].
	x, mu, pi := []float64{0.9, -0.9}, []float64{1e-8, 10}, []float64{10, 1e-8}
	l, u := []float64{-1, -1}, []float64{1, 1}

	dirs := [][]float64{
		{100, -100}, {1e-6, 0}, {0, 1e12}, {-5, 5},
	}
	for _, px := range dirs {
		for _, pm := range dirs {
			for _, pp := range dirs {
				s := steplen(px, pm, pp, x, mu, pi, l, u, 1e-3)
				if !(s > 0 && s <= 1) {
					t.Fatalf("TestStepAlwaysUnit: step %v out of (0,1]", s)
				}
			}
		}
	}
}
