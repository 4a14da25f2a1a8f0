// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// interval computes confidence intervals for binomial proportions.
package interval // import "github.com/aclements/go-hepplot/interval"

import "gonum.org/v1/gonum/stat/distuv"

// OneSigma is the coverage of a one standard deviation interval of
// the normal distribution. It is the conventional default coverage
// for efficiency error bars.
const OneSigma = 0.682689492137086

// ClopperPearson returns the Clopper–Pearson "exact" confidence
// interval for a binomial proportion, given k successes in n trials
// at the given confidence level.
//
// The bounds are computed from Beta distribution quantiles:
//
//	lo = Beta(k, n-k+1).Quantile(α/2)
//	hi = Beta(k+1, n-k).Quantile(1-α/2)
//
// where α = 1 - confidence. At the edges of the support the interval
// is clamped: k <= 0 gives lo = 0 and k >= n gives hi = 1. A
// degenerate sample with n <= 0 yields the trivial interval [0, 1].
//
// k and n are float64 so that weighted counts can be used directly;
// the quantiles are well-defined for non-integer shape parameters.
// ClopperPearson panics unless 0 < confidence < 1.
func ClopperPearson(k, n, confidence float64) (lo, hi float64) {
	if !(confidence > 0 && confidence < 1) {
		panic("confidence must be in (0, 1)")
	}
	if n <= 0 {
		return 0, 1
	}
	alpha := 1 - confidence
	if k <= 0 {
		lo = 0
	} else {
		lo = distuv.Beta{Alpha: k, Beta: n - k + 1}.Quantile(alpha / 2)
	}
	if k >= n {
		hi = 1
	} else {
		hi = distuv.Beta{Alpha: k + 1, Beta: n - k}.Quantile(1 - alpha/2)
	}
	return lo, hi
}

// ClopperPearsonEach returns ClopperPearson(ks[i], ns[i], confidence)
// for each i. It panics if ks and ns differ in length.
func ClopperPearsonEach(ks, ns []float64, confidence float64) (lo, hi []float64) {
	if len(ks) != len(ns) {
		panic("len(ks) != len(ns)")
	}
	lo = make([]float64, len(ks))
	hi = make([]float64, len(ks))
	for i := range ks {
		lo[i], hi[i] = ClopperPearson(ks[i], ns[i], confidence)
	}
	return lo, hi
}
