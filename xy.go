// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hepplot

import "gonum.org/v1/plot/plotter"

// repeat2 returns each element of xs twice, in order. This is the
// reshaping step behind every step-style profile in this package: a
// per-bin value becomes a pair of identical y coordinates aligned
// with the bin's two edges.
func repeat2(xs []float64) []float64 {
	out := make([]float64, 2*len(xs))
	for i, x := range xs {
		out[2*i] = x
		out[2*i+1] = x
	}
	return out
}

// zipXYs pairs up xs and ys into plotter coordinates. It panics if
// the slices differ in length.
func zipXYs(xs, ys []float64) plotter.XYs {
	if len(xs) != len(ys) {
		panic("len(xs) != len(ys)")
	}
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X = xs[i]
		xys[i].Y = ys[i]
	}
	return xys
}
