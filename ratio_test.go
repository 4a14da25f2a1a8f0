// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hepplot

import (
	"math"
	"testing"

	"gonum.org/v1/plot"
)

func TestRatioFromHists(t *testing.T) {
	data := NewBinned([]float64{0, 1, 2}, []float64{12, 18}, []float64{12, 18})
	mc := NewBinned([]float64{0, 1, 2}, []float64{10, 20}, []float64{10, 20})

	r, err := RatioFromHists(data, mc)
	if err != nil {
		t.Fatalf("RatioFromHists: %v", err)
	}

	if want := []float64{1.2, 0.9}; !aeqs(want, r.Y) {
		t.Errorf("want y %v, got %v", want, r.Y)
	}
	// Only the mc relative error is propagated.
	if want := []float64{math.Sqrt(10) / 10, math.Sqrt(20) / 20}; !aeqs(want, r.YErr) {
		t.Errorf("want yerr %v, got %v", want, r.YErr)
	}
	if want := []float64{0.5, 1.5}; !aeqs(want, r.X) {
		t.Errorf("want x %v, got %v", want, r.X)
	}
	if want := []float64{0.5, 0.5}; !aeqs(want, r.XErr) {
		t.Errorf("want xerr %v, got %v", want, r.XErr)
	}
}

func TestRatioFromHistsMismatch(t *testing.T) {
	data := NewBinned([]float64{0, 1, 2, 3}, []float64{1, 2, 3}, []float64{1, 2, 3})
	mc := NewBinned([]float64{0, 1, 2}, []float64{10, 20}, []float64{10, 20})
	if _, err := RatioFromHists(data, mc); err == nil {
		t.Error("mismatched bin counts did not fail")
	}
}

func TestRatioPlotterData(t *testing.T) {
	r := Ratio1D{
		X:    []float64{0.5, 1.5},
		Y:    []float64{1.2, 0.9},
		XErr: []float64{0.5, 0.5},
		YErr: []float64{0.1, 0.2},
	}

	if r.Len() != 2 {
		t.Fatalf("want Len 2, got %d", r.Len())
	}
	for i := 0; i < r.Len(); i++ {
		x, y := r.XY(i)
		if !aeq(r.X[i], x) || !aeq(r.Y[i], y) {
			t.Errorf("XY(%d) = (%v,%v), want (%v,%v)", i, x, y, r.X[i], r.Y[i])
		}
		lo, hi := r.YError(i)
		if !aeq(r.YErr[i], lo) || !aeq(r.YErr[i], hi) {
			t.Errorf("YError(%d) = (%v,%v), want symmetric %v", i, lo, hi, r.YErr[i])
		}
		lo, hi = r.XError(i)
		if !aeq(r.XErr[i], lo) || !aeq(r.XErr[i], hi) {
			t.Errorf("XError(%d) = (%v,%v), want symmetric %v", i, lo, hi, r.XErr[i])
		}
	}
}

func TestRatioPlot(t *testing.T) {
	r := Ratio1D{
		X:    []float64{0.5, 1.5},
		Y:    []float64{1.2, 0.9},
		XErr: []float64{0.5, 0.5},
		YErr: []float64{0.1, 0.2},
	}

	p := plot.New()
	ps, err := r.Plot(p, RatioStyle{})
	if err != nil {
		t.Fatalf("Plot: %v", err)
	}
	// Error bars in both directions plus the markers.
	if len(ps) != 3 {
		t.Errorf("want 3 plotters, got %d", len(ps))
	}

	if _, err := r.Plot(nil, RatioStyle{}); err == nil {
		t.Error("Plot(nil) did not fail")
	}
}
