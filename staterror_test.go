// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hepplot

import (
	"math"
	"testing"

	"gonum.org/v1/plot"
)

func TestStatErrorFromHist(t *testing.T) {
	h := NewBinned([]float64{0, 1, 2}, []float64{10, 20}, []float64{10, 20})
	se := StatErrorFromHist(h)

	check := func(name string, want, got []float64) {
		t.Helper()
		if !aeqs(want, got) {
			t.Errorf("%s: want %v, got %v", name, want, got)
		}
	}
	check("X", []float64{0.5, 1.5}, se.X)
	check("XErr", []float64{0.5, 0.5}, se.XErr)
	check("Y", []float64{10, 20}, se.Y)
	check("YErr", []float64{math.Sqrt(10), math.Sqrt(20)}, se.YErr)
	check("BinEdges", []float64{0, 1, 1, 2}, se.BinEdges())
	check("YLow", []float64{10 - math.Sqrt(10), 20 - math.Sqrt(20)}, se.YLow())
	check("YUp", []float64{10 + math.Sqrt(10), 20 + math.Sqrt(20)}, se.YUp())
}

func TestStatErrorBounds(t *testing.T) {
	// Uneven binning to make sure the interleaving follows each
	// bin's own half width.
	se := StatError{
		X:    []float64{1, 4, 10},
		XErr: []float64{1, 2, 4},
		Y:    []float64{3, 5, 7},
		YErr: []float64{1, 2, 3},
	}

	edges := se.BinEdges()
	if len(edges) != 2*len(se.X) {
		t.Fatalf("want %d edges, got %d", 2*len(se.X), len(edges))
	}
	if want := []float64{0, 2, 2, 6, 6, 14}; !aeqs(want, edges) {
		t.Errorf("want edges %v, got %v", want, edges)
	}

	ylow, yup := se.YLow(), se.YUp()
	for i := range se.Y {
		if !aeq(se.Y[i], ylow[i]+se.YErr[i]) {
			t.Errorf("bin %d: ylow+yerr = %v, want %v", i, ylow[i]+se.YErr[i], se.Y[i])
		}
		if !aeq(se.Y[i], yup[i]-se.YErr[i]) {
			t.Errorf("bin %d: yup-yerr = %v, want %v", i, yup[i]-se.YErr[i], se.Y[i])
		}
	}
}

func TestStatErrorBinWidthNorm(t *testing.T) {
	// Bins of width 2, so normalizing halves both bounds.
	se := StatError{
		X:    []float64{1, 3},
		XErr: []float64{1, 1},
		Y:    []float64{10, 20},
		YErr: []float64{2, 4},
	}

	_, ylow, yup := se.bandBounds(false)
	_, nlow, nup := se.bandBounds(true)
	for i := range ylow {
		if !aeq(ylow[i]/2, nlow[i]) || !aeq(yup[i]/2, nup[i]) {
			t.Errorf("edge %d: want halved bounds [%v,%v], got [%v,%v]",
				i, ylow[i]/2, yup[i]/2, nlow[i], nup[i])
		}
	}
}

func TestStatErrorPlot(t *testing.T) {
	se := StatErrorFromHist(NewBinned([]float64{0, 1, 2}, []float64{10, 20}, []float64{10, 20}))

	p := plot.New()
	band, err := se.Plot(p, StatErrorStyle{})
	if err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if band == nil {
		t.Fatal("Plot returned a nil band")
	}

	if _, err := se.Plot(nil, StatErrorStyle{}); err == nil {
		t.Error("Plot(nil) did not fail")
	}
}
