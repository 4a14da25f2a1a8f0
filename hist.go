// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hepplot

import "go-hep.org/x/hep/hbook"

// Hist1D is the view of a one-dimensional histogram consumed by the
// From* constructors in this package. All slices are indexed by bin
// and have length equal to the bin count, except Edges, which has one
// more element than there are bins.
//
// Implementations are expected to return fresh or effectively
// read-only slices; this package never mutates them.
type Hist1D interface {
	// Centers returns the bin centers along the x axis.
	Centers() []float64

	// Widths returns the full bin widths.
	Widths() []float64

	// Edges returns the bin edges, low edge first.
	Edges() []float64

	// Values returns the per-bin sums of weights.
	Values() []float64

	// Variances returns the per-bin sums of squared weights.
	Variances() []float64
}

// Binned is a Hist1D built directly from raw arrays. It exists so the
// numeric types in this package can be constructed and tested with
// synthetic data, without going through a histogramming library.
type Binned struct {
	edges     []float64
	values    []float64
	variances []float64
}

// NewBinned returns a Binned over the given bin edges, values, and
// variances. It panics if len(values) != len(edges)-1 or the values
// and variances differ in length.
func NewBinned(edges, values, variances []float64) Binned {
	if len(values) != len(edges)-1 {
		panic("edges must have one more element than values")
	}
	if len(variances) != len(values) {
		panic("len(values) != len(variances)")
	}
	return Binned{edges: edges, values: values, variances: variances}
}

func (b Binned) Centers() []float64 {
	centers := make([]float64, len(b.values))
	for i := range centers {
		centers[i] = (b.edges[i] + b.edges[i+1]) / 2
	}
	return centers
}

func (b Binned) Widths() []float64 {
	widths := make([]float64, len(b.values))
	for i := range widths {
		widths[i] = b.edges[i+1] - b.edges[i]
	}
	return widths
}

func (b Binned) Edges() []float64 {
	return b.edges
}

func (b Binned) Values() []float64 {
	return b.values
}

func (b Binned) Variances() []float64 {
	return b.variances
}

// FromH1D returns a Hist1D view of a filled hbook histogram. Only the
// in-range bins are exposed; underflow and overflow are ignored.
func FromH1D(h *hbook.H1D) Hist1D {
	return h1dView{h}
}

type h1dView struct {
	h *hbook.H1D
}

func (v h1dView) Centers() []float64 {
	bins := v.h.Binning.Bins
	centers := make([]float64, len(bins))
	for i := range bins {
		centers[i] = bins[i].XMid()
	}
	return centers
}

func (v h1dView) Widths() []float64 {
	bins := v.h.Binning.Bins
	widths := make([]float64, len(bins))
	for i := range bins {
		widths[i] = bins[i].XWidth()
	}
	return widths
}

func (v h1dView) Edges() []float64 {
	bins := v.h.Binning.Bins
	edges := make([]float64, len(bins)+1)
	for i := range bins {
		edges[i] = bins[i].XMin()
	}
	edges[len(bins)] = bins[len(bins)-1].XMax()
	return edges
}

func (v h1dView) Values() []float64 {
	bins := v.h.Binning.Bins
	values := make([]float64, len(bins))
	for i := range bins {
		values[i] = bins[i].SumW()
	}
	return values
}

func (v h1dView) Variances() []float64 {
	bins := v.h.Binning.Bins
	variances := make([]float64, len(bins))
	for i := range bins {
		variances[i] = bins[i].SumW2()
	}
	return variances
}
