// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hepplot

import (
	"fmt"

	"github.com/aclements/go-hepplot/interval"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Efficiency1D is the ratio of two histograms interpreted as a
// binomial efficiency (passing counts over total counts), with exact
// Clopper–Pearson confidence bounds per bin.
//
// Efficiency1D implements plotter.XYer, plotter.YErrorer, and
// plotter.XErrorer. The vertical errors are asymmetric.
type Efficiency1D struct {
	// X are the denominator's bin centers.
	X []float64

	// Y is the per-bin efficiency, numerator/denominator. Bins
	// with a zero denominator hold 0.
	Y []float64

	// YLow and YUp are the confidence bounds on Y.
	YLow, YUp []float64

	// XErr are the denominator's bin widths.
	XErr []float64
}

// EfficiencyFromHists derives an Efficiency1D from a numerator and a
// denominator histogram sharing the same binning. Bins where the
// denominator is zero yield an efficiency of 0, not a division
// failure, and keep the trivial [0, 1] bounds of a zero-trial
// interval.
//
// The confidence bounds are the Clopper–Pearson interval at one sigma
// coverage. Only the bin counts of the two histograms are verified to
// match.
func EfficiencyFromHists(num, den Hist1D) (Efficiency1D, error) {
	nvals, dvals := num.Values(), den.Values()
	if len(nvals) != len(dvals) {
		return Efficiency1D{}, fmt.Errorf("hepplot: histograms have %d and %d bins", len(nvals), len(dvals))
	}

	y := make([]float64, len(dvals))
	for i, d := range dvals {
		if d > 0 {
			y[i] = nvals[i] / d
		}
	}
	ylow, yup := interval.ClopperPearsonEach(nvals, dvals, interval.OneSigma)

	return Efficiency1D{
		X:    den.Centers(),
		Y:    y,
		YLow: ylow,
		YUp:  yup,
		XErr: den.Widths(),
	}, nil
}

// YErrLow returns the downward error bar lengths, Y - YLow per bin.
func (e Efficiency1D) YErrLow() []float64 {
	low := make([]float64, len(e.Y))
	for i, y := range e.Y {
		low[i] = y - e.YLow[i]
	}
	return low
}

// YErrUp returns the upward error bar lengths, YUp - Y per bin.
func (e Efficiency1D) YErrUp() []float64 {
	up := make([]float64, len(e.Y))
	for i, y := range e.Y {
		up[i] = e.YUp[i] - y
	}
	return up
}

// Len returns the number of bins.
func (e Efficiency1D) Len() int { return len(e.X) }

// XY returns the point for bin i.
func (e Efficiency1D) XY(i int) (x, y float64) { return e.X[i], e.Y[i] }

// YError returns the asymmetric vertical error for bin i.
func (e Efficiency1D) YError(i int) (low, high float64) {
	return e.Y[i] - e.YLow[i], e.YUp[i] - e.Y[i]
}

// XError returns the symmetric horizontal error for bin i.
func (e Efficiency1D) XError(i int) (low, high float64) { return e.XErr[i], e.XErr[i] }

// EfficiencyStyle configures Efficiency1D.Plot. The zero value draws
// markers with vertical error bars only.
type EfficiencyStyle struct {
	// Marker styles the efficiency points. Its zero value draws
	// black squares.
	Marker RatioStyle

	// XErrs also draws horizontal error bars spanning XErr.
	XErrs bool
}

// Plot adds the efficiency points with their asymmetric vertical
// error bars to p and returns the added plotters. Horizontal error
// bars are included only when sty.XErrs is set. Plot fails if p is
// nil.
func (e Efficiency1D) Plot(p *plot.Plot, sty EfficiencyStyle) ([]plot.Plotter, error) {
	if p == nil {
		return nil, fmt.Errorf("hepplot: Efficiency1D.Plot: nil plot")
	}

	gs := sty.Marker.glyphStyle()

	pts, err := plotter.NewScatter(e)
	if err != nil {
		return nil, err
	}
	pts.GlyphStyle = gs

	yerrs, err := plotter.NewYErrorBars(e)
	if err != nil {
		return nil, err
	}
	yerrs.LineStyle.Color = gs.Color

	ps := []plot.Plotter{yerrs}
	if sty.XErrs {
		xerrs, err := plotter.NewXErrorBars(e)
		if err != nil {
			return nil, err
		}
		xerrs.LineStyle.Color = gs.Color
		ps = append(ps, xerrs)
	}
	ps = append(ps, pts)
	p.Add(ps...)
	return ps, nil
}
