// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hepplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Ratio1D is the bin-by-bin ratio of two histograms, typically data
// over a Monte Carlo prediction, shaped for drawing as points with
// error bars.
//
// Ratio1D implements plotter.XYer, plotter.YErrorer, and
// plotter.XErrorer, so it can be handed directly to gonum/plot's
// scatter and error-bar plotters.
type Ratio1D struct {
	// X and XErr are the bin centers and half bin widths.
	X, XErr []float64

	// Y is the elementwise data/mc ratio.
	Y []float64

	// YErr is the mc histogram's relative statistical error,
	// sqrt(variance)/value per bin.
	YErr []float64
}

// RatioFromHists derives a Ratio1D from a data histogram and an mc
// histogram sharing the same binning. Only the bin counts are
// verified to match; edge positions are taken on trust from the mc
// histogram.
//
// The error bars carry only the mc histogram's statistical error
// relative to its own value. The data histogram's statistical error
// is intentionally not propagated; it is assumed to be drawn
// separately on the main panel.
func RatioFromHists(data, mc Hist1D) (Ratio1D, error) {
	dvals, mvals := data.Values(), mc.Values()
	if len(dvals) != len(mvals) {
		return Ratio1D{}, fmt.Errorf("hepplot: histograms have %d and %d bins", len(dvals), len(mvals))
	}

	mvars := mc.Variances()
	y := make([]float64, len(mvals))
	yerr := make([]float64, len(mvals))
	for i, m := range mvals {
		y[i] = dvals[i] / m
		yerr[i] = math.Sqrt(mvars[i]) / m
	}

	widths := mc.Widths()
	xerr := make([]float64, len(widths))
	for i, w := range widths {
		xerr[i] = w / 2
	}
	return Ratio1D{X: mc.Centers(), Y: y, XErr: xerr, YErr: yerr}, nil
}

// Len returns the number of bins.
func (r Ratio1D) Len() int { return len(r.X) }

// XY returns the point for bin i.
func (r Ratio1D) XY(i int) (x, y float64) { return r.X[i], r.Y[i] }

// YError returns the symmetric vertical error for bin i.
func (r Ratio1D) YError(i int) (low, high float64) { return r.YErr[i], r.YErr[i] }

// XError returns the symmetric horizontal error for bin i.
func (r Ratio1D) XError(i int) (low, high float64) { return r.XErr[i], r.XErr[i] }

// RatioStyle configures Ratio1D.Plot. The zero value draws black
// square markers with black error bars and no connecting line,
// the conventional style for a data/mc ratio panel.
type RatioStyle struct {
	// Color is the color of the markers and error bars. If nil,
	// black is used.
	Color color.Color

	// Glyph is the marker shape. If nil, a filled square is used.
	Glyph draw.GlyphDrawer

	// Radius is the marker radius. If zero, a small default is
	// used.
	Radius vg.Length
}

func (sty RatioStyle) glyphStyle() draw.GlyphStyle {
	gs := draw.GlyphStyle{Color: sty.Color, Shape: sty.Glyph, Radius: sty.Radius}
	if gs.Color == nil {
		gs.Color = color.Black
	}
	if gs.Shape == nil {
		gs.Shape = draw.BoxGlyph{}
	}
	if gs.Radius == 0 {
		gs.Radius = vg.Points(2)
	}
	return gs
}

// Plot adds the ratio points and their vertical and horizontal error
// bars to p and returns the added plotters. Plot fails if p is nil.
func (r Ratio1D) Plot(p *plot.Plot, sty RatioStyle) ([]plot.Plotter, error) {
	if p == nil {
		return nil, fmt.Errorf("hepplot: Ratio1D.Plot: nil plot")
	}

	gs := sty.glyphStyle()

	pts, err := plotter.NewScatter(r)
	if err != nil {
		return nil, err
	}
	pts.GlyphStyle = gs

	yerrs, err := plotter.NewYErrorBars(r)
	if err != nil {
		return nil, err
	}
	yerrs.LineStyle.Color = gs.Color

	xerrs, err := plotter.NewXErrorBars(r)
	if err != nil {
		return nil, err
	}
	xerrs.LineStyle.Color = gs.Color

	ps := []plot.Plotter{yerrs, xerrs, pts}
	p.Add(ps...)
	return ps, nil
}
