// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hepplot

import (
	"fmt"
	"image/color"
	"math"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// RatioStatError1D is the relative statistical uncertainty of one
// histogram, shaped for drawing as a step band around unity on a
// ratio panel.
type RatioStatError1D struct {
	// Edges are the bin edges, one more than the bin count.
	Edges []float64

	// YErr is the relative error per bin,
	// sqrt(variance)/value.
	YErr []float64
}

// RatioStatErrorFromHist derives a RatioStatError1D from a histogram:
// the x axis edges and the per-bin relative statistical error.
func RatioStatErrorFromHist(h Hist1D) RatioStatError1D {
	vals := h.Values()
	vars := h.Variances()
	yerr := make([]float64, len(vals))
	for i, v := range vals {
		yerr[i] = math.Sqrt(vars[i]) / v
	}
	return RatioStatError1D{Edges: h.Edges(), YErr: yerr}
}

// YLow returns the lower bound of the band, 1 - YErr per bin.
func (e RatioStatError1D) YLow() []float64 {
	low := make([]float64, len(e.YErr))
	for i, v := range e.YErr {
		low[i] = 1 - v
	}
	return low
}

// YUp returns the upper bound of the band, 1 + YErr per bin.
func (e RatioStatError1D) YUp() []float64 {
	up := make([]float64, len(e.YErr))
	for i, v := range e.YErr {
		up[i] = 1 + v
	}
	return up
}

// stepXs doubles every edge and trims the outer duplicates, leaving
// exactly two x coordinates per bin, aligned with the doubled band
// bounds.
func (e RatioStatError1D) stepXs() []float64 {
	xs := repeat2(e.Edges)
	return xs[1 : len(xs)-1]
}

// BandStyle configures RatioStatError1D.FillBetween. The zero value
// draws a gray band at 0.2 alpha with no contour line.
type BandStyle struct {
	// FillColor fills the band. If nil, translucent gray is used.
	FillColor color.Color

	// LineStyle draws the band's contour. A zero-width line (the
	// default) leaves the band without a contour.
	LineStyle draw.LineStyle
}

// FillBetween adds the band between YLow and YUp to p as a step
// profile and returns the added band. FillBetween fails if p is nil.
func (e RatioStatError1D) FillBetween(p *plot.Plot, sty BandStyle) (*hplot.Band, error) {
	if p == nil {
		return nil, fmt.Errorf("hepplot: RatioStatError1D.FillBetween: nil plot")
	}

	xs := e.stepXs()
	ylow := repeat2(e.YLow())
	yup := repeat2(e.YUp())

	fill := sty.FillColor
	if fill == nil {
		fill = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x33}
	}
	band := hplot.NewBand(fill, zipXYs(xs, yup), zipXYs(xs, ylow))
	band.LineStyle = sty.LineStyle
	p.Add(band)
	return band, nil
}
