// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hepplot

import (
	"fmt"
	"image/color"
	"math"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// StatError is the statistical uncertainty of one histogram, shaped
// for drawing as a step band around the bin values.
//
// All four slices are indexed by bin and must have the same length.
// The zero value is an empty band.
type StatError struct {
	// X and XErr are the bin centers and half bin widths.
	X, XErr []float64

	// Y and YErr are the bin values and their absolute errors,
	// conventionally the square roots of the bin variances.
	Y, YErr []float64
}

// StatErrorFromHist derives a StatError from a histogram: bin centers
// and half widths from the x axis, values from the bin contents, and
// errors from the square roots of the bin variances.
func StatErrorFromHist(h Hist1D) StatError {
	widths := h.Widths()
	xerr := make([]float64, len(widths))
	copy(xerr, widths)
	floats.Scale(0.5, xerr)

	yerr := make([]float64, len(xerr))
	for i, v := range h.Variances() {
		yerr[i] = math.Sqrt(v)
	}
	return StatError{X: h.Centers(), XErr: xerr, Y: h.Values(), YErr: yerr}
}

// YLow returns the lower bound of the band, Y - YErr per bin.
func (e StatError) YLow() []float64 {
	low := make([]float64, len(e.Y))
	floats.SubTo(low, e.Y, e.YErr)
	return low
}

// YUp returns the upper bound of the band, Y + YErr per bin.
func (e StatError) YUp() []float64 {
	up := make([]float64, len(e.Y))
	floats.AddTo(up, e.Y, e.YErr)
	return up
}

// BinEdges returns the interleaved sequence
//
//	[x0-xerr0, x0+xerr0, x1-xerr1, x1+xerr1, ...]
//
// of length twice the bin count. Paired with values repeated per
// edge, this traces a staircase profile along the bins.
func (e StatError) BinEdges() []float64 {
	edges := make([]float64, 0, 2*len(e.X))
	for i, x := range e.X {
		edges = append(edges, x-e.XErr[i], x+e.XErr[i])
	}
	return edges
}

// StatErrorStyle configures StatError.Plot. The zero value draws a
// translucent gray band with no contour line.
type StatErrorStyle struct {
	// FillColor fills the band. If nil, a default translucent
	// gray is used.
	FillColor color.Color

	// LineStyle draws the band's contour. A zero-width line (the
	// default) leaves the band without a contour.
	LineStyle draw.LineStyle

	// BinWidthNorm divides both band bounds by the bin width,
	// turning the band into a per-unit-x density view.
	BinWidthNorm bool
}

// bandBounds returns the step-profile coordinates of the band: the
// doubled edge sequence and the bounds repeated per edge, optionally
// normalized by bin width.
func (e StatError) bandBounds(binWidthNorm bool) (edges, ylow, yup []float64) {
	edges = e.BinEdges()
	ylow = repeat2(e.YLow())
	yup = repeat2(e.YUp())

	if binWidthNorm {
		for i, xerr := range e.XErr {
			w := 2 * xerr
			ylow[2*i] /= w
			ylow[2*i+1] /= w
			yup[2*i] /= w
			yup[2*i+1] /= w
		}
	}
	return edges, ylow, yup
}

// Plot adds the uncertainty band to p as a step-profile region
// between YLow and YUp and returns the added band. There is no
// implicit plot target; Plot fails if p is nil.
func (e StatError) Plot(p *plot.Plot, sty StatErrorStyle) (*hplot.Band, error) {
	if p == nil {
		return nil, fmt.Errorf("hepplot: StatError.Plot: nil plot")
	}

	edges, ylow, yup := e.bandBounds(sty.BinWidthNorm)

	fill := sty.FillColor
	if fill == nil {
		fill = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x3f}
	}
	band := hplot.NewBand(fill, zipXYs(edges, yup), zipXYs(edges, ylow))
	band.LineStyle = sty.LineStyle
	p.Add(band)
	return band, nil
}
