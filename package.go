// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// hepplot provides plot-ready views of binned statistical data.
//
// Each type in this package is a small immutable value record that
// turns one or two histograms into the coordinate arrays a plot
// needs: a statistical uncertainty band (StatError), a ratio of two
// histograms with error bars (Ratio1D), a relative-uncertainty band
// around unity (RatioStatError1D), and a binomial efficiency with
// exact confidence bounds (Efficiency1D).
//
// Every type can be built two ways: directly from raw arrays, which
// keeps the numeric core free of any histogram dependency, or from a
// Hist1D via a From* constructor. The rendering side targets
// gonum.org/v1/plot: the point-like types implement plotter.XYer and
// the error interfaces so they can be handed straight to gonum/plot
// primitives, and the band-like types produce an hplot.Band.
package hepplot // import "github.com/aclements/go-hepplot"
