// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// hepplot reads "x pass" pairs from stdin, where pass is 0 or 1,
// bins them into a pass/total histogram pair, and writes a plot of
// the per-bin efficiency with Clopper–Pearson error bars.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-hepplot"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"
)

func main() {
	var (
		bins = flag.Int("bins", 20, "number of bins")
		lo   = flag.Float64("min", 0, "low edge of the histogram range")
		hi   = flag.Float64("max", 1, "high edge of the histogram range")
		out  = flag.String("o", "eff.png", "efficiency plot output `file`")
		dist = flag.String("dist", "", "also write the total distribution with its stat band to `file`")
	)
	flag.Parse()

	num := hbook.NewH1D(*bins, *lo, *hi)
	den := hbook.NewH1D(*bins, *lo, *hi)
	readInput(os.Stdin, num, den)

	eff, err := hepplot.EfficiencyFromHists(hepplot.FromH1D(num), hepplot.FromH1D(den))
	if err != nil {
		fatal(err)
	}

	p := hplot.New()
	p.Title.Text = "Efficiency"
	p.Y.Label.Text = "num / den"
	if _, err := eff.Plot(p.Plot, hepplot.EfficiencyStyle{XErrs: true}); err != nil {
		fatal(err)
	}
	p.Add(hplot.NewGrid())
	if err := p.Save(15*vg.Centimeter, 10*vg.Centimeter, *out); err != nil {
		fatal(err)
	}

	if *dist != "" {
		dp := hplot.New()
		dp.Title.Text = "Entries"
		dp.Add(hplot.NewH1D(den))
		band := hepplot.StatErrorFromHist(hepplot.FromH1D(den))
		if _, err := band.Plot(dp.Plot, hepplot.StatErrorStyle{}); err != nil {
			fatal(err)
		}
		if err := dp.Save(15*vg.Centimeter, 10*vg.Centimeter, *dist); err != nil {
			fatal(err)
		}
	}
}

// readInput fills num and den from r. Every sample goes into den;
// samples marked as passing also go into num.
func readInput(r io.Reader, num, den *hbook.H1D) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		fields := strings.Fields(l)
		if len(fields) != 2 {
			fatal(fmt.Errorf("want \"x pass\" pairs, got %q", l))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			fatal(err)
		}
		pass, err := strconv.ParseBool(fields[1])
		if err != nil {
			fatal(err)
		}

		den.Fill(x, 1)
		if pass {
			num.Fill(x, 1)
		}
	}
	if err := scanner.Err(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
