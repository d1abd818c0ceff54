// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot renders beta vs Binder-cumulant curves to a PNG,
// standing in for original_source/Control.cpp's ROOT TMultiGraph and
// TLegend pairing (LoadAndAddBinderCumulantDataToRootMultiGraph).
package plot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// palette mirrors the original's fixed five-color cycle {kBlack, kRed,
// kGreen, kBlue, kOrange}, indexed by series order exactly as
// LoadAndAddBinderCumulantDataToRootMultiGraph's
// numberUsedToSetGraphMarkerStyleAndColor does (that function asserts
// the index stays below 5; Save wraps instead of panicking on a sixth
// series since a Go library shouldn't crash a caller over a palette
// choice).
var palette = []color.RGBA{
	{A: 255},                // black
	{R: 255, A: 255},        // red
	{G: 180, A: 255},        // green
	{B: 255, A: 255},        // blue
	{R: 255, G: 165, A: 255}, // orange
}

// Series is one (beta, U4) curve plus the grid length it came from, to
// be labelled "L: <gridLength>" in the legend exactly as the original
// does.
type Series struct {
	GridLength uint32
	Beta       []float64
	U4         []float64
}

// Save renders every series onto one scatter-and-line plot and writes
// it to filename as a PNG, mirroring the original's single
// TMultiGraph/TLegend pair shared across all loaded series.
func Save(filename string, title string, series []Series) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "beta"
	p.Y.Label.Text = "Binder cumulant"

	for i, s := range series {
		if len(s.Beta) != len(s.U4) {
			return fmt.Errorf("plot: series %d has %d beta values but %d U4 values", i, len(s.Beta), len(s.U4))
		}
		pts := make(plotter.XYs, len(s.Beta))
		for j := range s.Beta {
			pts[j].X = s.Beta[j]
			pts[j].Y = s.U4[j]
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("plot: failed to build series %d: %w", i, err)
		}
		c := palette[i%len(palette)]
		line.Color = c
		points.Color = c
		points.Shape = plotter.CircleGlyph{}
		p.Add(line, points)
		p.Legend.Add(fmt.Sprintf("L: %d", s.GridLength), line, points)
	}

	return p.Save(10*vg.Inch, 8*vg.Inch, filename)
}
