// Copyright 2026 The songgeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"math"
	"testing"

	"github.com/aclements/go-gg/table"
)

func TestCellIndex(t *testing.T) {
	for _, test := range []struct {
		v, min, max float64
		n, want     int
	}{
		{0, 0, 10, 10, 0},
		{5, 0, 10, 10, 5},
		{9.99, 0, 10, 10, 9},
		{10, 0, 10, 10, 9}, // right edge closed
		{7, 7, 7, 10, 0},   // degenerate range
		{-90, -90, 90, 4, 0},
		{90, -90, 90, 4, 3},
	} {
		if got := cellIndex(test.v, test.min, test.max, test.n); got != test.want {
			t.Errorf("cellIndex(%v, %v, %v, %d) = %d; want %d",
				test.v, test.min, test.max, test.n, got, test.want)
		}
	}
}

func TestBinPoints(t *testing.T) {
	nan := math.NaN()
	xs := []float64{0, 0.1, 9.9, nan, 5}
	ys := []float64{0, 0.1, 9.9, 5, nan}
	g := binPoints(xs, ys, 2, 2)

	if g.xmin != 0 || g.xmax != 9.9 || g.ymin != 0 || g.ymax != 9.9 {
		t.Errorf("bounds wrong: [%v %v] [%v %v]", g.xmin, g.xmax, g.ymin, g.ymax)
	}
	// NaN pairs are skipped; (0,0) and (0.1,0.1) share the SW
	// cell, (9.9,9.9) is alone in the NE cell.
	total := 0
	for _, c := range g.count {
		total += c
	}
	if total != 3 {
		t.Errorf("want 3 binned points; got %d", total)
	}
	if g.count[0] != 2 {
		t.Errorf("SW cell should hold 2 points; got %d", g.count[0])
	}
	if g.count[3] != 1 {
		t.Errorf("NE cell should hold 1 point; got %d", g.count[3])
	}
	if g.max != 2 {
		t.Errorf("max should be 2; got %d", g.max)
	}
}

func TestGridEach(t *testing.T) {
	g := binPoints([]float64{0, 10}, []float64{0, 10}, 2, 2)
	var cells int
	g.each(func(x, y float64, count int) {
		cells++
		if count == 0 {
			return
		}
		// Centers fall strictly inside the bounds.
		if x <= 0 || x >= 10 || y <= 0 || y >= 10 {
			t.Errorf("cell center (%v, %v) outside bounds", x, y)
		}
	})
	if cells != 4 {
		t.Errorf("want 4 cells visited; got %d", cells)
	}
}

func TestHeatColor(t *testing.T) {
	if c := heatColor(0, 10); c.R == 255 {
		t.Error("empty cells should not use the ramp")
	}
	hottest := heatColor(10, 10)
	cool := heatColor(1, 10)
	if hottest.R != 255 || hottest.G != 0 {
		t.Errorf("hottest cell should be saturated red; got %v", hottest)
	}
	if cool.G <= hottest.G {
		t.Errorf("low counts should be paler than high counts: %v vs %v", cool, hottest)
	}
}

func TestHeatImage(t *testing.T) {
	g := binPoints([]float64{0, 1, 1}, []float64{0, 1, 1}, 2, 2)
	img := heatImage(g, 3)
	if want := image.Rect(0, 0, 6, 6); img.Bounds() != want {
		t.Errorf("bounds should be %v; got %v", want, img.Bounds())
	}
}

func TestBin2DStat(t *testing.T) {
	tab := new(table.Builder).
		Add("long", []float64{0, 0.2, 8}).
		Add("lat", []float64{0, 0.2, 8}).
		Done()
	g := bin2d{X: "long", Y: "lat", NX: 4, NY: 4}.F(tab)

	out := g.Table(table.RootGroupID)
	counts := out.MustColumn("count").([]float64)
	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total != 3 {
		t.Errorf("binned counts should sum to 3; got %v", total)
	}
	// Only non-empty cells are emitted.
	for i, c := range counts {
		if c == 0 {
			t.Errorf("cell %d has zero count", i)
		}
	}
}

func TestDropMissing(t *testing.T) {
	tab := new(table.Builder).
		Add("long", []float64{1, math.NaN(), 3}).
		Add("lat", []float64{1, 2, math.NaN()}).
		Done()
	g := dropMissing{[]string{"long", "lat"}}.F(tab)
	if n := g.Table(table.RootGroupID).Len(); n != 1 {
		t.Errorf("want 1 complete record; got %d", n)
	}
}
