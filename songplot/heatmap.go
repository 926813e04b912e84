// Copyright 2026 The songgeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/aclements/go-moremath/stats"
	"golang.org/x/image/draw"
)

// grid is a dense 2D histogram of points over their bounding box.
// Cell (0, 0) is the south-west corner.
type grid struct {
	nx, ny     int
	xmin, xmax float64
	ymin, ymax float64
	count      []int
	max        int
}

// binPoints grids the (x, y) points into nx by ny cells spanning
// their bounds. NaN pairs are skipped.
func binPoints(xs, ys []float64, nx, ny int) *grid {
	g := &grid{nx: nx, ny: ny, count: make([]int, nx*ny)}
	g.xmin, g.xmax = stats.Bounds(dropNaN(xs))
	g.ymin, g.ymax = stats.Bounds(dropNaN(ys))
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		cx := cellIndex(xs[i], g.xmin, g.xmax, nx)
		cy := cellIndex(ys[i], g.ymin, g.ymax, ny)
		g.count[cy*nx+cx]++
	}
	for _, c := range g.count {
		if c > g.max {
			g.max = c
		}
	}
	return g
}

func dropNaN(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}

// cellIndex maps v in [min, max] to a cell in [0, n). The last cell
// is closed on the right so max lands in it.
func cellIndex(v, min, max float64, n int) int {
	if max == min {
		return 0
	}
	i := int((v - min) / (max - min) * float64(n))
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return i
}

// each calls f with every cell's center coordinates and count.
func (g *grid) each(f func(x, y float64, count int)) {
	dx := (g.xmax - g.xmin) / float64(g.nx)
	dy := (g.ymax - g.ymin) / float64(g.ny)
	for cy := 0; cy < g.ny; cy++ {
		for cx := 0; cx < g.nx; cx++ {
			f(g.xmin+(float64(cx)+0.5)*dx,
				g.ymin+(float64(cy)+0.5)*dy,
				g.count[cy*g.nx+cx])
		}
	}
}

// heatImage renders the grid as a raster heatmap, one source pixel
// per cell, scaled up nearest-neighbor so cell edges stay sharp.
// Rows are flipped so north is up.
func heatImage(g *grid, scale int) image.Image {
	src := image.NewNRGBA(image.Rect(0, 0, g.nx, g.ny))
	for cy := 0; cy < g.ny; cy++ {
		for cx := 0; cx < g.nx; cx++ {
			src.SetNRGBA(cx, g.ny-1-cy, heatColor(g.count[cy*g.nx+cx], g.max))
		}
	}
	if scale <= 1 {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, g.nx*scale, g.ny*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// heatColor ramps empty cells to light gray and counts from pale
// yellow to saturated red on a square-root scale, which keeps
// low-density regions visible next to dense clusters.
func heatColor(count, max int) color.NRGBA {
	if count == 0 || max == 0 {
		return color.NRGBA{235, 235, 235, 255}
	}
	t := math.Sqrt(float64(count) / float64(max))
	return color.NRGBA{255, uint8(224 * (1 - t)), uint8(160 * (1 - t)), 255}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
