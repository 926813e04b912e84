package main

import (
	"math"
	"os"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// dropMissing filters out records with a NaN in any of the named
// numeric columns.
type dropMissing struct {
	cols []string
}

func (s dropMissing) F(g table.Grouping) table.Grouping {
	for _, col := range s.cols {
		g = table.Filter(g, func(v float64) bool { return !math.IsNaN(v) }, col)
	}
	return g
}

// scatter plots one point per record at (long, lat), optionally
// colored by a discrete column.
func scatter(tab table.Grouping, title, colorBy string) *gg.Plot {
	p := gg.NewPlot(tab)
	p.Stat(dropMissing{[]string{"long", "lat"}})
	p.Add(gg.LayerPoints{X: "long", Y: "lat", Color: colorBy})
	p.Add(gg.AxisLabel("x", "longitude"), gg.AxisLabel("y", "latitude"))
	p.Add(gg.Title(title))
	return p
}

// bin2d grids (x, y) points into the cells of g and emits one row
// per non-empty cell: the cell center coordinates plus its count.
type bin2d struct {
	X, Y   string
	NX, NY int
}

func (b bin2d) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var xs, ys []float64
		slice.Convert(&xs, t.MustColumn(b.X))
		slice.Convert(&ys, t.MustColumn(b.Y))
		grid := binPoints(xs, ys, b.NX, b.NY)

		var cx, cy, count []float64
		grid.each(func(x, y float64, n int) {
			if n > 0 {
				cx = append(cx, x)
				cy = append(cy, y)
				count = append(count, float64(n))
			}
		})
		return new(table.Builder).
			Add("x", cx).
			Add("y", cy).
			Add("count", count).
			Done()
	})
}

// heatPlot renders a binned density chart of (long, lat) points.
func heatPlot(tab table.Grouping, title string, bins int) *gg.Plot {
	p := gg.NewPlot(tab)
	p.Stat(dropMissing{[]string{"long", "lat"}})
	p.Stat(bin2d{X: "long", Y: "lat", NX: bins, NY: bins / 2})
	p.Add(gg.LayerTiles{X: "x", Y: "y", Fill: "count"})
	p.Add(gg.AxisLabel("x", "longitude"), gg.AxisLabel("y", "latitude"))
	p.Add(gg.Title(title))
	return p
}

func writeSVG(path string, p *gg.Plot, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := p.WriteSVG(f, width, height); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
