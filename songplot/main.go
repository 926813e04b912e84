// Copyright 2026 The songgeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command songplot explores the geography of a song metadata dump.
//
// songplot loads title, album, artist, year, popularity, and
// location columns from a track metadata database (or CSV export),
// treating album, artist, and year as factors. It filters out the
// records with the unknown-year sentinel "0", re-levels the artist
// and album factors by descending artist popularity, round-trips the
// working set through song.csv (which loses factor structure, by
// design) and song.gob (which must reproduce it exactly), checks
// that no artist maps to more than one location, and renders artist
// location charts as SVG and PNG.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aclements/go-gg/table"

	"songgeo/dataset"
	"songgeo/songdb"
)

func main() {
	log.SetPrefix("songplot: ")
	log.SetFlags(0)

	var (
		flagConfig = flag.String("config", "", "read settings from YAML `file`")
		flagDB     = flag.String("db", "", "read songs from SQLite `database`")
		flagCSV    = flag.String("csv", "", "read songs from CSV `file`")
		flagOut    = flag.String("o", "", "write outputs to `dir`")
		flagTable  = flag.Bool("table", false, "print the working table instead of plotting")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*flagConfig)
	if err != nil {
		log.Fatal(err)
	}
	if *flagDB != "" {
		cfg.Source.DB, cfg.Source.CSV = *flagDB, ""
	}
	if *flagCSV != "" {
		cfg.Source.CSV, cfg.Source.DB = *flagCSV, ""
	}
	if *flagOut != "" {
		cfg.Out.Dir = *flagOut
	}

	d := load(cfg)

	if *flagTable {
		table.Fprint(os.Stdout, d.Table())
		return
	}

	if err := os.MkdirAll(cfg.Out.Dir, 0777); err != nil {
		log.Fatal(err)
	}

	roundTrip(d, cfg)
	pairs := checkLocations(d)
	render(d, pairs, cfg)
}

// load reads the source table and applies the factor
// transformations, fatally on any error.
func load(cfg *Config) *dataset.Dataset {
	var (
		header []string
		rows   [][]string
		err    error
	)
	switch {
	case cfg.Source.CSV != "":
		header, rows, err = songdb.ReadCSV(cfg.Source.CSV)
	case cfg.Source.DB != "":
		header, rows, err = songdb.ReadSQLite(cfg.Source.DB)
	default:
		log.Fatal("no input: use -db or -csv")
	}
	if err != nil {
		log.Fatal(err)
	}

	specs, err := cfg.specs()
	if err != nil {
		log.Fatal(err)
	}
	d, err := dataset.New(header, rows, specs)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("loaded %d songs", d.Len())

	if cfg.Drop.Field != "" {
		nd, err := d.DropLevel(cfg.Drop.Field, cfg.Drop.Label)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("dropped %s %q: %d songs remain", cfg.Drop.Field, cfg.Drop.Label, nd.Len())
		d = nd
	}
	for _, r := range cfg.Reorder {
		if d, err = d.ReorderByNum(r.Field, r.By); err != nil {
			log.Fatal(err)
		}
	}
	return d
}

// roundTrip writes the working set to CSV and gob and verifies what
// each format preserves. The gob form must reproduce the dataset
// exactly; the CSV form drops factor structure by construction,
// which is reported but is not an error.
func roundTrip(d *dataset.Dataset, cfg *Config) {
	csvPath := filepath.Join(cfg.Out.Dir, cfg.Out.CSV)
	if err := writeFile(csvPath, d.WriteCSV); err != nil {
		log.Fatal(err)
	}
	fromCSV, err := readFile(csvPath, dataset.ReadCSV)
	if err != nil {
		log.Fatal(err)
	}
	if d.Equal(fromCSV) {
		log.Printf("%s: round-trip unexpectedly exact", csvPath)
	} else {
		log.Printf("%s: %d songs, factor levels not preserved (expected)", csvPath, fromCSV.Len())
	}

	gobPath := filepath.Join(cfg.Out.Dir, cfg.Out.Gob)
	if err := writeFile(gobPath, d.WriteGob); err != nil {
		log.Fatal(err)
	}
	fromGob, err := readFile(gobPath, dataset.ReadGob)
	if err != nil {
		log.Fatal(err)
	}
	if !d.Equal(fromGob) {
		log.Fatalf("%s: round-trip mismatch", gobPath)
	}
	log.Printf("%s: round-trip exact", gobPath)
}

// checkLocations gates the per-artist location summary: it returns
// the first location per artist only if no artist appears at more
// than one distinct location.
func checkLocations(d *dataset.Dataset) map[string][2]float64 {
	counts, err := d.DistinctPairs("artist", "lat", "long")
	if err != nil {
		log.Fatal(err)
	}
	var conflicts []string
	for artist, n := range counts {
		if n > 1 {
			conflicts = append(conflicts, artist)
		}
	}
	if len(conflicts) > 0 {
		sort.Strings(conflicts)
		log.Printf("%d artists at more than one location (e.g. %s); skipping per-artist summary",
			len(conflicts), strings.Join(head(conflicts, 3), ", "))
		return nil
	}

	pairs, err := d.FirstPairs("artist", "lat", "long")
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%d artists with a location", len(pairs))
	return pairs
}

func head(s []string, n int) []string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

// render writes the three charts. The heatmap uses the per-artist
// location summary when checkLocations allowed it, and falls back to
// raw records otherwise.
func render(d *dataset.Dataset, pairs map[string][2]float64, cfg *Config) {
	tab := d.Table()
	w, h := cfg.Plot.Width, cfg.Plot.Height

	points := filepath.Join(cfg.Out.Dir, cfg.Out.Points)
	if err := writeSVG(points, scatter(tab, "artist locations", ""), w, h); err != nil {
		log.Fatal(err)
	}
	byYear := filepath.Join(cfg.Out.Dir, cfg.Out.ByYear)
	if err := writeSVG(byYear, scatter(tab, "artist locations by year", "year"), w, h); err != nil {
		log.Fatal(err)
	}

	heatSVG := filepath.Join(cfg.Out.Dir, cfg.Out.HeatSVG)
	if err := writeSVG(heatSVG, heatPlot(tab, "artist density", cfg.Plot.Bins), w, h); err != nil {
		log.Fatal(err)
	}

	xs, ys := heatCoords(d, pairs)
	g := binPoints(xs, ys, cfg.Plot.Bins, cfg.Plot.Bins/2)
	scale := cfg.Plot.Width / cfg.Plot.Bins
	if scale < 1 {
		scale = 1
	}
	heatPNG := filepath.Join(cfg.Out.Dir, cfg.Out.HeatPNG)
	if err := writePNG(heatPNG, heatImage(g, scale)); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s %s %s %s", points, byYear, heatSVG, heatPNG)
}

// heatCoords picks the coordinates the raster heatmap bins: one
// point per artist when the summary is available, one per record
// otherwise.
func heatCoords(d *dataset.Dataset, pairs map[string][2]float64) (xs, ys []float64) {
	if pairs != nil {
		for _, p := range pairs {
			ys = append(ys, p[0])
			xs = append(xs, p[1])
		}
		return xs, ys
	}
	lat := d.Column("lat").(dataset.Nums)
	long := d.Column("long").(dataset.Nums)
	return long, lat
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func readFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()
	return read(f)
}
