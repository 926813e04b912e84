// Copyright 2026 The songgeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"songgeo/dataset"
)

// Config holds the songplot settings. Every field has a default, so
// a config file only needs to spell out what differs.
type Config struct {
	Source  SourceConfig `yaml:"source"`
	Columns []ColumnMap  `yaml:"columns"`
	Drop    DropConfig   `yaml:"drop"`
	Reorder []ReorderMap `yaml:"reorder"`
	Out     OutConfig    `yaml:"out"`
	Plot    PlotConfig   `yaml:"plot"`
}

// SourceConfig names the input table. CSV wins if both are set.
type SourceConfig struct {
	DB  string `yaml:"db"`
	CSV string `yaml:"csv"`
}

// ColumnMap selects and renames one source column.
type ColumnMap struct {
	Name string `yaml:"name"`
	Src  string `yaml:"src"`
	Kind string `yaml:"kind"` // string, num, factor
}

// DropConfig names a sentinel factor label whose records are
// filtered out. An empty Field disables the filter.
type DropConfig struct {
	Field string `yaml:"field"`
	Label string `yaml:"label"`
}

// ReorderMap relevels factor Field by descending value of the
// numeric column By.
type ReorderMap struct {
	Field string `yaml:"field"`
	By    string `yaml:"by"`
}

// OutConfig names the output files, all relative to Dir.
type OutConfig struct {
	Dir     string `yaml:"dir"`
	CSV     string `yaml:"csv"`
	Gob     string `yaml:"gob"`
	Points  string `yaml:"points_svg"`
	ByYear  string `yaml:"by_year_svg"`
	HeatSVG string `yaml:"heat_svg"`
	HeatPNG string `yaml:"heat_png"`
}

// PlotConfig sets the chart dimensions and heatmap resolution.
type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Bins   int `yaml:"bins"`
}

func defaultConfig() *Config {
	return &Config{
		Columns: []ColumnMap{
			{Name: "title", Src: "title", Kind: "string"},
			{Name: "album", Src: "release", Kind: "factor"},
			{Name: "artist", Src: "artist_name", Kind: "factor"},
			{Name: "year", Src: "year", Kind: "factor"},
			{Name: "popularity", Src: "artist_hotttnesss", Kind: "num"},
			{Name: "lat", Src: "latitude", Kind: "num"},
			{Name: "long", Src: "longitude", Kind: "num"},
		},
		Drop: DropConfig{Field: "year", Label: "0"},
		Reorder: []ReorderMap{
			{Field: "artist", By: "popularity"},
			{Field: "album", By: "popularity"},
		},
		Out: OutConfig{
			Dir:     "out",
			CSV:     "song.csv",
			Gob:     "song.gob",
			Points:  "artists.svg",
			ByYear:  "artists_by_year.svg",
			HeatSVG: "artist_heat.svg",
			HeatPNG: "artist_heat.png",
		},
		Plot: PlotConfig{Width: 800, Height: 500, Bins: 72},
	}
}

// loadConfig returns the defaults overlaid with the YAML file at
// path, if any.
func loadConfig(path string) (*Config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// specs converts the configured column mapping to loader specs.
func (c *Config) specs() ([]dataset.ColSpec, error) {
	specs := make([]dataset.ColSpec, 0, len(c.Columns))
	for _, cm := range c.Columns {
		var k dataset.Kind
		switch cm.Kind {
		case "", "string":
			k = dataset.KindString
		case "num":
			k = dataset.KindNum
		case "factor":
			k = dataset.KindFactor
		default:
			return nil, fmt.Errorf("column %q: unknown kind %q", cm.Name, cm.Kind)
		}
		specs = append(specs, dataset.ColSpec{Name: cm.Name, Src: cm.Src, Kind: k})
	}
	return specs, nil
}
