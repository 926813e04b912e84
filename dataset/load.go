// Copyright 2026 The songgeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Kind identifies the storage type of a loaded column.
type Kind int

const (
	// KindString loads a column as plain text.
	KindString Kind = iota

	// KindNum loads a column as float64 values. Cells that are
	// empty or do not parse become NaN.
	KindNum

	// KindFactor loads a column as a Factor whose level sequence
	// is the distinct observed values in ascending order.
	KindFactor
)

// A ColSpec selects and renames one source column.
type ColSpec struct {
	// Name is the column name in the resulting Dataset.
	Name string

	// Src is the column name in the source table. If Src is "",
	// the source column is also named Name.
	Src string

	// Kind selects the storage type of the loaded column.
	Kind Kind
}

// New builds a Dataset from a raw string table, keeping only the
// columns named by specs, renamed and in spec order. It returns an
// error if a spec names a source column not present in header or a
// row is too short.
func New(header []string, rows [][]string, specs []ColSpec) (*Dataset, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[h] = i
	}

	b := new(Builder)
	for _, spec := range specs {
		src := spec.Src
		if src == "" {
			src = spec.Name
		}
		ci, ok := pos[src]
		if !ok {
			return nil, fmt.Errorf("unknown source column %q", src)
		}

		cells := make([]string, len(rows))
		for i, row := range rows {
			if ci >= len(row) {
				return nil, fmt.Errorf("row %d has %d columns; want at least %d", i, len(row), ci+1)
			}
			cells[i] = row[ci]
		}

		switch spec.Kind {
		case KindString:
			b.Add(spec.Name, Strings(cells))
		case KindNum:
			b.Add(spec.Name, parseNums(cells))
		case KindFactor:
			b.Add(spec.Name, newFactor(cells))
		default:
			return nil, fmt.Errorf("column %q: bad kind %d", spec.Name, spec.Kind)
		}
	}
	return b.Done(), nil
}

func parseNums(cells []string) Nums {
	c := make(Nums, len(cells))
	for i, s := range cells {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			v = math.NaN()
		}
		c[i] = v
	}
	return c
}

// newFactor derives the level sequence from the distinct cell
// values, sorted ascending, and indexes every cell against it.
func newFactor(cells []string) *Factor {
	seen := make(map[string]bool)
	var levels []string
	for _, s := range cells {
		if !seen[s] {
			seen[s] = true
			levels = append(levels, s)
		}
	}
	sort.Strings(levels)

	at := make(map[string]int, len(levels))
	for i, l := range levels {
		at[l] = i
	}
	f := &Factor{Levels: levels, Index: make([]int, len(cells))}
	for i, s := range cells {
		f.Index[i] = at[s]
	}
	return f
}

// factor returns the named column as a Factor.
func (d *Dataset) factor(name string) (*Factor, error) {
	c := d.cols[name]
	if c == nil {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	f, ok := c.(*Factor)
	if !ok {
		return nil, fmt.Errorf("column %q is not a factor", name)
	}
	return f, nil
}

// nums returns the named column as a numeric column.
func (d *Dataset) nums(name string) (Nums, error) {
	c := d.cols[name]
	if c == nil {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	n, ok := c.(Nums)
	if !ok {
		return nil, fmt.Errorf("column %q is not numeric", name)
	}
	return n, nil
}
