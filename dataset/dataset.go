// Copyright 2026 The songgeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset models a small analysis table with explicit
// categorical (factor) columns.
//
// A factor column stores an ordered, deduplicated level sequence
// plus, for every record, an index into that sequence. The order of
// the level sequence controls default sort and plot order, but never
// which label a record maps to: releveling operations permute the
// levels and remap indices in lockstep.
//
// Transformations never mutate their receiver. Each returns a new
// Dataset, though unchanged columns may be shared, so callers must
// not modify a column after handing it to a Builder.
package dataset

import (
	"math"
	"strconv"
)

// A Column holds the values of one Dataset column.
type Column interface {
	// Len returns the number of records in the column.
	Len() int

	// take returns a new column containing the given rows, in order.
	take(rows []int) Column

	// cell returns the plain-text form of record row. Missing
	// values render as "".
	cell(row int) string
}

// Strings is a plain text column.
type Strings []string

func (c Strings) Len() int { return len(c) }

func (c Strings) take(rows []int) Column {
	n := make(Strings, len(rows))
	for i, r := range rows {
		n[i] = c[r]
	}
	return n
}

func (c Strings) cell(row int) string { return c[row] }

// Nums is a numeric column. NaN marks a missing value.
type Nums []float64

func (c Nums) Len() int { return len(c) }

func (c Nums) take(rows []int) Column {
	n := make(Nums, len(rows))
	for i, r := range rows {
		n[i] = c[r]
	}
	return n
}

func (c Nums) cell(row int) string {
	if math.IsNaN(c[row]) {
		return ""
	}
	return strconv.FormatFloat(c[row], 'g', -1, 64)
}

// A Factor is a categorical column: an ordered, deduplicated level
// sequence plus one index per record. An index of -1 marks a missing
// value; any other index must be a valid position in Levels.
type Factor struct {
	Levels []string
	Index  []int
}

func (f *Factor) Len() int { return len(f.Index) }

func (f *Factor) take(rows []int) Column {
	n := &Factor{
		Levels: append([]string(nil), f.Levels...),
		Index:  make([]int, len(rows)),
	}
	for i, r := range rows {
		n.Index[i] = f.Index[r]
	}
	return n
}

func (f *Factor) cell(row int) string {
	s, _ := f.Label(row)
	return s
}

// Label returns the label record row maps to, or "", false if the
// record's value is missing.
func (f *Factor) Label(row int) (string, bool) {
	if f.Index[row] < 0 {
		return "", false
	}
	return f.Levels[f.Index[row]], true
}

// A Dataset is an ordered sequence of named, equal-length columns.
type Dataset struct {
	names []string
	cols  map[string]Column
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if len(d.names) == 0 {
		return 0
	}
	return d.cols[d.names[0]].Len()
}

// Columns returns the column names, in order. The caller must not
// modify the returned slice.
func (d *Dataset) Columns() []string { return d.names }

// Column returns the named column, or nil if there is no such
// column.
func (d *Dataset) Column(name string) Column { return d.cols[name] }

// takeRows returns a new Dataset containing the given rows of every
// column, in order.
func (d *Dataset) takeRows(rows []int) *Dataset {
	b := new(Builder)
	for _, name := range d.names {
		b.Add(name, d.cols[name].take(rows))
	}
	return b.Done()
}

// A Builder constructs a Dataset column by column.
type Builder struct {
	names []string
	cols  map[string]Column
}

// Add adds a column named name to the Dataset being built. Adding a
// name that was already added replaces that column in place. Add
// panics if col's length differs from the columns already added. It
// returns the Builder for chaining.
func (b *Builder) Add(name string, col Column) *Builder {
	if b.cols == nil {
		b.cols = make(map[string]Column)
	}
	if _, ok := b.cols[name]; !ok {
		if len(b.names) > 0 {
			if have, want := col.Len(), b.cols[b.names[0]].Len(); have != want {
				panic("column " + name + " has " + strconv.Itoa(have) + " records; want " + strconv.Itoa(want))
			}
		}
		b.names = append(b.names, name)
	}
	b.cols[name] = col
	return b
}

// Done returns the built Dataset.
func (b *Builder) Done() *Dataset {
	return &Dataset{names: b.names, cols: b.cols}
}

// Equal reports whether d and o are structurally identical: the same
// column names in the same order, the same column kinds, the same
// values, and for factor columns the same level sequences and
// indices. NaN cells compare equal to NaN cells. Equal is
// independent of any storage format and is the round-trip oracle for
// the serializers in this package.
func (d *Dataset) Equal(o *Dataset) bool {
	if len(d.names) != len(o.names) {
		return false
	}
	for i, name := range d.names {
		if o.names[i] != name {
			return false
		}
	}
	for _, name := range d.names {
		if !colEqual(d.cols[name], o.cols[name]) {
			return false
		}
	}
	return true
}

func colEqual(a, b Column) bool {
	switch a := a.(type) {
	case Strings:
		b, ok := b.(Strings)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true

	case Nums:
		b, ok := b.(Nums)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] && !(math.IsNaN(a[i]) && math.IsNaN(b[i])) {
				return false
			}
		}
		return true

	case *Factor:
		b, ok := b.(*Factor)
		if !ok || len(a.Levels) != len(b.Levels) || len(a.Index) != len(b.Index) {
			return false
		}
		for i := range a.Levels {
			if a.Levels[i] != b.Levels[i] {
				return false
			}
		}
		for i := range a.Index {
			if a.Index[i] != b.Index[i] {
				return false
			}
		}
		return true
	}
	return false
}
