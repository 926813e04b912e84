// Copyright 2026 The songgeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// WriteCSV writes d as plain delimited text: a header row of column
// names, then one comma-separated row per record. Factor cells are
// written as their label text and missing values as empty cells.
// The output carries no type or level-sequence metadata, so a CSV
// round-trip of a Dataset with factor columns is lossy by design.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(d.names); err != nil {
		return err
	}
	row := make([]string, len(d.names))
	for i := 0; i < d.Len(); i++ {
		for j, name := range d.names {
			row[j] = d.cols[name].cell(i)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads a table written by WriteCSV. Column types are
// re-derived best effort: a column whose non-empty cells all parse
// as numbers comes back as Nums, with empty cells as NaN; every
// other column comes back as Strings. No factor structure is
// recovered, so a Dataset that had factor columns will not compare
// Equal to its CSV round-trip.
func ReadCSV(r io.Reader) (*Dataset, error) {
	recs, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	header, rows := recs[0], recs[1:]

	b := new(Builder)
	for j, name := range header {
		cells := make([]string, len(rows))
		for i, row := range rows {
			cells[i] = row[j]
		}
		if c, ok := tryNums(cells); ok {
			b.Add(name, c)
		} else {
			b.Add(name, Strings(cells))
		}
	}
	return b.Done(), nil
}

// tryNums converts cells to a numeric column if at least one cell is
// non-empty and every non-empty cell parses as a float.
func tryNums(cells []string) (Nums, bool) {
	c := make(Nums, len(cells))
	any := false
	for i, s := range cells {
		if s == "" {
			c[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		c[i] = v
		any = true
	}
	return c, any
}
