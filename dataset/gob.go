// Copyright 2026 The songgeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"encoding/gob"
	"fmt"
	"io"
)

// The gob wire form spells out the full structure of every column,
// so the round-trip is exact: level sequences, the -1 missing-value
// index, and NaN cells all survive.
type wireColumn struct {
	Name string
	Kind Kind

	// Exactly one of the following groups is set, per Kind.
	Strs   []string
	Nums   []float64
	Levels []string
	Index  []int
}

type wireDataset struct {
	Cols []wireColumn
}

// WriteGob serializes d in a form that preserves its full structure.
// ReadGob on the result yields a Dataset that compares Equal to d.
func (d *Dataset) WriteGob(w io.Writer) error {
	wd := wireDataset{Cols: make([]wireColumn, 0, len(d.names))}
	for _, name := range d.names {
		wc := wireColumn{Name: name}
		switch c := d.cols[name].(type) {
		case Strings:
			wc.Kind = KindString
			wc.Strs = c
		case Nums:
			wc.Kind = KindNum
			wc.Nums = c
		case *Factor:
			wc.Kind = KindFactor
			wc.Levels = c.Levels
			wc.Index = c.Index
		}
		wd.Cols = append(wd.Cols, wc)
	}
	return gob.NewEncoder(w).Encode(wd)
}

// ReadGob reads a Dataset written by WriteGob.
func ReadGob(r io.Reader) (*Dataset, error) {
	var wd wireDataset
	if err := gob.NewDecoder(r).Decode(&wd); err != nil {
		return nil, err
	}
	b := new(Builder)
	for _, wc := range wd.Cols {
		switch wc.Kind {
		case KindString:
			b.Add(wc.Name, Strings(wc.Strs))
		case KindNum:
			b.Add(wc.Name, Nums(wc.Nums))
		case KindFactor:
			b.Add(wc.Name, &Factor{Levels: wc.Levels, Index: wc.Index})
		default:
			return nil, fmt.Errorf("column %q: bad kind %d", wc.Name, wc.Kind)
		}
	}
	return b.Done(), nil
}
