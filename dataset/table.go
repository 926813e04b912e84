// Copyright 2026 The songgeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import "github.com/aclements/go-gg/table"

// Table converts d to a go-gg table for printing and plotting.
// Factor columns flatten to their label text, with missing values as
// "", and numeric columns convert as-is. Level-sequence structure
// does not survive the conversion.
func (d *Dataset) Table() *table.Table {
	b := new(table.Builder)
	for _, name := range d.names {
		switch c := d.cols[name].(type) {
		case Strings:
			b.Add(name, []string(c))
		case Nums:
			b.Add(name, []float64(c))
		case *Factor:
			labels := make([]string, c.Len())
			for i := range labels {
				labels[i], _ = c.Label(i)
			}
			b.Add(name, labels)
		}
	}
	return b.Done()
}
