// Copyright 2026 The songgeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import "math"

// DistinctPairs reports, for every level of the grouping factor, how
// many distinct (x, y) pairs appear among the records carrying that
// level where both coordinates are present. Levels with no complete
// pair report zero. A level reporting more than one pair makes a
// take-the-first-pair summary of that group ambiguous.
func (d *Dataset) DistinctPairs(group, x, y string) (map[string]int, error) {
	f, xs, ys, err := d.groupCols(group, x, y)
	if err != nil {
		return nil, err
	}

	pairs := make(map[string]map[[2]float64]bool, len(f.Levels))
	for _, l := range f.Levels {
		pairs[l] = nil
	}
	for i, idx := range f.Index {
		if idx < 0 || math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		l := f.Levels[idx]
		if pairs[l] == nil {
			pairs[l] = make(map[[2]float64]bool)
		}
		pairs[l][[2]float64{xs[i], ys[i]}] = true
	}

	counts := make(map[string]int, len(pairs))
	for l, m := range pairs {
		counts[l] = len(m)
	}
	return counts, nil
}

// FirstPairs returns, for each level of the grouping factor, the
// first (x, y) pair in row order with both coordinates present.
// Levels with no complete pair are absent from the result. The
// summary is only meaningful when DistinctPairs reports at most one
// pair for every level.
func (d *Dataset) FirstPairs(group, x, y string) (map[string][2]float64, error) {
	f, xs, ys, err := d.groupCols(group, x, y)
	if err != nil {
		return nil, err
	}

	first := make(map[string][2]float64)
	for i, idx := range f.Index {
		if idx < 0 || math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		l := f.Levels[idx]
		if _, ok := first[l]; !ok {
			first[l] = [2]float64{xs[i], ys[i]}
		}
	}
	return first, nil
}

func (d *Dataset) groupCols(group, x, y string) (*Factor, Nums, Nums, error) {
	f, err := d.factor(group)
	if err != nil {
		return nil, nil, nil, err
	}
	xs, err := d.nums(x)
	if err != nil {
		return nil, nil, nil, err
	}
	ys, err := d.nums(y)
	if err != nil {
		return nil, nil, nil, err
	}
	return f, xs, ys, nil
}
