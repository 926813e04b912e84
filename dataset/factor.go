// Copyright 2026 The songgeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"
	"sort"
)

// DropLevel returns a Dataset without the records whose value for
// field equals sentinel. Any level of field that is no longer
// referenced by a remaining record is pruned from the level
// sequence, preserving the relative order of the survivors, and
// record indices are remapped to the pruned sequence. If sentinel is
// not a level of field, DropLevel returns d unchanged.
func (d *Dataset) DropLevel(field, sentinel string) (*Dataset, error) {
	f, err := d.factor(field)
	if err != nil {
		return nil, err
	}

	drop := -1
	for i, l := range f.Levels {
		if l == sentinel {
			drop = i
			break
		}
	}
	if drop < 0 {
		return d, nil
	}

	keep := make([]int, 0, d.Len())
	for i, x := range f.Index {
		if x != drop {
			keep = append(keep, i)
		}
	}
	nd := d.takeRows(keep)

	// Prune levels nothing references any more. takeRows copied
	// the factor, so this cannot alias d.
	nf, _ := nd.factor(field)
	refs := make([]int, len(nf.Levels))
	for _, x := range nf.Index {
		if x >= 0 {
			refs[x]++
		}
	}
	remap := make([]int, len(nf.Levels))
	levels := nf.Levels[:0]
	for i, l := range nf.Levels {
		if refs[i] == 0 {
			remap[i] = -1
			continue
		}
		remap[i] = len(levels)
		levels = append(levels, l)
	}
	nf.Levels = levels
	for i, x := range nf.Index {
		if x >= 0 {
			nf.Index[i] = remap[x]
		}
	}
	return nd, nil
}

// ReorderByNum returns a Dataset in which field's level sequence is
// reordered by descending value of the numeric column by. Each
// level's sort key is the value of by from the first record, in row
// order, carrying that level. Levels whose key is NaN, and levels no
// record carries, sort after every keyed level. The sort is stable:
// equal keys keep the original level order. Record indices are
// remapped to the new sequence, so every record still maps to the
// same label.
func (d *Dataset) ReorderByNum(field, by string) (*Dataset, error) {
	f, err := d.factor(field)
	if err != nil {
		return nil, err
	}
	k, err := d.nums(by)
	if err != nil {
		return nil, err
	}

	// First-seen key per level.
	key := make([]float64, len(f.Levels))
	for i := range key {
		key[i] = math.NaN()
	}
	seen := make([]bool, len(f.Levels))
	for row, x := range f.Index {
		if x >= 0 && !seen[x] {
			seen[x] = true
			key[x] = k[row]
		}
	}

	order := make([]int, len(f.Levels))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		ki, kj := key[order[i]], key[order[j]]
		if math.IsNaN(ki) {
			return false
		}
		if math.IsNaN(kj) {
			return true
		}
		return ki > kj
	})

	nf := &Factor{
		Levels: make([]string, len(order)),
		Index:  make([]int, len(f.Index)),
	}
	remap := make([]int, len(order))
	for pos, old := range order {
		nf.Levels[pos] = f.Levels[old]
		remap[old] = pos
	}
	for i, x := range f.Index {
		if x < 0 {
			nf.Index[i] = -1
		} else {
			nf.Index[i] = remap[x]
		}
	}

	b := new(Builder)
	for _, name := range d.names {
		if name == field {
			b.Add(name, nf)
		} else {
			b.Add(name, d.cols[name])
		}
	}
	return b.Done(), nil
}
