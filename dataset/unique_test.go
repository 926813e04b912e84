// Copyright 2026 The songgeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"
	"reflect"
	"testing"
)

func locData() *Dataset {
	nan := math.NaN()
	// "wander" appears at two distinct locations; "settled"
	// repeats one location; "nowhere" never has a complete pair.
	return new(Builder).
		Add("artist", &Factor{
			Levels: []string{"nowhere", "settled", "wander"},
			Index:  []int{2, 1, 2, 1, 0, 2},
		}).
		Add("lat", Nums{10, 55.86, 20, 55.86, nan, 10}).
		Add("long", Nums{-1, -4.25, -2, -4.25, 3, -1}).
		Done()
}

func TestDistinctPairs(t *testing.T) {
	counts, err := locData().DistinctPairs("artist", "lat", "long")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"wander": 2, "settled": 1, "nowhere": 0}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("want %v; got %v", want, counts)
	}
}

func TestFirstPairs(t *testing.T) {
	pairs, err := locData().FirstPairs("artist", "lat", "long")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string][2]float64{
		"wander":  {10, -1},
		"settled": {55.86, -4.25},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("want %v; got %v", want, pairs)
	}
	if _, ok := pairs["nowhere"]; ok {
		t.Error("groups with no complete pair should be absent")
	}
}

func TestDistinctPairsErrors(t *testing.T) {
	d := locData()
	if _, err := d.DistinctPairs("lat", "lat", "long"); err == nil {
		t.Error("want error for non-factor group column")
	}
	if _, err := d.DistinctPairs("artist", "artist", "long"); err == nil {
		t.Error("want error for non-numeric coordinate column")
	}
}
