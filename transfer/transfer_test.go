// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package transfer

import (
	"reflect"
	"testing"
)

func TestPlanStripesEvenSplit(t *testing.T) {
	got := planStripes(400, 4)
	want := []stripe{
		{offset: 0, length: 100},
		{offset: 100, length: 100},
		{offset: 200, length: 100},
		{offset: 300, length: 100},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("planStripes(400, 4) = %+v, want %+v", got, want)
	}
}

func TestPlanStripesUnevenSplit(t *testing.T) {
	got := planStripes(10, 3)
	want := []stripe{
		{offset: 0, length: 4},
		{offset: 4, length: 4},
		{offset: 8, length: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("planStripes(10, 3) = %+v, want %+v", got, want)
	}

	var total int64
	for _, s := range got {
		total += s.length
	}
	if total != 10 {
		t.Fatalf("stripe lengths sum to %d, want 10", total)
	}
}

func TestPlanStripesSizeSmallerThanStripeCount(t *testing.T) {
	got := planStripes(2, 8)
	var total int64
	for _, s := range got {
		total += s.length
	}
	if total != 2 {
		t.Fatalf("stripe lengths sum to %d, want 2", total)
	}
}

func TestPlanStripesZeroSize(t *testing.T) {
	got := planStripes(0, 4)
	if len(got) != 1 || got[0].length != 0 {
		t.Fatalf("planStripes(0, 4) = %+v, want a single zero-length stripe", got)
	}
}

func TestOptionsWithDefaults(t *testing.T) {
	got := Options{}.withDefaults()
	if got.Threshold != DefaultThreshold || got.Stripes != DefaultStripes {
		t.Fatalf("withDefaults() = %+v, want Threshold=%d Stripes=%d", got, DefaultThreshold, DefaultStripes)
	}

	custom := Options{Threshold: 1024, Stripes: 2}.withDefaults()
	if custom.Threshold != 1024 || custom.Stripes != 2 {
		t.Fatalf("withDefaults() changed explicit values: %+v", custom)
	}
}
