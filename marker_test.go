// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package ingredient_test

import (
	"testing"

	ing "github.com/mealkit/ingredient"
)

func TestHeaderArithmetic(t *testing.T) {
	for _, test := range []struct {
		sc   ing.SizeClass
		want int
	}{
		{ing.SizeZero, 0},
		{ing.SizeOne, 1},
		{ing.SizeTwo, 2},
		{ing.SizeEight, 8},
	} {
		if got := ing.LengthBytes(test.sc); got != test.want {
			t.Errorf("LengthBytes(%v) = %d, want %d", test.sc, got, test.want)
		}
		if got, want := ing.HeaderWidth(test.sc), test.want+1; got != want {
			t.Errorf("HeaderWidth(%v) = %d, want %d", test.sc, got, want)
		}
	}
}

func TestMinSizeClassThresholds(t *testing.T) {
	for _, test := range []struct {
		p    uint64
		want ing.SizeClass
	}{
		{0, ing.SizeZero},
		{1, ing.SizeOne},
		{0xFD, ing.SizeOne},
		{0xFE, ing.SizeTwo}, // tight bound: not 0xFF
		{0xFF, ing.SizeTwo},
		{0xFFFD, ing.SizeTwo},
		{0xFFFE, ing.SizeEight}, // tight bound: not 0xFFFF
		{0xFFFFFF, ing.SizeEight},
	} {
		if got := ing.MinSizeClass(test.p); got != test.want {
			t.Errorf("MinSizeClass(0x%X) = %v, want %v", test.p, got, test.want)
		}
	}
}

func TestMakerRoundTrip(t *testing.T) {
	for _, k := range []ing.Kind{ing.KindNull, ing.KindTrue, ing.KindFalse, ing.KindString, ing.KindContainer, ing.KindMap, ing.KindZip, ing.KindBinary} {
		for _, sc := range []ing.SizeClass{ing.SizeZero, ing.SizeOne, ing.SizeTwo, ing.SizeEight} {
			m := ing.MakeMarker(sc, k)
			if got := ing.SizeClassOf(m); got != sc {
				t.Errorf("SizeClassOf(MakeMarker(%v, %v)) = %v, want %v", sc, k, got, sc)
			}
			if got := ing.KindOf(m); got != k {
				t.Errorf("KindOf(MakeMarker(%v, %v)) = %v, want %v", sc, k, got, k)
			}
		}
	}
}

func TestKindOfUnknown(t *testing.T) {
	// 0x3E is not in the enumerated Kind table.
	if got := ing.KindOf(0x3E); got != ing.KindUnknown {
		t.Errorf("KindOf(0x3E) = %v, want Unknown", got)
	}
}
