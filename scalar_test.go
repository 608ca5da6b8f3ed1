// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package ingredient_test

import (
	"bytes"
	"testing"

	ing "github.com/mealkit/ingredient"
)

func TestScalarRoundTrip(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		if !ing.ToBool(ing.NewBool(true)) {
			t.Errorf("ToBool(NewBool(true)) = false")
		}
		if ing.ToBool(ing.NewBool(false)) {
			t.Errorf("ToBool(NewBool(false)) = true")
		}
	})

	t.Run("float", func(t *testing.T) {
		for _, v := range []float64{0, 1.5, -99.25, 3.14159265} {
			if got := ing.ToFloat(ing.NewFloat(v)); got != v {
				t.Errorf("ToFloat(NewFloat(%v)) = %v", v, got)
			}
		}
	})

	t.Run("int32", func(t *testing.T) {
		for _, v := range []int32{0, 1, -1, 2147483647, -2147483648} {
			if got := ing.ToInt32(ing.NewInt32(v)); got != v {
				t.Errorf("ToInt32(NewInt32(%d)) = %d", v, got)
			}
		}
	})

	t.Run("int64", func(t *testing.T) {
		for _, v := range []int64{0, 1, -1, 9223372036854775807, -9223372036854775808} {
			if got := ing.ToInt64(ing.NewInt64(v)); got != v {
				t.Errorf("ToInt64(NewInt64(%d)) = %d", v, got)
			}
		}
	})

	t.Run("uint64", func(t *testing.T) {
		for _, v := range []uint64{0, 1, 18446744073709551615} {
			if got := ing.ToUint64(ing.NewUint64(v)); got != v {
				t.Errorf("ToUint64(NewUint64(%d)) = %d", v, got)
			}
		}
	})

	t.Run("string", func(t *testing.T) {
		for _, v := range []string{"", "Testing", "Testing."} {
			if got := ing.ToString(ing.NewString(v)); got != v {
				t.Errorf("ToString(NewString(%q)) = %q", v, got)
			}
		}
	})
}

func TestToBoolCoercion(t *testing.T) {
	for _, test := range []struct {
		name string
		i    ing.Ingredient
		want bool
	}{
		{"null", ing.NewNull(), false},
		{"false", ing.NewBool(false), false},
		{"true", ing.NewBool(true), true},
		{"int32 zero", ing.NewInt32(0), false},
		{"int32 nonzero", ing.NewInt32(5), true},
		{"int64 zero", ing.NewInt64(0), false},
		{"uint64 nonzero", ing.NewUint64(7), true},
		{"string", ing.NewString(""), true}, // any other kind coerces true
	} {
		if got := ing.ToBool(test.i); got != test.want {
			t.Errorf("%s: ToBool = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestCoercionMismatchReturnsZero(t *testing.T) {
	s := ing.NewString("not a number")
	if got := ing.ToInt32(s); got != 0 {
		t.Errorf("ToInt32(String) = %d, want 0", got)
	}
	if got := ing.ToFloat(s); got != 0 {
		t.Errorf("ToFloat(String) = %v, want 0", got)
	}
}

func TestToStringCanonicalForms(t *testing.T) {
	for _, test := range []struct {
		i    ing.Ingredient
		want string
	}{
		{ing.NewNull(), "null"},
		{ing.NewBool(true), "true"},
		{ing.NewBool(false), "false"},
		{ing.NewInt32(42), "42"},
		{ing.NewInt64(-7), "-7"},
		{ing.NewUint64(9), "9"},
		{ing.NewContainer().Encode(), ""},
	} {
		if got := ing.ToString(test.i); got != test.want {
			t.Errorf("ToString(%v) = %q, want %q", test.i.Kind(), got, test.want)
		}
	}
}

func TestFlagsPackAndUnpack(t *testing.T) {
	bits := []bool{true, false, true, true, false, false, false, true, true}
	f := ing.NewFlags(bits)
	// Payload stores whole bytes: 9 bits -> 2 bytes -> 16 reconstructed bits.
	if got, want := len(f.Payload()), 2; got != want {
		t.Fatalf("Flags payload length = %d, want %d", got, want)
	}
	unpacked := ing.ToFlags(f)
	if len(unpacked) != 16 {
		t.Fatalf("ToFlags length = %d, want 16", len(unpacked))
	}
	for i, b := range bits {
		if unpacked[i] != b {
			t.Errorf("bit %d = %v, want %v", i, unpacked[i], b)
		}
	}
	for i := len(bits); i < len(unpacked); i++ {
		if unpacked[i] {
			t.Errorf("padding bit %d = true, want false", i)
		}
	}
}

func TestFloatEncodingIsLittleEndianDouble(t *testing.T) {
	f := ing.NewFloat(1)
	// 1.0 as IEEE-754 double, little-endian.
	want := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF0, 0x3F}
	if !bytes.Equal(f.Payload(), want) {
		t.Errorf("NewFloat(1).Payload() = % x, want % x", f.Payload(), want)
	}
}
