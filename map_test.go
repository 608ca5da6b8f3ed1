// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package ingredient_test

import (
	"bytes"
	"testing"

	ing "github.com/mealkit/ingredient"
)

// TestMapWithFourKeys is scenario S2.
func TestMapWithFourKeys(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x4D, 0x1E})
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00})
	buf.Write([]byte{0x3F})
	buf.Write([]byte{0x01, 0x00, 0x00, 0x00})
	buf.Write([]byte{0x31})
	buf.Write([]byte{0x02, 0x00, 0x00, 0x00})
	buf.Write([]byte{0x30})
	buf.Write([]byte{0x03, 0x00, 0x00, 0x00})
	buf.Write([]byte{0x73, 0x09})
	buf.WriteString("Testing")
	raw := buf.Bytes()

	i := ing.Borrow(raw)
	if i.Size() != 0x1E {
		t.Fatalf("Size() = %d, want %d", i.Size(), 0x1E)
	}
	m, err := ing.DecodeMap(i)
	if err != nil {
		t.Fatalf("DecodeMap: %v", err)
	}

	if !m.Get(0).IsNull() {
		t.Errorf("key 0 = %v, want Null", m.Get(0).Kind())
	}
	if m.Get(1).Kind() != ing.KindTrue {
		t.Errorf("key 1 = %v, want True", m.Get(1).Kind())
	}
	if m.Get(2).Kind() != ing.KindFalse {
		t.Errorf("key 2 = %v, want False", m.Get(2).Kind())
	}
	if got := ing.ToString(m.Get(3)); got != "Testing" {
		t.Errorf("key 3 = %q, want Testing", got)
	}
	if !m.Get(7).IsNull() {
		t.Errorf("key 7 (absent) = %v, want Null sentinel", m.Get(7).Kind())
	}
	if m.ContainsKey(7) {
		t.Errorf("ContainsKey(7) = true, want false")
	}
	if !m.ContainsKey(0) {
		t.Errorf("ContainsKey(0) = false, want true (real Null value present)")
	}
}

func TestMapEncodesInAscendingKeyOrder(t *testing.T) {
	m := ing.NewMap(map[uint32]ing.Ingredient{
		5: ing.NewString("five"),
		1: ing.NewString("one"),
		3: ing.NewString("three"),
	})
	if got, want := m.Keys(), []uint32{1, 3, 5}; !equalU32(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	encoded := m.Encode()
	decoded, err := ing.DecodeMap(encoded)
	if err != nil {
		t.Fatalf("DecodeMap: %v", err)
	}
	if got := decoded.Encode(); !bytes.Equal(got.Bytes(), encoded.Bytes()) {
		t.Errorf("canonical round trip mismatch: % x vs % x", got.Bytes(), encoded.Bytes())
	}
}

func TestMapDuplicateKeyLastWins(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00})
	buf.Write([]byte{0x30}) // False
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00})
	buf.Write([]byte{0x31}) // True (replaces)
	payload := buf.Bytes()

	header := []byte{ing.MakeMarker(ing.SizeOne, ing.KindMap), byte(len(payload) + 2)}
	raw := append(header, payload...)

	m, err := ing.DecodeMap(ing.Borrow(raw))
	if err != nil {
		t.Fatalf("DecodeMap: %v", err)
	}
	if m.Get(0).Kind() != ing.KindTrue {
		t.Errorf("duplicate key 0 = %v, want True (last wins)", m.Get(0).Kind())
	}
}

func equalU32(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
