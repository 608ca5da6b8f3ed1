// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package ingredient

import (
	"encoding/binary"
	"fmt"
	"sort"
)

// Map is an ordered, integer-keyed mapping to Ingredients. Payload layout
// is repetitions of [u32 key LE][child Ingredient].
type Map struct {
	m *orderedMap[uint32]
}

type u32KeyCodec struct{}

func (u32KeyCodec) readKey(payload []byte, off int) (uint32, int, error) {
	if off+4 > len(payload) {
		return 0, 0, fmt.Errorf("%w: truncated map key", ErrTruncated)
	}
	return binary.LittleEndian.Uint32(payload[off : off+4]), 4, nil
}

func (u32KeyCodec) writeKey(buf []byte, k uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], k)
	return append(buf, b[:]...)
}

// NewMap builds a Map from entries, inserting keys in ascending order.
func NewMap(entries map[uint32]Ingredient) Map {
	m := newOrderedMap[uint32]()
	keys := make([]uint32, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		m.set(k, entries[k])
	}
	return Map{m: m}
}

// Get returns the value for key, or the Null sentinel if key is absent
// (spec §4.5: lookup never errors).
func (m Map) Get(key uint32) Ingredient {
	v, ok := m.m.get(key)
	if !ok {
		return NullIngredient
	}
	return v
}

// ContainsKey reports whether key is present, letting callers distinguish
// a real Null value from an absent key.
func (m Map) ContainsKey(key uint32) bool {
	_, ok := m.m.get(key)
	return ok
}

// Keys returns the map's keys in ascending order — the canonical order
// Encode emits them in (spec §5: round-tripping a Map may reorder entries
// to ascending-key order; this is canonicalization, not data loss).
func (m Map) Keys() []uint32 {
	keys := append([]uint32(nil), m.m.keys...)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Encode serializes the Map with entries in ascending key order.
func (m Map) Encode() Ingredient {
	return encodeKeyed(KindMap, m.Keys(), m.m.vals, u32KeyCodec{})
}

// DecodeMap parses a Map record. Keys are read in wire order; on
// duplicate keys, the later entry wins (spec §4.5).
func DecodeMap(i Ingredient) (Map, error) {
	if err := checkKind(i, KindMap); err != nil {
		return Map{}, err
	}
	m, err := decodeKeyed[uint32](i.Payload(), u32KeyCodec{})
	if err != nil {
		return Map{}, err
	}
	return Map{m: m}, nil
}
