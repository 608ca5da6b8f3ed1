// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package ingredient

import "fmt"

// keyCodec abstracts the one way Map and Header differ: how a key is
// framed on the wire (spec §9, "Map vs Header unification"). Both are
// otherwise an ordered sequence of (key, child Ingredient) pairs tiling a
// payload exactly.
type keyCodec[K comparable] interface {
	// readKey reads one key starting at payload[off] and returns the key,
	// the number of bytes it occupied, and an error if the payload ends
	// mid-key.
	readKey(payload []byte, off int) (K, int, error)
	// writeKey appends the wire encoding of k to buf and returns the
	// result.
	writeKey(buf []byte, k K) []byte
}

// orderedMap is the shared representation backing both Map (uint32 keys)
// and Header (string keys): an insertion/decode-ordered, last-wins,
// unique-key mapping to Ingredients.
type orderedMap[K comparable] struct {
	keys []K
	vals map[K]Ingredient
}

func newOrderedMap[K comparable]() *orderedMap[K] {
	return &orderedMap[K]{vals: make(map[K]Ingredient)}
}

// set inserts or replaces the value for k, preserving k's first-seen
// position in keys on replacement (decode order), and appending on first
// insertion.
func (m *orderedMap[K]) set(k K, v Ingredient) {
	if _, ok := m.vals[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.vals[k] = v
}

// get returns the value for k and whether it was present.
func (m *orderedMap[K]) get(k K) (Ingredient, bool) {
	v, ok := m.vals[k]
	return v, ok
}

// decodeKeyed walks payload, alternating codec.readKey and a tiled child
// Ingredient, inserting each pair with last-wins semantics on duplicate
// keys (spec §4.5/§4.6: decode tolerates duplicates by replacement).
func decodeKeyed[K comparable](payload []byte, codec keyCodec[K]) (*orderedMap[K], error) {
	m := newOrderedMap[K]()
	off := 0
	for off < len(payload) {
		k, consumed, err := codec.readKey(payload, off)
		if err != nil {
			return nil, err
		}
		off += consumed
		if off >= len(payload) {
			return nil, fmt.Errorf("%w: keyed entry ends mid-child", ErrTruncated)
		}
		sc := SizeClassOf(payload[off])
		hw := HeaderWidth(sc)
		if off+hw > len(payload) {
			return nil, fmt.Errorf("%w: truncated child header", ErrTruncated)
		}
		n := int(Size(payload[off:]))
		if n < hw || off+n > len(payload) {
			return nil, fmt.Errorf("%w: child record overruns payload", ErrTruncated)
		}
		if KindOf(payload[off]) == KindUnknown {
			return nil, fmt.Errorf("%w: marker 0x%02X", ErrUnknownKind, payload[off])
		}
		m.set(k, CloneFrom(payload[off:off+n]))
		off += n
	}
	return m, nil
}

// encodeKeyed serializes keys (in the order given: ascending for Map and
// sorted for Header — see map.go/header.go) as
// repeated [key][child] pairs.
func encodeKeyed[K comparable](kind Kind, keys []K, vals map[K]Ingredient, codec keyCodec[K]) Ingredient {
	var total int
	for _, k := range keys {
		total += len(codec.writeKey(nil, k))
		total += len(vals[k].Bytes())
	}
	buf := encodeHeader(kind, total)
	payload := buf[len(buf)-total:]
	off := 0
	for _, k := range keys {
		encoded := codec.writeKey(nil, k)
		off += copy(payload[off:], encoded)
		off += copy(payload[off:], vals[k].Bytes())
	}
	return Ingredient{bytes: buf}
}
