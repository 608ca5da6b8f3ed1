// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package ingredient

import (
	"fmt"
	"sort"
)

// Header is an ordered, string-keyed mapping to Ingredients. Payload
// layout is repetitions of [NUL-terminated UTF-8 key][child Ingredient].
//
// Empty keys are permitted on decode but discouraged on encode — an empty
// key is ambiguous with a stray NUL byte and should be avoided by callers
// constructing documents (spec §9).
type Header struct {
	m *orderedMap[string]
}

type stringKeyCodec struct{}

func (stringKeyCodec) readKey(payload []byte, off int) (string, int, error) {
	end := off
	for end < len(payload) && payload[end] != 0x00 {
		end++
	}
	if end >= len(payload) {
		return "", 0, fmt.Errorf("%w: header key missing NUL terminator", ErrTruncated)
	}
	return string(payload[off:end]), end - off + 1, nil
}

func (stringKeyCodec) writeKey(buf []byte, k string) []byte {
	buf = append(buf, k...)
	return append(buf, 0x00)
}

// NewHeader builds a Header from entries. Encode emits keys in sorted
// order, giving reproducible output regardless of Go's randomized map
// iteration (spec §4.6: "specify a total order ... to make outputs
// reproducible").
func NewHeader(entries map[string]Ingredient) Header {
	m := newOrderedMap[string]()
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		m.set(k, entries[k])
	}
	return Header{m: m}
}

// Get returns the value for key, or the Null sentinel if key is absent.
func (h Header) Get(key string) Ingredient {
	v, ok := h.m.get(key)
	if !ok {
		return NullIngredient
	}
	return v
}

// ContainsKey reports whether key is present.
func (h Header) ContainsKey(key string) bool {
	_, ok := h.m.get(key)
	return ok
}

// Keys returns the header's keys in sorted order.
func (h Header) Keys() []string {
	keys := append([]string(nil), h.m.keys...)
	sort.Strings(keys)
	return keys
}

// Encode serializes the Header with keys in sorted order.
func (h Header) Encode() Ingredient {
	return encodeKeyed(KindHeader, h.Keys(), h.m.vals, stringKeyCodec{})
}

// DecodeHeader parses a Header record. Keys are read in wire order; on
// duplicate keys, the later entry wins.
func DecodeHeader(i Ingredient) (Header, error) {
	if err := checkKind(i, KindHeader); err != nil {
		return Header{}, err
	}
	m, err := decodeKeyed[string](i.Payload(), stringKeyCodec{})
	if err != nil {
		return Header{}, err
	}
	return Header{m: m}, nil
}
