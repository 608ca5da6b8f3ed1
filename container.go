// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package ingredient

import "fmt"

// Container is an ordered sequence of arbitrary Ingredients.
type Container struct {
	children []Ingredient
}

// NewContainer adopts an existing slice of children as a Container's
// in-memory representation, in order.
func NewContainer(children ...Ingredient) Container {
	return Container{children: children}
}

// Len returns the number of children.
func (c Container) Len() int { return len(c.children) }

// At returns the child at idx, or the Null sentinel if idx is out of
// range (spec §7, item 4: out-of-range lookup is not an error).
func (c Container) At(idx int) Ingredient {
	if idx < 0 || idx >= len(c.children) {
		return NullIngredient
	}
	return c.children[idx]
}

// Children returns the full ordered slice of children.
func (c Container) Children() []Ingredient { return c.children }

// Encode serializes the Container to its wire record: a header sized for
// the sum of child sizes, followed by each child's bytes verbatim, in
// order.
func (c Container) Encode() Ingredient {
	return Ingredient{bytes: encodeChildren(KindContainer, c.children)}
}

// encodeChildren builds a composite record of the given Kind whose
// payload is the concatenation of each child's full byte image — the
// shape shared by Container and Library. Map and Header frame their
// entries separately (see encodeKeyed/decodeKeyed in keyed.go).
func encodeChildren(k Kind, children []Ingredient) []byte {
	var total int
	for _, ch := range children {
		total += len(ch.Bytes())
	}
	buf := encodeHeader(k, total)
	payload := buf[len(buf)-total:]
	off := 0
	for _, ch := range children {
		n := copy(payload[off:], ch.Bytes())
		off += n
	}
	return buf
}

// DecodeContainer parses a Container record. Children are materialized as
// owned copies (spec §3: composites never retain borrowed views into the
// source buffer), read by repeatedly peeking a child's marker and Size
// until the payload is exactly tiled.
func DecodeContainer(i Ingredient) (Container, error) {
	if err := checkKind(i, KindContainer); err != nil {
		return Container{}, err
	}
	children, err := decodeTiled(i.Payload())
	if err != nil {
		return Container{}, err
	}
	return Container{children: children}, nil
}

// decodeTiled walks payload, slicing off one child record at a time by
// its own Size, until the cursor exactly reaches the end. It is an error
// for the cursor to overshoot (a truncated trailing record) or for the
// payload to end strictly inside a record's header.
func decodeTiled(payload []byte) ([]Ingredient, error) {
	var out []Ingredient
	off := 0
	for off < len(payload) {
		if off+1 > len(payload) {
			return nil, fmt.Errorf("%w: truncated child marker", ErrTruncated)
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
		out = append(out, CloneFrom(payload[off:off+n]))
		off += n
	}
	return out, nil
}
