// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package ingredient

import "encoding/binary"

// Ingredient is a single wire record: a type-marker, an optional inline
// length, and a payload. It is the primitive carrier for every value in the
// format — scalars and composites alike decode to, and encode from, an
// Ingredient.
//
// An Ingredient either borrows a caller-owned byte slice (zero-copy,
// [Borrow]) or owns its own buffer ([CloneFrom], [Adopt]). Copying an
// Ingredient value (assignment, passing by value) shares the original's
// bytes, whether borrowed or owned; only [CloneFrom] makes an independent
// owned copy.
type Ingredient struct {
	bytes []byte
}

// Borrow wraps b without copying. b must contain at least one complete
// record starting at offset 0; Borrow itself performs no validation beyond
// what Size needs to read the length field.
func Borrow(b []byte) Ingredient {
	return Ingredient{bytes: b[:Size(b)]}
}

// CloneFrom copies Size(b) bytes of b into a new owned buffer.
func CloneFrom(b []byte) Ingredient {
	n := Size(b)
	owned := make([]byte, n)
	copy(owned, b[:n])
	return Ingredient{bytes: owned}
}

// Adopt takes ownership of b, which must already contain a valid encoding
// starting at offset 0 and whose length is exactly one record's Size.
func Adopt(b []byte) Ingredient {
	return Ingredient{bytes: b}
}

// NullIngredient is the shared 1-byte Null value, used as the benign
// sentinel for out-of-range lookups (spec §7, item 4).
var NullIngredient = Ingredient{bytes: []byte{MakeMarker(SizeZero, KindNull)}}

// Marker returns the raw type-marker byte.
func (i Ingredient) Marker() byte { return i.bytes[0] }

// Kind returns the record's Kind.
func (i Ingredient) Kind() Kind { return KindOf(i.Marker()) }

// sizeClass returns the record's SizeClass.
func (i Ingredient) sizeClass() SizeClass { return SizeClassOf(i.Marker()) }

// Size returns the full record length (header plus payload) as read from
// i's own bytes.
func (i Ingredient) Size() uint64 { return Size(i.bytes) }

// Size computes the full record length (header plus payload) for the
// record starting at offset 0 of b, reading only as many bytes as the
// SizeClass requires.
func Size(b []byte) uint64 {
	sc := SizeClassOf(b[0])
	if sc == SizeZero {
		return 1
	}
	w := LengthBytes(sc)
	switch w {
	case 1:
		return uint64(b[1])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b[1:3]))
	case 8:
		return binary.LittleEndian.Uint64(b[1:9])
	}
	return 1
}

// HeaderWidth returns this record's own header width.
func (i Ingredient) HeaderWidth() int { return HeaderWidth(i.sizeClass()) }

// Payload returns the bytes after the header.
func (i Ingredient) Payload() []byte { return i.bytes[i.HeaderWidth():] }

// Bytes returns the full record (marker, length, payload).
func (i Ingredient) Bytes() []byte { return i.bytes }

// IsNull reports whether i's Kind is Null.
func (i Ingredient) IsNull() bool { return i.Kind() == KindNull }

// encodeHeader writes a marker plus minimal-width length for a payload of
// length payloadLen into a freshly allocated buffer sized for the whole
// record, and returns that buffer with the header already filled in (the
// payload region is left zeroed for the caller to fill).
func encodeHeader(k Kind, payloadLen int) []byte {
	sc := MinSizeClass(uint64(payloadLen))
	w := HeaderWidth(sc)
	buf := make([]byte, w+payloadLen)
	buf[0] = MakeMarker(sc, k)
	switch LengthBytes(sc) {
	case 1:
		buf[1] = byte(w + payloadLen)
	case 2:
		binary.LittleEndian.PutUint16(buf[1:3], uint16(w+payloadLen))
	case 8:
		binary.LittleEndian.PutUint64(buf[1:9], uint64(w+payloadLen))
	}
	return buf
}
