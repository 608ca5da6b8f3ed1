// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package ingredient

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
)

// NewNull returns the Null value. It is always the shared 1-byte marker
// record; there is no payload.
func NewNull() Ingredient { return NullIngredient }

// NewBool returns True or False, both zero-payload records.
func NewBool(v bool) Ingredient {
	k := KindFalse
	if v {
		k = KindTrue
	}
	return Ingredient{bytes: []byte{MakeMarker(SizeZero, k)}}
}

// NewFloat encodes v as an IEEE-754 double, little-endian.
func NewFloat(v float64) Ingredient {
	buf := encodeHeader(KindFloat, 8)
	binary.LittleEndian.PutUint64(buf[len(buf)-8:], math.Float64bits(v))
	return Ingredient{bytes: buf}
}

// NewInt32 encodes v as a signed 32-bit little-endian integer.
func NewInt32(v int32) Ingredient {
	buf := encodeHeader(KindInt32, 4)
	binary.LittleEndian.PutUint32(buf[len(buf)-4:], uint32(v))
	return Ingredient{bytes: buf}
}

// NewInt64 encodes v as a signed 64-bit little-endian integer.
func NewInt64(v int64) Ingredient {
	buf := encodeHeader(KindInt64, 8)
	binary.LittleEndian.PutUint64(buf[len(buf)-8:], uint64(v))
	return Ingredient{bytes: buf}
}

// NewUint64 encodes v as an unsigned 64-bit little-endian integer.
func NewUint64(v uint64) Ingredient {
	buf := encodeHeader(KindUint64, 8)
	binary.LittleEndian.PutUint64(buf[len(buf)-8:], v)
	return Ingredient{bytes: buf}
}

// NewString encodes v as raw UTF-8 bytes, not NUL-terminated.
func NewString(v string) Ingredient {
	buf := encodeHeader(KindString, len(v))
	copy(buf[len(buf)-len(v):], v)
	return Ingredient{bytes: buf}
}

// NewFlags encodes a bit vector of n bits, packed 8 to a byte
// (bit i lives at payload[i>>3] & (1<<(i&7))). The wire format records
// whole bytes, not bits, so decoding cannot recover n exactly — only a
// multiple of 8 at least as large; callers needing the exact count must
// track it out-of-band.
func NewFlags(bits []bool) Ingredient {
	n := (len(bits) + 7) / 8
	buf := encodeHeader(KindFlags, n)
	payload := buf[len(buf)-n:]
	for i, b := range bits {
		if b {
			payload[i>>3] |= 1 << (i & 7)
		}
	}
	return Ingredient{bytes: buf}
}

// ToBool applies the relaxed coercion described in spec §4.3: Null and
// False are false; Int32/Int64/UInt64 are true iff nonzero; everything
// else (including True, String, and composites) is true.
func ToBool(i Ingredient) bool {
	switch i.Kind() {
	case KindNull, KindFalse:
		return false
	case KindInt32:
		return ToInt32(i) != 0
	case KindInt64:
		return ToInt64(i) != 0
	case KindUint64:
		return ToUint64(i) != 0
	default:
		return true
	}
}

// ToFloat decodes a Float Ingredient. Decoding a non-Float kind returns
// 0.0 rather than erroring (spec §7, item 5: coercion mismatch).
func ToFloat(i Ingredient) float64 {
	if i.Kind() != KindFloat || len(i.Payload()) < 8 {
		return 0
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(i.Payload()))
}

// ToInt32 decodes an Int32 Ingredient, or 0 for any other kind.
func ToInt32(i Ingredient) int32 {
	if i.Kind() != KindInt32 || len(i.Payload()) < 4 {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(i.Payload()))
}

// ToInt64 decodes an Int64 Ingredient, or 0 for any other kind.
func ToInt64(i Ingredient) int64 {
	if i.Kind() != KindInt64 || len(i.Payload()) < 8 {
		return 0
	}
	return int64(binary.LittleEndian.Uint64(i.Payload()))
}

// ToUint64 decodes a UInt64 Ingredient, or 0 for any other kind.
func ToUint64(i Ingredient) uint64 {
	if i.Kind() != KindUint64 || len(i.Payload()) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(i.Payload())
}

// ToString returns the raw String payload as a Go string. For non-string
// kinds it returns a canonical textual form for Null/True/False, a
// decimal rendering for numeric kinds, and the empty string for
// composites.
func ToString(i Ingredient) string {
	switch i.Kind() {
	case KindString:
		return string(i.Payload())
	case KindNull:
		return "null"
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindFloat:
		return strconv.FormatFloat(ToFloat(i), 'g', -1, 64)
	case KindInt32:
		return strconv.FormatInt(int64(ToInt32(i)), 10)
	case KindInt64:
		return strconv.FormatInt(ToInt64(i), 10)
	case KindUint64:
		return strconv.FormatUint(ToUint64(i), 10)
	default:
		return ""
	}
}

// ToFlags unpacks a Flags Ingredient's payload into one bool per bit,
// covering every byte fully (so len(result) is always a multiple of 8).
// Decoding a non-Flags kind returns nil.
func ToFlags(i Ingredient) []bool {
	if i.Kind() != KindFlags {
		return nil
	}
	payload := i.Payload()
	out := make([]bool, len(payload)*8)
	for idx := range out {
		out[idx] = payload[idx>>3]&(1<<(idx&7)) != 0
	}
	return out
}

// checkKind returns an error annotated with the expected and actual kinds
// when i isn't want, used by strict decoders that must not silently
// coerce. A marker whose lower six bits aren't one of the enumerated
// codepoints is the distinct ErrUnknownKind hard-failure class (spec §7
// item 2); any other mismatch is ErrStructuralMismatch.
func checkKind(i Ingredient, want Kind) error {
	if i.Kind() == KindUnknown {
		return fmt.Errorf("%w: marker 0x%02X", ErrUnknownKind, i.Marker())
	}
	if i.Kind() != want {
		return fmt.Errorf("%w: want %s, got %s", ErrStructuralMismatch, want, i.Kind())
	}
	return nil
}
