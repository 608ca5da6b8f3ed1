// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package ingredient

// SizeClass is the top two bits of a type-marker byte. It names how many
// little-endian length bytes follow the marker.
type SizeClass uint8

const (
	// SizeZero means the record has no trailing length field; its total
	// size is always 1 (the marker byte alone).
	SizeZero SizeClass = 0
	// SizeOne means a 1-byte little-endian length follows the marker.
	SizeOne SizeClass = 1
	// SizeTwo means a 2-byte little-endian length follows the marker.
	SizeTwo SizeClass = 2
	// SizeEight means an 8-byte little-endian length follows the marker.
	SizeEight SizeClass = 3
)

// String implements Stringer.
func (sc SizeClass) String() string {
	switch sc {
	case SizeZero:
		return "Zero"
	case SizeOne:
		return "One"
	case SizeTwo:
		return "Two"
	case SizeEight:
		return "Eight"
	}
	return "Unknown"
}

// Kind is the bottom six bits of a type-marker byte. It names the record's
// semantic type.
type Kind uint8

// Kinds, with their fixed wire codepoints.
const (
	KindBinary    Kind = 0x02
	KindContainer Kind = 0x03
	KindHeader    Kind = 0x08
	KindLibrary   Kind = 0x0C
	KindMap       Kind = 0x0D
	KindZip       Kind = 0x1A
	KindFlags     Kind = 0x22
	KindFloat     Kind = 0x24
	KindInt32     Kind = 0x29
	KindInt64     Kind = 0x2C
	KindFalse     Kind = 0x30
	KindTrue      Kind = 0x31
	KindString    Kind = 0x33
	KindUint64    Kind = 0x35
	KindNull      Kind = 0x3F

	// KindUnknown is returned by KindOf for any codepoint not listed above.
	// It is never a valid marker to encode.
	KindUnknown Kind = 0xFF
)

// String implements Stringer.
func (k Kind) String() string {
	switch k {
	case KindBinary:
		return "Binary"
	case KindContainer:
		return "Container"
	case KindHeader:
		return "Header"
	case KindLibrary:
		return "Library"
	case KindMap:
		return "Map"
	case KindZip:
		return "Zip"
	case KindFlags:
		return "Flags"
	case KindFloat:
		return "Float"
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindFalse:
		return "False"
	case KindTrue:
		return "True"
	case KindString:
		return "String"
	case KindUint64:
		return "Uint64"
	case KindNull:
		return "Null"
	}
	return "Unknown"
}

var knownKinds = map[Kind]bool{
	KindBinary: true, KindContainer: true, KindHeader: true, KindLibrary: true,
	KindMap: true, KindZip: true, KindFlags: true, KindFloat: true,
	KindInt32: true, KindInt64: true, KindFalse: true, KindTrue: true,
	KindString: true, KindUint64: true, KindNull: true,
}

// SizeClassOf extracts the SizeClass from a raw type-marker byte.
func SizeClassOf(marker byte) SizeClass {
	return SizeClass((marker >> 6) & 0x3)
}

// KindOf extracts the Kind from a raw type-marker byte. It returns
// KindUnknown if the lower six bits are not one of the enumerated
// codepoints; callers that require a hard failure on an unknown kind
// should check this explicitly (see ErrUnknownKind).
func KindOf(marker byte) Kind {
	k := Kind(marker & 0x3F)
	if !knownKinds[k] {
		return KindUnknown
	}
	return k
}

// LengthBytes returns the number of little-endian length bytes that follow
// the marker for the given SizeClass: 0, 1, 2, or 8.
func LengthBytes(sc SizeClass) int {
	switch sc {
	case SizeZero:
		return 0
	case SizeOne:
		return 1
	case SizeTwo:
		return 2
	case SizeEight:
		return 8
	}
	return 0
}

// HeaderWidth returns the total header size (marker plus length bytes) for
// the given SizeClass.
func HeaderWidth(sc SizeClass) int {
	return LengthBytes(sc) + 1
}

// MinSizeClass returns the smallest SizeClass that can hold a payload of
// the given length. The thresholds are deliberately tight (p < 0xFE, not
// p < 0xFF; p < 0xFFFE, not p < 0xFFFF) to reserve the top of each range,
// and are kept exactly as-is for wire compatibility.
func MinSizeClass(payloadLen uint64) SizeClass {
	switch {
	case payloadLen == 0:
		return SizeZero
	case payloadLen < 0xFE:
		return SizeOne
	case payloadLen < 0xFFFE:
		return SizeTwo
	default:
		return SizeEight
	}
}

// MakeMarker packs a SizeClass and Kind into a single type-marker byte.
func MakeMarker(sc SizeClass, k Kind) byte {
	return (byte(sc) << 6) | (byte(k) & 0x3F)
}
