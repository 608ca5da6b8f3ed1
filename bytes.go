// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package ingredient

import (
	"encoding/binary"
	"fmt"
)

// Bytes is an opaque blob, payload-framed as [u32 marshal-hint LE][raw
// bytes]. The marshal hint is an opaque subtype tag interpreted only by
// the caller; Size (inherited from Ingredient) includes the hint, but
// Data's length excludes it.
type Bytes struct {
	Ingredient
}

// NewBytes builds a Binary record carrying hint and data.
func NewBytes(hint uint32, data []byte) Bytes {
	buf := encodeHeader(KindBinary, 4+len(data))
	payload := buf[len(buf)-(4+len(data)):]
	binary.LittleEndian.PutUint32(payload[:4], hint)
	copy(payload[4:], data)
	return Bytes{Ingredient: Ingredient{bytes: buf}}
}

// DecodeBytes parses a Binary record.
func DecodeBytes(i Ingredient) (Bytes, error) {
	if err := checkKind(i, KindBinary); err != nil {
		return Bytes{}, err
	}
	if len(i.Payload()) < 4 {
		return Bytes{}, fmt.Errorf("%w: binary payload shorter than marshal hint", ErrTruncated)
	}
	return Bytes{Ingredient: i}, nil
}

// Hint returns the 32-bit marshal hint.
func (b Bytes) Hint() uint32 { return binary.LittleEndian.Uint32(b.Payload()[:4]) }

// Data returns the raw bytes after the marshal hint.
func (b Bytes) Data() []byte { return b.Payload()[4:] }
