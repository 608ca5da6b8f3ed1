// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package ingredient

import (
	"fmt"

	"github.com/klauspost/compress/snappy"
)

// Compressed is an Ingredient whose payload is the Snappy-compressed byte
// image of exactly one other Ingredient's full record (marker, length,
// and payload).
type Compressed struct {
	Ingredient
}

// NewCompressed compresses inner's full byte image and wraps it in a Zip
// record. Following the original implementation's allocation strategy, it
// allocates using Snappy's max-compressed-length upper bound and then
// shrinks to the actual written size before framing (spec §4.7).
func NewCompressed(inner Ingredient) Compressed {
	src := inner.Bytes()
	dst := make([]byte, snappy.MaxEncodedLen(len(src)))
	compressed := snappy.Encode(dst, src)
	return Compressed{Ingredient: Ingredient{bytes: buildZip(compressed)}}
}

func buildZip(compressed []byte) []byte {
	buf := encodeHeader(KindZip, len(compressed))
	copy(buf[len(buf)-len(compressed):], compressed)
	return buf
}

// DecodeCompressed parses a Zip record. It checks only the record's kind;
// the payload is not uncompressed or validated here. Inner does that, and
// reports a Snappy failure, or an uncompressed result that isn't a valid
// Ingredient encoding, as a structural error.
func DecodeCompressed(i Ingredient) (Compressed, error) {
	if err := checkKind(i, KindZip); err != nil {
		return Compressed{}, err
	}
	return Compressed{Ingredient: i}, nil
}

// Inner decompresses and returns the wrapped Ingredient. Decompression is
// performed lazily, on each call, rather than at decode time — the spec's
// Recipe layer relies on this to avoid expanding unused Zip subtrees
// during step navigation (spec §9, "Recipe unwrap of Zip").
func (c Compressed) Inner() (Ingredient, error) {
	n, err := snappy.DecodedLen(c.Payload())
	if err != nil {
		return Ingredient{}, fmt.Errorf("%w: snappy decoded length: %v", ErrStructuralMismatch, err)
	}
	dst := make([]byte, n)
	raw, err := snappy.Decode(dst, c.Payload())
	if err != nil {
		return Ingredient{}, fmt.Errorf("%w: snappy uncompress: %v", ErrStructuralMismatch, err)
	}
	if len(raw) < 1 {
		return Ingredient{}, fmt.Errorf("%w: zip payload decompressed to empty buffer", ErrStructuralMismatch)
	}
	if hw := HeaderWidth(SizeClassOf(raw[0])); len(raw) < hw {
		return Ingredient{}, fmt.Errorf("%w: zip inner header truncated", ErrStructuralMismatch)
	}
	if int(Size(raw)) != len(raw) {
		return Ingredient{}, fmt.Errorf("%w: zip inner is not a complete ingredient encoding", ErrStructuralMismatch)
	}
	return Adopt(raw), nil
}
