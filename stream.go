// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package ingredient

import (
	"fmt"
	"io"
)

// ReadIngredient reads exactly one Ingredient from r: one marker byte,
// then the SizeClass's length bytes, then the remaining payload bytes.
// Partial reads are retried (via io.ReadFull) until the required byte
// count is reached or r reports failure; a stream ending before the
// record's declared size is available is a hard error.
func ReadIngredient(r io.Reader) (Ingredient, error) {
	var marker [1]byte
	if _, err := io.ReadFull(r, marker[:]); err != nil {
		return Ingredient{}, fmt.Errorf("%w: reading marker: %v", ErrTruncated, err)
	}
	sc := SizeClassOf(marker[0])
	lenBytes := LengthBytes(sc)

	buf := make([]byte, HeaderWidth(sc))
	buf[0] = marker[0]
	if lenBytes > 0 {
		if _, err := io.ReadFull(r, buf[1:]); err != nil {
			return Ingredient{}, fmt.Errorf("%w: reading length: %v", ErrTruncated, err)
		}
	}

	total := Size(buf)
	if total < uint64(len(buf)) {
		return Ingredient{}, fmt.Errorf("%w: declared size smaller than header", ErrStructuralMismatch)
	}
	record := make([]byte, total)
	copy(record, buf)
	if total > uint64(len(buf)) {
		if _, err := io.ReadFull(r, record[len(buf):]); err != nil {
			return Ingredient{}, fmt.Errorf("%w: reading payload: %v", ErrTruncated, err)
		}
	}
	return Adopt(record), nil
}

// WriteIngredient writes i's full byte image to w in one logical write.
func WriteIngredient(w io.Writer, i Ingredient) error {
	_, err := w.Write(i.Bytes())
	return err
}
