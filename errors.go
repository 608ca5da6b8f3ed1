// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package ingredient

import "errors"

// ErrTruncated is returned when a decoder needs more bytes than the input
// slice or stream can provide. This includes a Map or Header payload that
// ends mid-entry (inside a key, or before or inside a child record).
var ErrTruncated = errors.New("ingredient: truncated input")

// ErrUnknownKind is returned when a marker byte's lower six bits are not
// one of the enumerated Kind codepoints.
var ErrUnknownKind = errors.New("ingredient: unknown kind")

// ErrStructuralMismatch is returned for structural decode failures that
// are not simple truncation or an unknown kind: a Library child that isn't
// a String, a Compressed payload that doesn't round-trip through Snappy,
// or a Zip's inner bytes that aren't a valid Ingredient encoding.
var ErrStructuralMismatch = errors.New("ingredient: structural mismatch")
