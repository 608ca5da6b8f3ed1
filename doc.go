// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

// Package ingredient implements the Ingredient binary document format: a
// self-describing record encoding where every value carries a one-byte
// type-marker, an optional inline length, and a payload.
//
// The marker splits into a [SizeClass] (how many little-endian length bytes
// follow) and a [Kind] (the value's semantic type). Scalars
// ([NewNull], [NewBool], [NewFloat], [NewInt32], [NewInt64], [NewUint64],
// [NewString], [NewFlags]) and composites ([Container], [Library], [Map],
// [Header], [Compressed], [Bytes]) all round-trip through the same
// [Ingredient] carrier, which may either borrow a caller-owned byte slice
// ([Borrow]) or own a heap buffer ([CloneFrom], [Adopt]).
//
// [Glossary] and [Recipe] sit above the wire codec: a Recipe treats the
// first [Library] found inside a top-level [Container] as a name↔index
// glossary and supports walking into nested Containers, Maps, and
// [Compressed] blocks by a step path of integer selectors.
//
// Structural decode failures (truncated input, unknown kind, malformed
// composites) are returned as errors. Out-of-range lookups and coercion
// mismatches are not errors — they return benign sentinel values, per the
// taxonomy the wire format was designed around.
package ingredient
