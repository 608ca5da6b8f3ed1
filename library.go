// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package ingredient

import "fmt"

// Library is an ordered sequence of strings — a Container whose elements
// are all String Ingredients, with a convenience surface over plain Go
// strings. It doubles as the glossary source for [Recipe].
type Library struct {
	names []string
}

// NewLibrary adopts an ordered slice of names as a Library's in-memory
// representation.
func NewLibrary(names ...string) Library {
	return Library{names: names}
}

// Len returns the number of entries.
func (l Library) Len() int { return len(l.names) }

// At returns the name at idx, or "" if idx is out of range.
func (l Library) At(idx int) string {
	if idx < 0 || idx >= len(l.names) {
		return ""
	}
	return l.names[idx]
}

// Names returns the full ordered slice of names.
func (l Library) Names() []string { return l.names }

// Encode emits one String Ingredient per entry, framed exactly like
// Container's child tiling.
func (l Library) Encode() Ingredient {
	children := make([]Ingredient, len(l.names))
	for idx, name := range l.names {
		children[idx] = NewString(name)
	}
	return Ingredient{bytes: encodeChildren(KindLibrary, children)}
}

// DecodeLibrary parses a Library record. Every child must decode as a
// String Ingredient; a non-string child is a structural error.
func DecodeLibrary(i Ingredient) (Library, error) {
	if err := checkKind(i, KindLibrary); err != nil {
		return Library{}, err
	}
	children, err := decodeTiled(i.Payload())
	if err != nil {
		return Library{}, err
	}
	names := make([]string, len(children))
	for idx, ch := range children {
		if ch.Kind() != KindString {
			return Library{}, fmt.Errorf("%w: library entry %d is %s, not String", ErrStructuralMismatch, idx, ch.Kind())
		}
		names[idx] = ToString(ch)
	}
	return Library{names: names}, nil
}
