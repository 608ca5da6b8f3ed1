// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package ingredient

// Glossary is the bidirectional name↔index mapping derived from a
// Library: the element's position is its index. Unknown names translate
// to index 0; unknown indices translate to the empty string — neither is
// an error (spec §4.10).
type Glossary struct {
	nameToIndex map[string]uint32
	indexToName map[uint32]string
}

// NewGlossary builds a Glossary from a Library, indexing each name by its
// position. On a duplicate name, the first occurrence's index wins — the
// Library's wire order is preserved with no overwrite pass.
func NewGlossary(lib Library) Glossary {
	g := Glossary{
		nameToIndex: make(map[string]uint32, lib.Len()),
		indexToName: make(map[uint32]string, lib.Len()),
	}
	for idx, name := range lib.Names() {
		g.indexToName[uint32(idx)] = name
		if _, exists := g.nameToIndex[name]; !exists {
			g.nameToIndex[name] = uint32(idx)
		}
	}
	return g
}

// Indices translates names to their Library indices, in order. An unknown
// name translates to 0.
func (g Glossary) Indices(names []string) []uint32 {
	out := make([]uint32, len(names))
	for i, name := range names {
		out[i] = g.nameToIndex[name]
	}
	return out
}

// Names translates indices to their Library names, in order. An unknown
// index translates to "".
func (g Glossary) Names(indices []uint32) []string {
	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = g.indexToName[idx]
	}
	return out
}

// Recipe is a top-level Container plus an extracted Glossary, with
// step-path navigation into nested Containers, Maps, and Compressed
// blocks.
type Recipe struct {
	root        Ingredient
	glossary    Glossary
	hasGlossary bool
}

// NewRecipe builds a Recipe from a top-level Ingredient. If top is itself
// a Container it is adopted as-is; otherwise it is wrapped in a
// single-element Container. The Recipe's Glossary is derived from the
// first Library found among the root's direct children, if any.
func NewRecipe(top Ingredient) Recipe {
	root := top
	if top.Kind() != KindContainer {
		root = NewContainer(top).Encode()
	}
	g, has := firstGlossary(root)
	return Recipe{root: root, glossary: g, hasGlossary: has}
}

// firstGlossary scans root's direct children (root must be a Container)
// for the first Library and derives a Glossary from it.
func firstGlossary(root Ingredient) (Glossary, bool) {
	c, err := DecodeContainer(root)
	if err != nil {
		return Glossary{}, false
	}
	for _, child := range c.Children() {
		if child.Kind() != KindLibrary {
			continue
		}
		lib, err := DecodeLibrary(child)
		if err != nil {
			continue
		}
		return NewGlossary(lib), true
	}
	return Glossary{}, false
}

// Glossary returns the Recipe's Glossary. If HasGlossary is false, it is
// the zero Glossary (every translation yields the "unknown" default).
func (r Recipe) Glossary() Glossary { return r.glossary }

// HasGlossary reports whether this Recipe derived a Glossary of its own.
func (r Recipe) HasGlossary() bool { return r.hasGlossary }

// Ingredient navigates steps from the Recipe's root Container and returns
// the Ingredient found there. An empty step path finds nothing — it
// returns the Null sentinel, matching the original implementation's
// not-found result for a no-op walk, rather than the root itself. At
// each step: a Container is indexed (out-of-range yields the Null
// sentinel and ends navigation); a Map is looked up by key (absent
// yields Null); a Compressed node is transparently decompressed without
// consuming the step, so the step re-applies to the unwrapped value; any
// other kind ends navigation with Null for the remaining steps.
func (r Recipe) Ingredient(steps []uint32) Ingredient {
	return navigate(r.root, steps)
}

func navigate(current Ingredient, steps []uint32) Ingredient {
	if len(steps) == 0 {
		return NullIngredient
	}
	for _, step := range steps {
		for current.Kind() == KindZip {
			inner, err := Compressed{Ingredient: current}.Inner()
			if err != nil {
				return NullIngredient
			}
			current = inner
		}
		switch current.Kind() {
		case KindContainer:
			c, err := DecodeContainer(current)
			if err != nil {
				return NullIngredient
			}
			current = c.At(int(step))
		case KindMap:
			m, err := DecodeMap(current)
			if err != nil {
				return NullIngredient
			}
			current = m.Get(step)
		default:
			return NullIngredient
		}
	}
	return current
}

// Recipe returns a sub-Recipe rooted at the value navigate(steps) reaches.
// If the navigated value yields no Glossary of its own, the parent's
// Glossary is inherited (spec §4.10).
func (r Recipe) Recipe(steps []uint32) Recipe {
	sub := navigate(r.root, steps)
	root := sub
	if sub.Kind() != KindContainer {
		root = NewContainer(sub).Encode()
	}
	g, has := firstGlossary(root)
	if !has {
		g, has = r.glossary, r.hasGlossary
	}
	return Recipe{root: root, glossary: g, hasGlossary: has}
}
