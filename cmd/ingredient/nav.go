// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	ing "github.com/mealkit/ingredient"
)

var navFlags = flag.NewFlagSet("nav", flag.ContinueOnError)

var (
	navIn    = navFlags.String("in", "-", "input file, or - for stdin")
	navSteps = navFlags.String("steps", "", "comma-separated step path, e.g. 1,0,3")
	navName  = navFlags.String("name", "", "glossary name to translate to a step index")
)

func nav() error {
	in, err := openInput(*navIn)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	top, err := ing.ReadIngredient(in)
	if err != nil {
		return fmt.Errorf("reading record: %w", err)
	}

	r := ing.NewRecipe(top)

	if *navName != "" {
		idx := r.Glossary().Indices([]string{*navName})[0]
		fmt.Printf("%s -> %d\n", *navName, idx)
		return nil
	}

	steps, err := parseSteps(*navSteps)
	if err != nil {
		return fmt.Errorf("parsing steps: %w", err)
	}
	result := r.Ingredient(steps)
	fmt.Printf("%s(%s)\n", result.Kind(), ing.ToString(result))
	return nil
}

func parseSteps(s string) ([]uint32, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]uint32, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", p, err)
		}
		out[i] = uint32(n)
	}
	return out, nil
}
