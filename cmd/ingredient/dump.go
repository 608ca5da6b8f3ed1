// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"

	ing "github.com/mealkit/ingredient"
)

var dumpFlags = flag.NewFlagSet("dump", flag.ContinueOnError)

var dumpIn = dumpFlags.String("in", "-", "input file, or - for stdin")

func dump() error {
	in, err := openInput(*dumpIn)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	i, err := ing.ReadIngredient(in)
	if err != nil {
		return fmt.Errorf("reading record: %w", err)
	}
	slog.Info("decoded record", "size", i.Size(), "kind", i.Kind())
	printTree(i, 0)
	return nil
}

// printTree recursively prints an Ingredient's value tree, descending into
// Container, Library, Map, and Header children. It does not descend into
// Zip, since doing so unconditionally would defeat the point of lazy
// decompression; a Zip node is reported as-is.
func printTree(i ing.Ingredient, depth int) {
	indent := strings.Repeat("  ", depth)
	switch i.Kind() {
	case ing.KindContainer:
		c, err := ing.DecodeContainer(i)
		if err != nil {
			fmt.Printf("%s<container: error: %v>\n", indent, err)
			return
		}
		fmt.Printf("%sContainer[%d]\n", indent, c.Len())
		for _, child := range c.Children() {
			printTree(child, depth+1)
		}
	case ing.KindLibrary:
		l, err := ing.DecodeLibrary(i)
		if err != nil {
			fmt.Printf("%s<library: error: %v>\n", indent, err)
			return
		}
		fmt.Printf("%sLibrary%v\n", indent, l.Names())
	case ing.KindMap:
		m, err := ing.DecodeMap(i)
		if err != nil {
			fmt.Printf("%s<map: error: %v>\n", indent, err)
			return
		}
		fmt.Printf("%sMap[%d]\n", indent, len(m.Keys()))
		for _, k := range m.Keys() {
			fmt.Printf("%s  %d:\n", indent, k)
			printTree(m.Get(k), depth+2)
		}
	case ing.KindHeader:
		h, err := ing.DecodeHeader(i)
		if err != nil {
			fmt.Printf("%s<header: error: %v>\n", indent, err)
			return
		}
		fmt.Printf("%sHeader[%d]\n", indent, len(h.Keys()))
		for _, k := range h.Keys() {
			fmt.Printf("%s  %q:\n", indent, k)
			printTree(h.Get(k), depth+2)
		}
	case ing.KindZip:
		fmt.Printf("%sZip(%d compressed bytes)\n", indent, len(i.Payload()))
	case ing.KindBinary:
		b, err := ing.DecodeBytes(i)
		if err != nil {
			fmt.Printf("%s<binary: error: %v>\n", indent, err)
			return
		}
		fmt.Printf("%sBinary(hint=0x%X, %d bytes)\n", indent, b.Hint(), len(b.Data()))
	default:
		fmt.Printf("%s%s(%s)\n", indent, i.Kind(), ing.ToString(i))
	}
}
