// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package main

import (
	"flag"
	"fmt"
	"log/slog"

	ing "github.com/mealkit/ingredient"
)

var zipFlags = flag.NewFlagSet("zip", flag.ContinueOnError)
var unzipFlags = flag.NewFlagSet("unzip", flag.ContinueOnError)

var (
	zipIn  = zipFlags.String("in", "-", "input file, or - for stdin")
	zipOut = zipFlags.String("out", "-", "output file, or - for stdout")
)

var (
	unzipIn  = unzipFlags.String("in", "-", "input file, or - for stdin")
	unzipOut = unzipFlags.String("out", "-", "output file, or - for stdout")
)

func runZip() error {
	in, err := openInput(*zipIn)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	i, err := ing.ReadIngredient(in)
	if err != nil {
		return fmt.Errorf("reading record: %w", err)
	}

	zipped := ing.NewCompressed(i)
	slog.Info("compressed record", "before", i.Size(), "after", zipped.Size())

	out, err := createOutput(*zipOut)
	if err != nil {
		return fmt.Errorf("opening output: %w", err)
	}
	defer out.Close()
	return ing.WriteIngredient(out, zipped.Ingredient)
}

func runUnzip() error {
	in, err := openInput(*unzipIn)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	i, err := ing.ReadIngredient(in)
	if err != nil {
		return fmt.Errorf("reading record: %w", err)
	}

	compressed, err := ing.DecodeCompressed(i)
	if err != nil {
		return fmt.Errorf("decoding zip record: %w", err)
	}
	inner, err := compressed.Inner()
	if err != nil {
		return fmt.Errorf("decompressing: %w", err)
	}
	slog.Info("decompressed record", "before", i.Size(), "after", inner.Size())

	out, err := createOutput(*unzipOut)
	if err != nil {
		return fmt.Errorf("opening output: %w", err)
	}
	defer out.Close()
	return ing.WriteIngredient(out, inner)
}
