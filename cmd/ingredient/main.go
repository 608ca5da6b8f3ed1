// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

// ingredient is a command line tool for inspecting and transforming
// Ingredient-encoded records.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var flags = flag.NewFlagSet("root", flag.ContinueOnError)

func usage() {
	fmt.Fprintf(os.Stderr, `
Usage:
  ingredient [dump|zip|unzip|nav] [--] [options]

dump options:
%s
zip options:
%s
unzip options:
%s
nav options:
%s`, options(dumpFlags), options(zipFlags), options(unzipFlags), options(navFlags))
}

func options(flags *flag.FlagSet) string {
	var nameSize int
	flags.VisitAll(func(f *flag.Flag) {
		if len(f.Name) > nameSize {
			nameSize = len(f.Name)
		}
	})
	if nameSize < 4 {
		nameSize = 4
	}
	nameSize++

	var out string
	flags.VisitAll(func(f *flag.Flag) {
		out += fmt.Sprintf("  -%s%s%s\n", f.Name, strings.Repeat(" ", nameSize-len(f.Name)), f.Usage)
	})
	return out
}

func main() {
	if err := flags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(1)
	}

	sub := flags.Arg(0)
	var args []string
	if flags.NArg() > 1 {
		args = flags.Args()[1:]
		if flags.Arg(1) == "--" {
			args = flags.Args()[2:]
		}
	}

	switch sub {
	case "dump":
		if err := dumpFlags.Parse(args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			usage()
			os.Exit(1)
		}
		if err := dump(); err != nil {
			fmt.Fprintf(os.Stderr, "dump error: %v\n", err)
			os.Exit(2)
		}
	case "zip":
		if err := zipFlags.Parse(args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			usage()
			os.Exit(1)
		}
		if err := runZip(); err != nil {
			fmt.Fprintf(os.Stderr, "zip error: %v\n", err)
			os.Exit(2)
		}
	case "unzip":
		if err := unzipFlags.Parse(args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			usage()
			os.Exit(1)
		}
		if err := runUnzip(); err != nil {
			fmt.Fprintf(os.Stderr, "unzip error: %v\n", err)
			os.Exit(2)
		}
	case "nav":
		if err := navFlags.Parse(args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			usage()
			os.Exit(1)
		}
		if err := nav(); err != nil {
			fmt.Fprintf(os.Stderr, "nav error: %v\n", err)
			os.Exit(2)
		}
	default:
		if sub != "" {
			fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", sub)
		}
		usage()
		os.Exit(1)
	}
}
