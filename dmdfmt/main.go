// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Dmdfmt canonicalizes Discord message markup.
//
// Usage:
//
//	dmdfmt [-d] [-w] [file...]
//
// Dmdfmt reads the named files, or else standard input, as Discord
// messages and reprints them in canonical form to standard output.
//
// The -d flag specifies to display diffs instead of the canonical
// form. The -w flag specifies to rewrite the files in place.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	flag "github.com/spf13/pflag"

	"rsc.io/discordmd"
)

var (
	dflag = flag.BoolP("diff", "d", false, "display diffs instead of writing canonical markup")
	wflag = flag.BoolP("write", "w", false, "write canonical markup back to files")
	exit  = 0
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: dmdfmt [-d] [-w] [file...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("dmdfmt: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		convert(data, "")
	} else {
		for _, file := range flag.Args() {
			data, err := os.ReadFile(file)
			if err != nil {
				log.Print(err)
				exit = 1
				continue
			}
			convert(data, file)
		}
	}
	os.Exit(exit)
}

func convert(data []byte, file string) {
	out := discordmd.Format(discordmd.Parse(string(data)))
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if *dflag {
		if out != string(data) {
			diff(string(data), out, file)
		}
		return
	}
	if *wflag && file != "" {
		if err := os.WriteFile(file, []byte(out), 0666); err != nil {
			log.Print(err)
			exit = 1
			return
		}
	} else {
		os.Stdout.WriteString(out)
	}
}

func diff(before, after, file string) {
	if file == "" {
		file = "stdin"
	}
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: file + ".orig",
		ToFile:   file,
		Context:  3,
	})
	if err != nil {
		log.Print(err)
		exit = 1
		return
	}
	os.Stdout.WriteString(text)
}
