// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// The inputs in testdata are hand-written; the dumps are derived.
// After a deliberate parser or dump change, go test -run Test -update
// rewrites the dump halves in place.
var update = flag.Bool("update", false, "rewrite testdata dump files from the current parser")

func Test(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txt"), func(t *testing.T) {
			a, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}

			var ncase, npass int
			for i := 0; i+2 <= len(a.Files); i += 2 {
				ncase++
				md := a.Files[i]
				tree := a.Files[i+1]
				name := strings.TrimSuffix(md.Name, ".md")
				if name != strings.TrimSuffix(tree.Name, ".dump") {
					t.Fatalf("mismatched file pair: %s and %s", md.Name, tree.Name)
				}

				t.Run(name, func(t *testing.T) {
					d := dump(Parse(decode(string(md.Data))))
					if *update {
						a.Files[i+1].Data = []byte(d + "\n")
						npass++
						return
					}
					want := strings.TrimSuffix(string(tree.Data), "\n")
					if d != want {
						t.Fatalf("input %q\nhave %s\nwant %s", md.Data, d, want)
					}
					npass++
				})
			}
			if *update {
				if err := os.WriteFile(file, txtar.Format(a), 0666); err != nil {
					t.Fatal(err)
				}
				return
			}
			t.Logf("%d/%d pass", npass, ncase)
		})
	}
}

// decode undoes the control-character armor used in testdata files,
// so that inputs with trailing spaces, carriage returns, NULs, or no
// final newline survive editors and version control.
func decode(s string) string {
	s = strings.ReplaceAll(s, "^J\n", "\n")
	s = strings.ReplaceAll(s, "^M", "\r")
	s = strings.ReplaceAll(s, "^D\n", "")
	s = strings.ReplaceAll(s, "^@", "\x00")
	return s
}

// corpus returns the decoded inputs of every testdata case.
// Tests that check global properties of Parse and Format reuse it.
func corpus(t testing.TB) []string {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	var inputs []string
	for _, file := range files {
		a, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i+2 <= len(a.Files); i += 2 {
			inputs = append(inputs, decode(string(a.Files[i].Data)))
		}
	}
	return inputs
}
