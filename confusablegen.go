// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// Confusablegen converts the Unicode confusables table into the
// rune-folding map the link validator uses. Only mappings from a
// single non-ASCII character to a single printable ASCII character
// survive the conversion; the validator has no use for the rest.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
)

var outfile = flag.String("o", "", "write output to `file`")

func main() {
	log.SetFlags(0)
	log.SetPrefix("confusablegen: ")
	flag.Parse()

	resp, err := http.Get("https://www.unicode.org/Public/security/latest/confusables.txt")
	if err != nil {
		log.Fatal(err)
	}
	if resp.StatusCode != 200 {
		log.Fatal(resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatal(err)
	}

	version := "unknown"
	fold := make(map[rune]rune)
	for _, line := range strings.Split(string(data), "\n") {
		if v, ok := strings.CutPrefix(line, "# Version:"); ok {
			version = strings.TrimSpace(v)
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		f := strings.Split(line, ";")
		if len(f) < 3 {
			continue
		}
		src, err := strconv.ParseUint(strings.TrimSpace(f[0]), 16, 32)
		if err != nil {
			continue
		}
		targets := strings.Fields(f[1])
		if len(targets) != 1 {
			continue
		}
		dst, err := strconv.ParseUint(targets[0], 16, 32)
		if err != nil {
			log.Fatalf("bad target in line: %s", line)
		}
		if src < 0x80 || src > 0xffff {
			// The scripts that show up in phishing labels are all in
			// the basic plane; the math alphabets and the like are not
			// worth four thousand table entries.
			continue
		}
		if dst < 0x20 || dst > 0x7e {
			continue
		}
		fold[rune(src)] = rune(dst)
	}

	var srcs []rune
	for r := range fold {
		srcs = append(srcs, r)
	}
	sort.Slice(srcs, func(i, j int) bool { return srcs[i] < srcs[j] })

	var buf bytes.Buffer
	buf.WriteString(hdr)
	fmt.Fprintf(&buf, "// Unicode security data version %s.\n", version)
	fmt.Fprintf(&buf, "var confusableFold = map[rune]rune{\n")
	for _, r := range srcs {
		fmt.Fprintf(&buf, "\t0x%04x: %q,\n", r, fold[r])
	}
	fmt.Fprintf(&buf, "}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("reformatting output: %v", err)
	}

	if *outfile != "" {
		if err := os.WriteFile(*outfile, src, 0666); err != nil {
			log.Fatal(err)
		}
	} else {
		os.Stdout.Write(src)
	}
}

var hdr = `// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate go run confusablegen.go -o confusabledata.go

package discordmd

// confusableFold maps characters confusable with printable ASCII to
// the ASCII they imitate, one character to one character.
`
