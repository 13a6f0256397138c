// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// Emojigen converts the Unicode emoji-data table into the range
// tables the parser matches emoji graphemes with.
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

var properties = []struct {
	name   string
	goName string
	doc    string
}{
	{"Emoji", "emoji", `// emoji is the set of characters with the Emoji property, the
// characters that can begin an emoji grapheme. Note that it includes
// the ASCII digits, #, and *, which are emoji only in keycap form.`},
	{"Emoji_Presentation", "emojiPresentation", `// emojiPresentation is the set of characters that render as emoji by
// default, with no variation selector.`},
	{"Emoji_Modifier", "emojiModifier", `// emojiModifier is the skin tone modifiers.`},
	{"Emoji_Modifier_Base", "emojiModifierBase", `// emojiModifierBase is the set of characters a skin tone modifier can
// follow.`},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("emojigen: ")
	flag.Parse()

	resp, err := http.Get("https://unicode.org/Public/UCD/latest/ucd/emoji/emoji-data.txt")
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
	ranges := make(map[string][][2]rune)
	for _, line := range strings.Split(string(data), "\n") {
		if v, ok := strings.CutPrefix(line, "# Used with Emoji Version "); ok {
			version, _, _ = strings.Cut(strings.TrimSpace(v), " ")
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		rng, prop, ok := strings.Cut(line, ";")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		lo, hi, err := parseRange(strings.TrimSpace(rng))
		if err != nil {
			log.Fatalf("bad range in line: %s", line)
		}
		ranges[prop] = append(ranges[prop], [2]rune{lo, hi})
	}

	var buf bytes.Buffer
	buf.WriteString(hdr)
	fmt.Fprintf(&buf, "// Generated from the Unicode emoji-data file, emoji version %s.\n", version)
	fmt.Fprintf(&buf, "const emojiVersion = %q\n", version)
	for _, p := range properties {
		rs := merge(ranges[p.name])
		if len(rs) == 0 {
			log.Fatalf("no ranges for property %s", p.name)
		}
		fmt.Fprintf(&buf, "\n%s\nvar %s = &unicode.RangeTable{\n", p.doc, p.goName)
		latin := 0
		var r16, r32 [][2]rune
		for _, r := range rs {
			if r[1] <= 0xffff {
				r16 = append(r16, r)
				if r[1] <= 0xff {
					latin++
				}
			} else {
				r32 = append(r32, r)
			}
		}
		if len(r16) > 0 {
			fmt.Fprintf(&buf, "\tR16: []unicode.Range16{\n")
			for _, r := range r16 {
				fmt.Fprintf(&buf, "\t\t{0x%04x, 0x%04x, 1},\n", r[0], r[1])
			}
			fmt.Fprintf(&buf, "\t},\n")
		}
		if len(r32) > 0 {
			fmt.Fprintf(&buf, "\tR32: []unicode.Range32{\n")
			for _, r := range r32 {
				fmt.Fprintf(&buf, "\t\t{0x%04x, 0x%04x, 1},\n", r[0], r[1])
			}
			fmt.Fprintf(&buf, "\t},\n")
		}
		if latin > 0 {
			fmt.Fprintf(&buf, "\tLatinOffset: %d,\n", latin)
		}
		fmt.Fprintf(&buf, "}\n")
	}

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

func parseRange(s string) (lo, hi rune, err error) {
	first, last, ok := strings.Cut(s, "..")
	if !ok {
		last = first
	}
	l, err := strconv.ParseUint(first, 16, 32)
	if err != nil {
		return 0, 0, err
	}
	h, err := strconv.ParseUint(last, 16, 32)
	if err != nil {
		return 0, 0, err
	}
	return rune(l), rune(h), nil
}

// merge sorts ranges and joins the adjacent and overlapping ones.
func merge(rs [][2]rune) [][2]rune {
	sort.Slice(rs, func(i, j int) bool { return rs[i][0] < rs[j][0] })
	var out [][2]rune
	for _, r := range rs {
		if n := len(out); n > 0 && r[0] <= out[n-1][1]+1 {
			if r[1] > out[n-1][1] {
				out[n-1][1] = r[1]
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

var hdr = `// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate go run emojigen.go -o emojidata.go

package discordmd

import "unicode"

`
