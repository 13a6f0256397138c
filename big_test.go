// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
)

var rep = strings.Repeat

func repf(f func(int) string, n int) string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = f(i)
	}
	return strings.Join(out, "")
}

// bigTests hold inputs that have made chat parsers quadratic: long
// runs of failed openers, huge block bodies, and deep nesting. An
// empty out means the input reformats to itself minus a final newline.
var bigTests = []struct {
	name string
	in   string
	out  string
}{
	{
		"many underscore openers with no closers",
		rep("_a ", 50000),
		rep(`\_a `, 50000),
	},
	{
		"many scheme scans with no url",
		rep("x:", 40000),
		rep(`x\:`, 40000),
	},
	{
		"many mention openers with no mention",
		rep("<@", 50000),
		rep(`\<\@`, 50000),
	},
	{
		"one letter run",
		rep("http", 50000),
		"",
	},
	{
		"quote of many lines",
		rep("> a\n", 50000),
		"",
	},
	{
		"list of many items",
		rep("- a\n", 50000),
		"",
	},
	{
		"deeply nested list",
		repf(func(x int) string { return rep("  ", x) + "- a\n" }, 500),
		"",
	},
	{
		"many headers",
		rep("# a\n", 30000),
		strings.TrimSuffix(rep("# a #\n", 30000), "\n"),
	},
	{
		"long numbered list",
		repf(func(x int) string { return strconv.Itoa(x+3) + ". a\n" }, 20000),
		"",
	},
	{
		"giant codeblock",
		"```\n" + rep("a\n", 100000) + "```",
		"",
	},
	{
		"many code spans",
		rep("e`e`", 25000),
		"",
	},
	{
		"many mentions",
		rep("<@12345>", 30000),
		"",
	},
}

func compress(s string) string {
	var out []byte
	start := 0
S:
	for i := 0; i+4 < len(s); i++ {
		c := s[i]
		for j := i + 1; j < i+100 && j < len(s); j++ {
			if s[j] == c {
				n := 1
				w := j - i
				for j+w <= len(s) && s[i:i+w] == s[j:j+w] {
					j += w
					n++
				}
				if n > 2 {
					out = append(out, s[start:i]...)
					out = fmt.Appendf(out, "«%d:%s»", n, s[i:i+w])
					start = j
					i = start - 1
					continue S
				}
			}
		}
	}
	out = append(out, s[start:]...)
	return string(out)
}

func TestBig(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in -short mode")
	}
	for _, tt := range bigTests {
		t.Run(tt.name, func(t *testing.T) {
			out := Format(Parse(tt.in))
			want := tt.out
			if want == "" {
				want = strings.TrimSuffix(tt.in, "\n")
			}
			if out != want {
				t.Fatalf("%s: Format(Parse(%q)):\nhave %q\nwant %q", tt.name, compress(tt.in), compress(out), compress(want))
			}
		})
	}
}

func bench(b *testing.B, text string) {
	for i := 0; i < b.N; i++ {
		_ = Format(Parse(text))
	}
	b.SetBytes(int64(len(text)))
}

func BenchmarkPlain(b *testing.B) {
	bench(b, rep("lorem ipsum dolor sit amet ", 500))
}

func BenchmarkEmph(b *testing.B) {
	bench(b, rep("*a* _b_ **c** ~~d~~ ", 500))
}

func BenchmarkQuote(b *testing.B) {
	bench(b, rep("> a\n", 1000))
}

func BenchmarkDeepList(b *testing.B) {
	bench(b, repf(func(x int) string { return rep("  ", x) + "- a\n" }, 100))
}

func BenchmarkMentions(b *testing.B) {
	bench(b, rep("<@1> <#2> <@&3> <:x:4> <t:5:R> ", 300))
}
