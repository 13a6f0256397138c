// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"strings"
	"unicode"
)

// matchHeader matches # title, ## title, and ### title at s[i].
// Headers start their line, and the whitespace after the marker may
// include the newline, so "#\ntitle" is a header too.
func matchHeader(s string, i int, ctx context) (parsed, bool) {
	if ctx.noHeaders || ctx.at(s, i) != lineNothing {
		return parsed{}, false
	}
	level := 0
	j := i
	for j < len(s) && s[j] == '#' && level < 3 {
		j++
		level++
	}
	k := skipWhitespace(s, j)
	if k == j {
		return parsed{}, false
	}
	if k < len(s) && s[k] == '#' {
		// the title cannot open with another #, but with more than one
		// space between, the last one starts the title instead
		if k-j < 2 {
			return parsed{}, false
		}
		k--
	}
	title, end := lineAt(s, k)
	title = strings.TrimRightFunc(title, unicode.IsSpace)
	title = strings.TrimRight(title, "#")
	title = strings.TrimRightFunc(title, unicode.IsSpace)
	lv := level
	return parsed{
		end:   end,
		jobs:  []job{{title, ctx.child(s, i)}},
		build: func(inner []Markup) Node { return &Header{Level: lv, Inner: inner[0]} },
	}, true
}

// matchSubtext matches -# note at s[i]. Unlike headers, the marker
// must be followed by spaces on the same line.
func matchSubtext(s string, i int, ctx context) (parsed, bool) {
	if ctx.at(s, i) != lineNothing || !strings.HasPrefix(s[i:], "-#") {
		return parsed{}, false
	}
	j := skipSpaces(s, i+2)
	if j == i+2 {
		return parsed{}, false
	}
	if strings.HasPrefix(s[j:], "-#") {
		if j-(i+2) < 2 {
			return parsed{}, false
		}
		j--
	}
	title, end := lineAt(s, j)
	title = strings.TrimRightFunc(title, unicode.IsSpace)
	return parsed{
		end:   end,
		jobs:  []job{{title, ctx.child(s, i)}},
		build: func(inner []Markup) Node { return &Subtext{Inner: inner[0]} },
	}, true
}
