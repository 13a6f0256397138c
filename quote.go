// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"strings"
)

// matchQuote matches "> line" runs and ">>> rest" blocks at s[i].
// Quotes start their line but tolerate leading spaces, which stay
// outside as text. Quotes do not nest.
func matchQuote(s string, i int, ctx context) (parsed, bool) {
	if ctx.inQuote || ctx.at(s, i) == lineText {
		return parsed{}, false
	}
	child := ctx.child(s, i)
	child.inQuote = true
	build := func(inner []Markup) Node { return &Quote{Inner: inner[0]} }
	if strings.HasPrefix(s[i:], ">>> ") {
		body := trimRightSpaces(s[i+4:])
		return parsed{end: len(s), jobs: []job{{body, child}}, build: build}, true
	}
	if !strings.HasPrefix(s[i:], "> ") {
		return parsed{}, false
	}
	var lines []string
	j := i
	for {
		line, end := lineAt(s, j+2)
		lines = append(lines, line)
		j = end
		if !strings.HasPrefix(s[j:], "> ") {
			break
		}
	}
	body := trimRightSpaces(strings.Join(lines, "\n"))
	return parsed{end: j, jobs: []job{{body, child}}, build: build}, true
}
