// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"strconv"
	"strings"
)

// maxListDepth is how deep lists nest before bullets turn literal.
const maxListDepth = 11

// maxListStart is the highest number an ordered list can start at.
const maxListStart = 1_000_000_000

// matchList matches a bulleted or numbered list at s[i]. A bullet is
// -, *, or digits-and-dot, plus at least one space; items run to the
// next column-zero bullet, or to a line that starts with neither a
// bullet nor a space, which ends the list.
func matchList(s string, i int, ctx context) (parsed, bool) {
	if ctx.listDepth >= maxListDepth || ctx.at(s, i) == lineText {
		return parsed{}, false
	}
	start, w := listBullet(s, i)
	if w == 0 {
		return parsed{}, false
	}
	child := context{
		lineStart:   lineNothing,
		inQuote:     ctx.inQuote,
		listDepth:   ctx.listDepth + 1,
		noHeaders:   true,
		inLink:      ctx.inLink,
		testingLink: ctx.testingLink,
	}
	body, next, more := listItem(s, i+w)
	if body == "" {
		return parsed{}, false
	}
	jobs := []job{{dedent(body, w), child}}
	for more {
		_, w2 := listBullet(s, next)
		body, n2, m2 := listItem(s, next+w2)
		if body == "" {
			// a bullet with nothing after it does not start an item;
			// the list ends before the separating newline
			next--
			break
		}
		jobs = append(jobs, job{dedent(body, w2), child})
		next, more = n2, m2
	}
	st := start
	return parsed{
		end:  next,
		jobs: jobs,
		build: func(items []Markup) Node {
			return &List{Start: st, Items: items}
		},
	}, true
}

// listBullet parses a bullet at s[i]. It reports the list start this
// bullet implies (0 for unordered) and the bullet's width including
// its trailing spaces, or width 0 for no bullet.
func listBullet(s string, i int) (start, width int) {
	j := i
	switch {
	case j < len(s) && (s[j] == '-' || s[j] == '*'):
		j++
	case j < len(s) && isDigit(s[j]):
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j >= len(s) || s[j] != '.' {
			return 0, 0
		}
		start = listStart(s[i:j])
		j++
	default:
		return 0, 0
	}
	k := skipSpaces(s, j)
	if k == j {
		return 0, 0
	}
	return start, k - i
}

// listStart clamps a bullet number to [1, maxListStart].
func listStart(digits string) int {
	if len(digits) > 10 {
		return maxListStart
	}
	n, _ := strconv.Atoi(digits)
	return max(1, min(n, maxListStart))
}

// listItem scans an item body starting at s[j]: at least one
// character, up to the end of input or a line the item cannot
// swallow. more reports whether another bullet follows immediately.
func listItem(s string, j int) (body string, next int, more bool) {
	if j >= len(s) {
		return "", j, false
	}
	k := j + 1
	for k < len(s) {
		if s[k] == '\n' {
			if bulletAt(s, k+1) {
				return s[j:k], k + 1, true
			}
			if k+1 >= len(s) || s[k+1] != ' ' {
				return s[j:k], k + 1, false
			}
		}
		k++
	}
	return s[j:], k, false
}

func bulletAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	_, w := listBullet(s, i)
	return w > 0
}

// dedent strips up to width leading spaces from every line of an item
// body, undoing the indentation its bullet created.
func dedent(body string, width int) string {
	if !strings.Contains(body, "\n") {
		return body
	}
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		n := 0
		for n < len(line) && n < width && line[n] == ' ' {
			n++
		}
		lines[i] = line[n:]
	}
	return strings.Join(lines, "\n")
}
