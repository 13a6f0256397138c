// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// matchBareLink matches scheme://body starting at the letter at s[i].
// Unknown schemes still consume their span, demoted to literal text,
// so that nothing inside a pasted URL turns into markup. On failure
// the frame remembers how far the scheme scan got, keeping repeated
// scans over the same letters linear.
func (f *frame) matchBareLink(i int) (parsed, bool) {
	s := f.s
	j := i + 1
	for j < len(s) && isSchemeByte(s[j]) {
		j++
	}
	if !strings.HasPrefix(s[j:], "://") {
		f.schemeFail = j
		return parsed{}, false
	}
	body := linkBody(s, j+3)
	body = trimLinkBody(body)
	if len(body) < 2 {
		return parsed{}, false
	}
	span := peelParen(s[i : j+3+len(body)])
	end := i + len(span)
	u, err := parseURL(span)
	if err != nil {
		return parsed{end: end, lit: span}, true
	}
	return parsed{end: end, node: &Link{URL: u}}, true
}

// matchAngleLink matches <scheme://body>, a link with its embed
// suppressed. Bad schemes demote the whole span, brackets included.
func matchAngleLink(s string, i int) (parsed, bool) {
	j := i + 1
	if j >= len(s) || !isLetter(s[j]) {
		return parsed{}, false
	}
	k := j + 1
	for k < len(s) && isSchemeByte(s[k]) {
		k++
	}
	if !strings.HasPrefix(s[k:], "://") {
		return parsed{}, false
	}
	k += 3
	body := k
	for k < len(s) && s[k] != '>' {
		r, size := utf8.DecodeRuneInString(s[k:])
		if unicode.IsSpace(r) {
			return parsed{}, false
		}
		k += size
	}
	if k >= len(s) || k == body {
		return parsed{}, false
	}
	end := k + 1
	u, err := parseURL(s[j:k])
	if err != nil {
		return parsed{end: end, lit: s[i:end]}, true
	}
	return parsed{end: end, node: &Link{URL: u, Suppressed: true}}, true
}

// matchQualifiedLink matches [label](url), [label](<url>), and either
// with a quoted title after the url. The label must pass the link
// validator with something visible in it; failures that still match
// lexically demote the whole construct to text.
func matchQualifiedLink(s string, i int, ctx context) (parsed, bool) {
	label, j, ok := linkLabel(s, i)
	if !ok || j >= len(s) || s[j] != '(' {
		return parsed{}, false
	}
	target, title, end, suppressed, ok := linkTarget(s, j)
	if !ok {
		return parsed{}, false
	}
	span := s[i:end]
	cleaned := stripInvisible(label)
	if linkable(cleaned, true) != linkContentful {
		return parsed{end: end, lit: span}, true
	}
	titleText := ""
	if title != "" {
		t := stripInvisible(title)
		switch linkable(t, false) {
		case linkRejected:
			return parsed{end: end, lit: span}, true
		case linkContentful:
			titleText = t
		}
	}
	u, err := parseURL(target)
	if err != nil {
		return parsed{end: end, lit: span}, true
	}
	child := ctx.child(s, i)
	child.inLink = true
	sup := suppressed
	return parsed{
		end:  end,
		jobs: []job{{cleaned, child}},
		build: func(inner []Markup) Node {
			return &Link{URL: u, Inner: inner[0], Title: titleText, Suppressed: sup}
		},
	}, true
}

// linkBody scans a URL body: anything up to whitespace or a <.
func linkBody(s string, i int) string {
	j := i
	for j < len(s) {
		if s[j] == '<' {
			break
		}
		r, size := utf8.DecodeRuneInString(s[j:])
		if unicode.IsSpace(r) {
			break
		}
		j += size
	}
	return s[i:j]
}

// trimLinkBody drops the trailing punctuation a sentence hangs on a
// pasted URL.
func trimLinkBody(body string) string {
	return strings.TrimRight(body, `.,:;"']`)
}

// peelParen gives back one trailing close paren when the span's
// trailing )-run outnumbers all its open parens, so that a URL in
// parentheses reads right. One paren at most.
func peelParen(span string) string {
	if !strings.HasSuffix(span, ")") {
		return span
	}
	run := 0
	for run < len(span) && span[len(span)-1-run] == ')' {
		run++
	}
	if run > strings.Count(span, "(") {
		return span[:len(span)-1]
	}
	return span
}

// linkLabel scans the bracketed label at s[i]: brackets nest, and the
// first unmatched ] closes.
func linkLabel(s string, i int) (label string, next int, ok bool) {
	depth := 0
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return s[i+1 : j], j + 1, true
			}
			depth--
		}
	}
	return "", 0, false
}

// linkTarget scans the (url), (<url>), (url "title") part at the
// ( at s[j]. The url must contain :// to count as one at all.
func linkTarget(s string, j int) (target, title string, end int, suppressed, ok bool) {
	k := j + 1
	if k < len(s) && s[k] == '<' {
		suppressed = true
		k++
		t := k
		for k < len(s) && s[k] != '>' && s[k] != '\n' {
			k++
		}
		if k >= len(s) || s[k] != '>' {
			return
		}
		target = s[t:k]
		k++
	} else {
		t := k
		depth := 0
	scan:
		for k < len(s) {
			switch s[k] {
			case '(':
				depth++
			case ')':
				if depth == 0 {
					break scan
				}
				depth--
			case ' ', '\t', '\n':
				break scan
			}
			k++
		}
		target = s[t:k]
	}
	k = skipWhitespace(s, k)
	if k < len(s) && (s[k] == '"' || s[k] == '\'') {
		q := s[k]
		n := strings.IndexByte(s[k+1:], q)
		if n < 0 {
			return
		}
		title = s[k+1 : k+1+n]
		k = skipWhitespace(s, k+2+n)
	}
	if k >= len(s) || s[k] != ')' {
		return
	}
	if !strings.Contains(target, "://") {
		return
	}
	return target, title, k + 1, suppressed, true
}
