// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"unicode"
	"unicode/utf8"
)

// matchEmph matches the five delimiter styles at s[i]: *italic*,
// **bold**, _italic_, __underline__, ~~strikethrough~~, ||spoiler||.
// For * and _ the doubled form is tried alongside the single one and
// wins only by covering strictly more input.
func matchEmph(s string, i int, ctx context) (parsed, bool) {
	switch s[i] {
	case '*', '_':
		single, okS := emphSingle(s, i, ctx, s[i])
		double, okD := emphDouble(s, i, ctx, s[i])
		if okD && (!okS || double.end > single.end) {
			return double, true
		}
		return single, okS
	}
	return emphBlind(s, i, ctx, s[i])
}

// emphSingle matches *content* or _content_. Content is a run of
// units, closed as early as a valid closing delimiter allows.
func emphSingle(s string, i int, ctx context, d byte) (parsed, bool) {
	j := i + 1
	if j >= len(s) {
		return parsed{}, false
	}
	if d == '*' {
		// asterisk italics cannot open before whitespace
		if r, _ := utf8.DecodeRuneInString(s[j:]); unicode.IsSpace(r) {
			return parsed{}, false
		}
	}
	units := 0
	for j < len(s) {
		if units > 0 && s[j] == d && closeSingle(s, i+1, j, d) {
			return parsed{
				end:   j + 1,
				jobs:  []job{{s[i+1 : j], ctx.child(s, i)}},
				build: func(inner []Markup) Node { return &Italic{Inner: inner[0]} },
			}, true
		}
		n := italicUnit(s, j, d)
		if n == 0 {
			return parsed{}, false
		}
		j += n
		units++
	}
	return parsed{}, false
}

// closeSingle reports whether the delimiter at s[j] validly closes an
// italic span whose content starts at start.
func closeSingle(s string, start, j int, d byte) bool {
	if j+1 < len(s) {
		if d == '*' && s[j+1] == '*' {
			return false
		}
		// a single _ cannot close before a word byte, so that
		// snake_case survives
		if d == '_' && isWordByte(s[j+1]) {
			return false
		}
	}
	if d != '*' {
		return true
	}
	// asterisk italics swallow up to two trailing spaces, but cannot
	// close right after whitespace beyond that
	k := 0
	for j-1-k >= start && s[j-1-k] == ' ' {
		k++
	}
	if k > 2 || j-k == start {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[start : j-k])
	return !unicode.IsSpace(r)
}

// emphDouble matches **content** or __content__, closing at the
// earliest doubled delimiter not followed by a third.
func emphDouble(s string, i int, ctx context, d byte) (parsed, bool) {
	if i+1 >= len(s) || s[i+1] != d {
		return parsed{}, false
	}
	build := func(inner []Markup) Node { return &Bold{Inner: inner[0]} }
	if d == '_' {
		build = func(inner []Markup) Node { return &Underline{Inner: inner[0]} }
	}
	j := i + 2
	units := 0
	for j < len(s) {
		if units > 0 && s[j] == d && j+1 < len(s) && s[j+1] == d && !(j+2 < len(s) && s[j+2] == d) {
			return parsed{
				end:   j + 2,
				jobs:  []job{{s[i+2 : j], ctx.child(s, i)}},
				build: build,
			}, true
		}
		j += doubleUnit(s, j)
		units++
	}
	return parsed{}, false
}

// emphBlind matches ~~content~~ and ||content||, which see neither
// escapes nor delimiter lookahead: the earliest double closes.
func emphBlind(s string, i int, ctx context, d byte) (parsed, bool) {
	if i+1 >= len(s) || s[i+1] != d {
		return parsed{}, false
	}
	build := func(inner []Markup) Node { return &Strikethrough{Inner: inner[0]} }
	if d == '|' {
		build = func(inner []Markup) Node { return &Spoiler{Inner: inner[0]} }
	}
	for j := i + 3; j+1 < len(s); j++ {
		if s[j] == d && s[j+1] == d {
			return parsed{
				end:   j + 2,
				jobs:  []job{{s[i+2 : j], ctx.child(s, i)}},
				build: build,
			}, true
		}
	}
	return parsed{}, false
}

// italicUnit reports the length of the next content unit for a
// single-delimiter style: an escape pair, a doubled delimiter, or one
// ordinary rune. A bare delimiter is no unit and kills the candidate.
// A bare backslash is an ordinary rune.
func italicUnit(s string, j int, d byte) int {
	switch c := s[j]; {
	case c == '\\':
		if n := escapePairLen(s, j); n > 0 {
			return n
		}
		return 1
	case c == d:
		if j+1 < len(s) && s[j+1] == d {
			return 2
		}
		return 0
	case c < utf8.RuneSelf:
		return 1
	}
	_, size := utf8.DecodeRuneInString(s[j:])
	return size
}

// doubleUnit is italicUnit for the doubled styles, whose content can
// hold bare delimiters.
func doubleUnit(s string, j int) int {
	if s[j] == '\\' {
		if n := escapePairLen(s, j); n > 0 {
			return n
		}
		return 1
	}
	if s[j] < utf8.RuneSelf {
		return 1
	}
	_, size := utf8.DecodeRuneInString(s[j:])
	return size
}
