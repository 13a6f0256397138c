// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// shrug is the one emoticon the scanner recognizes, so that its
// backslash survives escape handling.
const shrug = `¯\_(ツ)_/¯`

const (
	zwj        = 0x200d
	vs16       = 0xfe0f
	keycapMark = 0x20e3
)

// matchCustomEmoji matches <:name:id> and <a:name:id> at the < at s[i].
func matchCustomEmoji(s string, i int) (parsed, bool) {
	j := i + 1
	animated := false
	if j < len(s) && s[j] == 'a' {
		animated = true
		j++
	}
	if j >= len(s) || s[j] != ':' {
		return parsed{}, false
	}
	j++
	k := j
	for k < len(s) && isWordByte(s[k]) {
		k++
	}
	if k == j || k >= len(s) || s[k] != ':' {
		return parsed{}, false
	}
	id, end, ok := parseID(s, k+1)
	if !ok {
		return parsed{}, false
	}
	return parsed{end: end, node: &CustomEmoji{Name: s[j:k], ID: id, Animated: animated}}, true
}

// matchRune handles positions where no ASCII construct starts: the
// shrug emoticon, then unicode emoji. The ASCII keycap bases #, *, and
// the digits come through here too, after their own matchers fail.
func matchRune(s string, i int) (parsed, bool) {
	if strings.HasPrefix(s[i:], shrug) {
		return parsed{end: i + len(shrug), lit: shrug}, true
	}
	if cluster, end, ok := emojiAt(s, i); ok {
		return parsed{end: end, node: &UnicodeEmoji{Emoji: cluster}}, true
	}
	return parsed{}, false
}

// emojiAt reports the emoji grapheme cluster starting at s[i:], if any.
func emojiAt(s string, i int) (cluster string, end int, ok bool) {
	r, _ := utf8.DecodeRuneInString(s[i:])
	if !unicode.Is(emoji, r) {
		return "", 0, false
	}
	g, _, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
	if !isEmojiGrapheme(g) {
		return "", 0, false
	}
	return g, i + len(g), true
}

// isEmojiGrapheme reports whether a single grapheme cluster renders
// as emoji: flags, keycaps, tag sequences, and ZWJ joins of bases
// with optional variation selectors and skin tones.
func isEmojiGrapheme(g string) bool {
	rs := []rune(g)
	n := len(rs)
	if n == 0 {
		return false
	}
	if rs[n-1] == keycapMark {
		return n <= 3 && (rs[0] == '#' || rs[0] == '*' || '0' <= rs[0] && rs[0] <= '9')
	}
	if isRegional(rs[0]) {
		return n == 1 || n == 2 && isRegional(rs[1])
	}
	if n > 1 && isTag(rs[1]) {
		return rs[0] == 0x1f3f4 && rs[n-1] == 0xe007f
	}
	parts := 0
	for i := 0; i < n; {
		j := i
		for j < n && rs[j] != zwj {
			j++
		}
		if !isEmojiElement(rs[i:j], i == 0 && j == n) {
			return false
		}
		parts++
		i = j + 1
		if i == n { // trailing ZWJ
			return false
		}
	}
	return parts > 0
}

// isEmojiElement reports whether rs is one emoji base with optional
// VS16 and skin tone. A lone unqualified element needs default emoji
// presentation; joined, modified, and selected forms do not.
func isEmojiElement(rs []rune, lone bool) bool {
	if len(rs) == 0 {
		return false
	}
	base := rs[0]
	if !unicode.Is(emoji, base) {
		return false
	}
	qualified := false
	for _, r := range rs[1:] {
		switch {
		case r == vs16:
			qualified = true
		case unicode.Is(emojiModifier, r):
			if !unicode.Is(emojiModifierBase, base) {
				return false
			}
			qualified = true
		default:
			return false
		}
	}
	if lone && !qualified {
		return unicode.Is(emojiPresentation, base)
	}
	return true
}

func isRegional(r rune) bool { return 0x1f1e6 <= r && r <= 0x1f1ff }

func isTag(r rune) bool { return 0xe0020 <= r && r <= 0xe007f }
