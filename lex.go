// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"unicode"
	"unicode/utf8"
)

// isPunct reports whether c is ASCII punctuation.
func isPunct(c byte) bool {
	return '!' <= c && c <= '/' || ':' <= c && c <= '@' || '[' <= c && c <= '`' || '{' <= c && c <= '~'
}

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isLetterDigit reports whether c is an ASCII letter or digit.
func isLetterDigit(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9'
}

// isWordByte reports whether c is an ASCII letter, digit, or underscore.
// A single _ cannot close italics before a word byte, and custom emoji
// names are limited to word bytes.
func isWordByte(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' || c == '_'
}

// isSchemeByte reports whether c may appear in a URL scheme after its
// first letter.
func isSchemeByte(c byte) bool {
	return isLetterDigit(c) || c == '+' || c == '.' || c == '-'
}

// isLangByte reports whether c may appear in a codeblock language tag.
func isLangByte(c byte) bool {
	return isLetterDigit(c) || c == '_' || c == '-' || c == '+' || c == '.'
}

// isUnicodePunct reports whether r is punctuation for the purposes of
// backslash escaping. This is not the same as unicode.IsPunct; it also
// includes unicode.Symbol, so that characters like <, $, and most emoji
// can be escaped.
func isUnicodePunct(r rune) bool {
	if r < 0x80 {
		return isPunct(byte(r))
	}
	return unicode.In(r, unicode.Punct, unicode.Symbol)
}

// skipSpaces returns i advanced past any plain spaces at the start of s[i:].
func skipSpaces(s string, i int) int {
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return i
}

// skipWhitespace returns i advanced past any Unicode whitespace at the
// start of s[i:], newlines included.
func skipWhitespace(s string, i int) int {
	for i < len(s) {
		c := s[i]
		if c < 0x80 {
			if c != ' ' && c != '\t' && c != '\n' && c != '\r' && c != '\v' && c != '\f' {
				break
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}
