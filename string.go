// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/nlnwa/whatwg-url/url"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Link targets may use http, https, or the client's own scheme.
// Everything else renders as plain text.
var allowedSchemes = map[string]bool{
	"http":    true,
	"https":   true,
	"discord": true,
}

// parseURL parses and normalizes a link target.
// Credentials are stripped, as the client strips them.
func parseURL(raw string) (*url.Url, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if !allowedSchemes[u.Scheme()] {
		return nil, fmt.Errorf("scheme %s: not linkable", u.Scheme())
	}
	u.SetUsername("")
	u.SetPassword("")
	return u, nil
}

// urlString serializes u the way the client displays link targets,
// which is not the WHATWG href serialization: the path, query, and
// fragment are kept as parsed, and the scheme-relative ambiguity is
// resolved by dropping the slashes instead of escaping the path.
func urlString(u *url.Url) string {
	var b strings.Builder
	path := u.Pathname()
	b.WriteString(u.Protocol())
	if !originNull(u.Scheme()) || !strings.HasPrefix(path, "//") {
		b.WriteString("//")
		if user := u.Username(); user != "" {
			b.WriteString(user)
			if pass := u.Password(); pass != "" {
				b.WriteByte(':')
				b.WriteString(pass)
			}
			b.WriteByte('@')
		}
		b.WriteString(u.Host())
	}
	b.WriteString(path)
	b.WriteString(u.Search())
	b.WriteString(u.Hash())
	return b.String()
}

// originNull reports whether a URL with this scheme has a null origin.
// Only the special schemes of the WHATWG URL standard have origins,
// and file URLs, though special, do not.
func originNull(scheme string) bool {
	switch scheme {
	case "http", "https", "ws", "wss", "ftp":
		return false
	}
	return true
}

// invisibles are the format characters stripped from link labels and
// titles before validation: soft hyphens, zero-width spaces, joiner
// controls, bidi controls, and byte order marks.
// U+200D stays; stripping it would break emoji sequences.
var invisibles = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00ad, Hi: 0x00ad, Stride: 1}, // soft hyphen
		{Lo: 0x034f, Hi: 0x034f, Stride: 1}, // combining grapheme joiner
		{Lo: 0x200b, Hi: 0x200c, Stride: 1}, // zero width space, non-joiner
		{Lo: 0x200e, Hi: 0x200f, Stride: 1}, // LRM, RLM
		{Lo: 0x202a, Hi: 0x202e, Stride: 1}, // bidi embedding controls
		{Lo: 0x2060, Hi: 0x2064, Stride: 1}, // word joiner, invisible operators
		{Lo: 0x2066, Hi: 0x206f, Stride: 1}, // bidi isolates, deprecated format
		{Lo: 0xfeff, Hi: 0xfeff, Stride: 1}, // byte order mark
	},
}

// stripInvisible removes the characters in invisibles from s.
func stripInvisible(s string) string {
	out, _, err := transform.String(runes.Remove(runes.In(invisibles)), s)
	if err != nil {
		return s
	}
	return out
}

// foldConfusables maps characters that imitate ASCII onto the ASCII
// they imitate, so that "раураl.com" cannot pose as a label made of
// ordinary text. The table is generated; see confusablegen.go.
func foldConfusables(s string) string {
	out, _, err := transform.String(runes.Map(foldConfusable), s)
	if err != nil {
		return s
	}
	return out
}

func foldConfusable(r rune) rune {
	if f, ok := confusableFold[r]; ok {
		return f
	}
	return r
}

// cleanLink is stripInvisible and foldConfusables in one pass,
// the normalization the link validator applies before judging text.
func cleanLink(s string) string {
	t := transform.Chain(runes.Remove(runes.In(invisibles)), runes.Map(foldConfusable))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
