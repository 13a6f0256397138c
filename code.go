// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"strings"
)

// matchCode matches the backtick constructs at s[i], a ```codeblock```
// before an `inline span`.
func matchCode(s string, i int) (parsed, bool) {
	if m, ok := matchCodeblock(s, i); ok {
		return m, true
	}
	return matchInlineCode(s, i)
}

// matchCodeblock matches ``` + optional language line + content + ```.
// The language line is reconsidered as content when keeping it leaves
// no room for a close fence.
func matchCodeblock(s string, i int) (parsed, bool) {
	if !strings.HasPrefix(s[i:], "```") {
		return parsed{}, false
	}
	j := i + 3
	k := j
	for k < len(s) && isLangByte(s[k]) {
		k++
	}
	if k < len(s) && s[k] == '\n' {
		if m, ok := codeblockBody(s, i, s[j:k], k+1); ok {
			return m, true
		}
	}
	return codeblockBody(s, i, "", j)
}

// codeblockBody finds the earliest close fence after at least one
// content character, starting at s[j].
func codeblockBody(s string, i int, lang string, j int) (parsed, bool) {
	if j >= len(s) {
		return parsed{}, false
	}
	n := strings.Index(s[j+1:], "```")
	if n < 0 {
		return parsed{}, false
	}
	content := s[j : j+1+n]
	return parsed{
		end:  j + 1 + n + 3,
		node: &Codeblock{Language: lang, Content: strings.TrimSpace(content)},
	}, true
}

// matchInlineCode matches `content` or ``content``, preferring the
// double fence. The close fence is the first same-length backtick run
// bounded by non-backticks.
func matchInlineCode(s string, i int) (parsed, bool) {
	if m, ok := inlineCode(s, i, 2); ok {
		return m, true
	}
	return inlineCode(s, i, 1)
}

func inlineCode(s string, i int, fence int) (parsed, bool) {
	for k := 0; k < fence; k++ {
		if i+k >= len(s) || s[i+k] != '`' {
			return parsed{}, false
		}
	}
	j := i + fence
	for k := j + 1; k+fence <= len(s); k++ {
		if s[k] != '`' || s[k-1] == '`' {
			continue
		}
		if fence == 2 && s[k+1] != '`' {
			continue
		}
		if k+fence < len(s) && s[k+fence] == '`' {
			continue
		}
		content := s[j:k]
		if fence == 2 {
			content = stripCodePadding(content)
		}
		return parsed{end: k + fence, node: &InlineCode{Content: content}}, true
	}
	return parsed{}, false
}

// stripCodePadding undoes the space of padding the renderer adds when
// double-fenced content touches a backtick at either edge.
func stripCodePadding(c string) string {
	t := strings.Trim(c, " ")
	if t == "" {
		return c
	}
	if t[0] == '`' {
		c = strings.TrimPrefix(c, " ")
	}
	if t[len(t)-1] == '`' {
		c = strings.TrimSuffix(c, " ")
	}
	return c
}
