// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"strconv"
	"strings"
	"unicode"
)

// A linkVerdict is what the validator thinks of proposed link text.
type linkVerdict int

const (
	linkRejected   linkVerdict = iota // holds something a label cannot
	linkEmpty                         // nothing visible
	linkContentful                    // fine
)

func (v linkVerdict) String() string {
	switch v {
	case linkRejected:
		return "rejected"
	case linkEmpty:
		return "empty"
	case linkContentful:
		return "contentful"
	}
	return "verdict(" + strconv.Itoa(int(v)) + ")"
}

// linkable judges whether text can serve as a link label or title.
// The text is normalized, parsed the way a label is parsed, and
// walked: anything that could pose as a different link, a mention, or
// a ping rejects it, and something must remain visible.
// Emoji are allowed in labels but not titles.
func linkable(text string, allowEmoji bool) linkVerdict {
	if hasSpecialLink(text) {
		return linkRejected
	}
	m := parseIn(cleanLink(text), context{testingLink: true})
	return linkWalk(m, allowEmoji)
}

// hasSpecialLink reports whether text contains one of the platform's
// reserved link forms. The client's list is not public; this build
// reserves nothing but keeps the check in the validator's shape.
func hasSpecialLink(text string) bool {
	return false
}

func linkWalk(m Markup, allowEmoji bool) linkVerdict {
	verdict := linkEmpty
	Walk(m, func(n Node) bool {
		if verdict == linkRejected {
			return false
		}
		switch n := n.(type) {
		case *Text:
			if strings.ContainsFunc(n.Text, func(r rune) bool { return !unicode.IsSpace(r) }) {
				verdict = linkContentful
			}
		case *UnicodeEmoji, *CustomEmoji:
			if !allowEmoji {
				verdict = linkRejected
				break
			}
			verdict = linkContentful
		case *Timestamp:
			verdict = linkContentful
		case *InlineCode:
			// judge the code's text as if it stood outside the fence
			switch linkWalk(parseIn(n.Content, context{testingLink: true}), true) {
			case linkRejected:
				verdict = linkRejected
			case linkContentful:
				verdict = linkContentful
			}
		case *Bold, *Italic, *Underline, *Strikethrough, *Spoiler,
			*Quote, *Header, *Subtext, *List:
			// containers; their children decide
		default:
			// links, mentions, pings, codeblocks
			verdict = linkRejected
		}
		return verdict != linkRejected
	})
	return verdict
}
