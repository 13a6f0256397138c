// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"unicode/utf8"
)

// A context carries what a scan needs to know about its surroundings:
// where its fragment sits on the line it was cut from, and which
// matchers an enclosing construct has turned off.
type context struct {
	lineStart   lineState // line state at the start of the fragment
	inQuote     bool      // no quotes inside quotes
	listDepth   int       // lists stop nesting at depth 11
	noHeaders   bool      // list items render headers literally
	inLink      bool      // link labels: no escapes, no nested links
	testingLink bool      // like inLink, inside the link validator
}

// linkMode reports whether the scan is inside a link label, where
// escape handling and the [label](url) form are disabled.
func (c context) linkMode() bool { return c.inLink || c.testingLink }

// at reports the line state at offset i as seen by this scan.
func (c context) at(s string, i int) lineState {
	return lineStateAt(s, i, c.lineStart)
}

// child derives the context for re-parsing the body of a construct
// found at offset i.
func (c context) child(s string, i int) context {
	c.lineStart = c.at(s, i)
	return c
}

// A job is a construct body waiting to be parsed.
type job struct {
	body string
	ctx  context
}

// A parsed describes one successful match. Exactly one of node, lit,
// and jobs is set: a finished leaf, literal text to keep as-is, or
// nested bodies to parse before build assembles the node.
type parsed struct {
	end   int // offset just past the consumed span
	node  Node
	lit   string
	jobs  []job
	build func([]Markup) Node
}

// A frame is one level of the parse. Frames form an explicit stack so
// that adversarial nesting depth costs heap, not goroutine stack.
type frame struct {
	s     string
	ctx   context
	i     int
	text  []byte
	out   Markup
	jobs  []job
	parts []Markup
	build func([]Markup) Node
	end   int

	// offset before which scheme scans are known not to find "://"
	schemeFail int
}

// Parse parses source as chat markup. Parsing is total: there is no
// error result, and text that fails to form a construct stays text.
func Parse(source string) Markup {
	return parseIn(source, context{})
}

func parseIn(source string, ctx context) Markup {
	stack := []*frame{{s: source, ctx: ctx}}
	for {
		f := stack[len(stack)-1]
		if f.build != nil && len(f.parts) == len(f.jobs) {
			f.out = append(f.out, f.build(f.parts))
			f.jobs, f.parts, f.build = nil, nil, nil
			f.i = f.end
		}
		if f.build != nil {
			j := f.jobs[len(f.parts)]
			stack = append(stack, &frame{s: j.body, ctx: j.ctx})
			continue
		}
		if f.scan() {
			continue
		}
		m := f.finish()
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return m
		}
		parent := stack[len(stack)-1]
		parent.parts = append(parent.parts, m)
	}
}

// scan advances until the fragment ends or a construct with nested
// bodies matches. It reports true in the second case, with f.jobs,
// f.build, and f.end describing the pending construct.
func (f *frame) scan() bool {
	s := f.s
	for f.i < len(s) {
		c := s[f.i]
		var m parsed
		var ok bool
		switch {
		case c == '\\':
			if !f.ctx.linkMode() {
				f.escape()
				continue
			}
		case c == '*', c == '_', c == '~', c == '|':
			m, ok = matchEmph(s, f.i, f.ctx)
			if !ok && c == '*' {
				if keycapAhead(s, f.i) {
					m, ok = matchRune(s, f.i)
				}
				if !ok {
					m, ok = matchList(s, f.i, f.ctx)
				}
			}
		case c == '`':
			m, ok = matchCode(s, f.i)
		case c == '<':
			m, ok = matchAngle(s, f.i)
		case c == '@':
			m, ok = matchEveryoneHere(s, f.i)
		case c == '[':
			if !f.ctx.linkMode() {
				m, ok = matchQualifiedLink(s, f.i, f.ctx)
			}
		case c == '#':
			if keycapAhead(s, f.i) {
				m, ok = matchRune(s, f.i)
			}
			if !ok {
				m, ok = matchHeader(s, f.i, f.ctx)
			}
		case c == '>':
			m, ok = matchQuote(s, f.i, f.ctx)
		case c == '-':
			if m, ok = matchSubtext(s, f.i, f.ctx); !ok {
				m, ok = matchList(s, f.i, f.ctx)
			}
		case isDigit(c):
			if keycapAhead(s, f.i) {
				m, ok = matchRune(s, f.i)
			}
			if !ok {
				m, ok = matchList(s, f.i, f.ctx)
			}
		case isLetter(c):
			if f.i >= f.schemeFail {
				m, ok = f.matchBareLink(f.i)
			}
		case c >= utf8.RuneSelf:
			m, ok = matchRune(s, f.i)
		}
		if !ok {
			f.literalAdvance()
			continue
		}
		if m.lit != "" {
			f.appendLiteral(m.lit)
			f.i = m.end
			continue
		}
		f.flushText()
		if m.node != nil {
			f.out = append(f.out, m.node)
			f.i = m.end
			continue
		}
		f.jobs, f.build, f.end = m.jobs, m.build, m.end
		f.parts = nil
		return true
	}
	return false
}

// keycapAhead reports whether the ASCII keycap base at s[i] might
// continue as an emoji: the next bytes must at least be non-ASCII.
func keycapAhead(s string, i int) bool {
	return i+1 < len(s) && s[i+1] >= utf8.RuneSelf
}

// matchAngle dispatches the constructs that open with <. Their second
// bytes are disjoint, but each can still fail lexically, and an
// <http://...> autolink is the fallback for all of them.
func matchAngle(s string, i int) (parsed, bool) {
	if i+1 < len(s) {
		switch s[i+1] {
		case '@', '#':
			if m, ok := matchMention(s, i); ok {
				return m, true
			}
		case ':', 'a':
			if m, ok := matchCustomEmoji(s, i); ok {
				return m, true
			}
		case 't':
			if m, ok := matchTimestamp(s, i); ok {
				return m, true
			}
		}
	}
	return matchAngleLink(s, i)
}

// escape handles a backslash in ordinary text. Backslash before
// punctuation, a symbol, or an emoji grapheme is an escape and drops
// out; before anything else both characters stay.
func (f *frame) escape() {
	s, i := f.s, f.i
	if n := escapePairLen(s, i); n > 0 {
		f.appendLiteral(s[i+1 : i+n])
		f.i = i + n
		return
	}
	if i+1 >= len(s) {
		f.appendByte('\\')
		f.i = i + 1
		return
	}
	_, size := utf8.DecodeRuneInString(s[i+1:])
	f.appendLiteral(s[i : i+1+size])
	f.i = i + 1 + size
}

// escapePairLen reports the length of the escape pair starting at the
// backslash at s[i], or 0 if the next character cannot be escaped.
func escapePairLen(s string, i int) int {
	if i+1 >= len(s) {
		return 0
	}
	if _, end, ok := emojiAt(s, i+1); ok {
		return end - i
	}
	r, size := utf8.DecodeRuneInString(s[i+1:])
	if !isUnicodePunct(r) {
		return 0
	}
	return 1 + size
}

// literalAdvance moves one character into the pending text run.
func (f *frame) literalAdvance() {
	s := f.s
	if c := s[f.i]; c < utf8.RuneSelf {
		f.appendByte(c)
		f.i++
		return
	}
	_, size := utf8.DecodeRuneInString(s[f.i:])
	f.text = append(f.text, s[f.i:f.i+size]...)
	f.i += size
}

// appendByte adds one byte of ordinary text. Spaces sitting at the
// end of a line are dropped here, as the client drops them.
func (f *frame) appendByte(c byte) {
	if c == '\n' {
		for len(f.text) > 0 && f.text[len(f.text)-1] == ' ' {
			f.text = f.text[:len(f.text)-1]
		}
	}
	f.text = append(f.text, c)
}

// appendLiteral adds text that has already been through its
// construct's own handling and must not be cleaned again.
func (f *frame) appendLiteral(t string) {
	f.text = append(f.text, t...)
}

func (f *frame) flushText() {
	if len(f.text) > 0 {
		f.out = append(f.out, &Text{Text: string(f.text)})
		f.text = f.text[:0]
	}
}

func (f *frame) finish() Markup {
	f.flushText()
	return f.out
}
