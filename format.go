// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A printer accumulates the text form of a Markup.
// Nodes that format differently depending on what follows them
// consult next, and block nodes consult last to decide whether to
// keep their trailing newline.
type printer struct {
	buf     bytes.Buffer
	escapes bool
	next    Node
	last    bool
}

// Format renders m as message text.
// The form is canonical rather than original: the text m was parsed
// from is not kept, and Format picks one spelling for each construct.
// Parsing the result of Format reproduces almost any m built by
// [Parse]; the exception is an italic nested first or last inside
// another italic, whose delimiter lands against the outer one and
// reads back as an underline marker.
func Format(m Markup) string {
	return render(m, true)
}

// String renders m as message text, like [Format].
func (m Markup) String() string {
	return Format(m)
}

func render(m Markup, escapes bool) string {
	var p printer
	p.escapes = escapes
	m.printMarkdown(&p)
	return p.buf.String()
}

func (m Markup) printMarkdown(p *printer) {
	for i, n := range m {
		p.next = nil
		if i+1 < len(m) {
			p.next = m[i+1]
		}
		p.last = i == len(m)-1
		n.printMarkdown(p)
	}
}

// wrap renders inner between two copies of the delimiter d.
func (p *printer) wrap(d string, inner Markup) {
	p.buf.WriteString(d)
	p.buf.WriteString(render(inner, p.escapes))
	p.buf.WriteString(d)
}

// block writes a rendered block construct. Blocks own the newline
// that ends their last line, so when nothing follows, it goes.
func (p *printer) block(s string) {
	if p.last {
		s = strings.TrimSuffix(s, "\n")
	}
	p.buf.WriteString(s)
}

// indent prefixes every line of s with w and terminates every line,
// the last included, with a newline.
func indent(s, w string) string {
	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		b.WriteString(w)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func (x *Text) printMarkdown(p *printer) {
	if !p.escapes {
		p.buf.WriteString(x.Text)
		return
	}
	appendEscaped(&p.buf, x.Text)
}

// appendEscaped writes s with backslashes before anything that could
// start a construct: the ASCII markers, the || and ~~ pairs, and any
// rune that presents as emoji on its own.
func appendEscaped(buf *bytes.Buffer, s string) {
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '*' || c == '_' || c == '<' || c == '@' || c == ':' || c == '[' || c == '`' || c == '\\':
			buf.WriteByte('\\')
			buf.WriteByte(c)
			i++
		case (c == '|' || c == '~') && i+1 < len(s) && s[i+1] == c:
			buf.WriteByte('\\')
			buf.WriteByte(c)
			buf.WriteByte(c)
			i += 2
		case c < utf8.RuneSelf:
			buf.WriteByte(c)
			i++
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			if unicode.Is(emojiPresentation, r) {
				buf.WriteByte('\\')
			}
			buf.WriteString(s[i : i+size])
			i += size
		}
	}
}

func (x *Bold) printMarkdown(p *printer) {
	p.wrap("**", x.Inner)
}

func (x *Italic) printMarkdown(p *printer) {
	// _ works in more contexts than *, except right before a word
	// character, where the closing _ does not close
	d := "_"
	if t, ok := p.next.(*Text); ok && t.Text != "" && isWordByte(t.Text[0]) {
		d = "*"
	}
	p.wrap(d, x.Inner)
}

func (x *Underline) printMarkdown(p *printer) {
	p.wrap("__", x.Inner)
}

func (x *Strikethrough) printMarkdown(p *printer) {
	p.wrap("~~", x.Inner)
}

func (x *Spoiler) printMarkdown(p *printer) {
	p.wrap("||", x.Inner)
}

func (x *Quote) printMarkdown(p *printer) {
	p.block(indent(render(x.Inner, p.escapes), "> "))
}

func (x *Header) printMarkdown(p *printer) {
	// parsing strips a trailing # run from the title, so give it
	// one to strip; a title that really ends in # survives that way
	p.block(strings.Repeat("#", x.Level) + " " + render(x.Inner, p.escapes) + " #\n")
}

func (x *Subtext) printMarkdown(p *printer) {
	p.block("-# " + render(x.Inner, p.escapes) + "\n")
}

func (x *List) printMarkdown(p *printer) {
	// items count up from the start number; parsing takes the start
	// from the first bullet and ignores the rest
	var out strings.Builder
	for i, item := range x.Items {
		bullet := "- "
		if x.Start > 0 {
			bullet = strconv.Itoa(x.Start+i) + ". "
		}
		pad := strings.Repeat(" ", len(bullet))
		out.WriteString(bullet)
		out.WriteString(indent(render(item, p.escapes), pad)[len(bullet):])
	}
	p.block(out.String())
}

func (x *Link) printMarkdown(p *printer) {
	url := urlString(x.URL)
	if x.Suppressed {
		url = "<" + url + ">"
	}
	if t, ok := p.next.(*Text); ok && strings.HasPrefix(t.Text, ")") {
		// "x://(a))" parses as the URL x://(a) and a literal ).
		// Normalizing appends a slash, and x://(a)/) reads back as
		// one URL, so drop the slash when a ) follows.
		url = strings.TrimSuffix(url, "/")
	}
	if x.Title != "" {
		url += ` "` + x.Title + `"`
	}
	if x.Inner == nil {
		p.buf.WriteString(url)
		return
	}
	// escapes are dead inside a label, so write none
	p.buf.WriteString("[")
	p.buf.WriteString(render(x.Inner, false))
	p.buf.WriteString("](")
	p.buf.WriteString(url)
	p.buf.WriteString(")")
}

func (x *InlineCode) printMarkdown(p *printer) {
	c := x.Content
	if !isolatedBacktick(c) {
		p.buf.WriteString("`")
		p.buf.WriteString(c)
		p.buf.WriteString("`")
		return
	}
	// a lone backtick forces the double fence, and a backtick at
	// either edge needs a pad space; parsing strips the pad again
	start, end := "", ""
	if strings.HasPrefix(strings.TrimLeft(c, " "), "`") {
		start = " "
	}
	if strings.HasSuffix(strings.TrimRight(c, " "), "`") {
		end = " "
	}
	p.buf.WriteString("``")
	p.buf.WriteString(start)
	p.buf.WriteString(c)
	p.buf.WriteString(end)
	p.buf.WriteString("``")
}

// isolatedBacktick reports whether s contains a backtick run of
// exactly one backtick.
func isolatedBacktick(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '`' && (i == 0 || s[i-1] != '`') && (i+1 == len(s) || s[i+1] != '`') {
			return true
		}
	}
	return false
}

func (x *Codeblock) printMarkdown(p *printer) {
	p.buf.WriteString("```")
	p.buf.WriteString(x.Language)
	p.buf.WriteString("\n")
	p.buf.WriteString(x.Content)
	p.buf.WriteString("\n```")
}

func (x *UserMention) printMarkdown(p *printer) {
	fmt.Fprintf(&p.buf, "<@%d>", x.ID)
}

func (x *ChannelMention) printMarkdown(p *printer) {
	fmt.Fprintf(&p.buf, "<#%d>", x.ID)
}

func (x *RoleMention) printMarkdown(p *printer) {
	fmt.Fprintf(&p.buf, "<@&%d>", x.ID)
}

func (x *Everyone) printMarkdown(p *printer) {
	p.buf.WriteString("@everyone")
}

func (x *Here) printMarkdown(p *printer) {
	p.buf.WriteString("@here")
}

func (x *CustomEmoji) printMarkdown(p *printer) {
	a := ""
	if x.Animated {
		a = "a"
	}
	fmt.Fprintf(&p.buf, "<%s:%s:%d>", a, x.Name, x.ID)
}

func (x *UnicodeEmoji) printMarkdown(p *printer) {
	p.buf.WriteString(x.Emoji)
}

func (x *Timestamp) printMarkdown(p *printer) {
	if x.Format == 'f' {
		fmt.Fprintf(&p.buf, "<t:%d>", x.Stamp)
		return
	}
	fmt.Fprintf(&p.buf, "<t:%d:%c>", x.Stamp, x.Format)
}
