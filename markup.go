// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package discordmd parses Discord-flavored markup into a syntax tree,
// renders trees back to canonical markup text, and screens hyperlink
// labels the way the chat client does. Parsing is total: every input
// string, however mangled, produces a tree.
//
// The dialect is the message markup described in Discord's
// "Markdown Text 101" support article, not CommonMark; the two disagree
// on almost every corner case.
package discordmd

import (
	"bytes"
	"fmt"

	"github.com/nlnwa/whatwg-url/url"
)

// A Markup is a parsed message: a sequence of nodes.
// The zero value is an empty message.
type Markup []Node

// A Node is a single element of a message, one of
// [Text], [Bold], [Italic], [Underline], [Strikethrough], [Spoiler],
// [Quote], [Header], [Subtext], [List], [Link],
// [InlineCode], [Codeblock],
// [UserMention], [ChannelMention], [RoleMention], [Everyone], [Here],
// [CustomEmoji], [UnicodeEmoji], and [Timestamp].
//
// The set of node types is closed: switches over Node in this package
// are exhaustive and panic on anything else.
type Node interface {
	Node()

	printMarkdown(*printer)
}

// A Text is a Node holding literal text, with backslash escapes
// already resolved. Newlines appear verbatim.
type Text struct {
	Text string
}

// A Bold is a Node rendering its content in bold (**content**).
type Bold struct {
	Inner Markup
}

// An Italic is a Node rendering its content in italics
// (*content* or _content_).
type Italic struct {
	Inner Markup
}

// An Underline is a Node rendering its content underlined (__content__).
type Underline struct {
	Inner Markup
}

// A Strikethrough is a Node rendering its content struck through
// (~~content~~).
type Strikethrough struct {
	Inner Markup
}

// A Spoiler is a Node whose content is hidden until clicked
// (||content||).
type Spoiler struct {
	Inner Markup
}

// A Quote is a Node rendering its content as a block quote
// ("> line" or ">>> rest").
type Quote struct {
	Inner Markup
}

// A Header is a Node rendering its content as a section header
// ("# h1" through "### h3").
type Header struct {
	Level int // 1, 2, or 3
	Inner Markup
}

// A Subtext is a Node rendering its content in small type ("-# note").
type Subtext struct {
	Inner Markup
}

// A List is a Node holding a bulleted or numbered list.
// Start is 0 for a bulleted list, or the first item's number
// (clamped to [1, 1e9]) for a numbered one.
type List struct {
	Start int
	Items []Markup
}

// A Link is a Node holding a hyperlink. Inner is the label for
// "[label](url)" links and nil for bare ones. Suppressed marks
// <url> forms, which the client shows without an embed.
type Link struct {
	URL        *url.Url
	Inner      Markup
	Title      string
	Suppressed bool
}

// An InlineCode is a Node holding a literal span (`content`).
// Content is raw text, never nested markup.
type InlineCode struct {
	Content string
}

// A Codeblock is a Node holding a fenced block (```lang\ncontent```).
// Language may be empty.
type Codeblock struct {
	Language string
	Content  string
}

// A UserMention is a Node naming a user by ID (<@123> or <@!123>).
type UserMention struct {
	ID uint64
}

// A ChannelMention is a Node naming a channel by ID (<#123>).
type ChannelMention struct {
	ID uint64
}

// A RoleMention is a Node naming a role by ID (<@&123>).
type RoleMention struct {
	ID uint64
}

// An Everyone is a Node for the literal @everyone ping.
type Everyone struct{}

// A Here is a Node for the literal @here ping.
type Here struct{}

// A CustomEmoji is a Node for a guild emoji (<:name:123> or,
// animated, <a:name:123>).
type CustomEmoji struct {
	Name     string
	ID       uint64
	Animated bool
}

// A UnicodeEmoji is a Node holding one emoji grapheme cluster.
type UnicodeEmoji struct {
	Emoji string
}

// A Timestamp is a Node for an absolute time (<t:seconds:format>).
// Format is one of 't', 'T', 'd', 'D', 'f', 'F', 'R'; 'f' is the
// client's default and renders without a format suffix.
type Timestamp struct {
	Stamp  int64
	Format byte
}

func (*Text) Node()           {}
func (*Bold) Node()           {}
func (*Italic) Node()         {}
func (*Underline) Node()      {}
func (*Strikethrough) Node()  {}
func (*Spoiler) Node()        {}
func (*Quote) Node()          {}
func (*Header) Node()         {}
func (*Subtext) Node()        {}
func (*List) Node()           {}
func (*Link) Node()           {}
func (*InlineCode) Node()     {}
func (*Codeblock) Node()      {}
func (*UserMention) Node()    {}
func (*ChannelMention) Node() {}
func (*RoleMention) Node()    {}
func (*Everyone) Node()       {}
func (*Here) Node()           {}
func (*CustomEmoji) Node()    {}
func (*UnicodeEmoji) Node()   {}
func (*Timestamp) Node()      {}

// Equal reports whether m and n are structurally identical.
func (m Markup) Equal(n Markup) bool {
	if len(m) != len(n) {
		return false
	}
	for i := range m {
		if !NodeEqual(m[i], n[i]) {
			return false
		}
	}
	return true
}

// NodeEqual reports whether a and b are structurally identical.
// Links compare by serialized URL.
func NodeEqual(a, b Node) bool {
	switch a := a.(type) {
	case *Text:
		b, ok := b.(*Text)
		return ok && a.Text == b.Text
	case *Bold:
		b, ok := b.(*Bold)
		return ok && a.Inner.Equal(b.Inner)
	case *Italic:
		b, ok := b.(*Italic)
		return ok && a.Inner.Equal(b.Inner)
	case *Underline:
		b, ok := b.(*Underline)
		return ok && a.Inner.Equal(b.Inner)
	case *Strikethrough:
		b, ok := b.(*Strikethrough)
		return ok && a.Inner.Equal(b.Inner)
	case *Spoiler:
		b, ok := b.(*Spoiler)
		return ok && a.Inner.Equal(b.Inner)
	case *Quote:
		b, ok := b.(*Quote)
		return ok && a.Inner.Equal(b.Inner)
	case *Header:
		b, ok := b.(*Header)
		return ok && a.Level == b.Level && a.Inner.Equal(b.Inner)
	case *Subtext:
		b, ok := b.(*Subtext)
		return ok && a.Inner.Equal(b.Inner)
	case *List:
		b, ok := b.(*List)
		if !ok || a.Start != b.Start || len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !a.Items[i].Equal(b.Items[i]) {
				return false
			}
		}
		return true
	case *Link:
		b, ok := b.(*Link)
		if !ok || a.Title != b.Title || a.Suppressed != b.Suppressed {
			return false
		}
		if (a.Inner == nil) != (b.Inner == nil) || !a.Inner.Equal(b.Inner) {
			return false
		}
		return urlString(a.URL) == urlString(b.URL)
	case *InlineCode:
		b, ok := b.(*InlineCode)
		return ok && a.Content == b.Content
	case *Codeblock:
		b, ok := b.(*Codeblock)
		return ok && a.Language == b.Language && a.Content == b.Content
	case *UserMention:
		b, ok := b.(*UserMention)
		return ok && a.ID == b.ID
	case *ChannelMention:
		b, ok := b.(*ChannelMention)
		return ok && a.ID == b.ID
	case *RoleMention:
		b, ok := b.(*RoleMention)
		return ok && a.ID == b.ID
	case *Everyone:
		_, ok := b.(*Everyone)
		return ok
	case *Here:
		_, ok := b.(*Here)
		return ok
	case *CustomEmoji:
		b, ok := b.(*CustomEmoji)
		return ok && a.Name == b.Name && a.ID == b.ID && a.Animated == b.Animated
	case *UnicodeEmoji:
		b, ok := b.(*UnicodeEmoji)
		return ok && a.Emoji == b.Emoji
	case *Timestamp:
		b, ok := b.(*Timestamp)
		return ok && a.Stamp == b.Stamp && a.Format == b.Format
	}
	panic("discordmd: internal error: unknown node")
}

// Walk calls f for every node in m, parents before children,
// descending into style wrappers, quote and header bodies, list items,
// and link labels. If f returns false, the node's children are skipped.
func Walk(m Markup, f func(Node) bool) {
	for _, n := range m {
		walkNode(n, f)
	}
}

func walkNode(n Node, f func(Node) bool) {
	if !f(n) {
		return
	}
	switch n := n.(type) {
	case *Bold:
		Walk(n.Inner, f)
	case *Italic:
		Walk(n.Inner, f)
	case *Underline:
		Walk(n.Inner, f)
	case *Strikethrough:
		Walk(n.Inner, f)
	case *Spoiler:
		Walk(n.Inner, f)
	case *Quote:
		Walk(n.Inner, f)
	case *Header:
		Walk(n.Inner, f)
	case *Subtext:
		Walk(n.Inner, f)
	case *List:
		for _, item := range n.Items {
			Walk(item, f)
		}
	case *Link:
		Walk(n.Inner, f)
	case *Text, *InlineCode, *Codeblock,
		*UserMention, *ChannelMention, *RoleMention, *Everyone, *Here,
		*CustomEmoji, *UnicodeEmoji, *Timestamp:
		// leaves
	default:
		panic("discordmd: internal error: unknown node")
	}
}

// dump renders m on one line for debugging and for golden-file tests.
func dump(m Markup) string {
	var buf bytes.Buffer
	dumpTo(&buf, m)
	return buf.String()
}

func dumpTo(buf *bytes.Buffer, m Markup) {
	buf.WriteByte('[')
	for i, n := range m {
		if i > 0 {
			buf.WriteByte(' ')
		}
		dumpNode(buf, n)
	}
	buf.WriteByte(']')
}

func dumpNode(buf *bytes.Buffer, n Node) {
	wrap := func(name string, inner Markup) {
		fmt.Fprintf(buf, "(%s ", name)
		dumpTo(buf, inner)
		buf.WriteByte(')')
	}
	switch n := n.(type) {
	case *Text:
		fmt.Fprintf(buf, "(text %q)", n.Text)
	case *Bold:
		wrap("bold", n.Inner)
	case *Italic:
		wrap("italic", n.Inner)
	case *Underline:
		wrap("underline", n.Inner)
	case *Strikethrough:
		wrap("strikethrough", n.Inner)
	case *Spoiler:
		wrap("spoiler", n.Inner)
	case *Quote:
		wrap("quote", n.Inner)
	case *Header:
		fmt.Fprintf(buf, "(header %d ", n.Level)
		dumpTo(buf, n.Inner)
		buf.WriteByte(')')
	case *Subtext:
		wrap("subtext", n.Inner)
	case *List:
		fmt.Fprintf(buf, "(list %d", n.Start)
		for _, item := range n.Items {
			buf.WriteByte(' ')
			dumpTo(buf, item)
		}
		buf.WriteByte(')')
	case *Link:
		fmt.Fprintf(buf, "(link %q", urlString(n.URL))
		if n.Suppressed {
			buf.WriteString(" suppressed")
		}
		if n.Title != "" {
			fmt.Fprintf(buf, " title=%q", n.Title)
		}
		if n.Inner != nil {
			buf.WriteByte(' ')
			dumpTo(buf, n.Inner)
		}
		buf.WriteByte(')')
	case *InlineCode:
		fmt.Fprintf(buf, "(code %q)", n.Content)
	case *Codeblock:
		fmt.Fprintf(buf, "(codeblock %q %q)", n.Language, n.Content)
	case *UserMention:
		fmt.Fprintf(buf, "(user %d)", n.ID)
	case *ChannelMention:
		fmt.Fprintf(buf, "(channel %d)", n.ID)
	case *RoleMention:
		fmt.Fprintf(buf, "(role %d)", n.ID)
	case *Everyone:
		buf.WriteString("(everyone)")
	case *Here:
		buf.WriteString("(here)")
	case *CustomEmoji:
		if n.Animated {
			fmt.Fprintf(buf, "(emoji %q %d animated)", n.Name, n.ID)
		} else {
			fmt.Fprintf(buf, "(emoji %q %d)", n.Name, n.ID)
		}
	case *UnicodeEmoji:
		fmt.Fprintf(buf, "(emoji %q)", n.Emoji)
	case *Timestamp:
		fmt.Fprintf(buf, "(time %d %c)", n.Stamp, n.Format)
	default:
		panic("discordmd: internal error: unknown node")
	}
}
