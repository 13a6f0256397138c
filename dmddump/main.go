// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Dmddump prints the parse of Discord message markup.
//
// Usage:
//
//	dmddump [-c] [file...]
//
// Dmddump reads the named files, or else standard input, as Discord
// messages and prints their parse trees to standard output, one node
// per line, children indented under parents.
//
// The -c flag specifies to also reformat each message and verify
// that the result parses back to the same tree and that reformatting
// it again changes nothing.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"rsc.io/discordmd"
)

var (
	checkFlag = flag.BoolP("check", "c", false, "verify the round-trip laws on each input")
	exit      = 0
)

func main() {
	log.SetPrefix("dmddump: ")
	log.SetFlags(0)
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		do(os.Stdin, "stdin")
	} else {
		for _, arg := range args {
			f, err := os.Open(arg)
			if err != nil {
				log.Fatal(err)
			}
			do(f, arg)
			f.Close()
		}
	}
	os.Exit(exit)
}

func do(f *os.File, name string) {
	data, err := io.ReadAll(f)
	if err != nil {
		log.Fatal(err)
	}
	m := discordmd.Parse(string(data))
	w := bufio.NewWriter(os.Stdout)
	tree(w, m, 0)
	w.Flush()
	if *checkFlag {
		check(m, name)
	}
}

// check verifies the format laws for one parsed message: formatting
// and reparsing must reproduce the tree, and reformatting the
// reparse must reproduce the text.
func check(m discordmd.Markup, name string) {
	out := discordmd.Format(m)
	m2 := discordmd.Parse(out)
	if !m2.Equal(m) {
		log.Printf("%s: reformatting changes the parse", name)
		exit = 1
		return
	}
	if again := discordmd.Format(m2); again != out {
		log.Printf("%s: reformatting is not a fixed point", name)
		exit = 1
	}
}

func tree(w *bufio.Writer, m discordmd.Markup, depth int) {
	indent := strings.Repeat("\t", depth)
	for _, n := range m {
		switch n := n.(type) {
		case *discordmd.Text:
			fmt.Fprintf(w, "%stext %q\n", indent, n.Text)
		case *discordmd.Bold:
			fmt.Fprintf(w, "%sbold\n", indent)
			tree(w, n.Inner, depth+1)
		case *discordmd.Italic:
			fmt.Fprintf(w, "%sitalic\n", indent)
			tree(w, n.Inner, depth+1)
		case *discordmd.Underline:
			fmt.Fprintf(w, "%sunderline\n", indent)
			tree(w, n.Inner, depth+1)
		case *discordmd.Strikethrough:
			fmt.Fprintf(w, "%sstrikethrough\n", indent)
			tree(w, n.Inner, depth+1)
		case *discordmd.Spoiler:
			fmt.Fprintf(w, "%sspoiler\n", indent)
			tree(w, n.Inner, depth+1)
		case *discordmd.Quote:
			fmt.Fprintf(w, "%squote\n", indent)
			tree(w, n.Inner, depth+1)
		case *discordmd.Header:
			fmt.Fprintf(w, "%sheader %d\n", indent, n.Level)
			tree(w, n.Inner, depth+1)
		case *discordmd.Subtext:
			fmt.Fprintf(w, "%ssubtext\n", indent)
			tree(w, n.Inner, depth+1)
		case *discordmd.List:
			fmt.Fprintf(w, "%slist %d\n", indent, n.Start)
			for _, item := range n.Items {
				fmt.Fprintf(w, "%s\titem\n", indent)
				tree(w, item, depth+2)
			}
		case *discordmd.Link:
			target := discordmd.Format(discordmd.Markup{&discordmd.Link{URL: n.URL, Suppressed: n.Suppressed}})
			fmt.Fprintf(w, "%slink %s", indent, target)
			if n.Title != "" {
				fmt.Fprintf(w, " title %q", n.Title)
			}
			w.WriteByte('\n')
			if n.Inner != nil {
				tree(w, n.Inner, depth+1)
			}
		case *discordmd.InlineCode:
			fmt.Fprintf(w, "%scode %q\n", indent, n.Content)
		case *discordmd.Codeblock:
			fmt.Fprintf(w, "%scodeblock %s %q\n", indent, n.Language, n.Content)
		case *discordmd.UserMention:
			fmt.Fprintf(w, "%suser %d\n", indent, n.ID)
		case *discordmd.ChannelMention:
			fmt.Fprintf(w, "%schannel %d\n", indent, n.ID)
		case *discordmd.RoleMention:
			fmt.Fprintf(w, "%srole %d\n", indent, n.ID)
		case *discordmd.Everyone:
			fmt.Fprintf(w, "%severyone\n", indent)
		case *discordmd.Here:
			fmt.Fprintf(w, "%shere\n", indent)
		case *discordmd.CustomEmoji:
			fmt.Fprintf(w, "%semoji %s %d", indent, n.Name, n.ID)
			if n.Animated {
				w.WriteString(" animated")
			}
			w.WriteByte('\n')
		case *discordmd.UnicodeEmoji:
			fmt.Fprintf(w, "%semoji %q\n", indent, n.Emoji)
		case *discordmd.Timestamp:
			fmt.Fprintf(w, "%stime %d %c\n", indent, n.Stamp, n.Format)
		default:
			log.Fatalf("unknown node %T", n)
		}
	}
}
