// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

// A lineState describes what precedes a given offset on its line.
// Line-anchored constructs (headers, subtext, quotes, lists) consult it
// instead of re-anchoring a regexp: headers and subtext require
// lineNothing, quotes and lists tolerate lineSpace.
type lineState int

const (
	lineNothing lineState = iota // offset is at the start of its line
	lineSpace                    // only spaces precede on the line
	lineText                     // something else precedes on the line
)

// lineStateAt reports the line state at offset i of s, given the state
// that held at offset 0. Scanning runs backward to the nearest newline;
// if the start of s is reached instead, the fragment's own starting
// state carries over, so nested scans see through to the outer source.
func lineStateAt(s string, i int, start lineState) lineState {
	sawSpace := false
	for j := i - 1; j >= 0; j-- {
		switch s[j] {
		case '\n':
			if sawSpace {
				return lineSpace
			}
			return lineNothing
		case ' ':
			sawSpace = true
		default:
			return lineText
		}
	}
	if start == lineText {
		return lineText
	}
	if sawSpace {
		return lineSpace
	}
	return start
}

// trimRightSpaces returns s without trailing plain spaces.
// Tabs and newlines stay.
func trimRightSpaces(s string) string {
	for len(s) > 0 && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	return s
}

// lineAt returns the line of s starting at offset i, not including its
// newline, along with the offset just past the line (past its newline
// if present).
func lineAt(s string, i int) (line string, end int) {
	j := i
	for j < len(s) && s[j] != '\n' {
		j++
	}
	if j < len(s) {
		return s[i:j], j + 1
	}
	return s[i:j], j
}
