// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"strconv"
	"strings"
)

// matchMention matches <@id>, <@!id>, <@&id>, and <#id> at the < at s[i].
func matchMention(s string, i int) (parsed, bool) {
	j := i + 1
	var node func(uint64) Node
	switch s[j] {
	case '@':
		j++
		node = func(id uint64) Node { return &UserMention{ID: id} }
		if j < len(s) {
			switch s[j] {
			case '!': // legacy nickname form
				j++
			case '&':
				j++
				node = func(id uint64) Node { return &RoleMention{ID: id} }
			}
		}
	case '#':
		j++
		node = func(id uint64) Node { return &ChannelMention{ID: id} }
	default:
		return parsed{}, false
	}
	id, end, ok := parseID(s, j)
	if !ok {
		return parsed{}, false
	}
	return parsed{end: end, node: node(id)}, true
}

// parseID parses a snowflake followed by > starting at s[j:].
// Snowflakes are decimal uint64s; anything longer than twenty digits
// cannot be one.
func parseID(s string, j int) (id uint64, end int, ok bool) {
	k := j
	for k < len(s) && isDigit(s[k]) {
		k++
	}
	if k == j || k-j > 20 || k >= len(s) || s[k] != '>' {
		return 0, 0, false
	}
	id, err := strconv.ParseUint(s[j:k], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return id, k + 1, true
}

// matchEveryoneHere matches the literal pings at the @ at s[i].
func matchEveryoneHere(s string, i int) (parsed, bool) {
	if strings.HasPrefix(s[i:], "@everyone") {
		return parsed{end: i + len("@everyone"), node: &Everyone{}}, true
	}
	if strings.HasPrefix(s[i:], "@here") {
		return parsed{end: i + len("@here"), node: &Here{}}, true
	}
	return parsed{}, false
}
