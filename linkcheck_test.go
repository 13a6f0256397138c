// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import "testing"

var linkableTests = []struct {
	text       string
	allowEmoji bool
	verdict    linkVerdict
}{
	{"a", false, linkContentful},
	{"*a*", false, linkContentful},
	{"", false, linkEmpty},
	{"  ", false, linkEmpty},
	{"\u200b\u200b", false, linkEmpty},

	// emoji are label material but not title material
	{"🙂", true, linkContentful},
	{"🙂", false, linkRejected},
	{"<:wave:3>", true, linkContentful},
	{"<:wave:3>", false, linkRejected},

	// nothing that pings, mentions, or links somewhere else
	{"<@1>", true, linkRejected},
	{"@everyone", true, linkRejected},
	{"https://a.bc", true, linkRejected},
	{"<t:5>", false, linkContentful},

	// code spans are judged by what the code says, emoji allowed
	{"`<@1>`", true, linkRejected},
	{"`🙂`", false, linkContentful},
	{"*`https://a.bc`*", true, linkRejected},
	{"```x```", false, linkRejected},

	// normalization runs first: confusables fold to the ASCII they
	// imitate, and invisible characters cannot hide a link
	{"htt\u0440s://a.bc", true, linkRejected},
	{"\u200bhttps://a.bc", true, linkRejected},
}

func TestLinkable(t *testing.T) {
	for _, tt := range linkableTests {
		if v := linkable(tt.text, tt.allowEmoji); v != tt.verdict {
			t.Errorf("linkable(%#q, %v) = %v, want %v", tt.text, tt.allowEmoji, v, tt.verdict)
		}
	}
}
