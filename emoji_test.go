// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import "testing"

var emojiAtTests = []struct {
	in      string
	cluster string // empty: no emoji starts here
}{
	{"🙂", "🙂"},
	{"🙂x", "🙂"},
	{"👍🏽", "👍🏽"},
	{"🏽", "🏽"},
	{"🇺🇸", "🇺🇸"},
	{"🇺", "🇺"},
	{"👩‍💻", "👩‍💻"},
	{"👨‍👩‍👦", "👨‍👩‍👦"},
	{"❤️‍🔥", "❤️‍🔥"},

	// text-presentation bases need a variation selector to qualify
	{"☹️", "☹️"},
	{"☹", ""},
	{"❤", ""},

	// keycaps: base, optional VS16, combining keycap
	{"#️⃣", "#️⃣"},
	{"*️⃣", "*️⃣"},
	{"5️⃣", "5️⃣"},
	{"#⃣", "#⃣"},
	{"#", ""},
	{"5", ""},
	{"#️️⃣", ""},

	// tag sequences spell exactly the subdivision flags
	{"\U0001f3f4\U000e0067\U000e0062\U000e0073\U000e0063\U000e0074\U000e007f",
		"\U0001f3f4\U000e0067\U000e0062\U000e0073\U000e0063\U000e0074\U000e007f"},
	{"\U0001f642\U000e0067\U000e007f", ""},

	// the grapheme cluster is judged whole
	{"🙂🏽", ""},
	{"🙂‍", ""},
	{"a", ""},
}

func TestEmojiAt(t *testing.T) {
	for _, tt := range emojiAtTests {
		cluster, end, ok := emojiAt(tt.in, 0)
		if !ok {
			cluster = ""
		}
		if cluster != tt.cluster {
			t.Errorf("emojiAt(%+q, 0) = %+q, %v, want %+q", tt.in, cluster, ok, tt.cluster)
			continue
		}
		if ok && end != len(cluster) {
			t.Errorf("emojiAt(%+q, 0) end = %d, want %d", tt.in, end, len(cluster))
		}
	}
}

// emojiParseTests cover the scan dispatch around emoji: keycap bases
// that are also construct characters, and clusters that fail whole but
// contain an emoji tail.
var emojiParseTests = []struct {
	in  string
	out string
}{
	{"*️⃣", `[(emoji "*️⃣")]`},
	{"5️⃣x", `[(emoji "5️⃣") (text "x")]`},
	{"#️⃣ no header", `[(emoji "#️⃣") (text " no header")]`},
	{"🙂🏽", `[(text "🙂") (emoji "🏽")]`},
	{"🇺🇸🇦", `[(emoji "🇺🇸") (emoji "🇦")]`},
	{`¯\_(ツ)_/¯`, `[(text "¯\\_(ツ)_/¯")]`},
}

func TestParseEmoji(t *testing.T) {
	for _, tt := range emojiParseTests {
		if out := dump(Parse(tt.in)); out != tt.out {
			t.Errorf("Parse(%+q):\nhave %s\nwant %s", tt.in, out, tt.out)
		}
	}
}
