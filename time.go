// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"strconv"
	"strings"
)

// maxTimestamp bounds the seconds a timestamp can carry, matching the
// +-275760-09-13 range of a JavaScript Date.
const maxTimestamp = 8_640_000_000_000

// matchTimestamp matches <t:seconds> and <t:seconds:format> at the
// < at s[i].
func matchTimestamp(s string, i int) (parsed, bool) {
	if !strings.HasPrefix(s[i:], "<t:") {
		return parsed{}, false
	}
	j := i + len("<t:")
	neg := false
	if j < len(s) && s[j] == '-' {
		neg = true
		j++
	}
	k := j
	for k < len(s) && isDigit(s[k]) {
		k++
	}
	if k == j || k-j > 17 {
		return parsed{}, false
	}
	stamp, err := strconv.ParseInt(s[j:k], 10, 64)
	if err != nil || stamp > maxTimestamp {
		return parsed{}, false
	}
	if neg {
		stamp = -stamp
	}
	format := byte('f')
	if k < len(s) && s[k] == ':' {
		k++
		if k >= len(s) || !isTimeFormat(s[k]) {
			return parsed{}, false
		}
		format = s[k]
		k++
	}
	if k >= len(s) || s[k] != '>' {
		return parsed{}, false
	}
	return parsed{end: k + 1, node: &Timestamp{Stamp: stamp, Format: format}}, true
}

// isTimeFormat reports whether c is one of the display styles the
// client accepts: short and long time, date, date-time, and relative.
func isTimeFormat(c byte) bool {
	switch c {
	case 't', 'T', 'd', 'D', 'f', 'F', 'R':
		return true
	}
	return false
}
