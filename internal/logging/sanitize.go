// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package logging

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxLoggedValue caps user-supplied strings written to logs.
const maxLoggedValue = 200

// SanitizeValue strips control characters and truncates s so that request
// values cannot forge log lines or flood the output.
func SanitizeValue(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	return truncateString(s, maxLoggedValue)
}

// SanitizeArgs renders bound query arguments for a log line.
func SanitizeArgs(args []interface{}) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = SanitizeValue(fmt.Sprint(a))
	}
	return out
}

// truncateString cuts s to at most maxLen bytes without splitting a rune.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
