package util

import (
	"unicode/utf8"
)

// TruncateRunes cuts s to at most n runes without splitting a character.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	rs := []rune(s)
	return string(rs[:n])
}

// Excerpt is TruncateRunes with an ellipsis when something was cut.
func Excerpt(s string, n int) string {
	out := TruncateRunes(s, n)
	if len(out) < len(s) {
		return out + "…"
	}
	return out
}
