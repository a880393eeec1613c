package matcher

import (
	"strings"
	"unicode"
)

// Normalize prepares text for keyword comparison: lowercase, every
// non-alphanumeric character becomes a space, runs of whitespace collapse
// to one space, leading/trailing whitespace is trimmed. Applied uniformly
// to field labels, field names, and keywords so matching is case- and
// punctuation-insensitive. Idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))

	lastSpace := true // swallows leading separators
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}

	return strings.TrimRight(b.String(), " ")
}
