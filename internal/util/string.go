package util

import (
	"strings"
	"unicode"
)

// NormalizeLabel normalizes a field label for fuzzy matching by lowercasing
// and stripping whitespace and colons, so "LM Number :" and "lmnumber"
// compare equal.
func NormalizeLabel(s string) string {
	s = strings.ToLower(s)

	var builder strings.Builder
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == ':' {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
