package grading

import (
	"strings"
	"unicode"
)

// substantial reports whether an answer looks like a real attempt worth
// partial credit: after trimming it is at least 3 characters, contains
// at least one letter, and has at least one whitespace-delimited token.
func substantial(answer string) bool {
	trimmed := strings.TrimSpace(answer)
	if len(trimmed) < 3 {
		return false
	}
	if len(strings.Fields(trimmed)) == 0 {
		return false
	}
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
