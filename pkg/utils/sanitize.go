package utils

import (
	"strings"
	"unicode"
)

// SanitizeCell prepares an API-provided string for a terminal table cell:
// line breaks become spaces and other control characters are dropped.
func SanitizeCell(input string) string {
	var result strings.Builder
	for _, r := range strings.TrimSpace(input) {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			result.WriteRune(' ')
		case unicode.IsControl(r):
			continue
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}

// SanitizeUsername trims whitespace and control characters from a login
// name. Passwords are never sanitized.
func SanitizeUsername(username string) string {
	return removeControlChars(strings.TrimSpace(username))
}

// removeControlChars removes control characters from string
func removeControlChars(input string) string {
	var result strings.Builder
	for _, r := range input {
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// Truncate shortens s to limit runes, marking the cut with an ellipsis.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
