// Package strings provides string sanitisation utilities for form input.
package strings

import (
	"strings"
	"unicode"
)

// DigitsOnly drops every character that is not an ASCII digit, keeping the
// remaining digits in their original order.
//
// Example:
//
//	DigitsOnly("12a3 4b")
//	// Returns: "1234"
func DigitsOnly(value string) string {
	if value == "" {
		return value
	}
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsBlank reports whether value is empty or only whitespace.
func IsBlank(value string) bool {
	return strings.IndexFunc(value, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}
