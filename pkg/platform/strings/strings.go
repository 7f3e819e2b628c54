// Package strings provides string manipulation utilities shared by the
// validators, the core API client and the templates.
package strings

import (
	"strings"
)

// TrimToNil trims whitespace and returns nil for a blank result. Optional form
// fields go through it so that blank input is omitted instead of sent as "".
//
// Example:
//
//	TrimToNil("   ")    // nil
//	TrimToNil(" note ") // pointer to "note"
func TrimToNil(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Deref returns the pointed-to string or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Humanize renders an enum-like identifier for display by replacing
// underscores with spaces.
//
// Example:
//
//	Humanize("ON_HOLD") // "ON HOLD"
func Humanize(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

// IsDigits reports whether s is non-empty and made only of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
