// Package phone normalizes Kenyan mobile numbers into the canonical
// 10-digit local form ("07…"/"01…"). Validation is pure and idempotent:
// a cleaned number validates to itself.
package phone

import (
	"fmt"
	"strings"
)

// Result of a validation attempt. When Valid is true Cleaned holds the
// canonical local form; otherwise Err holds a user-facing reason.
type Result struct {
	Valid   bool   `json:"valid"`
	Cleaned string `json:"cleaned,omitempty"`
	Err     string `json:"error,omitempty"`
}

func invalid(reason string) Result {
	return Result{Valid: false, Err: reason}
}

// Validate normalizes and validates a raw phone number. Accepted inputs
// are the international form (2547XXXXXXXX, with or without a leading
// "+"), the local form (07XXXXXXXX) and the bare 9-digit core.
func Validate(raw string) Result {
	if raw == "" {
		return invalid("Phone number is required")
	}

	normalized := stripFormatting(raw)
	if !digitsOnly(normalized) {
		return invalid("Phone number should contain only digits")
	}

	core := normalized
	switch {
	case strings.HasPrefix(normalized, "254"):
		if len(normalized) != 12 {
			return invalid("Invalid international format. Should be 254 followed by 9 digits")
		}
		core = normalized[3:]
	case strings.HasPrefix(normalized, "0"):
		if len(normalized) != 10 {
			return invalid("Invalid local format. Should be 0 followed by 9 digits (10 digits total)")
		}
		core = normalized[1:]
	}

	if len(core) != 9 {
		switch {
		case len(normalized) < 9:
			return invalid("Phone number is too short. Expected 9-12 digits")
		case len(normalized) > 12:
			return invalid("Phone number is too long. Expected 9-12 digits")
		default:
			return invalid(fmt.Sprintf("Invalid length. Got %d digits, expected 9 after removing country code", len(core)))
		}
	}

	// Kenyan mobile prefixes after the country code are 1 and 7.
	if core[0] != '1' && core[0] != '7' {
		return invalid("Invalid phone number format. Kenyan mobile numbers start with 1 or 7 (after removing country code)")
	}

	return Result{Valid: true, Cleaned: "0" + core}
}

// Normalize strips spaces, dashes, parentheses and plus signs without
// validating. Used by customer lookup to compare stored and searched
// numbers on equal footing.
func Normalize(raw string) string {
	return stripFormatting(raw)
}

func stripFormatting(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '-', '(', ')', '+':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func digitsOnly(s string) bool {
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
