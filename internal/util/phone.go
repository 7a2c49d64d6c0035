// Package util holds small pure helpers shared across layers.
package util

import (
	"strings"
	"unicode"
)

// maxPhoneDigits is the E.164 limit; longer strings are passed through untouched.
const maxPhoneDigits = 15

// PhoneFormat canonicalizes phones for a single country and default area.
type PhoneFormat struct {
	CountryCode string
	AreaCode    string
}

// Normalize maps a raw phone to canonical digits:
//   - 8 or 9 digits (local number): country + area + number
//   - 10 or 11 digits (area + number): country + number
//   - anything else, including more than 15 digits: the stripped digits unchanged
func (f PhoneFormat) Normalize(raw string) string {
	digits := DigitsOnly(raw)

	switch n := len(digits); {
	case n > maxPhoneDigits:
		return digits
	case n == 8 || n == 9:
		return f.CountryCode + f.AreaCode + digits
	case n == 10 || n == 11:
		return f.CountryCode + digits
	default:
		return digits
	}
}

// DigitsOnly strips every non-digit rune.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// IsDigits reports whether s is non-empty and made only of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}

	return DigitsOnly(s) == s
}
