package util

import (
	"regexp"
	"strings"
)

// PhonePrefix is the Argentine country code plus the mobile marker WhatsApp expects.
const PhonePrefix = "549"

var validPhone = regexp.MustCompile(`^549\d{7,12}$`)

// NormalizePhone converts any common Argentine notation to the digits WhatsApp links use.
// The prefix is applied exactly once, so normalizing a normalized number is a no-op.
func NormalizePhone(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, raw)
	if digits == "" {
		return ""
	}

	national := digits
	switch {
	case strings.HasPrefix(national, PhonePrefix):
		national = national[len(PhonePrefix):]
	case strings.HasPrefix(national, "54"):
		national = national[2:]
	}
	// Trunk prefix, then the mobile marker when it precedes a full 10 digit number.
	national = strings.TrimPrefix(national, "0")
	if len(national) == 11 && national[0] == '9' {
		national = national[1:]
	}

	return PhonePrefix + national
}

// ValidPhone reports whether raw normalizes to a plausible WhatsApp number.
func ValidPhone(raw string) bool {
	return validPhone.MatchString(NormalizePhone(raw))
}
