package service

import (
	"math"
	"strings"
	"unicode"
)

const (
	// MaxNameLength bounds customer and item names.
	MaxNameLength = 64
	// PhoneDigits is the exact digit count a phone number must carry.
	PhoneDigits = 10
)

// ValidateName checks that a customer or item name is present and within
// the length bound.
func ValidateName(name string) error {
	if name == "" {
		return invalidf("name", "must not be empty")
	}
	if len(name) > MaxNameLength {
		return invalidf("name", "longer than %d characters", MaxNameLength)
	}
	return nil
}

// NormalizePhone strips separators from a phone number and formats the
// digits as xxx-xxx-xxxx. Anything other than exactly ten digits is
// rejected.
func NormalizePhone(phone string) (string, error) {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) != PhoneDigits {
		return "", invalidf("phone", "must contain exactly %d digits", PhoneDigits)
	}
	return digits[:3] + "-" + digits[3:6] + "-" + digits[6:], nil
}

// RoundPrice rounds a price to two decimals, the precision stored and
// returned for items.
func RoundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}
