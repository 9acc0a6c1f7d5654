package pricing

import "strings"

// PostalCodeDigits is the length of a complete Brazilian postal code (CEP).
const PostalCodeDigits = 8

// NormalizePostalCode strips every non-digit character.
func NormalizePostalCode(postalCode string) string {
	var b strings.Builder
	b.Grow(len(postalCode))
	for _, r := range postalCode {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsCompletePostalCode reports whether postalCode has at least eight digits once normalized.
func IsCompletePostalCode(postalCode string) bool {
	return len(NormalizePostalCode(postalCode)) >= PostalCodeDigits
}

// ZoneKey returns the leading digit of a complete postal code.
func ZoneKey(postalCode string) (string, bool) {
	digits := NormalizePostalCode(postalCode)
	if len(digits) < PostalCodeDigits {
		return "", false
	}
	return digits[:1], true
}

// FormatPostalCode renders a postal code as NNNNN-NNN, the way the cart page masks input.
// Up to five digits are returned as is; digits past the eighth are dropped.
func FormatPostalCode(postalCode string) string {
	digits := NormalizePostalCode(postalCode)
	if len(digits) <= 5 {
		return digits
	}
	if len(digits) > PostalCodeDigits {
		digits = digits[:PostalCodeDigits]
	}
	return digits[:5] + "-" + digits[5:]
}
