// utils/validation.go
package utils

import (
	"strings"
	"unicode"
)

// coveredPrefixes are the postcode areas the school teaches in. This is a
// prefix check for display purposes only, not a postcode-district
// validator, and it never gates a booking.
var coveredPrefixes = []string{"KT", "SW", "TW"}

// IsCoveredPostcode reports whether a postcode falls inside the coverage
// area. Input is normalized by upper-casing and stripping whitespace, so
// "kt6 7qj" and "KT67QJ" classify the same.
func IsCoveredPostcode(postcode string) bool {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, postcode)

	for _, prefix := range coveredPrefixes {
		if strings.HasPrefix(cleaned, prefix) {
			return true
		}
	}
	return false
}
