package logging

import "strings"

// maskedKeys lists substrings of attribute keys whose values are masked,
// compared case-insensitively: device identifiers, dialed numbers and
// credentials.
var maskedKeys = []string{"device_id", "number", "token", "secret"}

// ShouldMask reports whether values logged under key are masked.
func ShouldMask(key string) bool {
	key = strings.ToLower(key)
	for _, k := range maskedKeys {
		if strings.Contains(key, k) {
			return true
		}
	}
	return false
}

// MaskValue hides all but the last four characters of value. Short values
// are hidden entirely.
func MaskValue(value string) string {
	const visible = 4
	if len(value) <= visible {
		return strings.Repeat("*", 8)
	}
	return "****" + value[len(value)-visible:]
}
