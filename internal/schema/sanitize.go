package schema

import "strings"

// Sanitize strips ASCII control characters (0x00–0x1F, 0x7F) from string
// values so they cannot break the serialized payload. Non-string values pass
// through untouched; all printable Unicode is preserved.
func Sanitize(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}

	return SanitizeString(s)
}

// SanitizeString is Sanitize for a known string.
func SanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return -1
		}

		return r
	}, s)
}
