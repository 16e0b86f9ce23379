package product

import "strings"

// stripMarkup removes HTML-like tags so emptiness checks see only visible
// text.
func stripMarkup(s string) string {
	var out strings.Builder
	inTag := false

	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			out.WriteRune(r)
		}
	}

	return strings.TrimSpace(out.String())
}
