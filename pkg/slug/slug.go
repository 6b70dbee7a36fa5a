// Package slug derives URL-safe identifiers from display names.
package slug

import "strings"

// Make lowercases the name, replaces every rune outside [a-z0-9] and
// the CJK unified ideograph block with a hyphen, collapses runs of
// hyphens and trims them from both ends. Uniqueness is the caller's
// concern: probe the store and append -1, -2, ... on collision.
func Make(name string) string {
	lowered := strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(lowered))
	lastHyphen := false
	for _, r := range lowered {
		if keep(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}

func keep(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r >= 0x4e00 && r <= 0x9fa5:
		return true
	}
	return false
}
