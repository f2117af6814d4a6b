package strx

import "strings"

// Coalesce returns the first non-empty string, or "" if all are empty.
func Coalesce(vals ...string) string {
	for _, s := range vals {
		if s != "" {
			return s
		}
	}
	return ""
}

// FoldKey normalises an identifier for lookups: case-insensitive, with
// '_', '.' and ' ' treated like '-'.
func FoldKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '.', ' ':
			return '-'
		}
		return r
	}, s)
}
