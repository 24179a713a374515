package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// normalizeTitle trims a title and puts it in NFC so composed and
// decomposed forms (e.g. "ё" vs "е"+U+0308) compare equal.
func normalizeTitle(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// fold returns the caseless form of s used for matching.
// A cases.Caser is stateful, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// MatchesQuery reports whether title contains query, ignoring case.
// An empty query matches every title.
func MatchesQuery(title, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(fold(title), fold(query))
}

// FilterByQuery returns the entries whose title matches query, preserving order.
func FilterByQuery(entries []*Entry, query string) []*Entry {
	out := make([]*Entry, 0, len(entries))
	if query == "" {
		return append(out, entries...)
	}
	folded := fold(query)
	for _, e := range entries {
		if strings.Contains(fold(e.Title), folded) {
			out = append(out, e)
		}
	}
	return out
}
