// Package match holds the keyword matching rule shared by the career-path,
// skill-gap and readiness scorers.
package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Matcher reports whether a user tag and a reference keyword refer to the same thing.
type Matcher interface {
	Match(tag, keyword string) bool
}

const (
	ModeSubstring = "substring"
	ModeFolded    = "folded"
)

// NewMatcher resolves a configured mode. Unknown modes get Substring.
func NewMatcher(mode string) Matcher {
	if mode == ModeFolded {
		return Folded{}
	}
	return Substring{}
}

// Substring matches when either lower-cased, trimmed string contains the other.
// "SQL" therefore matches "MySQL"; callers rely on that looseness.
type Substring struct{}

func (Substring) Match(tag, keyword string) bool {
	return contains(Normalize(tag), Normalize(keyword))
}

// Folded is Substring with diacritics removed, so "Nestlé" matches "nestle".
type Folded struct{}

func (Folded) Match(tag, keyword string) bool {
	return contains(fold(tag), fold(keyword))
}

func contains(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// Normalize lower-cases and trims s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return Normalize(s)
	}
	return Normalize(out)
}

// Any reports whether tag matches at least one keyword.
func Any(m Matcher, tag string, keywords []string) bool {
	for _, k := range keywords {
		if m.Match(tag, k) {
			return true
		}
	}
	return false
}

// Count returns how many tags match at least one keyword.
func Count(m Matcher, tags, keywords []string) int {
	n := 0
	for _, t := range tags {
		if Any(m, t, keywords) {
			n++
		}
	}
	return n
}

// AddTag appends tag after trimming, unless it is blank or already present.
func AddTag(tags []string, tag string) []string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return tags
	}
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	return append(tags, tag)
}

// Clean trims every tag and drops blanks and exact duplicates, keeping order.
func Clean(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = AddTag(out, t)
	}
	return out
}
