package model

import "strings"

// KeywordSet is an ordered list of severity keywords. Earlier entries win.
type KeywordSet []string

var defaultKeywords = KeywordSet{"ERROR", "ERR", "MEDIA_TIMEOUT", "AbandonedCall", "Warning"}

// DefaultKeywords returns a copy of the built-in keyword priority list.
func DefaultKeywords() KeywordSet {
	keywords := make(KeywordSet, len(defaultKeywords))
	copy(keywords, defaultKeywords)
	return keywords
}

// Match returns the first keyword contained in line. Matching is case-sensitive.
func (k KeywordSet) Match(line string) (string, bool) {
	for _, kw := range k {
		// an empty keyword would match every line
		if kw == "" {
			continue
		}
		if strings.Contains(line, kw) {
			return kw, true
		}
	}
	return "", false
}
