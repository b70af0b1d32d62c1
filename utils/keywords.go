package utils

import (
	"strings"
	"unicode"
)

// ContainsKeyword reports whether text mentions keyword. Multi-word and
// longer keywords match as substrings; one- and two-letter keywords ("ai",
// "cx") must match a whole token so "maintain" never counts as "ai".
func ContainsKeyword(text, keyword string) bool {
	text = strings.ToLower(text)
	keyword = strings.ToLower(keyword)

	if len(keyword) > 2 || strings.Contains(keyword, " ") {
		return strings.Contains(text, keyword)
	}

	for _, token := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	}) {
		if token == keyword {
			return true
		}
	}
	return false
}

// ContainsAnyKeyword reports whether text mentions any of the keywords.
func ContainsAnyKeyword(text string, keywords []string) bool {
	for _, kw := range keywords {
		if ContainsKeyword(text, kw) {
			return true
		}
	}
	return false
}
