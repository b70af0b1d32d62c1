package utils

import "strings"

// CountWords counts whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// TruncateWords returns at most limit words of text. When the text was
// actually cut, the result is terminated with a period unless it already
// ends in one.
func TruncateWords(text string, limit int) string {
	words := strings.Fields(text)
	if len(words) <= limit {
		return strings.TrimSpace(text)
	}

	out := strings.Join(words[:limit], " ")
	out = strings.TrimRight(out, ",;:")
	if !strings.HasSuffix(out, ".") && !strings.HasSuffix(out, "!") && !strings.HasSuffix(out, "?") {
		out += "."
	}
	return out
}

// FirstSentence returns the text up to the first period, or the whole text
// when it contains none.
func FirstSentence(text string) string {
	if idx := strings.Index(text, "."); idx != -1 {
		return strings.TrimSpace(text[:idx])
	}
	return strings.TrimSpace(text)
}
