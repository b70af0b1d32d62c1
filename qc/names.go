package qc

import (
	"path/filepath"
	"strings"
)

// ExtractFilenameName derives a candidate speaker name from a headshot
// filename: strip the extension, turn separators into spaces, collapse
// whitespace.
func ExtractFilenameName(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	cleaned := strings.NewReplacer("_", " ", "-", " ").Replace(stem)
	return strings.Join(strings.Fields(cleaned), " ")
}

// NamesMatch reports whether two names plausibly refer to the same person:
// normalized equality, one containing the other, or a sequence-similarity
// ratio at or above threshold.
func NamesMatch(name1, name2 string, threshold float64) bool {
	if strings.TrimSpace(name1) == "" || strings.TrimSpace(name2) == "" {
		return false
	}

	n1 := normalizeForMatch(name1)
	n2 := normalizeForMatch(name2)

	if n1 == n2 {
		return true
	}
	if strings.Contains(n1, n2) || strings.Contains(n2, n1) {
		return true
	}
	return similarityRatio(n1, n2) >= threshold
}

func normalizeForMatch(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// similarityRatio is the classic difflib-style ratio: twice the length of
// the longest common subsequence over the combined length.
func similarityRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	// Standard LCS dynamic program over two rows.
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	lcs := prev[len(b)]
	return 2 * float64(lcs) / float64(len(a)+len(b))
}
