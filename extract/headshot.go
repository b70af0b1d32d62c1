package extract

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/eventpress/speakerkit/speaker"
)

// photoMarkers are generic filename words that suggest a headshot even when
// the filename carries only part of the speaker's name.
var photoMarkers = []string{"headshot", "photo", "portrait", "profile", "pic"}

var namePunctRe = regexp.MustCompile(`[^\w\s-]`)

// imageExtensions mirrors the accepted headshot formats. Kept local so the
// extractor stays independent of the pipeline configuration; QC re-checks
// the extension against the configured list anyway.
var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true,
	".heic": true, ".webp": true, ".gif": true,
}

// ResolveHeadshot fills rec.HeadshotPath. An in-packet "HEADSHOT:" reference
// wins; otherwise the packet's directory, the working directory, and the
// packet's parent directory are searched for an image plausibly named after
// the speaker.
func ResolveHeadshot(rec *speaker.Record, packetPath string) {
	packetDir := filepath.Dir(packetPath)

	if rec.HeadshotPath != "" {
		if !filepath.IsAbs(rec.HeadshotPath) {
			rec.HeadshotPath = filepath.Join(packetDir, rec.HeadshotPath)
		}
		return
	}

	if strings.TrimSpace(rec.Name) == "" {
		return
	}

	candidates := []string{packetDir, ".", filepath.Dir(packetDir)}
	seen := map[string]bool{}
	for _, dir := range candidates {
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if match := findHeadshotIn(dir, rec.Name); match != "" {
			rec.HeadshotPath = match
			return
		}
	}
}

func findHeadshotIn(dir, name string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	normName := NormalizeName(name)
	parts := nameParts(normName)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filename := entry.Name()
		if !imageExtensions[strings.ToLower(filepath.Ext(filename))] {
			continue
		}
		if filenameMatchesName(filename, normName, parts) {
			return filepath.Join(dir, filename)
		}
	}
	return ""
}

// filenameMatchesName reports whether an image filename plausibly belongs to
// the speaker: full normalized-name substring, a >=3 character name part, or
// a generic photo-marker word combined with any name part.
func filenameMatchesName(filename, normName string, parts []string) bool {
	stem := strings.ToLower(strings.TrimSuffix(filename, filepath.Ext(filename)))
	stem = strings.ReplaceAll(stem, "-", "_")
	stem = strings.ReplaceAll(stem, " ", "_")

	if normName != "" && strings.Contains(stem, normName) {
		return true
	}

	anyPart := false
	for _, part := range parts {
		if !strings.Contains(stem, part) {
			continue
		}
		anyPart = true
		if len(part) >= 3 {
			return true
		}
	}

	if anyPart {
		for _, marker := range photoMarkers {
			if strings.Contains(stem, marker) {
				return true
			}
		}
	}
	return false
}

// NormalizeName lowercases a speaker name, strips punctuation and a leading
// "dr" honorific, and joins the remaining parts with underscores.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = namePunctRe.ReplaceAllString(name, "")
	parts := strings.Fields(name)
	if len(parts) > 1 && parts[0] == "dr" {
		parts = parts[1:]
	}
	return strings.Join(parts, "_")
}

func nameParts(normName string) []string {
	if normName == "" {
		return nil
	}
	return strings.Split(normName, "_")
}
