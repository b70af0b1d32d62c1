package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/eventpress/speakerkit/speaker"
)

var (
	slugStripRe    = regexp.MustCompile(`[^a-z0-9 \-]`)
	slugCollapseRe = regexp.MustCompile(`[ \-]+`)
)

// NameSlug turns a speaker name into a filename-safe slug: lowercase, strip
// everything but letters, digits, spaces, and hyphens, then collapse the
// separators to underscores.
func NameSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugStripRe.ReplaceAllString(slug, "")
	slug = slugCollapseRe.ReplaceAllString(slug, "_")
	return strings.Trim(slug, "_")
}

// OutputFilename derives the spreadsheet filename for a batch: the first
// speaker's slug, or up to three slugs joined with an "and_others" marker
// for larger batches, plus a generation timestamp.
func OutputFilename(records []*speaker.Record, now time.Time) string {
	timestamp := now.Format("20060102_150405")

	var slugs []string
	for _, rec := range records {
		if len(slugs) == 3 {
			break
		}
		if slug := NameSlug(rec.DisplayName()); slug != "" {
			slugs = append(slugs, slug)
		}
	}

	base := strings.Join(slugs, "_")
	if base == "" {
		base = "speaker_content"
	}
	if len(records) > 3 {
		base += "_and_others"
	}

	return fmt.Sprintf("%s_%s.xlsx", base, timestamp)
}
