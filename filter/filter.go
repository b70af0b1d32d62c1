// Package filter removes configured marketing buzzwords from text fields.
package filter

import (
	"regexp"
	"strings"

	"github.com/eventpress/speakerkit/config"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Filter strips a blocklist of buzzword phrases from text. Matching is
// case-insensitive and word-boundary aware, so a blocked "ninja" never
// touches "ninjaware". A Filter is immutable and safe for concurrent use.
type Filter struct {
	phrases  []string
	patterns []*regexp.Regexp
}

// New compiles a Filter from the pipeline's buzzword list.
func New(cfg *config.Pipeline) *Filter {
	f := &Filter{
		phrases:  make([]string, 0, len(cfg.Buzzwords)),
		patterns: make([]*regexp.Regexp, 0, len(cfg.Buzzwords)),
	}
	for _, phrase := range cfg.Buzzwords {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			continue
		}
		f.phrases = append(f.phrases, phrase)
		f.patterns = append(f.patterns, compilePhrase(phrase))
	}
	return f
}

// compilePhrase builds a case-insensitive whole-phrase pattern. \b anchors
// only work against word characters, so phrases ending in punctuation (e.g.
// "game-changer") still get correct boundaries from the trailing word rune.
func compilePhrase(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
}

// Clean removes every blocklisted phrase from text, collapses the resulting
// whitespace runs, and trims. Running Clean on already-clean text returns
// the text unchanged.
func (f *Filter) Clean(text string) string {
	if text == "" {
		return ""
	}
	for _, p := range f.patterns {
		text = p.ReplaceAllString(text, "")
	}
	text = whitespaceRe.ReplaceAllString(text, " ")
	// Drop the orphaned space a removed phrase leaves before punctuation.
	text = strings.ReplaceAll(text, " ,", ",")
	text = strings.ReplaceAll(text, " .", ".")
	return strings.TrimSpace(text)
}

// Find returns the blocklisted phrases present in text, in blocklist order.
func (f *Filter) Find(text string) []string {
	if text == "" {
		return nil
	}
	var found []string
	for i, p := range f.patterns {
		if p.MatchString(text) {
			found = append(found, f.phrases[i])
		}
	}
	return found
}
