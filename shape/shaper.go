// Package shape turns a speaker's raw bio and session fields into the
// promotional content variants event staff publish.
package shape

import (
	"context"
	"fmt"
	"strings"

	"github.com/eventpress/speakerkit/config"
	"github.com/eventpress/speakerkit/filter"
	"github.com/eventpress/speakerkit/speaker"
	"github.com/eventpress/speakerkit/utils"
)

// Sentinel text substituted when a delegated generation response cannot be
// decoded. It lands in the spreadsheet verbatim; ProcessedContent's
// GenerationFailed flag carries the same signal programmatically.
const (
	SentinelBio     = "Error: Could not parse bio"
	SentinelSession = "Error: Could not parse session"
	SentinelAltText = "Error: Could not generate alt text"
)

// AltTextMissing is the fixed alt text used when no headshot exists.
const AltTextMissing = "No headshot provided"

// Generator is the pluggable text-generation capability. Implementations
// perform one blocking round-trip; the shaper owns prompt construction and
// response decoding.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Shaper produces ProcessedContent for a record, either deterministically
// or by delegating to a Generator when one is configured.
type Shaper struct {
	cfg    *config.Pipeline
	filter *filter.Filter
	gen    Generator
}

// New creates a Shaper. gen may be nil, which forces the deterministic path.
func New(cfg *config.Pipeline, f *filter.Filter, gen Generator) *Shaper {
	return &Shaper{cfg: cfg, filter: f, gen: gen}
}

// Shape fills rec.Processed. It never returns an error: delegated failures
// degrade to sentinel text with GenerationFailed set, so one speaker's bad
// generation never sinks a batch.
func (s *Shaper) Shape(ctx context.Context, rec *speaker.Record) {
	if s.gen != nil {
		rec.Processed = s.shapeDelegated(ctx, rec)
	} else {
		rec.Processed = s.shapeDeterministic(rec)
	}
	s.enforceLimits(rec.Processed)
}

// enforceLimits guarantees the word-cap invariants regardless of which path
// produced the content: capped fields never exceed their limit and end with
// sentence punctuation.
func (s *Shaper) enforceLimits(pc *speaker.ProcessedContent) {
	pc.BioShort = capField(pc.BioShort, s.cfg.BioShortWords)
	pc.BioMedium = capField(pc.BioMedium, s.cfg.BioMediumWords)
	pc.SessionAbstract = capField(pc.SessionAbstract, s.cfg.AbstractWords)

	// The intro is the announcement template plus one capped sentence.
	pc.BioIntro = capField(pc.BioIntro, s.cfg.IntroMaxWords*2)

	// Exactly TakeawayCount entries, always.
	for len(pc.Takeaways) < s.cfg.TakeawayCount {
		pc.Takeaways = append(pc.Takeaways, "")
	}
	pc.Takeaways = pc.Takeaways[:s.cfg.TakeawayCount]
}

func (s *Shaper) shapeDeterministic(rec *speaker.Record) *speaker.ProcessedContent {
	bio := s.filter.Clean(rec.Bio)
	desc := s.filter.Clean(rec.SessionDescription)
	name := rec.DisplayName()

	return &speaker.ProcessedContent{
		BioShort:        utils.TruncateWords(bio, s.cfg.BioShortWords),
		BioMedium:       utils.TruncateWords(bio, s.cfg.BioMediumWords),
		BioIntro:        s.introSentence(name, bio),
		SessionAbstract: s.abstract(desc),
		Takeaways:       s.takeaways(rec.SessionTitle, desc),
		AltText:         s.altText(rec),
	}
}

// introSentence builds the emcee announcement from the bio's first sentence.
func (s *Shaper) introSentence(name, bio string) string {
	sentence := utils.TruncateWords(utils.FirstSentence(bio), s.cfg.IntroMaxWords)
	sentence = strings.TrimSuffix(sentence, ".")
	if sentence == "" {
		return fmt.Sprintf("Please welcome %s.", name)
	}
	return fmt.Sprintf("Please welcome %s: %s.", name, sentence)
}

// framingPhrases mark a description as already attendee-framed.
var framingPhrases = []string{"you'll learn", "you will learn", "in this session"}

func (s *Shaper) abstract(desc string) string {
	if desc == "" {
		return ""
	}
	lower := strings.ToLower(desc)
	for _, phrase := range framingPhrases {
		if strings.Contains(lower, phrase) {
			return utils.TruncateWords(desc, s.cfg.AbstractWords)
		}
	}
	framed := "In this session, " + lowerFirst(desc)
	return utils.TruncateWords(framed, s.cfg.AbstractWords)
}

// takeawayRule maps topic keywords to a canned takeaway triple. Rules are
// evaluated in order; the first keyword hit wins.
type takeawayRule struct {
	keywords  []string
	takeaways [3]string
}

var takeawayRules = []takeawayRule{
	{
		keywords: []string{"customer", "feedback", "client", "cx"},
		takeaways: [3]string{
			"Turn raw customer feedback into a prioritized product roadmap",
			"Identify the feedback channels worth your team's attention",
			"Close the loop with customers so they keep telling you the truth",
		},
	},
	{
		keywords: []string{"security", "cyber", "threat", "privacy", "breach"},
		takeaways: [3]string{
			"Spot the security gaps most teams discover only after an incident",
			"Build a practical threat model for your own systems",
			"Walk away with a checklist for hardening your next release",
		},
	},
	{
		keywords: []string{"ai", "machine learning", "artificial intelligence"},
		takeaways: [3]string{
			"Separate AI capabilities that ship today from the ones that don't",
			"Evaluate where automation genuinely helps your workflow",
			"Leave with criteria for judging AI vendors and tools",
		},
	},
	{
		keywords: []string{"leadership", "team", "culture", "manager"},
		takeaways: [3]string{
			"Apply concrete techniques for growing team ownership",
			"Recognize the habits that quietly erode team trust",
			"Take home a framework for giving feedback that lands",
		},
	},
}

var defaultTakeaways = [3]string{
	"Apply the session's core framework to your own work",
	"Learn from real examples of what worked and what failed",
	"Leave with concrete next steps you can use this week",
}

func (s *Shaper) takeaways(title, desc string) []string {
	haystack := title + " " + desc
	for _, rule := range takeawayRules {
		if utils.ContainsAnyKeyword(haystack, rule.keywords) {
			return rule.takeaways[:]
		}
	}
	return defaultTakeaways[:]
}

func (s *Shaper) altText(rec *speaker.Record) string {
	if strings.TrimSpace(rec.HeadshotPath) == "" {
		return AltTextMissing
	}
	return fmt.Sprintf("Professional headshot of %s, a speaker at this event.", rec.DisplayName())
}

// capField truncates and punctuation-terminates one capped field. Sentinel
// text passes through verbatim so the report shows it exactly as defined.
func capField(text string, limit int) string {
	if text == SentinelBio || text == SentinelSession {
		return text
	}
	return ensurePeriod(utils.TruncateWords(text, limit))
}

func ensurePeriod(s string) string {
	if s == "" {
		return s
	}
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
		return s
	}
	return s + "."
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
