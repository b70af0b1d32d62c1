// Package synth fills gaps in speaker records. When a packet arrives with a
// placeholder title, a missing description, or no tech requirements, the
// synthesizer derives reasonable substitutes from whatever context exists.
// All synthesis is deterministic: the same input always yields the same
// output.
package synth

import (
	"fmt"
	"strings"

	"github.com/eventpress/speakerkit/config"
	"github.com/eventpress/speakerkit/speaker"
	"github.com/eventpress/speakerkit/utils"
)

// minFieldLength is the character threshold under which a field counts as
// effectively empty.
const minFieldLength = 10

// Enriched carries the shaping inputs after gap filling. The raw record
// fields stay as extracted so quality control can judge what the speaker
// actually provided.
type Enriched struct {
	Bio              string
	Description      string
	TechRequirements string

	// BioSynthesized et al. record which fields were substituted.
	BioSynthesized  bool
	DescSynthesized bool
	TechSynthesized bool
}

// Synthesizer derives substitute content for missing record fields.
type Synthesizer struct {
	cfg *config.Pipeline
}

// New creates a Synthesizer bound to the pipeline configuration.
func New(cfg *config.Pipeline) *Synthesizer {
	return &Synthesizer{cfg: cfg}
}

// Fill resolves every gap in rec. A placeholder session title is replaced in
// place (the runner-up suggestion goes to rec.AlternateTitle); bio,
// description, and tech substitutes are returned for the shaper without
// touching the extracted fields.
func (s *Synthesizer) Fill(rec *speaker.Record) Enriched {
	e := Enriched{
		Bio:              rec.Bio,
		Description:      rec.SessionDescription,
		TechRequirements: rec.TechRequirements,
	}

	if s.IsPlaceholderTitle(rec.SessionTitle) {
		titles := s.GenerateSessionTitles(rec.Bio, rec.SessionDescription)
		rec.SessionTitle = titles[0]
		rec.AlternateTitle = titles[1]
	}

	if isBlank(e.Description) {
		e.Description = s.GenerateSessionDescription(rec.Bio, rec.SessionDescription)
		e.DescSynthesized = true
	}

	if isBlank(e.TechRequirements) {
		e.TechRequirements = strings.Join(s.GenerateTechRequirements(rec.Bio, e.Description), "; ")
		e.TechSynthesized = true
	}

	if isBlank(e.Bio) || utils.CountWords(e.Bio) < s.cfg.MinBioWords {
		e.Bio = s.EnhanceBio(rec, e.Bio)
		e.BioSynthesized = true
	}

	return e
}

// IsPlaceholderTitle reports whether a session title is missing or one of
// the known placeholder markers ("TBD", "working title", ...).
func (s *Synthesizer) IsPlaceholderTitle(title string) bool {
	title = strings.ToLower(strings.TrimSpace(title))
	if title == "" {
		return true
	}
	for _, marker := range s.cfg.PlaceholderTitles {
		if title == marker {
			return true
		}
		// Multi-word markers ("working title") may appear inside a longer
		// title; single-word markers ("temp") must stand alone as a token
		// so "Contemporary Design" is never flagged.
		if strings.Contains(marker, " ") {
			if strings.Contains(title, marker) {
				return true
			}
			continue
		}
		for _, tok := range strings.Fields(title) {
			if strings.Trim(tok, "-()[]:,.") == marker {
				return true
			}
		}
	}
	return false
}

// ExtractExpertise scans text against the topic patterns and returns the
// matched canonical labels, deduplicated, in rule order.
func ExtractExpertise(text string) []string {
	var labels []string
	for _, rule := range expertiseRules {
		if rule.pattern.MatchString(text) {
			labels = append(labels, rule.label)
		}
	}
	return labels
}

// GenerateSessionTitles classifies the combined bio and description against
// the title buckets and returns exactly two titles: the one to use and an
// alternate suggestion.
func (s *Synthesizer) GenerateSessionTitles(bio, description string) [2]string {
	combined := bio + " " + description
	param := "Technology"
	if expertise := ExtractExpertise(combined); len(expertise) > 0 {
		param = expertise[0]
	}

	templates := genericTitles
	for _, rule := range titleRules {
		if utils.ContainsAnyKeyword(combined, rule.keywords) {
			templates = rule.templates
			break
		}
	}

	var titles [2]string
	for i, tmpl := range templates {
		if strings.Contains(tmpl, "%s") {
			titles[i] = fmt.Sprintf(tmpl, param)
		} else {
			titles[i] = tmpl
		}
	}
	return titles
}

// GenerateSessionDescription builds a description from up to two expertise
// labels found in the surrounding context.
func (s *Synthesizer) GenerateSessionDescription(bio, description string) string {
	expertise := ExtractExpertise(bio + " " + description)
	switch len(expertise) {
	case 0:
		return "In this session, you'll learn practical approaches drawn from the speaker's real-world experience, with concrete examples you can apply to your own work."
	case 1:
		return fmt.Sprintf("In this session, you'll learn practical approaches to %s, drawn from the speaker's real-world experience, with concrete examples you can apply to your own work.", strings.ToLower(expertise[0]))
	default:
		return fmt.Sprintf("In this session, you'll learn practical approaches to %s and %s, drawn from the speaker's real-world experience, with concrete examples you can apply to your own work.", strings.ToLower(expertise[0]), strings.ToLower(expertise[1]))
	}
}

// GenerateTechRequirements derives an AV list from the session context: the
// generic base list, adjusted when the session involves live demos,
// interactive formats, or security topics. The four most relevant items are
// returned.
func (s *Synthesizer) GenerateTechRequirements(bio, description string) []string {
	items := make([]string, len(baseTechItems))
	copy(items, baseTechItems)

	desc := strings.ToLower(description)
	if strings.Contains(desc, "demo") {
		// Live demos need wired network first, not best-effort venue Wi-Fi.
		items = append([]string{"Wired internet connection for live demo"}, items...)
	}
	if strings.Contains(desc, "interactive") || strings.Contains(desc, "workshop") {
		items = append(items, "Handheld microphones for audience participation")
	}
	if utils.ContainsKeyword(bio, "security") {
		items = append(items, "Isolated network segment for security demonstrations")
	}

	if len(items) > 4 {
		items = items[:4]
	}
	return items
}

// EnhanceBio produces a usable bio for shaping when the provided one is
// missing or too thin: a generic base, an expertise-qualified sentence, and
// a closing line, phrased around the speaker's first name.
func (s *Synthesizer) EnhanceBio(rec *speaker.Record, bio string) string {
	first := rec.FirstName()
	subject, verb := first, "brings"
	if first == "they" {
		subject, verb = "They", "bring"
	}

	if isBlank(bio) {
		bio = fmt.Sprintf("%s is a practitioner with hands-on experience in their field.", displayOrThey(rec))
	}

	var parts []string
	parts = append(parts, strings.TrimSuffix(strings.TrimSpace(bio), "."))

	expertise := ExtractExpertise(bio + " " + rec.SessionDescription + " " + rec.SessionTitle)
	switch len(expertise) {
	case 0:
		parts = append(parts, fmt.Sprintf("%s %s practical experience from years of real-world work", subject, verb))
	case 1:
		parts = append(parts, fmt.Sprintf("%s %s deep experience in %s", subject, verb, expertise[0]))
	default:
		parts = append(parts, fmt.Sprintf("%s %s deep experience in %s and %s", subject, verb, expertise[0], expertise[1]))
	}
	parts = append(parts, "Attendees can expect practical, experience-driven insights")

	return strings.Join(parts, ". ") + "."
}

func displayOrThey(rec *speaker.Record) string {
	if strings.TrimSpace(rec.Name) == "" {
		return "This speaker"
	}
	return rec.DisplayName()
}

func isBlank(s string) bool {
	return len(strings.TrimSpace(s)) < minFieldLength
}
