package shape

import (
	"fmt"
	"strings"

	"github.com/eventpress/speakerkit/speaker"
)

// toneGuidelines apply to every generation prompt.
const toneGuidelines = `- Professional but approachable
- No jargon or corporate buzzwords
- Active voice only
- Attendee-centric language (focus on what attendees will learn, not what speakers will "share")
- Clear and concise
- Inclusive and accessible language`

func (s *Shaper) bioPrompt(rec *speaker.Record) string {
	var b strings.Builder
	b.WriteString("You are processing speaker biographical information for an event.\n\n")
	b.WriteString("Original bio:\n")
	b.WriteString(rec.Bio)
	b.WriteString("\n\n")
	if rec.Name != "" {
		fmt.Fprintf(&b, "Speaker name: %s\n\n", rec.Name)
	}

	fmt.Fprintf(&b, `Please create THREE versions of this bio following these strict requirements:

1. SHORT VERSION (exactly %d words):
   - Concise, highlights key credentials
   - Professional but approachable tone

2. MEDIUM VERSION (exactly %d words):
   - More detail than short version
   - Include relevant experience and expertise
   - Professional but approachable tone

3. ONE-SENTENCE INTRO (1 compelling sentence for an emcee):
   - Exciting and engaging
   - Highlights most impressive credential or achievement
   - Sets up why the audience should listen

IMPORTANT RULES:
%s

FORBIDDEN WORDS (do not use these): %s

Return your response as JSON in this exact format:
{
    "short": "%d-word bio here",
    "medium": "%d-word bio here",
    "intro": "One-sentence intro here"
}
`,
		s.cfg.BioShortWords, s.cfg.BioMediumWords,
		toneGuidelines, strings.Join(s.cfg.Buzzwords, ", "),
		s.cfg.BioShortWords, s.cfg.BioMediumWords)
	return b.String()
}

func (s *Shaper) sessionPrompt(rec *speaker.Record) string {
	var b strings.Builder
	b.WriteString("You are processing session information for an event program.\n\n")
	fmt.Fprintf(&b, "Session Title: %s\n\n", rec.SessionTitle)
	fmt.Fprintf(&b, "Session Description:\n%s\n\n", rec.SessionDescription)

	fmt.Fprintf(&b, `Please create:

1. ABSTRACT (exactly %d words):
   - Professional, active voice
   - Focus on what ATTENDEES will learn or gain
   - Clear and compelling
   - No vague language

2. KEY TAKEAWAYS (exactly %d bullet points):
   - Specific, actionable outcomes
   - Attendee-focused (what they'll be able to DO)
   - Clear and concrete

IMPORTANT RULES:
%s

FORBIDDEN WORDS (do not use these): %s

Return your response as JSON in this exact format:
{
    "abstract": "%d-word abstract here",
    "takeaways": [
        "First specific takeaway",
        "Second specific takeaway",
        "Third specific takeaway"
    ]
}
`,
		s.cfg.AbstractWords, s.cfg.TakeawayCount,
		toneGuidelines, strings.Join(s.cfg.Buzzwords, ", "),
		s.cfg.AbstractWords)
	return b.String()
}

func (s *Shaper) altTextPrompt(rec *speaker.Record) string {
	var b strings.Builder
	b.WriteString("Generate professional, WCAG-compliant alt text for a speaker headshot photo.\n\n")
	fmt.Fprintf(&b, "Speaker Name: %s\n", rec.DisplayName())
	if rec.Bio != "" {
		excerpt := rec.Bio
		if len(excerpt) > 200 {
			excerpt = excerpt[:200] + "..."
		}
		fmt.Fprintf(&b, "Bio context: %s\n", excerpt)
	}
	b.WriteString(`
The alt text should:
- Be descriptive but concise (1-2 sentences max)
- Follow WCAG 2.1 guidelines
- Be professional
- Focus on describing what's relevant for context

Return ONLY the alt text, nothing else.
`)
	return b.String()
}
