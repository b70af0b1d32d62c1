// Package qc runs the quality-control battery over processed speaker
// records. Findings are data: blocking issues gate sign-off, warnings are
// advisory, and nothing here ever raises.
package qc

import (
	"fmt"
	"strings"

	"github.com/eventpress/speakerkit/config"
	"github.com/eventpress/speakerkit/filter"
	"github.com/eventpress/speakerkit/speaker"
	"github.com/eventpress/speakerkit/utils"
)

// techItem pairs a canonical requirement name with the keywords that count
// as mentioning it. Order fixes the order of "missing" findings.
type techItem struct {
	name     string
	keywords []string
}

var techItems = []techItem{
	{"microphone", []string{"mic", "microphone"}},
	{"projector/screen", []string{"projector", "screen", "display"}},
	{"laptop/computer", []string{"laptop", "computer", "pc"}},
	{"clicker/remote", []string{"clicker", "remote", "advance"}},
	{"internet", []string{"internet", "wifi", "wi-fi", "network"}},
}

// minTechChars is the threshold below which a requirements string counts as
// unspecified.
const minTechChars = 5

// ValidateImageFunc lets tests substitute the image-validation collaborator.
type ValidateImageFunc func(path string, cfg *config.Pipeline) ImageValidation

// Checker evaluates speaker records against the configured content rules.
type Checker struct {
	cfg           *config.Pipeline
	filter        *filter.Filter
	validateImage ValidateImageFunc
}

// New creates a Checker. The buzzword filter is shared with the shaper so
// both judge text against the same blocklist.
func New(cfg *config.Pipeline, f *filter.Filter) *Checker {
	return &Checker{cfg: cfg, filter: f, validateImage: ValidateImage}
}

// SetImageValidator overrides the image-validation collaborator.
func (c *Checker) SetImageValidator(fn ValidateImageFunc) {
	c.validateImage = fn
}

// CheckAll runs every check against rec and returns the result. The record
// is read, never modified; checks run in a fixed order so the issue and
// warning sequences are deterministic.
func (c *Checker) CheckAll(rec *speaker.Record) *speaker.QCResult {
	var issues, warnings []string
	checklist := speaker.Checklist{
		SessionDescriptionClear: true,
		BioUnderLimit:           true,
	}

	// 1. Headshot presence and validity
	if strings.TrimSpace(rec.HeadshotPath) != "" {
		checklist.HeadshotPresent = true
		validation := c.validateImage(rec.HeadshotPath, c.cfg)
		if validation.Valid {
			checklist.HeadshotValid = true
		} else {
			issues = append(issues, fmt.Sprintf("Headshot validation failed: %s", validation.Error))
		}
	} else {
		issues = append(issues, "No headshot provided")
	}

	// 2. Bio length bounds
	bioWords := utils.CountWords(rec.Bio)
	checklist.BioWordCount = bioWords
	if bioWords > c.cfg.MaxBioWords {
		checklist.BioUnderLimit = false
		warnings = append(warnings, fmt.Sprintf("Bio is %d words (exceeds %d word limit)", bioWords, c.cfg.MaxBioWords))
	}
	if bioWords < c.cfg.MinBioWords {
		warnings = append(warnings, fmt.Sprintf("Bio is very short (%d words) - may need more detail", bioWords))
	}

	// 3. Buzzwords in bio and session description
	buzzwords := union(c.filter.Find(rec.Bio), c.filter.Find(rec.SessionDescription))
	if len(buzzwords) > 0 {
		checklist.BuzzwordsFound = buzzwords
		warnings = append(warnings, fmt.Sprintf("Buzzwords detected: %s", strings.Join(buzzwords, ", ")))
	}

	// 4. Tech requirements
	techReqs := strings.TrimSpace(rec.TechRequirements)
	if techReqs != "" && len(techReqs) > minTechChars {
		checklist.TechRequirementsSpecified = true
	} else {
		missing := missingTechItems(techReqs)
		checklist.MissingTechItems = missing
		if len(missing) > 0 {
			warnings = append(warnings, fmt.Sprintf("Missing tech requirements: %s", strings.Join(missing, ", ")))
		}
	}

	// 5. Session description clarity
	desc := strings.TrimSpace(rec.SessionDescription)
	if vague := c.detectVagueLanguage(desc); len(vague) > 0 {
		checklist.SessionDescriptionClear = false
		checklist.VagueLanguageDetected = vague
		warnings = append(warnings, fmt.Sprintf("Vague language detected in session: %s", strings.Join(vague, ", ")))
	}
	if utils.CountWords(desc) < c.cfg.MinSessionWords {
		checklist.SessionDescriptionClear = false
		warnings = append(warnings, "Session description is very short - needs more detail")
	}

	// 6. Name vs headshot filename consistency
	name := strings.TrimSpace(rec.Name)
	if checklist.HeadshotPresent && name != "" {
		filenameName := ExtractFilenameName(rec.HeadshotPath)
		if !NamesMatch(name, filenameName, c.cfg.NameMatchThreshold) {
			checklist.NameMismatch = true
			warnings = append(warnings, fmt.Sprintf("Name mismatch: '%s' vs filename '%s'", name, filenameName))
		}
	}

	// Delegated generation failures surface here so they are visible in the
	// report, not only as sentinel text buried in a cell.
	if rec.Processed != nil && rec.Processed.GenerationFailed {
		warnings = append(warnings, "Automated content generation failed - placeholder text substituted")
	}

	return &speaker.QCResult{
		Passed:    len(issues) == 0,
		Issues:    issues,
		Warnings:  warnings,
		Checklist: checklist,
	}
}

// missingTechItems lists the canonical requirements absent from a tech
// string. An empty or near-empty string misses all of them.
func missingTechItems(techText string) []string {
	techLower := strings.ToLower(techText)
	var missing []string
	for _, item := range techItems {
		found := false
		for _, kw := range item.keywords {
			if strings.Contains(techLower, kw) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, item.name)
		}
	}
	return missing
}

func (c *Checker) detectVagueLanguage(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var detected []string
	for _, phrase := range c.cfg.VaguePhrases {
		if strings.Contains(lower, phrase) {
			detected = append(detected, phrase)
		}
	}
	return detected
}

// union merges two found-phrase lists, preserving first-seen order.
func union(a, b []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range append(append([]string{}, a...), b...) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
