package speaker

import "strings"

// UnknownName is the display name used when a packet carries no speaker name.
const UnknownName = "Unknown"

// Record is one speaker's raw intake data plus everything derived from it.
// The raw fields are fixed once extraction completes; Processed and QC are
// each populated exactly once, content first, quality control second.
type Record struct {
	Name               string `json:"name"`
	Bio                string `json:"bio"`
	SessionTitle       string `json:"session_title"`
	SessionDescription string `json:"session_description"`
	TechRequirements   string `json:"tech_requirements"`
	HeadshotPath       string `json:"headshot_path,omitempty"`

	// AlternateTitle holds the runner-up suggestion when the session title
	// was synthesized.
	AlternateTitle string `json:"alternate_title,omitempty"`

	// SourceFile is the packet file this record was extracted from, when the
	// record came from a file rather than a form submission.
	SourceFile string `json:"source_file,omitempty"`

	Processed *ProcessedContent `json:"processed,omitempty"`
	QC        *QCResult         `json:"quality_control,omitempty"`
}

// ProcessedContent holds the promotional content generated for a speaker.
type ProcessedContent struct {
	BioShort  string `json:"bio_short"`
	BioMedium string `json:"bio_medium"`
	BioIntro  string `json:"bio_intro"`

	SessionAbstract string   `json:"session_abstract"`
	Takeaways       []string `json:"takeaways"`

	AltText string `json:"alt_text"`

	// TechRequirements is the final requirements list for the program:
	// the speaker's own when specified, a synthesized list otherwise.
	TechRequirements string `json:"tech_requirements"`

	// GenerationFailed is set when a delegated generation call produced an
	// unparseable response and sentinel text was substituted.
	GenerationFailed bool `json:"generation_failed,omitempty"`
}

// QCResult is the outcome of the quality-control battery for one speaker.
// Issues block sign-off; warnings are advisory and never affect Passed.
type QCResult struct {
	Passed    bool      `json:"passed"`
	Issues    []string  `json:"issues"`
	Warnings  []string  `json:"warnings"`
	Checklist Checklist `json:"checklist"`
}

// Checklist is the fixed set of per-speaker quality indicators. The report
// assembler renders these fields verbatim, one column each.
type Checklist struct {
	HeadshotPresent           bool     `json:"headshot_present"`
	HeadshotValid             bool     `json:"headshot_valid"`
	TechRequirementsSpecified bool     `json:"tech_requirements_specified"`
	MissingTechItems          []string `json:"missing_tech_items"`
	SessionDescriptionClear   bool     `json:"session_description_clear"`
	VagueLanguageDetected     []string `json:"vague_language_detected"`
	BioUnderLimit             bool     `json:"bio_under_limit"`
	BioWordCount              int      `json:"bio_word_count"`
	NameMismatch              bool     `json:"name_mismatch"`
	BuzzwordsFound            []string `json:"buzzwords_found"`
}

// DisplayName returns the speaker name, falling back to the sentinel when
// the packet carried none.
func (r *Record) DisplayName() string {
	if name := strings.TrimSpace(r.Name); name != "" {
		return name
	}
	return UnknownName
}

// FirstName returns the first token of the speaker's name, or "they" when
// no name is known. Used by the bio synthesizer.
func (r *Record) FirstName() string {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return "they"
	}
	return strings.Fields(name)[0]
}
