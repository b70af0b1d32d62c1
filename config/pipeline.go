package config

import "strings"

// Pipeline holds the content rules applied to every speaker record. It is
// constructed once per processing request and passed explicitly into the
// filter, shaper, synthesizer, and quality checker so per-event overrides
// never leak between requests.
type Pipeline struct {
	// Word limits for generated content
	BioShortWords   int
	BioMediumWords  int
	IntroMaxWords   int
	AbstractWords   int
	TakeawayCount   int
	MaxBioWords     int
	MinBioWords     int
	MinSessionWords int

	// Phrases removed from generated content and flagged by QC
	Buzzwords []string

	// Generic filler phrases flagged in session descriptions
	VaguePhrases []string

	// Markers that make a session title count as "not yet provided"
	PlaceholderTitles []string

	// Name similarity threshold for headshot filename checks
	NameMatchThreshold float64

	// Accepted file extensions
	ImageExtensions  []string
	PacketExtensions []string
}

// DefaultPipeline returns the stock event-content rules.
func DefaultPipeline() *Pipeline {
	return &Pipeline{
		BioShortWords:   50,
		BioMediumWords:  100,
		IntroMaxWords:   20,
		AbstractWords:   75,
		TakeawayCount:   3,
		MaxBioWords:     500,
		MinBioWords:     20,
		MinSessionWords: 20,

		Buzzwords: []string{
			"synergy",
			"thought leader",
			"rockstar",
			"ninja",
			"guru",
			"disruptive",
			"paradigm shift",
			"game-changer",
			"innovator",
			"visionary",
		},

		VaguePhrases: []string{
			"inspiring talk",
			"deep dive",
			"share insights",
			"explore topics",
			"discuss ideas",
			"engaging presentation",
			"interactive session",
			"and more",
			"best practices",
		},

		PlaceholderTitles: []string{
			"tbd",
			"tba",
			"working title",
			"placeholder",
			"temp",
			"title tbd",
		},

		NameMatchThreshold: 0.6,

		ImageExtensions:  []string{".jpg", ".jpeg", ".png", ".heic", ".webp", ".gif"},
		PacketExtensions: []string{".txt", ".pdf", ".docx", ".doc"},
	}
}

// IsImageExtension reports whether ext (with leading dot, any case) is an
// accepted headshot format.
func (p *Pipeline) IsImageExtension(ext string) bool {
	return containsFold(p.ImageExtensions, ext)
}

// IsPacketExtension reports whether ext is an accepted bio packet format.
func (p *Pipeline) IsPacketExtension(ext string) bool {
	return containsFold(p.PacketExtensions, ext)
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
