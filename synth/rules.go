package synth

import "regexp"

// expertiseRule maps a topic pattern to its canonical expertise label.
// Rules are scanned in order; every match contributes a label.
type expertiseRule struct {
	pattern *regexp.Regexp
	label   string
}

var expertiseRules = []expertiseRule{
	{regexp.MustCompile(`(?i)\bai\b|artificial intelligence|machine learning|\bml\b|deep learning`), "AI"},
	{regexp.MustCompile(`(?i)security|cyber|privacy|threat`), "Security"},
	{regexp.MustCompile(`(?i)customer experience|\bcx\b|customer|client`), "Customer Experience"},
	{regexp.MustCompile(`(?i)leadership|leading teams|people management`), "Leadership"},
	{regexp.MustCompile(`(?i)\bdata\b|analytics|metrics`), "Data"},
	{regexp.MustCompile(`(?i)cloud|kubernetes|serverless|aws|azure`), "Cloud"},
	{regexp.MustCompile(`(?i)digital transformation|modernization|legacy`), "Digital Transformation"},
	{regexp.MustCompile(`(?i)software|engineering|developer|programming`), "Software"},
	{regexp.MustCompile(`(?i)marketing|brand|growth`), "Marketing"},
	{regexp.MustCompile(`(?i)project management|agile|scrum|delivery`), "Project Management"},
}

// titleRule pairs a topic predicate with exactly two canned title templates.
// Rules are evaluated in priority order and the first match wins. A %s in a
// template is filled with the first extracted expertise label.
type titleRule struct {
	bucket    string
	keywords  []string
	templates [2]string
}

var titleRules = []titleRule{
	{
		bucket:   "immersive",
		keywords: []string{"immersive", "experience design", "hands-on", "vr", "augmented"},
		templates: [2]string{
			"Beyond the Slides: Building Immersive %s Experiences",
			"Hands-On by Design: Making Sessions People Remember",
		},
	},
	{
		bucket:   "ai",
		keywords: []string{"ai", "artificial intelligence", "machine learning", "legacy"},
		templates: [2]string{
			"From Legacy to Leading Edge: %s in Practice",
			"What AI Actually Changes About Your Work",
		},
	},
	{
		bucket:   "security",
		keywords: []string{"security", "cyber", "threat", "breach", "privacy"},
		templates: [2]string{
			"Securing What Matters: %s Lessons From the Field",
			"Before the Breach: Practical Security for Busy Teams",
		},
	},
	{
		bucket:   "customer",
		keywords: []string{"customer", "feedback", "client", "user research"},
		templates: [2]string{
			"Listening at Scale: Turning %s Feedback Into Action",
			"What Your Customers Are Already Telling You",
		},
	},
	{
		bucket:   "leadership",
		keywords: []string{"leadership", "culture", "team", "management"},
		templates: [2]string{
			"Leading Through Change: %s Without the Playbook",
			"The Unglamorous Habits of Effective Leaders",
		},
	},
	{
		bucket:   "creative",
		keywords: []string{"creative", "design", "storytelling", "content"},
		templates: [2]string{
			"The Craft Behind the Work: %s as Creative Practice",
			"Making Things People Care About",
		},
	},
	{
		bucket:   "performance",
		keywords: []string{"performance", "productivity", "optimization", "efficiency"},
		templates: [2]string{
			"Doing More With Less: %s Performance in the Real World",
			"Where the Time Actually Goes",
		},
	},
	{
		bucket:   "atmosphere",
		keywords: []string{"community", "belonging", "inclusion", "wellbeing"},
		templates: [2]string{
			"Building Rooms Where People Do Their Best Work",
			"The Atmosphere Advantage: %s and the Spaces We Share",
		},
	},
}

// genericTitles is the fallback pair when no bucket matches.
var genericTitles = [2]string{
	"Lessons From the Field: A Practitioner's Guide to %s",
	"What I Wish I'd Known: Hard-Won Lessons Worth Sharing",
}

// baseTechItems is the default AV list, most essential first.
var baseTechItems = []string{
	"Wireless lavalier microphone",
	"Projector or large display with HDMI input",
	"Presentation laptop or speaker-provided computer hookup",
	"Slide advance clicker",
	"Stable internet access",
}
