// Package extract turns raw speaker packets into speaker records.
//
// Packets are loosely structured documents with all-caps section labels
// ("SPEAKER NAME:", "BIO:", ...). Extraction is best-effort: a missing label
// yields an empty field, never an error.
package extract

import (
	"regexp"
	"strings"

	"github.com/eventpress/speakerkit/speaker"
)

var (
	labelRe     = regexp.MustCompile(`^\s*([A-Z][A-Z /&-]*[A-Z])\s*:\s*(.*)$`)
	separatorRe = regexp.MustCompile(`^\s*[-=_*]{3,}\s*$`)
)

// field identifies which record field a labeled section feeds.
type field int

const (
	fieldNone field = iota
	fieldName
	fieldBio
	fieldTitle
	fieldDescription
	fieldTech
	fieldHeadshot
)

// labelFields maps canonical (uppercased) label text to record fields.
var labelFields = map[string]field{
	"SPEAKER NAME":         fieldName,
	"NAME":                 fieldName,
	"BIO":                  fieldBio,
	"BIOGRAPHY":            fieldBio,
	"SPEAKER BIO":          fieldBio,
	"SESSION TITLE":        fieldTitle,
	"TALK TITLE":           fieldTitle,
	"TITLE":                fieldTitle,
	"SESSION DESCRIPTION":  fieldDescription,
	"DESCRIPTION":          fieldDescription,
	"SESSION ABSTRACT":     fieldDescription,
	"TECH/AV REQUIREMENTS": fieldTech,
	"TECH REQUIREMENTS":    fieldTech,
	"AV REQUIREMENTS":      fieldTech,
	"TECH/AV":              fieldTech,
	"HEADSHOT":             fieldHeadshot,
	"HEADSHOT FILE":        fieldHeadshot,
	"PHOTO":                fieldHeadshot,
}

// FromText parses a packet body into a speaker record. Each labeled section
// runs until the next all-caps label line, a separator line, or end of input.
func FromText(raw string) *speaker.Record {
	sections := map[field][]string{}
	current := fieldNone

	for _, line := range strings.Split(raw, "\n") {
		if separatorRe.MatchString(line) {
			current = fieldNone
			continue
		}

		if m := labelRe.FindStringSubmatch(line); m != nil {
			label := strings.ToUpper(strings.TrimSpace(m[1]))
			f, known := labelFields[label]
			if !known {
				// Unrecognized all-caps label still terminates the
				// preceding section.
				current = fieldNone
				continue
			}
			current = f
			if rest := strings.TrimSpace(m[2]); rest != "" {
				sections[current] = append(sections[current], rest)
			}
			continue
		}

		if current != fieldNone {
			sections[current] = append(sections[current], strings.TrimSpace(line))
		}
	}

	join := func(f field) string {
		return strings.TrimSpace(strings.Join(sections[f], "\n"))
	}

	rec := &speaker.Record{
		Name:               singleLine(join(fieldName)),
		Bio:                join(fieldBio),
		SessionTitle:       singleLine(join(fieldTitle)),
		SessionDescription: join(fieldDescription),
		TechRequirements:   join(fieldTech),
		HeadshotPath:       singleLine(join(fieldHeadshot)),
	}
	return rec
}

// FromFile extracts a packet file into a speaker record, then resolves the
// headshot reference against the directories around the packet. Extraction
// failures degrade to an empty body; callers treat an empty bio as "no bio
// provided".
func FromFile(path string) *speaker.Record {
	rec := FromText(TextOrEmpty(path))
	rec.SourceFile = path
	ResolveHeadshot(rec, path)
	return rec
}

// singleLine collapses a multi-line capture into one whitespace-normalized
// line, for fields that are names or paths rather than prose.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
