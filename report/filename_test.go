package report

import (
	"testing"
	"time"

	"github.com/eventpress/speakerkit/speaker"
)

func TestNameSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Olivia Thorne", "olivia_thorne"},
		{"honorific and punctuation", "Dr. Olivia Thorne", "dr_olivia_thorne"},
		{"hyphenated", "Jean-Luc O'Neill", "jean_luc_oneill"},
		{"unknown sentinel", "Unknown", "unknown"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NameSlug(tt.in); got != tt.want {
				t.Errorf("NameSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOutputFilename(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	recs := func(names ...string) []*speaker.Record {
		out := make([]*speaker.Record, len(names))
		for i, n := range names {
			out[i] = &speaker.Record{Name: n}
		}
		return out
	}

	tests := []struct {
		name    string
		records []*speaker.Record
		want    string
	}{
		{
			"single speaker",
			recs("Olivia Thorne"),
			"olivia_thorne_20250314_092653.xlsx",
		},
		{
			"three speakers",
			recs("Ada Quine", "Marcus Webb", "Olivia Thorne"),
			"ada_quine_marcus_webb_olivia_thorne_20250314_092653.xlsx",
		},
		{
			"four speakers get and_others",
			recs("Ada Quine", "Marcus Webb", "Olivia Thorne", "Jane Doe"),
			"ada_quine_marcus_webb_olivia_thorne_and_others_20250314_092653.xlsx",
		},
		{
			"nameless batch falls back",
			[]*speaker.Record{{}},
			"unknown_20250314_092653.xlsx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputFilename(tt.records, ts); got != tt.want {
				t.Errorf("OutputFilename = %q, want %q", got, tt.want)
			}
		})
	}
}
