package report

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/eventpress/speakerkit/speaker"
)

func exportedWorkbook(t *testing.T, records []*speaker.Record) *excelize.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.xlsx")

	e := NewExporter()
	if err := e.Export(records, path, time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Export: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestExport_SheetLayout(t *testing.T) {
	rec := &speaker.Record{
		Name:         "Olivia Thorne",
		SessionTitle: "Tools People Actually Use",
		Processed: &speaker.ProcessedContent{
			BioShort:         "Short bio.",
			BioMedium:        "Medium bio.",
			BioIntro:         "Please welcome Olivia Thorne.",
			SessionAbstract:  "In this session, you'll learn about tools.",
			Takeaways:        []string{"First.", "Second.", "Third."},
			AltText:          "Professional headshot of Olivia Thorne, a speaker at this event.",
			TechRequirements: "Projector and wireless mic",
		},
		QC: &speaker.QCResult{
			Passed:   false,
			Issues:   []string{"No headshot provided"},
			Warnings: []string{"Session description is very short - needs more detail"},
			Checklist: speaker.Checklist{
				SessionDescriptionClear: false,
				BioUnderLimit:           true,
				BioWordCount:            42,
				MissingTechItems:        []string{"internet"},
			},
		},
	}

	f := exportedWorkbook(t, []*speaker.Record{rec})

	want := []string{"Processing Info", "Speaker Content", "Quality Control"}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("sheets = %v", got)
	}
	for _, name := range want {
		if idx, _ := f.GetSheetIndex(name); idx < 0 {
			t.Errorf("missing sheet %q", name)
		}
	}

	cells := []struct {
		sheet string
		cell  string
		want  string
	}{
		{"Processing Info", "A1", "SpeakerKit - Processing Report"},
		{"Processing Info", "B3", "2025-03-14 09:00:00"},
		{"Processing Info", "B4", "1"},
		{"Processing Info", "B5", "1"},
		{"Speaker Content", "A1", "Speaker Name"},
		{"Speaker Content", "A2", "Olivia Thorne"},
		{"Speaker Content", "E2", "Tools People Actually Use"},
		{"Speaker Content", "G2", "First."},
		{"Speaker Content", "K2", "Projector and wireless mic"},
		{"Quality Control", "B2", "No"},
		{"Quality Control", "E2", "internet"},
		{"Quality Control", "F2", "No"},
		{"Quality Control", "H2", "42"},
		{"Quality Control", "I2", "Yes"},
		{"Quality Control", "L2", "No headshot provided"},
	}
	for _, c := range cells {
		v, err := f.GetCellValue(c.sheet, c.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s!%s): %v", c.sheet, c.cell, err)
		}
		if v != c.want {
			t.Errorf("%s!%s = %q, want %q", c.sheet, c.cell, v, c.want)
		}
	}
}

func TestExport_JoinsAndFallbacks(t *testing.T) {
	rec := &speaker.Record{
		Name:             "Ada Quine",
		TechRequirements: "Whiteboard only",
		QC: &speaker.QCResult{
			Passed:   true,
			Warnings: []string{"first warning", "second warning"},
			Checklist: speaker.Checklist{
				BuzzwordsFound: []string{"guru", "ninja"},
				BioUnderLimit:  true,
			},
		},
	}

	f := exportedWorkbook(t, []*speaker.Record{rec})

	// No processed content: the raw tech requirements column falls back.
	if v, _ := f.GetCellValue("Speaker Content", "K2"); v != "Whiteboard only" {
		t.Errorf("tech column = %q", v)
	}
	if v, _ := f.GetCellValue("Quality Control", "K2"); v != "guru, ninja" {
		t.Errorf("buzzwords column = %q", v)
	}
	if v, _ := f.GetCellValue("Quality Control", "M2"); v != "first warning | second warning" {
		t.Errorf("warnings column = %q", v)
	}
}

func TestSummarize(t *testing.T) {
	records := []*speaker.Record{
		{QC: &speaker.QCResult{Passed: true}},
		{QC: &speaker.QCResult{Passed: false, Warnings: []string{"w"}}},
		{QC: &speaker.QCResult{Passed: true, Warnings: []string{"w"}}},
		{},
	}

	s := Summarize(records)
	if s.TotalSpeakers != 4 {
		t.Errorf("TotalSpeakers = %d", s.TotalSpeakers)
	}
	if s.SpeakersWithIssues != 1 {
		t.Errorf("SpeakersWithIssues = %d", s.SpeakersWithIssues)
	}
	if s.SpeakersWithWarnings != 2 {
		t.Errorf("SpeakersWithWarnings = %d", s.SpeakersWithWarnings)
	}
}
