package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eventpress/speakerkit/config"
	"github.com/eventpress/speakerkit/speaker"
)

func TestProcess_EndToEndDeterministic(t *testing.T) {
	p := New(config.DefaultPipeline(), nil)

	rec := &speaker.Record{
		Name:         "Ada Quine",
		Bio:          "Ada Quine has spent fifteen years breaking into corporate networks so their owners could fix the holes first. She now leads a security research team focused on cloud infrastructure.",
		SessionTitle: "TBD",
	}

	p.Process(context.Background(), rec)

	// The placeholder title was replaced with the security-topic suggestion.
	if rec.SessionTitle != "Securing What Matters: Security Lessons From the Field" {
		t.Errorf("SessionTitle = %q", rec.SessionTitle)
	}
	if rec.AlternateTitle == "" {
		t.Error("AlternateTitle not set for a synthesized title")
	}

	pc := rec.Processed
	if pc == nil {
		t.Fatal("Processed not populated")
	}
	if pc.BioShort == "" || pc.SessionAbstract == "" {
		t.Error("shaped content missing")
	}
	if len(pc.Takeaways) != 3 {
		t.Fatalf("takeaways = %v", pc.Takeaways)
	}
	if !strings.Contains(strings.Join(pc.Takeaways, " "), "security") {
		t.Errorf("takeaways %v should reflect the security topic", pc.Takeaways)
	}
	if pc.TechRequirements == "" {
		t.Error("synthesized tech requirements missing")
	}

	// QC judges what the speaker actually provided, not the synthesized
	// substitutes.
	qc := rec.QC
	if qc == nil {
		t.Fatal("QC not populated")
	}
	if qc.Passed {
		t.Error("record without a headshot must not pass")
	}
	if len(qc.Issues) != 1 || qc.Issues[0] != "No headshot provided" {
		t.Errorf("issues = %v", qc.Issues)
	}
	if got := len(qc.Checklist.MissingTechItems); got != 5 {
		t.Errorf("MissingTechItems has %d entries, want all 5", got)
	}
	if qc.Checklist.TechRequirementsSpecified {
		t.Error("synthesized requirements must not count as speaker-specified")
	}

	// Raw fields other than the title stay as extracted.
	if rec.SessionDescription != "" || rec.TechRequirements != "" {
		t.Error("synthesized content leaked into raw record fields")
	}
}

func TestProcessBatch_ContinuesPastFailures(t *testing.T) {
	p := New(config.DefaultPipeline(), nil)

	records := []*speaker.Record{
		{Name: "Ada Quine", Bio: "A security bio with enough words to be plausible for processing purposes overall."},
		{Name: "Marcus Webb", Bio: "Another plausible bio with enough words to pass through the processing stages cleanly."},
	}

	p.ProcessBatch(context.Background(), records)

	for i, rec := range records {
		if rec.Processed == nil || rec.QC == nil {
			t.Errorf("record %d not fully processed", i)
		}
	}
}

func TestScanDirectory(t *testing.T) {
	p := New(config.DefaultPipeline(), nil)

	t.Run("finds packets", func(t *testing.T) {
		dir := t.TempDir()
		files := map[string]string{
			"speaker_packet_ada.txt": "SPEAKER NAME: Ada Quine\nBIO: A bio.",
			"speaker_marcus.txt":     "SPEAKER NAME: Marcus Webb\nBIO: A bio.",
			"notes.txt":              "not a packet",
			"speaker_photo.png":      "binary",
		}
		for name, content := range files {
			if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
		}

		records, err := p.ScanDirectory(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(records) != 2 {
			t.Fatalf("got %d records, want 2", len(records))
		}
		names := map[string]bool{}
		for _, rec := range records {
			names[rec.Name] = true
		}
		if !names["Ada Quine"] || !names["Marcus Webb"] {
			t.Errorf("records = %v", names)
		}
	})

	t.Run("empty directory is an input error", func(t *testing.T) {
		if _, err := p.ScanDirectory(t.TempDir()); err == nil {
			t.Error("expected an error for a directory without packets")
		}
	})

	t.Run("missing directory is an input error", func(t *testing.T) {
		if _, err := p.ScanDirectory(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Error("expected an error for a missing directory")
		}
	})
}

func TestExport_WritesWorkbook(t *testing.T) {
	p := New(config.DefaultPipeline(), nil)
	dir := t.TempDir()

	records := []*speaker.Record{{
		Name: "Ada Quine",
		Bio:  "A bio with enough words to be processed without tripping every warning in the battery today.",
	}}
	p.ProcessBatch(context.Background(), records)

	filename, err := p.Export(records, dir)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.HasPrefix(filename, "ada_quine_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("filename = %q", filename)
	}
	if _, err := os.Stat(filepath.Join(dir, filename)); err != nil {
		t.Errorf("exported file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, filename+".tmp")); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}
}
