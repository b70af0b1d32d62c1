// Package pipeline glues the per-speaker transformations together: field
// extraction feeds gap filling, content shaping, quality control, and
// finally report assembly. Records are processed one at a time; a failure
// on one speaker never sinks the rest of the batch.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/eventpress/speakerkit/config"
	"github.com/eventpress/speakerkit/filter"
	"github.com/eventpress/speakerkit/log"
	"github.com/eventpress/speakerkit/qc"
	"github.com/eventpress/speakerkit/report"
	"github.com/eventpress/speakerkit/shape"
	"github.com/eventpress/speakerkit/speaker"
	"github.com/eventpress/speakerkit/synth"
)

// Pipeline processes speaker records end to end.
type Pipeline struct {
	cfg       *config.Pipeline
	filter    *filter.Filter
	shaper    *shape.Shaper
	synth     *synth.Synthesizer
	checker   *qc.Checker
	exporter  *report.Exporter
	delegated bool
}

// New builds a Pipeline. gen may be nil, which selects the deterministic
// shaping path and enables the gap filler.
func New(cfg *config.Pipeline, gen shape.Generator) *Pipeline {
	f := filter.New(cfg)
	return &Pipeline{
		cfg:       cfg,
		filter:    f,
		shaper:    shape.New(cfg, f, gen),
		synth:     synth.New(cfg),
		checker:   qc.New(cfg, f),
		exporter:  report.NewExporter(),
		delegated: gen != nil,
	}
}

// Checker exposes the quality checker, mainly so tests and handlers can
// swap the image-validation collaborator.
func (p *Pipeline) Checker() *qc.Checker { return p.checker }

// Process runs one record through gap filling, content shaping, and quality
// control, in that order. Content is populated before QC so the checker can
// see generated output.
func (p *Pipeline) Process(ctx context.Context, rec *speaker.Record) {
	working := *rec
	var enriched synth.Enriched

	if p.delegated {
		enriched = synth.Enriched{
			Bio:              rec.Bio,
			Description:      rec.SessionDescription,
			TechRequirements: rec.TechRequirements,
		}
	} else {
		// The gap filler only runs on the deterministic path; the shaping
		// copy gets the substitutes while the record keeps what the
		// speaker actually provided.
		enriched = p.synth.Fill(rec)
		working.SessionTitle = rec.SessionTitle
		working.Bio = enriched.Bio
		working.SessionDescription = enriched.Description
	}

	p.shaper.Shape(ctx, &working)
	rec.Processed = working.Processed
	rec.Processed.TechRequirements = enriched.TechRequirements

	rec.QC = p.checker.CheckAll(rec)
}

// ProcessBatch processes every record, always continuing past per-speaker
// failures: a panic while processing one speaker becomes a blocking issue
// on that speaker's QC result.
func (p *Pipeline) ProcessBatch(ctx context.Context, records []*speaker.Record) {
	for _, rec := range records {
		p.processGuarded(ctx, rec)
	}
}

func (p *Pipeline) processGuarded(ctx context.Context, rec *speaker.Record) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("speaker", rec.DisplayName()).Interface("panic", r).Msg("speaker processing failed")
			if rec.Processed == nil {
				rec.Processed = &speaker.ProcessedContent{}
			}
			rec.QC = &speaker.QCResult{
				Passed: false,
				Issues: []string{fmt.Sprintf("Processing failed: %v", r)},
			}
		}
	}()
	p.Process(ctx, rec)
}

// Export assembles the batch into a spreadsheet in dir and returns the
// generated filename.
func (p *Pipeline) Export(records []*speaker.Record, dir string) (string, error) {
	return p.exporter.ExportTo(records, dir, time.Now())
}
