// Package report assembles processed speaker records into the spreadsheet
// event staff download: a metadata view, the publishable content table, and
// the quality-control table.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/eventpress/speakerkit/speaker"
)

// Sheet names, in workbook order.
const (
	sheetInfo    = "Processing Info"
	sheetContent = "Speaker Content"
	sheetQC      = "Quality Control"
)

var contentHeaders = []string{
	"Speaker Name",
	"Bio (50 words)",
	"Bio (100 words)",
	"Emcee Intro",
	"Session Title",
	"Session Abstract (75 words)",
	"Key Takeaway 1",
	"Key Takeaway 2",
	"Key Takeaway 3",
	"Headshot Alt Text",
	"Tech Requirements",
}

var contentWidths = []float64{20, 35, 45, 40, 30, 45, 35, 35, 35, 40, 30}

var qcHeaders = []string{
	"Speaker Name",
	"Headshot Present",
	"Headshot Valid",
	"Tech Requirements",
	"Missing Tech Items",
	"Session Description Clear",
	"Vague Language",
	"Bio Word Count",
	"Bio Under 500 Words",
	"Name Mismatch",
	"Buzzwords Found",
	"Issues",
	"Warnings",
}

// Summary holds the aggregate counts shown on the metadata sheet.
type Summary struct {
	TotalSpeakers        int `json:"total_speakers"`
	SpeakersWithIssues   int `json:"speakers_with_issues"`
	SpeakersWithWarnings int `json:"speakers_with_warnings"`
}

// Summarize computes the batch aggregates once over all records.
func Summarize(records []*speaker.Record) Summary {
	s := Summary{TotalSpeakers: len(records)}
	for _, rec := range records {
		if rec.QC == nil {
			continue
		}
		if !rec.QC.Passed {
			s.SpeakersWithIssues++
		}
		if len(rec.QC.Warnings) > 0 {
			s.SpeakersWithWarnings++
		}
	}
	return s
}

// Exporter writes speaker batches to styled XLSX workbooks.
type Exporter struct{}

// NewExporter creates an Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes the full workbook to outputPath. The file appears only when
// every sheet was written: content lands in a temp file first and is renamed
// into place, so a failed export never leaves a partial spreadsheet behind.
func (e *Exporter) Export(records []*speaker.Record, outputPath string, generatedAt time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := e.writeInfoSheet(f, Summarize(records), generatedAt); err != nil {
		return fmt.Errorf("metadata sheet: %w", err)
	}
	if err := e.writeContentSheet(f, records); err != nil {
		return fmt.Errorf("content sheet: %w", err)
	}
	if err := e.writeQCSheet(f, records); err != nil {
		return fmt.Errorf("qc sheet: %w", err)
	}

	// Drop the default sheet and put the metadata view first.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	idx, err := f.GetSheetIndex(sheetInfo)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)

	tmp := outputPath + ".tmp"
	if err := f.SaveAs(tmp); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save workbook: %w", err)
	}
	if err := os.Rename(tmp, outputPath); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func (e *Exporter) writeInfoSheet(f *excelize.File, summary Summary, generatedAt time.Time) error {
	if _, err := f.NewSheet(sheetInfo); err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return err
	}

	f.SetCellValue(sheetInfo, "A1", "SpeakerKit - Processing Report")
	f.SetCellStyle(sheetInfo, "A1", "A1", titleStyle)

	rows := [][2]any{
		{"Generated:", generatedAt.Format("2006-01-02 15:04:05")},
		{"Total Speakers Processed:", summary.TotalSpeakers},
		{"Speakers with Issues:", summary.SpeakersWithIssues},
		{"Speakers with Warnings:", summary.SpeakersWithWarnings},
	}
	for i, row := range rows {
		r := i + 3
		f.SetCellValue(sheetInfo, fmt.Sprintf("A%d", r), row[0])
		f.SetCellValue(sheetInfo, fmt.Sprintf("B%d", r), row[1])
	}

	f.SetColWidth(sheetInfo, "A", "A", 25)
	f.SetColWidth(sheetInfo, "B", "B", 30)
	return nil
}

func (e *Exporter) writeContentSheet(f *excelize.File, records []*speaker.Record) error {
	if _, err := f.NewSheet(sheetContent); err != nil {
		return err
	}

	if err := e.writeHeaderRow(f, sheetContent, contentHeaders, "366092"); err != nil {
		return err
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return err
	}

	for i, rec := range records {
		row := i + 2
		pc := rec.Processed
		if pc == nil {
			pc = &speaker.ProcessedContent{}
		}
		takeaways := make([]string, 3)
		copy(takeaways, pc.Takeaways)

		values := []any{
			rec.DisplayName(),
			pc.BioShort,
			pc.BioMedium,
			pc.BioIntro,
			rec.SessionTitle,
			pc.SessionAbstract,
			takeaways[0],
			takeaways[1],
			takeaways[2],
			pc.AltText,
			techRequirements(rec, pc),
		}
		if err := e.writeRow(f, sheetContent, row, values, bodyStyle); err != nil {
			return err
		}
	}

	for i, width := range contentWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		f.SetColWidth(sheetContent, col, col, width)
	}

	return freezeHeaderRow(f, sheetContent)
}

func (e *Exporter) writeQCSheet(f *excelize.File, records []*speaker.Record) error {
	if _, err := f.NewSheet(sheetQC); err != nil {
		return err
	}

	if err := e.writeHeaderRow(f, sheetQC, qcHeaders, "C00000"); err != nil {
		return err
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return err
	}
	issueStyle, err := highlightStyle(f, "FFC7CE")
	if err != nil {
		return err
	}
	warningStyle, err := highlightStyle(f, "FFEB9C")
	if err != nil {
		return err
	}

	for i, rec := range records {
		row := i + 2
		result := rec.QC
		if result == nil {
			result = &speaker.QCResult{}
		}
		cl := result.Checklist

		values := []any{
			rec.DisplayName(),
			yesNo(cl.HeadshotPresent),
			yesNo(cl.HeadshotValid),
			yesNo(cl.TechRequirementsSpecified),
			strings.Join(cl.MissingTechItems, ", "),
			yesNo(cl.SessionDescriptionClear),
			strings.Join(cl.VagueLanguageDetected, ", "),
			cl.BioWordCount,
			yesNo(cl.BioUnderLimit),
			yesNo(cl.NameMismatch),
			strings.Join(cl.BuzzwordsFound, ", "),
			strings.Join(result.Issues, " | "),
			strings.Join(result.Warnings, " | "),
		}
		if err := e.writeRow(f, sheetQC, row, values, bodyStyle); err != nil {
			return err
		}

		// Highlight non-empty issue and warning cells.
		if len(result.Issues) > 0 {
			cell, _ := excelize.CoordinatesToCellName(len(qcHeaders)-1, row)
			f.SetCellStyle(sheetQC, cell, cell, issueStyle)
		}
		if len(result.Warnings) > 0 {
			cell, _ := excelize.CoordinatesToCellName(len(qcHeaders), row)
			f.SetCellStyle(sheetQC, cell, cell, warningStyle)
		}
	}

	for i := 1; i <= len(qcHeaders); i++ {
		col, err := excelize.ColumnNumberToName(i)
		if err != nil {
			return err
		}
		width := 20.0
		if i >= len(qcHeaders)-1 {
			width = 40.0
		}
		f.SetColWidth(sheetQC, col, col, width)
	}

	return freezeHeaderRow(f, sheetQC)
}

func (e *Exporter) writeHeaderRow(f *excelize.File, sheet string, headers []string, fillColor string) error {
	style, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{fillColor}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return err
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, header)
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func (e *Exporter) writeRow(f *excelize.File, sheet string, row int, values []any, style int) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, v)
		f.SetCellStyle(sheet, cell, cell, style)
	}
	return nil
}

func highlightStyle(f *excelize.File, color string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
}

func freezeHeaderRow(f *excelize.File, sheet string) error {
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// ExportTo writes the workbook into dir with a derived filename and returns
// the filename.
func (e *Exporter) ExportTo(records []*speaker.Record, dir string, generatedAt time.Time) (string, error) {
	filename := OutputFilename(records, generatedAt)
	if err := e.Export(records, filepath.Join(dir, filename), generatedAt); err != nil {
		return "", err
	}
	return filename, nil
}

// techRequirements prefers the shaped requirements (which may have been
// synthesized for speakers who provided none) over the raw field.
func techRequirements(rec *speaker.Record, pc *speaker.ProcessedContent) string {
	if pc.TechRequirements != "" {
		return pc.TechRequirements
	}
	return rec.TechRequirements
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
