package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eventpress/speakerkit/config"
	"github.com/eventpress/speakerkit/log"
	"github.com/eventpress/speakerkit/report"
	"github.com/eventpress/speakerkit/speaker"
	"github.com/eventpress/speakerkit/utils"
)

// speakerInput is the JSON shape of one speaker in a process request.
type speakerInput struct {
	Name               string `json:"name"`
	Bio                string `json:"bio"`
	SessionTitle       string `json:"session_title"`
	SessionDescription string `json:"session_description"`
	TechRequirements   string `json:"tech_requirements"`
	HeadshotPath       string `json:"headshot_path"`
}

// processResult is the response body for all processing endpoints.
type processResult struct {
	Speakers []*speaker.Record `json:"speakers"`
	Summary  report.Summary    `json:"summary"`
	Report   string            `json:"report"`
}

func (in speakerInput) toRecord() *speaker.Record {
	return &speaker.Record{
		Name:               strings.TrimSpace(in.Name),
		Bio:                strings.TrimSpace(in.Bio),
		SessionTitle:       strings.TrimSpace(in.SessionTitle),
		SessionDescription: strings.TrimSpace(in.SessionDescription),
		TechRequirements:   strings.TrimSpace(in.TechRequirements),
		HeadshotPath:       strings.TrimSpace(in.HeadshotPath),
	}
}

// ProcessSpeakers handles POST /api/process
// Accepts a JSON batch of speakers, runs the full pipeline, and writes the
// spreadsheet into the output directory.
func (h *Handlers) ProcessSpeakers(c *gin.Context) {
	var body struct {
		Speakers []speakerInput `json:"speakers"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}
	if len(body.Speakers) == 0 {
		RespondBadRequest(c, "No speakers provided")
		return
	}

	records := make([]*speaker.Record, 0, len(body.Speakers))
	for _, in := range body.Speakers {
		records = append(records, in.toRecord())
	}

	h.runAndRespond(c, records)
}

// ProcessForm handles POST /api/process/form
// Accepts a multipart form with speaker_count and speaker_N_-prefixed fields,
// optionally with a headshot file per speaker. Entries with neither a name
// nor a bio are skipped.
func (h *Handlers) ProcessForm(c *gin.Context) {
	countValue := c.PostForm("speaker_count")
	count, err := strconv.Atoi(countValue)
	if err != nil || count < 1 {
		RespondValidationError(c, "Invalid form", []ErrorDetail{
			{Field: "speaker_count", Message: "must be a positive integer"},
		})
		return
	}

	cfg := config.Get()
	sessionDir := ""

	var records []*speaker.Record
	for i := 1; i <= count; i++ {
		prefix := fmt.Sprintf("speaker_%d_", i)
		rec := &speaker.Record{
			Name:               strings.TrimSpace(c.PostForm(prefix + "name")),
			Bio:                strings.TrimSpace(c.PostForm(prefix + "bio")),
			SessionTitle:       strings.TrimSpace(c.PostForm(prefix + "session_title")),
			SessionDescription: strings.TrimSpace(c.PostForm(prefix + "session_description")),
			TechRequirements:   strings.TrimSpace(c.PostForm(prefix + "tech_requirements")),
		}
		if rec.Name == "" && rec.Bio == "" {
			continue
		}

		if file, err := c.FormFile(prefix + "headshot"); err == nil {
			if file.Size > cfg.MaxUploadBytes {
				RespondPayloadTooLarge(c, fmt.Sprintf("Headshot %s exceeds the %d byte limit", file.Filename, cfg.MaxUploadBytes))
				return
			}
			if sessionDir == "" {
				sessionDir, err = newSessionDir(cfg)
				if err != nil {
					log.Error().Err(err).Msg("failed to create session directory")
					RespondInternalError(c, "Failed to store headshots")
					return
				}
			}
			dest := filepath.Join(sessionDir, utils.SanitizeFilename(file.Filename))
			if err := c.SaveUploadedFile(file, dest); err != nil {
				log.Error().Err(err).Str("file", file.Filename).Msg("failed to save headshot")
				RespondInternalError(c, "Failed to store headshots")
				return
			}
			rec.HeadshotPath = dest
		}

		records = append(records, rec)
	}

	if len(records) == 0 {
		RespondBadRequest(c, "No speakers provided (every entry was missing both name and bio)")
		return
	}

	h.runAndRespond(c, records)
}

// ProcessDirectory handles POST /api/process/directory
// Scans a directory for speaker packet files and processes every packet.
func (h *Handlers) ProcessDirectory(c *gin.Context) {
	var body struct {
		Directory string `json:"directory"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Directory) == "" {
		RespondBadRequest(c, "Directory is required")
		return
	}

	records, err := h.pipe.ScanDirectory(body.Directory)
	if err != nil {
		RespondBadRequest(c, err.Error())
		return
	}

	h.runAndRespond(c, records)
}

func (h *Handlers) runAndRespond(c *gin.Context, records []*speaker.Record) {
	h.pipe.ProcessBatch(c.Request.Context(), records)

	filename, err := h.pipe.Export(records, config.Get().OutputDir)
	if err != nil {
		log.Error().Err(err).Msg("report export failed")
		RespondInternalError(c, "Failed to write report")
		return
	}

	log.Info().Int("speakers", len(records)).Str("report", filename).Msg("batch processed")
	RespondData(c, processResult{
		Speakers: records,
		Summary:  report.Summarize(records),
		Report:   filename,
	})
}

// DownloadReport handles GET /api/reports/:filename
// Serves a previously generated spreadsheet. Only bare filenames are
// accepted so the output directory cannot be escaped.
func (h *Handlers) DownloadReport(c *gin.Context) {
	filename := c.Param("filename")
	if filename != filepath.Base(filename) || !strings.HasSuffix(filename, ".xlsx") {
		RespondBadRequest(c, "Invalid report filename")
		return
	}

	path := filepath.Join(config.Get().OutputDir, filename)
	if _, err := os.Stat(path); err != nil {
		RespondNotFound(c, "Report not found")
		return
	}

	c.FileAttachment(path, filename)
}
