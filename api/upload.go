package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/eventpress/speakerkit/config"
	"github.com/eventpress/speakerkit/extract"
	"github.com/eventpress/speakerkit/log"
	"github.com/eventpress/speakerkit/report"
	"github.com/eventpress/speakerkit/speaker"
	"github.com/eventpress/speakerkit/utils"
)

// uploadFileResult tracks per-file status in upload responses
type uploadFileResult struct {
	Filename string `json:"filename"`
	Type     string `json:"type,omitempty"`
	Status   string `json:"status"` // "saved" or "skipped"
	Reason   string `json:"reason,omitempty"`
}

// newSessionDir creates a fresh per-request folder under the upload root.
func newSessionDir(cfg *config.Config) (string, error) {
	dir := filepath.Join(cfg.UploadDir, uuid.NewString())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// UploadPackets handles POST /api/upload
// Accepts multipart packet files (and headshot images alongside them), saves
// them into a per-session folder, extracts a record per packet, and runs the
// pipeline on the batch.
func (h *Handlers) UploadPackets(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondBadRequest(c, "Invalid multipart form")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		RespondBadRequest(c, "No files provided")
		return
	}

	cfg := config.Get()
	pcfg := config.DefaultPipeline()

	sessionDir, err := newSessionDir(cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to create session directory")
		RespondInternalError(c, "Failed to store uploads")
		return
	}
	sessionID := filepath.Base(sessionDir)

	var results []uploadFileResult
	var packetPaths []string
	for _, file := range files {
		filename := utils.SanitizeFilename(file.Filename)
		ext := filepath.Ext(filename)

		isPacket := pcfg.IsPacketExtension(ext)
		if !isPacket && !pcfg.IsImageExtension(ext) {
			results = append(results, uploadFileResult{
				Filename: filename,
				Status:   "skipped",
				Reason:   fmt.Sprintf("unsupported file type %s", strings.ToLower(ext)),
			})
			continue
		}
		if file.Size > cfg.MaxUploadBytes {
			results = append(results, uploadFileResult{
				Filename: filename,
				Status:   "skipped",
				Reason:   fmt.Sprintf("exceeds the %d byte limit", cfg.MaxUploadBytes),
			})
			continue
		}

		dest := filepath.Join(sessionDir, utils.DeduplicateFilename(sessionDir, filename))
		if err := c.SaveUploadedFile(file, dest); err != nil {
			log.Error().Err(err).Str("file", filename).Msg("failed to save upload")
			RespondInternalError(c, "Failed to store uploads")
			return
		}

		results = append(results, uploadFileResult{
			Filename: filepath.Base(dest),
			Type:     utils.DetectMimeType(dest),
			Status:   "saved",
		})
		if isPacket {
			packetPaths = append(packetPaths, dest)
		}
	}

	if len(packetPaths) == 0 {
		RespondValidationError(c, "No speaker packets in upload", []ErrorDetail{
			{Field: "files", Message: "at least one .txt, .pdf, .docx, or .doc packet is required"},
		})
		return
	}

	records := make([]*speaker.Record, 0, len(packetPaths))
	for _, path := range packetPaths {
		records = append(records, extract.FromFile(path))
	}

	log.Info().
		Str("session", sessionID).
		Int("files", len(files)).
		Int("packets", len(packetPaths)).
		Msg("upload session stored")

	h.pipe.ProcessBatch(c.Request.Context(), records)

	filename, err := h.pipe.Export(records, cfg.OutputDir)
	if err != nil {
		log.Error().Err(err).Msg("report export failed")
		RespondInternalError(c, "Failed to write report")
		return
	}

	RespondCreated(c, gin.H{
		"session":  sessionID,
		"files":    results,
		"speakers": records,
		"summary":  report.Summarize(records),
		"report":   filename,
	}, "/api/reports/"+filename)
}
