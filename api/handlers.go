// Package api exposes the processing pipeline over HTTP.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/eventpress/speakerkit/pipeline"
)

// Handlers holds the dependencies shared by all endpoint handlers.
type Handlers struct {
	pipe *pipeline.Pipeline
}

// NewHandlers creates the handler set around a pipeline.
func NewHandlers(pipe *pipeline.Pipeline) *Handlers {
	return &Handlers{pipe: pipe}
}

// Health handles GET /api/health
func (h *Handlers) Health(c *gin.Context) {
	RespondData(c, gin.H{"status": "ok"})
}

// GetPipelineStages handles GET /api/pipeline/stages
func (h *Handlers) GetPipelineStages(c *gin.Context) {
	RespondList(c, pipeline.Stages())
}
