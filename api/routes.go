package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")

	api.GET("/health", h.Health)
	api.GET("/pipeline/stages", h.GetPipelineStages)

	// Processing routes
	api.POST("/process", h.ProcessSpeakers)
	api.POST("/process/form", h.ProcessForm)
	api.POST("/process/directory", h.ProcessDirectory)

	// Upload
	api.POST("/upload", h.UploadPackets)

	// Reports
	api.GET("/reports/:filename", h.DownloadReport)
}
