package qc

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	// Register decoders so image.DecodeConfig can identify every accepted
	// headshot format.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/gen2brain/heic"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/eventpress/speakerkit/config"
)

// ImageValidation is the result of validating a headshot file. It is always
// returned, never an error: an unusable image is a quality finding, not a
// program failure.
type ImageValidation struct {
	Valid  bool   `json:"valid"`
	Error  string `json:"error,omitempty"`
	Format string `json:"format,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// ValidateImage checks that a headshot file exists, carries an accepted
// extension, and decodes as an image.
func ValidateImage(path string, cfg *config.Pipeline) ImageValidation {
	if _, err := os.Stat(path); err != nil {
		return ImageValidation{Error: "File does not exist"}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !cfg.IsImageExtension(ext) {
		return ImageValidation{Error: fmt.Sprintf(
			"Unsupported image format: %s. Supported: %s",
			ext, strings.Join(cfg.ImageExtensions, ", "))}
	}

	f, err := os.Open(path)
	if err != nil {
		return ImageValidation{Error: fmt.Sprintf("Cannot open image file: %v", err)}
	}
	defer f.Close()

	imgCfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return ImageValidation{Error: fmt.Sprintf("Invalid image file: %v", err)}
	}

	return ImageValidation{
		Valid:  true,
		Format: format,
		Width:  imgCfg.Width,
		Height: imgCfg.Height,
	}
}
