package qc

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eventpress/speakerkit/config"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
}

func TestValidateImage(t *testing.T) {
	cfg := config.DefaultPipeline()
	dir := t.TempDir()

	valid := filepath.Join(dir, "olivia_thorne.png")
	writeTestPNG(t, valid, 400, 300)

	corrupt := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(corrupt, []byte("definitely not a png"), 0644); err != nil {
		t.Fatal(err)
	}

	unsupported := filepath.Join(dir, "headshot.svg")
	if err := os.WriteFile(unsupported, []byte("<svg/>"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("valid png", func(t *testing.T) {
		v := ValidateImage(valid, cfg)
		if !v.Valid {
			t.Fatalf("expected valid, got error %q", v.Error)
		}
		if v.Format != "png" || v.Width != 400 || v.Height != 300 {
			t.Errorf("got format=%q %dx%d", v.Format, v.Width, v.Height)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		v := ValidateImage(filepath.Join(dir, "nope.jpg"), cfg)
		if v.Valid || v.Error != "File does not exist" {
			t.Errorf("got %+v", v)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		v := ValidateImage(unsupported, cfg)
		if v.Valid || !strings.HasPrefix(v.Error, "Unsupported image format: .svg") {
			t.Errorf("got %+v", v)
		}
	})

	t.Run("corrupt content", func(t *testing.T) {
		v := ValidateImage(corrupt, cfg)
		if v.Valid || !strings.HasPrefix(v.Error, "Invalid image file:") {
			t.Errorf("got %+v", v)
		}
	})
}
