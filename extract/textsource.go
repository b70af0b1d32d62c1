package extract

import (
	"context"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/mholt/archives"

	"github.com/eventpress/speakerkit/log"
)

// Text extracts plain text from a packet file based on its extension.
// Supported: .txt, .md (read directly), .pdf, .docx. A .doc file (legacy
// binary Word) is reported as unsupported rather than mis-decoded.
func Text(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", newError(KindNotFound, path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", newError(KindNotFound, path, err)
		}
		return string(data), nil
	case ".pdf":
		return pdfText(path)
	case ".docx":
		return docxText(path)
	default:
		return "", newError(KindUnsupported, path, nil)
	}
}

// TextOrEmpty is the best-effort variant: extraction failures log a warning
// and yield an empty body. Callers must treat an empty result as "no bio
// provided".
func TextOrEmpty(path string) string {
	text, err := Text(path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("text extraction failed")
		return ""
	}
	return text
}

func pdfText(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", newError(KindCorrupt, path, err)
	}
	defer file.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", newError(KindCorrupt, path, err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, plain); err != nil {
		return "", newError(KindCorrupt, path, err)
	}
	return sb.String(), nil
}

// docxText reads word/document.xml out of the DOCX zip container and strips
// it down to paragraph text.
func docxText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", newError(KindNotFound, path, err)
	}
	defer f.Close()

	var body string
	found := false

	zip := archives.Zip{}
	err = zip.Extract(context.Background(), f, func(_ context.Context, info archives.FileInfo) error {
		if info.NameInArchive != "word/document.xml" {
			return nil
		}
		rc, err := info.Open()
		if err != nil {
			return err
		}
		defer rc.Close()

		text, err := wordMLText(rc)
		if err != nil {
			return err
		}
		body = text
		found = true
		return nil
	})
	if err != nil {
		return "", newError(KindCorrupt, path, err)
	}
	if !found {
		return "", newError(KindCorrupt, path, nil)
	}
	return body, nil
}

// wordMLText pulls run text out of a WordprocessingML stream, inserting a
// newline at each paragraph end.
func wordMLText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var sb strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
