package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eventpress/speakerkit/extract"
	"github.com/eventpress/speakerkit/log"
	"github.com/eventpress/speakerkit/speaker"
)

// packetPrefixes are the filename patterns a directory scan picks up.
var packetPrefixes = []string{"speaker_packet_", "speaker_"}

// ScanDirectory reads every speaker packet in dir and extracts a record per
// file. Per-file extraction is best-effort (an unreadable packet yields a
// record with empty fields that QC will flag); a missing directory or a
// directory without any packets is an input error.
func (p *Pipeline) ScanDirectory(dir string) ([]*speaker.Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dir, err)
	}

	var records []*speaker.Record
	for _, entry := range entries {
		if entry.IsDir() || !isPacketFile(entry.Name(), p.cfg.PacketExtensions) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		rec := extract.FromFile(path)
		log.Debug().Str("file", entry.Name()).Str("speaker", rec.DisplayName()).Msg("packet extracted")
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no speaker packets found in %s (expected speaker_*.txt/.pdf/.docx files)", dir)
	}
	return records, nil
}

func isPacketFile(name string, extensions []string) bool {
	lower := strings.ToLower(name)

	ok := false
	for _, ext := range extensions {
		if strings.HasSuffix(lower, ext) {
			ok = true
			break
		}
	}
	if !ok {
		return false
	}

	for _, prefix := range packetPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
