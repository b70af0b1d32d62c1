package extract

import "fmt"

// ErrorKind classifies why text extraction failed, so callers can choose
// their own fallback policy instead of receiving a silent empty string.
type ErrorKind string

const (
	// KindNotFound means the source file does not exist or is unreadable.
	KindNotFound ErrorKind = "not_found"
	// KindUnsupported means the file's format has no extraction support.
	KindUnsupported ErrorKind = "unsupported"
	// KindCorrupt means the file exists but could not be decoded.
	KindCorrupt ErrorKind = "corrupt"
)

// ExtractionError describes a failed text extraction.
type ExtractionError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extract %s: %s: %v", e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("extract %s: %s", e.Path, e.Kind)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

func newError(kind ErrorKind, path string, err error) *ExtractionError {
	return &ExtractionError{Kind: kind, Path: path, Err: err}
}
