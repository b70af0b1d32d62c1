package utils

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var codeBlockRe = regexp.MustCompile("```(?:json)?\\s*\\n?([\\s\\S]*?)\\n?```")

// ErrNoJSONObject is returned when no decodable JSON object can be located
// in a model response.
var ErrNoJSONObject = errors.New("unable to locate JSON object in response")

// DecodeJSONObject locates a JSON object inside a raw model response and
// decodes it into target. Handles the formats models actually produce:
// - Raw JSON: {"short": "..."}
// - Code blocks: ```json\n{...}\n``` or ```\n{...}\n```
// - Surrounding prose: "Here is the content: {...}"
func DecodeJSONObject(content string, target any) error {
	content = strings.TrimSpace(content)

	// Try direct parse first
	if err := json.Unmarshal([]byte(content), target); err == nil {
		return nil
	}

	// Try markdown code blocks
	if matches := codeBlockRe.FindStringSubmatch(content); len(matches) > 1 {
		if err := json.Unmarshal([]byte(strings.TrimSpace(matches[1])), target); err == nil {
			return nil
		}
	}

	// Fall back to the span between the first { and the last }
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start != -1 && end > start {
		if err := json.Unmarshal([]byte(content[start:end+1]), target); err == nil {
			return nil
		}
	}

	return ErrNoJSONObject
}
