// Package normalize recovers usable results from raw model output. The model
// is told to return bare JSON but regularly wraps it in code fences anyway,
// so nothing here trusts the formatting instructions it was given.
package normalize

import (
	"regexp"
	"strings"

	"github.com/bytedance/sonic"

	apperrors "github.com/kdduha/slangbot/internal/errors"
	"github.com/kdduha/slangbot/internal/models"
)

const (
	msgEmptyText  = "The AI was speechless. Try a different term or tweak the vibe."
	msgEmptyJSON  = "AI returned an empty response."
	msgInvalid    = "AI returned invalid JSON."
	msgIncomplete = "AI returned an incomplete data structure. Required fields: term, definition, example, origin."
)

// fence matches ```lang\n...\n``` around the whole payload.
var fence = regexp.MustCompile("(?s)^```[\\w-]*[ \\t]*\\n?(.*?)\\n?\\s*```$")

// Text trims a text-mode response and rejects an empty one.
func Text(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", apperrors.NewEmptyResponse(msgEmptyText)
	}
	return text, nil
}

// JSON decodes a JSON-mode response into a NewSlangResult. Partial results
// are rejected rather than completed.
func JSON(raw string) (models.NewSlangResult, error) {
	payload := StripFence(raw)
	if payload == "" {
		return models.NewSlangResult{}, apperrors.NewMalformedResponse(msgEmptyJSON, nil)
	}

	var fields map[string]any
	if err := sonic.UnmarshalString(payload, &fields); err != nil {
		return models.NewSlangResult{}, apperrors.NewMalformedResponse(msgInvalid, err)
	}

	result := models.NewSlangResult{
		Term:       stringField(fields, "term"),
		Definition: stringField(fields, "definition"),
		Example:    stringField(fields, "example"),
		Origin:     stringField(fields, "origin"),
	}
	if len(result.MissingFields()) > 0 {
		return models.NewSlangResult{}, apperrors.NewMalformedResponse(msgIncomplete, nil)
	}
	return result, nil
}

// StripFence trims raw and unwraps it from a fenced code block if present.
func StripFence(raw string) string {
	text := strings.TrimSpace(raw)
	if m := fence.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return text
}

// stringField returns a non-blank string value; anything else counts as missing.
func stringField(fields map[string]any, key string) string {
	s, ok := fields[key].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}
