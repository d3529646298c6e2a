package ai

import (
	"encoding/json"
	"strings"
)

// extractor pulls the generated text out of one known response shape.
type extractor struct {
	name string
	fn   func(v any) (string, bool)
}

// extractors are tried in order; the first non-empty text wins.
var extractors = []extractor{
	{"text", textAt("text")},
	{"response.text", textAt("response", "text")},
	{"candidates.parts", textAt("candidates", 0, "content", "parts", 0, "text")},
	{"content.blocks", textAt("content", 0, "text")},
	{"choices.message", textAt("choices", 0, "message", "content")},
}

// extractText returns the generated text from a raw provider response,
// falling back to the whole response as a string.
func extractText(raw []byte) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return strings.TrimSpace(string(raw))
	}
	if s, ok := v.(string); ok {
		return s
	}
	for _, e := range extractors {
		if text, ok := e.fn(v); ok {
			return text
		}
	}
	return strings.TrimSpace(string(raw))
}

// textAt builds an extractor that walks path (string keys into objects,
// int indexes into arrays) and expects a non-empty string at the end.
func textAt(path ...any) func(any) (string, bool) {
	return func(v any) (string, bool) {
		cur := v
		for _, step := range path {
			switch key := step.(type) {
			case string:
				obj, ok := cur.(map[string]any)
				if !ok {
					return "", false
				}
				cur, ok = obj[key]
				if !ok {
					return "", false
				}
			case int:
				arr, ok := cur.([]any)
				if !ok || key >= len(arr) {
					return "", false
				}
				cur = arr[key]
			}
		}
		s, ok := cur.(string)
		if !ok || s == "" {
			return "", false
		}
		return s, true
	}
}
