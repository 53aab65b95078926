package formatter

import (
	"encoding/json"
	"strings"
)

// wrapperFields are the conventional property names AI providers nest their
// generated text under, checked in priority order.
var wrapperFields = []string{"message", "content", "response", "itinerary"}

// Normalize reduces an AI response payload to plain text. A JSON-encoded
// string is unwrapped, an object yields the first present wrapper field, and
// anything unrecognized is kept whole so content is never dropped.
func Normalize(raw []byte) string {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return ""
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return text
	}

	if s, ok := parsed.(string); ok {
		// The wrapped string may itself be a JSON object.
		var inner any
		if err := json.Unmarshal([]byte(s), &inner); err != nil {
			return s
		}
		if s2, ok := inner.(string); ok {
			return s2
		}
		parsed = inner
		text = s
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return text
	}

	for _, field := range wrapperFields {
		if s, ok := obj[field].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}

	// No recognized wrapper field, serialize the object back to text.
	if pretty, err := json.MarshalIndent(obj, "", "  "); err == nil {
		return string(pretty)
	}
	return text
}
