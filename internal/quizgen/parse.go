package quizgen

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Models wrap their JSON in markdown fences or surround it with prose
// despite instructions not to. ParseBatch recovers the object with three
// strategies, attempted in order, first success wins:
//
//  1. parse the text as-is
//  2. strip a leading ```json fence and trailing ``` fence and parse
//  3. parse the substring between the first '{' and the last '}'
//
// Returns the parsed JSON object or *ErrParseFailed.
func ParseBatch(raw string) (map[string]any, error) {
	if obj, ok := parseObject(raw); ok {
		return obj, nil
	}

	if obj, ok := parseObject(stripCodeFences(raw)); ok {
		return obj, nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		if obj, ok := parseObject(raw[start : end+1]); ok {
			return obj, nil
		}
	}

	return nil, &ErrParseFailed{}
}

func parseObject(s string) (map[string]any, bool) {
	var parsed any
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return nil, false
	}
	obj, ok := parsed.(map[string]any)
	return obj, ok
}

var (
	leadingFence  = regexp.MustCompile(`(?i)^\s*` + "```json" + `\s*`)
	trailingFence = regexp.MustCompile(`\s*` + "```" + `\s*$`)
)

func stripCodeFences(s string) string {
	s = leadingFence.ReplaceAllString(s, "")
	s = trailingFence.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
