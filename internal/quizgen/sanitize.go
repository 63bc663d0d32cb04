package quizgen

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const maxTags = 8

// Sanitize is the trust boundary between provider output and the rest of
// the system. It takes the parsed batch object, validates each candidate
// independently and constructs canonical Questions. Candidates that fail
// any check are skipped, not repaired. If nothing survives, the whole
// batch fails with *ErrNoValidQuestions.
func Sanitize(payload map[string]any) ([]Question, error) {
	raw, _ := payload["questions"].([]any)

	out := make([]Question, 0, len(raw))
	for _, el := range raw {
		obj, ok := el.(map[string]any)
		if !ok {
			continue
		}
		if q, ok := sanitizeOne(obj); ok {
			out = append(out, q)
		}
	}

	if len(out) == 0 {
		return nil, &ErrNoValidQuestions{}
	}
	return out, nil
}

func sanitizeOne(obj map[string]any) (Question, bool) {
	opts, _ := obj["options"].([]any)
	if len(opts) > 4 {
		opts = opts[:4]
	}
	if len(opts) != 4 {
		return Question{}, false
	}

	// Duplicate detection uses trimmed string equality; the options are
	// stored in their original (coerced but untrimmed) form.
	options := make([]string, 4)
	seen := make(map[string]struct{}, 4)
	for i, opt := range opts {
		options[i] = coerceString(opt)
		seen[strings.TrimSpace(options[i])] = struct{}{}
	}
	if len(seen) != 4 {
		return Question{}, false
	}

	idx, ok := coerceIndex(firstPresent(obj, "correct_index", "correctIndex"))
	if !ok || idx < 0 || idx > 3 {
		return Question{}, false
	}

	stem := strings.TrimSpace(coerceString(firstPresent(obj, "stem", "q", "question")))
	if stem == "" {
		return Question{}, false
	}

	id := coerceString(obj["id"])
	if id == "" {
		id = uuid.NewString()
	}

	difficulty := DifficultyMedium
	switch Difficulty(coerceString(obj["difficulty"])) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		difficulty = Difficulty(coerceString(obj["difficulty"]))
	}

	category := coerceString(obj["category"])
	if category == "" {
		category = "general"
	}

	lang := coerceString(obj["lang"])
	if lang == "" {
		lang = "en"
	}

	tags := []string{}
	if rawTags, ok := obj["tags"].([]any); ok {
		if len(rawTags) > maxTags {
			rawTags = rawTags[:maxTags]
		}
		for _, t := range rawTags {
			tags = append(tags, coerceString(t))
		}
	}

	return Question{
		ID:           id,
		Stem:         stem,
		Options:      options,
		CorrectIndex: idx,
		Explanation:  strings.TrimSpace(coerceString(obj["explanation"])),
		Difficulty:   difficulty,
		Category:     category,
		Tags:         tags,
		Lang:         lang,
	}, true
}

// firstPresent returns the first non-nil, non-empty value among the keys.
func firstPresent(obj map[string]any, keys ...string) any {
	for _, k := range keys {
		v, ok := obj[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			continue
		}
		return v
	}
	return nil
}

// coerceString renders any JSON scalar as a string, the way duck-typed
// provider output demands. Objects and arrays coerce to "".
func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1e15 {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// coerceIndex converts a JSON number or numeric string to an integer
// index. Non-integral values are rejected.
func coerceIndex(v any) (int, bool) {
	switch val := v.(type) {
	case float64:
		if val != math.Trunc(val) {
			return 0, false
		}
		return int(val), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil || f != math.Trunc(f) {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}
