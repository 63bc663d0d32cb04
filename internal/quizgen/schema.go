package quizgen

import "github.com/yigitturan/QuizBite/internal/llm"

// SessionSchema is the JSON Schema of the session payload handed to
// callers. The sanitizer already guarantees it by construction; the
// schema is the machine-checkable statement of that contract, used as a
// final assertion before a session leaves the service.
var SessionSchema = &llm.Schema{
	Name:        "quiz-session",
	Description: "A validated multiple-choice quiz session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":   map[string]any{"type": "string", "minLength": 1},
						"stem": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 4,
							"maxItems": 4,
						},
						"correct_index": map[string]any{
							"type":    "integer",
							"minimum": 0,
							"maximum": 3,
						},
						"explanation": map[string]any{"type": "string"},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard"},
						},
						"category": map[string]any{"type": "string", "minLength": 1},
						"tags": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"maxItems": 8,
						},
						"lang": map[string]any{"type": "string", "minLength": 1},
					},
					"required": []any{
						"id", "stem", "options", "correct_index", "explanation",
						"difficulty", "category", "tags", "lang",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
