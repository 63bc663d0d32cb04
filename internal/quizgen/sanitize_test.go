package quizgen

import (
	"encoding/json"
	"errors"
	"testing"
)

// batch builds a sanitizer input from raw candidate JSON objects.
func batch(t *testing.T, candidates ...string) map[string]any {
	t.Helper()
	raw := `{"questions":[` + joinComma(candidates) + `]}`
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}
	return payload
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ","
		}
		out += p
	}
	return out
}

const goodCandidate = `{
	"id": "q1",
	"stem": "Which planet is closest to the sun?",
	"options": ["Mercury", "Venus", "Earth", "Mars"],
	"correct_index": 0,
	"explanation": "Mercury orbits closest.",
	"difficulty": "easy",
	"category": "science",
	"tags": ["space"],
	"lang": "en"
}`

func TestSanitize_AcceptsWellFormedCandidate(t *testing.T) {
	qs, err := Sanitize(batch(t, goodCandidate))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	q := qs[0]
	if q.ID != "q1" || q.Stem != "Which planet is closest to the sun?" {
		t.Errorf("unexpected question: %+v", q)
	}
	if q.CorrectIndex != 0 || q.Difficulty != DifficultyEasy || q.Category != "science" {
		t.Errorf("unexpected fields: %+v", q)
	}
}

func TestSanitize_RejectsTooFewOptions(t *testing.T) {
	_, err := Sanitize(batch(t, `{"stem":"x","options":["A","B","C"],"correct_index":0}`))
	var noValid *ErrNoValidQuestions
	if !errors.As(err, &noValid) {
		t.Fatalf("expected ErrNoValidQuestions, got %v", err)
	}
}

func TestSanitize_TruncatesExtraOptions(t *testing.T) {
	qs, err := Sanitize(batch(t,
		`{"stem":"x","options":["A","B","C","D","E","F"],"correct_index":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs[0].Options) != 4 {
		t.Errorf("expected 4 options, got %v", qs[0].Options)
	}
}

func TestSanitize_RejectsDuplicateOptionsAfterTrim(t *testing.T) {
	_, err := Sanitize(batch(t,
		`{"stem":"x","options":["Mars"," Mars","Venus","Jupiter"],"correct_index":0}`))
	var noValid *ErrNoValidQuestions
	if !errors.As(err, &noValid) {
		t.Fatalf("expected ErrNoValidQuestions, got %v", err)
	}
}

func TestSanitize_CorrectIndexBounds(t *testing.T) {
	for _, idx := range []string{"4", "-1", "1.5", `"nope"`} {
		_, err := Sanitize(batch(t,
			`{"stem":"x","options":["A","B","C","D"],"correct_index":`+idx+`}`))
		if err == nil {
			t.Errorf("correct_index %s: expected rejection", idx)
		}
	}
}

func TestSanitize_CoercesNumericStringIndex(t *testing.T) {
	qs, err := Sanitize(batch(t,
		`{"stem":"x","options":["A","B","C","D"],"correct_index":"2"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qs[0].CorrectIndex != 2 {
		t.Errorf("expected index 2, got %d", qs[0].CorrectIndex)
	}
}

func TestSanitize_CamelCaseIndexAlias(t *testing.T) {
	qs, err := Sanitize(batch(t,
		`{"stem":"x","options":["A","B","C","D"],"correctIndex":3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qs[0].CorrectIndex != 3 {
		t.Errorf("expected index 3, got %d", qs[0].CorrectIndex)
	}
}

func TestSanitize_StemAliases(t *testing.T) {
	for _, field := range []string{"stem", "q", "question"} {
		qs, err := Sanitize(batch(t,
			`{"`+field+`":"  What? ","options":["A","B","C","D"],"correct_index":0}`))
		if err != nil {
			t.Fatalf("field %s: unexpected error: %v", field, err)
		}
		if qs[0].Stem != "What?" {
			t.Errorf("field %s: stem = %q", field, qs[0].Stem)
		}
	}
}

func TestSanitize_RejectsEmptyStem(t *testing.T) {
	_, err := Sanitize(batch(t,
		`{"stem":"   ","options":["A","B","C","D"],"correct_index":0}`))
	if err == nil {
		t.Fatal("expected rejection of empty stem")
	}
}

func TestSanitize_Defaults(t *testing.T) {
	qs, err := Sanitize(batch(t,
		`{"stem":"x","options":["A","B","C","D"],"correct_index":0}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := qs[0]
	if q.ID == "" {
		t.Error("missing id should be generated")
	}
	if q.Difficulty != DifficultyMedium {
		t.Errorf("difficulty = %q, want medium", q.Difficulty)
	}
	if q.Category != "general" {
		t.Errorf("category = %q, want general", q.Category)
	}
	if q.Lang != "en" {
		t.Errorf("lang = %q, want en", q.Lang)
	}
	if q.Tags == nil || len(q.Tags) != 0 {
		t.Errorf("tags = %v, want empty slice", q.Tags)
	}
	if q.Explanation != "" {
		t.Errorf("explanation = %q, want empty", q.Explanation)
	}
}

func TestSanitize_UnknownDifficultyDefaultsToMedium(t *testing.T) {
	qs, err := Sanitize(batch(t,
		`{"stem":"x","options":["A","B","C","D"],"correct_index":0,"difficulty":"brutal"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qs[0].Difficulty != DifficultyMedium {
		t.Errorf("difficulty = %q, want medium", qs[0].Difficulty)
	}
}

func TestSanitize_TruncatesTags(t *testing.T) {
	qs, err := Sanitize(batch(t,
		`{"stem":"x","options":["A","B","C","D"],"correct_index":0,
		  "tags":["1","2","3","4","5","6","7","8","9","10"]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs[0].Tags) != 8 {
		t.Errorf("expected 8 tags, got %d", len(qs[0].Tags))
	}
}

func TestSanitize_CoercesNonStringValues(t *testing.T) {
	qs, err := Sanitize(batch(t,
		`{"id":7,"stem":"x","options":[1,2,3,4],"correct_index":0,"tags":[true,5]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := qs[0]
	if q.ID != "7" {
		t.Errorf("id = %q, want 7", q.ID)
	}
	if q.Options[0] != "1" || q.Options[3] != "4" {
		t.Errorf("options = %v", q.Options)
	}
	if q.Tags[0] != "true" || q.Tags[1] != "5" {
		t.Errorf("tags = %v", q.Tags)
	}
}

func TestSanitize_SkipsBadKeepsGood(t *testing.T) {
	qs, err := Sanitize(batch(t,
		`{"stem":"bad","options":["A","B"],"correct_index":0}`,
		goodCandidate,
		`"not even an object"`,
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 || qs[0].ID != "q1" {
		t.Errorf("expected only the good candidate, got %+v", qs)
	}
}

func TestSanitize_EmptyBatchFails(t *testing.T) {
	for _, payload := range []string{`{"questions":[]}`, `{}`, `{"questions":"nope"}`} {
		var obj map[string]any
		if err := json.Unmarshal([]byte(payload), &obj); err != nil {
			t.Fatal(err)
		}
		_, err := Sanitize(obj)
		var noValid *ErrNoValidQuestions
		if !errors.As(err, &noValid) {
			t.Errorf("payload %s: expected ErrNoValidQuestions, got %v", payload, err)
		}
	}
}
