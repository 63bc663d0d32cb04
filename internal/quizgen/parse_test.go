package quizgen

import (
	"errors"
	"testing"
)

func TestParseBatch_Direct(t *testing.T) {
	obj, err := ParseBatch(`{"questions":[]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qs, ok := obj["questions"].([]any); !ok || len(qs) != 0 {
		t.Errorf("expected empty questions array, got %v", obj["questions"])
	}
}

func TestParseBatch_CodeFences(t *testing.T) {
	inputs := []string{
		"```json\n{\"questions\":[]}\n```",
		"```JSON\n{\"questions\":[]}\n```",
		"  ```json  \n{\"questions\":[]}\n  ```  ",
	}
	for _, in := range inputs {
		obj, err := ParseBatch(in)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", in, err)
		}
		if _, ok := obj["questions"]; !ok {
			t.Errorf("input %q: missing questions key", in)
		}
	}
}

func TestParseBatch_BraceExtraction(t *testing.T) {
	obj, err := ParseBatch(`Sure! {"questions":[]} Thanks.`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := obj["questions"]; !ok {
		t.Error("missing questions key after brace extraction")
	}
}

func TestParseBatch_NestedBraces(t *testing.T) {
	obj, err := ParseBatch(`Here you go: {"questions":[{"stem":"a {b} c"}]} done`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	qs, ok := obj["questions"].([]any)
	if !ok || len(qs) != 1 {
		t.Fatalf("expected one question, got %v", obj["questions"])
	}
}

func TestParseBatch_TopLevelArrayRejected(t *testing.T) {
	if _, err := ParseBatch(`[1,2,3]`); err == nil {
		t.Fatal("expected error for non-object JSON")
	}
}

func TestParseBatch_Unrecoverable(t *testing.T) {
	_, err := ParseBatch("I could not generate any questions, sorry.")
	if err == nil {
		t.Fatal("expected error")
	}
	var parseErr *ErrParseFailed
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ErrParseFailed, got %T (%v)", err, err)
	}
}
