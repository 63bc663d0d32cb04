package quizgen

import (
	"errors"

	"github.com/yigitturan/QuizBite/internal/llm"
)

// ErrParseFailed indicates the provider text was not recoverable JSON by
// any parsing strategy.
type ErrParseFailed struct{}

func (e *ErrParseFailed) Error() string {
	return "quiz response is not recoverable JSON"
}

// ErrNoValidQuestions indicates every candidate failed schema validation.
// An empty-but-successful session is never produced.
type ErrNoValidQuestions struct{}

func (e *ErrNoValidQuestions) Error() string {
	return "no valid questions survived sanitization"
}

// ErrorKind labels a pipeline failure for operator logs. The five kinds
// mirror the failure taxonomy the fallback policy handles; anything else
// is reported as provider_error.
func ErrorKind(err error) string {
	var cred *llm.ErrCredentialMissing
	if errors.As(err, &cred) {
		return "credential_missing"
	}
	var httpErr *llm.ErrHTTP
	if errors.As(err, &httpErr) {
		return "http_error"
	}
	var empty *llm.ErrEmptyCandidates
	if errors.As(err, &empty) {
		return "empty_candidates"
	}
	var parse *ErrParseFailed
	if errors.As(err, &parse) {
		return "parse_failed"
	}
	var noValid *ErrNoValidQuestions
	if errors.As(err, &noValid) {
		return "no_valid_questions"
	}
	return "provider_error"
}
