package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrCredentialMissing indicates no API key is configured. This is a
// configuration failure: the request is not attempted on any surface.
type ErrCredentialMissing struct{}

func (e *ErrCredentialMissing) Error() string {
	return "gemini API key missing"
}

// ErrHTTP indicates the provider returned a non-2xx status.
// Body holds the response body truncated to a bounded length.
type ErrHTTP struct {
	Status int
	Body   string
}

func (e *ErrHTTP) Error() string {
	return fmt.Sprintf("gemini http %d: %s", e.Status, e.Body)
}

// SurfaceIndependent reports whether the failure would recur on any API
// surface. Quota, rate-limit and permission errors are account-level, so
// retrying against the secondary surface is pointless.
func (e *ErrHTTP) SurfaceIndependent() bool {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
		return true
	}
	return false
}

// ErrEmptyCandidates indicates the provider response parsed but contained
// no usable completion text.
type ErrEmptyCandidates struct{}

func (e *ErrEmptyCandidates) Error() string {
	return "gemini response contains no candidates"
}

// ErrBothSurfaces indicates both the primary and the secondary API surface
// failed. Primary is always the first attempt.
type ErrBothSurfaces struct {
	Primary   error
	Secondary error
}

func (e *ErrBothSurfaces) Error() string {
	return fmt.Sprintf("all gemini surfaces failed: primary: %v; secondary: %v", e.Primary, e.Secondary)
}

func (e *ErrBothSurfaces) Unwrap() []error {
	return []error{e.Primary, e.Secondary}
}

// ErrInvalidResponse indicates content that does not conform to a
// requested schema.
type ErrInvalidResponse struct {
	Err error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// retriableOnSecondary reports whether a primary-surface failure warrants
// one attempt against the secondary surface. Context expiry and
// surface-independent HTTP failures propagate immediately.
func retriableOnSecondary(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var cred *ErrCredentialMissing
	if errors.As(err, &cred) {
		return false
	}
	var httpErr *ErrHTTP
	if errors.As(err, &httpErr) {
		return !httpErr.SurfaceIndependent()
	}
	// Transport failures, malformed envelopes and empty candidates all
	// get one shot on the secondary surface.
	return true
}
