package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// The Gemini API exposes two generateContent surfaces with incompatible
// body conventions. The v1beta surface takes camelCase keys and supports a
// response MIME type hint; the legacy v1 surface takes underscore keys and
// no hint. A request is attempted on v1beta first and translated to v1
// exactly once when the failure is not surface-independent.
const (
	surfacePrimary   = "v1beta"
	surfaceSecondary = "v1"
)

// httpBodyLogLimit bounds how much of an error response body is captured.
const httpBodyLogLimit = 1200

// GeminiProvider implements Provider against the Gemini REST API.
type GeminiProvider struct {
	cfg    Config
	client *http.Client
	log    logrus.FieldLogger
}

// NewGeminiProvider creates a Gemini provider. A missing API key is
// reported per call by Generate, not here, so a server can boot without
// credentials and serve its fallback content.
func NewGeminiProvider(cfg Config) *GeminiProvider {
	cfg = cfg.withDefaults()
	return &GeminiProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    logrus.StandardLogger(),
	}
}

// SetLogger replaces the provider's logger. Intended for tests and for
// callers that carry request-scoped loggers.
func (p *GeminiProvider) SetLogger(log logrus.FieldLogger) {
	p.log = log
}

func (p *GeminiProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if p.cfg.APIKey == "" {
		return nil, &ErrCredentialMissing{}
	}

	text, usage, primaryErr := p.call(ctx, surfacePrimary, req)
	if primaryErr == nil {
		return p.response(text, surfacePrimary, usage), nil
	}

	if !retriableOnSecondary(primaryErr) {
		return nil, primaryErr
	}

	p.log.WithError(primaryErr).WithField("surface", surfacePrimary).
		Warn("gemini primary surface failed, retrying on secondary")

	text, usage, secondaryErr := p.call(ctx, surfaceSecondary, req)
	if secondaryErr == nil {
		return p.response(text, surfaceSecondary, usage), nil
	}

	return nil, &ErrBothSurfaces{Primary: primaryErr, Secondary: secondaryErr}
}

func (p *GeminiProvider) ModelID() string {
	return p.cfg.Model
}

func (p *GeminiProvider) response(text, surface string, usage Usage) *Response {
	return &Response{
		Text:    text,
		Surface: "gemini-" + surface,
		Model:   p.cfg.Model,
		Usage:   usage,
	}
}

// call performs one generateContent request against the given surface and
// extracts the first candidate's text.
func (p *GeminiProvider) call(ctx context.Context, surface string, req Request) (string, Usage, error) {
	body, err := json.Marshal(buildBody(surface, req))
	if err != nil {
		return "", Usage{}, fmt.Errorf("marshal gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/models/%s:generateContent?key=%s",
		p.cfg.BaseURL, surface, p.cfg.Model, p.cfg.APIKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", Usage{}, fmt.Errorf("build gemini request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", Usage{}, fmt.Errorf("gemini %s request: %w", surface, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", Usage{}, fmt.Errorf("read gemini %s response: %w", surface, err)
	}

	p.log.WithFields(logrus.Fields{
		"surface":    surface,
		"status":     resp.StatusCode,
		"latency_ms": time.Since(start).Milliseconds(),
	}).Debug("gemini generateContent")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", Usage{}, &ErrHTTP{Status: resp.StatusCode, Body: truncate(string(raw), httpBodyLogLimit)}
	}

	var envelope geminiEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", Usage{}, fmt.Errorf("decode gemini %s envelope: %w", surface, err)
	}

	text := envelope.firstCandidateText()
	if text == "" {
		return "", Usage{}, &ErrEmptyCandidates{}
	}

	return text, envelope.usage(), nil
}

// buildBody constructs the request body in the convention the surface
// expects. The instruction and user message travel as two parts of a
// single user turn on both surfaces.
func buildBody(surface string, req Request) any {
	contents := []geminiContent{{
		Role: "user",
		Parts: []geminiPart{
			{Text: req.Instruction},
			{Text: req.UserMessage},
		},
	}}

	if surface == surfacePrimary {
		return primaryBody{
			Contents: contents,
			GenerationConfig: primaryGenerationConfig{
				Temperature:      req.Temperature,
				MaxOutputTokens:  req.MaxTokens,
				ResponseMIMEType: "application/json",
			},
		}
	}

	return secondaryBody{
		Contents: contents,
		GenerationConfig: secondaryGenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

// primaryBody is the v1beta shape: camelCase keys, MIME type hint.
type primaryBody struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig primaryGenerationConfig `json:"generationConfig"`
}

type primaryGenerationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
}

// secondaryBody is the legacy v1 shape: underscore keys, no MIME hint.
type secondaryBody struct {
	Contents         []geminiContent           `json:"contents"`
	GenerationConfig secondaryGenerationConfig `json:"generation_config"`
}

type secondaryGenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"max_output_tokens,omitempty"`
}

// geminiEnvelope is the response shape shared by both surfaces.
type geminiEnvelope struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

// firstCandidateText joins the text parts of the first candidate.
func (e *geminiEnvelope) firstCandidateText() string {
	if len(e.Candidates) == 0 {
		return ""
	}
	var parts []string
	for _, part := range e.Candidates[0].Content.Parts {
		if part.Text != "" {
			parts = append(parts, part.Text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

func (e *geminiEnvelope) usage() Usage {
	return Usage{
		InputTokens:  e.UsageMetadata.PromptTokenCount,
		OutputTokens: e.UsageMetadata.CandidatesTokenCount,
		TotalTokens:  e.UsageMetadata.TotalTokenCount,
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
