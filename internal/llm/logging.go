package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yigitturan/QuizBite/internal/store"
)

// bodyCaptureLimit bounds how much of a request or response is persisted
// per audit event.
const bodyCaptureLimit = 4096

// LoggingProvider is a decorator that records every LLM request as an
// audit event.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: truncate(serializeRequest(req), bodyCaptureLimit),
	}

	if resp != nil {
		data.Surface = resp.Surface
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.ResponseBody = truncate(resp.Text, bodyCaptureLimit)
	}

	if err != nil {
		data.ErrorMessage = truncate(err.Error(), bodyCaptureLimit)
	}

	// Record the event but don't fail the request if auditing fails.
	if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record LLM request event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.Instruction != "" {
		b.WriteString("[instruction]\n")
		b.WriteString(req.Instruction)
		b.WriteString("\n\n")
	}

	b.WriteString("[user]\n")
	b.WriteString(req.UserMessage)
	b.WriteString("\n")

	return b.String()
}
