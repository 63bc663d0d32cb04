package llm

import "github.com/yigitturan/QuizBite/internal/store"

// NewProvider creates the configured Gemini provider, wrapped with audit
// logging when an event repo is supplied. A nil repo skips auditing
// entirely (e.g. for the preview command).
func NewProvider(cfg Config, eventRepo store.EventRepo) Provider {
	base := NewGeminiProvider(cfg)
	if eventRepo == nil {
		return base
	}
	return WithLogging(base, eventRepo)
}
