package llm

import (
	"os"
	"time"
)

// DefaultBaseURL is the Gemini generative language API host.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-flash-latest"

// Config holds provider configuration. It is read once at process start
// and treated as read-only afterwards.
type Config struct {
	// APIKey is the Gemini API credential. An empty key is not a
	// construction error: Generate fails with ErrCredentialMissing so
	// the caller's fallback policy can take over.
	APIKey string

	// Model is the Gemini model identifier. Default: "gemini-flash-latest".
	Model string

	// BaseURL overrides the API host, mainly for tests.
	BaseURL string

	// Timeout bounds each HTTP request to the API. Default: 30s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Model:   DefaultModel,
		BaseURL: DefaultBaseURL,
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. QUIZBITE_-prefixed variables win over the
// bare GEMINI_ ones.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if k := os.Getenv("QUIZBITE_GEMINI_API_KEY"); k != "" {
		cfg.APIKey = k
	} else if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.APIKey = k
	}

	if m := os.Getenv("QUIZBITE_GEMINI_MODEL"); m != "" {
		cfg.Model = m
	} else if m := os.Getenv("GEMINI_MODEL"); m != "" {
		cfg.Model = m
	}

	if u := os.Getenv("QUIZBITE_GEMINI_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}

	if d := os.Getenv("QUIZBITE_GEMINI_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil && parsed > 0 {
			cfg.Timeout = parsed
		}
	}

	return cfg
}

// withDefaults fills zero-valued fields so a partially built Config
// behaves the same as DefaultConfig.
func (c Config) withDefaults() Config {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return c
}
