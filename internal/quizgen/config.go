package quizgen

// Config controls the behavior of the session Service.
type Config struct {
	// Strict switches the failure policy. Default (false) is fail-open:
	// every pipeline failure is absorbed and the fallback bank is
	// served. Strict propagates the error to the caller instead.
	Strict bool

	// MaxCount caps the number of questions a single request may ask for.
	MaxCount int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxCount:    50,
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}
