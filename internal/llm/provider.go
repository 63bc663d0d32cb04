package llm

import "context"

// Provider is the core abstraction for LLM interaction.
// Consumers call Generate with a Request and receive the raw text of the
// model's first completion. Recovering structured data from that text is
// the caller's concern; provider output is untrusted.
type Provider interface {
	// Generate sends the prompt to the LLM and returns the raw completion
	// text together with the API surface that served it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// Instruction is the system-style text that fixes the output schema
	// and generation constraints.
	Instruction string

	// UserMessage is the machine-readable user payload, typically a JSON
	// document carrying topics, difficulty plan and count.
	UserMessage string

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Response holds the LLM's output.
type Response struct {
	// Text is the raw text of the first completion, stripped of
	// surrounding whitespace. May contain code fences or prose around
	// the JSON the model was asked for.
	Text string

	// Surface identifies the API surface that produced this response,
	// e.g. "gemini-v1beta" or "gemini-v1". Used for operator tagging.
	Surface string

	// Model is the model that served the request.
	Model string

	// Usage reports token consumption for this request when the
	// provider envelope included it.
	Usage Usage
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
