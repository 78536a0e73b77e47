package llm

import "context"

// Provider is the core abstraction for generation-provider interaction.
// Consumers call Generate with a Request and receive the provider's raw
// text reply; interpreting that reply is the caller's job.
type Provider interface {
	// Generate sends a prompt to the provider and returns its reply.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the provider.
type Request struct {
	// System is the system prompt. Empty for single-message requests.
	System string

	// Messages is the conversation. For quiz generation this is one
	// user message carrying the compiled instruction document.
	Messages []Message

	// MaxTokens is the output budget for the response. The caller computes
	// it from the requested question counts before issuing the request.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the provider's output.
type Response struct {
	// Content is the raw reply text, exactly as the provider produced it.
	Content string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
