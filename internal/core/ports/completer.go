package ports

import "context"

// CompletionOptions tunes a single completion request.
type CompletionOptions struct {
	// Operation names the use case for metrics and logs.
	Operation string
	// Deterministic asks for near-zero sampling randomness.
	Deterministic   bool
	MaxOutputTokens int
}

// Completer is the text-completion service used for translation and drafting.
type Completer interface {
	// Configured reports whether credentials are present. When false, Complete
	// fails with domain.ErrLLMNotConfigured without touching the network.
	Configured() bool
	// Complete returns the model output or an error wrapping
	// domain.ErrLLMUnavailable.
	Complete(ctx context.Context, systemPrompt, userPrompt string, opts CompletionOptions) (string, error)
}
