package llm

import "context"

// Provider is the vendor-agnostic interface for A2UI generation. Each
// vendor implements it once; the application is never coupled to a specific
// SDK. Generate returns the raw assistant text; decoding into an A2UI
// document is the extractor's job, not the adapter's.
type Provider interface {
	// ID is the stable routing key ("openai", "anthropic", "gemini").
	ID() string

	// Name is the human-readable vendor name.
	Name() string

	// Models lists the selectable models, catalog order.
	Models() []ModelOption

	// Available reports whether the vendor credential is configured.
	// It tests presence of the env variable, not non-emptiness.
	Available() bool

	// Generate performs a single non-streaming completion. No retries:
	// a request is attempted at most once per provider.
	Generate(ctx context.Context, req ChatRequest) (string, error)
}
