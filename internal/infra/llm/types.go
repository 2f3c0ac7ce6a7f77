// Package llm defines the vendor-agnostic LLM provider abstraction: shared
// message types, the Provider interface, the registry that selects adapters
// at request time, and one adapter per supported vendor.
package llm

import "github.com/matiasleandrokruk/a2ui/internal/infra/config"

// Message represents a single turn in a conversation (role + content).
type Message struct {
	Role    string `json:"role"` // "system" | "user" | "assistant"
	Content string `json:"content"`
}

// Conversation roles. Adapters translate these to each vendor's native
// convention (Gemini calls the assistant "model", Anthropic wants system
// out-of-band).
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatRequest is the input for a non-streaming chat completion.
type ChatRequest struct {
	Model       string
	Messages    []Message
	Temperature float32
	MaxTokens   int
}

// ModelOption is one selectable model of a provider's catalog.
type ModelOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Descriptor is the externally visible identity of an available provider.
type Descriptor struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Models []ModelOption `json:"models"`
}

// modelsOr returns override when non-empty, otherwise the vendor defaults.
// Catalogs are fixed at construction and read-only afterwards.
func modelsOr(override []ModelOption, defaults []ModelOption) []ModelOption {
	if len(override) > 0 {
		return override
	}
	return defaults
}

// Credential is re-exported for adapter constructors so callers wire
// providers straight from config.
type Credential = config.Credential
