// Package chat composes the generation pipeline: prompt assembly, the
// search gate, and the orchestrator that routes a request through provider
// selection, optional retrieval augmentation, the vendor call, and
// extraction, degrading gracefully at every stage.
package chat

import (
	"strings"

	"github.com/matiasleandrokruk/a2ui/internal/infra/llm"
)

// AssemblePrompt builds the provider-native message sequence: the system
// instruction always first and never duplicated into history, history turns
// in their original role and order, and the current message appended last as
// a user turn.
func AssemblePrompt(system string, history []llm.Message, message string) []llm.Message {
	out := make([]llm.Message, 0, len(history)+2)
	out = append(out, llm.Message{Role: llm.RoleSystem, Content: system})
	out = append(out, history...)
	out = append(out, llm.Message{Role: llm.RoleUser, Content: message})
	return out
}

// AugmentMessage prepends retrieved context to the user message as one
// in-band block, clearly delimited from the literal question. Augmentation
// is never a separate turn: providers with no system/context channel still
// see it.
func AugmentMessage(message, context string) string {
	var b strings.Builder
	b.WriteString("Context from web search:\n")
	b.WriteString(context)
	b.WriteString("\n\nQuestion:\n")
	b.WriteString(message)
	return b.String()
}
