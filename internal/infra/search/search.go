// Package search defines the retrieval collaborator contract used for
// prompt augmentation, plus a Tavily REST implementation. The orchestrator
// only ever depends on the Backend interface; tests substitute stubs.
package search

import (
	"context"
	"errors"
)

// ErrNotConfigured marks a search attempt against a backend whose
// credential is absent.
var ErrNotConfigured = errors.New("search backend not configured")

// Result is one retrieved hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Backend is consumed by the generation pipeline. Implementations must keep
// Search single-shot and bounded: retrieval failures are absorbed by the
// caller and must never block generation indefinitely.
type Backend interface {
	// Available reports whether the backend credential is configured.
	Available() bool

	// Search runs one query and returns hits, or an error.
	Search(ctx context.Context, query string) ([]Result, error)

	// FormatForContext renders hits as a prompt context block. An empty
	// string means "nothing usable" and is treated like search never
	// happened.
	FormatForContext(results []Result) string
}
