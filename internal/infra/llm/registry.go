package llm

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable marks a lookup for a provider that is unknown or
// has no credential configured. Callers reroute to the mock responder on
// this condition instead of failing the request.
var ErrProviderUnavailable = errors.New("provider unavailable")

// Registry holds one adapter per vendor in registration order. Built once
// at process start, read-only afterwards, safe for concurrent use.
type Registry struct {
	order []Provider
	byID  map[string]Provider
}

// NewRegistry creates a Registry. Listing order follows the order providers
// are passed here, so it is deterministic within a process run.
func NewRegistry(providers ...Provider) *Registry {
	byID := make(map[string]Provider, len(providers))
	order := make([]Provider, 0, len(providers))
	for _, p := range providers {
		if _, dup := byID[p.ID()]; dup {
			continue
		}
		byID[p.ID()] = p
		order = append(order, p)
	}
	return &Registry{order: order, byID: byID}
}

// ListAvailable returns descriptors for the providers whose credential is
// currently configured, in registration order.
func (r *Registry) ListAvailable() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, p := range r.order {
		if !p.Available() {
			continue
		}
		out = append(out, Descriptor{ID: p.ID(), Name: p.Name(), Models: p.Models()})
	}
	return out
}

// Get resolves a provider by id. Unknown ids and registered-but-unconfigured
// providers both come back as ErrProviderUnavailable; the caller cannot
// tell them apart and should not need to.
func (r *Registry) Get(id string) (Provider, error) {
	p, ok := r.byID[id]
	if !ok || !p.Available() {
		return nil, fmt.Errorf("llm registry: %q: %w", id, ErrProviderUnavailable)
	}
	return p, nil
}
