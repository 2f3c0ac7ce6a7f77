package handlers

import (
	"net/http"

	"github.com/matiasleandrokruk/a2ui/internal/infra/llm"
)

// ProviderLister exposes the configured providers for discovery.
type ProviderLister interface {
	ListAvailable() []llm.Descriptor
}

// ProvidersHandler serves provider discovery.
type ProvidersHandler struct {
	registry ProviderLister
}

func NewProvidersHandler(registry ProviderLister) *ProvidersHandler {
	return &ProvidersHandler{registry: registry}
}

// List returns every provider with credentials present, in registration
// order. An empty catalog is a valid response, not an error: the client
// falls back to mock mode on its own.
func (h *ProvidersHandler) List(w http.ResponseWriter, r *http.Request) {
	providers := h.registry.ListAvailable()
	if providers == nil {
		providers = []llm.Descriptor{}
	}
	writeJSON(w, http.StatusOK, map[string][]llm.Descriptor{"providers": providers})
}
