package chat

import (
	"context"
	"fmt"

	"github.com/matiasleandrokruk/a2ui/internal/a2ui"
	"github.com/matiasleandrokruk/a2ui/internal/infra/llm"
	"github.com/matiasleandrokruk/a2ui/internal/infra/search"
)

// Generation parameters shared by every provider route, matching the
// instructions baked into the system prompt.
const (
	genTemperature = 0.7
	genMaxTokens   = 2000
)

// Routes a request can take.
const (
	RouteLLM  = "llm"
	RouteMock = "mock"
)

// Responder is the deterministic fallback generator. Pure and total: it
// backs every degradation path and must never fail.
type Responder interface {
	Respond(message string) a2ui.Document
}

// Input is one generation request. History is caller-owned, round-tripped
// per call and never stored: the service stays stateless so concurrent
// requests are independent.
type Input struct {
	Message  string
	Provider string
	Model    string
	History  []llm.Message
	Search   bool
}

// SearchMetadata records what the augmentation stage did. Observability
// only; it never affects control flow after generation.
type SearchMetadata struct {
	Searched     bool   `json:"searched"`
	Success      *bool  `json:"success,omitempty"`
	ResultsCount *int   `json:"results_count,omitempty"`
	Error        string `json:"error,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// Result carries the document plus routing facts for the usage log. The
// document already has "_search" and "_error" attached where applicable.
type Result struct {
	Document a2ui.Document
	Route    string
	Provider string
	Model    string
	Degraded bool // provider route failed and the mock answered instead
	Search   *SearchMetadata
}

// Service orchestrates one generation request end to end.
type Service struct {
	registry *llm.Registry
	search   search.Backend
	mock     Responder
}

// NewService wires the orchestrator. search may be nil when no retrieval
// backend is configured at all.
func NewService(registry *llm.Registry, searchBackend search.Backend, mock Responder) *Service {
	return &Service{registry: registry, search: searchBackend, mock: mock}
}

// Generate runs the request lifecycle:
//
//	no provider/model pair, or pair unresolvable → mock route
//	search opted-in + gate fires → attempt augmentation, absorb failures
//	vendor call → extract document
//	vendor failure → mock document annotated with "_error"
//
// Generate itself never fails; every internal failure degrades to a
// renderable document. Input validation (empty message) is the transport
// layer's concern.
func (s *Service) Generate(ctx context.Context, in Input) Result {
	if in.Provider == "" || in.Model == "" {
		return Result{Document: s.mock.Respond(in.Message), Route: RouteMock}
	}

	provider, err := s.registry.Get(in.Provider)
	if err != nil {
		// Unknown or unconfigured provider: served by the mock, not
		// surfaced as a failure.
		return Result{Document: s.mock.Respond(in.Message), Route: RouteMock}
	}

	message := in.Message
	var meta *SearchMetadata
	if in.Search && ShouldSearch(in.Message) {
		meta, message = s.augment(ctx, in.Message)
	}

	raw, err := provider.Generate(ctx, llm.ChatRequest{
		Model:       in.Model,
		Messages:    AssemblePrompt(a2ui.SystemPrompt, in.History, message),
		Temperature: genTemperature,
		MaxTokens:   genMaxTokens,
	})
	if err != nil {
		doc := s.mock.Respond(in.Message)
		doc["_error"] = fmt.Sprintf("%s generation failed: %v", provider.Name(), err)
		attachSearch(doc, meta)
		return Result{
			Document: doc,
			Route:    RouteLLM,
			Provider: in.Provider,
			Model:    in.Model,
			Degraded: true,
			Search:   meta,
		}
	}

	doc := a2ui.Extract(raw)
	attachSearch(doc, meta)
	return Result{
		Document: doc,
		Route:    RouteLLM,
		Provider: in.Provider,
		Model:    in.Model,
		Search:   meta,
	}
}

// augment runs the retrieval stage. It returns the metadata to attach and
// the (possibly augmented) message. Every failure mode (backend not
// configured, search error, nothing usable) leaves the original message
// untouched; retrieval must never abort generation.
func (s *Service) augment(ctx context.Context, message string) (*SearchMetadata, string) {
	if s.search == nil || !s.search.Available() {
		return &SearchMetadata{Searched: false, Reason: "not_configured"}, message
	}

	results, err := s.search.Search(ctx, message)
	if err != nil {
		return &SearchMetadata{Searched: true, Success: ptr(false), Error: err.Error()}, message
	}

	formatted := s.search.FormatForContext(results)
	if formatted == "" {
		// Nothing usable: treated identically to "search not attempted"
		// for augmentation purposes, but the attempt is still recorded.
		return &SearchMetadata{
			Searched:     true,
			Success:      ptr(false),
			ResultsCount: ptr(len(results)),
			Error:        "no usable results",
		}, message
	}

	return &SearchMetadata{
		Searched:     true,
		Success:      ptr(true),
		ResultsCount: ptr(len(results)),
	}, AugmentMessage(message, formatted)
}

func attachSearch(doc a2ui.Document, meta *SearchMetadata) {
	if meta != nil {
		doc["_search"] = meta
	}
}

func ptr[T any](v T) *T { return &v }
