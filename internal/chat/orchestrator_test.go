package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/matiasleandrokruk/a2ui/internal/a2ui"
	"github.com/matiasleandrokruk/a2ui/internal/infra/llm"
	"github.com/matiasleandrokruk/a2ui/internal/infra/search"
)

// stubProvider implements llm.Provider and records the request it saw.
type stubProvider struct {
	id        string
	available bool
	reply     string
	err       error
	gotReq    llm.ChatRequest
}

func (s *stubProvider) ID() string            { return s.id }
func (s *stubProvider) Name() string          { return strings.ToUpper(s.id[:1]) + s.id[1:] }
func (s *stubProvider) Models() []llm.ModelOption {
	return []llm.ModelOption{{ID: s.id + "-model", Name: s.id}}
}
func (s *stubProvider) Available() bool { return s.available }
func (s *stubProvider) Generate(_ context.Context, req llm.ChatRequest) (string, error) {
	s.gotReq = req
	return s.reply, s.err
}

// stubSearch implements search.Backend.
type stubSearch struct {
	available bool
	results   []search.Result
	err       error
}

func (s *stubSearch) Available() bool { return s.available }
func (s *stubSearch) Search(_ context.Context, _ string) ([]search.Result, error) {
	return s.results, s.err
}
func (s *stubSearch) FormatForContext(results []search.Result) string {
	var b strings.Builder
	for _, r := range results {
		if r.Content == "" {
			continue
		}
		b.WriteString("- " + r.Content + "\n")
	}
	return strings.TrimSpace(b.String())
}

func newTestService(p *stubProvider, sb search.Backend) *Service {
	var reg *llm.Registry
	if p != nil {
		reg = llm.NewRegistry(p)
	} else {
		reg = llm.NewRegistry()
	}
	return NewService(reg, sb, a2ui.MockResponder{})
}

func TestGenerate_NoProviderPair_MockRoute(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil)

	for _, in := range []Input{
		{Message: "hello"},
		{Message: "hello", Provider: "openai"}, // model missing: pair incomplete
		{Message: "hello", Model: "gpt-4o"},    // provider missing
	} {
		res := svc.Generate(context.Background(), in)
		if res.Route != RouteMock {
			t.Errorf("input %+v: expected mock route, got %q", in, res.Route)
		}
		if res.Document == nil {
			t.Errorf("input %+v: expected a document", in)
		}
		if _, hasErr := res.Document["_error"]; hasErr {
			t.Errorf("mock route must not carry _error: %v", res.Document)
		}
	}
}

func TestGenerate_UnavailableProvider_SameShapeAsMockPath(t *testing.T) {
	t.Parallel()

	p := &stubProvider{id: "anthropic", available: false}
	svc := newTestService(p, nil)

	withProvider := svc.Generate(context.Background(), Input{
		Message: "hello", Provider: "anthropic", Model: "claude-3-opus-20240229",
	})
	withoutProvider := svc.Generate(context.Background(), Input{Message: "hello"})

	if withProvider.Route != RouteMock {
		t.Errorf("unavailable provider must reroute to mock, got %q", withProvider.Route)
	}
	if _, hasErr := withProvider.Document["_error"]; hasErr {
		t.Errorf("silent reroute must not surface an error: %v", withProvider.Document)
	}
	// Same deterministic document as the no-provider path.
	if withProvider.Document["text"] != withoutProvider.Document["text"] {
		t.Errorf("expected identical mock documents, got %v vs %v",
			withProvider.Document, withoutProvider.Document)
	}
}

func TestGenerate_LLMRoute_ExtractsDocument(t *testing.T) {
	t.Parallel()

	p := &stubProvider{id: "openai", available: true, reply: "```json\n{\"text\":\"hi\"}\n```"}
	svc := newTestService(p, nil)

	res := svc.Generate(context.Background(), Input{
		Message:  "hello",
		Provider: "openai",
		Model:    "gpt-4o",
		History:  []llm.Message{{Role: llm.RoleUser, Content: "earlier"}},
	})

	if res.Route != RouteLLM || res.Degraded {
		t.Fatalf("expected clean llm route, got %+v", res)
	}
	if res.Document["text"] != "hi" {
		t.Errorf("expected extracted document, got %v", res.Document)
	}

	// Prompt shape: system first, history preserved, current turn last.
	msgs := p.gotReq.Messages
	if len(msgs) != 3 || msgs[0].Role != llm.RoleSystem {
		t.Fatalf("unexpected prompt shape: %+v", msgs)
	}
	if msgs[1].Content != "earlier" || msgs[2].Content != "hello" {
		t.Errorf("history/current ordering broken: %+v", msgs)
	}
	if p.gotReq.Model != "gpt-4o" || p.gotReq.MaxTokens != genMaxTokens {
		t.Errorf("unexpected request params: %+v", p.gotReq)
	}
}

func TestGenerate_VendorFailure_DegradesToAnnotatedMock(t *testing.T) {
	t.Parallel()

	p := &stubProvider{id: "openai", available: true, err: errors.New("429 rate limited")}
	svc := newTestService(p, nil)

	res := svc.Generate(context.Background(), Input{Message: "hello", Provider: "openai", Model: "gpt-4o"})

	if !res.Degraded || res.Route != RouteLLM {
		t.Fatalf("expected degraded llm route, got %+v", res)
	}
	errText, ok := res.Document["_error"].(string)
	if !ok || !strings.Contains(errText, "429 rate limited") {
		t.Errorf("expected human-readable cause in _error, got %v", res.Document["_error"])
	}
	// Still a valid structured document from the mock responder.
	if res.Document["text"] == nil && res.Document["a2ui"] == nil {
		t.Errorf("degraded response must stay renderable: %v", res.Document)
	}
}

func TestGenerate_MalformedModelOutput_PlainTextDocument(t *testing.T) {
	t.Parallel()

	p := &stubProvider{id: "openai", available: true, reply: "I refuse to emit JSON"}
	svc := newTestService(p, nil)

	res := svc.Generate(context.Background(), Input{Message: "hello", Provider: "openai", Model: "gpt-4o"})

	if res.Degraded {
		t.Error("malformed output is not a vendor failure")
	}
	if res.Document["text"] != "I refuse to emit JSON" {
		t.Errorf("expected plain-text fallback, got %v", res.Document)
	}
	if _, hasErr := res.Document["_error"]; hasErr {
		t.Errorf("malformed output must not surface an error: %v", res.Document)
	}
}

func TestGenerate_SearchFlow(t *testing.T) {
	t.Parallel()

	query := "What's the weather in Paris today?"

	t.Run("not configured", func(t *testing.T) {
		p := &stubProvider{id: "openai", available: true, reply: `{"text":"ok"}`}
		svc := newTestService(p, nil)

		res := svc.Generate(context.Background(), Input{Message: query, Provider: "openai", Model: "gpt-4o", Search: true})

		if res.Search == nil || res.Search.Searched || res.Search.Reason != "not_configured" {
			t.Fatalf("expected not_configured metadata, got %+v", res.Search)
		}
		if got := lastMessage(p.gotReq); got != query {
			t.Errorf("message must stay unaugmented, got %q", got)
		}
	})

	t.Run("backend failure absorbed", func(t *testing.T) {
		p := &stubProvider{id: "openai", available: true, reply: `{"text":"ok"}`}
		svc := newTestService(p, &stubSearch{available: true, err: errors.New("timeout")})

		res := svc.Generate(context.Background(), Input{Message: query, Provider: "openai", Model: "gpt-4o", Search: true})

		meta := res.Search
		if meta == nil || !meta.Searched || meta.Success == nil || *meta.Success {
			t.Fatalf("expected failed search metadata, got %+v", meta)
		}
		if meta.Error != "timeout" {
			t.Errorf("expected error kind recorded, got %q", meta.Error)
		}
		if got := lastMessage(p.gotReq); got != query {
			t.Errorf("generation must proceed unaugmented, got %q", got)
		}
		if res.Document["text"] != "ok" {
			t.Errorf("generation must still succeed: %v", res.Document)
		}
	})

	t.Run("empty results treated as not augmented", func(t *testing.T) {
		p := &stubProvider{id: "openai", available: true, reply: `{"text":"ok"}`}
		svc := newTestService(p, &stubSearch{available: true, results: nil})

		res := svc.Generate(context.Background(), Input{Message: query, Provider: "openai", Model: "gpt-4o", Search: true})

		meta := res.Search
		if meta == nil || !meta.Searched || meta.Success == nil || *meta.Success {
			t.Fatalf("expected unsuccessful metadata for empty results, got %+v", meta)
		}
		if got := lastMessage(p.gotReq); got != query {
			t.Errorf("message must stay unaugmented, got %q", got)
		}
	})

	t.Run("successful augmentation", func(t *testing.T) {
		p := &stubProvider{id: "openai", available: true, reply: `{"text":"ok"}`}
		svc := newTestService(p, &stubSearch{available: true, results: []search.Result{
			{Content: "18C and raining"},
		}})

		res := svc.Generate(context.Background(), Input{Message: query, Provider: "openai", Model: "gpt-4o", Search: true})

		meta := res.Search
		if meta == nil || !meta.Searched || meta.Success == nil || !*meta.Success {
			t.Fatalf("expected successful metadata, got %+v", meta)
		}
		if meta.ResultsCount == nil || *meta.ResultsCount != 1 {
			t.Errorf("expected results count 1, got %+v", meta.ResultsCount)
		}
		got := lastMessage(p.gotReq)
		if !strings.Contains(got, "18C and raining") || !strings.HasSuffix(got, query) {
			t.Errorf("expected augmented in-band message, got %q", got)
		}
		if res.Document["_search"] == nil {
			t.Errorf("metadata must ride on the document: %v", res.Document)
		}
	})

	t.Run("gate closed means no attempt", func(t *testing.T) {
		p := &stubProvider{id: "openai", available: true, reply: `{"text":"ok"}`}
		svc := newTestService(p, &stubSearch{available: true, results: []search.Result{{Content: "x"}}})

		res := svc.Generate(context.Background(), Input{Message: "What is 2+2?", Provider: "openai", Model: "gpt-4o", Search: true})

		if res.Search != nil {
			t.Errorf("gate closed: no metadata expected, got %+v", res.Search)
		}
	})

	t.Run("caller opt-out means no attempt", func(t *testing.T) {
		p := &stubProvider{id: "openai", available: true, reply: `{"text":"ok"}`}
		svc := newTestService(p, &stubSearch{available: true, results: []search.Result{{Content: "x"}}})

		res := svc.Generate(context.Background(), Input{Message: query, Provider: "openai", Model: "gpt-4o", Search: false})

		if res.Search != nil {
			t.Errorf("opt-out: no metadata expected, got %+v", res.Search)
		}
	})
}

func lastMessage(req llm.ChatRequest) string {
	if len(req.Messages) == 0 {
		return ""
	}
	return req.Messages[len(req.Messages)-1].Content
}
