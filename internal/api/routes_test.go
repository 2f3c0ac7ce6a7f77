// Wiring tests for NewRouter: every route registered, CORS answered,
// and the chat surface reachable end to end through stub services.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matiasleandrokruk/a2ui/internal/a2ui"
	"github.com/matiasleandrokruk/a2ui/internal/chat"
	"github.com/matiasleandrokruk/a2ui/internal/infra/llm"
)

type stubRegistry struct {
	descriptors []llm.Descriptor
}

func (s stubRegistry) ListAvailable() []llm.Descriptor { return s.descriptors }

type stubGenerator struct {
	result chat.Result
}

func (s stubGenerator) Generate(_ context.Context, _ chat.Input) chat.Result {
	return s.result
}

func newTestRouter() http.Handler {
	return NewRouter(
		stubRegistry{descriptors: []llm.Descriptor{{ID: "openai", Name: "OpenAI"}}},
		stubGenerator{result: chat.Result{Document: a2ui.TextDocument("hi"), Route: chat.RouteMock}},
		nil,
	)
}

func TestNewRouter_HealthEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 from /health, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("expected body to contain 'ok', got %q", w.Body.String())
	}
}

func TestNewRouter_WelcomeEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /api, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "/api/chat") {
		t.Errorf("expected endpoint listing, got %q", w.Body.String())
	}
}

func TestNewRouter_ProvidersEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/providers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /api/providers, got %d", w.Code)
	}
	var body struct {
		Providers []llm.Descriptor `json:"providers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(body.Providers) != 1 || body.Providers[0].ID != "openai" {
		t.Errorf("unexpected providers: %+v", body.Providers)
	}
}

func TestNewRouter_ChatEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hello"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /api/chat, got %d: %s", w.Code, w.Body.String())
	}
	var doc map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if doc["text"] != "hi" {
		t.Errorf("unexpected document: %v", doc)
	}
}

func TestNewRouter_ChatMissingMessage(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "message is required") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard origin, got %q", got)
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
