package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/matiasleandrokruk/a2ui/internal/chat"
	"github.com/matiasleandrokruk/a2ui/internal/infra/llm"
	"github.com/matiasleandrokruk/a2ui/internal/usage"
)

// Generator produces an A2UI document for one request. It never fails:
// every internal failure degrades to a renderable document.
type Generator interface {
	Generate(ctx context.Context, in chat.Input) chat.Result
}

// UsageLogger records routing facts about a handled request. Optional.
type UsageLogger interface {
	Log(ctx context.Context, rec usage.Record) error
}

// ChatHandler serves document generation.
type ChatHandler struct {
	generator Generator
	usage     UsageLogger // nil when no database is configured
}

func NewChatHandler(generator Generator, usageLog UsageLogger) *ChatHandler {
	return &ChatHandler{generator: generator, usage: usageLog}
}

type chatRequest struct {
	Message  string        `json:"message"`
	Provider string        `json:"provider"`
	Model    string        `json:"model"`
	History  []llm.Message `json:"history"`
	Search   bool          `json:"search"`
}

type chatRequestError struct {
	status  int
	message string
}

func (e chatRequestError) Error() string { return e.message }

// Generate handles POST /api/chat. The only client-visible failure is a
// missing message; everything downstream answers 200 with a document.
func (h *ChatHandler) Generate(w http.ResponseWriter, r *http.Request) {
	in, err := buildChatInput(r)
	if err != nil {
		writeChatError(w, err)
		return
	}

	start := time.Now()
	res := h.generator.Generate(r.Context(), in)
	h.logUsage(r.Context(), res, time.Since(start))

	writeJSON(w, http.StatusOK, res.Document)
}

func buildChatInput(r *http.Request) (chat.Input, error) {
	var req chatRequest
	if decodeErr := json.NewDecoder(r.Body).Decode(&req); decodeErr != nil {
		return chat.Input{}, chatRequestError{status: http.StatusBadRequest, message: "invalid request body"}
	}
	if req.Message == "" {
		return chat.Input{}, chatRequestError{status: http.StatusBadRequest, message: "message is required"}
	}

	return chat.Input{
		Message:  req.Message,
		Provider: req.Provider,
		Model:    req.Model,
		History:  req.History,
		Search:   req.Search,
	}, nil
}

// logUsage is best-effort: a broken usage log never fails a request.
func (h *ChatHandler) logUsage(ctx context.Context, res chat.Result, elapsed time.Duration) {
	if h.usage == nil {
		return
	}

	outcome := usage.OutcomeOK
	if res.Degraded {
		outcome = usage.OutcomeDegraded
	}

	rec := usage.Record{
		Route:      res.Route,
		Provider:   res.Provider,
		Model:      res.Model,
		Outcome:    outcome,
		DurationMs: elapsed.Milliseconds(),
	}
	if res.Search != nil {
		rec.Searched = res.Search.Searched
		rec.SearchOK = res.Search.Success
	}
	_ = h.usage.Log(ctx, rec)
}

func writeChatError(w http.ResponseWriter, err error) {
	var reqErr chatRequestError
	if errors.As(err, &reqErr) {
		writeError(w, reqErr.status, reqErr.message)
		return
	}
	writeError(w, http.StatusInternalServerError, "generation failed")
}
