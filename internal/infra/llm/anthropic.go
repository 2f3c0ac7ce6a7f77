package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// AnthropicProvider calls the Anthropic Messages API with stdlib net/http.
// Endpoint used: POST /v1/messages (non-streaming).
const (
	anthropicBaseURL    = "https://api.anthropic.com"
	anthropicAPIVersion = "2023-06-01"

	mimeJSON          = "application/json"
	headerContentType = "Content-Type"
)

var anthropicDefaultModels = []ModelOption{
	{ID: "claude-sonnet-4-20250514", Name: "Claude Sonnet 4"},
	{ID: "claude-3-5-sonnet-20241022", Name: "Claude 3.5 Sonnet"},
	{ID: "claude-3-5-haiku-20241022", Name: "Claude 3.5 Haiku (Fast)"},
	{ID: "claude-3-opus-20240229", Name: "Claude 3 Opus"},
}

// AnthropicProvider implements Provider for Anthropic Claude models.
type AnthropicProvider struct {
	cred       Credential
	baseURL    string
	models     []ModelOption
	httpClient *http.Client
}

// NewAnthropicProvider creates the adapter with a bounded HTTP timeout.
func NewAnthropicProvider(cred Credential, models ...ModelOption) *AnthropicProvider {
	return &AnthropicProvider{
		cred:       cred,
		baseURL:    anthropicBaseURL,
		models:     modelsOr(models, anthropicDefaultModels),
		httpClient: &http.Client{Timeout: vendorTimeout},
	}
}

func (p *AnthropicProvider) ID() string            { return "anthropic" }
func (p *AnthropicProvider) Name() string          { return "Anthropic" }
func (p *AnthropicProvider) Models() []ModelOption { return p.models }
func (p *AnthropicProvider) Available() bool       { return p.cred.Present }

// Request/response mirror types for the Messages API wire format.

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature float32            `json:"temperature,omitempty"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate performs a non-streaming message completion. The Messages API
// takes the system instruction out-of-band, so system turns are lifted out
// of the sequence and joined into the request's system field.
func (p *AnthropicProvider) Generate(ctx context.Context, req ChatRequest) (string, error) {
	system, turns := splitSystem(req.Messages)

	msgs := make([]anthropicMessage, len(turns))
	for i, m := range turns {
		msgs[i] = anthropicMessage{Role: m.Role, Content: m.Content}
	}

	body, err := json.Marshal(anthropicRequest{
		Model:       req.Model,
		MaxTokens:   req.MaxTokens,
		System:      system,
		Messages:    msgs,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", err
	}

	respBody, err := p.doPost(ctx, "/v1/messages", body)
	if err != nil {
		return "", err
	}
	defer respBody.Close() //nolint:errcheck

	var decoded anthropicResponse
	if decodeErr := json.NewDecoder(respBody).Decode(&decoded); decodeErr != nil {
		return "", fmt.Errorf("anthropic: decode response: %w", decodeErr)
	}
	if decoded.Error != nil {
		return "", fmt.Errorf("anthropic: %s: %s", decoded.Error.Type, decoded.Error.Message)
	}
	if len(decoded.Content) == 0 {
		return "", fmt.Errorf("anthropic: response has no content blocks")
	}
	return strings.TrimSpace(decoded.Content[0].Text), nil
}

// splitSystem lifts system messages out of the sequence, preserving the
// order of the remaining turns.
func splitSystem(messages []Message) (string, []Message) {
	var system []string
	turns := make([]Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == RoleSystem {
			system = append(system, m.Content)
			continue
		}
		turns = append(turns, m)
	}
	return strings.Join(system, "\n\n"), turns
}

// doPost sends a POST to baseURL+path with the vendor auth headers and
// returns the response body. Caller closes the returned ReadCloser.
func (p *AnthropicProvider) doPost(ctx context.Context, path string, body []byte) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("anthropic post %s: build request: %w", path, err)
	}
	req.Header.Set(headerContentType, mimeJSON)
	req.Header.Set("x-api-key", p.cred.Value)
	req.Header.Set("anthropic-version", anthropicAPIVersion)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("anthropic post %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close() //nolint:errcheck
		return nil, fmt.Errorf("anthropic post %s: status %d: %s", path, resp.StatusCode, readErrorBody(resp.Body))
	}
	return resp.Body, nil
}

// readErrorBody extracts a short human-readable cause from an error
// response, falling back to the raw (truncated) body.
func readErrorBody(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return "no error body"
	}
	var decoded anthropicResponse
	if json.Unmarshal(raw, &decoded) == nil && decoded.Error != nil {
		return decoded.Error.Message
	}
	return string(raw)
}
