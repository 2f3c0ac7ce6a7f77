package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// vendorTimeout bounds every outbound completion call. Generation is slow
// but not unbounded; callers can impose tighter deadlines via ctx.
const vendorTimeout = 90 * time.Second

var openAIDefaultModels = []ModelOption{
	{ID: "gpt-4o", Name: "GPT-4o"},
	{ID: "gpt-4-turbo", Name: "GPT-4 Turbo"},
	{ID: "gpt-4", Name: "GPT-4"},
	{ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo"},
}

// OpenAIProvider implements Provider over the OpenAI chat completions API.
// A non-empty baseURL points the client at an OpenAI-compatible endpoint
// (self-hosted gateways, or httptest servers in tests).
type OpenAIProvider struct {
	cred   Credential
	models []ModelOption
	client *openai.Client
}

// NewOpenAIProvider creates the adapter. models overrides the default
// catalog when non-empty.
func NewOpenAIProvider(cred Credential, baseURL string, models ...ModelOption) *OpenAIProvider {
	cfg := openai.DefaultConfig(cred.Value)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: vendorTimeout}
	return &OpenAIProvider{
		cred:   cred,
		models: modelsOr(models, openAIDefaultModels),
		client: openai.NewClientWithConfig(cfg),
	}
}

func (p *OpenAIProvider) ID() string            { return "openai" }
func (p *OpenAIProvider) Name() string          { return "OpenAI" }
func (p *OpenAIProvider) Models() []ModelOption { return p.models }
func (p *OpenAIProvider) Available() bool       { return p.cred.Present }

// Generate performs a non-streaming chat completion.
func (p *OpenAIProvider) Generate(ctx context.Context, req ChatRequest) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai chat: response has no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
