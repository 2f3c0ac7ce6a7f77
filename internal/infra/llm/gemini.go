package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

var geminiDefaultModels = []ModelOption{
	{ID: "gemini-2.0-flash", Name: "Gemini 2.0 Flash"},
	{ID: "gemini-1.5-pro", Name: "Gemini 1.5 Pro"},
	{ID: "gemini-1.5-flash", Name: "Gemini 1.5 Flash"},
}

// GeminiProvider implements Provider over the google.golang.org/genai SDK.
// The SDK client is created per call: genai.NewClient wants a context, and
// one short-lived client per request keeps the adapter stateless like the
// others.
type GeminiProvider struct {
	cred   Credential
	models []ModelOption
}

// NewGeminiProvider creates the adapter. models overrides the default
// catalog when non-empty.
func NewGeminiProvider(cred Credential, models ...ModelOption) *GeminiProvider {
	return &GeminiProvider{
		cred:   cred,
		models: modelsOr(models, geminiDefaultModels),
	}
}

func (p *GeminiProvider) ID() string            { return "gemini" }
func (p *GeminiProvider) Name() string          { return "Google" }
func (p *GeminiProvider) Models() []ModelOption { return p.models }
func (p *GeminiProvider) Available() bool       { return p.cred.Present }

// Generate performs a non-streaming content generation. Gemini takes the
// system instruction as config rather than a turn, and calls the assistant
// role "model".
func (p *GeminiProvider) Generate(ctx context.Context, req ChatRequest) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.cred.Value,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("gemini: create client: %w", err)
	}

	system, turns := splitSystem(req.Messages)

	contents := make([]*genai.Content, 0, len(turns))
	for _, m := range turns {
		var role genai.Role = genai.RoleUser
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := client.Models.GenerateContent(ctx, req.Model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini generate: empty response")
	}
	return text, nil
}
