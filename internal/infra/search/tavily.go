package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/matiasleandrokruk/a2ui/internal/infra/config"
)

// TavilyClient calls the Tavily search API with stdlib net/http.
// Endpoint used: POST /search.
const (
	tavilyBaseURL = "https://api.tavily.com"

	// searchTimeout is much tighter than the LLM timeout: a retrieval
	// call that cannot answer quickly is worth less than the latency it
	// adds to generation.
	searchTimeout = 10 * time.Second

	maxResults = 5
)

// TavilyClient implements Backend.
type TavilyClient struct {
	cred       config.Credential
	baseURL    string
	httpClient *http.Client
}

// NewTavilyClient creates the client with a bounded timeout.
func NewTavilyClient(cred config.Credential) *TavilyClient {
	return &TavilyClient{
		cred:       cred,
		baseURL:    tavilyBaseURL,
		httpClient: &http.Client{Timeout: searchTimeout},
	}
}

// Available reports whether TAVILY_API_KEY is configured (presence, not
// non-emptiness).
func (c *TavilyClient) Available() bool { return c.cred.Present }

// Request/response mirror types for the Tavily wire format.

type tavilyRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type tavilyResponse struct {
	Results []Result `json:"results"`
	Error   string   `json:"error"`
}

// Search runs one query via POST /search. Callers are expected to check
// Available first; a call without a credential fails with ErrNotConfigured.
func (c *TavilyClient) Search(ctx context.Context, query string) ([]Result, error) {
	if !c.cred.Present {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(tavilyRequest{
		APIKey:     c.cred.Value,
		Query:      query,
		MaxResults: maxResults,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("tavily search: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavily search: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("tavily search: status %d", resp.StatusCode)
	}

	var decoded tavilyResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&decoded); decodeErr != nil {
		return nil, fmt.Errorf("tavily search: decode response: %w", decodeErr)
	}
	if decoded.Error != "" {
		return nil, fmt.Errorf("tavily search: %s", decoded.Error)
	}
	return decoded.Results, nil
}

// FormatForContext renders hits as a bullet block for prompt injection.
// Hits with no usable content are skipped; no usable hits at all yields "".
func (c *TavilyClient) FormatForContext(results []Result) string {
	var b strings.Builder
	for _, r := range results {
		content := strings.TrimSpace(r.Content)
		if content == "" {
			continue
		}
		b.WriteString("- ")
		if r.Title != "" {
			b.WriteString(r.Title)
			b.WriteString(": ")
		}
		b.WriteString(content)
		if r.URL != "" {
			b.WriteString(" (")
			b.WriteString(r.URL)
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
