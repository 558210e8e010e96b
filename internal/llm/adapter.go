package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"prism-ai/backend/internal/model"
)

// Fixed generation parameters. These are deliberately not user-tunable:
// every dispatch uses the same temperature and output cap regardless of
// client or model.
const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 1000
	// Anthropic responses are capped higher; its models count the cap
	// against much longer completions.
	anthropicMaxTokens = 4000

	anthropicVersion = "2023-06-01"
)

// Adapter sends one immutable conversation snapshot to a single upstream
// provider and returns the assistant's completion text.
//
// Implementations must honor context cancellation, must not retry, and
// must return *RequestError / *ShapeError for upstream failures so the
// orchestrator can decide on fallback.
type Adapter interface {
	Send(ctx context.Context, turns []model.Turn, modelID, apiKey string) (string, error)
}

// Registry maps each provider of the closed enumeration to its adapter.
type Registry map[Provider]Adapter

// For looks up the adapter for a provider. A miss means the registry was
// wired incompletely; with the fixed enumeration this should be
// unreachable in production.
func (r Registry) For(p Provider) (Adapter, error) {
	a, ok := r[p]
	if !ok {
		return nil, fmt.Errorf("unsupported provider: no adapter registered for %q", p)
	}
	return a, nil
}

// doJSON posts a JSON payload and returns the raw response body. Non-2xx
// statuses come back as *RequestError carrying the provider name, the
// status line and a trimmed copy of the error body.
func doJSON(ctx context.Context, client *http.Client, p Provider, url string, headers map[string]string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: could not marshal request: %w", p, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: could not create request: %w", p, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request failed: %w", p, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: could not read response body: %w", p, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &RequestError{
			Provider:   p,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(data)),
		}
	}
	return data, nil
}
