package llm

import (
	"context"
	"encoding/json"
	"net/http"

	"prism-ai/backend/internal/model"
)

type anthropicRequest struct {
	Model     string        `json:"model"`
	System    string        `json:"system,omitempty"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

type anthropicAdapter struct {
	client  *http.Client
	baseURL string
}

// NewAnthropicAdapter creates the adapter for direct Anthropic calls.
func NewAnthropicAdapter(baseURL string, client *http.Client) Adapter {
	return &anthropicAdapter{client: client, baseURL: baseURL}
}

func (a *anthropicAdapter) Send(ctx context.Context, turns []model.Turn, modelID, apiKey string) (string, error) {
	system, msgs := splitSystemTurn(turns)
	payload := anthropicRequest{
		Model:     bareModelName(modelID),
		System:    system,
		Messages:  msgs,
		MaxTokens: anthropicMaxTokens,
	}

	headers := map[string]string{
		"x-api-key":         apiKey,
		"anthropic-version": anthropicVersion,
	}
	data, err := doJSON(ctx, a.client, ProviderAnthropic, a.baseURL+"/v1/messages", headers, payload)
	if err != nil {
		return "", err
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", &ShapeError{Provider: ProviderAnthropic, Reason: "body is not valid JSON"}
	}
	if len(parsed.Content) == 0 || parsed.Content[0].Text == "" {
		return "", &ShapeError{Provider: ProviderAnthropic, Reason: "missing content[0].text"}
	}
	return parsed.Content[0].Text, nil
}

// splitSystemTurn hoists the first system turn out of the conversation.
// Anthropic takes the system prompt as a top-level field and rejects
// system roles inside messages; additional system turns are dropped
// (first one wins).
func splitSystemTurn(turns []model.Turn) (string, []chatMessage) {
	var system string
	msgs := make([]chatMessage, 0, len(turns))
	for _, t := range turns {
		if t.Role == model.RoleSystem {
			if system == "" {
				system = t.Content
			}
			continue
		}
		msgs = append(msgs, chatMessage{Role: string(t.Role), Content: t.Content})
	}
	return system, msgs
}
