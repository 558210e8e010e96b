package llm

import (
	"context"
	"encoding/json"
	"net/http"

	"prism-ai/backend/internal/model"
)

// chatMessage is the {role, content} wire shape shared by the
// OpenAI-compatible APIs (OpenAI itself and the aggregator).
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func wireMessages(turns []model.Turn) []chatMessage {
	msgs := make([]chatMessage, len(turns))
	for i, t := range turns {
		msgs[i] = chatMessage{Role: string(t.Role), Content: t.Content}
	}
	return msgs
}

type openAIAdapter struct {
	client  *http.Client
	baseURL string
}

// NewOpenAIAdapter creates the adapter for direct OpenAI calls.
// baseURL is "https://api.openai.com" in production and an httptest
// server in tests.
func NewOpenAIAdapter(baseURL string, client *http.Client) Adapter {
	return &openAIAdapter{client: client, baseURL: baseURL}
}

func (a *openAIAdapter) Send(ctx context.Context, turns []model.Turn, modelID, apiKey string) (string, error) {
	payload := chatCompletionRequest{
		Model:       bareModelName(modelID),
		Messages:    wireMessages(turns),
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
	}

	headers := map[string]string{"Authorization": "Bearer " + apiKey}
	data, err := doJSON(ctx, a.client, ProviderOpenAI, a.baseURL+"/v1/chat/completions", headers, payload)
	if err != nil {
		return "", err
	}
	return parseChatCompletion(ProviderOpenAI, data)
}

// parseChatCompletion extracts choices[0].message.content from an
// OpenAI-shaped response body.
func parseChatCompletion(p Provider, data []byte) (string, error) {
	var parsed chatCompletionResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", &ShapeError{Provider: p, Reason: "body is not valid JSON"}
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", &ShapeError{Provider: p, Reason: "missing choices[0].message.content"}
	}
	return parsed.Choices[0].Message.Content, nil
}
