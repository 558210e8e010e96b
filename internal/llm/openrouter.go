package llm

import (
	"context"
	"net/http"

	"prism-ai/backend/internal/model"
)

type openRouterAdapter struct {
	client   *http.Client
	baseURL  string
	referer  string
	appTitle string
}

// NewOpenRouterAdapter creates the aggregator adapter. OpenRouter speaks
// the OpenAI chat-completions dialect but requires the full namespaced
// model id and asks callers to identify themselves via HTTP-Referer and
// X-Title headers.
func NewOpenRouterAdapter(baseURL, referer, appTitle string, client *http.Client) Adapter {
	return &openRouterAdapter{client: client, baseURL: baseURL, referer: referer, appTitle: appTitle}
}

func (a *openRouterAdapter) Send(ctx context.Context, turns []model.Turn, modelID, apiKey string) (string, error) {
	payload := chatCompletionRequest{
		Model:       modelID, // full namespaced id, never stripped
		Messages:    wireMessages(turns),
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
	}

	headers := map[string]string{
		"Authorization": "Bearer " + apiKey,
		"HTTP-Referer":  a.referer,
		"X-Title":       a.appTitle,
	}
	data, err := doJSON(ctx, a.client, ProviderOpenRouter, a.baseURL+"/v1/chat/completions", headers, payload)
	if err != nil {
		return "", err
	}
	return parseChatCompletion(ProviderOpenRouter, data)
}
