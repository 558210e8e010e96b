package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"prism-ai/backend/internal/model"
)

type googlePart struct {
	Text string `json:"text"`
}

type googleContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []googlePart `json:"parts"`
}

type googleGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type googleRequest struct {
	Contents          []googleContent        `json:"contents"`
	SystemInstruction *googleContent         `json:"systemInstruction,omitempty"`
	GenerationConfig  googleGenerationConfig `json:"generationConfig"`
}

type googleResponse struct {
	Candidates []struct {
		Content struct {
			Parts []googlePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type googleAdapter struct {
	client  *http.Client
	baseURL string
}

// NewGoogleAdapter creates the adapter for direct Gemini calls.
func NewGoogleAdapter(baseURL string, client *http.Client) Adapter {
	return &googleAdapter{client: client, baseURL: baseURL}
}

func (a *googleAdapter) Send(ctx context.Context, turns []model.Turn, modelID, apiKey string) (string, error) {
	payload := googleRequest{
		GenerationConfig: googleGenerationConfig{
			Temperature:     defaultTemperature,
			MaxOutputTokens: defaultMaxTokens,
		},
	}

	// Gemini has no system role: system turns leave the contents array and
	// become the systemInstruction (first one wins), assistant maps to
	// "model", everything else to "user".
	for _, t := range turns {
		if t.Role == model.RoleSystem {
			if payload.SystemInstruction == nil {
				payload.SystemInstruction = &googleContent{Parts: []googlePart{{Text: t.Content}}}
			}
			continue
		}
		role := "user"
		if t.Role == model.RoleAssistant {
			role = "model"
		}
		payload.Contents = append(payload.Contents, googleContent{
			Role:  role,
			Parts: []googlePart{{Text: t.Content}},
		})
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		a.baseURL, url.PathEscape(bareModelName(modelID)), url.QueryEscape(apiKey))

	data, err := doJSON(ctx, a.client, ProviderGoogle, endpoint, nil, payload)
	if err != nil {
		return "", err
	}

	var parsed googleResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", &ShapeError{Provider: ProviderGoogle, Reason: "body is not valid JSON"}
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 || parsed.Candidates[0].Content.Parts[0].Text == "" {
		return "", &ShapeError{Provider: ProviderGoogle, Reason: "missing candidates[0].content.parts[0].text"}
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
