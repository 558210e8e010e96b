package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prism-ai/backend/internal/model"
)

// TestGoogleAdapter verifies the generateContent wire format: the API key
// rides in the query string, the system turn becomes systemInstruction,
// and assistant turns are remapped to the "model" role.
func TestGoogleAdapter(t *testing.T) {
	t.Run("maps roles and hoists the system instruction", func(t *testing.T) {
		var capturedPath, capturedKey string
		var capturedBody googleRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedPath = r.URL.Path
			capturedKey = r.URL.Query().Get("key")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&capturedBody))

			w.Header().Set("Content-Type", "application/json")
			_, err := w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"42"}]}}]}`))
			assert.NoError(t, err)
		}))
		defer server.Close()

		adapter := NewGoogleAdapter(server.URL, server.Client())

		turns := []model.Turn{
			{Role: model.RoleSystem, Content: "Be brief."},
			{Role: model.RoleUser, Content: "Meaning of life?"},
			{Role: model.RoleAssistant, Content: "42"},
			{Role: model.RoleUser, Content: "Elaborate."},
		}
		content, err := adapter.Send(context.Background(), turns, "google/gemini-2.5-pro", "AIza-secret")

		require.NoError(t, err)
		assert.Equal(t, "42", content)
		assert.Equal(t, "/v1beta/models/gemini-2.5-pro:generateContent", capturedPath)
		assert.Equal(t, "AIza-secret", capturedKey)

		require.NotNil(t, capturedBody.SystemInstruction)
		require.Len(t, capturedBody.SystemInstruction.Parts, 1)
		assert.Equal(t, "Be brief.", capturedBody.SystemInstruction.Parts[0].Text)

		// The system turn leaves the contents array; assistant becomes
		// "model", user stays "user".
		require.Len(t, capturedBody.Contents, 3)
		assert.Equal(t, "user", capturedBody.Contents[0].Role)
		assert.Equal(t, "model", capturedBody.Contents[1].Role)
		assert.Equal(t, "user", capturedBody.Contents[2].Role)

		assert.Equal(t, 0.7, capturedBody.GenerationConfig.Temperature)
		assert.Equal(t, 1000, capturedBody.GenerationConfig.MaxOutputTokens)
	})

	t.Run("no system turn means no systemInstruction field", func(t *testing.T) {
		var rawBody map[string]json.RawMessage

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&rawBody))
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
		}))
		defer server.Close()

		adapter := NewGoogleAdapter(server.URL, server.Client())

		_, err := adapter.Send(context.Background(), []model.Turn{{Role: model.RoleUser, Content: "Hi"}}, "gemini-1.5-flash", "AIza")
		require.NoError(t, err)
		assert.NotContains(t, rawBody, "systemInstruction")
	})

	t.Run("upstream error surfaces as RequestError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"status":"INVALID_ARGUMENT"}}`))
		}))
		defer server.Close()

		adapter := NewGoogleAdapter(server.URL, server.Client())

		_, err := adapter.Send(context.Background(), []model.Turn{{Role: model.RoleUser, Content: "Hi"}}, "gemini-1.5-flash", "AIza")

		var reqErr *RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, ProviderGoogle, reqErr.Provider)
		assert.Equal(t, http.StatusBadRequest, reqErr.StatusCode)
	})

	t.Run("candidates without parts is a ShapeError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[]}}]}`))
		}))
		defer server.Close()

		adapter := NewGoogleAdapter(server.URL, server.Client())

		_, err := adapter.Send(context.Background(), []model.Turn{{Role: model.RoleUser, Content: "Hi"}}, "gemini-1.5-flash", "AIza")

		var shapeErr *ShapeError
		require.ErrorAs(t, err, &shapeErr)
		assert.Equal(t, ProviderGoogle, shapeErr.Provider)
	})
}
