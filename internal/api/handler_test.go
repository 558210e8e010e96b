// The `_test` suffix creates a "black box" test package: the tests only see
// the api package's exported surface, same as any other caller.
package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"prism-ai/backend/internal/api"
	app_errors "prism-ai/backend/internal/errors"
	"prism-ai/backend/internal/interfaces/mocks"
	"prism-ai/backend/internal/llm"
	"prism-ai/backend/internal/model"
	"prism-ai/backend/internal/service"
)

// addChiURLParams simulates how the chi router injects URL parameters
// (e.g. `{contextID}`) into the request's context. Without it,
// chi.URLParam would return an empty string in handler unit tests.
func addChiURLParams(req *http.Request, params map[string]string) *http.Request {
	chiCtx := chi.NewRouteContext()
	for key, value := range params {
		chiCtx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}

func TestChatHandler_HandleSendMessage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := mocks.NewMockChatService(t)
		handler := api.NewChatHandler(mockSvc)

		mockSvc.On("SendMessage", mock.Anything, "alice", mock.MatchedBy(func(req *service.SendMessageRequest) bool {
			return req.Content == "Hello" && req.Model == "openai/gpt-4.1"
		})).Return(&service.SendMessageResult{
			ContextID: "ctx-1", Content: "Hi!", Provider: llm.ProviderOpenAI,
		}, nil).Once()

		body := `{"content":"Hello","model":"openai/gpt-4.1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/contexts/messages", strings.NewReader(body))
		req.Header.Set("X-User-ID", "alice")
		rr := httptest.NewRecorder()

		handler.HandleSendMessage(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var result service.SendMessageResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, "Hi!", result.Content)
		assert.Equal(t, llm.ProviderOpenAI, result.Provider)
	})

	t.Run("MissingHeaderFallsBackToDefaultUser", func(t *testing.T) {
		mockSvc := mocks.NewMockChatService(t)
		handler := api.NewChatHandler(mockSvc)

		mockSvc.On("SendMessage", mock.Anything, "default-user", mock.Anything).
			Return(&service.SendMessageResult{ContextID: "ctx-1", Content: "ok"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/contexts/messages",
			strings.NewReader(`{"content":"Hi","model":"openai/gpt-4.1"}`))
		rr := httptest.NewRecorder()

		handler.HandleSendMessage(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("EmptyContentIsBadRequest", func(t *testing.T) {
		// The service must never be called; the mock has no expectations.
		handler := api.NewChatHandler(mocks.NewMockChatService(t))

		req := httptest.NewRequest(http.MethodPost, "/v1/contexts/messages",
			strings.NewReader(`{"content":"","model":"openai/gpt-4.1"}`))
		rr := httptest.NewRecorder()

		handler.HandleSendMessage(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("MalformedJSONIsBadRequest", func(t *testing.T) {
		handler := api.NewChatHandler(mocks.NewMockChatService(t))

		req := httptest.NewRequest(http.MethodPost, "/v1/contexts/messages", strings.NewReader(`{not json`))
		rr := httptest.NewRecorder()

		handler.HandleSendMessage(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("MissingCredentialIsUnprocessable", func(t *testing.T) {
		mockSvc := mocks.NewMockChatService(t)
		handler := api.NewChatHandler(mockSvc)

		mockSvc.On("SendMessage", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, app_errors.ErrNoCredential).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/contexts/messages",
			strings.NewReader(`{"content":"Hi","model":"openai/gpt-4.1"}`))
		rr := httptest.NewRecorder()

		handler.HandleSendMessage(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("UpstreamFailureIsBadGateway", func(t *testing.T) {
		mockSvc := mocks.NewMockChatService(t)
		handler := api.NewChatHandler(mockSvc)

		mockSvc.On("SendMessage", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, app_errors.ErrUpstream).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/contexts/messages",
			strings.NewReader(`{"content":"Hi","model":"openai/gpt-4.1"}`))
		rr := httptest.NewRecorder()

		handler.HandleSendMessage(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})

	t.Run("CancellationMapsTo499", func(t *testing.T) {
		mockSvc := mocks.NewMockChatService(t)
		handler := api.NewChatHandler(mockSvc)

		mockSvc.On("SendMessage", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, context.Canceled).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/contexts/messages",
			strings.NewReader(`{"content":"Hi","model":"openai/gpt-4.1"}`))
		rr := httptest.NewRecorder()

		handler.HandleSendMessage(rr, req)

		assert.Equal(t, 499, rr.Code)
	})
}

func TestChatHandler_Contexts(t *testing.T) {
	t.Run("ListContexts", func(t *testing.T) {
		mockSvc := mocks.NewMockChatService(t)
		handler := api.NewChatHandler(mockSvc)

		mockSvc.On("ListContexts", mock.Anything, "default-user").Return([]*model.Context{
			{ID: "ctx-1", Title: "First"},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/contexts", nil)
		rr := httptest.NewRecorder()

		handler.HandleListContexts(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "First")
	})

	t.Run("GetContextNotFound", func(t *testing.T) {
		mockSvc := mocks.NewMockChatService(t)
		handler := api.NewChatHandler(mockSvc)

		mockSvc.On("GetFullContext", mock.Anything, "default-user", "nope").
			Return(nil, app_errors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/contexts/nope", nil)
		req = addChiURLParams(req, map[string]string{"contextID": "nope"})
		rr := httptest.NewRecorder()

		handler.HandleGetContext(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("UpdateTitle", func(t *testing.T) {
		mockSvc := mocks.NewMockChatService(t)
		handler := api.NewChatHandler(mockSvc)

		mockSvc.On("UpdateContextTitle", mock.Anything, "default-user", "ctx-1", "New name").
			Return(nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/v1/contexts/ctx-1/title",
			strings.NewReader(`{"title":"New name"}`))
		req = addChiURLParams(req, map[string]string{"contextID": "ctx-1"})
		rr := httptest.NewRecorder()

		handler.HandleUpdateContextTitle(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("UpdateTitleEmptyIsBadRequest", func(t *testing.T) {
		handler := api.NewChatHandler(mocks.NewMockChatService(t))

		req := httptest.NewRequest(http.MethodPut, "/v1/contexts/ctx-1/title",
			strings.NewReader(`{"title":""}`))
		req = addChiURLParams(req, map[string]string{"contextID": "ctx-1"})
		rr := httptest.NewRecorder()

		handler.HandleUpdateContextTitle(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("DeleteContext", func(t *testing.T) {
		mockSvc := mocks.NewMockChatService(t)
		handler := api.NewChatHandler(mockSvc)

		mockSvc.On("DeleteContext", mock.Anything, "default-user", "ctx-1").Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/v1/contexts/ctx-1", nil)
		req = addChiURLParams(req, map[string]string{"contextID": "ctx-1"})
		rr := httptest.NewRecorder()

		handler.HandleDeleteContext(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("UnexpectedErrorIsInternal", func(t *testing.T) {
		mockSvc := mocks.NewMockChatService(t)
		handler := api.NewChatHandler(mockSvc)

		mockSvc.On("ListContexts", mock.Anything, mock.Anything).
			Return(nil, errors.New("boom")).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/contexts", nil)
		rr := httptest.NewRecorder()

		handler.HandleListContexts(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		// Internal details must not leak to the client.
		assert.NotContains(t, rr.Body.String(), "boom")
	})
}
