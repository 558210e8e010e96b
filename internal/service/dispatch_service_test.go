package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "prism-ai/backend/internal/errors"
	"prism-ai/backend/internal/llm"
	llmmocks "prism-ai/backend/internal/llm/mocks"
	"prism-ai/backend/internal/model"
	repomocks "prism-ai/backend/internal/repository/mocks"
	"prism-ai/backend/internal/service"
	"prism-ai/backend/internal/service/mocks"
)

// TestDispatchService exercises the orchestrator: route selection via the
// resolved credentials, the single call-time fallback to the aggregator,
// and the rule that nothing is persisted unless a reply actually arrived.
//
// TECHNIQUE: the repository, the credential resolver and both adapters are
// mockery mocks, so each scenario pins down exactly which upstream calls
// happen and in what shape.
func TestDispatchService(t *testing.T) {
	turns := []model.Turn{{Role: model.RoleUser, Content: "Hello"}}
	const contextID = "ctx-1"
	const userID = "user-1"

	newService := func(t *testing.T, creds llm.CredentialSet, registry llm.Registry) (*service.DispatchService, *repomocks.MockRepository) {
		repo := repomocks.NewMockRepository(t)
		resolver := mocks.NewMockCredentialResolver(t)
		resolver.On("Resolve", mock.Anything, userID).Return(creds, nil)
		return service.NewDispatchService(repo, resolver, registry, time.Second), repo
	}

	t.Run("direct key serves the call and persists the reply", func(t *testing.T) {
		openai := llmmocks.NewMockAdapter(t)
		openai.On("Send", mock.Anything, turns, "openai/gpt-4.1", "sk-direct").Return("Hi!", nil)

		svc, repo := newService(t, llm.CredentialSet{OpenAI: "sk-direct", OpenRouter: "sk-or"},
			llm.Registry{llm.ProviderOpenAI: openai})
		repo.On("AddMessage", mock.Anything, mock.MatchedBy(func(m *model.Message) bool {
			return m.ContextID == contextID && m.Role == model.RoleAssistant && m.Content == "Hi!"
		})).Return(nil)

		result, err := svc.Dispatch(context.Background(), userID, contextID, turns, "openai/gpt-4.1")

		require.NoError(t, err)
		assert.Equal(t, "Hi!", result.Content)
		assert.Equal(t, llm.ProviderOpenAI, result.Provider)
	})

	t.Run("failing direct call degrades once to the aggregator", func(t *testing.T) {
		anthropic := llmmocks.NewMockAdapter(t)
		anthropic.On("Send", mock.Anything, turns, "anthropic/claude-3-haiku", "sk-revoked").
			Return("", &llm.RequestError{Provider: llm.ProviderAnthropic, StatusCode: 401})
		openrouter := llmmocks.NewMockAdapter(t)
		openrouter.On("Send", mock.Anything, turns, "anthropic/claude-3-haiku", "sk-or").Return("Served anyway", nil)

		svc, repo := newService(t, llm.CredentialSet{Anthropic: "sk-revoked", OpenRouter: "sk-or"},
			llm.Registry{llm.ProviderAnthropic: anthropic, llm.ProviderOpenRouter: openrouter})
		repo.On("AddMessage", mock.Anything, mock.MatchedBy(func(m *model.Message) bool {
			return m.Role == model.RoleAssistant && m.Content == "Served anyway"
		})).Return(nil)

		result, err := svc.Dispatch(context.Background(), userID, contextID, turns, "anthropic/claude-3-haiku")

		require.NoError(t, err)
		// The caller learns the reply came through the fallback.
		assert.Equal(t, llm.ProviderOpenRouter, result.Provider)
		assert.Equal(t, "Served anyway", result.Content)
	})

	t.Run("direct failure without an aggregator key is terminal", func(t *testing.T) {
		openai := llmmocks.NewMockAdapter(t)
		openai.On("Send", mock.Anything, turns, "openai/gpt-4.1", "sk-direct").
			Return("", errors.New("upstream exploded"))

		svc, _ := newService(t, llm.CredentialSet{OpenAI: "sk-direct"},
			llm.Registry{llm.ProviderOpenAI: openai})

		_, err := svc.Dispatch(context.Background(), userID, contextID, turns, "openai/gpt-4.1")

		// No AddMessage expectation was set: persisting anything here would
		// fail the test through the mock's assertions.
		require.Error(t, err)
		assert.ErrorIs(t, err, app_errors.ErrNoCredential)
		assert.Contains(t, err.Error(), "upstream exploded")
	})

	t.Run("both attempts failing reports both errors", func(t *testing.T) {
		google := llmmocks.NewMockAdapter(t)
		google.On("Send", mock.Anything, turns, "google/gemini-2.0-flash", "sk-g").
			Return("", errors.New("quota exceeded"))
		openrouter := llmmocks.NewMockAdapter(t)
		openrouter.On("Send", mock.Anything, turns, "google/gemini-2.0-flash", "sk-or").
			Return("", errors.New("aggregator down"))

		svc, _ := newService(t, llm.CredentialSet{Google: "sk-g", OpenRouter: "sk-or"},
			llm.Registry{llm.ProviderGoogle: google, llm.ProviderOpenRouter: openrouter})

		_, err := svc.Dispatch(context.Background(), userID, contextID, turns, "google/gemini-2.0-flash")

		require.Error(t, err)
		assert.ErrorIs(t, err, app_errors.ErrUpstream)
		assert.Contains(t, err.Error(), "quota exceeded")
		assert.Contains(t, err.Error(), "aggregator down")
	})

	t.Run("aggregator route without a key never calls upstream", func(t *testing.T) {
		svc, _ := newService(t, llm.CredentialSet{}, llm.Registry{})

		_, err := svc.Dispatch(context.Background(), userID, contextID, turns, "deepseek/deepseek-chat")

		require.Error(t, err)
		assert.ErrorIs(t, err, app_errors.ErrNoCredential)
	})

	t.Run("aggregator route failure is an upstream error without fallback", func(t *testing.T) {
		openrouter := llmmocks.NewMockAdapter(t)
		openrouter.On("Send", mock.Anything, turns, "deepseek/deepseek-chat", "sk-or").
			Return("", errors.New("bad gateway"))

		svc, _ := newService(t, llm.CredentialSet{OpenRouter: "sk-or"},
			llm.Registry{llm.ProviderOpenRouter: openrouter})

		_, err := svc.Dispatch(context.Background(), userID, contextID, turns, "deepseek/deepseek-chat")

		require.Error(t, err)
		assert.ErrorIs(t, err, app_errors.ErrUpstream)
	})

	t.Run("cancellation skips fallback and persists nothing", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		openai := llmmocks.NewMockAdapter(t)
		openai.On("Send", mock.Anything, turns, "openai/gpt-4.1", "sk-direct").
			Run(func(mock.Arguments) { cancel() }).
			Return("", context.Canceled)

		// The registry has no aggregator adapter on purpose: a fallback
		// attempt after cancellation would blow up loudly.
		svc, _ := newService(t, llm.CredentialSet{OpenAI: "sk-direct", OpenRouter: "sk-or"},
			llm.Registry{llm.ProviderOpenAI: openai})

		_, err := svc.Dispatch(ctx, userID, contextID, turns, "openai/gpt-4.1")

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("cancellation after a successful call still persists nothing", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		openai := llmmocks.NewMockAdapter(t)
		openai.On("Send", mock.Anything, turns, "openai/gpt-4.1", "sk-direct").
			Run(func(mock.Arguments) { cancel() }).
			Return("Too late", nil)

		svc, _ := newService(t, llm.CredentialSet{OpenAI: "sk-direct"},
			llm.Registry{llm.ProviderOpenAI: openai})

		_, err := svc.Dispatch(ctx, userID, contextID, turns, "openai/gpt-4.1")

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("resolver failure aborts before any routing", func(t *testing.T) {
		repo := repomocks.NewMockRepository(t)
		resolver := mocks.NewMockCredentialResolver(t)
		resolver.On("Resolve", mock.Anything, userID).
			Return(llm.CredentialSet{}, app_errors.ErrUnavailable)

		svc := service.NewDispatchService(repo, resolver, llm.Registry{}, time.Second)

		_, err := svc.Dispatch(context.Background(), userID, contextID, turns, "openai/gpt-4.1")

		require.Error(t, err)
		assert.ErrorIs(t, err, app_errors.ErrUnavailable)
	})
}
