package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	app_errors "prism-ai/backend/internal/errors"
	"prism-ai/backend/internal/llm"
	"prism-ai/backend/internal/model"
	"prism-ai/backend/internal/repository"
)

// CredentialResolver yields all configured credentials for a user.
type CredentialResolver interface {
	Resolve(ctx context.Context, userID string) (llm.CredentialSet, error)
}

// DispatchResult is what the caller gets back from a successful dispatch:
// the assistant text and the provider that actually served it, so the UI
// can say "used your own OpenAI key" vs "used fallback".
type DispatchResult struct {
	Content  string       `json:"content"`
	Provider llm.Provider `json:"provider"`
}

// DispatchService composes credential resolution, route selection and the
// provider adapters. It implements the two-tier fallback: the route
// selector already prefers a direct key at route time, and a failing
// direct call degrades once to the aggregator at call time. A broken or
// revoked direct key must not block the user as long as an aggregator key
// exists.
type DispatchService struct {
	repo        repository.Repository
	credentials CredentialResolver
	adapters    llm.Registry
	callTimeout time.Duration
}

func NewDispatchService(repo repository.Repository, credentials CredentialResolver, adapters llm.Registry, callTimeout time.Duration) *DispatchService {
	return &DispatchService{repo: repo, credentials: credentials, adapters: adapters, callTimeout: callTimeout}
}

// Dispatch runs one request-response cycle for the given conversation
// snapshot. Primary and fallback calls are sequential, never raced. On
// success the assistant message is persisted against the context; nothing
// is persisted on terminal failure or cancellation.
func (s *DispatchService) Dispatch(ctx context.Context, userID, contextID string, turns []model.Turn, modelID string) (*DispatchResult, error) {
	creds, err := s.credentials.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	route := llm.Route(modelID, creds)

	var content string
	served := route.Provider

	if route.UseDirectAPI {
		content, err = s.callProvider(ctx, route.Provider, turns, modelID, route.APIKey)
		if err != nil {
			if ctx.Err() != nil {
				// The caller went away; a fallback attempt would be wasted.
				return nil, ctx.Err()
			}
			directErr := err
			slog.Warn("Direct provider call failed, attempting aggregator fallback.",
				"provider", route.Provider, "model", modelID, "error", directErr)

			if creds.OpenRouter == "" {
				return nil, fmt.Errorf("%w: direct %s call failed (%v) and no OpenRouter fallback key is configured; add an API key in settings",
					app_errors.ErrNoCredential, route.Provider, directErr)
			}
			content, err = s.callProvider(ctx, llm.ProviderOpenRouter, turns, modelID, creds.OpenRouter)
			if err != nil {
				return nil, fmt.Errorf("%w: direct %s call failed (%v); aggregator fallback also failed (%v)",
					app_errors.ErrUpstream, route.Provider, directErr, err)
			}
			served = llm.ProviderOpenRouter
		}
	} else {
		if route.APIKey == "" {
			return nil, fmt.Errorf("%w: no key for %s and no OpenRouter fallback key; add an API key in settings",
				app_errors.ErrNoCredential, llm.ProviderFor(modelID))
		}
		content, err = s.callProvider(ctx, llm.ProviderOpenRouter, turns, modelID, route.APIKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", app_errors.ErrUpstream, err)
		}
	}

	if ctx.Err() != nil {
		// Cancelled mid-flight: the response is orphaned, do not persist it.
		return nil, ctx.Err()
	}

	assistant := &model.Message{
		ID:        uuid.NewString(),
		ContextID: contextID,
		Role:      model.RoleAssistant,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.AddMessage(ctx, assistant); err != nil {
		return nil, fmt.Errorf("could not persist assistant message: %w", err)
	}

	slog.Info("Dispatch served.", "context_id", contextID, "model", modelID,
		"provider", served, "direct", served == route.Provider && route.UseDirectAPI)
	return &DispatchResult{Content: content, Provider: served}, nil
}

// callProvider invokes one adapter under the per-call timeout. Timeout is
// indistinguishable from any other adapter failure for fallback purposes.
func (s *DispatchService) callProvider(ctx context.Context, p llm.Provider, turns []model.Turn, modelID, apiKey string) (string, error) {
	adapter, err := s.adapters.For(p)
	if err != nil {
		return "", fmt.Errorf("%w: %v", app_errors.ErrInternal, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()
	return adapter.Send(callCtx, turns, modelID, apiKey)
}
