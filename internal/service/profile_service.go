package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	app_errors "prism-ai/backend/internal/errors"
	"prism-ai/backend/internal/llm"
	"prism-ai/backend/internal/model"
	"prism-ai/backend/internal/repository"
)

// ProfileService manages the user profile (personalization fields plus the
// three direct provider keys) and the separate aggregator credential.
// Secrets are handled as opaque strings; at-rest protection is the storage
// layer's job.
type ProfileService struct {
	repo repository.Repository
}

func NewProfileService(repo repository.Repository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns the user's profile, or an empty one when none exists yet.
func (s *ProfileService) Get(ctx context.Context, userID string) (*model.Profile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return &model.Profile{UserID: userID, ChatTraits: []string{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not load profile: %w", err)
	}
	return profile, nil
}

// Save upserts the full profile. Key fields are trimmed so that
// whitespace-only input counts as deleting the key.
func (s *ProfileService) Save(ctx context.Context, profile *model.Profile) error {
	profile.PreferredName = strings.TrimSpace(profile.PreferredName)
	profile.Occupation = strings.TrimSpace(profile.Occupation)
	profile.OpenAIKey = strings.TrimSpace(profile.OpenAIKey)
	profile.AnthropicKey = strings.TrimSpace(profile.AnthropicKey)
	profile.GoogleKey = strings.TrimSpace(profile.GoogleKey)
	if profile.ChatTraits == nil {
		profile.ChatTraits = []string{}
	}

	if err := s.repo.UpsertProfile(ctx, profile); err != nil {
		return fmt.Errorf("could not save profile: %w", err)
	}
	return nil
}

// SetAggregatorKey stores or replaces the user's OpenRouter fallback key.
func (s *ProfileService) SetAggregatorKey(ctx context.Context, userID, secret string) error {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return fmt.Errorf("%w: key cannot be empty", app_errors.ErrValidation)
	}
	if err := s.repo.UpsertAPIKey(ctx, userID, llm.ProviderOpenRouter, secret); err != nil {
		return fmt.Errorf("could not save aggregator key: %w", err)
	}
	return nil
}

// DeleteAggregatorKey removes the user's OpenRouter fallback key.
func (s *ProfileService) DeleteAggregatorKey(ctx context.Context, userID string) error {
	err := s.repo.DeleteAPIKey(ctx, userID, llm.ProviderOpenRouter)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: no aggregator key configured", app_errors.ErrNotFound)
	}
	return err
}
