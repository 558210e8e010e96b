package service

import (
	"context"
	"fmt"

	app_errors "prism-ai/backend/internal/errors"
	"prism-ai/backend/internal/llm"
	"prism-ai/backend/internal/repository"
)

// ModelListing is one catalog entry merged with the user's visibility
// preference. Models without a stored preference default to enabled.
type ModelListing struct {
	llm.Model
	Enabled bool `json:"enabled"`
}

// ModelService exposes the fixed model catalog and per-user visibility
// toggles.
type ModelService struct {
	repo repository.Repository
}

func NewModelService(repo repository.Repository) *ModelService {
	return &ModelService{repo: repo}
}

// List returns the catalog with the user's enabled/disabled flags applied.
func (s *ModelService) List(ctx context.Context, userID string) ([]ModelListing, error) {
	prefs, err := s.repo.ListModelPreferences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not load model preferences: %w", err)
	}

	disabled := make(map[string]bool, len(prefs))
	for _, p := range prefs {
		if !p.Enabled {
			disabled[p.ModelID] = true
		}
	}

	catalog := llm.Catalog()
	listings := make([]ModelListing, len(catalog))
	for i, m := range catalog {
		listings[i] = ModelListing{Model: m, Enabled: !disabled[m.ID]}
	}
	return listings, nil
}

// SetPreference toggles visibility of one catalog model for the user.
func (s *ModelService) SetPreference(ctx context.Context, userID, modelID string, enabled bool) error {
	if !llm.InCatalog(modelID) {
		return fmt.Errorf("%w: unknown model %q", app_errors.ErrValidation, modelID)
	}
	if err := s.repo.SetModelPreference(ctx, userID, modelID, enabled); err != nil {
		return fmt.Errorf("could not save model preference: %w", err)
	}
	return nil
}
