package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	app_errors "prism-ai/backend/internal/errors"
	"prism-ai/backend/internal/llm"
	"prism-ai/backend/internal/repository"
)

// CredentialService resolves the full credential set for a user: the three
// direct provider keys from the profile row plus the aggregator key from
// the keyed credential table. It is read-only and safe to call
// concurrently; resolved sets are never cached beyond the request.
type CredentialService struct {
	repo repository.Repository
}

func NewCredentialService(repo repository.Repository) *CredentialService {
	return &CredentialService{repo: repo}
}

// Resolve collects whatever credentials exist for the user. Missing
// profile or aggregator rows are not errors and simply yield a partial
// set; whitespace-only secrets normalize to absent. A store read failure
// propagates as a retryable resolution failure.
func (s *CredentialService) Resolve(ctx context.Context, userID string) (llm.CredentialSet, error) {
	var set llm.CredentialSet

	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return set, fmt.Errorf("%w: could not read profile credentials: %v", app_errors.ErrUnavailable, err)
	}
	if profile != nil {
		set.OpenAI = strings.TrimSpace(profile.OpenAIKey)
		set.Anthropic = strings.TrimSpace(profile.AnthropicKey)
		set.Google = strings.TrimSpace(profile.GoogleKey)
	}

	aggregator, err := s.repo.GetAPIKey(ctx, userID, llm.ProviderOpenRouter)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return llm.CredentialSet{}, fmt.Errorf("%w: could not read aggregator credential: %v", app_errors.ErrUnavailable, err)
	}
	set.OpenRouter = strings.TrimSpace(aggregator)

	return set, nil
}
