package repository

import (
	"context"

	"prism-ai/backend/internal/llm"
	"prism-ai/backend/internal/model"
)

// Repository defines the interface for data storage operations.
// This interface makes it easy to switch database implementations.
type Repository interface {
	CreateContext(ctx context.Context, c *model.Context) error
	GetContext(ctx context.Context, contextID string) (*model.Context, error)
	GetContexts(ctx context.Context, userID string) ([]*model.Context, error)
	UpdateContextTitle(ctx context.Context, contextID, newTitle string) error
	UpdateContextModel(ctx context.Context, contextID, modelID string) error
	DeleteContext(ctx context.Context, contextID string) error

	AddMessage(ctx context.Context, message *model.Message) error
	GetMessages(ctx context.Context, contextID string) ([]model.Message, error)

	GetProfile(ctx context.Context, userID string) (*model.Profile, error)
	UpsertProfile(ctx context.Context, profile *model.Profile) error

	GetAPIKey(ctx context.Context, userID string, provider llm.Provider) (string, error)
	UpsertAPIKey(ctx context.Context, userID string, provider llm.Provider, secret string) error
	DeleteAPIKey(ctx context.Context, userID string, provider llm.Provider) error

	ListModelPreferences(ctx context.Context, userID string) ([]model.ModelPreference, error)
	SetModelPreference(ctx context.Context, userID, modelID string, enabled bool) error
}
