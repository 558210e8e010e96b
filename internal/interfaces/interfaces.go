package interfaces

import (
	"context"

	"prism-ai/backend/internal/model"
	"prism-ai/backend/internal/service"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, allows for
// decoupling (e.g., API layer from Service layer) and easier testing via mocking.

// ChatService defines the contract for conversation business logic.
type ChatService interface {
	SendMessage(ctx context.Context, userID string, req *service.SendMessageRequest) (*service.SendMessageResult, error)
	ListContexts(ctx context.Context, userID string) ([]*model.Context, error)
	GetFullContext(ctx context.Context, userID, contextID string) (*model.FullContext, error)
	UpdateContextTitle(ctx context.Context, userID, contextID, newTitle string) error
	DeleteContext(ctx context.Context, userID, contextID string) error
}

// ProfileService defines the contract for profile and credential management.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*model.Profile, error)
	Save(ctx context.Context, profile *model.Profile) error
	SetAggregatorKey(ctx context.Context, userID, secret string) error
	DeleteAggregatorKey(ctx context.Context, userID string) error
}

// ModelService defines the contract for the model catalog and visibility
// preferences.
type ModelService interface {
	List(ctx context.Context, userID string) ([]service.ModelListing, error)
	SetPreference(ctx context.Context, userID, modelID string, enabled bool) error
}
