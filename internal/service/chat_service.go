package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	app_errors "prism-ai/backend/internal/errors"
	"prism-ai/backend/internal/llm"
	"prism-ai/backend/internal/model"
	"prism-ai/backend/internal/repository"
)

// Dispatcher is the orchestrator contract the chat flow depends on.
type Dispatcher interface {
	Dispatch(ctx context.Context, userID, contextID string, turns []model.Turn, modelID string) (*DispatchResult, error)
}

type ChatService struct {
	repo       repository.Repository
	dispatcher Dispatcher
}

func NewChatService(repo repository.Repository, dispatcher Dispatcher) *ChatService {
	return &ChatService{repo: repo, dispatcher: dispatcher}
}

// SendMessageRequest is the structure for a new message from the client.
// An empty ContextID starts a new conversation thread.
type SendMessageRequest struct {
	ContextID string `json:"context_id"`
	Content   string `json:"content" validate:"required,min=1"`
	Model     string `json:"model"`
}

// SendMessageResult carries the assistant reply plus the context it landed
// in and the provider that served it.
type SendMessageResult struct {
	ContextID string       `json:"context_id"`
	Content   string       `json:"content"`
	Provider  llm.Provider `json:"provider"`
}

// SendMessage persists the user's turn, rebuilds the conversation snapshot
// from stored history (with a profile-derived system prompt up front) and
// hands it to the dispatcher. The turn list is chronological and treated
// as immutable from here on.
func (s *ChatService) SendMessage(ctx context.Context, userID string, req *SendMessageRequest) (*SendMessageResult, error) {
	contextID := req.ContextID
	modelID := req.Model

	if contextID == "" {
		if modelID == "" {
			return nil, fmt.Errorf("%w: a model must be selected to start a conversation", app_errors.ErrValidation)
		}
		contextID = uuid.NewString()
		now := time.Now().UTC()
		c := &model.Context{
			ID:            contextID,
			UserID:        userID,
			Title:         truncate(req.Content, 50),
			SelectedModel: modelID,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.repo.CreateContext(ctx, c); err != nil {
			return nil, fmt.Errorf("could not create context: %w", err)
		}
	} else {
		c, err := s.getOwnedContext(ctx, userID, contextID)
		if err != nil {
			return nil, err
		}
		if modelID == "" {
			modelID = c.SelectedModel
		} else if modelID != c.SelectedModel {
			if err := s.repo.UpdateContextModel(ctx, contextID, modelID); err != nil {
				return nil, fmt.Errorf("could not update selected model: %w", err)
			}
		}
		if modelID == "" {
			return nil, fmt.Errorf("%w: context has no selected model", app_errors.ErrValidation)
		}
	}

	userMessage := &model.Message{
		ID:        uuid.NewString(),
		ContextID: contextID,
		Role:      model.RoleUser,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.AddMessage(ctx, userMessage); err != nil {
		return nil, fmt.Errorf("could not persist user message: %w", err)
	}

	turns, err := s.buildTurns(ctx, userID, contextID)
	if err != nil {
		return nil, err
	}

	result, err := s.dispatcher.Dispatch(ctx, userID, contextID, turns, modelID)
	if err != nil {
		return nil, err
	}

	return &SendMessageResult{ContextID: contextID, Content: result.Content, Provider: result.Provider}, nil
}

// buildTurns assembles the ordered snapshot for a dispatch: an optional
// personalization system turn followed by the stored history.
func (s *ChatService) buildTurns(ctx context.Context, userID, contextID string) ([]model.Turn, error) {
	history, err := s.repo.GetMessages(ctx, contextID)
	if err != nil {
		return nil, fmt.Errorf("could not load message history: %w", err)
	}

	var turns []model.Turn
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("could not load profile: %w", err)
	}
	if prompt := systemPromptFor(profile); prompt != "" {
		turns = append(turns, model.Turn{Role: model.RoleSystem, Content: prompt})
	}
	for _, msg := range history {
		turns = append(turns, model.Turn{Role: msg.Role, Content: msg.Content})
	}
	return turns, nil
}

// ListContexts retrieves all conversation threads for a user.
func (s *ChatService) ListContexts(ctx context.Context, userID string) ([]*model.Context, error) {
	return s.repo.GetContexts(ctx, userID)
}

// GetFullContext retrieves a context's metadata and all its messages.
func (s *ChatService) GetFullContext(ctx context.Context, userID, contextID string) (*model.FullContext, error) {
	c, err := s.getOwnedContext(ctx, userID, contextID)
	if err != nil {
		return nil, err
	}
	messages, err := s.repo.GetMessages(ctx, contextID)
	if err != nil {
		return nil, fmt.Errorf("could not get messages: %w", err)
	}
	return &model.FullContext{Context: *c, Messages: messages}, nil
}

// UpdateContextTitle handles manually renaming a conversation.
func (s *ChatService) UpdateContextTitle(ctx context.Context, userID, contextID, newTitle string) error {
	if newTitle == "" {
		return fmt.Errorf("%w: title cannot be empty", app_errors.ErrValidation)
	}
	if _, err := s.getOwnedContext(ctx, userID, contextID); err != nil {
		return err
	}
	if err := s.repo.UpdateContextTitle(ctx, contextID, newTitle); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: context not found", app_errors.ErrNotFound)
		}
		return err
	}
	return nil
}

// DeleteContext deletes a conversation and, via cascade, its messages.
func (s *ChatService) DeleteContext(ctx context.Context, userID, contextID string) error {
	if _, err := s.getOwnedContext(ctx, userID, contextID); err != nil {
		return err
	}
	return s.repo.DeleteContext(ctx, contextID)
}

// getOwnedContext loads a context and hides other users' threads behind
// not-found.
func (s *ChatService) getOwnedContext(ctx context.Context, userID, contextID string) (*model.Context, error) {
	c, err := s.repo.GetContext(ctx, contextID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: context not found", app_errors.ErrNotFound)
		}
		return nil, err
	}
	if c.UserID != userID {
		return nil, fmt.Errorf("%w: context not found", app_errors.ErrNotFound)
	}
	return c, nil
}

// systemPromptFor builds the personalization system prompt from a profile,
// or "" when there is nothing to say.
func systemPromptFor(profile *model.Profile) string {
	if profile == nil {
		return ""
	}
	if profile.PreferredName == "" && profile.Occupation == "" && len(profile.ChatTraits) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("You are a helpful AI assistant. ")
	if profile.PreferredName != "" {
		fmt.Fprintf(&b, "The user prefers to be called %s. ", profile.PreferredName)
	}
	if profile.Occupation != "" {
		fmt.Fprintf(&b, "They work as a %s. ", profile.Occupation)
	}
	if len(profile.ChatTraits) > 0 {
		fmt.Fprintf(&b, "Their communication preferences: %s. ", strings.Join(profile.ChatTraits, ", "))
	}
	b.WriteString("Please tailor your responses accordingly.")
	return b.String()
}

// truncate shortens a string to a specified number of runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
