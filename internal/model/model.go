package model

import "time"

// Context stores metadata about a conversation thread.
type Context struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	SelectedModel string    `json:"selected_model"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Message stores a single message in a context. Messages are append-only;
// they are only removed by cascade when their parent context is deleted.
type Message struct {
	ID        string    `json:"id"`
	ContextID string    `json:"context_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// FullContext includes the context metadata and all its messages.
type FullContext struct {
	Context
	Messages []Message `json:"messages"`
}

// Role is one of the three conversation roles understood by every provider.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry of the ordered conversation snapshot handed to a
// provider adapter. Turns are never reordered once built.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Profile holds per-user personalization and the direct provider keys.
// Keys are stored as opaque secrets; at-rest protection is the storage
// layer's concern, not the routing core's.
type Profile struct {
	UserID        string    `json:"user_id"`
	PreferredName string    `json:"preferred_name"`
	Occupation    string    `json:"occupation"`
	ChatTraits    []string  `json:"chat_traits"`
	OpenAIKey     string    `json:"openai_api_key"`
	AnthropicKey  string    `json:"anthropic_api_key"`
	GoogleKey     string    `json:"google_gemini_api_key"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ModelPreference is a per-user visibility toggle for one catalog model.
type ModelPreference struct {
	UserID    string    `json:"user_id"`
	ModelID   string    `json:"model_id"`
	Enabled   bool      `json:"enabled"`
	UpdatedAt time.Time `json:"updated_at"`
}
