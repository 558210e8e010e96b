package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"prism-ai/backend/internal/llm"
	"prism-ai/backend/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateContext(ctx context.Context, c *model.Context) error {
	query := "INSERT INTO contexts (id, user_id, title, selected_model, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query, c.ID, c.UserID, c.Title, c.SelectedModel, c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *sqliteRepository) GetContext(ctx context.Context, contextID string) (*model.Context, error) {
	query := "SELECT id, user_id, title, selected_model, created_at, updated_at FROM contexts WHERE id = ?"
	row := r.db.QueryRowContext(ctx, query, contextID)
	var c model.Context
	err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.SelectedModel, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *sqliteRepository) GetContexts(ctx context.Context, userID string) ([]*model.Context, error) {
	query := "SELECT id, user_id, title, selected_model, created_at, updated_at FROM contexts WHERE user_id = ? ORDER BY updated_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contexts []*model.Context
	for rows.Next() {
		var c model.Context
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.SelectedModel, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		contexts = append(contexts, &c)
	}
	return contexts, rows.Err()
}

func (r *sqliteRepository) UpdateContextTitle(ctx context.Context, contextID, newTitle string) error {
	query := "UPDATE contexts SET title = ?, updated_at = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, newTitle, time.Now().UTC(), contextID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *sqliteRepository) UpdateContextModel(ctx context.Context, contextID, modelID string) error {
	query := "UPDATE contexts SET selected_model = ?, updated_at = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, modelID, time.Now().UTC(), contextID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *sqliteRepository) DeleteContext(ctx context.Context, contextID string) error {
	// Messages cascade-delete with their parent context.
	query := "DELETE FROM contexts WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, contextID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// AddMessage inserts the message and bumps the parent context's
// updated_at inside one transaction.
func (r *sqliteRepository) AddMessage(ctx context.Context, message *model.Message) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := "INSERT INTO messages (id, context_id, role, content, created_at) VALUES (?, ?, ?, ?, ?)"
	_, err = tx.ExecContext(ctx, insertQuery, message.ID, message.ContextID, message.Role, message.Content, message.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not insert message: %w", err)
	}

	updateQuery := "UPDATE contexts SET updated_at = ? WHERE id = ?"
	if _, err := tx.ExecContext(ctx, updateQuery, time.Now().UTC(), message.ContextID); err != nil {
		return fmt.Errorf("could not update context timestamp: %w", err)
	}

	return tx.Commit()
}

func (r *sqliteRepository) GetMessages(ctx context.Context, contextID string) ([]model.Message, error) {
	query := "SELECT id, context_id, role, content, created_at FROM messages WHERE context_id = ? ORDER BY created_at ASC"
	rows, err := r.db.QueryContext(ctx, query, contextID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		var msg model.Message
		if err := rows.Scan(&msg.ID, &msg.ContextID, &msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (r *sqliteRepository) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	query := `
		SELECT user_id, preferred_name, occupation, chat_traits,
		       openai_api_key, anthropic_api_key, google_gemini_api_key,
		       created_at, updated_at
		FROM user_profiles WHERE user_id = ?
	`
	row := r.db.QueryRowContext(ctx, query, userID)

	var p model.Profile
	var traits string
	err := row.Scan(&p.UserID, &p.PreferredName, &p.Occupation, &traits,
		&p.OpenAIKey, &p.AnthropicKey, &p.GoogleKey, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal([]byte(traits), &p.ChatTraits); err != nil {
		return nil, fmt.Errorf("could not decode chat traits: %w", err)
	}
	return &p, nil
}

func (r *sqliteRepository) UpsertProfile(ctx context.Context, profile *model.Profile) error {
	traits, err := json.Marshal(profile.ChatTraits)
	if err != nil {
		return fmt.Errorf("could not encode chat traits: %w", err)
	}

	query := `
		INSERT INTO user_profiles
			(user_id, preferred_name, occupation, chat_traits,
			 openai_api_key, anthropic_api_key, google_gemini_api_key,
			 created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			preferred_name = excluded.preferred_name,
			occupation = excluded.occupation,
			chat_traits = excluded.chat_traits,
			openai_api_key = excluded.openai_api_key,
			anthropic_api_key = excluded.anthropic_api_key,
			google_gemini_api_key = excluded.google_gemini_api_key,
			updated_at = excluded.updated_at
	`
	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx, query, profile.UserID, profile.PreferredName, profile.Occupation,
		string(traits), profile.OpenAIKey, profile.AnthropicKey, profile.GoogleKey, now, now)
	return err
}

func (r *sqliteRepository) GetAPIKey(ctx context.Context, userID string, provider llm.Provider) (string, error) {
	query := "SELECT api_key FROM user_api_keys WHERE user_id = ? AND provider = ?"
	row := r.db.QueryRowContext(ctx, query, userID, string(provider))

	var secret string
	if err := row.Scan(&secret); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return secret, nil
}

func (r *sqliteRepository) UpsertAPIKey(ctx context.Context, userID string, provider llm.Provider, secret string) error {
	query := `
		INSERT INTO user_api_keys (user_id, provider, api_key, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, provider) DO UPDATE SET
			api_key = excluded.api_key,
			updated_at = excluded.updated_at
	`
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, userID, string(provider), secret, now, now)
	return err
}

func (r *sqliteRepository) DeleteAPIKey(ctx context.Context, userID string, provider llm.Provider) error {
	query := "DELETE FROM user_api_keys WHERE user_id = ? AND provider = ?"
	res, err := r.db.ExecContext(ctx, query, userID, string(provider))
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *sqliteRepository) ListModelPreferences(ctx context.Context, userID string) ([]model.ModelPreference, error) {
	query := "SELECT user_id, model_id, enabled, updated_at FROM user_model_preferences WHERE user_id = ?"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prefs []model.ModelPreference
	for rows.Next() {
		var p model.ModelPreference
		if err := rows.Scan(&p.UserID, &p.ModelID, &p.Enabled, &p.UpdatedAt); err != nil {
			return nil, err
		}
		prefs = append(prefs, p)
	}
	return prefs, rows.Err()
}

func (r *sqliteRepository) SetModelPreference(ctx context.Context, userID, modelID string, enabled bool) error {
	query := `
		INSERT INTO user_model_preferences (user_id, model_id, enabled, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, model_id) DO UPDATE SET
			enabled = excluded.enabled,
			updated_at = excluded.updated_at
	`
	_, err := r.db.ExecContext(ctx, query, userID, modelID, enabled, time.Now().UTC())
	return err
}

// requireRow converts a zero-row update/delete into ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
