package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrisense/plant-chatbot/internal/domain/settings"
	"github.com/agrisense/plant-chatbot/pkg/logger"
)

// PostgresSettingsRepository persists one profile document per session
// in the chat_settings table.
type PostgresSettingsRepository struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewPostgresSettingsRepository creates the Postgres-backed settings repository
func NewPostgresSettingsRepository(db *pgxpool.Pool, log logger.Logger) settings.Repository {
	return &PostgresSettingsRepository{db: db, logger: log}
}

// Load returns the stored profile merged over defaults. A missing row
// yields the defaults; a corrupt document fails closed to the defaults
// rather than breaking the session.
func (r *PostgresSettingsRepository) Load(ctx context.Context, sessionID string) (settings.Profile, error) {
	var raw []byte
	err := r.db.QueryRow(ctx,
		`SELECT profile FROM chat_settings WHERE session_id = $1`,
		sessionID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return settings.DefaultProfile(), nil
	}
	if err != nil {
		return settings.DefaultProfile(), fmt.Errorf("failed to load settings: %w", err)
	}

	// Unmarshalling over a default-initialized profile keeps defaults
	// for any field the stored document omits.
	profile := settings.DefaultProfile()
	if err := json.Unmarshal(raw, &profile); err != nil {
		r.logger.Warn("Corrupt settings document, falling back to defaults",
			"session_id", sessionID,
			"error", err)
		return settings.DefaultProfile(), nil
	}

	return profile, nil
}

func (r *PostgresSettingsRepository) Save(ctx context.Context, sessionID string, profile settings.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO chat_settings (session_id, profile, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id) DO UPDATE SET profile = $2, updated_at = $3
	`, sessionID, raw, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}
