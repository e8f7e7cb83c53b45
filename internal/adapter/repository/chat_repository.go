package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrisense/plant-chatbot/internal/domain/chat"
)

// PostgresChatRepository persists the conversation log in the
// chat_history table.
type PostgresChatRepository struct {
	db *pgxpool.Pool
}

// NewPostgresChatRepository creates the Postgres-backed history repository
func NewPostgresChatRepository(db *pgxpool.Pool) chat.Repository {
	return &PostgresChatRepository{db: db}
}

func (r *PostgresChatRepository) SaveMessage(ctx context.Context, message *chat.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO chat_history (id, session_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`,
		message.ID,
		message.SessionID,
		message.Role,
		message.Content,
		message.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	return nil
}

func (r *PostgresChatRepository) GetHistory(ctx context.Context, sessionID string, limit, offset int) ([]chat.Message, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, role, content, created_at
		FROM chat_history
		WHERE session_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, sessionID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var messages []chat.Message
	for rows.Next() {
		var msg chat.Message
		if err := rows.Scan(&msg.ID, &msg.Role, &msg.Content, &msg.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		msg.SessionID = sessionID
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return messages, nil
}

func (r *PostgresChatRepository) DeleteHistory(ctx context.Context, sessionID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM chat_history WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("failed to delete history: %w", err)
	}
	return nil
}

func (r *PostgresChatRepository) CountMessages(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM chat_history WHERE session_id = $1`, sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}
