package chat

import "context"

// Repository defines the persistence contract for the conversation log.
// The log is append-only; the only destructive operation is the full
// per-session reset.
type Repository interface {
	// SaveMessage appends a new entry to the session history
	SaveMessage(ctx context.Context, message *Message) error

	// GetHistory returns the session history, newest first
	GetHistory(ctx context.Context, sessionID string, limit, offset int) ([]Message, error)

	// DeleteHistory removes every entry of the session. Deleting an
	// already-empty history is not an error.
	DeleteHistory(ctx context.Context, sessionID string) error

	// CountMessages counts the entries of the session
	CountMessages(ctx context.Context, sessionID string) (int, error)
}
