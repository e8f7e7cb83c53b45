package session

import "context"

type contextKey string

const (
	// sessionIDKey stores the chat session id in the request context
	sessionIDKey contextKey = "session_id"
)

// SetSessionIDContext stores the session id in the context
func SetSessionIDContext(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// GetSessionIDFromContext retrieves the session id from the context
func GetSessionIDFromContext(ctx context.Context) string {
	if sessionID, ok := ctx.Value(sessionIDKey).(string); ok {
		return sessionID
	}
	return ""
}
