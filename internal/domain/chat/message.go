package chat

import "time"

// Roles of a conversation entry
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// Message is one entry of the conversation history
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage builds an entry stamped with the current time
func NewMessage(sessionID, role, content string) *Message {
	return &Message{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}
