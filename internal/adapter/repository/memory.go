package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/agrisense/plant-chatbot/internal/domain/chat"
	"github.com/agrisense/plant-chatbot/internal/domain/settings"
)

// MemoryChatRepository keeps the conversation log in process memory.
// Used when no database is configured and by tests.
type MemoryChatRepository struct {
	mu       sync.RWMutex
	messages map[string][]chat.Message
}

// NewMemoryChatRepository creates an empty in-memory history repository
func NewMemoryChatRepository() chat.Repository {
	return &MemoryChatRepository{
		messages: make(map[string][]chat.Message),
	}
}

func (r *MemoryChatRepository) SaveMessage(ctx context.Context, message *chat.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	r.messages[message.SessionID] = append(r.messages[message.SessionID], *message)
	return nil
}

// GetHistory returns the session history newest first, matching the
// Postgres implementation's ordering contract.
func (r *MemoryChatRepository) GetHistory(ctx context.Context, sessionID string, limit, offset int) ([]chat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.messages[sessionID]
	var history []chat.Message
	for i := len(stored) - 1 - offset; i >= 0 && len(history) < limit; i-- {
		history = append(history, stored[i])
	}
	return history, nil
}

func (r *MemoryChatRepository) DeleteHistory(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.messages, sessionID)
	return nil
}

func (r *MemoryChatRepository) CountMessages(ctx context.Context, sessionID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.messages[sessionID]), nil
}

// MemorySettingsRepository keeps session profiles in process memory
type MemorySettingsRepository struct {
	mu       sync.RWMutex
	profiles map[string]settings.Profile
}

// NewMemorySettingsRepository creates an empty in-memory settings repository
func NewMemorySettingsRepository() settings.Repository {
	return &MemorySettingsRepository{
		profiles: make(map[string]settings.Profile),
	}
}

func (r *MemorySettingsRepository) Load(ctx context.Context, sessionID string) (settings.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if profile, ok := r.profiles[sessionID]; ok {
		return profile, nil
	}
	return settings.DefaultProfile(), nil
}

func (r *MemorySettingsRepository) Save(ctx context.Context, sessionID string, profile settings.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[sessionID] = profile
	return nil
}
