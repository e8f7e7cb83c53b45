package settings

import "context"

// Repository defines the persistence contract for session profiles.
// Load always succeeds with defaults for sessions that never saved, and
// implementations fail closed to defaults on corrupt stored data.
type Repository interface {
	// Load returns the stored profile merged over defaults
	Load(ctx context.Context, sessionID string) (Profile, error)

	// Save persists the profile immediately
	Save(ctx context.Context, sessionID string, profile Profile) error
}
