package setting

import "context"

// Repository defines data access methods for settings.
type Repository interface {
	// GetAll retrieves every setting entry
	GetAll(ctx context.Context) ([]Setting, error)

	// Upsert creates the key or overwrites its value
	Upsert(ctx context.Context, key, value string) error
}
