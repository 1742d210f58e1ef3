package setting

import "context"

// Service defines business logic for settings, including the policy snapshot
// the attendance engine reads before each recorded event.
type Service interface {
	// GetSettings returns all settings as a key/value map
	GetSettings(ctx context.Context) (map[string]string, error)

	// UpdateSettings bulk-upserts the given key/value pairs
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) error

	// Policy returns the current classification thresholds with defaults applied
	Policy(ctx context.Context) (Policy, error)
}
