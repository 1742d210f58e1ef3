package setting

import (
	"context"
	"fmt"

	"github.com/attendo-hq/attendance-backend-go/internal/domain/setting"
)

type SettingServiceImpl struct {
	setting.Repository
}

func NewSettingService(repo setting.Repository) setting.Service {
	return &SettingServiceImpl{
		Repository: repo,
	}
}

// GetSettings implements setting.Service.
func (s *SettingServiceImpl) GetSettings(ctx context.Context) (map[string]string, error) {
	entries, err := s.Repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	settings := make(map[string]string, len(entries))
	for _, entry := range entries {
		settings[entry.Key] = entry.Value
	}
	return settings, nil
}

// UpdateSettings implements setting.Service.
func (s *SettingServiceImpl) UpdateSettings(ctx context.Context, req setting.UpdateSettingsRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	for key, value := range req {
		if err := s.Repository.Upsert(ctx, key, value); err != nil {
			return fmt.Errorf("failed to upsert setting %s: %w", key, err)
		}
	}
	return nil
}

// Policy implements setting.Service. The snapshot is read fresh on every
// call; callers own the refresh cadence.
func (s *SettingServiceImpl) Policy(ctx context.Context) (setting.Policy, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return setting.Policy{}, err
	}
	return setting.PolicyFromMap(settings), nil
}
