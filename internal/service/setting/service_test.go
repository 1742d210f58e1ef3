package setting

import (
	"context"
	"testing"

	domain "github.com/attendo-hq/attendance-backend-go/internal/domain/setting"
	"github.com/attendo-hq/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSettingRepo struct {
	values map[string]string
}

func newMemSettingRepo() *memSettingRepo {
	return &memSettingRepo{values: make(map[string]string)}
}

func (m *memSettingRepo) GetAll(ctx context.Context) ([]domain.Setting, error) {
	entries := make([]domain.Setting, 0, len(m.values))
	for key, value := range m.values {
		entries = append(entries, domain.Setting{Key: key, Value: value})
	}
	return entries, nil
}

func (m *memSettingRepo) Upsert(ctx context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func TestPolicy_DefaultsWhenUnset(t *testing.T) {
	svc := NewSettingService(newMemSettingRepo())

	policy, err := svc.Policy(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "09:00:00", policy.OfficialCheckIn)
	assert.Equal(t, "17:00:00", policy.OfficialCheckOut)
}

func TestPolicy_ReflectsStoredOverrides(t *testing.T) {
	repo := newMemSettingRepo()
	svc := NewSettingService(repo)

	err := svc.UpdateSettings(context.Background(), domain.UpdateSettingsRequest{
		domain.KeyOfficialCheckIn: "08:30:00",
	})
	require.NoError(t, err)

	policy, err := svc.Policy(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "08:30:00", policy.OfficialCheckIn)
	assert.Equal(t, "17:00:00", policy.OfficialCheckOut, "untouched keys keep their defaults")
}

func TestUpdateSettings_RejectsMalformedThreshold(t *testing.T) {
	repo := newMemSettingRepo()
	svc := NewSettingService(repo)

	err := svc.UpdateSettings(context.Background(), domain.UpdateSettingsRequest{
		domain.KeyOfficialCheckIn: "nine am",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Empty(t, repo.values, "nothing is written on validation failure")
}

func TestUpdateSettings_AllowsArbitraryKeys(t *testing.T) {
	repo := newMemSettingRepo()
	svc := NewSettingService(repo)

	err := svc.UpdateSettings(context.Background(), domain.UpdateSettingsRequest{
		"companyName": "Attendo",
	})
	require.NoError(t, err)

	settings, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Attendo", settings["companyName"])
}

func TestUpdateSettings_RequiresAtLeastOnePair(t *testing.T) {
	svc := NewSettingService(newMemSettingRepo())

	err := svc.UpdateSettings(context.Background(), domain.UpdateSettingsRequest{})

	require.Error(t, err)
}
