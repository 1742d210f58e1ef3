package postgresql

import (
	"context"
	"fmt"

	"github.com/attendo-hq/attendance-backend-go/internal/domain/setting"
	"github.com/attendo-hq/attendance-backend-go/internal/pkg/database"
)

type settingRepository struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) setting.Repository {
	return &settingRepository{db: db}
}

// GetAll implements setting.Repository.
func (s *settingRepository) GetAll(ctx context.Context) ([]setting.Setting, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, key, value, created_at, updated_at
		FROM settings
		ORDER BY key ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	var settings []setting.Setting
	for rows.Next() {
		var st setting.Setting
		if err := rows.Scan(&st.ID, &st.Key, &st.Value, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Upsert implements setting.Repository.
func (s *settingRepository) Upsert(ctx context.Context, key, value string) error {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", key, err)
	}

	return nil
}
