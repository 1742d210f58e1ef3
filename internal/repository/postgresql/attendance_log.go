package postgresql

import (
	"context"
	"fmt"

	"github.com/attendo-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/attendo-hq/attendance-backend-go/internal/pkg/database"
)

type attendanceLogRepository struct {
	db *database.DB
}

func NewAttendanceLogRepository(db *database.DB) attendance.LogRepository {
	return &attendanceLogRepository{db: db}
}

// Append implements attendance.LogRepository.
func (a *attendanceLogRepository) Append(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_logs (attendance_id, type, timestamp)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, event.AttendanceID, event.Type, event.Timestamp).
		Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to append attendance log: %w", err)
	}

	return event, nil
}

// ListByAttendance implements attendance.LogRepository.
func (a *attendanceLogRepository) ListByAttendance(ctx context.Context, attendanceID string) ([]attendance.Event, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, attendance_id, type, timestamp, created_at
		FROM attendance_logs
		WHERE attendance_id = $1
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, attendanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance logs: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var event attendance.Event
		if err := rows.Scan(&event.ID, &event.AttendanceID, &event.Type, &event.Timestamp, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
