package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendo-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/attendo-hq/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.Repository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, status, check_in_time, check_out_time, remarks
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Date,
		record.Status,
		record.CheckInTime,
		record.CheckOutTime,
		record.Remarks,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return record, nil
}

// Update implements attendance.Repository.
func (a *attendanceRepository) Update(ctx context.Context, record attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET status = $2, check_in_time = $3, check_out_time = $4, remarks = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID,
		record.Status,
		record.CheckInTime,
		record.CheckOutTime,
		record.Remarks,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// GetByEmployeeAndDate implements attendance.Repository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, status, check_in_time, check_out_time, remarks,
		       created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date = $2
		LIMIT 1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status,
		&rec.CheckInTime, &rec.CheckOutTime, &rec.Remarks,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &rec, nil
}

// ListAll implements attendance.Repository.
func (a *attendanceRepository) ListAll(ctx context.Context) ([]attendance.Record, error) {
	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.check_in_time, a.check_out_time,
		       a.remarks, a.created_at, a.updated_at,
		       e.first_name || ' ' || e.last_name AS employee_name
		FROM attendances a
		JOIN employees e ON a.employee_id = e.id
		ORDER BY a.date DESC, e.last_name ASC
	`

	return a.queryRecordsWithLogs(ctx, query)
}

// ListByEmployee implements attendance.Repository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.check_in_time, a.check_out_time,
		       a.remarks, a.created_at, a.updated_at,
		       e.first_name || ' ' || e.last_name AS employee_name
		FROM attendances a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.employee_id = $1
		ORDER BY a.date DESC
	`

	return a.queryRecordsWithLogs(ctx, query, employeeID)
}

// ListRange implements attendance.Repository.
func (a *attendanceRepository) ListRange(ctx context.Context, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.check_in_time, a.check_out_time,
		       a.remarks, a.created_at, a.updated_at,
		       e.first_name || ' ' || e.last_name AS employee_name
		FROM attendances a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.date >= $1 AND a.date <= $2
		ORDER BY a.date ASC, e.last_name ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListEmployeeIDsWithoutRecord implements attendance.Repository.
func (a *attendanceRepository) ListEmployeeIDsWithoutRecord(ctx context.Context, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT e.id
		FROM employees e
		WHERE NOT EXISTS (
			SELECT 1 FROM attendances a
			WHERE a.employee_id = e.id AND a.date = $1
		)
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees without record: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

func (a *attendanceRepository) queryRecordsWithLogs(ctx context.Context, query string, args ...interface{}) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return records, nil
	}

	ids := make([]string, 0, len(records))
	index := make(map[string]int, len(records))
	for i, rec := range records {
		ids = append(ids, rec.ID)
		index[rec.ID] = i
	}

	logQuery := `
		SELECT id, attendance_id, type, timestamp, created_at
		FROM attendance_logs
		WHERE attendance_id = ANY($1)
		ORDER BY timestamp ASC
	`

	logRows, err := q.Query(ctx, logQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance logs: %w", err)
	}
	defer logRows.Close()

	for logRows.Next() {
		var event attendance.Event
		if err := logRows.Scan(&event.ID, &event.AttendanceID, &event.Type, &event.Timestamp, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		if i, ok := index[event.AttendanceID]; ok {
			records[i].Logs = append(records[i].Logs, event)
		}
	}
	if err := logRows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func scanRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status,
			&rec.CheckInTime, &rec.CheckOutTime, &rec.Remarks,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
