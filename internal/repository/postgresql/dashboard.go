package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/attendo-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/attendo-hq/attendance-backend-go/internal/domain/dashboard"
	"github.com/attendo-hq/attendance-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepository{db: db}
}

// CountEmployees implements dashboard.Repository.
func (d *dashboardRepository) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, d.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

// CountDepartments implements dashboard.Repository.
func (d *dashboardRepository) CountDepartments(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, d.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count departments: %w", err)
	}

	return count, nil
}

// GetStatusCounts implements dashboard.Repository.
func (d *dashboardRepository) GetStatusCounts(ctx context.Context, date time.Time) (dashboard.StatusCounts, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = $2 THEN 1 ELSE 0 END), 0) AS present,
			COALESCE(SUM(CASE WHEN status = $3 THEN 1 ELSE 0 END), 0) AS late
		FROM attendances
		WHERE date = $1
	`

	var counts dashboard.StatusCounts
	err := q.QueryRow(ctx, query, date, attendance.StatusPresent, attendance.StatusLate).
		Scan(&counts.Present, &counts.Late)
	if err != nil {
		return dashboard.StatusCounts{}, fmt.Errorf("failed to get status counts: %w", err)
	}

	return counts, nil
}

// GetDepartmentAttendance implements dashboard.Repository.
func (d *dashboardRepository) GetDepartmentAttendance(ctx context.Context, date time.Time) ([]dashboard.DepartmentAttendance, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT d.name,
		       COALESCE(SUM(CASE WHEN a.status IN ($2, $3) THEN 1 ELSE 0 END), 0) AS present,
		       COUNT(DISTINCT e.id) AS total
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		LEFT JOIN attendances a ON a.employee_id = e.id AND a.date = $1
		GROUP BY d.id, d.name
		ORDER BY d.name ASC
	`

	rows, err := q.Query(ctx, query, date, attendance.StatusPresent, attendance.StatusLate)
	if err != nil {
		return nil, fmt.Errorf("failed to get department attendance: %w", err)
	}
	defer rows.Close()

	var stats []dashboard.DepartmentAttendance
	for rows.Next() {
		var stat dashboard.DepartmentAttendance
		if err := rows.Scan(&stat.Name, &stat.Present, &stat.Total); err != nil {
			return nil, fmt.Errorf("failed to scan department attendance: %w", err)
		}
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// GetAttendanceCountsByDate implements dashboard.Repository.
func (d *dashboardRepository) GetAttendanceCountsByDate(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT date, COUNT(*)
		FROM attendances
		WHERE date >= $1 AND date <= $2 AND status IN ($3, $4)
		GROUP BY date
	`

	rows, err := q.Query(ctx, query, from, to, attendance.StatusPresent, attendance.StatusLate)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance counts by date: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var day time.Time
		var count int64
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("failed to scan attendance count: %w", err)
		}
		counts[day.Format("2006-01-02")] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
