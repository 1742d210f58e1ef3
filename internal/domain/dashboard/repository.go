package dashboard

import (
	"context"
	"time"
)

// StatusCounts combines per-status record counts for a day.
type StatusCounts struct {
	Present int64
	Late    int64
}

// DepartmentAttendance is one department's raw counts for a day.
type DepartmentAttendance struct {
	Name    string
	Present int64
	Total   int64
}

// Repository defines read-only aggregate queries over attendance records.
type Repository interface {
	// CountEmployees returns the total number of employees
	CountEmployees(ctx context.Context) (int64, error)

	// CountDepartments returns the total number of departments
	CountDepartments(ctx context.Context) (int64, error)

	// GetStatusCounts returns Present and Late record counts for a day
	GetStatusCounts(ctx context.Context, date time.Time) (StatusCounts, error)

	// GetDepartmentAttendance returns, per department ordered by name, the
	// number of employees with a Present or Late record on the day and the
	// department's headcount
	GetDepartmentAttendance(ctx context.Context, date time.Time) ([]DepartmentAttendance, error)

	// GetAttendanceCountsByDate returns, for each day in [from, to] that has
	// any Present or Late records, the count keyed by "YYYY-MM-DD". Days with
	// no matching records are simply missing from the map.
	GetAttendanceCountsByDate(ctx context.Context, from, to time.Time) (map[string]int64, error)
}
