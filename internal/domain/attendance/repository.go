package attendance

import (
	"context"
	"time"
)

// Repository defines data access methods for attendance records.
type Repository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, record Record) (Record, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, record Record) error

	// GetByEmployeeAndDate retrieves the record for one employee on one
	// calendar day. Returns nil (no error) when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// ListAll retrieves every attendance record, newest date first, with logs
	ListAll(ctx context.Context) ([]Record, error)

	// ListByEmployee retrieves an employee's records, newest date first, with logs
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)

	// ListRange retrieves records with date in [from, to], ascending by date
	ListRange(ctx context.Context, from, to time.Time) ([]Record, error)

	// ListEmployeeIDsWithoutRecord returns IDs of employees having no record
	// on the given day. Used by the mark-absent job.
	ListEmployeeIDsWithoutRecord(ctx context.Context, date time.Time) ([]string, error)
}

// LogRepository defines data access methods for the append-only event log.
type LogRepository interface {
	// Append stores a raw event for an attendance record
	Append(ctx context.Context, event Event) (Event, error)

	// ListByAttendance retrieves a record's events ordered by timestamp
	ListByAttendance(ctx context.Context, attendanceID string) ([]Event, error)
}
