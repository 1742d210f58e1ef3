package attendance

import "context"

// Service defines business logic for attendance operations.
type Service interface {
	// RecordEvent applies one activity event to the employee's record for the
	// event's calendar day, creating the record on first check-in. The record
	// update and the log append commit atomically.
	RecordEvent(ctx context.Context, req RecordEventRequest) (RecordResponse, error)

	// ListAttendance retrieves all records, newest date first
	ListAttendance(ctx context.Context) (ListRecordsResponse, error)

	// ListByEmployee retrieves one employee's records, newest date first
	ListByEmployee(ctx context.Context, employeeID string) (ListRecordsResponse, error)
}
