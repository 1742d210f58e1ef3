package attendance

import "errors"

// Attendance domain errors
var (
	// ErrMustCheckInFirst is returned when an event other than CHECK_IN is
	// submitted for a day that has no attendance record yet.
	ErrMustCheckInFirst = errors.New("must check in first")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
