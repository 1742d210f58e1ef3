package attendance

import (
	"time"
)

// EventType is the kind of activity signal an employee submits.
type EventType string

const (
	EventCheckIn    EventType = "CHECK_IN"
	EventCheckOut   EventType = "CHECK_OUT"
	EventBreakStart EventType = "BREAK_START"
	EventBreakEnd   EventType = "BREAK_END"
)

// KnownEventTypes lists every accepted event type.
var KnownEventTypes = []string{
	string(EventCheckIn),
	string(EventCheckOut),
	string(EventBreakStart),
	string(EventBreakEnd),
}

// Status is the day-level classification of a record. It is decided at
// check-in time and never revised by later events.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLate    Status = "Late"
	StatusLeave   Status = "Leave"
)

// Record is the per-employee-per-day attendance summary. At most one record
// exists per (EmployeeID, Date); it is a materialized cache of the event log.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time // calendar day, midnight UTC
	Status     Status
	// CheckInTime and CheckOutTime are HH:MM:SS time-of-day summaries.
	CheckInTime  *string
	CheckOutTime *string
	Remarks      string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined
	EmployeeName *string
	Logs         []Event
}

// Event is a single raw activity signal. Immutable once recorded; ordering
// within a day is by Timestamp, not insertion order.
type Event struct {
	ID           string
	AttendanceID string
	Type         EventType
	Timestamp    time.Time
	CreatedAt    time.Time
}
