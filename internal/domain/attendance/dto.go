package attendance

import (
	"time"

	"github.com/attendo-hq/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type RecordEventRequest struct {
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	Timestamp  string `json:"timestamp"`

	// Parsed by Validate
	ParsedTimestamp time.Time `json:"-"`
}

func (r *RecordEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	} else if !validator.IsInSlice(r.Type, KnownEventTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of CHECK_IN, CHECK_OUT, BREAK_START, BREAK_END",
		})
	}

	if validator.IsEmpty(r.Timestamp) {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp is required",
		})
	} else {
		ts, ok := validator.IsValidDateTime(r.Timestamp)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid ISO8601 datetime",
			})
		} else {
			r.ParsedTimestamp = ts
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EventResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

type RecordResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	Date         string          `json:"date"`
	Status       string          `json:"status"`
	CheckInTime  *string         `json:"check_in_time"`
	CheckOutTime *string         `json:"check_out_time"`
	Remarks      string          `json:"remarks"`
	Logs         []EventResponse `json:"logs,omitempty"`
	CreatedAt    string          `json:"created_at,omitempty"`
	UpdatedAt    string          `json:"updated_at,omitempty"`
}

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Records    []RecordResponse `json:"records"`
}
