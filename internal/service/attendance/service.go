package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/attendo-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/attendo-hq/attendance-backend-go/internal/domain/employee"
	"github.com/attendo-hq/attendance-backend-go/internal/domain/setting"
	"github.com/attendo-hq/attendance-backend-go/internal/pkg/keymutex"
)

// TxFunc runs fn atomically against storage. Production wiring backs it with
// a database transaction; either everything fn writes commits or nothing does.
type TxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

type AttendanceServiceImpl struct {
	runInTx TxFunc
	attendance.Repository
	logRepo      attendance.LogRepository
	employeeRepo employee.Repository
	policy       setting.Service
	locks        *keymutex.KeyMutex
}

func NewAttendanceService(
	runInTx TxFunc,
	attendanceRepo attendance.Repository,
	logRepo attendance.LogRepository,
	employeeRepo employee.Repository,
	policyService setting.Service,
) attendance.Service {
	return &AttendanceServiceImpl{
		runInTx:      runInTx,
		Repository:   attendanceRepo,
		logRepo:      logRepo,
		employeeRepo: employeeRepo,
		policy:       policyService,
		locks:        keymutex.New(),
	}
}

// RecordEvent implements attendance.Service.
//
// The day and time-of-day are taken from the timestamp as submitted; times
// are compared as fixed-width HH:MM:SS strings against the policy thresholds.
// Status is decided once, at check-in, and later events never revise it:
// check-out quality is captured in remarks only.
func (a *AttendanceServiceImpl) RecordEvent(ctx context.Context, req attendance.RecordEventRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := a.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.RecordResponse{}, err
	}

	policy, err := a.policy.Policy(ctx)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to read attendance policy: %w", err)
	}

	ts := req.ParsedTimestamp
	day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	timeOfDay := ts.Format("15:04:05")
	eventType := attendance.EventType(req.Type)

	// Serialize concurrent events for the same employee and day so two
	// check-ins cannot both observe "no record exists".
	lockKey := req.EmployeeID + "|" + day.Format("2006-01-02")
	a.locks.Lock(lockKey)
	defer a.locks.Unlock(lockKey)

	var record attendance.Record

	err = a.runInTx(ctx, func(txCtx context.Context) error {
		existing, err := a.Repository.GetByEmployeeAndDate(txCtx, req.EmployeeID, day)
		if err != nil {
			return fmt.Errorf("failed to look up attendance record: %w", err)
		}

		if existing == nil {
			if eventType != attendance.EventCheckIn {
				return attendance.ErrMustCheckInFirst
			}

			status := attendance.StatusPresent
			remarks := fmt.Sprintf("Early (Checked in at %s)", timeOfDay)
			if timeOfDay > policy.OfficialCheckIn {
				status = attendance.StatusLate
				remarks = fmt.Sprintf("Late (Checked in at %s)", timeOfDay)
			}

			created, err := a.Repository.Create(txCtx, attendance.Record{
				EmployeeID:  req.EmployeeID,
				Date:        day,
				Status:      status,
				CheckInTime: &timeOfDay,
				Remarks:     remarks,
			})
			if err != nil {
				return fmt.Errorf("failed to create attendance record: %w", err)
			}
			record = created
		} else {
			record = *existing

			if eventType == attendance.EventCheckOut {
				remarks := record.Remarks
				if remarks != "" {
					remarks += "; "
				}
				if timeOfDay < policy.OfficialCheckOut {
					remarks += fmt.Sprintf("Left Early (Checked out at %s)", timeOfDay)
				} else {
					remarks += fmt.Sprintf("Overtime (Checked out at %s)", timeOfDay)
				}

				record.CheckOutTime = &timeOfDay
				record.Remarks = remarks
				if err := a.Repository.Update(txCtx, record); err != nil {
					return fmt.Errorf("failed to update attendance record: %w", err)
				}
			}
			// BREAK_START, BREAK_END and repeated CHECK_IN only hit the log.
		}

		if _, err := a.logRepo.Append(txCtx, attendance.Event{
			AttendanceID: record.ID,
			Type:         eventType,
			Timestamp:    ts,
		}); err != nil {
			return fmt.Errorf("failed to append attendance log: %w", err)
		}

		return nil
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return mapRecordToResponse(record), nil
}

// ListAttendance implements attendance.Service.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context) (attendance.ListRecordsResponse, error) {
	records, err := a.Repository.ListAll(ctx)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return mapRecordsToList(records), nil
}

// ListByEmployee implements attendance.Service.
func (a *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) (attendance.ListRecordsResponse, error) {
	records, err := a.Repository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance for employee %s: %w", employeeID, err)
	}

	return mapRecordsToList(records), nil
}

func mapRecordsToList(records []attendance.Record) attendance.ListRecordsResponse {
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}
	return attendance.ListRecordsResponse{
		TotalCount: int64(len(responses)),
		Records:    responses,
	}
}

// mapRecordToResponse converts a Record entity to RecordResponse
func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	logs := make([]attendance.EventResponse, 0, len(rec.Logs))
	for _, event := range rec.Logs {
		logs = append(logs, attendance.EventResponse{
			ID:        event.ID,
			Type:      string(event.Type),
			Timestamp: event.Timestamp.Format(time.RFC3339),
		})
	}

	return attendance.RecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		Date:         rec.Date.Format("2006-01-02"),
		Status:       string(rec.Status),
		CheckInTime:  rec.CheckInTime,
		CheckOutTime: rec.CheckOutTime,
		Remarks:      rec.Remarks,
		Logs:         logs,
		CreatedAt:    rec.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    rec.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
