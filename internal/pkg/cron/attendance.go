package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendo-hq/attendance-backend-go/internal/domain/attendance"
)

// AttendanceJobs closes out each day's attendance books.
type AttendanceJobs struct {
	attendanceRepo attendance.Repository

	// now is swappable in tests
	now func() time.Time
}

func NewAttendanceJobs(attendanceRepo attendance.Repository) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees writes an Absent record for every employee who logged
// no attendance the previous day. Only acts during the first hour after
// midnight UTC so each day is settled exactly once.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	now := j.now().UTC()
	if now.Hour() != 0 {
		return nil
	}

	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

	ids, err := j.attendanceRepo.ListEmployeeIDsWithoutRecord(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to list employees without record: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	marked := 0
	for _, id := range ids {
		_, err := j.attendanceRepo.Create(ctx, attendance.Record{
			EmployeeID: id,
			Date:       yesterday,
			Status:     attendance.StatusAbsent,
		})
		if err != nil {
			slog.Error("Cron: Failed to mark employee absent",
				"employee_id", id,
				"date", yesterday.Format("2006-01-02"),
				"error", err)
			continue
		}
		marked++
	}

	slog.Info("Cron: Marked absent employees",
		"date", yesterday.Format("2006-01-02"),
		"count", marked)

	return nil
}
