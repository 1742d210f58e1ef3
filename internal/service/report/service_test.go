package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/attendo-hq/attendance-backend-go/internal/domain/attendance"
	domain "github.com/attendo-hq/attendance-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceRepo struct {
	records []attendance.Record
	gotFrom time.Time
	gotTo   time.Time
}

func (s *stubAttendanceRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (s *stubAttendanceRepo) Update(ctx context.Context, rec attendance.Record) error { return nil }

func (s *stubAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) ListAll(ctx context.Context) ([]attendance.Record, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) ListRange(ctx context.Context, from, to time.Time) ([]attendance.Record, error) {
	s.gotFrom, s.gotTo = from, to
	return s.records, nil
}

func (s *stubAttendanceRepo) ListEmployeeIDsWithoutRecord(ctx context.Context, date time.Time) ([]string, error) {
	return nil, nil
}

func sampleRecords() []attendance.Record {
	name := "Ana Silva"
	checkIn := "09:15:00"
	checkOut := "16:30:00"
	return []attendance.Record{
		{
			EmployeeID:   "E101",
			EmployeeName: &name,
			Date:         time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			Status:       attendance.StatusLate,
			CheckInTime:  &checkIn,
			CheckOutTime: &checkOut,
			Remarks:      "Late (Checked in at 09:15:00); Left Early (Checked out at 16:30:00)",
		},
		{
			EmployeeID: "E102",
			Date:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			Status:     attendance.StatusAbsent,
		},
	}
}

func TestAttendanceReport_CSV(t *testing.T) {
	repo := &stubAttendanceRepo{records: sampleRecords()}
	svc := NewReportService(repo)

	doc, err := svc.AttendanceReport(context.Background(), domain.AttendanceReportRequest{
		From: "2024-05-01",
		To:   "2024-05-31",
	})

	require.NoError(t, err)
	assert.Equal(t, "attendance_2024-05-01_2024-05-31.csv", doc.Filename)
	assert.Equal(t, "text/csv", doc.ContentType)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), repo.gotFrom)
	assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), repo.gotTo)

	lines := strings.Split(strings.TrimSpace(string(doc.Data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,employee_id,employee_name,status,check_in,check_out,remarks", lines[0])
	assert.Contains(t, lines[1], "2024-05-01,E101,Ana Silva,Late,09:15:00,16:30:00")
	assert.Contains(t, lines[2], "2024-05-01,E102,,Absent,,,")
}

func TestAttendanceReport_PDF(t *testing.T) {
	svc := NewReportService(&stubAttendanceRepo{records: sampleRecords()})

	doc, err := svc.AttendanceReport(context.Background(), domain.AttendanceReportRequest{
		From:   "2024-05-01",
		To:     "2024-05-31",
		Format: "pdf",
	})

	require.NoError(t, err)
	assert.Equal(t, "attendance_2024-05-01_2024-05-31.pdf", doc.Filename)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.True(t, strings.HasPrefix(string(doc.Data), "%PDF"), "output should be a PDF document")
}

func TestAttendanceReport_FormatDefaultsToCSV(t *testing.T) {
	svc := NewReportService(&stubAttendanceRepo{})

	doc, err := svc.AttendanceReport(context.Background(), domain.AttendanceReportRequest{
		From: "2024-05-01",
		To:   "2024-05-01",
	})

	require.NoError(t, err)
	assert.Equal(t, "text/csv", doc.ContentType)
}

func TestAttendanceReport_InvalidRange(t *testing.T) {
	svc := NewReportService(&stubAttendanceRepo{})

	_, err := svc.AttendanceReport(context.Background(), domain.AttendanceReportRequest{
		From: "2024-05-31",
		To:   "2024-05-01",
	})

	require.Error(t, err)
}
