package cron

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/attendo-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceRepo struct {
	mu        sync.Mutex
	missing   []string
	created   []attendance.Record
	askedDate time.Time
}

func (s *stubAttendanceRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, rec)
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
	return nil, nil
}

func (s *stubAttendanceRepo) ListEmployeeIDsWithoutRecord(ctx context.Context, date time.Time) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.askedDate = date
	return s.missing, nil
}

func TestMarkAbsentEmployees_RunsOnlyAtMidnight(t *testing.T) {
	repo := &stubAttendanceRepo{missing: []string{"e1"}}
	jobs := NewAttendanceJobs(repo)
	jobs.now = func() time.Time {
		return time.Date(2024, 5, 2, 14, 30, 0, 0, time.UTC)
	}

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))
	assert.Empty(t, repo.created)
}

func TestMarkAbsentEmployees_MarksYesterday(t *testing.T) {
	repo := &stubAttendanceRepo{missing: []string{"e1", "e2"}}
	jobs := NewAttendanceJobs(repo)
	jobs.now = func() time.Time {
		return time.Date(2024, 5, 2, 0, 15, 0, 0, time.UTC)
	}

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))

	yesterday := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, yesterday, repo.askedDate)
	require.Len(t, repo.created, 2)
	for _, rec := range repo.created {
		assert.Equal(t, attendance.StatusAbsent, rec.Status)
		assert.Equal(t, yesterday, rec.Date)
		assert.Nil(t, rec.CheckInTime)
	}
}

func TestMarkAbsentEmployees_NothingToDo(t *testing.T) {
	repo := &stubAttendanceRepo{}
	jobs := NewAttendanceJobs(repo)
	jobs.now = func() time.Time {
		return time.Date(2024, 5, 2, 0, 15, 0, 0, time.UTC)
	}

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))
	assert.Empty(t, repo.created)
}

func TestScheduler_RunOnce(t *testing.T) {
	scheduler := NewScheduler()
	ran := 0
	scheduler.AddJob("probe", time.Hour, func(ctx context.Context) error {
		ran++
		return nil
	})

	scheduler.RunOnce(context.Background())

	assert.Equal(t, 1, ran)
}
