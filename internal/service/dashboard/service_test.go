package dashboard

import (
	"context"
	"testing"
	"time"

	domain "github.com/attendo-hq/attendance-backend-go/internal/domain/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDashboardRepo struct {
	employees    int64
	departments  int64
	statusCounts domain.StatusCounts
	deptRows     []domain.DepartmentAttendance
	dayCounts    map[string]int64
}

func (s *stubDashboardRepo) CountEmployees(ctx context.Context) (int64, error) {
	return s.employees, nil
}

func (s *stubDashboardRepo) CountDepartments(ctx context.Context) (int64, error) {
	return s.departments, nil
}

func (s *stubDashboardRepo) GetStatusCounts(ctx context.Context, date time.Time) (domain.StatusCounts, error) {
	return s.statusCounts, nil
}

func (s *stubDashboardRepo) GetDepartmentAttendance(ctx context.Context, date time.Time) ([]domain.DepartmentAttendance, error) {
	return s.deptRows, nil
}

func (s *stubDashboardRepo) GetAttendanceCountsByDate(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	return s.dayCounts, nil
}

func day(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDailySummary_AbsentIsComplement(t *testing.T) {
	svc := NewDashboardService(&stubDashboardRepo{
		employees:    50,
		statusCounts: domain.StatusCounts{Present: 30, Late: 8},
	})

	summary, err := svc.DailySummary(context.Background(), day("2024-05-01"))

	require.NoError(t, err)
	assert.Equal(t, int64(30), summary.Present)
	assert.Equal(t, int64(8), summary.Late)
	assert.Equal(t, int64(12), summary.Absent)
	assert.Equal(t, "2024-05-01", summary.Date)
	assert.Equal(t, int64(50), summary.Present+summary.Late+summary.Absent)
}

func TestDailySummary_NoRecords(t *testing.T) {
	svc := NewDashboardService(&stubDashboardRepo{employees: 10})

	summary, err := svc.DailySummary(context.Background(), day("2024-05-01"))

	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Present)
	assert.Equal(t, int64(0), summary.Late)
	assert.Equal(t, int64(10), summary.Absent, "everyone is absent when nobody checked in")
}

func TestDepartmentBreakdown(t *testing.T) {
	svc := NewDashboardService(&stubDashboardRepo{
		deptRows: []domain.DepartmentAttendance{
			{Name: "Engineering", Present: 12, Total: 15},
			{Name: "Sales", Present: 4, Total: 6},
		},
	})

	stats, err := svc.DepartmentBreakdown(context.Background(), day("2024-05-01"))

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, domain.DepartmentStat{Name: "Engineering", Present: 12, Total: 15}, stats[0])
	assert.Equal(t, domain.DepartmentStat{Name: "Sales", Present: 4, Total: 6}, stats[1])
}

func TestTrend_ZeroFillsMissingDays(t *testing.T) {
	svc := NewDashboardService(&stubDashboardRepo{
		dayCounts: map[string]int64{
			"2024-05-01": 40,
			"2024-05-03": 35,
		},
	})

	trend, err := svc.Trend(context.Background(), day("2024-05-01"), day("2024-05-07"))

	require.NoError(t, err)
	require.Len(t, trend, 7, "one point per calendar day, endpoints inclusive")

	assert.Equal(t, domain.TrendPoint{Date: "2024-05-01", Attendance: 40}, trend[0])
	assert.Equal(t, domain.TrendPoint{Date: "2024-05-02", Attendance: 0}, trend[1])
	assert.Equal(t, domain.TrendPoint{Date: "2024-05-03", Attendance: 35}, trend[2])
	for i, point := range trend[3:] {
		assert.Equal(t, day("2024-05-04").AddDate(0, 0, i).Format("2006-01-02"), point.Date)
		assert.Zero(t, point.Attendance)
	}
}

func TestTrend_SingleDayRange(t *testing.T) {
	svc := NewDashboardService(&stubDashboardRepo{
		dayCounts: map[string]int64{"2024-05-01": 7},
	})

	trend, err := svc.Trend(context.Background(), day("2024-05-01"), day("2024-05-01"))

	require.NoError(t, err)
	require.Len(t, trend, 1)
	assert.Equal(t, int64(7), trend[0].Attendance)
}

func TestGetDashboard_CombinesAllSections(t *testing.T) {
	svc := NewDashboardService(&stubDashboardRepo{
		employees:    25,
		departments:  4,
		statusCounts: domain.StatusCounts{Present: 18, Late: 3},
		deptRows: []domain.DepartmentAttendance{
			{Name: "Engineering", Present: 10, Total: 12},
		},
		dayCounts: map[string]int64{},
	})

	result, err := svc.GetDashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(25), result.TotalEmployees)
	assert.Equal(t, int64(4), result.TotalDepartments)
	assert.Equal(t, int64(4), result.TodayStats.Absent)
	require.Len(t, result.DepartmentData, 1)
	assert.Len(t, result.TrendData, 7)
}
