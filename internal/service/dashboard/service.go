package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/attendo-hq/attendance-backend-go/internal/domain/dashboard"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.Repository
}

func NewDashboardService(repo dashboard.Repository) dashboard.Service {
	return &DashboardServiceImpl{
		Repository: repo,
	}
}

// GetDashboard returns combined dashboard data using parallel goroutines:
// today's summary, per-department breakdown, and the trailing 7-day trend.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	today := truncateToDay(time.Now().UTC())
	weekAgo := today.AddDate(0, 0, -6)

	var (
		totalEmployees   int64
		totalDepartments int64
		todayStats       dashboard.SummaryResponse
		departmentData   []dashboard.DepartmentStat
		trendData        []dashboard.TrendPoint
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.CountEmployees(gCtx)
		if err != nil {
			return err
		}
		totalEmployees = count
		return nil
	})

	g.Go(func() error {
		count, err := s.CountDepartments(gCtx)
		if err != nil {
			return err
		}
		totalDepartments = count
		return nil
	})

	g.Go(func() error {
		summary, err := s.DailySummary(gCtx, today)
		if err != nil {
			return err
		}
		todayStats = summary
		return nil
	})

	g.Go(func() error {
		breakdown, err := s.DepartmentBreakdown(gCtx, today)
		if err != nil {
			return err
		}
		departmentData = breakdown
		return nil
	})

	g.Go(func() error {
		trend, err := s.Trend(gCtx, weekAgo, today)
		if err != nil {
			return err
		}
		trendData = trend
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.DashboardResponse{
		TotalEmployees:   totalEmployees,
		TotalDepartments: totalDepartments,
		TodayStats:       todayStats,
		DepartmentData:   departmentData,
		TrendData:        trendData,
	}, nil
}

// DailySummary implements dashboard.Service. Absent is derived as the
// complement totalEmployees - (present + late): employees without a record
// for the day are implicitly absent, and Leave-status records fold into the
// absent bucket through the subtraction.
func (s *DashboardServiceImpl) DailySummary(ctx context.Context, date time.Time) (dashboard.SummaryResponse, error) {
	date = truncateToDay(date)

	counts, err := s.GetStatusCounts(ctx, date)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to get status counts: %w", err)
	}

	total, err := s.CountEmployees(ctx)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	return dashboard.SummaryResponse{
		Present: counts.Present,
		Late:    counts.Late,
		Absent:  total - (counts.Present + counts.Late),
		Date:    date.Format("2006-01-02"),
	}, nil
}

// DepartmentBreakdown implements dashboard.Service.
func (s *DashboardServiceImpl) DepartmentBreakdown(ctx context.Context, date time.Time) ([]dashboard.DepartmentStat, error) {
	date = truncateToDay(date)

	rows, err := s.GetDepartmentAttendance(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get department attendance: %w", err)
	}

	stats := make([]dashboard.DepartmentStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, dashboard.DepartmentStat{
			Name:    row.Name,
			Present: row.Present,
			Total:   row.Total,
		})
	}
	return stats, nil
}

// Trend implements dashboard.Service. The series always spans every calendar
// day in [from, to] inclusive, ascending; days the query returned nothing for
// are synthesized with a zero count.
func (s *DashboardServiceImpl) Trend(ctx context.Context, from, to time.Time) ([]dashboard.TrendPoint, error) {
	from = truncateToDay(from)
	to = truncateToDay(to)

	counts, err := s.GetAttendanceCountsByDate(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance counts: %w", err)
	}

	var trend []dashboard.TrendPoint
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format("2006-01-02")
		trend = append(trend, dashboard.TrendPoint{
			Date:       dateStr,
			Attendance: counts[dateStr],
		})
	}
	return trend, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
