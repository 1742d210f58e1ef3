package dashboard

import (
	"context"
	"time"
)

// Service defines the aggregation operations behind the dashboard.
type Service interface {
	// GetDashboard returns the combined dashboard payload for today plus the
	// trailing 7-day trend, assembled with parallel queries
	GetDashboard(ctx context.Context) (*DashboardResponse, error)

	// DailySummary returns present/late/absent counts for a day
	DailySummary(ctx context.Context, date time.Time) (SummaryResponse, error)

	// DepartmentBreakdown returns per-department attendance for a day
	DepartmentBreakdown(ctx context.Context, date time.Time) ([]DepartmentStat, error)

	// Trend returns one zero-filled point per day in [from, to], ascending
	Trend(ctx context.Context, from, to time.Time) ([]TrendPoint, error)
}
