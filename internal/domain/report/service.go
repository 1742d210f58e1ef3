package report

import "context"

// Service renders downloadable attendance reports.
type Service interface {
	// AttendanceReport renders all records in the requested date range as a
	// CSV or PDF document
	AttendanceReport(ctx context.Context, req AttendanceReportRequest) (Document, error)
}
