package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/attendo-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/attendo-hq/attendance-backend-go/internal/domain/report"
	"github.com/jung-kurt/gofpdf"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.Repository
}

func NewReportService(attendanceRepo attendance.Repository) report.Service {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
	}
}

// AttendanceReport implements report.Service.
func (s *ReportServiceImpl) AttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (report.Document, error) {
	if err := req.Validate(); err != nil {
		return report.Document{}, err
	}

	records, err := s.attendanceRepo.ListRange(ctx, req.ParsedFrom, req.ParsedTo)
	if err != nil {
		return report.Document{}, fmt.Errorf("failed to load attendance records: %w", err)
	}

	rangeLabel := fmt.Sprintf("%s_%s", req.ParsedFrom.Format("2006-01-02"), req.ParsedTo.Format("2006-01-02"))

	switch req.Format {
	case report.FormatPDF:
		data, err := renderPDF(records, req)
		if err != nil {
			return report.Document{}, fmt.Errorf("failed to render PDF report: %w", err)
		}
		return report.Document{
			Filename:    "attendance_" + rangeLabel + ".pdf",
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		data, err := renderCSV(records)
		if err != nil {
			return report.Document{}, fmt.Errorf("failed to render CSV report: %w", err)
		}
		return report.Document{
			Filename:    "attendance_" + rangeLabel + ".csv",
			ContentType: "text/csv",
			Data:        data,
		}, nil
	}
}

func renderCSV(records []attendance.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"date", "employee_id", "employee_name", "status", "check_in", "check_out", "remarks"}); err != nil {
		return nil, err
	}

	for _, rec := range records {
		if err := w.Write([]string{
			rec.Date.Format("2006-01-02"),
			rec.EmployeeID,
			strValue(rec.EmployeeName),
			string(rec.Status),
			strValue(rec.CheckInTime),
			strValue(rec.CheckOutTime),
			rec.Remarks,
		}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderPDF(records []attendance.Record, req report.AttendanceReportRequest) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Attendance Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", req.ParsedFrom.Format("2006-01-02"), req.ParsedTo.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(24, 8, "Date", "1", 0, "", false, 0, "")
	pdf.CellFormat(45, 8, "Employee", "1", 0, "", false, 0, "")
	pdf.CellFormat(20, 8, "Status", "1", 0, "", false, 0, "")
	pdf.CellFormat(22, 8, "Check In", "1", 0, "", false, 0, "")
	pdf.CellFormat(22, 8, "Check Out", "1", 0, "", false, 0, "")
	pdf.CellFormat(57, 8, "Remarks", "1", 1, "", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, rec := range records {
		pdf.CellFormat(24, 7, rec.Date.Format("2006-01-02"), "1", 0, "", false, 0, "")
		pdf.CellFormat(45, 7, strValue(rec.EmployeeName), "1", 0, "", false, 0, "")
		pdf.CellFormat(20, 7, string(rec.Status), "1", 0, "", false, 0, "")
		pdf.CellFormat(22, 7, strValue(rec.CheckInTime), "1", 0, "", false, 0, "")
		pdf.CellFormat(22, 7, strValue(rec.CheckOutTime), "1", 0, "", false, 0, "")
		pdf.CellFormat(57, 7, rec.Remarks, "1", 1, "", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
