package http

import (
	"fmt"
	"net/http"

	"github.com/attendo-hq/attendance-backend-go/internal/domain/report"
	"github.com/attendo-hq/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	AttendanceReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// AttendanceReport implements ReportHandler.
func (h *reportHandlerImpl) AttendanceReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := report.AttendanceReportRequest{
		From:   query.Get("from"),
		To:     query.Get("to"),
		Format: query.Get("format"),
	}

	doc, err := h.reportService.AttendanceReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Data)
}
