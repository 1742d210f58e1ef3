package http

import (
	"net/http"
	"time"

	"github.com/attendo-hq/attendance-backend-go/internal/domain/dashboard"
	"github.com/attendo-hq/attendance-backend-go/internal/handler/http/response"
	"github.com/attendo-hq/attendance-backend-go/internal/pkg/validator"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	DailySummary(w http.ResponseWriter, r *http.Request)
	DepartmentBreakdown(w http.ResponseWriter, r *http.Request)
	Trend(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetDashboard implements DashboardHandler.
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DailySummary implements DashboardHandler.
func (h *dashboardHandlerImpl) DailySummary(w http.ResponseWriter, r *http.Request) {
	date, ok := dateQueryParam(r, "date", time.Now().UTC())
	if !ok {
		response.BadRequest(w, "date must be YYYY-MM-DD", nil)
		return
	}

	result, err := h.dashboardService.DailySummary(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DepartmentBreakdown implements DashboardHandler.
func (h *dashboardHandlerImpl) DepartmentBreakdown(w http.ResponseWriter, r *http.Request) {
	date, ok := dateQueryParam(r, "date", time.Now().UTC())
	if !ok {
		response.BadRequest(w, "date must be YYYY-MM-DD", nil)
		return
	}

	result, err := h.dashboardService.DepartmentBreakdown(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Trend implements DashboardHandler.
func (h *dashboardHandlerImpl) Trend(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()

	to, ok := dateQueryParam(r, "to", now)
	if !ok {
		response.BadRequest(w, "to must be YYYY-MM-DD", nil)
		return
	}
	from, ok := dateQueryParam(r, "from", to.AddDate(0, 0, -6))
	if !ok {
		response.BadRequest(w, "from must be YYYY-MM-DD", nil)
		return
	}
	if to.Before(from) {
		response.BadRequest(w, "to must not be before from", nil)
		return
	}

	result, err := h.dashboardService.Trend(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// dateQueryParam reads a YYYY-MM-DD query parameter, falling back to def
// (truncated to midnight UTC) when absent. The second return value is false
// when the parameter is present but malformed.
func dateQueryParam(r *http.Request, name string, def time.Time) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Date(def.Year(), def.Month(), def.Day(), 0, 0, 0, 0, time.UTC), true
	}
	d, ok := validator.IsValidDate(raw)
	if !ok {
		return time.Time{}, false
	}
	return d, true
}
