package http

import (
	"encoding/json"
	"net/http"

	"github.com/attendo-hq/attendance-backend-go/internal/domain/setting"
	"github.com/attendo-hq/attendance-backend-go/internal/handler/http/response"
)

type SettingHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type settingHandlerImpl struct {
	settingService setting.Service
}

func NewSettingHandler(settingService setting.Service) SettingHandler {
	return &settingHandlerImpl{
		settingService: settingService,
	}
}

// Get implements SettingHandler.
func (h *settingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements SettingHandler.
func (h *settingHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req setting.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.settingService.UpdateSettings(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.settingService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated", result)
}
