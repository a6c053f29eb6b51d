package http

import (
	"encoding/json"
	"net/http"

	"github.com/asistapp/attendance-backend-go/internal/domain/settings"
	"github.com/asistapp/attendance-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService: settingsService,
	}
}

// Get implements SettingsHandler.
func (h *settingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements SettingsHandler.
func (h *settingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.settingsService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated", result)
}
