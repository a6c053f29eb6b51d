package http

import (
	"encoding/json"
	"net/http"

	"github.com/asistapp/attendance-backend-go/internal/domain/scan"
	"github.com/asistapp/attendance-backend-go/internal/handler/http/response"
)

type ScanHandler interface {
	Scan(w http.ResponseWriter, r *http.Request)
}

type scanHandlerImpl struct {
	scanService scan.ScanService
}

func NewScanHandler(scanService scan.ScanService) ScanHandler {
	return &scanHandlerImpl{
		scanService: scanService,
	}
}

// Scan implements ScanHandler.
func (h *scanHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	var req scan.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.scanService.Scan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Result == scan.ResultDuplicate {
		response.SuccessWithMessage(w, "Attendance already recorded today", result)
		return
	}

	response.Created(w, "Attendance recorded", result)
}
