package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/asistapp/attendance-backend-go/internal/domain/attendance"
	"github.com/asistapp/attendance-backend-go/internal/handler/http/response"
	"github.com/asistapp/attendance-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	ListByDate(w http.ResponseWriter, r *http.Request)
	Mark(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ListByDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, ok := validator.IsValidDate(date); !ok {
		response.BadRequest(w, "Query parameter 'date' must be YYYY-MM-DD", nil)
		return
	}

	result, err := h.attendanceService.GetByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Mark implements AttendanceHandler.
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Mark(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", result)
}
