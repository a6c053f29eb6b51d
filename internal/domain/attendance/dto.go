package attendance

import (
	"github.com/asistapp/attendance-backend-go/internal/pkg/validator"
)

// MarkRequest is a manual attendance submission. Time is optional; the
// service substitutes the current time of day when it is empty.
type MarkRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Time       string `json:"time,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

func (r MarkRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	switch Status(r.Status) {
	case StatusPresent, StatusLate:
	default:
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be present or late"})
	}
	if r.Time != "" && !validator.IsValidTimeOfDay(r.Time) {
		errs = append(errs, validator.ValidationError{Field: "time", Message: "time must be HH:MM"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Department   string `json:"department,omitempty"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	Time         string `json:"time"`
	Notes        string `json:"notes,omitempty"`
	RecordedAt   string `json:"recorded_at"`
}

func ToResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       r.Date,
		Status:     string(r.Status),
		Time:       r.Time,
		Notes:      r.Notes,
		RecordedAt: r.RecordedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
