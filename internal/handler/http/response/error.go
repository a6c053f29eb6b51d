package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/asistapp/attendance-backend-go/internal/domain/attendance"
	"github.com/asistapp/attendance-backend-go/internal/domain/auth"
	"github.com/asistapp/attendance-backend-go/internal/domain/employee"
	"github.com/asistapp/attendance-backend-go/internal/domain/qr"
	"github.com/asistapp/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var noMatch *qr.NoMatchError
	if errors.As(err, &noMatch) {
		NotFound(w, noMatch.Error())
		return
	}

	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
