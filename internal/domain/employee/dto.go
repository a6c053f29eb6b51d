package employee

import (
	"github.com/asistapp/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

func (r UpdateEmployeeRequest) Validate() error {
	return CreateEmployeeRequest(r).Validate()
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	CreatedAt  string `json:"created_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Department: e.Department,
		Position:   e.Position,
		CreatedAt:  e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
