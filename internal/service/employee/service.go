package employee

import (
	"context"
	"fmt"

	"github.com/asistapp/attendance-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:       req.Name,
		Department: req.Department,
		Position:   req.Position,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee.ToResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService. Identity is immutable;
// only name, department and position change.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.Update(ctx, id, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService. The repository
// cascades to the employee's attendance records.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}
