package employee

import "context"

// EmployeeService defines business logic for employee management
type EmployeeService interface {
	// ListEmployees retrieves all employees in directory order
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee registers a new employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee edits name, department and position
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee and all of their attendance records
	DeleteEmployee(ctx context.Context, id string) error
}
