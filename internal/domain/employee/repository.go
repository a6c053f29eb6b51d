package employee

import "context"

// EmployeeRepository defines data access methods for employees.
// List returns employees in the store's natural order; callers that render
// directories or reports rely on that order being stable.
type EmployeeRepository interface {
	// List retrieves all employees
	List(ctx context.Context) ([]Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// Create creates a new employee; the store assigns ID and creation timestamp
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// Update updates name, department and position of an existing employee
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error

	// Delete removes an employee and cascades to their attendance records.
	// The cleanup is the store's responsibility, not a database constraint.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every employee. Used by backup import.
	DeleteAll(ctx context.Context) error
}
