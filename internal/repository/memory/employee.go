package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/asistapp/attendance-backend-go/internal/domain/employee"
)

type employeeCollection struct {
	store *Store
}

// List implements employee.EmployeeRepository.
func (c *employeeCollection) List(ctx context.Context) ([]employee.Employee, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	out := make([]employee.Employee, len(c.store.employees))
	copy(out, c.store.employees)
	return out, nil
}

// GetByID implements employee.EmployeeRepository.
func (c *employeeCollection) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	for _, e := range c.store.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// Create implements employee.EmployeeRepository.
func (c *employeeCollection) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	newEmployee.ID = uuid.NewString()
	newEmployee.CreatedAt = c.store.now()
	c.store.employees = append(c.store.employees, newEmployee)
	return newEmployee, nil
}

// Update implements employee.EmployeeRepository.
func (c *employeeCollection) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	for i := range c.store.employees {
		if c.store.employees[i].ID == id {
			c.store.employees[i].Name = req.Name
			c.store.employees[i].Department = req.Department
			c.store.employees[i].Position = req.Position
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

// Delete implements employee.EmployeeRepository, cascading to the
// employee's attendance records.
func (c *employeeCollection) Delete(ctx context.Context, id string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	idx := -1
	for i := range c.store.employees {
		if c.store.employees[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return employee.ErrEmployeeNotFound
	}

	c.store.employees = append(c.store.employees[:idx], c.store.employees[idx+1:]...)

	kept := c.store.records[:0]
	for _, r := range c.store.records {
		if r.EmployeeID != id {
			kept = append(kept, r)
		}
	}
	c.store.records = kept
	return nil
}

// DeleteAll implements employee.EmployeeRepository.
func (c *employeeCollection) DeleteAll(ctx context.Context) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	c.store.employees = nil
	return nil
}
