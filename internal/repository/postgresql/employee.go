package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/asistapp/attendance-backend-go/internal/domain/employee"
	"github.com/asistapp/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// List implements employee.EmployeeRepository. Ordered by creation so the
// directory order is stable; reports and the freeform QR tie-break depend
// on it.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, department, position, created_at
		FROM employees
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Department, &emp.Position, &emp.CreatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, department, position, created_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(&emp.ID, &emp.Name, &emp.Department, &emp.Position, &emp.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}
	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (id, name, department, position, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, NOW())
		RETURNING id, name, department, position, created_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query, newEmployee.Name, newEmployee.Department, newEmployee.Position).Scan(
		&created.ID, &created.Name, &created.Department, &created.Position, &created.CreatedAt,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $1, department = $2, position = $3
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, req.Name, req.Department, req.Position, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee %s: %w", id, err)
	}
	return nil
}

// Delete implements employee.EmployeeRepository. The employee row and their
// attendance rows go in one transaction so the cascade is all or nothing.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	return WithTransaction(ctx, e.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, e.db)

		if _, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE employee_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete attendance for employee %s: %w", id, err)
		}

		tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete employee %s: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return employee.ErrEmployeeNotFound
		}
		return nil
	})
}

// DeleteAll implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, e.db)

	if _, err := q.Exec(ctx, `DELETE FROM employees`); err != nil {
		return fmt.Errorf("failed to delete employees: %w", err)
	}
	return nil
}
