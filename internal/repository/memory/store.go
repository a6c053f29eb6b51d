// Package memory is an in-process implementation of the store contract. It
// backs the service tests and the zero-setup demo mode (STORE_DRIVER=memory).
// Documents keep insertion order, which is the store's natural order.
package memory

import (
	"sync"
	"time"

	"github.com/asistapp/attendance-backend-go/internal/domain/attendance"
	"github.com/asistapp/attendance-backend-go/internal/domain/employee"
)

type Store struct {
	mu        sync.RWMutex
	employees []employee.Employee
	records   []attendance.Record
	now       func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// Employees returns the employee collection as a repository.
func (s *Store) Employees() employee.EmployeeRepository {
	return &employeeCollection{store: s}
}

// Attendance returns the attendance collection as a repository.
func (s *Store) Attendance() attendance.AttendanceRepository {
	return &attendanceCollection{store: s}
}
