package attendance

import "context"

// AttendanceService defines business logic for attendance marking
type AttendanceService interface {
	// Mark records attendance for an employee on a date, replacing any
	// existing record for the same (employee, date) pair in place
	Mark(ctx context.Context, req MarkRequest) (RecordResponse, error)

	// GetByDate lists the records of a calendar day, enriched with employee
	// names; records whose employee no longer exists are skipped
	GetByDate(ctx context.Context, date string) ([]RecordResponse, error)
}
