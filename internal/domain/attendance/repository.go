package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
// Dates are ISO calendar-day strings; range queries use inclusive bounds and
// compare dates lexicographically, which for this format matches calendar
// order.
type AttendanceRepository interface {
	// List retrieves every attendance record
	List(ctx context.Context) ([]Record, error)

	// GetByEmployeeAndDate retrieves the record for an employee on a date.
	// Returns nil (no error) when the pair has no record yet; this is what
	// the upsert and the scan dedup branch on.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*Record, error)

	// GetByDate retrieves all records for a calendar day
	GetByDate(ctx context.Context, date string) ([]Record, error)

	// GetByDateRange retrieves all records with start <= date <= end
	GetByDateRange(ctx context.Context, start, end string) ([]Record, error)

	// Create creates a new record; the store assigns its ID
	Create(ctx context.Context, record Record) (Record, error)

	// Replace overwrites status, time, notes and recorded-at of an existing
	// record, keeping its identity
	Replace(ctx context.Context, id string, record Record) error

	// DeleteAll removes every record. Used by backup import.
	DeleteAll(ctx context.Context) error
}
