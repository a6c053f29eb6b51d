package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/asistapp/attendance-backend-go/internal/domain/attendance"
)

type attendanceCollection struct {
	store *Store
}

// List implements attendance.AttendanceRepository.
func (c *attendanceCollection) List(ctx context.Context) ([]attendance.Record, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	out := make([]attendance.Record, len(c.store.records))
	copy(out, c.store.records)
	return out, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (c *attendanceCollection) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Record, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	for _, r := range c.store.records {
		if r.EmployeeID == employeeID && r.Date == date {
			rec := r
			return &rec, nil
		}
	}
	return nil, nil
}

// GetByDate implements attendance.AttendanceRepository.
func (c *attendanceCollection) GetByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	var out []attendance.Record
	for _, r := range c.store.records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

// GetByDateRange implements attendance.AttendanceRepository. Inclusive
// bounds; ISO dates compare lexicographically in calendar order.
func (c *attendanceCollection) GetByDateRange(ctx context.Context, start, end string) ([]attendance.Record, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	var out []attendance.Record
	for _, r := range c.store.records {
		if r.Date >= start && r.Date <= end {
			out = append(out, r)
		}
	}
	return out, nil
}

// Create implements attendance.AttendanceRepository.
func (c *attendanceCollection) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	record.ID = uuid.NewString()
	c.store.records = append(c.store.records, record)
	return record, nil
}

// Replace implements attendance.AttendanceRepository.
func (c *attendanceCollection) Replace(ctx context.Context, id string, record attendance.Record) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	for i := range c.store.records {
		if c.store.records[i].ID == id {
			c.store.records[i].Status = record.Status
			c.store.records[i].Time = record.Time
			c.store.records[i].Notes = record.Notes
			c.store.records[i].RecordedAt = record.RecordedAt
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

// DeleteAll implements attendance.AttendanceRepository.
func (c *attendanceCollection) DeleteAll(ctx context.Context) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	c.store.records = nil
	return nil
}
