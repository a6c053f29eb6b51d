package attendance

import (
	"time"
)

// Record is one attendance event for an employee on a calendar day.
// At most one record exists per (employee, date) pair; a second write for the
// same pair replaces the first in place. Absence is never stored; an employee
// with no record for a date is absent by definition.
type Record struct {
	ID         string
	EmployeeID string
	Date       string // calendar day, "2006-01-02"
	Status     Status
	Time       string // time of day of the event, "15:04"
	Notes      string
	RecordedAt time.Time // last-write timestamp
}

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	// StatusAbsent is a derived value only; it appears in stats and report
	// rows but is never persisted as a record status.
	StatusAbsent Status = "absent"
)
