package backup

import (
	"github.com/asistapp/attendance-backend-go/internal/domain/attendance"
	"github.com/asistapp/attendance-backend-go/internal/domain/settings"
)

// Snapshot is the full-data JSON export: everything needed to rebuild the
// store plus the local preferences.
type Snapshot struct {
	Employees  []EmployeeRecord   `json:"employees"`
	Attendance []AttendanceRecord `json:"attendance"`
	Settings   settings.Settings  `json:"settings"`
	ExportedAt string             `json:"exported_at"`
}

// EmployeeRecord is an employee as serialized in a snapshot. IDs are kept so
// attendance references stay resolvable, but the store assigns fresh IDs on
// import.
type EmployeeRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	CreatedAt  string `json:"created_at"`
}

// AttendanceRecord is an attendance record as serialized in a snapshot.
type AttendanceRecord struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Time       string `json:"time"`
	Notes      string `json:"notes,omitempty"`
	RecordedAt string `json:"recorded_at"`
}

// FromRecord converts a store record for serialization.
func FromRecord(r attendance.Record) AttendanceRecord {
	return AttendanceRecord{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       r.Date,
		Status:     string(r.Status),
		Time:       r.Time,
		Notes:      r.Notes,
		RecordedAt: r.RecordedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
