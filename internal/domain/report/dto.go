package report

import (
	"github.com/asistapp/attendance-backend-go/internal/pkg/validator"
)

type RangeReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r RangeReportRequest) Validate() error {
	var errs validator.ValidationErrors
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeStats is one employee's attendance over the report range.
// Absent counts days without any record: a record of any status, even an
// unrecognized one, marks its day as accounted for. Only present and late
// enter the rate numerator, so an unrecognized status lowers neither the
// absent count nor raises the rate. That asymmetry is inherited behavior,
// kept deliberately.
type EmployeeStats struct {
	EmployeeID     string  `json:"employee_id"`
	Name           string  `json:"name"`
	Department     string  `json:"department"`
	Position       string  `json:"position"`
	Present        int     `json:"present"`
	Late           int     `json:"late"`
	Absent         int     `json:"absent"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// RangeReport aggregates attendance over an inclusive date range.
// EmployeeStats keeps the directory's natural order.
type RangeReport struct {
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	TotalDays      int             `json:"total_days"`
	TotalEmployees int             `json:"total_employees"`
	PresentDays    int             `json:"present_days"`
	LateDays       int             `json:"late_days"`
	AbsentDays     int             `json:"absent_days"`
	AttendanceRate float64         `json:"attendance_rate"`
	GeneratedAt    string          `json:"generated_at"`
	EmployeeStats  []EmployeeStats `json:"employee_stats"`
}

// ExportRow is one line of the CSV report export.
type ExportRow struct {
	Date       string
	Employee   string
	Department string
	Position   string
	Status     string
	Time       string
	Notes      string
}
