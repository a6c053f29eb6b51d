package scan

import (
	"github.com/asistapp/attendance-backend-go/internal/pkg/validator"
)

// ScanRequest carries the decoded text of one QR scan event.
type ScanRequest struct {
	RawText string `json:"raw_text"`
}

func (r ScanRequest) Validate() error {
	if validator.IsEmpty(r.RawText) {
		return validator.ValidationErrors{
			{Field: "raw_text", Message: "raw_text is required"},
		}
	}
	return nil
}

// Result is the terminal state of one scan.
type Result string

const (
	// ResultRecorded means attendance was written for the scanned employee.
	ResultRecorded Result = "recorded"
	// ResultDuplicate means the employee already had a record today; the
	// scan was recognized but nothing was written.
	ResultDuplicate Result = "duplicate"
)

// Outcome is what a completed scan reports back, ready for display.
type Outcome struct {
	Result       Result `json:"result"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Status       string `json:"status"`
	Time         string `json:"time"`
}
