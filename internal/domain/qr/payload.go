// Package qr implements the badge payload contract: the JSON token embedded
// in employee QR images, and the matching of scanned text back to a known
// employee. Rendering the token into an actual image is the browser's job.
package qr

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/asistapp/attendance-backend-go/internal/domain/employee"
)

const PayloadKind = "employee"

// Payload is the structured token carried by a QR image.
type Payload struct {
	Kind          string `json:"kind"`
	EmployeeID    string `json:"employeeId"`
	DisplayName   string `json:"displayName"`
	IssuedAtMilli int64  `json:"issuedAtMillis"`
}

// EncodePayload serializes an employee identity token, stamped with the
// current time.
func EncodePayload(e employee.Employee) (string, error) {
	return encodePayloadAt(e, time.Now())
}

func encodePayloadAt(e employee.Employee, now time.Time) (string, error) {
	raw, err := json.Marshal(Payload{
		Kind:          PayloadKind,
		EmployeeID:    e.ID,
		DisplayName:   e.Name,
		IssuedAtMilli: now.UnixMilli(),
	})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ResolveScan matches scanned text against the employee directory.
//
// Structured payloads are tried first: if rawText parses as a Payload with
// kind "employee" and its employee ID is known, that employee wins. Anything
// else falls back to freeform matching: an exact ID match, or a
// case-insensitive substring match on the display name, first hit in
// directory order. Codes printed outside the system are usually plain ID or
// name labels, so the fallback keeps them scannable.
//
// A miss returns a NoMatchError carrying the raw text for display.
func ResolveScan(rawText string, directory []employee.Employee) (employee.Employee, error) {
	var p Payload
	if err := json.Unmarshal([]byte(rawText), &p); err == nil && p.Kind == PayloadKind && p.EmployeeID != "" {
		for _, e := range directory {
			if e.ID == p.EmployeeID {
				return e, nil
			}
		}
		// Structured but unknown, likely a badge of a deleted employee.
		// Fall through so the miss reports the raw text like any other.
	}

	needle := strings.ToLower(rawText)
	for _, e := range directory {
		if e.ID == rawText || strings.Contains(strings.ToLower(e.Name), needle) {
			return e, nil
		}
	}

	return employee.Employee{}, &NoMatchError{Raw: rawText}
}
