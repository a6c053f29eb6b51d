package scan

import "context"

// ScanService turns a decoded QR text into an attendance record.
type ScanService interface {
	// Scan resolves the text against the employee directory, rejects
	// duplicate same-day scans, classifies the arrival against the current
	// settings and commits through the attendance upsert. The sequence is a
	// read-then-conditionally-write; no stronger isolation is provided.
	Scan(ctx context.Context, req ScanRequest) (Outcome, error)
}
