package qr

import "fmt"

// NoMatchError reports a scan that matched no employee. Raw keeps the scanned
// text so the UI can show what was read.
type NoMatchError struct {
	Raw string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no employee matches scanned code %q", e.Raw)
}
