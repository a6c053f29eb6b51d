package report

import (
	"context"
	"io"
)

// ReportService aggregates attendance over date ranges and exports it.
type ReportService interface {
	// RangeStats computes the per-employee and overall attendance report for
	// an inclusive date range
	RangeStats(ctx context.Context, req RangeReportRequest) (RangeReport, error)

	// ExportCSV writes the range's records as CSV: one row per record,
	// columns Date, Employee, Department, Position, Status, Time, Notes.
	// Records whose employee no longer exists are skipped.
	ExportCSV(ctx context.Context, req RangeReportRequest, w io.Writer) error
}
