package http

import (
	"fmt"
	"net/http"

	"github.com/asistapp/attendance-backend-go/internal/domain/report"
	"github.com/asistapp/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	RangeStats(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func rangeRequestFromQuery(r *http.Request) report.RangeReportRequest {
	return report.RangeReportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
}

// RangeStats implements ReportHandler.
func (h *reportHandlerImpl) RangeStats(w http.ResponseWriter, r *http.Request) {
	req := rangeRequestFromQuery(r)

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.RangeStats(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportCSV implements ReportHandler. Validation happens before any byte is
// written so errors still go out as JSON.
func (h *reportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	req := rangeRequestFromQuery(r)

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance_%s_%s.csv", req.StartDate, req.EndDate)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.reportService.ExportCSV(r.Context(), req, w); err != nil {
		// Headers are already out; the truncated body is the only signal left.
		return
	}
}
