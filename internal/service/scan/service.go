package scan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/asistapp/attendance-backend-go/internal/domain/attendance"
	"github.com/asistapp/attendance-backend-go/internal/domain/employee"
	"github.com/asistapp/attendance-backend-go/internal/domain/qr"
	"github.com/asistapp/attendance-backend-go/internal/domain/scan"
	"github.com/asistapp/attendance-backend-go/internal/domain/settings"
	"github.com/asistapp/attendance-backend-go/internal/pkg/sse"
)

// TopicAttendance is the SSE topic dashboards subscribe to for refreshes.
const TopicAttendance = "attendance"

type ScanServiceImpl struct {
	employeeRepo      employee.EmployeeRepository
	attendanceRepo    attendance.AttendanceRepository
	attendanceService attendance.AttendanceService
	settingsService   settings.SettingsService
	hub               *sse.Hub
	now               func() time.Time
}

func NewScanService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	attendanceService attendance.AttendanceService,
	settingsService settings.SettingsService,
	hub *sse.Hub,
) scan.ScanService {
	return &ScanServiceImpl{
		employeeRepo:      employeeRepo,
		attendanceRepo:    attendanceRepo,
		attendanceService: attendanceService,
		settingsService:   settingsService,
		hub:               hub,
		now:               time.Now,
	}
}

// Scan implements scan.ScanService: resolve, deduplicate, classify, commit.
func (s *ScanServiceImpl) Scan(ctx context.Context, req scan.ScanRequest) (scan.Outcome, error) {
	if err := req.Validate(); err != nil {
		return scan.Outcome{}, err
	}

	directory, err := s.employeeRepo.List(ctx)
	if err != nil {
		return scan.Outcome{}, fmt.Errorf("failed to list employees: %w", err)
	}

	emp, err := qr.ResolveScan(req.RawText, directory)
	if err != nil {
		return scan.Outcome{}, err
	}

	now := s.now()
	today := now.Format("2006-01-02")

	// Repeated scans of the same badge on the same day are recognized, not
	// recorded again.
	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, today)
	if err != nil {
		return scan.Outcome{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return scan.Outcome{
			Result:       scan.ResultDuplicate,
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Status:       string(existing.Status),
			Time:         existing.Time,
		}, nil
	}

	cfg, err := s.settingsService.Get(ctx)
	if err != nil {
		return scan.Outcome{}, fmt.Errorf("failed to load settings: %w", err)
	}
	workStart, err := attendance.ParseTimeOfDay(cfg.WorkStartTime)
	if err != nil {
		return scan.Outcome{}, fmt.Errorf("configured work start time is invalid: %w", err)
	}

	eventTime := attendance.TimeOfDayFromClock(now)
	status := attendance.Classify(eventTime, workStart, cfg.LateThresholdMinutes)

	recorded, err := s.attendanceService.Mark(ctx, attendance.MarkRequest{
		EmployeeID: emp.ID,
		Date:       today,
		Status:     string(status),
		Time:       eventTime.String(),
		Notes:      "scanned",
	})
	if err != nil {
		return scan.Outcome{}, err
	}

	outcome := scan.Outcome{
		Result:       scan.ResultRecorded,
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Status:       recorded.Status,
		Time:         recorded.Time,
	}

	s.hub.Publish(TopicAttendance, sse.Event{
		Topic: TopicAttendance,
		Event: "attendance.recorded",
		Data:  outcome,
	})
	slog.Info("attendance recorded from scan",
		"employee_id", emp.ID,
		"status", outcome.Status,
		"time", outcome.Time,
	)

	return outcome, nil
}
