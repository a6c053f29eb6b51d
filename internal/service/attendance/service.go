package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/asistapp/attendance-backend-go/internal/domain/attendance"
	"github.com/asistapp/attendance-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

// Mark implements attendance.AttendanceService. One record per
// (employee, date): an existing record is replaced in place, keeping its
// identity; otherwise a new one is created. Either way the write is a single
// conditional operation against the store, so a rejected write leaves the
// previous state untouched.
func (a *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := a.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	eventTime := req.Time
	if eventTime == "" {
		eventTime = a.now().Format("15:04")
	}

	record := attendance.Record{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     attendance.Status(req.Status),
		Time:       eventTime,
		Notes:      req.Notes,
		RecordedAt: a.now(),
	}

	existing, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to query attendance for upsert: %w", err)
	}

	if existing != nil {
		if err := a.attendanceRepo.Replace(ctx, existing.ID, record); err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to replace attendance record: %w", err)
		}
		record.ID = existing.ID
	} else {
		record, err = a.attendanceRepo.Create(ctx, record)
		if err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
		}
	}

	resp := attendance.ToResponse(record)
	resp.EmployeeName = emp.Name
	resp.Department = emp.Department
	return resp, nil
}

// GetByDate implements attendance.AttendanceService. Records whose employee
// no longer exists are skipped rather than failing the listing.
func (a *AttendanceServiceImpl) GetByDate(ctx context.Context, date string) ([]attendance.RecordResponse, error) {
	records, err := a.attendanceRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance by date: %w", err)
	}

	directory, err := a.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	byID := make(map[string]employee.Employee, len(directory))
	for _, e := range directory {
		byID[e.ID] = e
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		emp, ok := byID[rec.EmployeeID]
		if !ok {
			continue
		}
		resp := attendance.ToResponse(rec)
		resp.EmployeeName = emp.Name
		resp.Department = emp.Department
		responses = append(responses, resp)
	}
	return responses, nil
}
