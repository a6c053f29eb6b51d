package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/asistapp/attendance-backend-go/internal/domain/attendance"
	"github.com/asistapp/attendance-backend-go/internal/domain/backup"
	"github.com/asistapp/attendance-backend-go/internal/domain/employee"
	"github.com/asistapp/attendance-backend-go/internal/domain/settings"
)

type BackupServiceImpl struct {
	employeeRepo    employee.EmployeeRepository
	attendanceRepo  attendance.AttendanceRepository
	settingsService settings.SettingsService
	now             func() time.Time
}

func NewBackupService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	settingsService settings.SettingsService,
) backup.BackupService {
	return &BackupServiceImpl{
		employeeRepo:    employeeRepo,
		attendanceRepo:  attendanceRepo,
		settingsService: settingsService,
		now:             time.Now,
	}
}

// Export implements backup.BackupService.
func (s *BackupServiceImpl) Export(ctx context.Context) (backup.Snapshot, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	cfg, err := s.settingsService.Get(ctx)
	if err != nil {
		return backup.Snapshot{}, err
	}

	snap := backup.Snapshot{
		Settings:   cfg,
		ExportedAt: s.now().Format(time.RFC3339),
		Employees:  make([]backup.EmployeeRecord, 0, len(employees)),
		Attendance: make([]backup.AttendanceRecord, 0, len(records)),
	}
	for _, e := range employees {
		snap.Employees = append(snap.Employees, backup.EmployeeRecord{
			ID:         e.ID,
			Name:       e.Name,
			Department: e.Department,
			Position:   e.Position,
			CreatedAt:  e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	for _, r := range records {
		snap.Attendance = append(snap.Attendance, backup.FromRecord(r))
	}

	return snap, nil
}

// Import implements backup.BackupService. The store assigns fresh employee
// IDs, so attendance rows are remapped from the snapshot's IDs before being
// re-created. Rows naming an employee absent from the snapshot are dropped.
func (s *BackupServiceImpl) Import(ctx context.Context, snap backup.Snapshot) error {
	if err := s.attendanceRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear attendance: %w", err)
	}
	if err := s.employeeRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear employees: %w", err)
	}

	idMap := make(map[string]string, len(snap.Employees))
	for _, e := range snap.Employees {
		created, err := s.employeeRepo.Create(ctx, employee.Employee{
			Name:       e.Name,
			Department: e.Department,
			Position:   e.Position,
		})
		if err != nil {
			return fmt.Errorf("failed to import employee %q: %w", e.Name, err)
		}
		idMap[e.ID] = created.ID
	}

	for _, r := range snap.Attendance {
		employeeID, ok := idMap[r.EmployeeID]
		if !ok {
			continue
		}
		recordedAt, err := time.Parse(time.RFC3339, r.RecordedAt)
		if err != nil {
			recordedAt = s.now()
		}
		if _, err := s.attendanceRepo.Create(ctx, attendance.Record{
			EmployeeID: employeeID,
			Date:       r.Date,
			Status:     attendance.Status(r.Status),
			Time:       r.Time,
			Notes:      r.Notes,
			RecordedAt: recordedAt,
		}); err != nil {
			return fmt.Errorf("failed to import attendance for %s: %w", r.Date, err)
		}
	}

	if err := s.settingsService.Restore(ctx, snap.Settings); err != nil {
		return fmt.Errorf("failed to restore settings: %w", err)
	}

	return nil
}
