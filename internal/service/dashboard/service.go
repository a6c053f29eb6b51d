package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/asistapp/attendance-backend-go/internal/domain/attendance"
	"github.com/asistapp/attendance-backend-go/internal/domain/dashboard"
	"github.com/asistapp/attendance-backend-go/internal/domain/employee"
	"github.com/asistapp/attendance-backend-go/internal/pkg/validator"
)

type DashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// DailyStats implements dashboard.DashboardService. Absent is the complement:
// employees without a record for the date. present + late + absent always
// equals the employee total.
func (s *DashboardServiceImpl) DailyStats(ctx context.Context, date string) (dashboard.DailyStatsResponse, error) {
	if date == "" {
		date = s.now().Format("2006-01-02")
	} else if _, ok := validator.IsValidDate(date); !ok {
		return dashboard.DailyStatsResponse{}, validator.ValidationErrors{
			{Field: "date", Message: "date must be YYYY-MM-DD"},
		}
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return dashboard.DailyStatsResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := s.attendanceRepo.GetByDate(ctx, date)
	if err != nil {
		return dashboard.DailyStatsResponse{}, fmt.Errorf("failed to get attendance for %s: %w", date, err)
	}

	stats := dashboard.DailyStatsResponse{
		Date:           date,
		TotalEmployees: len(employees),
		Absent:         len(employees) - len(records),
	}
	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			stats.Present++
		case attendance.StatusLate:
			stats.Late++
		}
	}

	return stats, nil
}
