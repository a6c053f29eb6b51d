package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/asistapp/attendance-backend-go/internal/domain/attendance"
	"github.com/asistapp/attendance-backend-go/internal/domain/employee"
	"github.com/asistapp/attendance-backend-go/internal/domain/report"
	"github.com/asistapp/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*ReportServiceImpl, employee.EmployeeRepository, attendance.AttendanceRepository) {
	store := memory.NewStore()
	employeeRepo := store.Employees()
	attendanceRepo := store.Attendance()
	svc := &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		now:            func() time.Time { return time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC) },
	}
	return svc, employeeRepo, attendanceRepo
}

func createEmployee(t *testing.T, repo employee.EmployeeRepository, name, department string) employee.Employee {
	emp, err := repo.Create(context.Background(), employee.Employee{
		Name:       name,
		Department: department,
		Position:   "Bailarina",
	})
	require.NoError(t, err)
	return emp
}

func mark(t *testing.T, repo attendance.AttendanceRepository, employeeID, date string, status attendance.Status) {
	_, err := repo.Create(context.Background(), attendance.Record{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
		Time:       "09:00",
	})
	require.NoError(t, err)
}

func TestRangeStats(t *testing.T) {
	ctx := context.Background()
	svc, employeeRepo, attendanceRepo := newTestService(t)

	// Three day range. A attends all three days, one of them late.
	// B attends one day and misses two.
	a := createEmployee(t, employeeRepo, "Ana Quispe", "Danza")
	b := createEmployee(t, employeeRepo, "Carlos Mamani", "Música")

	mark(t, attendanceRepo, a.ID, "2024-03-10", attendance.StatusPresent)
	mark(t, attendanceRepo, a.ID, "2024-03-11", attendance.StatusLate)
	mark(t, attendanceRepo, a.ID, "2024-03-12", attendance.StatusPresent)
	mark(t, attendanceRepo, b.ID, "2024-03-11", attendance.StatusPresent)

	result, err := svc.RangeStats(ctx, report.RangeReportRequest{
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalDays)
	assert.Equal(t, 2, result.TotalEmployees)
	assert.Equal(t, 3, result.PresentDays)
	assert.Equal(t, 1, result.LateDays)
	assert.Equal(t, 2, result.AbsentDays)
	// 4 attended slots out of 6.
	assert.InDelta(t, 66.7, result.AttendanceRate, 0.001)

	require.Len(t, result.EmployeeStats, 2)

	statsA := result.EmployeeStats[0]
	assert.Equal(t, a.ID, statsA.EmployeeID)
	assert.Equal(t, 2, statsA.Present)
	assert.Equal(t, 1, statsA.Late)
	assert.Equal(t, 0, statsA.Absent)
	assert.InDelta(t, 100.0, statsA.AttendanceRate, 0.001)

	statsB := result.EmployeeStats[1]
	assert.Equal(t, b.ID, statsB.EmployeeID)
	assert.Equal(t, 1, statsB.Present)
	assert.Equal(t, 0, statsB.Late)
	assert.Equal(t, 2, statsB.Absent)
	// 1 of 3 days, rounded to one decimal.
	assert.InDelta(t, 33.3, statsB.AttendanceRate, 0.001)
}

func TestRangeStats_SingleDay(t *testing.T) {
	ctx := context.Background()
	svc, employeeRepo, attendanceRepo := newTestService(t)
	emp := createEmployee(t, employeeRepo, "Ana Quispe", "Danza")
	mark(t, attendanceRepo, emp.ID, "2024-03-10", attendance.StatusPresent)

	result, err := svc.RangeStats(ctx, report.RangeReportRequest{
		StartDate: "2024-03-10",
		EndDate:   "2024-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalDays)
	assert.InDelta(t, 100.0, result.AttendanceRate, 0.001)
}

func TestRangeStats_NoEmployees(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	result, err := svc.RangeStats(ctx, report.RangeReportRequest{
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalEmployees)
	assert.Zero(t, result.AttendanceRate)
	assert.Empty(t, result.EmployeeStats)
}

func TestRangeStats_InvertedRange(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	_, err := svc.RangeStats(ctx, report.RangeReportRequest{
		StartDate: "2024-03-12",
		EndDate:   "2024-03-10",
	})
	assert.Error(t, err)
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	svc, employeeRepo, attendanceRepo := newTestService(t)

	// Name with a comma must come back intact through CSV quoting.
	emp := createEmployee(t, employeeRepo, "Quispe, Ana", "Danza")
	mark(t, attendanceRepo, emp.ID, "2024-03-10", attendance.StatusPresent)

	var buf bytes.Buffer
	err := svc.ExportCSV(ctx, report.RangeReportRequest{
		StartDate: "2024-03-10",
		EndDate:   "2024-03-10",
	}, &buf)
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Date", "Employee", "Department", "Position", "Status", "Time", "Notes"}, rows[0])
	assert.Equal(t, "2024-03-10", rows[1][0])
	assert.Equal(t, "Quispe, Ana", rows[1][1])
	assert.Equal(t, "present", rows[1][4])
}

func TestExportCSV_SkipsDeletedEmployees(t *testing.T) {
	ctx := context.Background()
	svc, employeeRepo, attendanceRepo := newTestService(t)
	emp := createEmployee(t, employeeRepo, "Ana Quispe", "Danza")
	mark(t, attendanceRepo, emp.ID, "2024-03-10", attendance.StatusPresent)
	mark(t, attendanceRepo, "ghost", "2024-03-10", attendance.StatusPresent)

	var buf bytes.Buffer
	err := svc.ExportCSV(ctx, report.RangeReportRequest{
		StartDate: "2024-03-10",
		EndDate:   "2024-03-10",
	}, &buf)
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 2) // header plus the surviving employee
}
