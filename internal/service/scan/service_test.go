package scan

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/asistapp/attendance-backend-go/internal/domain/attendance"
	"github.com/asistapp/attendance-backend-go/internal/domain/employee"
	"github.com/asistapp/attendance-backend-go/internal/domain/qr"
	"github.com/asistapp/attendance-backend-go/internal/domain/scan"
	"github.com/asistapp/attendance-backend-go/internal/pkg/sse"
	"github.com/asistapp/attendance-backend-go/internal/repository/localfile"
	"github.com/asistapp/attendance-backend-go/internal/repository/memory"
	attendanceService "github.com/asistapp/attendance-backend-go/internal/service/attendance"
	settingsService "github.com/asistapp/attendance-backend-go/internal/service/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scanFixture struct {
	svc            *ScanServiceImpl
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	hub            *sse.Hub
}

// newScanFixture wires a scan service against the in-process store with a
// clock frozen at 2024-03-10 09:10. Default settings put work start at 09:00
// with a 15 minute threshold, so the frozen clock lands inside the window.
func newScanFixture(t *testing.T) scanFixture {
	store := memory.NewStore()
	employeeRepo := store.Employees()
	attendanceRepo := store.Attendance()

	settingsRepo := localfile.NewSettingsRepository(filepath.Join(t.TempDir(), "settings.json"))
	settingsSvc, err := settingsService.NewSettingsService(settingsRepo)
	require.NoError(t, err)

	hub := sse.NewHub()
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)

	svc := &ScanServiceImpl{
		employeeRepo:      employeeRepo,
		attendanceRepo:    attendanceRepo,
		attendanceService: attendanceSvc,
		settingsService:   settingsSvc,
		hub:               hub,
		now:               func() time.Time { return time.Date(2024, 3, 10, 9, 10, 0, 0, time.UTC) },
	}
	return scanFixture{svc: svc, employeeRepo: employeeRepo, attendanceRepo: attendanceRepo, hub: hub}
}

func (f scanFixture) createEmployee(t *testing.T, name string) employee.Employee {
	emp, err := f.employeeRepo.Create(context.Background(), employee.Employee{
		Name:       name,
		Department: "Danza",
		Position:   "Bailarina",
	})
	require.NoError(t, err)
	return emp
}

func TestScan_RecordsAttendance(t *testing.T) {
	ctx := context.Background()
	f := newScanFixture(t)
	emp := f.createEmployee(t, "Ana Quispe")

	payload, err := qr.EncodePayload(emp)
	require.NoError(t, err)

	outcome, err := f.svc.Scan(ctx, scan.ScanRequest{RawText: payload})
	require.NoError(t, err)

	assert.Equal(t, scan.ResultRecorded, outcome.Result)
	assert.Equal(t, emp.ID, outcome.EmployeeID)
	assert.Equal(t, "Ana Quispe", outcome.EmployeeName)
	assert.Equal(t, string(attendance.StatusPresent), outcome.Status)
	assert.Equal(t, "09:10", outcome.Time)

	record, err := f.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, "2024-03-10")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, attendance.StatusPresent, record.Status)
}

func TestScan_LateArrival(t *testing.T) {
	ctx := context.Background()
	f := newScanFixture(t)
	f.svc.now = func() time.Time { return time.Date(2024, 3, 10, 9, 16, 0, 0, time.UTC) }
	emp := f.createEmployee(t, "Carlos Mamani")

	outcome, err := f.svc.Scan(ctx, scan.ScanRequest{RawText: emp.ID})
	require.NoError(t, err)

	assert.Equal(t, scan.ResultRecorded, outcome.Result)
	assert.Equal(t, string(attendance.StatusLate), outcome.Status)
}

func TestScan_DuplicateSameDay(t *testing.T) {
	ctx := context.Background()
	f := newScanFixture(t)
	emp := f.createEmployee(t, "Ana Quispe")

	first, err := f.svc.Scan(ctx, scan.ScanRequest{RawText: emp.ID})
	require.NoError(t, err)
	require.Equal(t, scan.ResultRecorded, first.Result)

	// Second scan an hour later, past the threshold. The existing record
	// must survive untouched.
	f.svc.now = func() time.Time { return time.Date(2024, 3, 10, 10, 10, 0, 0, time.UTC) }

	second, err := f.svc.Scan(ctx, scan.ScanRequest{RawText: emp.ID})
	require.NoError(t, err)

	assert.Equal(t, scan.ResultDuplicate, second.Result)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Time, second.Time)

	records, err := f.attendanceRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "09:10", records[0].Time)
}

func TestScan_FreeformNameMatch(t *testing.T) {
	ctx := context.Background()
	f := newScanFixture(t)
	emp := f.createEmployee(t, "Maria Condori")

	outcome, err := f.svc.Scan(ctx, scan.ScanRequest{RawText: "condori"})
	require.NoError(t, err)
	assert.Equal(t, emp.ID, outcome.EmployeeID)
}

func TestScan_NoMatch(t *testing.T) {
	ctx := context.Background()
	f := newScanFixture(t)
	f.createEmployee(t, "Ana Quispe")

	_, err := f.svc.Scan(ctx, scan.ScanRequest{RawText: "zzz-unknown"})
	var noMatch *qr.NoMatchError
	require.ErrorAs(t, err, &noMatch)

	records, err := f.attendanceRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestScan_PublishesEvent(t *testing.T) {
	ctx := context.Background()
	f := newScanFixture(t)
	emp := f.createEmployee(t, "Ana Quispe")

	events, cleanup := f.hub.Subscribe(TopicAttendance)
	defer cleanup()

	_, err := f.svc.Scan(ctx, scan.ScanRequest{RawText: emp.ID})
	require.NoError(t, err)

	select {
	case event := <-events:
		assert.Equal(t, "attendance.recorded", event.Event)
	case <-time.After(time.Second):
		t.Fatal("expected an attendance event")
	}
}
