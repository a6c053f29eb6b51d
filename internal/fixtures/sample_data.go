package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/asistapp/attendance-backend-go/internal/domain/attendance"
	"github.com/asistapp/attendance-backend-go/internal/domain/employee"
)

// SampleEmployees is the demo roster of the folkloric troupe the app was
// built for.
var SampleEmployees = []employee.Employee{
	{Name: "Ana Quispe", Department: "Danza Folklórica", Position: "Bailarina Principal"},
	{Name: "Carlos Mamani", Department: "Música Tradicional", Position: "Músico - Zampoña"},
	{Name: "María Condori", Department: "Danza Folklórica", Position: "Coreógrafa"},
	{Name: "José Huanca", Department: "Música Tradicional", Position: "Músico - Bombo"},
	{Name: "Rosa Choque", Department: "Vestuario", Position: "Coordinadora de Trajes"},
}

// SeedIfEmpty loads the sample roster plus a few of today's records when the
// store has no employees yet. A no-op otherwise.
func SeedIfEmpty(ctx context.Context, employeeRepo employee.EmployeeRepository, attendanceRepo attendance.AttendanceRepository) error {
	existing, err := employeeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing employees: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	created := make([]employee.Employee, 0, len(SampleEmployees))
	for _, emp := range SampleEmployees {
		c, err := employeeRepo.Create(ctx, emp)
		if err != nil {
			return fmt.Errorf("failed to seed employee %q: %w", emp.Name, err)
		}
		created = append(created, c)
	}

	now := time.Now()
	today := now.Format("2006-01-02")
	sampleRecords := []attendance.Record{
		{EmployeeID: created[0].ID, Date: today, Status: attendance.StatusPresent, Time: "14:00", Notes: "Ensayo de Wifalas"},
		{EmployeeID: created[1].ID, Date: today, Status: attendance.StatusPresent, Time: "14:05", Notes: "Ensayo de Wifalas"},
		{EmployeeID: created[2].ID, Date: today, Status: attendance.StatusLate, Time: "14:20", Notes: "Llegó tarde al ensayo"},
	}
	for _, rec := range sampleRecords {
		rec.RecordedAt = now
		if _, err := attendanceRepo.Create(ctx, rec); err != nil {
			return fmt.Errorf("failed to seed attendance record: %w", err)
		}
	}

	return nil
}
