package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/asistapp/attendance-backend-go/internal/domain/attendance"
	"github.com/asistapp/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, employee_id, date, status, time, notes, recorded_at`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.Time, &rec.Notes, &rec.RecordedAt)
	return rec, err
}

func (a *attendanceRepositoryImpl) queryRecords(ctx context.Context, query string, args ...interface{}) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Record, error) {
	return a.queryRecords(ctx, fmt.Sprintf(`
		SELECT %s FROM attendance_records ORDER BY date, recorded_at
	`, attendanceColumns))
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository. A missing
// record is not an error; the upsert and scan dedup branch on nil.
func (a *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := fmt.Sprintf(`
		SELECT %s FROM attendance_records
		WHERE employee_id = $1 AND date = $2
	`, attendanceColumns)

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance for employee %s on %s: %w", employeeID, date, err)
	}
	return &rec, nil
}

// GetByDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	return a.queryRecords(ctx, fmt.Sprintf(`
		SELECT %s FROM attendance_records
		WHERE date = $1
		ORDER BY recorded_at
	`, attendanceColumns), date)
}

// GetByDateRange implements attendance.AttendanceRepository. Bounds are
// inclusive; for ISO dates string comparison is calendar comparison.
func (a *attendanceRepositoryImpl) GetByDateRange(ctx context.Context, start, end string) ([]attendance.Record, error) {
	return a.queryRecords(ctx, fmt.Sprintf(`
		SELECT %s FROM attendance_records
		WHERE date >= $1 AND date <= $2
		ORDER BY date, recorded_at
	`, attendanceColumns), start, end)
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := fmt.Sprintf(`
		INSERT INTO attendance_records (id, employee_id, date, status, time, notes, recorded_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
		RETURNING %s
	`, attendanceColumns)

	created, err := scanRecord(q.QueryRow(ctx, query,
		record.EmployeeID, record.Date, record.Status, record.Time, record.Notes, record.RecordedAt,
	))
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return created, nil
}

// Replace implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Replace(ctx context.Context, id string, record attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET status = $1, time = $2, notes = $3, recorded_at = $4
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, record.Status, record.Time, record.Notes, record.RecordedAt, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to replace attendance record %s: %w", id, err)
	}
	return nil
}

// DeleteAll implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, a.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendance_records`); err != nil {
		return fmt.Errorf("failed to delete attendance records: %w", err)
	}
	return nil
}
