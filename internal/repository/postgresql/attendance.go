package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, company_id,
	to_char(start_date, 'YYYY-MM-DD'), start_time, start_state,
	to_char(end_date, 'YYYY-MM-DD'), end_time, end_state,
	schedule_start_time, schedule_end_time, schedule_rest_start_time, schedule_rest_end_time,
	created_at, updated_at
`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.AttendanceID, &rec.EmployeeID, &rec.CompanyID,
		&rec.StartDate, &rec.StartTime, &rec.StartState,
		&rec.EndDate, &rec.EndTime, &rec.EndState,
		&rec.ScheduleStartTime, &rec.ScheduleEndTime, &rec.ScheduleRestStartTime, &rec.ScheduleRestEndTime,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements attendance.AttendanceRepository. The unique index on
// (employee_id, start_date) is the backstop against a duplicate clock-in
// racing past the engine's guard.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, company_id, start_date, start_time, start_state,
			schedule_start_time, schedule_end_time, schedule_rest_start_time, schedule_rest_end_time
		) VALUES (
			$1, $2, $3, $4::date, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.AttendanceID,
		rec.EmployeeID,
		rec.CompanyID,
		rec.StartDate,
		rec.StartTime,
		rec.StartState,
		rec.ScheduleStartTime,
		rec.ScheduleEndTime,
		rec.ScheduleRestStartTime,
		rec.ScheduleRestEndTime,
	).Scan(&rec.AttendanceID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string, companyID string) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND start_date = $2::date AND company_id = $3
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, date, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &rec, nil
}

// CloseOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) CloseOut(ctx context.Context, sub attendance.ClockOutSubmission, companyID string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET end_date = $1::date, end_time = $2, end_state = $3, updated_at = NOW()
		WHERE id = $4 AND company_id = $5 AND end_time IS NULL
		RETURNING ` + attendanceColumns

	rec, err := scanRecord(q.QueryRow(ctx, query, sub.EndDate, sub.EndTime, sub.EndState, sub.AttendanceID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to close out attendance: %w", err)
	}

	return rec, nil
}

// CloseStale implements attendance.AttendanceRepository. Records from earlier
// days that were never clocked out get their scheduled end time stamped in.
func (a *attendanceRepository) CloseStale(ctx context.Context, before string) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET end_date = start_date, end_time = schedule_end_time, end_state = $1, updated_at = NOW()
		WHERE start_date < $2::date AND end_time IS NULL
	`

	tag, err := q.Exec(ctx, query, attendance.EndStateLeft, before)
	if err != nil {
		return 0, fmt.Errorf("failed to close stale attendances: %w", err)
	}

	return tag.RowsAffected(), nil
}
