package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/schedule"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// GetByEmployeeID implements schedule.ScheduleRepository.
func (s *scheduleRepository) GetByEmployeeID(ctx context.Context, employeeID string, companyID string) (*schedule.DailySchedule, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, employee_id, company_id, start_time, end_time, rest_start_time, rest_end_time,
		       created_at, updated_at
		FROM work_schedules
		WHERE employee_id = $1 AND company_id = $2
	`

	var sched schedule.DailySchedule
	err := q.QueryRow(ctx, query, employeeID, companyID).Scan(
		&sched.ID, &sched.EmployeeID, &sched.CompanyID,
		&sched.StartTime, &sched.EndTime, &sched.RestStartTime, &sched.RestEndTime,
		&sched.CreatedAt, &sched.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule by employee: %w", err)
	}

	return &sched, nil
}
