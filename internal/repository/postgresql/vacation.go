package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/vacation"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/database"
)

type vacationRepository struct {
	db *database.DB
}

func NewVacationRepository(db *database.DB) vacation.VacationRepository {
	return &vacationRepository{db: db}
}

// Create implements vacation.VacationRepository.
func (v *vacationRepository) Create(ctx context.Context, vac vacation.Vacation) (vacation.Vacation, error) {
	q := GetQuerier(ctx, v.db)

	query := `
		INSERT INTO vacations (id, employee_id, company_id, start_date, end_date, reason, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		vac.ID, vac.EmployeeID, vac.CompanyID, vac.StartDate, vac.EndDate, vac.Reason, vac.State,
	).Scan(&vac.ID, &vac.CreatedAt, &vac.UpdatedAt)
	if err != nil {
		return vacation.Vacation{}, fmt.Errorf("failed to create vacation: %w", err)
	}

	return vac, nil
}

// ListByEmployee implements vacation.VacationRepository.
func (v *vacationRepository) ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]vacation.Vacation, error) {
	q := GetQuerier(ctx, v.db)

	query := `
		SELECT id, employee_id, company_id, start_date, end_date, reason, state, created_at, updated_at
		FROM vacations
		WHERE employee_id = $1 AND company_id = $2
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacations: %w", err)
	}
	defer rows.Close()

	vacations := make([]vacation.Vacation, 0)
	for rows.Next() {
		var vac vacation.Vacation
		if err := rows.Scan(
			&vac.ID, &vac.EmployeeID, &vac.CompanyID, &vac.StartDate, &vac.EndDate,
			&vac.Reason, &vac.State, &vac.CreatedAt, &vac.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vacation: %w", err)
		}
		vacations = append(vacations, vac)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vacations: %w", err)
	}

	return vacations, nil
}

// HasOverlap implements vacation.VacationRepository. Rejected requests do not
// block a new request over the same period.
func (v *vacationRepository) HasOverlap(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	q := GetQuerier(ctx, v.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM vacations
			WHERE employee_id = $1
			  AND state <> $2
			  AND start_date <= $3
			  AND end_date >= $4
		)
	`

	var overlap bool
	err := q.QueryRow(ctx, query, employeeID, vacation.VacationStateRejected, endDate, startDate).Scan(&overlap)
	if err != nil {
		return false, fmt.Errorf("failed to check vacation overlap: %w", err)
	}

	return overlap, nil
}
