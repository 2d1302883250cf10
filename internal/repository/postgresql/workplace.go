package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/workplace"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/database"
)

type workplaceRepository struct {
	db *database.DB
}

func NewWorkplaceRepository(db *database.DB) workplace.WorkplaceRepository {
	return &workplaceRepository{db: db}
}

// GetByCompanyID implements workplace.WorkplaceRepository.
func (w *workplaceRepository) GetByCompanyID(ctx context.Context, companyID string) (*workplace.Workplace, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, company_id, latitude, longitude, address, radius_meters, created_at, updated_at
		FROM workplaces
		WHERE company_id = $1
	`

	var wp workplace.Workplace
	err := q.QueryRow(ctx, query, companyID).Scan(
		&wp.ID, &wp.CompanyID, &wp.Latitude, &wp.Longitude, &wp.Address, &wp.RadiusMeters,
		&wp.CreatedAt, &wp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, workplace.ErrWorkplaceNotFound
		}
		return nil, fmt.Errorf("failed to get workplace by company: %w", err)
	}

	return &wp, nil
}
