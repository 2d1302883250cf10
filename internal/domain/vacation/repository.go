package vacation

import (
	"context"
	"time"
)

// VacationRepository defines data access for vacation requests.
type VacationRepository interface {
	// Create persists a new vacation request.
	Create(ctx context.Context, v Vacation) (Vacation, error)

	// ListByEmployee retrieves all vacation requests of an employee, newest
	// first.
	ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]Vacation, error)

	// HasOverlap reports whether the employee already has a vacation that
	// overlaps the given period.
	HasOverlap(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error)
}
