package workplace

import "context"

// WorkplaceRepository defines data access for registered work sites.
type WorkplaceRepository interface {
	// GetByCompanyID retrieves the registered work site for a company.
	GetByCompanyID(ctx context.Context, companyID string) (*Workplace, error)
}
