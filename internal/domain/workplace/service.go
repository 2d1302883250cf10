package workplace

import "context"

// WorkplaceService exposes the registered work site to the authenticated employee.
type WorkplaceService interface {
	// GetMyWorkplace returns the work site of the caller's company.
	GetMyWorkplace(ctx context.Context) (WorkplaceResponse, error)
}
