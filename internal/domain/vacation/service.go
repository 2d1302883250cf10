package vacation

import "context"

// VacationService handles the calendar screen's vacation list and requests.
type VacationService interface {
	// Register creates a pending vacation request for the caller.
	Register(ctx context.Context, req RegisterVacationRequest) (VacationResponse, error)

	// ListMine returns all of the caller's vacation requests.
	ListMine(ctx context.Context) (ListVacationResponse, error)
}
