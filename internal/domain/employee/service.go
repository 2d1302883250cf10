package employee

import "context"

// EmployeeService exposes profile data to the authenticated employee.
type EmployeeService interface {
	// GetMyProfile returns the caller's HR profile.
	GetMyProfile(ctx context.Context) (ProfileResponse, error)
}
