package vacation

import "time"

// VacationState is the review state of a vacation request.
type VacationState string

const (
	VacationStatePending  VacationState = "PENDING"
	VacationStateApproved VacationState = "APPROVED"
	VacationStateRejected VacationState = "REJECTED"
)

// Vacation is one employee vacation request shown on the calendar screen.
type Vacation struct {
	ID         string
	EmployeeID string
	CompanyID  string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	State      VacationState
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
